package dialect

import (
	"fmt"
	"strings"

	"rail-sqlgen/internal/schema"
)

type PostgresDialect struct{}

func (d *PostgresDialect) Name() string {
	return "postgres"
}

func (d *PostgresDialect) AuditColumns() []string {
	return []string{
		"log_id BIGSERIAL PRIMARY KEY",
		"operation_type VARCHAR(6) NOT NULL CHECK (operation_type IN ('INSERT', 'UPDATE', 'DELETE'))",
		"operation_time TIMESTAMP DEFAULT CURRENT_TIMESTAMP",
	}
}

// ColumnDefinition translates MySQL-flavoured declarations: ENUM becomes a
// CHECK constrained VARCHAR and a few type names are mapped.
func (d *PostgresDialect) ColumnDefinition(col *schema.Column) string {
	if col.DataType == "enum" {
		return EnumCheck(col, fmt.Sprintf("VARCHAR(%d)", col.MaxEnumLength()))
	}
	base, args, rest := SplitType(col.Type)
	switch strings.ToLower(base) {
	case "float", "double":
		return joinDef(col.Name, "DOUBLE PRECISION", rest)
	case "tinyint":
		return joinDef(col.Name, "SMALLINT", rest)
	case "datetime":
		return joinDef(col.Name, "TIMESTAMP", rest)
	}
	if args != "" {
		base += "(" + args + ")"
	}
	return joinDef(col.Name, base, rest)
}

func (d *PostgresDialect) CreateTable(name string, defs []string) string {
	return DefaultCreateTable(name, defs)
}

// CreateTrigger emits a plpgsql trigger function followed by the trigger.
func (d *PostgresDialect) CreateTrigger(t Trigger) string {
	cols, vals := TriggerInsertLists(t)
	return fmt.Sprintf(`
CREATE OR REPLACE FUNCTION %[1]s_fn() RETURNS TRIGGER AS $$
BEGIN
    INSERT INTO %[2]s (%[3]s)
    VALUES (%[4]s);
    RETURN NULL;
END;
$$ LANGUAGE plpgsql;

CREATE TRIGGER %[1]s
AFTER %[5]s ON %[6]s
FOR EACH ROW
EXECUTE FUNCTION %[1]s_fn();
`, t.Name, t.LogTable, cols, vals, t.Op, t.Table)
}

func (d *PostgresDialect) BulkInsert(table string, cols []string, rows [][]string) string {
	return DefaultBulkInsert(table, cols, rows)
}

func (d *PostgresDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)
}

// Replica role skips FK triggers; it requires superuser.
func (d *PostgresDialect) DisableConstraints() string {
	return "SET session_replication_role = 'replica'"
}

func (d *PostgresDialect) EnableConstraints() string {
	return "SET session_replication_role = 'origin'"
}

func (d *PostgresDialect) Literal(v interface{}) string {
	return DefaultLiteral(v)
}
