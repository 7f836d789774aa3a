package dialect

import (
	"fmt"

	"rail-sqlgen/internal/schema"
)

type SqliteDialect struct{}

func (d *SqliteDialect) Name() string {
	return "sqlite"
}

func (d *SqliteDialect) AuditColumns() []string {
	return []string{
		"log_id INTEGER PRIMARY KEY AUTOINCREMENT",
		"operation_type TEXT NOT NULL CHECK (operation_type IN ('INSERT', 'UPDATE', 'DELETE'))",
		"operation_time TIMESTAMP DEFAULT CURRENT_TIMESTAMP",
	}
}

// SQLite accepts the declared type names as affinities; only ENUM needs rewriting.
func (d *SqliteDialect) ColumnDefinition(col *schema.Column) string {
	if col.DataType == "enum" {
		return EnumCheck(col, "TEXT")
	}
	return col.Decl
}

func (d *SqliteDialect) CreateTable(name string, defs []string) string {
	return DefaultCreateTable(name, defs)
}

func (d *SqliteDialect) CreateTrigger(t Trigger) string {
	cols, vals := TriggerInsertLists(t)
	return fmt.Sprintf(`
CREATE TRIGGER %s
AFTER %s ON %s
FOR EACH ROW
BEGIN
    INSERT INTO %s (%s)
    VALUES (%s);
END;
`, t.Name, t.Op, t.Table, t.LogTable, cols, vals)
}

func (d *SqliteDialect) BulkInsert(table string, cols []string, rows [][]string) string {
	return DefaultBulkInsert(table, cols, rows)
}

// SQLite has no TRUNCATE; an unqualified DELETE uses the truncate optimization.
func (d *SqliteDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("DELETE FROM %s", table)
}

func (d *SqliteDialect) DisableConstraints() string {
	return "PRAGMA foreign_keys = OFF"
}

func (d *SqliteDialect) EnableConstraints() string {
	return "PRAGMA foreign_keys = ON"
}

func (d *SqliteDialect) Literal(v interface{}) string {
	return DefaultLiteral(v)
}
