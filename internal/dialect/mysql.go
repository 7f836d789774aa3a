package dialect

import (
	"fmt"

	"rail-sqlgen/internal/schema"
)

type MysqlDialect struct{}

func (d *MysqlDialect) Name() string {
	return "mysql"
}

func (d *MysqlDialect) AuditColumns() []string {
	return []string{
		"log_id BIGINT PRIMARY KEY AUTO_INCREMENT",
		"operation_type ENUM('INSERT', 'UPDATE', 'DELETE')",
		"operation_time TIMESTAMP DEFAULT CURRENT_TIMESTAMP",
	}
}

// ColumnDefinition keeps the declaration exactly as authored.
func (d *MysqlDialect) ColumnDefinition(col *schema.Column) string {
	return col.Decl
}

func (d *MysqlDialect) CreateTable(name string, defs []string) string {
	return DefaultCreateTable(name, defs)
}

// CreateTrigger wraps the trigger in DELIMITER markers so that the semicolon
// inside BEGIN ... END does not end the statement for the mysql client.
func (d *MysqlDialect) CreateTrigger(t Trigger) string {
	cols, vals := TriggerInsertLists(t)
	return fmt.Sprintf(`
DELIMITER //

CREATE TRIGGER %s
AFTER %s ON %s
FOR EACH ROW
BEGIN
    INSERT INTO %s (%s)
    VALUES (%s);
END;
//

DELIMITER ;
`, t.Name, t.Op, t.Table, t.LogTable, cols, vals)
}

func (d *MysqlDialect) BulkInsert(table string, cols []string, rows [][]string) string {
	return DefaultBulkInsert(table, cols, rows)
}

func (d *MysqlDialect) TruncateQuery(table string) string {
	return fmt.Sprintf("TRUNCATE TABLE %s", table)
}

func (d *MysqlDialect) DisableConstraints() string {
	return "SET FOREIGN_KEY_CHECKS = 0"
}

func (d *MysqlDialect) EnableConstraints() string {
	return "SET FOREIGN_KEY_CHECKS = 1"
}

func (d *MysqlDialect) Literal(v interface{}) string {
	return DefaultLiteral(v)
}
