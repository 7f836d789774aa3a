package dialect

import "rail-sqlgen/internal/schema"

// Trigger describes one AFTER trigger copying a row into a log table.
type Trigger struct {
	Name     string   // trg_<table>_<op>, lower-cased
	Op       string   // INSERT, UPDATE or DELETE
	Table    string   // audited table
	LogTable string   // <table>_log
	Alias    string   // NEW or OLD
	Columns  []string // bare column names, declaration order
}

// Dialect abstracts database-specific SQL text.
type Dialect interface {
	Name() string

	// Audit DDL
	AuditColumns() []string // the three columns prepended to every log table
	ColumnDefinition(col *schema.Column) string
	CreateTable(name string, defs []string) string
	CreateTrigger(t Trigger) string

	// Data Statements (no trailing semicolon unless noted)
	BulkInsert(table string, cols []string, rows [][]string) string // ends with ';'
	TruncateQuery(table string) string
	DisableConstraints() string
	EnableConstraints() string

	// Helpers
	Literal(v interface{}) string
}
