package engine

import (
	"strings"

	"rail-sqlgen/internal/dialect"
	"rail-sqlgen/internal/schema"
)

// AuditOps is the order in which triggers are emitted for every table.
var AuditOps = []string{"INSERT", "UPDATE", "DELETE"}

// AuditDDL holds the statements that mirror one table into its log table.
type AuditDDL struct {
	Table    string
	LogTable string   // CREATE TABLE <table>_log statement
	Triggers []string // one per AuditOps entry, same order
}

func LogTableName(table string) string {
	return table + "_log"
}

func TriggerName(table, op string) string {
	return "trg_" + strings.ToLower(table) + "_" + strings.ToLower(op)
}

// RowAlias is the row reference a trigger copies from: a deleted row only
// has its prior values.
func RowAlias(op string) string {
	if op == "DELETE" {
		return "OLD"
	}
	return "NEW"
}

// BuildAudit renders the log table and its three triggers for t.
func BuildAudit(d dialect.Dialect, t *schema.Table) AuditDDL {
	defs := append([]string{}, d.AuditColumns()...)
	for _, c := range t.Columns {
		defs = append(defs, d.ColumnDefinition(c))
	}
	logTable := LogTableName(t.Name)

	out := AuditDDL{
		Table:    t.Name,
		LogTable: d.CreateTable(logTable, defs),
	}
	cols := t.ColumnNames()
	for _, op := range AuditOps {
		out.Triggers = append(out.Triggers, d.CreateTrigger(dialect.Trigger{
			Name:     TriggerName(t.Name, op),
			Op:       op,
			Table:    t.Name,
			LogTable: logTable,
			Alias:    RowAlias(op),
			Columns:  cols,
		}))
	}
	return out
}

// String joins the statements the way they appear in a script.
func (a AuditDDL) String() string {
	return a.LogTable + strings.Join(a.Triggers, "")
}

// AuditScript renders every table in catalog order, each followed by a blank
// line, and ends with a newline.
func AuditScript(d dialect.Dialect, tables []*schema.Table) (string, error) {
	if len(tables) == 0 {
		return "", schema.ErrEmptyCatalog
	}
	var b strings.Builder
	for _, t := range tables {
		b.WriteString(BuildAudit(d, t).String())
		b.WriteString("\n\n")
	}
	b.WriteString("\n")
	return b.String(), nil
}
