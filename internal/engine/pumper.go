package engine

import (
	"fmt"
	"strings"

	"rail-sqlgen/internal/dialect"
	"rail-sqlgen/internal/schema"
)

// FillOptions controls Fill.
type FillOptions struct {
	Count      int    // rows per table
	Clean      bool   // emit truncate statements first
	OnProgress func() // called once per generated row
}

// Fill renders one bulk INSERT per table, parents before children, so that
// foreign key columns only reference keys generated earlier in the script.
func Fill(d dialect.Dialect, g *Generator, tables []*schema.Table, opts FillOptions) (string, []schema.PumpResult, error) {
	if len(tables) == 0 {
		return "", nil, schema.ErrEmptyCatalog
	}
	if opts.Count < 1 {
		return "", nil, fmt.Errorf("row count must be positive, got %d", opts.Count)
	}

	sorted := schema.SortTablesByFKCount(tables)
	var b strings.Builder

	if opts.Clean {
		b.WriteString(cleanScript(d, sorted))
	}

	var results []schema.PumpResult
	fkPool := make(map[string][]interface{})

	for _, table := range sorted {
		if len(table.Columns) == 0 {
			results = append(results, schema.PumpResult{
				TableName: table.Name,
				Target:    opts.Count,
				Status:    "SKIPPED",
				ErrorMsg:  "table has no columns",
			})
			continue
		}

		var unresolved []string
		for _, fk := range table.ForeignKeys {
			if _, ok := fkPool[fk.RefTable]; !ok && !contains(unresolved, fk.RefTable) {
				unresolved = append(unresolved, fk.RefTable)
			}
		}

		rows := make([][]string, 0, opts.Count)
		var keys []interface{}
		for i := 0; i < opts.Count; i++ {
			values := generateRowWithIndex(g, table, fkPool, i, opts.Count)
			row := make([]string, len(values))
			for j, v := range values {
				row[j] = d.Literal(v)
				if table.Columns[j].IsKey {
					keys = append(keys, v)
				}
			}
			rows = append(rows, row)
			if opts.OnProgress != nil {
				opts.OnProgress()
			}
		}

		b.WriteString(d.BulkInsert(table.Name, table.ColumnNames(), rows))
		b.WriteString("\n\n")

		// Keys become the FK pool for child tables.
		if keys != nil {
			fkPool[table.Name] = keys
		}

		res := schema.PumpResult{
			TableName: table.Name,
			Target:    opts.Count,
			Actual:    len(rows),
			Status:    "OK",
		}
		if len(unresolved) > 0 {
			res.Status = "UNRESOLVED FK"
			res.ErrorMsg = fmt.Sprintf("not generated here: %s (assumed keys 1..%d)", strings.Join(unresolved, ", "), opts.Count)
		}
		results = append(results, res)
	}

	return b.String(), results, nil
}

// cleanScript truncates children before parents with constraint checks off.
func cleanScript(d dialect.Dialect, sorted []*schema.Table) string {
	var b strings.Builder
	b.WriteString(d.DisableConstraints() + ";\n")
	for i := len(sorted) - 1; i >= 0; i-- {
		b.WriteString(d.TruncateQuery(sorted[i].Name) + ";\n")
	}
	b.WriteString(d.EnableConstraints() + ";\n\n")
	return b.String()
}

func generateRowWithIndex(g *Generator, table *schema.Table, fkPool map[string][]interface{}, index, count int) []interface{} {
	values := make([]interface{}, 0, len(table.Columns))
	for _, col := range table.Columns {
		values = append(values, getSmartValWithIndex(g, col, table, fkPool, index, count))
	}
	return values
}

func getSmartValWithIndex(g *Generator, col *schema.Column, t *schema.Table, pool map[string][]interface{}, index, count int) interface{} {
	if col.IsKey {
		if col.IsInteger() {
			return index + 1
		}
		return fmt.Sprintf("%s-%d", t.Name, index+1)
	}
	if fk := t.ForeignKeyFor(col.Name); fk != nil {
		if vals, ok := pool[fk.RefTable]; ok && len(vals) > 0 {
			return vals[index%len(vals)]
		}
		// Parent not generated in this run: assume it holds keys 1..count.
		return index%count + 1
	}
	return g.GenerateValue(col, t.Name)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
