package dialect

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"rail-sqlgen/internal/schema"
)

// DefaultCreateTable renders one column per line, indented four spaces.
func DefaultCreateTable(name string, defs []string) string {
	return fmt.Sprintf("CREATE TABLE %s (\n    %s\n);\n", name, strings.Join(defs, ",\n    "))
}

// DefaultBulkInsert renders a single multi-row INSERT, one tuple per line.
func DefaultBulkInsert(table string, cols []string, rows [][]string) string {
	tuples := make([]string, len(rows))
	for i, r := range rows {
		tuples[i] = "(" + strings.Join(r, ", ") + ")"
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES\n%s;", table, strings.Join(cols, ", "), strings.Join(tuples, ",\n"))
}

// TriggerInsertLists returns the column list and VALUES list of the INSERT a
// trigger runs against its log table.
func TriggerInsertLists(t Trigger) (cols, vals string) {
	refs := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		refs[i] = t.Alias + "." + c
	}
	cols = strings.Join(append([]string{"operation_type"}, t.Columns...), ", ")
	vals = strings.Join(append([]string{QuoteString(t.Op)}, refs...), ", ")
	return cols, vals
}

// QuoteString renders s as a single-quoted SQL string literal.
func QuoteString(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// DefaultLiteral renders Go values produced by the generators as SQL literals.
func DefaultLiteral(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return "NULL"
	case string:
		return QuoteString(val)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', 2, 64)
	case bool:
		if val {
			return "TRUE"
		}
		return "FALSE"
	case time.Time:
		return QuoteString(val.Format("2006-01-02 15:04:05"))
	default:
		return QuoteString(fmt.Sprint(val))
	}
}

// SplitType breaks a column type such as "ENUM('A', 'B') NOT NULL" into its
// base word, the text inside the parentheses and the remainder.
func SplitType(typ string) (base, args, rest string) {
	typ = strings.TrimSpace(typ)
	i := 0
	for i < len(typ) && typ[i] != '(' && typ[i] != ' ' && typ[i] != '\t' {
		i++
	}
	base = typ[:i]
	tail := strings.TrimLeft(typ[i:], " \t")
	if !strings.HasPrefix(tail, "(") {
		return base, "", strings.TrimSpace(tail)
	}
	depth, inQuote := 0, false
	for j := 0; j < len(tail); j++ {
		switch tail[j] {
		case '\'':
			inQuote = !inQuote
		case '(':
			if !inQuote {
				depth++
			}
		case ')':
			if !inQuote {
				depth--
				if depth == 0 {
					return base, tail[1:j], strings.TrimSpace(tail[j+1:])
				}
			}
		}
	}
	// Unbalanced: keep everything as arguments.
	return base, tail[1:], ""
}

// EnumCheck renders "col <typ> CHECK (col IN ('A', 'B'))" for an ENUM column.
func EnumCheck(col *schema.Column, typ string) string {
	vals := make([]string, len(col.EnumValues))
	for i, v := range col.EnumValues {
		vals[i] = QuoteString(v)
	}
	_, _, rest := SplitType(col.Type)
	def := fmt.Sprintf("%s %s CHECK (%s IN (%s))", col.Name, typ, col.Name, strings.Join(vals, ", "))
	if rest != "" {
		def += " " + rest
	}
	return def
}

func joinDef(parts ...string) string {
	var out []string
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
