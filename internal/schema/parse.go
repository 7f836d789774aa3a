package schema

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	ErrEmptyCatalog   = errors.New("catalog has no tables")
	ErrEmptyColumn    = errors.New("empty column declaration")
	ErrEmptyTableName = errors.New("empty table name")
)

var (
	reLength    = regexp.MustCompile(`^\w+\s*\(\s*(\d+)\s*\)`)
	reEnumValue = regexp.MustCompile(`'((?:[^']|'')*)'`)
)

// ParseColumn splits a declaration such as "station_type ENUM('JN', 'TM')"
// into its bare name and type. Anything after the first whitespace is kept
// as type text; constraints are not interpreted.
func ParseColumn(decl string) (*Column, error) {
	fields := strings.Fields(decl)
	if len(fields) == 0 {
		return nil, ErrEmptyColumn
	}
	name := fields[0]
	typ := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(decl), name))

	col := &Column{
		Name:    name,
		Decl:    decl,
		Type:    typ,
		Meaning: AnalyzeMeaning(name),
	}

	base := typ
	if i := strings.IndexAny(base, "( \t"); i >= 0 {
		base = base[:i]
	}
	col.DataType = strings.ToLower(base)

	if m := reLength.FindStringSubmatch(typ); len(m) == 2 {
		if n, err := strconv.Atoi(m[1]); err == nil {
			col.Length = n
		}
	}

	if col.DataType == "enum" {
		for _, m := range reEnumValue.FindAllStringSubmatch(typ, -1) {
			col.EnumValues = append(col.EnumValues, strings.ReplaceAll(m[1], "''", "'"))
		}
	}
	return col, nil
}

// NewTable builds a table from ordered column declarations.
func NewTable(name string, decls ...string) (*Table, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyTableName
	}
	t := &Table{Name: name, Dependencies: []string{}}
	for i, d := range decls {
		col, err := ParseColumn(d)
		if err != nil {
			return nil, fmt.Errorf("table %s, column %d: %w", name, i+1, err)
		}
		t.Columns = append(t.Columns, col)
	}
	return t, nil
}

// MaxEnumLength returns the length of the longest enum value of c.
func (c *Column) MaxEnumLength() int {
	n := 0
	for _, v := range c.EnumValues {
		if len(v) > n {
			n = len(v)
		}
	}
	return n
}

// IsInteger reports whether the column holds an integer type.
func (c *Column) IsInteger() bool {
	return strings.Contains(c.DataType, "int")
}
