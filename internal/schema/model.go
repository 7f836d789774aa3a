package schema

type Table struct {
	Name         string
	Columns      []*Column
	ForeignKeys  []*ForeignKey
	Dependencies []string // referenced tables, filled by InferDependencies
}

type Column struct {
	Name       string   // bare name, first token of Decl
	Decl       string   // declaration exactly as authored, e.g. "train_name VARCHAR(100)"
	Type       string   // declaration without the name, e.g. "VARCHAR(100)"
	DataType   string   // lower-cased base type, e.g. "varchar"
	Length     int      // (n) of the type when numeric, 0 otherwise
	IsKey      bool     // the table's own identifier column
	EnumValues []string // values of an ENUM(...) type
	Meaning    string   // decoded column name (see AnalyzeMeaning)
}

type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// ColumnNames returns the bare column names in declaration order.
func (t *Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// KeyColumn returns the table's identifier column, or nil when it has none.
func (t *Table) KeyColumn() *Column {
	for _, c := range t.Columns {
		if c.IsKey {
			return c
		}
	}
	return nil
}

// ForeignKeyFor returns the foreign key declared on column, or nil.
func (t *Table) ForeignKeyFor(column string) *ForeignKey {
	for _, fk := range t.ForeignKeys {
		if fk.Column == column {
			return fk
		}
	}
	return nil
}

// Report row for the fill command.
type PumpResult struct {
	TableName string
	Target    int
	Actual    int
	Status    string
	ErrorMsg  string
}
