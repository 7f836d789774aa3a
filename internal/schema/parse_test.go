package schema_test

import (
	"errors"
	"reflect"
	"testing"

	"rail-sqlgen/internal/schema"
)

func TestParseColumn(t *testing.T) {
	tests := []struct {
		decl     string
		name     string
		typ      string
		dataType string
		length   int
		enum     []string
	}{
		{"station_id BIGINT", "station_id", "BIGINT", "bigint", 0, nil},
		{"station_name VARCHAR(100)", "station_name", "VARCHAR(100)", "varchar", 100, nil},
		{"station_type ENUM('JN','TM','HT','ST')", "station_type", "ENUM('JN','TM','HT','ST')", "enum", 0, []string{"JN", "TM", "HT", "ST"}},
		{"coach_type ENUM('SL', 'AC3', '2S')", "coach_type", "ENUM('SL', 'AC3', '2S')", "enum", 0, []string{"SL", "AC3", "2S"}},
		{"sex CHAR(1)", "sex", "CHAR(1)", "char", 1, nil},
		{"  fare   FLOAT NOT NULL", "fare", "FLOAT NOT NULL", "float", 0, nil},
		{"note ENUM('it''s')", "note", "ENUM('it''s')", "enum", 0, []string{"it's"}},
	}
	for _, tt := range tests {
		col, err := schema.ParseColumn(tt.decl)
		if err != nil {
			t.Fatalf("%q: %v", tt.decl, err)
		}
		if col.Name != tt.name || col.Type != tt.typ || col.DataType != tt.dataType || col.Length != tt.length {
			t.Errorf("%q: got name=%q type=%q dataType=%q length=%d", tt.decl, col.Name, col.Type, col.DataType, col.Length)
		}
		if !reflect.DeepEqual(col.EnumValues, tt.enum) {
			t.Errorf("%q: expected enum %v, got %v", tt.decl, tt.enum, col.EnumValues)
		}
		if col.Decl != tt.decl {
			t.Errorf("%q: declaration not kept verbatim: %q", tt.decl, col.Decl)
		}
	}
}

func TestParseColumn_Empty(t *testing.T) {
	for _, decl := range []string{"", "   ", "\t"} {
		if _, err := schema.ParseColumn(decl); !errors.Is(err, schema.ErrEmptyColumn) {
			t.Errorf("%q: expected ErrEmptyColumn, got %v", decl, err)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	if _, err := schema.Build(nil); !errors.Is(err, schema.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
	_, err := schema.Build([]schema.TableDef{{Name: "station", Columns: []string{"station_id BIGINT", ""}}})
	if !errors.Is(err, schema.ErrEmptyColumn) {
		t.Errorf("expected ErrEmptyColumn, got %v", err)
	}
	_, err = schema.Build([]schema.TableDef{{Name: " ", Columns: []string{"id BIGINT"}}})
	if !errors.Is(err, schema.ErrEmptyTableName) {
		t.Errorf("expected ErrEmptyTableName, got %v", err)
	}
	_, err = schema.Build([]schema.TableDef{
		{Name: "train", Columns: []string{"train_id BIGINT"}},
		{Name: "train", Columns: []string{"train_id BIGINT"}},
	})
	if err == nil {
		t.Error("expected duplicate table error")
	}
}

func TestRailwayCatalog_IsCopy(t *testing.T) {
	defs := schema.RailwayCatalog()
	if len(defs) != 14 {
		t.Fatalf("expected 14 tables, got %d", len(defs))
	}
	defs[0].Columns[0] = "changed"
	if schema.RailwayCatalog()[0].Columns[0] != "train_id BIGINT" {
		t.Error("RailwayCatalog must not expose the built-in slice")
	}
}

func TestParseCatalog(t *testing.T) {
	data := []byte(`
tables:
  - name: station
    columns:
      - station_id BIGINT
      - station_name VARCHAR(100)
  - name: route
    columns:
      - route_id BIGINT
      - source_station_id BIGINT
`)
	defs, err := schema.ParseCatalog(data)
	if err != nil {
		t.Fatal(err)
	}
	want := []schema.TableDef{
		{Name: "station", Columns: []string{"station_id BIGINT", "station_name VARCHAR(100)"}},
		{Name: "route", Columns: []string{"route_id BIGINT", "source_station_id BIGINT"}},
	}
	if !reflect.DeepEqual(defs, want) {
		t.Errorf("expected %v, got %v", want, defs)
	}

	if _, err := schema.ParseCatalog([]byte("tables: []")); !errors.Is(err, schema.ErrEmptyCatalog) {
		t.Errorf("expected ErrEmptyCatalog, got %v", err)
	}
	if _, err := schema.ParseCatalog([]byte("tables: [")); err == nil {
		t.Error("expected YAML error")
	}
}

func TestAnalyzeMeaning(t *testing.T) {
	tests := map[string]string{
		"sched_toa":     "scheduled arrival",
		"pass_name":     "passenger name",
		"refund_amount": "amount amount",
		"stop_number":   "stop number",
	}
	for in, want := range tests {
		if got := schema.AnalyzeMeaning(in); got != want {
			t.Errorf("AnalyzeMeaning(%q) = %q, want %q", in, got, want)
		}
	}
}
