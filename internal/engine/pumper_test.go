package engine_test

import (
	"strings"
	"testing"

	"rail-sqlgen/internal/dialect"
	"rail-sqlgen/internal/engine"
	"rail-sqlgen/internal/schema"
)

func TestFill_Deterministic(t *testing.T) {
	d := &dialect.MysqlDialect{}
	tables := railway(t)

	first, _, err := engine.Fill(d, engine.NewGenerator(42), tables, engine.FillOptions{Count: 20})
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := engine.Fill(d, engine.NewGenerator(42), tables, engine.FillOptions{Count: 20})
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("same seed must produce identical output")
	}
	other, _, err := engine.Fill(d, engine.NewGenerator(43), tables, engine.FillOptions{Count: 20})
	if err != nil {
		t.Fatal(err)
	}
	if other == first {
		t.Error("a different seed should change the output")
	}
}

func TestFill_ResultsAndOrder(t *testing.T) {
	d := &dialect.MysqlDialect{}
	tables := railway(t)

	script, results, err := engine.Fill(d, engine.NewGenerator(1), tables, engine.FillOptions{Count: 3})
	if err != nil {
		t.Fatal(err)
	}
	if len(results) != len(tables) {
		t.Fatalf("expected %d results, got %d", len(tables), len(results))
	}
	for _, r := range results {
		if r.Status != "OK" || r.Actual != 3 || r.Target != 3 {
			t.Errorf("unexpected result %+v", r)
		}
	}
	if n := strings.Count(script, "INSERT INTO "); n != len(tables) {
		t.Errorf("expected %d INSERT statements, got %d", len(tables), n)
	}
	if strings.Index(script, "INSERT INTO train ") > strings.Index(script, "INSERT INTO coach ") {
		t.Error("train must be filled before coach")
	}
	if strings.Index(script, "INSERT INTO booking ") > strings.Index(script, "INSERT INTO cancellation_record ") {
		t.Error("booking must be filled before cancellation_record")
	}
	if !strings.Contains(script, "INSERT INTO seat (seat_id, seat_no, seat_type, coach_id, seat_category) VALUES\n(1, ") {
		t.Error("seat keys should start at 1")
	}
}

func TestFill_ForeignKeysReferenceGeneratedKeys(t *testing.T) {
	tables, err := schema.Build([]schema.TableDef{
		{Name: "coach", Columns: []string{"coach_id BIGINT", "coach_name VARCHAR(10)", "train_id BIGINT"}},
		{Name: "train", Columns: []string{"train_id BIGINT", "train_name VARCHAR(100)"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	d := &dialect.MysqlDialect{}
	script, _, err := engine.Fill(d, engine.NewGenerator(1), tables, engine.FillOptions{Count: 2})
	if err != nil {
		t.Fatal(err)
	}

	coachStmt := script[strings.Index(script, "INSERT INTO coach "):]
	lines := strings.Split(strings.TrimSuffix(strings.TrimSpace(coachStmt), ";"), "\n")[1:]
	if len(lines) != 2 {
		t.Fatalf("expected 2 coach rows, got %d", len(lines))
	}
	for i, line := range lines {
		line = strings.TrimSuffix(line, ",")
		fields := strings.Split(strings.Trim(line, "()"), ", ")
		trainID := fields[len(fields)-1]
		if trainID != "1" && trainID != "2" {
			t.Errorf("coach row %d references unknown train %s", i, trainID)
		}
	}
}

func TestFill_UnresolvedParent(t *testing.T) {
	tables, err := schema.Build([]schema.TableDef{
		{Name: "train", Columns: []string{"train_id BIGINT"}},
		{Name: "coach", Columns: []string{"coach_id BIGINT", "train_id BIGINT"}},
	})
	if err != nil {
		t.Fatal(err)
	}
	coachOnly := schema.Select(tables, []string{"coach"})
	_, results, err := engine.Fill(&dialect.MysqlDialect{}, engine.NewGenerator(1), coachOnly, engine.FillOptions{Count: 2})
	if err != nil {
		t.Fatal(err)
	}
	if results[0].Status != "UNRESOLVED FK" || !strings.Contains(results[0].ErrorMsg, "train") {
		t.Errorf("expected unresolved train reference, got %+v", results[0])
	}
}

func TestFill_Clean(t *testing.T) {
	d := &dialect.MysqlDialect{}
	tables := railway(t)
	script, _, err := engine.Fill(d, engine.NewGenerator(1), schema.Select(tables, []string{"train", "coach"}), engine.FillOptions{Count: 1, Clean: true})
	if err != nil {
		t.Fatal(err)
	}
	want := "SET FOREIGN_KEY_CHECKS = 0;\nTRUNCATE TABLE coach;\nTRUNCATE TABLE train;\nSET FOREIGN_KEY_CHECKS = 1;\n\nINSERT INTO train "
	if !strings.HasPrefix(script, want) {
		t.Errorf("unexpected clean prelude:\n%s", script)
	}
}

func TestFill_Progress(t *testing.T) {
	calls := 0
	_, _, err := engine.Fill(&dialect.SqliteDialect{}, engine.NewGenerator(1), railway(t), engine.FillOptions{
		Count:      4,
		OnProgress: func() { calls++ },
	})
	if err != nil {
		t.Fatal(err)
	}
	if calls != 4*14 {
		t.Errorf("expected %d progress calls, got %d", 4*14, calls)
	}
}

func TestFill_InvalidInput(t *testing.T) {
	d := &dialect.MysqlDialect{}
	if _, _, err := engine.Fill(d, engine.NewGenerator(1), nil, engine.FillOptions{Count: 1}); err == nil {
		t.Error("expected error for empty table list")
	}
	if _, _, err := engine.Fill(d, engine.NewGenerator(1), railway(t), engine.FillOptions{Count: 0}); err == nil {
		t.Error("expected error for zero count")
	}
}

func TestGenerateValue(t *testing.T) {
	g := engine.NewGenerator(3)
	tables := railway(t)
	byName := make(map[string]*schema.Table)
	for _, tbl := range tables {
		byName[tbl.Name] = tbl
	}
	col := func(table, name string) *schema.Column {
		for _, c := range byName[table].Columns {
			if c.Name == name {
				return c
			}
		}
		t.Fatalf("no column %s.%s", table, name)
		return nil
	}

	for i := 0; i < 50; i++ {
		if v, ok := g.GenerateValue(col("passenger", "sex"), "passenger").(string); !ok || (v != "M" && v != "F") {
			t.Fatalf("sex: unexpected %v", v)
		}
		if v, ok := g.GenerateValue(col("passenger", "age"), "passenger").(int); !ok || v < 1 || v > 90 {
			t.Fatalf("age: unexpected %v", v)
		}
		if v, ok := g.GenerateValue(col("coach", "coach_name"), "coach").(string); !ok || len(v) == 0 || len(v) > 10 {
			t.Fatalf("coach_name: unexpected %q", v)
		}
		v := g.GenerateValue(col("station", "station_type"), "station")
		switch v {
		case "JN", "TM", "HT", "ST":
		default:
			t.Fatalf("station_type: unexpected %v", v)
		}
		if _, ok := g.GenerateValue(col("passenger", "disability"), "passenger").(bool); !ok {
			t.Fatal("disability should be a bool")
		}
		if ts, ok := g.GenerateValue(col("journey", "start_time"), "journey").(string); !ok || !strings.HasPrefix(ts, "2025-") {
			t.Fatalf("start_time: unexpected %v", ts)
		}
	}
}
