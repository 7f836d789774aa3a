package schema

import "fmt"

// TableDef is a table as authored: a name and ordered column declarations.
type TableDef struct {
	Name    string   `yaml:"name"`
	Columns []string `yaml:"columns"`
}

// railwayTables is the booking system catalog the audit log mirrors.
var railwayTables = []TableDef{
	{"train", []string{"train_id BIGINT", "train_name VARCHAR(100)", "train_type ENUM('EX', 'ML', 'SF', 'VB', 'MM', 'IN')"}},
	{"coach", []string{"coach_id BIGINT", "coach_name VARCHAR(10)", "coach_type ENUM('SL', 'AC3', 'AC2', 'AC1', 'CC', 'FC', '2S')", "fare FLOAT", "train_id BIGINT"}},
	{"seat", []string{"seat_id BIGINT", "seat_no BIGINT", "seat_type ENUM('SL', 'SU', 'LL', 'MD', 'UP', 'ST', 'FC')", "coach_id BIGINT", "seat_category ENUM('CNF', 'RAC')"}},
	{"station", []string{"station_id BIGINT", "station_name VARCHAR(100)", "station_type ENUM('JN', 'TM', 'HT', 'ST')"}},
	{"passenger", []string{"pnr BIGINT", "pass_name VARCHAR(100)", "age INT", "sex CHAR(1)", "disability BOOLEAN"}},
	{"route", []string{"route_id BIGINT", "route_name VARCHAR(100)", "source_station_id BIGINT", "final_station_id BIGINT"}},
	{"distance_map", []string{"route_id BIGINT", "station_id BIGINT", "distance INT", "order_from_start INT"}},
	{"journey", []string{"journey_id BIGINT", "start_time TIMESTAMP", "train_id BIGINT", "start_station_id BIGINT", "end_station_id BIGINT"}},
	{"schedule", []string{"sched_id BIGINT", "station_id BIGINT", "sched_toa TIMESTAMP", "sched_tod TIMESTAMP", "journey_id BIGINT", "stop_number INT", "route_id BIGINT"}},
	{"running", []string{"running_id BIGINT", "station_id BIGINT", "toa TIMESTAMP", "tod TIMESTAMP", "journey_id BIGINT", "stop_number INT", "route_id BIGINT"}},
	{"booking", []string{"booking_id BIGINT", "booking_time TIMESTAMP", "booking_status ENUM('CONFIRMED', 'CANCELLED', 'PENDING')", "pnr BIGINT", "journey_id BIGINT", "txn_id BIGINT", "amount FLOAT", "start_station_id BIGINT", "end_station_id BIGINT", "seat_id BIGINT"}},
	{"reservation_status", []string{"reservation_id BIGINT", "pnr BIGINT", "seat_id BIGINT", "reservation_status ENUM('CNF', 'RAC', 'WL')", "booking_time TIMESTAMP"}},
	{"payment_transaction", []string{"txn_id BIGINT", "total_amount FLOAT", "txn_status ENUM('PENDING', 'COMPLETE', 'FAILED')", "payment_mode ENUM('UPI', 'CARD', 'CASH', 'NETBANKING')"}},
	{"cancellation_record", []string{"booking_id BIGINT", "cancel_time TIMESTAMP", "refund_amount FLOAT", "cancel_status ENUM('PENDING', 'COMPLETED', 'FAILED')", "txn_id BIGINT"}},
}

// RailwayCatalog returns a copy of the built-in table definitions.
func RailwayCatalog() []TableDef {
	out := make([]TableDef, len(railwayTables))
	for i, d := range railwayTables {
		out[i] = TableDef{Name: d.Name, Columns: append([]string(nil), d.Columns...)}
	}
	return out
}

// Build parses the definitions, keeping their order, and infers keys and
// foreign keys across the whole catalog.
func Build(defs []TableDef) ([]*Table, error) {
	if len(defs) == 0 {
		return nil, ErrEmptyCatalog
	}
	tables := make([]*Table, 0, len(defs))
	seen := make(map[string]bool, len(defs))
	for _, d := range defs {
		t, err := NewTable(d.Name, d.Columns...)
		if err != nil {
			return nil, err
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("duplicate table %q", t.Name)
		}
		seen[t.Name] = true
		tables = append(tables, t)
	}
	InferDependencies(tables)
	return tables, nil
}
