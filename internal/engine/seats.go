package engine

import (
	"errors"
	"fmt"
	"strconv"

	"rail-sqlgen/internal/dialect"
)

var ErrInvalidSeatPlan = errors.New("invalid seat plan")

// SeatColumns is the column list of the seat seed statement.
var SeatColumns = []string{"seat_no", "seat_type", "coach_id", "seat_category"}

// SeatPlan describes the seats to seed.
type SeatPlan struct {
	Table         string
	Coaches       int
	PerCoach      int
	Types         []string
	Category      string
	ResetPerCoach bool // restart the type cycle at every coach
}

// DefaultSeatPlan is 90 coaches of 10 seats. The type cycle runs across coach
// boundaries unless ResetPerCoach is set.
func DefaultSeatPlan() SeatPlan {
	return SeatPlan{
		Table:    "seat",
		Coaches:  90,
		PerCoach: 10,
		Types:    []string{"LL", "MD", "UP", "SL", "SU", "ST", "FC"},
		Category: "CNF",
	}
}

func (p SeatPlan) Validate() error {
	switch {
	case p.Table == "":
		return fmt.Errorf("%w: empty table name", ErrInvalidSeatPlan)
	case p.Coaches < 1:
		return fmt.Errorf("%w: coaches must be positive, got %d", ErrInvalidSeatPlan, p.Coaches)
	case p.PerCoach < 1:
		return fmt.Errorf("%w: seats per coach must be positive, got %d", ErrInvalidSeatPlan, p.PerCoach)
	case len(p.Types) == 0:
		return fmt.Errorf("%w: no seat types", ErrInvalidSeatPlan)
	}
	return nil
}

type SeatRow struct {
	SeatNo   int
	SeatType string
	CoachID  int
	Category string
}

// SeatRows enumerates every (coach, position) pair, coach-major.
func SeatRows(p SeatPlan) ([]SeatRow, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rows := make([]SeatRow, 0, p.Coaches*p.PerCoach)
	for coach := 1; coach <= p.Coaches; coach++ {
		for pos := 0; pos < p.PerCoach; pos++ {
			idx := (coach-1)*p.PerCoach + pos
			if p.ResetPerCoach {
				idx = pos
			}
			rows = append(rows, SeatRow{
				SeatNo:   pos + 1,
				SeatType: p.Types[idx%len(p.Types)],
				CoachID:  coach,
				Category: p.Category,
			})
		}
	}
	return rows, nil
}

// SeatScript renders the plan as one bulk INSERT followed by a newline.
func SeatScript(d dialect.Dialect, p SeatPlan) (string, error) {
	rows, err := SeatRows(p)
	if err != nil {
		return "", err
	}
	values := make([][]string, len(rows))
	for i, r := range rows {
		values[i] = []string{
			strconv.Itoa(r.SeatNo),
			d.Literal(r.SeatType),
			strconv.Itoa(r.CoachID),
			d.Literal(r.Category),
		}
	}
	return d.BulkInsert(p.Table, SeatColumns, values) + "\n", nil
}
