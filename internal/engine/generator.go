package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"rail-sqlgen/internal/schema"
)

// Fixed window for generated timestamps so that a seed fully determines output.
var (
	windowStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	windowEnd   = time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
)

// Generator produces column values from a seeded faker.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator returns a generator whose output is fixed by seed.
// A seed of 0 asks gofakeit for a random seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

func (g *Generator) pick(list []string) string {
	return g.faker.RandomString(list)
}

func (g *Generator) StationName() string {
	return g.pick(StationPlaces) + " " + g.pick(StationSuffixes)
}

func (g *Generator) TrainName() string {
	return g.pick(StationPlaces) + " " + g.pick(TrainPrefixes) + " " + g.pick(TrainSuffixes)
}

func (g *Generator) CoachName() string {
	return fmt.Sprintf("%s%d", g.pick(CoachPrefixes), g.faker.Number(1, 12))
}

func (g *Generator) RouteName() string {
	return g.pick(StationPlaces) + " - " + g.pick(StationPlaces)
}

func truncate(s string, limit int) string {
	if limit <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) > limit {
		return string(runes[:limit])
	}
	return s
}

// GenerateValue generates a random value based on column definition.
// Key and foreign key columns are resolved by the caller.
func (g *Generator) GenerateValue(col *schema.Column, tableName string) interface{} {
	dataType := col.DataType
	f := g.faker

	// 0. ENUM
	if len(col.EnumValues) > 0 {
		return g.pick(col.EnumValues)
	}

	// 1. Strings, by meaning first
	if strings.Contains(dataType, "char") || strings.Contains(dataType, "text") {
		if col.Length == 1 || col.HasMeaning("sex") {
			if col.HasMeaning("sex") {
				return g.pick(Sexes)
			}
			return strings.ToUpper(f.LetterN(1))
		}
		if col.HasMeaning("name") {
			owner := strings.ToLower(tableName)
			switch {
			case col.HasMeaning("station") || owner == "station":
				return truncate(g.StationName(), col.Length)
			case col.HasMeaning("train") || owner == "train":
				return truncate(g.TrainName(), col.Length)
			case col.HasMeaning("coach") || owner == "coach":
				return truncate(g.CoachName(), col.Length)
			case col.HasMeaning("route") || owner == "route":
				return truncate(g.RouteName(), col.Length)
			}
			return truncate(f.Name(), col.Length)
		}
		if col.HasMeaning("email") {
			return truncate(f.Email(), col.Length)
		}
		if col.HasMeaning("phone") {
			return truncate(f.Phone(), col.Length)
		}
		if col.HasMeaning("city") || col.HasMeaning("station") {
			return truncate(g.pick(StationPlaces), col.Length)
		}
		if col.Length > 0 && col.Length < 20 {
			return truncate(f.Word(), col.Length)
		}
		return truncate(f.Sentence(5), col.Length)
	}

	// 2. Date / time
	if strings.Contains(dataType, "date") || strings.Contains(dataType, "time") {
		val := f.DateRange(windowStart, windowEnd)
		switch dataType {
		case "date":
			return val.Format("2006-01-02")
		case "time":
			return val.Format("15:04:05")
		}
		return val.Format("2006-01-02 15:04:05")
	}

	// 3. Numbers
	if strings.Contains(dataType, "int") {
		switch {
		case col.HasMeaning("age"):
			return f.Number(1, 90)
		case col.HasMeaning("distance"):
			return f.Number(1, 2500)
		case col.HasMeaning("number") || col.HasMeaning("order") || col.HasMeaning("sequence"):
			return f.Number(1, 30)
		case strings.Contains(dataType, "tinyint"):
			return f.Number(0, 127)
		case strings.Contains(dataType, "smallint"):
			return f.Number(1, 30000)
		}
		maxVal := 50000
		if col.Length > 0 && col.Length < 5 {
			limit := 1
			for i := 0; i < col.Length; i++ {
				limit *= 10
			}
			maxVal = limit - 1
		}
		return f.Number(1, maxVal)
	}

	if strings.Contains(dataType, "decimal") || strings.Contains(dataType, "numeric") ||
		strings.Contains(dataType, "float") || strings.Contains(dataType, "double") ||
		strings.Contains(dataType, "real") {
		if col.HasMeaning("amount") || col.HasMeaning("total") {
			return f.Price(50, 5000)
		}
		return f.Price(0.99, 99.99)
	}

	// 4. Boolean
	if strings.Contains(dataType, "bool") || dataType == "bit" {
		return f.Bool()
	}

	return nil
}
