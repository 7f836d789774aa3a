package schema

import "strings"

var abbreviations = map[string]string{
	// Common Nouns
	"nm": "name", "dt": "date", "no": "number", "cd": "code",
	"desc": "description", "amt": "amount", "cnt": "count", "qty": "quantity",
	"addr": "address", "tel": "phone", "ph": "phone",
	"pass": "passenger", "pax": "passenger", "pnr": "pnr",
	"txn": "transaction", "sched": "scheduled", "stn": "station",
	"toa": "arrival", "tod": "departure", "eta": "arrival", "etd": "departure",
	"sex": "sex", "gender": "sex", "dob": "birthdate",
	"loc": "location", "dist": "distance", "fare": "amount", "refund": "amount",
	"seq": "sequence", "ord": "order", "idx": "index",

	// Verbs / Status
	"reg": "registered", "mod": "modified", "del": "deleted", "cre": "created",
	"upd": "updated", "yn": "yesno", "stat": "status", "sts": "status",
	"typ": "type", "val": "value",
	"is": "yesno", "flg": "flag",
}

// AnalyzeMeaning decodes abbreviations in a snake_case column name, e.g.
// "sched_toa" becomes "scheduled arrival".
func AnalyzeMeaning(colName string) string {
	parts := strings.Split(strings.ToLower(colName), "_")
	decoded := make([]string, 0, len(parts))
	for _, part := range parts {
		if full, ok := abbreviations[part]; ok {
			decoded = append(decoded, full)
		} else {
			decoded = append(decoded, part)
		}
	}
	return strings.Join(decoded, " ")
}

// HasMeaning reports whether word appears as a whole word in the decoded meaning.
func (c *Column) HasMeaning(word string) bool {
	for _, w := range strings.Fields(c.Meaning) {
		if w == word {
			return true
		}
	}
	return false
}
