package schema

import (
	"log"
	"strings"

	"github.com/jinzhu/inflection"
)

// ---------------------------------------------------------------------
// 1. Key / Foreign Key Inference
// ---------------------------------------------------------------------

// InferDependencies marks each table's key column and derives foreign keys
// from column names:
//
//   - the key is "<singular table>_id", otherwise the first integer column
//     that is not another table's key;
//   - a non-key column named like another table's key, or ending in
//     "_<key>" (start_station_id -> station_id), references that table.
func InferDependencies(tables []*Table) {
	keyOwner := make(map[string]*Table)

	// Pass 1: keys named after the table.
	for _, t := range tables {
		for _, c := range t.Columns {
			c.IsKey = false
		}
		want := inflection.Singular(strings.ToLower(t.Name)) + "_id"
		for _, c := range t.Columns {
			if strings.ToLower(c.Name) == want {
				c.IsKey = true
				keyOwner[strings.ToLower(c.Name)] = t
				break
			}
		}
	}

	// Pass 2: first integer column for tables still without a key.
	for _, t := range tables {
		if t.KeyColumn() != nil || len(t.Columns) == 0 {
			continue
		}
		first := t.Columns[0]
		if !first.IsInteger() {
			continue
		}
		if _, taken := keyOwner[strings.ToLower(first.Name)]; taken {
			continue
		}
		first.IsKey = true
		keyOwner[strings.ToLower(first.Name)] = t
	}

	// Pass 3: foreign keys.
	for _, t := range tables {
		t.ForeignKeys = nil
		t.Dependencies = []string{}
		for _, c := range t.Columns {
			if c.IsKey {
				continue
			}
			ref, refCol := lookupKeyOwner(keyOwner, strings.ToLower(c.Name))
			if ref == nil || ref == t {
				continue
			}
			t.ForeignKeys = append(t.ForeignKeys, &ForeignKey{
				Column:    c.Name,
				RefTable:  ref.Name,
				RefColumn: refCol,
			})
			if !contains(t.Dependencies, ref.Name) {
				t.Dependencies = append(t.Dependencies, ref.Name)
			}
		}
	}
}

func lookupKeyOwner(keyOwner map[string]*Table, name string) (*Table, string) {
	if t, ok := keyOwner[name]; ok {
		return t, t.KeyColumn().Name
	}
	// Longest key suffix wins so that "end_station_id" does not match a shorter key.
	var best *Table
	bestLen := 0
	for key, t := range keyOwner {
		if strings.HasSuffix(name, "_"+key) && len(key) > bestLen {
			best, bestLen = t, len(key)
		}
	}
	if best == nil {
		return nil, ""
	}
	return best, best.KeyColumn().Name
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------
// 2. Sorting Algorithm (Topological / Greedy)
// ---------------------------------------------------------------------

// SortTablesByFKCount sorts tables by dependency order.
// It handles circular dependencies by using a scoring system.
func SortTablesByFKCount(tables []*Table) []*Table {
	var sorted []*Table
	processed := make(map[string]bool)
	known := make(map[string]*Table, len(tables))
	for _, t := range tables {
		known[t.Name] = t
	}

	// Keep looping until all tables are processed
	for len(sorted) < len(tables) {
		added := false

		// Pass 1: Add tables whose dependencies are fully satisfied
		for _, t := range tables {
			if processed[t.Name] {
				continue
			}

			allDepsProcessed := true
			for _, depName := range t.Dependencies {
				// Dependencies outside the selection never block.
				if _, ok := known[depName]; ok && !processed[depName] {
					allDepsProcessed = false
					break
				}
			}

			if allDepsProcessed {
				sorted = append(sorted, t)
				processed[t.Name] = true
				added = true
			}
		}

		// Pass 2: If no table added, we have a cycle. Break it using heuristic score.
		if !added {
			var bestTable *Table
			bestScore := -999999

			for _, t := range tables {
				if processed[t.Name] {
					continue
				}

				// Penalty: unprocessed FKs. Bonus: taking part in a 2-cycle.
				score := 0
				unprocessedDeps := 0
				isCircular := false
				for _, depName := range t.Dependencies {
					dep, ok := known[depName]
					if !ok || processed[depName] {
						continue
					}
					unprocessedDeps++
					if contains(dep.Dependencies, t.Name) {
						isCircular = true
					}
				}
				score -= unprocessedDeps * 100
				if isCircular {
					score += 500
				}

				// Tie-breaker: Name (Deterministic)
				if score > bestScore {
					bestScore = score
					bestTable = t
				} else if score == bestScore && (bestTable == nil || t.Name > bestTable.Name) {
					bestTable = t
				}
			}

			if bestTable == nil {
				log.Println("[Sort] Error: remaining tables cannot be sorted.")
				break
			}
			sorted = append(sorted, bestTable)
			processed[bestTable.Name] = true
			log.Printf("[Sort] Breaking circular dependency: %s (Score: %d)\n", bestTable.Name, bestScore)
		}
	}

	return sorted
}

// Select returns the tables whose names match names (case-insensitive), in
// catalog order. An empty names list selects every table.
func Select(tables []*Table, names []string) []*Table {
	if len(names) == 0 {
		return tables
	}
	req := make(map[string]bool, len(names))
	for _, n := range names {
		req[strings.ToLower(strings.TrimSpace(n))] = true
	}
	var out []*Table
	for _, t := range tables {
		if req[strings.ToLower(t.Name)] {
			out = append(out, t)
		}
	}
	return out
}
