package dialect

import (
	"fmt"
	"strings"
)

// GetDialect returns the Dialect implementation for a dialect name.
func GetDialect(name string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "mysql", "mariadb":
		return &MysqlDialect{}, nil
	case "postgres", "postgresql", "pg":
		return &PostgresDialect{}, nil
	case "sqlite", "sqlite3":
		return &SqliteDialect{}, nil
	default:
		return nil, fmt.Errorf("unknown dialect %q (want mysql, postgres or sqlite)", name)
	}
}

// Ensure interface implementation
var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*SqliteDialect)(nil)
