package database

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Dialect captures the differences between the supported SQL backends
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// sqliteTimeLayout is fixed width so lexical order equals chronological order
const sqliteTimeLayout = "2006-01-02 15:04:05.000000"

// ParseDialect maps a configured driver name onto a Dialect
func ParseDialect(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case "", "sqlite", "sqlite3":
		return DialectSQLite, nil
	case "postgres", "postgresql", "pgx":
		return DialectPostgres, nil
	}
	return 0, fmt.Errorf("unsupported database driver %q", driver)
}

func (d Dialect) String() string {
	if d == DialectPostgres {
		return "postgres"
	}
	return "sqlite"
}

// DriverName is the database/sql driver registered for the dialect
func (d Dialect) DriverName() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

// Rebind rewrites ? placeholders into $n for postgres. Quoted literals are
// left untouched.
func (d Dialect) Rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 16)
	n := 0
	inQuote := false
	for i := 0; i < len(query); i++ {
		c := query[i]
		switch {
		case c == '\'':
			inQuote = !inQuote
			b.WriteByte(c)
		case c == '?' && !inQuote:
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Timestamp converts t into the value stored in timestamp columns
func (d Dialect) Timestamp(t time.Time) any {
	if d == DialectPostgres {
		return t.UTC()
	}
	return t.UTC().Format(sqliteTimeLayout)
}

// NullTimestamp is Timestamp for optional columns
func (d Dialect) NullTimestamp(t *time.Time) any {
	if t == nil {
		return nil
	}
	return d.Timestamp(*t)
}

// ddl substitutes the per-dialect column types into a schema template
func (d Dialect) ddl(schema string) string {
	var r *strings.Replacer
	if d == DialectPostgres {
		r = strings.NewReplacer(
			"{{uuid}}", "UUID",
			"{{ts}}", "TIMESTAMPTZ",
			"{{json}}", "JSONB",
			"{{serial}}", "BIGSERIAL PRIMARY KEY",
			"{{real}}", "DOUBLE PRECISION",
			"{{bool}}", "BOOLEAN",
			"{{false}}", "FALSE",
			"{{true}}", "TRUE",
		)
	} else {
		r = strings.NewReplacer(
			"{{uuid}}", "TEXT",
			"{{ts}}", "TIMESTAMP",
			"{{json}}", "TEXT",
			"{{serial}}", "INTEGER PRIMARY KEY AUTOINCREMENT",
			"{{real}}", "REAL",
			"{{bool}}", "BOOLEAN",
			"{{false}}", "0",
			"{{true}}", "1",
		)
	}
	return r.Replace(schema)
}
