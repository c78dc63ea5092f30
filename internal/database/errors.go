package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgconn"
	"github.com/thenoetrevino/crewdesk/internal/models"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// classify maps a driver error onto the model error taxonomy. Constraint and
// data-type rejections become ValidationErrors, everything else is a
// PersistenceError. The driver error stays reachable through Unwrap.
func classify(op, collection string, err error) error {
	if err == nil {
		return nil
	}

	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() & 0xff {
		case sqlite3.SQLITE_CONSTRAINT, sqlite3.SQLITE_MISMATCH:
			return &models.ValidationError{Message: collection + " rejected by database", Err: err, Backend: true}
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// class 23 is integrity constraint violation, 22 is data exception
		if strings.HasPrefix(pgErr.Code, "23") || strings.HasPrefix(pgErr.Code, "22") {
			return &models.ValidationError{Field: pgErr.ColumnName, Message: collection + " rejected by database", Err: err, Backend: true}
		}
	}

	return &models.PersistenceError{Op: op, Collection: collection, Err: err}
}
