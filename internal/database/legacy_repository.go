package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strconv"
	"strings"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// LegacyTable serves one of the integer-keyed tables behind the /api proxy.
// Writes take a field map so that only the fields a client sent are touched.
type LegacyTable[T any] struct {
	db      *DB
	name    string
	fields  []string
	stamped bool
	scan    func(rowScanner) (*T, error)
}

// NewLegacyTaskTable binds the legacy task table to db
func NewLegacyTaskTable(db *DB) *LegacyTable[models.LegacyTask] {
	return &LegacyTable[models.LegacyTask]{
		db:   db,
		name: models.CollectionLegacyTask,
		fields: []string{
			"title", "status", "due_date", "priority", "assigned_to",
			"description", "assigned_date", "project_name",
		},
		scan: func(row rowScanner) (*models.LegacyTask, error) {
			t := &models.LegacyTask{}
			err := row.Scan(&t.ID, &t.Title, &t.Status, &t.DueDate, &t.Priority,
				&t.AssignedTo, &t.Description, &t.AssignedDate, &t.ProjectName)
			if err != nil {
				return nil, err
			}
			return t, nil
		},
	}
}

// NewLegacyFinanceTable binds the legacy finance table to db
func NewLegacyFinanceTable(db *DB) *LegacyTable[models.LegacyFinance] {
	return &LegacyTable[models.LegacyFinance]{
		db:   db,
		name: models.CollectionLegacyFinance,
		fields: []string{
			"description", "amount", "type", "date", "project_name",
			"due_date", "contact_person", "contact_person_contact_no",
		},
		scan: func(row rowScanner) (*models.LegacyFinance, error) {
			f := &models.LegacyFinance{}
			err := row.Scan(&f.ID, &f.Description, &f.Amount, &f.Type, &f.Date,
				&f.ProjectName, &f.DueDate, &f.ContactPerson, &f.ContactPersonContactNo)
			if err != nil {
				return nil, err
			}
			return f, nil
		},
	}
}

// NewLegacyUserTable binds the legacy users table to db
func NewLegacyUserTable(db *DB) *LegacyTable[models.LegacyUser] {
	return &LegacyTable[models.LegacyUser]{
		db:      db,
		name:    models.CollectionLegacyUsers,
		fields:  []string{"name", "email", "mobile", "address"},
		stamped: true,
		scan: func(row rowScanner) (*models.LegacyUser, error) {
			u := &models.LegacyUser{}
			err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Mobile, &u.Address, nullTimestamp{&u.CreatedAt})
			if err != nil {
				return nil, err
			}
			return u, nil
		},
	}
}

// Name is the table this proxy serves
func (t *LegacyTable[T]) Name() string {
	return t.name
}

func (t *LegacyTable[T]) selectList() string {
	cols := append([]string{"id"}, t.fields...)
	if t.stamped {
		cols = append(cols, "created_at")
	}
	return strings.Join(cols, ", ")
}

// pick keeps only the known fields of a client payload, in a stable order
func (t *LegacyTable[T]) pick(fields map[string]any) columnSet {
	var set columnSet
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		for _, known := range t.fields {
			if k == known {
				set.add(k, fields[k])
				break
			}
		}
	}
	return set
}

// List returns every row, highest id first
func (t *LegacyTable[T]) List(ctx context.Context) ([]*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY id DESC", t.selectList(), t.name)
	rows, err := t.db.QueryContext(ctx, query)
	if err != nil {
		return nil, classify("list", t.name, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "collection", t.name, "error", err)
		}
	}()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := t.scan(rows)
		if err != nil {
			return nil, &models.PersistenceError{Op: "scan", Collection: t.name, Err: err}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list", t.name, err)
	}
	return items, nil
}

// Create inserts the known fields of the payload and returns the new row
func (t *LegacyTable[T]) Create(ctx context.Context, fields map[string]any) (*T, error) {
	set := t.pick(fields)
	if t.stamped {
		set.add("created_at", t.db.Dialect.Timestamp(stamps.now()))
	}

	var query string
	if len(set.cols) == 0 {
		query = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", t.name, t.selectList())
	} else {
		placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(set.cols)), ", ")
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
			t.name, strings.Join(set.cols, ", "), placeholders, t.selectList())
	}

	item, err := t.scan(t.db.QueryRowContext(ctx, t.db.Dialect.Rebind(query), set.args...))
	if err != nil {
		return nil, classify("create", t.name, err)
	}
	return item, nil
}

// Update replaces only the known fields present in the payload
func (t *LegacyTable[T]) Update(ctx context.Context, id int64, fields map[string]any) (*T, error) {
	set := t.pick(fields)

	var query string
	if len(set.cols) == 0 {
		query = fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", t.selectList(), t.name)
	} else {
		assignments := make([]string, len(set.cols))
		for i, col := range set.cols {
			assignments[i] = col + " = ?"
		}
		query = fmt.Sprintf("UPDATE %s SET %s WHERE id = ? RETURNING %s",
			t.name, strings.Join(assignments, ", "), t.selectList())
	}

	args := append(set.args, id)
	item, err := t.scan(t.db.QueryRowContext(ctx, t.db.Dialect.Rebind(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &models.NotFoundError{Collection: t.name, ID: strconv.FormatInt(id, 10)}
	}
	if err != nil {
		return nil, classify("update", t.name, err)
	}
	return item, nil
}

// Delete removes the row. Deleting a missing id succeeds, as the proxy always did.
func (t *LegacyTable[T]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.name)
	if _, err := t.db.ExecContext(ctx, t.db.Dialect.Rebind(query), id); err != nil {
		return classify("delete", t.name, err)
	}
	return nil
}

// Ping checks the proxy's backing table is reachable
func (t *LegacyTable[T]) Ping(ctx context.Context) error {
	var n int
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s", t.name)
	if err := t.db.QueryRowContext(ctx, query).Scan(&n); err != nil {
		return classify("ping", t.name, err)
	}
	return nil
}
