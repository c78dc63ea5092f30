package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/thenoetrevino/crewdesk/internal/models"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

// ============================================================================
// CLOCK
// ============================================================================

// clock hands out strictly increasing microsecond timestamps so that two
// inserts in the same process never share a created_at.
type clock struct {
	mu   sync.Mutex
	last time.Time
}

var stamps = &clock{}

func (c *clock) now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	t := time.Now().UTC().Truncate(time.Microsecond)
	if !t.After(c.last) {
		t = c.last.Add(time.Microsecond)
	}
	c.last = t
	return t
}

func newID() string {
	return uuid.NewString()
}

// validID rejects ids that were never generated by this layer. Postgres would
// otherwise fail the uuid cast instead of reporting a miss.
func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// ============================================================================
// SCANNERS
// ============================================================================

var timeLayouts = []string{
	sqliteTimeLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
}

func parseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// timestamp scans a timestamp column that may arrive as time.Time or text
type timestamp struct {
	dst *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*ts.dst = time.Time{}
	case time.Time:
		*ts.dst = v.UTC()
	case string:
		t, err := parseTimestamp(v)
		if err != nil {
			return err
		}
		*ts.dst = t
	case []byte:
		t, err := parseTimestamp(string(v))
		if err != nil {
			return err
		}
		*ts.dst = t
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
	return nil
}

// nullTimestamp is timestamp for optional columns
type nullTimestamp struct {
	dst **time.Time
}

func (nt nullTimestamp) Scan(src any) error {
	if src == nil {
		*nt.dst = nil
		return nil
	}
	var t time.Time
	if err := (timestamp{dst: &t}).Scan(src); err != nil {
		return err
	}
	*nt.dst = &t
	return nil
}

// stringList scans a JSON array column into a string slice
type stringList struct {
	dst *[]string
}

func (sl stringList) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	out := []string{}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("failed to decode string list: %w", err)
		}
	}
	if out == nil {
		out = []string{}
	}
	*sl.dst = out
	return nil
}

// rawJSON scans a JSON column as-is, NULL becomes an empty array
type rawJSON struct {
	dst *json.RawMessage
}

func (rj rawJSON) Scan(src any) error {
	raw, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if len(raw) == 0 {
		raw = []byte("[]")
	}
	*rj.dst = append(json.RawMessage(nil), raw...)
	return nil
}

func jsonBytes(src any) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	}
	return nil, fmt.Errorf("cannot scan %T as json", src)
}

// encodeList stores a string slice as a JSON array, nil becomes []
func encodeList(list []string) (string, error) {
	if list == nil {
		return "[]", nil
	}
	b, err := json.Marshal(list)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// encodeRaw stores opaque JSON, empty becomes []
func encodeRaw(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return "[]", nil
	}
	if !json.Valid(raw) {
		return "", models.NewValidationError("attachments", "must be valid JSON")
	}
	return string(raw), nil
}

// ============================================================================
// COLUMN SETS
// ============================================================================

// columnSet collects column/value pairs for an INSERT or an UPDATE SET list
type columnSet struct {
	cols []string
	args []any
}

func (c *columnSet) add(col string, v any) {
	c.cols = append(c.cols, col)
	c.args = append(c.args, v)
}

// ============================================================================
// GENERIC TABLE
// ============================================================================

// tableSpec describes how one collection maps onto its SQL table
type tableSpec[T, N, P any] struct {
	name    string
	columns []string
	orderBy string
	scan    func(rowScanner) (*T, error)
	insert  func(Dialect, N) (columnSet, error)
	patch   func(Dialect, P) (columnSet, error)
}

// table implements the record access contract shared by every collection
type table[T, N, P any] struct {
	db   *DB
	spec tableSpec[T, N, P]
}

func (t *table[T, N, P]) selectList() string {
	return strings.Join(t.spec.columns, ", ")
}

func (t *table[T, N, P]) notFound(id string) error {
	return &models.NotFoundError{Collection: t.spec.name, ID: id}
}

// query runs a SELECT over the table with an optional WHERE clause
func (t *table[T, N, P]) query(ctx context.Context, where, orderBy string, args ...any) ([]*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s", t.selectList(), t.spec.name)
	if where != "" {
		query += " WHERE " + where
	}
	query += " ORDER BY " + orderBy

	rows, err := t.db.QueryContext(ctx, t.db.Dialect.Rebind(query), args...)
	if err != nil {
		return nil, classify("list", t.spec.name, err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			slog.Error("error closing rows", "collection", t.spec.name, "error", err)
		}
	}()

	items := make([]*T, 0)
	for rows.Next() {
		item, err := t.spec.scan(rows)
		if err != nil {
			return nil, &models.PersistenceError{Op: "scan", Collection: t.spec.name, Err: err}
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, classify("list", t.spec.name, err)
	}
	return items, nil
}

// GetAll returns every row, newest first
func (t *table[T, N, P]) GetAll(ctx context.Context) ([]*T, error) {
	return t.query(ctx, "", t.spec.orderBy)
}

// GetByID returns the row with the given id or a NotFoundError
func (t *table[T, N, P]) GetByID(ctx context.Context, id string) (*T, error) {
	if !validID(id) {
		return nil, t.notFound(id)
	}
	query := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", t.selectList(), t.spec.name)
	item, err := t.spec.scan(t.db.QueryRowContext(ctx, t.db.Dialect.Rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, t.notFound(id)
	}
	if err != nil {
		return nil, classify("get", t.spec.name, err)
	}
	return item, nil
}

// Create inserts a row with a generated id and timestamps and returns it
func (t *table[T, N, P]) Create(ctx context.Context, input N) (*T, error) {
	set, err := t.spec.insert(t.db.Dialect, input)
	if err != nil {
		return nil, err
	}
	now := t.db.Dialect.Timestamp(stamps.now())

	cols := append([]string{"id"}, set.cols...)
	cols = append(cols, "created_at", "updated_at")
	args := append([]any{newID()}, set.args...)
	args = append(args, now, now)

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", ")
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING %s",
		t.spec.name, strings.Join(cols, ", "), placeholders, t.selectList())

	item, err := t.spec.scan(t.db.QueryRowContext(ctx, t.db.Dialect.Rebind(query), args...))
	if err != nil {
		return nil, classify("create", t.spec.name, err)
	}
	return item, nil
}

// Update replaces the patched fields, refreshes updated_at and returns the row
func (t *table[T, N, P]) Update(ctx context.Context, id string, patch P) (*T, error) {
	if !validID(id) {
		return nil, t.notFound(id)
	}
	set, err := t.spec.patch(t.db.Dialect, patch)
	if err != nil {
		return nil, err
	}
	set.add("updated_at", t.db.Dialect.Timestamp(stamps.now()))

	assignments := make([]string, len(set.cols))
	for i, col := range set.cols {
		assignments[i] = col + " = ?"
	}
	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = ? RETURNING %s",
		t.spec.name, strings.Join(assignments, ", "), t.selectList())

	args := append(set.args, id)
	item, err := t.spec.scan(t.db.QueryRowContext(ctx, t.db.Dialect.Rebind(query), args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, t.notFound(id)
	}
	if err != nil {
		return nil, classify("update", t.spec.name, err)
	}
	return item, nil
}

// Delete removes the row, a missing id is reported as NotFound
func (t *table[T, N, P]) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return t.notFound(id)
	}
	query := fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.spec.name)
	result, err := t.db.ExecContext(ctx, t.db.Dialect.Rebind(query), id)
	if err != nil {
		return classify("delete", t.spec.name, err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return classify("delete", t.spec.name, err)
	}
	if n == 0 {
		return t.notFound(id)
	}
	return nil
}
