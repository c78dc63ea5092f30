package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"
)

// ============================================================================
// Error Tests
// ============================================================================

func TestNotFoundError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("loading: %w", &NotFoundError{Collection: "tasks", ID: "abc"})

	if !errors.Is(err, ErrNotFound) {
		t.Fatal("wrapped NotFoundError should match ErrNotFound")
	}
	if !IsNotFound(err) {
		t.Error("IsNotFound should report true")
	}
	if got := (&NotFoundError{Collection: "tasks", ID: "abc"}).Error(); got != "tasks abc not found" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidationError_Messages(t *testing.T) {
	sentinel := errors.New("task name cannot be empty")

	tests := []struct {
		name string
		err  *ValidationError
		want string
	}{
		{"field and message", NewValidationError("status", "must be one of %s", "pending"), "invalid status: must be one of pending"},
		{"field and sentinel", Invalid("task_name", sentinel), "invalid task_name: task name cannot be empty"},
		{"bare", &ValidationError{}, "validation failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %q, want %q", got, tt.want)
			}
		})
	}

	if !errors.Is(Invalid("task_name", sentinel), sentinel) {
		t.Error("Invalid should unwrap to its sentinel")
	}
	if !IsValidation(fmt.Errorf("wrap: %w", Invalid("x", sentinel))) {
		t.Error("IsValidation should see through wrapping")
	}
}

func TestBackendMessage(t *testing.T) {
	native := errors.New("UNIQUE constraint failed: members.email")
	err := &PersistenceError{Op: "create", Collection: "members", Err: native}

	if got := BackendMessage(fmt.Errorf("outer: %w", err)); got != native.Error() {
		t.Errorf("BackendMessage() = %q, want %q", got, native.Error())
	}
	if BackendMessage(nil) != "" {
		t.Error("BackendMessage(nil) should be empty")
	}
}

// ============================================================================
// Date Tests
// ============================================================================

func TestParseDate(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-03-14", "2025-03-14", false},
		{" 2025-03-14 ", "2025-03-14", false},
		{"2025-03-14T10:30:00Z", "2025-03-14", false},
		{"", "", false},
		{"14/03/2025", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDate(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("ParseDate(%q) = %q, want %q", tt.in, got.String(), tt.want)
		}
	}
}

func TestDate_JSON(t *testing.T) {
	var payload struct {
		Due  Date `json:"due"`
		Open Date `json:"open"`
	}
	if err := json.Unmarshal([]byte(`{"due":"2025-01-31","open":null}`), &payload); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if payload.Due.String() != "2025-01-31" || !payload.Open.IsZero() {
		t.Fatalf("unexpected decode: %+v", payload)
	}

	out, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(out) != `{"due":"2025-01-31","open":null}` {
		t.Errorf("Marshal = %s", out)
	}

	if err := json.Unmarshal([]byte(`{"due":"soon"}`), &payload); err == nil {
		t.Error("expected an error for a malformed date")
	}
}

func TestDate_ScanAndValue(t *testing.T) {
	var d Date
	if err := d.Scan(time.Date(2025, 6, 1, 23, 59, 0, 0, time.UTC)); err != nil {
		t.Fatalf("Scan: %v", err)
	}
	v, err := d.Value()
	if err != nil || v != "2025-06-01" {
		t.Errorf("Value() = %v, %v", v, err)
	}

	if err := d.Scan(nil); err != nil || !d.IsZero() {
		t.Error("Scan(nil) should give the zero Date")
	}
	if v, _ := d.Value(); v != nil {
		t.Error("zero Date should store as NULL")
	}
}

// ============================================================================
// Enum and view Tests
// ============================================================================

func TestEnums_Valid(t *testing.T) {
	if !TaskStatusBlocked.Valid() || TaskStatus("done").Valid() {
		t.Error("TaskStatus.Valid is wrong")
	}
	if !LeaveStatusRejected.Valid() || LeaveStatus("").Valid() {
		t.Error("LeaveStatus.Valid is wrong")
	}
	if !ProjectStatusOnHold.Valid() || ProjectStatus("paused").Valid() {
		t.Error("ProjectStatus.Valid is wrong")
	}
	if !UserKindProjectManager.Valid() || UserKind("owner").Valid() {
		t.Error("UserKind.Valid is wrong")
	}
}

func TestToUser(t *testing.T) {
	dept := "Design"
	member := &Member{ID: "m1", Name: "Lena", Email: "lena@example.com", Department: &dept, IsActive: true, Role: UserKindAdmin}
	pm := &Staff{ID: "p1", Name: "Omar", Email: "omar@example.com", Role: UserKindProjectManager}

	u := ToUser(member)
	if u.Type != UserKindMember {
		t.Errorf("member type = %s, want member regardless of role column", u.Type)
	}
	if u.Department == nil || *u.Department != "Design" || !u.IsActive {
		t.Errorf("unexpected member projection: %+v", u)
	}

	if got := ToUser(pm); got.Type != UserKindProjectManager || got.IsActive {
		t.Errorf("unexpected staff projection: %+v", got)
	}
}

func TestMember_HidesPasswordHash(t *testing.T) {
	out, err := json.Marshal(&Member{ID: "m1", PasswordHash: "secret"})
	if err != nil {
		t.Fatal(err)
	}
	var fields map[string]any
	if err := json.Unmarshal(out, &fields); err != nil {
		t.Fatal(err)
	}
	if _, ok := fields["password_hash"]; ok {
		t.Error("password_hash must not be serialised")
	}
}
