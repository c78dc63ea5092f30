package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/crewdesk/internal/models"
)

// ============================================================================
// Mock Types for Testing
// ============================================================================

type mockDataWithID struct {
	ID   string
	Name string
}

func (m mockDataWithID) GetID() string {
	return m.ID
}

func newFormatter(jsonOutput, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonOutput, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success
// ============================================================================

func TestOutputFormatter_Success_JSON(t *testing.T) {
	f, out, _ := newFormatter(true, false)
	require.NoError(t, f.Success(mockDataWithID{ID: "abc", Name: "Test"}, nil))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, true, result["success"])
	assert.Equal(t, "Test", result["data"].(map[string]any)["Name"])
}

func TestOutputFormatter_Success_Quiet(t *testing.T) {
	f, out, _ := newFormatter(false, true)
	require.NoError(t, f.Success(mockDataWithID{ID: "abc"}, func(w io.Writer) {
		t.Error("human output must not run in quiet mode")
	}))
	assert.Equal(t, "abc\n", out.String())

	out.Reset()
	require.NoError(t, f.Success("no id here", nil))
	assert.Empty(t, out.String())
}

func TestOutputFormatter_Success_JSONWinsOverQuiet(t *testing.T) {
	f, out, _ := newFormatter(true, true)
	require.NoError(t, f.Success(mockDataWithID{ID: "abc"}, nil))
	assert.Contains(t, out.String(), `"success":true`)
}

func TestOutputFormatter_Success_Human(t *testing.T) {
	f, out, _ := newFormatter(false, false)
	require.NoError(t, f.Success(1, func(w io.Writer) { fmt.Fprint(w, "rendered") }))
	assert.Equal(t, "rendered", out.String())

	out.Reset()
	require.NoError(t, f.Success(mockDataWithID{ID: "x", Name: "y"}, nil))
	assert.Equal(t, "{ID:x Name:y}\n", out.String())
}

func TestOutputFormatter_IDs(t *testing.T) {
	f, out, _ := newFormatter(false, true)
	require.NoError(t, f.IDs([]string{"a", "b"}))
	assert.Equal(t, "a\nb\n", out.String())
}

// ============================================================================
// Errors
// ============================================================================

func TestOutputFormatter_Error_JSON(t *testing.T) {
	f, out, errOut := newFormatter(true, false)
	require.NoError(t, f.ErrorWithSuggestion("NOT_FOUND", "task x not found", "list first"))

	var result map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	assert.Equal(t, false, result["success"])
	errData := result["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errData["code"])
	assert.Equal(t, "list first", errData["suggestion"])
	assert.Empty(t, errOut.String())
}

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newFormatter(false, false)
	require.NoError(t, f.Error("ERROR", "boom"))
	assert.Empty(t, out.String())
	assert.Equal(t, "Error: boom\n", errOut.String())
}

func TestOutputFormatter_Fail(t *testing.T) {
	f, _, errOut := newFormatter(false, false)
	err := f.Fail(fmt.Errorf("failed to get task: %w", &models.NotFoundError{Collection: "tasks", ID: "x"}))

	assert.Equal(t, ExitNotFound, ExitCode(err))
	assert.True(t, models.IsNotFound(err))
	assert.True(t, strings.HasPrefix(errOut.String(), "Error: failed to get task"))
	assert.Contains(t, errOut.String(), "Suggestion:")
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantCode  int
		wantLabel string
	}{
		{"nil", nil, ExitSuccess, ""},
		{"not found", &models.NotFoundError{Collection: "tasks", ID: "x"}, ExitNotFound, "NOT_FOUND"},
		{"validation", models.NewValidationError("name", "is required"), ExitValidation, "VALIDATION_ERROR"},
		{"backend rejection", &models.ValidationError{Message: "rejected", Backend: true}, ExitValidation, "VALIDATION_ERROR"},
		{"usage", Usage(errors.New("--id is required")), ExitUsage, "USAGE_ERROR"},
		{"data", Exit(ExitDataErr, errors.New("bad file")), ExitDataErr, "DATA_ERROR"},
		{"persistence", &models.PersistenceError{Op: "list", Collection: "tasks", Err: errors.New("disk")}, ExitError, "ERROR"},
		{"wrapped exit", Exit(ExitNotFound, &models.NotFoundError{Collection: "tasks", ID: "x"}), ExitNotFound, "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, label := Classify(tt.err)
			assert.Equal(t, tt.wantCode, code)
			assert.Equal(t, tt.wantLabel, label)
		})
	}
}

// ============================================================================
// Helpers
// ============================================================================

func TestConfirm(t *testing.T) {
	var out bytes.Buffer
	assert.True(t, Confirm(strings.NewReader("y\n"), &out, "Delete?"))
	assert.True(t, Confirm(strings.NewReader("YES"), &out, "Delete?"))
	assert.False(t, Confirm(strings.NewReader("n\n"), &out, "Delete?"))
	assert.False(t, Confirm(strings.NewReader(""), &out, "Delete?"))
	assert.Contains(t, out.String(), "Delete? (y/N): ")
}

func TestFormatters(t *testing.T) {
	s := "x"
	empty := ""
	assert.Equal(t, "x", Deref(&s))
	assert.Equal(t, "-", Deref(&empty))
	assert.Equal(t, "-", Deref(nil))
	assert.Equal(t, "-", FormatDate(models.Date{}))
	assert.Equal(t, "2025-04-30", FormatDate(models.MustParseDate("2025-04-30")))
	assert.Equal(t, "-", FormatTime(nil))
	assert.Equal(t, "1.5h", FormatHours(1.5))
	assert.Equal(t, "yes", YesNo(true))
}
