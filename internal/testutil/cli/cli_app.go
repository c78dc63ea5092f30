// Package cli holds helpers for CLI command tests. It is separate from
// testutil so that service tests do not import the app container.
package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/crewdesk/internal/app"
	clipkg "github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/database"
	"github.com/thenoetrevino/crewdesk/internal/testutil"
)

// SetupCLITest creates an in-memory DB and returns both the repository and
// an App over it. EventPublisher is nil; event publishing is tested elsewhere.
func SetupCLITest(t *testing.T) (*database.Repository, *app.App) {
	t.Helper()
	repo := testutil.SetupTestRepo(t)
	return repo, app.New(repo)
}

// ExecuteCLICommand runs cmd with args against testApp and returns what it
// wrote to stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args ...string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, testApp, cmd, "", args...)
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin content, for
// confirmation prompts
func ExecuteCLICommandWithInput(t *testing.T, testApp *app.App, cmd *cobra.Command, input string, args ...string) (string, error) {
	t.Helper()
	require.NotNil(t, testApp, "SetupCLITest must be called first")

	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(input))

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(clipkg.WithApp(context.Background(), testApp))
	return out.String(), err
}

// ParseJSON parses JSON output from CLI commands
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	require.NoError(t, json.Unmarshal([]byte(output), &result), "output: %s", output)
	return result
}

// Data returns the data object of a successful JSON response
func Data(t *testing.T, output string) map[string]any {
	t.Helper()
	result := ParseJSON(t, output)
	require.Equal(t, true, result["success"], "output: %s", output)
	data, ok := result["data"].(map[string]any)
	require.True(t, ok, "data is not an object: %s", output)
	return data
}
