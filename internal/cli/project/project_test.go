package project

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	clitest "github.com/thenoetrevino/crewdesk/internal/testutil/cli"
)

func TestProjectCommands(t *testing.T) {
	_, a := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, a, ProjectCmd(),
		"create", "--name", "Website", "--client", "Acme", "--start", "2025-01-01", "--end", "2025-06-30", "--json")
	require.NoError(t, err)
	data := clitest.Data(t, output)
	assert.Equal(t, "active", data["status"])
	assert.Equal(t, "Acme", data["client_name"])
	id := data["id"].(string)

	tests := []struct {
		name     string
		args     []string
		wantCode int
	}{
		{"end before start", []string{"create", "--name", "Backwards", "--start", "2025-06-01", "--end", "2025-01-01"}, cli.ExitValidation},
		{"unknown status", []string{"update", "--id", id, "--status", "paused"}, cli.ExitValidation},
		{"unknown id", []string{"show", "--id", "nope"}, cli.ExitNotFound},
		{"delete in json mode skips the prompt", []string{"delete", "--id", id, "--json"}, cli.ExitSuccess},
		{"second delete", []string{"delete", "--id", id, "--force"}, cli.ExitNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := clitest.ExecuteCLICommand(t, a, ProjectCmd(), tt.args...)
			assert.Equal(t, tt.wantCode, cli.ExitCode(err))
		})
	}
}
