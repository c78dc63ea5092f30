package leave

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	clitest "github.com/thenoetrevino/crewdesk/internal/testutil/cli"
)

func TestLeaveCommands(t *testing.T) {
	_, a := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, a, LeaveCmd(),
		"create", "--user-id", "u1", "--type", "sick", "--reason", "flu",
		"--from", "2025-03-03", "--to", "2025-03-04", "--json")
	require.NoError(t, err)
	data := clitest.Data(t, output)
	assert.Equal(t, "pending", data["status"])
	assert.Equal(t, "2025-03-03", data["from_date"])
	assert.Nil(t, data["leave_date"])
	id := data["id"].(string)

	output, err = clitest.ExecuteCLICommand(t, a, LeaveCmd(), "update", "--id", id, "--status", "approved", "--approved-by", "boss", "--json")
	require.NoError(t, err)
	data = clitest.Data(t, output)
	assert.Equal(t, "approved", data["status"])
	assert.Equal(t, "boss", data["approved_by"])
	assert.Equal(t, "flu", data["reason"])

	_, err = clitest.ExecuteCLICommand(t, a, LeaveCmd(),
		"create", "--user-id", "u1", "--type", "holiday", "--reason", "beach")
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	output, err = clitest.ExecuteCLICommand(t, a, LeaveCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Found 1 leaves")
}
