package people

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/testutil"
	clitest "github.com/thenoetrevino/crewdesk/internal/testutil/cli"
)

func TestMemberCommands(t *testing.T) {
	_, a := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, a, MemberCmd(),
		"create", "--name", "Ana", "--email", "ana@example.com", "--department", "Ops", "--json")
	require.NoError(t, err)
	data := clitest.Data(t, output)
	assert.Equal(t, "member", data["role"])
	assert.Equal(t, true, data["is_active"])
	assert.NotContains(t, data, "password_hash")
	id := data["id"].(string)

	_, err = clitest.ExecuteCLICommand(t, a, MemberCmd(),
		"create", "--name", "Ana Again", "--email", "ana@example.com")
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err), "duplicate email is rejected by the database")

	_, err = clitest.ExecuteCLICommand(t, a, MemberCmd(),
		"create", "--name", "Bad", "--email", "not-an-email")
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))

	output, err = clitest.ExecuteCLICommand(t, a, MemberCmd(), "update", "--id", id, "--active=false", "--json")
	require.NoError(t, err)
	data = clitest.Data(t, output)
	assert.Equal(t, false, data["is_active"])
	assert.Equal(t, "Ops", data["department"])
}

func TestStaffCommands(t *testing.T) {
	_, a := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, a, AdminCmd(),
		"create", "--name", "Root", "--email", "root@example.com", "--json")
	require.NoError(t, err)
	data := clitest.Data(t, output)
	assert.Equal(t, "admin", data["type"])
	assert.NotContains(t, data, "department")

	_, err = clitest.ExecuteCLICommand(t, a, AdminCmd(),
		"create", "--name", "Root", "--email", "root2@example.com", "--department", "Ops")
	assert.Error(t, err, "admins take no department")

	output, err = clitest.ExecuteCLICommand(t, a, ProjectManagerCmd(),
		"create", "--name", "Pat", "--email", "pat@example.com", "--department", "Delivery", "--json")
	require.NoError(t, err)
	data = clitest.Data(t, output)
	assert.Equal(t, "project_manager", data["type"])
	assert.Equal(t, "Delivery", data["department"])

	output, err = clitest.ExecuteCLICommand(t, a, ProjectManagerCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Found 1 project managers")
	assert.Contains(t, output, "Delivery")
}

func TestUserList(t *testing.T) {
	repo, a := clitest.SetupCLITest(t)
	member := testutil.CreateTestMember(t, repo, "Zoe", "zoe@example.com")
	admin := testutil.CreateTestStaff(t, repo.Admins, "Adam", "adam@example.com")
	pm := testutil.CreateTestStaff(t, repo.ProjectManagers, "Bea", "bea@example.com")

	output, err := clitest.ExecuteCLICommand(t, a, UserCmd(), "list", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, []string{member.ID, admin.ID, pm.ID}, strings.Fields(output))

	output, err = clitest.ExecuteCLICommand(t, a, UserCmd(), "list")
	require.NoError(t, err)
	assert.Contains(t, output, "Found 3 users")
	assert.Contains(t, output, "project_manager")
}
