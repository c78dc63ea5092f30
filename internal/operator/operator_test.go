package operator

import (
	"errors"
	"os/user"
	"testing"

	"github.com/stretchr/testify/assert"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestResolve(t *testing.T) {
	osUser := func() (*user.User, error) { return &user.User{Username: "ana"}, nil }
	noUser := func() (*user.User, error) { return nil, errors.New("no passwd entry") }

	tests := []struct {
		name    string
		vars    map[string]string
		current func() (*user.User, error)
		want    string
	}{
		{"explicit operator wins", map[string]string{"CREWDESK_OPERATOR": " ops-bot ", "USER": "x"}, osUser, "ops-bot"},
		{"blank operator ignored", map[string]string{"CREWDESK_OPERATOR": "  "}, osUser, "ana"},
		{"os account", nil, osUser, "ana"},
		{"USER fallback", map[string]string{"USER": "ben"}, noUser, "ben"},
		{"nothing found", nil, noUser, Unknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resolve(env(tt.vars), tt.current))
		})
	}
}

func TestNameNeverEmpty(t *testing.T) {
	assert.NotEmpty(t, Name())
}
