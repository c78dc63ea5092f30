// Package operator names the person running a crewdesk command, for token
// subjects and audit log lines
package operator

import (
	"os"
	"os/user"
	"strings"
)

// Unknown is reported when no name can be found
const Unknown = "unknown"

// Name returns CREWDESK_OPERATOR when set, else the OS account name, else
// $USER, else Unknown
func Name() string {
	return resolve(os.LookupEnv, user.Current)
}

func resolve(lookup func(string) (string, bool), current func() (*user.User, error)) string {
	if v, ok := lookup("CREWDESK_OPERATOR"); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	if u, err := current(); err == nil && u.Username != "" {
		return u.Username
	}
	if v, ok := lookup("USER"); ok && v != "" {
		return v
	}
	return Unknown
}
