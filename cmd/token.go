package cmd

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/crewdesk/internal/cli"
	"github.com/thenoetrevino/crewdesk/internal/config"
	"github.com/thenoetrevino/crewdesk/internal/operator"
	"github.com/thenoetrevino/crewdesk/internal/server"
)

type tokenResult struct {
	Role  string `json:"role"`
	Token string `json:"token"`
}

// GetID lets --quiet print just the token
func (t tokenResult) GetID() string { return t.Token }

func tokenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API token signed with auth.jwt_secret",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := cli.NewFormatter(cmd)
			role, _ := cmd.Flags().GetString("role")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, err := config.Load(cli.ConfigPath(cmd.Context()))
			if err != nil {
				return formatter.Fail(cli.Usage(err))
			}
			if !cfg.Auth.Enabled() {
				return formatter.Fail(cli.Usage(errors.New("auth.jwt_secret is not set")))
			}

			claims := jwt.MapClaims{"sub": operator.Name(), "iat": time.Now().Unix()}
			if ttl > 0 {
				claims["exp"] = time.Now().Add(ttl).Unix()
			}
			token, err := server.SignToken(cfg.Auth.JWTSecret, role, claims)
			if err != nil {
				return formatter.Fail(err)
			}
			return formatter.Success(tokenResult{Role: role, Token: token}, func(w io.Writer) {
				fmt.Fprintln(w, token)
			})
		},
	}
	cmd.Flags().String("role", "service_role", "Role claim")
	cmd.Flags().Duration("ttl", 0, "Token lifetime, 0 never expires")
	cli.AddOutputFlags(cmd)
	return cmd
}
