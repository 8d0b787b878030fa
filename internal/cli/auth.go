package cli

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/jobfocus/internal/credentials"
)

// NewAuthCmd creates the auth command group for managing the API token.
func NewAuthCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "auth", Short: "Manage the jobs API token"}
	cmd.AddCommand(newAuthSetTokenCmd(), newAuthStatusCmd(), newAuthClearCmd())
	return cmd
}

func newAuthSetTokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-token [token]",
		Short: "Store the JWT sent as the bearer token",
		Long: `Store the JWT sent as the bearer token. With no argument, or with "-",
the token is read from the first line of stdin.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			token := ""
			if len(args) == 1 && args[0] != "-" {
				token = args[0]
			} else {
				line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
				if err != nil && line == "" {
					return fmt.Errorf("reading token from stdin: %w", err)
				}
				token = line
			}
			token = strings.TrimSpace(token)
			if token == "" {
				return errors.New("token must not be empty")
			}

			store := credentialStore()
			if err := store.Set(credentials.KeyJWTToken, token); err != nil {
				return err
			}
			logger.Info().Ctx(cmd.Context()).Str("path", store.Path()).Msg("token stored")
			cmd.Printf("Token saved to %s\n", store.Path())
			return nil
		},
	}
}

func newAuthStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show where the token comes from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tok, src, err := credentials.NewTokenSource(credentialStore()).Lookup()
			if err != nil {
				return err
			}
			switch src {
			case credentials.SourceEnv:
				cmd.Printf("Token: %s (from $%s)\n", maskToken(tok), credentials.EnvJWTToken)
			case credentials.SourceStore:
				cmd.Printf("Token: %s (from %s)\n", maskToken(tok), credentialStore().Path())
			default:
				cmd.Println("No token configured; requests are sent with an empty bearer token.")
			}
			cmd.Printf("API: %s\n", newJobsClient().BaseURL())
			return nil
		},
	}
}

func newAuthClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove the stored token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := credentialStore()
			if err := store.Delete(credentials.KeyJWTToken); err != nil {
				return err
			}
			cmd.Println("Stored token removed.")
			return nil
		},
	}
}

// maskToken keeps the first and last four characters of tok.
func maskToken(tok string) string {
	const keep = 4
	if tok == "" {
		return "(empty)"
	}
	if len(tok) <= 2*keep {
		return strings.Repeat("*", len(tok))
	}
	return tok[:keep] + strings.Repeat("*", len(tok)-2*keep) + tok[len(tok)-keep:]
}
