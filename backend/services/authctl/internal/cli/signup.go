package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hackathon/backend/libs/authclient"
)

func newSignUpCommand(root *rootOptions) *cobra.Command {
	var email, password, role string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account with the given role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" || password == "" {
				return failed(authclient.OpSignUp, errMissingCredentials)
			}

			creds := authclient.SignInCredentials(strings.TrimSpace(email), password)
			if strings.TrimSpace(role) != "" {
				parsed, err := authclient.ParseRole(role)
				if err != nil {
					return fmt.Errorf("unknown role %q; run \"authctl roles\" for the list", role)
				}
				creds = authclient.SignUpCredentials(creds.Email, password, parsed)
			}

			s, err := root.open()
			if err != nil {
				return err
			}
			defer s.logger.Sync()

			resp, err := s.auth.SignUp(cmd.Context(), creds)
			if err != nil {
				return failed(authclient.OpSignUp, err)
			}

			out := cmd.OutOrStdout()
			if r, err := resp.RequireRole(); err == nil {
				fmt.Fprintf(out, "Signed up %s as %s\n", resp.Email, r.DisplayName())
			} else {
				fmt.Fprintf(out, "Signed up %s\n", resp.Email)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	cmd.Flags().StringVar(&role, "role", "", "account role, e.g. student or \"project manager\"")
	return cmd
}
