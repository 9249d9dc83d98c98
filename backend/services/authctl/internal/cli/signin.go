package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"hackathon/backend/libs/authclient"
)

var errMissingCredentials = &authclient.ValidationError{Field: "credentials", Message: "please enter both email and password"}

// displayError carries the text printed for a failed operation while keeping
// the underlying error reachable through errors.Is and errors.As.
type displayError struct {
	op  authclient.Operation
	err error
}

func (e *displayError) Error() string { return authclient.UserMessage(e.op, e.err) }

func (e *displayError) Unwrap() error { return e.err }

func failed(op authclient.Operation, err error) error {
	return &displayError{op: op, err: err}
}

func newSignInCommand(root *rootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signin",
		Short: "Sign in and show the dashboard for the account's role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if strings.TrimSpace(email) == "" || password == "" {
				return failed(authclient.OpSignIn, errMissingCredentials)
			}

			s, err := root.open()
			if err != nil {
				return err
			}
			defer s.logger.Sync()

			resp, err := s.auth.SignIn(cmd.Context(), authclient.SignInCredentials(strings.TrimSpace(email), password))
			if err != nil {
				return failed(authclient.OpSignIn, err)
			}

			out := cmd.OutOrStdout()
			role, err := resp.RequireRole()
			if err != nil {
				fmt.Fprintf(out, "Signed in as %s\n", resp.Email)
			} else {
				fmt.Fprintf(out, "Signed in as %s (%s)\n", resp.Email, role.DisplayName())
			}
			fmt.Fprintf(out, "Dashboard: %s\n", dashboardFor(resp.Role))
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	return cmd
}
