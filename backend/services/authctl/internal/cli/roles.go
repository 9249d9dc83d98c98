package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"hackathon/backend/libs/authclient"
)

func newRolesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "roles",
		Short: "List the roles accepted by signup",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, r := range authclient.Roles() {
				fmt.Fprintf(out, "%-16s %s\n", r, r.DisplayName())
			}
			return nil
		},
	}
}

// dashboardFor names the landing dashboard for a signed-in role.
func dashboardFor(role *authclient.Role) string {
	if role == nil {
		return "No role assigned."
	}
	switch *role {
	case authclient.RoleStudent:
		return "Students Dashboard"
	case authclient.RoleManager:
		return "Managers Dashboard"
	case authclient.RoleProjectManager:
		return "Projects"
	case authclient.RoleDonor:
		return "Donor Snapshot"
	case authclient.RoleFacilitator:
		return "Facilitators Dashboard"
	case authclient.RoleIntern:
		return "Interns Dashboard"
	case authclient.RoleHiringCompany:
		return "Hiring Companies Dashboard"
	default:
		return "No role assigned."
	}
}
