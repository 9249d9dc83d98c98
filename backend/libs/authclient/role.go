package authclient

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Role is the user category that decides which dashboard a user lands on.
// The wire value is the raw string, which may contain spaces.
type Role string

const (
	RoleStudent        Role = "student"
	RoleDonor          Role = "donor"
	RoleFacilitator    Role = "facilitator"
	RoleProjectManager Role = "project manager"
	RoleIntern         Role = "intern"
	RoleHiringCompany  Role = "hiring company"
	RoleManager        Role = "manager"
)

var allRoles = []Role{
	RoleStudent,
	RoleDonor,
	RoleFacilitator,
	RoleProjectManager,
	RoleIntern,
	RoleHiringCompany,
	RoleManager,
}

// Roles lists every role in declaration order.
func Roles() []Role {
	return slices.Clone(allRoles)
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return slices.Contains(allRoles, r)
}

func (r Role) String() string {
	return string(r)
}

// DisplayName returns the human form, e.g. "Project Manager" or "Donor".
func (r Role) DisplayName() string {
	switch r {
	case RoleProjectManager:
		return "Project Manager"
	case RoleHiringCompany:
		return "Hiring Company"
	default:
		return cases.Title(language.English).String(string(r))
	}
}

// Ptr returns a pointer to a copy of r.
func (r Role) Ptr() *Role {
	return &r
}

// ParseRole accepts the raw value in any case, and identifier spellings such
// as "projectManager" or "hiring_company".
func ParseRole(s string) (Role, error) {
	key := compact(s)
	for _, r := range allRoles {
		if compact(string(r)) == key {
			return r, nil
		}
	}
	return "", fmt.Errorf("authclient: unknown role %q", s)
}

func compact(s string) string {
	return strings.Map(func(c rune) rune {
		switch c {
		case ' ', '_', '-':
			return -1
		}
		return c
	}, strings.ToLower(strings.TrimSpace(s)))
}

// UnmarshalJSON rejects values outside the closed role set.
func (r *Role) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("authclient: role: %w", err)
	}
	role := Role(raw)
	if !role.Valid() {
		return fmt.Errorf("authclient: unknown role %q", raw)
	}
	*r = role
	return nil
}
