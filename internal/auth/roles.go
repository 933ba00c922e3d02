// Package auth gates the API on Firebase ID tokens and derives the viewer's
// role. Students sign in with institutional accounts; admin is inferred from
// the email domain plus a small allowlist.
package auth

import "strings"

// RoleResolver decides whether an authenticated email is an admin.
type RoleResolver struct {
	adminDomain string
	adminEmails map[string]bool
}

// NewRoleResolver builds a resolver from the configured admin domain and a
// comma-separated allowlist of extra admin addresses.
func NewRoleResolver(adminDomain, adminEmails string) *RoleResolver {
	allow := map[string]bool{}
	for _, email := range strings.Split(adminEmails, ",") {
		if email = strings.ToLower(strings.TrimSpace(email)); email != "" {
			allow[email] = true
		}
	}
	return &RoleResolver{
		adminDomain: strings.ToLower(strings.TrimSpace(adminDomain)),
		adminEmails: allow,
	}
}

// IsAdmin reports whether the email belongs to an administrator.
func (r *RoleResolver) IsAdmin(email string) bool {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return false
	}
	if r.adminEmails[email] {
		return true
	}
	return r.adminDomain != "" && strings.HasSuffix(email, "@"+r.adminDomain)
}
