// Package domain defines a student's profile: display name, resume
// reference, and the application list stored under the shortlist field.
package domain

import (
	"strings"

	appdomain "github.com/oancholarevelo/interniskolar/internal/applications/domain"
)

// Profile is the per-student document, keyed by the auth uid. The shortlist
// field is decoded through the tagged-union step rather than struct tags
// because it may arrive in either historical shape.
type Profile struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	ResumeURL string               `json:"resumeUrl"`
	Shortlist appdomain.StoredList `json:"-"`
}

// NameFromEmail derives a display name for a freshly created profile.
// "juan.delacruz@..." becomes "Juan Delacruz"; local parts without dots are
// simply capitalized.
func NameFromEmail(email string) string {
	if email == "" {
		return ""
	}
	local := email
	if at := strings.Index(email, "@"); at != -1 {
		local = email[:at]
	}
	if local == "" {
		return ""
	}

	parts := strings.Split(local, ".")
	for i, part := range parts {
		parts[i] = capitalize(part)
	}
	return strings.Join(parts, " ")
}

func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
