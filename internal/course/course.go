// Package course normalizes free-text course codes into their canonical form.
// HTE records carry course eligibility as loose text, so every comparison in
// the directory goes through Normalize first.
package course

import "strings"

// aliases maps known spelling variants to the canonical code.
var aliases = map[string]string{
	"DCET":      "DCPET",
	"DCPET":     "DCPET",
	"DEET":      "DEET",
	"DOM-LOMT":  "DOMT",
	"DOMT":      "DOMT",
	"DOMT-LOMT": "DOMT",
	"DOMTLOMT":  "DOMT",
}

// Normalize trims and uppercases a course code and collapses known aliases.
// Empty input yields the empty string.
func Normalize(raw string) string {
	upper := strings.ToUpper(strings.TrimSpace(raw))
	if upper == "" {
		return ""
	}
	if canonical, ok := aliases[upper]; ok {
		return canonical
	}
	return upper
}

// SplitField breaks an HTE's course-eligibility field into normalized tokens.
// Codes may be separated by "/" or ",".
func SplitField(field string) []string {
	parts := strings.FieldsFunc(field, func(r rune) bool {
		return r == '/' || r == ','
	})
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if tok := Normalize(p); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}
