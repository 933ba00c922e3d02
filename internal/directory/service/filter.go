// Package service derives the visible directory views: filtering against the
// active criteria and extracting the option lists the filters are fed from.
// Everything here is pure and synchronous; it runs against whichever catalog
// snapshot the caller holds.
package service

import (
	"sort"
	"strings"
	"time"

	"github.com/oancholarevelo/interniskolar/internal/course"
	"github.com/oancholarevelo/interniskolar/internal/directory/domain"
)

// Criteria is the active filter state for the directory view. Zero-value
// string fields and the literal "All" both match everything for their
// dimension.
type Criteria struct {
	Search    string
	Course    string
	Location  string
	Industry  string
	MOAStatus domain.MOAStatus

	// Admin-only: when the viewer is an admin the catalog is partitioned by
	// ShowExpired (true shows only expired HTEs, false only non-expired),
	// independent of the MOAStatus selector. Non-admin viewers never see
	// expired HTEs at all.
	Admin       bool
	ShowExpired bool
}

// Filter returns the HTEs matching every active criterion, relative order
// preserved. The catalog is expected pre-sorted by name.
func Filter(catalog []domain.HTE, c Criteria, now time.Time) []domain.HTE {
	search := strings.ToLower(c.Search)
	location := strings.ToLower(c.Location)
	industry := strings.ToLower(c.Industry)
	selectedCourse := course.Normalize(c.Course)

	out := make([]domain.HTE, 0, len(catalog))
	for _, hte := range catalog {
		expired := hte.Expired(now)
		if c.Admin {
			if c.ShowExpired != expired {
				continue
			}
		} else if expired {
			// Students never see lapsed agreements, whatever the selector.
			continue
		}

		if search != "" &&
			!strings.Contains(strings.ToLower(hte.Name), search) &&
			!strings.Contains(strings.ToLower(hte.Address), search) &&
			!strings.Contains(strings.ToLower(hte.NatureOfBusiness), search) {
			continue
		}

		if c.Course != "" && c.Course != "All" && !containsToken(course.SplitField(hte.Course), selectedCourse) {
			continue
		}

		if c.Location != "" && c.Location != "All" && !strings.Contains(strings.ToLower(hte.Address), location) {
			continue
		}

		if c.Industry != "" && c.Industry != "All" && !strings.Contains(strings.ToLower(hte.NatureOfBusiness), industry) {
			continue
		}

		if c.MOAStatus != "" && !hte.MatchesMOAStatus(c.MOAStatus, now) {
			continue
		}

		out = append(out, hte)
	}
	return out
}

func containsToken(tokens []string, want string) bool {
	for _, tok := range tokens {
		if tok == want {
			return true
		}
	}
	return false
}

// SortCatalog orders HTEs by name ascending, case-insensitive. Applied once
// at ingestion; the store makes no ordering promise.
func SortCatalog(catalog []domain.HTE) {
	sort.SliceStable(catalog, func(i, j int) bool {
		return strings.ToLower(catalog[i].Name) < strings.ToLower(catalog[j].Name)
	})
}

// CourseOptions returns the distinct normalized course codes present in the
// catalog, sorted, for the directory's course selector.
func CourseOptions(catalog []domain.HTE) []string {
	seen := map[string]bool{}
	for _, hte := range catalog {
		for _, tok := range course.SplitField(hte.Course) {
			seen[tok] = true
		}
	}
	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}
