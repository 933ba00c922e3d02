// Package group builds the "My Applications" view: one ordered company list
// per pipeline status, resolved against the current catalog snapshot.
package group

import (
	appdomain "github.com/oancholarevelo/interniskolar/internal/applications/domain"
	dirdomain "github.com/oancholarevelo/interniskolar/internal/directory/domain"
)

// Grouped is the per-status breakdown of one student's tracked companies.
// Total counts every normalized record, including those whose company has
// since been removed from the catalog; such records appear in no group.
type Grouped struct {
	Groups map[appdomain.Status][]dirdomain.HTE
	Total  int
}

// ByStatus groups the student's normalized application records by status.
// Stored statuses outside the known set land in the Unknown bucket. Records
// referencing companies no longer in the catalog are dropped from their group
// but still counted in Total.
func ByStatus(records []appdomain.Record, catalog []dirdomain.HTE) Grouped {
	byID := make(map[string]dirdomain.HTE, len(catalog))
	for _, hte := range catalog {
		byID[hte.ID] = hte
	}

	groups := make(map[appdomain.Status][]dirdomain.HTE, len(appdomain.Statuses)+1)
	for _, status := range appdomain.Statuses {
		groups[status] = []dirdomain.HTE{}
	}

	for _, record := range records {
		hte, ok := byID[record.CompanyID]
		if !ok {
			continue
		}
		status := appdomain.Canonical(record.Status)
		groups[status] = append(groups[status], hte)
	}

	return Grouped{Groups: groups, Total: len(records)}
}
