// Package analytics computes the admin dashboard numbers from the full
// profile set and HTE catalog. Everything is recomputed from scratch on each
// request; there is no incremental state.
package analytics

import (
	"sort"
	"time"

	appdomain "github.com/oancholarevelo/interniskolar/internal/applications/domain"
	"github.com/oancholarevelo/interniskolar/internal/applications/reconcile"
	dirdomain "github.com/oancholarevelo/interniskolar/internal/directory/domain"
)

// PopularHTE is one row of the application-count leaderboard.
type PopularHTE struct {
	HTE          dirdomain.HTE `json:"hte"`
	Applications int           `json:"applications"`
}

// ExpiringHTE is a company whose agreement lapses within the 90-day horizon.
type ExpiringHTE struct {
	HTE             dirdomain.HTE     `json:"hte"`
	DaysUntilExpiry int               `json:"daysUntilExpiry"`
	Urgency         dirdomain.Urgency `json:"urgency"`
}

// Summary is the full admin analytics payload.
type Summary struct {
	TotalStudents    int                       `json:"totalStudents"`
	ApplicationStats map[appdomain.Status]int  `json:"applicationStats"`
	MostPopularHTEs  []PopularHTE              `json:"mostPopularHTEs"`
	ExpiringHTEs     []ExpiringHTE             `json:"expiringHTEs"`
	ActiveHTEs       int                       `json:"activeHTEs"`
	ExpiredHTEs      int                       `json:"expiredHTEs"`
}

const topPopularLimit = 10

// Compute aggregates every student's application list against the catalog.
// shortlists holds one decoded list per registered profile, so its length is
// the student count. Legacy entries count as Interested; stored statuses
// outside the known set are tallied under Unknown.
func Compute(shortlists []appdomain.StoredList, catalog []dirdomain.HTE, now time.Time) Summary {
	stats := make(map[appdomain.Status]int, len(appdomain.Statuses)+1)
	for _, status := range appdomain.Statuses {
		stats[status] = 0
	}

	popularity := map[string]int{}
	var encounterOrder []string

	for _, list := range shortlists {
		for _, record := range reconcile.Normalize(list) {
			if _, seen := popularity[record.CompanyID]; !seen {
				encounterOrder = append(encounterOrder, record.CompanyID)
			}
			popularity[record.CompanyID]++
			stats[appdomain.Canonical(record.Status)]++
		}
	}

	byID := make(map[string]dirdomain.HTE, len(catalog))
	for _, hte := range catalog {
		byID[hte.ID] = hte
	}

	// Leaderboard: count descending, first-encounter order breaking ties,
	// companies no longer in the catalog dropped.
	sort.SliceStable(encounterOrder, func(i, j int) bool {
		return popularity[encounterOrder[i]] > popularity[encounterOrder[j]]
	})
	top := encounterOrder
	if len(top) > topPopularLimit {
		top = top[:topPopularLimit]
	}
	popular := make([]PopularHTE, 0, len(top))
	for _, id := range top {
		hte, ok := byID[id]
		if !ok {
			continue
		}
		popular = append(popular, PopularHTE{HTE: hte, Applications: popularity[id]})
	}

	var expiring []ExpiringHTE
	active := 0
	for _, hte := range catalog {
		if hte.MOAEndDate == nil || !hte.MOAEndDate.Before(now) {
			active++
		}
		urgency, ok := hte.ExpiryUrgency(now)
		if !ok {
			continue
		}
		days, _ := hte.DaysUntilExpiry(now)
		expiring = append(expiring, ExpiringHTE{HTE: hte, DaysUntilExpiry: days, Urgency: urgency})
	}
	sort.SliceStable(expiring, func(i, j int) bool {
		return expiring[i].DaysUntilExpiry < expiring[j].DaysUntilExpiry
	})

	return Summary{
		TotalStudents:    len(shortlists),
		ApplicationStats: stats,
		MostPopularHTEs:  popular,
		ExpiringHTEs:     expiring,
		ActiveHTEs:       active,
		ExpiredHTEs:      len(catalog) - active,
	}
}
