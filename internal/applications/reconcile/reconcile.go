// Package reconcile bridges the two persisted shapes of a student's
// application list and computes the next value to persist for a single
// status change. All functions are pure; the repository layer owns the
// actual store round-trip.
package reconcile

import "github.com/oancholarevelo/interniskolar/internal/applications/domain"

// Normalize converts a decoded stored list into the canonical in-memory form.
// Legacy bare-id entries become Interested records, order preserved.
func Normalize(list domain.StoredList) []domain.Record {
	if list.Shape == domain.ShapeLegacy {
		records := make([]domain.Record, len(list.IDs))
		for i, id := range list.IDs {
			records[i] = domain.Record{CompanyID: id, Status: domain.StatusInterested}
		}
		return records
	}

	records := make([]domain.Record, len(list.Records))
	copy(records, list.Records)
	return records
}

// Upsert returns the next list for a status change against companyID.
//
// A nil newStatus is a removal: the matching record is dropped and the rest
// keep their order; removing an absent company is a no-op. Otherwise a
// matching record has its status replaced in place, and a missing one is
// appended. The input slice is never mutated, and the result never holds two
// records for the same company.
func Upsert(list []domain.Record, companyID string, newStatus *domain.Status) []domain.Record {
	idx := -1
	for i, r := range list {
		if r.CompanyID == companyID {
			idx = i
			break
		}
	}

	if newStatus == nil {
		if idx == -1 {
			return append([]domain.Record(nil), list...)
		}
		next := make([]domain.Record, 0, len(list)-1)
		next = append(next, list[:idx]...)
		next = append(next, list[idx+1:]...)
		return next
	}

	next := make([]domain.Record, len(list))
	copy(next, list)
	if idx != -1 {
		next[idx].Status = *newStatus
		return next
	}
	return append(next, domain.Record{CompanyID: companyID, Status: *newStatus})
}
