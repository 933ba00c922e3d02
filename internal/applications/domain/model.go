// Package domain defines the application-tracking entities: one Record per
// company a student is pursuing, with a pipeline status, persisted under a
// single field on the student's profile document.
package domain

import "errors"

// Status is a student's pipeline stage for one company.
type Status string

const (
	StatusInterested    Status = "Interested"
	StatusApplied       Status = "Applied"
	StatusInterviewing  Status = "Interviewing"
	StatusOfferReceived Status = "Offer Received"
	StatusRejected      Status = "Rejected"

	// StatusUnknown buckets records whose stored status string is not one of
	// the five known values. New writes with an unknown status are rejected;
	// already-stored ones are surfaced here instead of vanishing from counts.
	StatusUnknown Status = "Unknown"
)

// Statuses is the closed set of writable statuses, in display order.
var Statuses = []Status{
	StatusInterested,
	StatusApplied,
	StatusInterviewing,
	StatusOfferReceived,
	StatusRejected,
}

var ErrInvalidStatus = errors.New("invalid application status")

// ValidStatus reports whether s is one of the five writable statuses.
func ValidStatus(s Status) bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Canonical maps a stored status onto the closed set, folding anything
// unrecognized into StatusUnknown.
func Canonical(s Status) Status {
	if ValidStatus(s) {
		return s
	}
	return StatusUnknown
}

// Record is one tracked application: a company reference plus its status.
type Record struct {
	CompanyID string `json:"companyId" firestore:"hteId"`
	Status    Status `json:"status" firestore:"status"`
}
