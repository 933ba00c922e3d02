// Package domain defines the Host Training Establishment (HTE) catalog
// entities and the agreement-expiry math derived from them.
package domain

import (
	"math"
	"time"
)

// HTE is one partner company in the directory. All fields except the id come
// straight from the store and may be empty; MOAEndDate is nil when no
// agreement expiration is on record.
type HTE struct {
	ID               string     `json:"id" firestore:"-"`
	Name             string     `json:"name" firestore:"name"`
	Address          string     `json:"address" firestore:"address"`
	ContactPerson    string     `json:"contactPerson" firestore:"contactPerson"`
	ContactNumber    string     `json:"contactNumber" firestore:"contactNumber"`
	ContactEmail     string     `json:"contactEmail" firestore:"contactEmail"`
	NatureOfBusiness string     `json:"natureOfBusiness" firestore:"natureOfBusiness"`
	Course           string     `json:"course" firestore:"course"`
	MOALink          string     `json:"moaLink" firestore:"moaLink"`
	MOAEndDate       *time.Time `json:"moaEndDate" firestore:"moaEndDate"`
}

// MOAStatus is the agreement-status selector for directory filtering.
type MOAStatus string

const (
	MOAAll          MOAStatus = "All"
	MOAActive       MOAStatus = "Active"
	MOAExpired      MOAStatus = "Expired"
	MOAExpiringSoon MOAStatus = "Expiring Soon"
	MOACritical     MOAStatus = "Critical"
)

// Urgency buckets an upcoming expiration for the admin dashboard.
type Urgency string

const (
	UrgencyHigh   Urgency = "high"   // expires within 30 days
	UrgencyMedium Urgency = "medium" // expires within 60 days
	UrgencyLow    Urgency = "low"    // expires within 90 days
)

// Expired reports whether the HTE's agreement has lapsed as of now.
// An HTE with no expiration on record never counts as expired.
func (h *HTE) Expired(now time.Time) bool {
	return h.MOAEndDate != nil && h.MOAEndDate.Before(now)
}

// DaysUntilExpiry returns the whole days (ceiling) until the agreement
// expires. ok is false when no expiration is on record.
func (h *HTE) DaysUntilExpiry(now time.Time) (days int, ok bool) {
	if h.MOAEndDate == nil {
		return 0, false
	}
	return int(math.Ceil(h.MOAEndDate.Sub(now).Hours() / 24)), true
}

// MatchesMOAStatus applies the agreement-status selector against now.
func (h *HTE) MatchesMOAStatus(status MOAStatus, now time.Time) bool {
	switch status {
	case MOAActive:
		return !h.Expired(now)
	case MOAExpired:
		return h.Expired(now)
	case MOAExpiringSoon:
		days, ok := h.DaysUntilExpiry(now)
		return !h.Expired(now) && ok && days <= 90
	case MOACritical:
		days, ok := h.DaysUntilExpiry(now)
		return !h.Expired(now) && ok && days <= 30
	default:
		return true
	}
}

// ExpiryUrgency buckets a future expiration by how soon it lands.
// ok is false for HTEs that are expired, undated, or beyond 90 days.
func (h *HTE) ExpiryUrgency(now time.Time) (Urgency, bool) {
	if h.MOAEndDate == nil || !h.MOAEndDate.After(now) {
		return "", false
	}
	days, _ := h.DaysUntilExpiry(now)
	switch {
	case days > 90:
		return "", false
	case !h.MOAEndDate.After(now.Add(30 * 24 * time.Hour)):
		return UrgencyHigh, true
	case !h.MOAEndDate.After(now.Add(60 * 24 * time.Hour)):
		return UrgencyMedium, true
	default:
		return UrgencyLow, true
	}
}
