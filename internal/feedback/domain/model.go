// Package domain defines the support/contact inbox entities.
package domain

import (
	"errors"
	"time"
)

// Category classifies a request the way the contact form does.
type Category string

const (
	CategoryTemplate   Category = "template"
	CategorySuggestion Category = "suggestion"
	CategoryBug        Category = "bug"
	CategoryOther      Category = "other"
)

// WorkflowStatus tracks how far the OJT office has taken a request.
type WorkflowStatus string

const (
	StatusPending    WorkflowStatus = "pending"
	StatusInProgress WorkflowStatus = "in-progress"
	StatusCompleted  WorkflowStatus = "completed"
	StatusRejected   WorkflowStatus = "rejected"
)

var (
	ErrInvalidCategory = errors.New("invalid feedback category")
	ErrInvalidStatus   = errors.New("invalid feedback status")
)

// Feedback is one inbox entry. Created by any verified user; the read flag
// and workflow status are admin-only mutations.
type Feedback struct {
	ID        string         `json:"id"`
	UserID    string         `json:"userId" firestore:"userId"`
	UserName  string         `json:"userName" firestore:"userName"`
	UserEmail string         `json:"userEmail" firestore:"userEmail"`
	Category  Category       `json:"type" firestore:"type"`
	Subject   string         `json:"subject" firestore:"subject"`
	Message   string         `json:"message" firestore:"message"`
	CreatedAt time.Time      `json:"timestamp" firestore:"timestamp"`
	Read      bool           `json:"isRead" firestore:"isRead"`
	Status    WorkflowStatus `json:"status" firestore:"status"`
}

func ValidCategory(c Category) bool {
	switch c {
	case CategoryTemplate, CategorySuggestion, CategoryBug, CategoryOther:
		return true
	}
	return false
}

func ValidStatus(s WorkflowStatus) bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted, StatusRejected:
		return true
	}
	return false
}
