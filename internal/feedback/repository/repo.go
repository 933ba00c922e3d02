// Package repository persists the feedback inbox.
package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/oancholarevelo/interniskolar/internal/feedback/domain"
)

const collection = "feedback"

type Repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) *Repository {
	return &Repository{client: client}
}

// Query exposes the inbox query for the admin snapshot subscription.
func (r *Repository) Query() firestore.Query {
	return r.client.Collection(collection).Query
}

// Create appends a new entry with a store-generated id.
func (r *Repository) Create(ctx context.Context, fb domain.Feedback) (string, error) {
	fields := map[string]interface{}{
		"userId":    fb.UserID,
		"userName":  fb.UserName,
		"userEmail": fb.UserEmail,
		"type":      string(fb.Category),
		"subject":   fb.Subject,
		"message":   fb.Message,
		"timestamp": fb.CreatedAt,
		"isRead":    false,
		"status":    string(domain.StatusPending),
	}
	ref, _, err := r.client.Collection(collection).Add(ctx, fields)
	if err != nil {
		return "", fmt.Errorf("failed to submit feedback: %w", err)
	}
	return ref.ID, nil
}

// List returns the whole inbox, unread first, then newest first.
func (r *Repository) List(ctx context.Context) ([]domain.Feedback, error) {
	it := r.client.Collection(collection).Documents(ctx)
	defer it.Stop()

	var inbox []domain.Feedback
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list feedback: %w", err)
		}
		inbox = append(inbox, Decode(snap))
	}
	SortInbox(inbox)
	return inbox, nil
}

// MarkRead flips the read flag.
func (r *Repository) MarkRead(ctx context.Context, id string) error {
	_, err := r.client.Collection(collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "isRead", Value: true},
	})
	if err != nil {
		return fmt.Errorf("failed to mark feedback %s read: %w", id, err)
	}
	return nil
}

// UpdateStatus moves an entry through the workflow.
func (r *Repository) UpdateStatus(ctx context.Context, id string, status domain.WorkflowStatus) error {
	_, err := r.client.Collection(collection).Doc(id).Update(ctx, []firestore.Update{
		{Path: "status", Value: string(status)},
	})
	if err != nil {
		return fmt.Errorf("failed to update feedback %s status: %w", id, err)
	}
	return nil
}

// Delete removes an entry from the inbox.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete feedback %s: %w", id, err)
	}
	return nil
}

// SortInbox orders entries unread-first, then newest-first.
func SortInbox(inbox []domain.Feedback) {
	sort.SliceStable(inbox, func(i, j int) bool {
		if inbox[i].Read != inbox[j].Read {
			return !inbox[i].Read
		}
		return inbox[i].CreatedAt.After(inbox[j].CreatedAt)
	})
}

// Decode builds a Feedback from a snapshot, treating missing fields as empty.
func Decode(snap *firestore.DocumentSnapshot) domain.Feedback {
	data := snap.Data()
	fb := domain.Feedback{
		ID:     snap.Ref.ID,
		Read:   false,
		Status: domain.StatusPending,
	}
	fb.UserID, _ = data["userId"].(string)
	fb.UserName, _ = data["userName"].(string)
	fb.UserEmail, _ = data["userEmail"].(string)
	if c, ok := data["type"].(string); ok {
		fb.Category = domain.Category(c)
	}
	fb.Subject, _ = data["subject"].(string)
	fb.Message, _ = data["message"].(string)
	if ts, ok := data["timestamp"].(time.Time); ok {
		fb.CreatedAt = ts
	}
	if read, ok := data["isRead"].(bool); ok {
		fb.Read = read
	}
	if s, ok := data["status"].(string); ok && s != "" {
		fb.Status = domain.WorkflowStatus(s)
	}
	return fb
}
