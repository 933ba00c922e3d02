// Package repository owns the application-list round trip: read the stored
// shortlist in whatever shape it is in, reconcile the requested change, and
// persist the current-shape result. The remote store is the source of truth;
// concurrent writers race under last-write-wins.
package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"go.uber.org/zap"

	"github.com/oancholarevelo/interniskolar/internal/applications/domain"
	"github.com/oancholarevelo/interniskolar/internal/applications/reconcile"
	"github.com/oancholarevelo/interniskolar/internal/store"
)

const (
	collection = "profiles"
	field      = "shortlist"
)

type Repository struct {
	client *firestore.Client
	logger *zap.Logger
}

func NewRepository(client *firestore.Client, logger *zap.Logger) *Repository {
	return &Repository{client: client, logger: logger}
}

// SetStatus applies one status change for the user and persists the
// reconciled list. A nil newStatus removes the company from the list.
// The reconciled records are returned so callers can answer with the
// state they just wrote, pending the next snapshot.
func (r *Repository) SetStatus(ctx context.Context, uid, companyID string, newStatus *domain.Status) ([]domain.Record, error) {
	ref := r.client.Collection(collection).Doc(uid)

	var stored domain.StoredList
	snap, err := ref.Get(ctx)
	switch {
	case err == nil:
		stored = domain.DecodeStoredList(snap.Data()[field])
	case store.IsNotFound(err):
		// First write for this user; reconcile against the empty list.
	default:
		return nil, fmt.Errorf("failed to read application list: %w", err)
	}

	next := reconcile.Upsert(reconcile.Normalize(stored), companyID, newStatus)
	encoded := domain.EncodeRecords(next)

	_, err = ref.Update(ctx, []firestore.Update{{Path: field, Value: encoded}})
	if err == nil {
		return next, nil
	}
	if !store.IsNotFound(err) {
		return nil, fmt.Errorf("failed to persist application list: %w", err)
	}

	// The profile document vanished between read and write (or never
	// existed). Recover by recreating it with the computed list merged in.
	r.logger.Warn("profile document missing on update, recreating with merge",
		zap.String("uid", uid))
	if _, err := ref.Set(ctx, map[string]interface{}{field: encoded}, firestore.MergeAll); err != nil {
		return nil, fmt.Errorf("failed to recreate profile with application list: %w", err)
	}
	return next, nil
}
