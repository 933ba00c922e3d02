// Package repository persists student profiles in the document store.
package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	appdomain "github.com/oancholarevelo/interniskolar/internal/applications/domain"
	"github.com/oancholarevelo/interniskolar/internal/profiles/domain"
	"github.com/oancholarevelo/interniskolar/internal/store"
)

const collection = "profiles"

// Repository provides profile reads and writes. Documents are keyed by the
// auth uid; older documents may be missing any field, so decoding never
// assumes a complete document.
type Repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) *Repository {
	return &Repository{client: client}
}

// Doc exposes the profile document ref for snapshot subscriptions.
func (r *Repository) Doc(uid string) *firestore.DocumentRef {
	return r.client.Collection(collection).Doc(uid)
}

// Get fetches one profile. A missing document is returned as an empty
// profile (exists=false), not an error, matching the read contract.
func (r *Repository) Get(ctx context.Context, uid string) (domain.Profile, bool, error) {
	snap, err := r.Doc(uid).Get(ctx)
	if err != nil {
		if store.IsNotFound(err) {
			return domain.Profile{ID: uid}, false, nil
		}
		return domain.Profile{}, false, fmt.Errorf("failed to fetch profile %s: %w", uid, err)
	}
	return Decode(snap), true, nil
}

// Ensure creates the profile with its defaults on first verified login.
// Existing profiles are left untouched.
func (r *Repository) Ensure(ctx context.Context, uid, email string) (domain.Profile, error) {
	profile, exists, err := r.Get(ctx, uid)
	if err != nil {
		return domain.Profile{}, err
	}
	if exists {
		return profile, nil
	}

	fresh := map[string]interface{}{
		"name":      domain.NameFromEmail(email),
		"resumeUrl": "",
		"shortlist": []interface{}{},
	}
	if _, err := r.Doc(uid).Set(ctx, fresh); err != nil {
		return domain.Profile{}, fmt.Errorf("failed to create profile %s: %w", uid, err)
	}
	return domain.Profile{ID: uid, Name: fresh["name"].(string)}, nil
}

// UpdateName sets the display name, creating the document if needed.
func (r *Repository) UpdateName(ctx context.Context, uid, name string) error {
	_, err := r.Doc(uid).Set(ctx, map[string]interface{}{"name": name}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update profile name: %w", err)
	}
	return nil
}

// UpdateResume sets the resume reference, creating the document if needed.
func (r *Repository) UpdateResume(ctx context.Context, uid, resumeURL string) error {
	_, err := r.Doc(uid).Set(ctx, map[string]interface{}{"resumeUrl": resumeURL}, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("failed to update resume reference: %w", err)
	}
	return nil
}

// ListShortlists fetches every profile's application list, still in its
// stored shape, for the analytics aggregator. One entry per profile.
func (r *Repository) ListShortlists(ctx context.Context) ([]appdomain.StoredList, error) {
	it := r.client.Collection(collection).Documents(ctx)
	defer it.Stop()

	var lists []appdomain.StoredList
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list profiles: %w", err)
		}
		lists = append(lists, appdomain.DecodeStoredList(snap.Data()["shortlist"]))
	}
	return lists, nil
}

// Decode builds a Profile from a snapshot, treating missing fields as empty.
func Decode(snap *firestore.DocumentSnapshot) domain.Profile {
	if snap == nil || !snap.Exists() {
		return domain.Profile{}
	}
	data := snap.Data()
	name, _ := data["name"].(string)
	resumeURL, _ := data["resumeUrl"].(string)
	return domain.Profile{
		ID:        snap.Ref.ID,
		Name:      name,
		ResumeURL: resumeURL,
		Shortlist: appdomain.DecodeStoredList(data["shortlist"]),
	}
}
