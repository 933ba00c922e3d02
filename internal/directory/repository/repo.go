// Package repository persists the HTE catalog. Reads re-sort by name at
// ingestion; the store makes no ordering promise.
package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/oancholarevelo/interniskolar/internal/directory/domain"
	"github.com/oancholarevelo/interniskolar/internal/directory/service"
	"github.com/oancholarevelo/interniskolar/internal/store"
)

const collection = "htes"

type Repository struct {
	client *firestore.Client
}

func NewRepository(client *firestore.Client) *Repository {
	return &Repository{client: client}
}

// List fetches the whole catalog, sorted by name ascending case-insensitive.
func (r *Repository) List(ctx context.Context) ([]domain.HTE, error) {
	it := r.client.Collection(collection).Documents(ctx)
	defer it.Stop()

	var catalog []domain.HTE
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list HTEs: %w", err)
		}
		catalog = append(catalog, Decode(snap))
	}
	service.SortCatalog(catalog)
	return catalog, nil
}

// Create adds a new HTE and returns its generated id.
func (r *Repository) Create(ctx context.Context, hte domain.HTE) (string, error) {
	ref, _, err := r.client.Collection(collection).Add(ctx, encode(hte))
	if err != nil {
		return "", fmt.Errorf("failed to create HTE: %w", err)
	}
	return ref.ID, nil
}

// Update replaces the whole HTE document, mirroring how admin edits submit
// the full form.
func (r *Repository) Update(ctx context.Context, id string, hte domain.HTE) error {
	if _, err := r.client.Collection(collection).Doc(id).Set(ctx, encode(hte)); err != nil {
		return fmt.Errorf("failed to update HTE %s: %w", id, err)
	}
	return nil
}

// Delete removes an HTE from the catalog.
func (r *Repository) Delete(ctx context.Context, id string) error {
	if _, err := r.client.Collection(collection).Doc(id).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete HTE %s: %w", id, err)
	}
	return nil
}

// Watch subscribes to catalog changes and delivers each new snapshot as a
// sorted catalog. The returned Unsubscribe tears the watch down.
func (r *Repository) Watch(ctx context.Context, onCatalog func([]domain.HTE), onError func(error)) store.Unsubscribe {
	query := r.client.Collection(collection).Query
	return store.Subscribe(ctx, query, func(docs []*firestore.DocumentSnapshot) {
		catalog := make([]domain.HTE, 0, len(docs))
		for _, snap := range docs {
			catalog = append(catalog, Decode(snap))
		}
		service.SortCatalog(catalog)
		onCatalog(catalog)
	}, onError)
}

// Decode builds an HTE from a snapshot, treating missing fields as empty.
func Decode(snap *firestore.DocumentSnapshot) domain.HTE {
	data := snap.Data()
	hte := domain.HTE{
		ID:               snap.Ref.ID,
		Name:             stringField(data, "name"),
		Address:          stringField(data, "address"),
		ContactPerson:    stringField(data, "contactPerson"),
		ContactNumber:    stringField(data, "contactNumber"),
		ContactEmail:     stringField(data, "contactEmail"),
		NatureOfBusiness: stringField(data, "natureOfBusiness"),
		Course:           stringField(data, "course"),
		MOALink:          stringField(data, "moaLink"),
	}
	if ts, ok := data["moaEndDate"].(time.Time); ok {
		hte.MOAEndDate = &ts
	}
	return hte
}

func encode(hte domain.HTE) map[string]interface{} {
	fields := map[string]interface{}{
		"name":             hte.Name,
		"address":          hte.Address,
		"contactPerson":    hte.ContactPerson,
		"contactNumber":    hte.ContactNumber,
		"contactEmail":     hte.ContactEmail,
		"natureOfBusiness": hte.NatureOfBusiness,
		"course":           hte.Course,
		"moaLink":          hte.MOALink,
	}
	// Always reconverted to the store's timestamp type on write; nil keeps
	// "no expiration on record" distinguishable from a zero time.
	if hte.MOAEndDate != nil {
		fields["moaEndDate"] = *hte.MOAEndDate
	} else {
		fields["moaEndDate"] = nil
	}
	return fields
}

func stringField(data map[string]interface{}, key string) string {
	s, _ := data[key].(string)
	return s
}
