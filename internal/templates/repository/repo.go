// Package repository persists template metadata in the document store and
// the files themselves in the object bucket.
package repository

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"github.com/oancholarevelo/interniskolar/internal/templates/domain"
)

const collection = "templates"

type Repository struct {
	client  *firestore.Client
	storage *storage.Client
	bucket  string
}

func NewRepository(client *firestore.Client, storageClient *storage.Client, bucket string) *Repository {
	return &Repository{client: client, storage: storageClient, bucket: bucket}
}

// Upload streams the file into the bucket under templates/, then records the
// metadata document. The object name gets a uuid prefix so re-uploads of the
// same filename never collide.
func (r *Repository) Upload(ctx context.Context, name, fileName, uploadedBy string, file io.Reader) (domain.Template, error) {
	objectName := fmt.Sprintf("templates/%s_%s", uuid.NewString(), fileName)

	w := r.storage.Bucket(r.bucket).Object(objectName).NewWriter(ctx)
	if _, err := io.Copy(w, file); err != nil {
		_ = w.Close()
		return domain.Template{}, fmt.Errorf("failed to upload template file: %w", err)
	}
	if err := w.Close(); err != nil {
		return domain.Template{}, fmt.Errorf("failed to finalize template upload: %w", err)
	}

	tmpl := domain.Template{
		Name:       name,
		FileName:   fileName,
		FileURL:    objectURL(r.bucket, objectName),
		UploadedBy: uploadedBy,
		UploadedAt: time.Now().UTC(),
	}
	ref, _, err := r.client.Collection(collection).Add(ctx, map[string]interface{}{
		"name":       tmpl.Name,
		"fileName":   tmpl.FileName,
		"fileUrl":    tmpl.FileURL,
		"uploadedBy": tmpl.UploadedBy,
		"uploadDate": tmpl.UploadedAt,
	})
	if err != nil {
		return domain.Template{}, fmt.Errorf("failed to record template metadata: %w", err)
	}
	tmpl.ID = ref.ID
	return tmpl, nil
}

// List returns all templates sorted by display name.
func (r *Repository) List(ctx context.Context) ([]domain.Template, error) {
	it := r.client.Collection(collection).Documents(ctx)
	defer it.Stop()

	var templates []domain.Template
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list templates: %w", err)
		}
		templates = append(templates, decode(snap))
	}
	sort.SliceStable(templates, func(i, j int) bool {
		return strings.ToLower(templates[i].Name) < strings.ToLower(templates[j].Name)
	})
	return templates, nil
}

// Delete removes the metadata document and best-effort deletes the stored
// file. A file that is already gone is not an error.
func (r *Repository) Delete(ctx context.Context, id string) error {
	ref := r.client.Collection(collection).Doc(id)
	snap, err := ref.Get(ctx)
	if err == nil {
		if fileURL, ok := snap.Data()["fileUrl"].(string); ok {
			if objectName := objectNameFromURL(fileURL); objectName != "" {
				if err := r.storage.Bucket(r.bucket).Object(objectName).Delete(ctx); err != nil && err != storage.ErrObjectNotExist {
					return fmt.Errorf("failed to delete template file: %w", err)
				}
			}
		}
	}
	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete template %s: %w", id, err)
	}
	return nil
}

func decode(snap *firestore.DocumentSnapshot) domain.Template {
	data := snap.Data()
	tmpl := domain.Template{ID: snap.Ref.ID}
	tmpl.Name, _ = data["name"].(string)
	tmpl.FileName, _ = data["fileName"].(string)
	tmpl.FileURL, _ = data["fileUrl"].(string)
	tmpl.UploadedBy, _ = data["uploadedBy"].(string)
	if ts, ok := data["uploadDate"].(time.Time); ok {
		tmpl.UploadedAt = ts
	}
	return tmpl
}

func objectURL(bucket, objectName string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, url.PathEscape(objectName))
}

// objectNameFromURL recovers the bucket-relative object name from a stored
// download URL; empty when the URL is not one of ours.
func objectNameFromURL(fileURL string) string {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return ""
	}
	idx := strings.Index(parsed.Path, "/templates/")
	if idx == -1 {
		return ""
	}
	name, err := url.PathUnescape(parsed.Path[idx+1:])
	if err != nil {
		return ""
	}
	return name
}
