package repository

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// ResumeStore uploads resume files to the object bucket under resumes/.
type ResumeStore struct {
	storage *storage.Client
	bucket  string
}

func NewResumeStore(storageClient *storage.Client, bucket string) *ResumeStore {
	return &ResumeStore{storage: storageClient, bucket: bucket}
}

// Upload streams the resume into the bucket and returns the download URL the
// profile document should reference.
func (s *ResumeStore) Upload(ctx context.Context, uid, fileName string, file io.Reader) (string, error) {
	objectName := fmt.Sprintf("resumes/%s/%s_%s", uid, uuid.NewString(), fileName)

	w := s.storage.Bucket(s.bucket).Object(objectName).NewWriter(ctx)
	if _, err := io.Copy(w, file); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("failed to upload resume: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize resume upload: %w", err)
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, url.PathEscape(objectName)), nil
}
