// Package domain defines downloadable document templates (resume formats,
// endorsement letters, evaluation forms) managed by the OJT office.
package domain

import "time"

// Template is the metadata record for one uploaded file; the file itself
// lives in object storage under FileURL.
type Template struct {
	ID         string    `json:"id"`
	Name       string    `json:"name" firestore:"name"`
	FileName   string    `json:"fileName" firestore:"fileName"`
	FileURL    string    `json:"fileUrl" firestore:"fileUrl"`
	UploadedBy string    `json:"uploadedBy" firestore:"uploadedBy"`
	UploadedAt time.Time `json:"uploadDate" firestore:"uploadDate"`
}
