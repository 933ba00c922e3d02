package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oancholarevelo/interniskolar/internal/feedback/domain"
)

func TestSortInbox(t *testing.T) {
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	inbox := []domain.Feedback{
		{ID: "old-read", Read: true, CreatedAt: base.Add(-48 * time.Hour)},
		{ID: "new-read", Read: true, CreatedAt: base},
		{ID: "old-unread", Read: false, CreatedAt: base.Add(-24 * time.Hour)},
		{ID: "new-unread", Read: false, CreatedAt: base.Add(time.Hour)},
	}

	SortInbox(inbox)

	got := make([]string, len(inbox))
	for i, fb := range inbox {
		got[i] = fb.ID
	}
	assert.Equal(t, []string{"new-unread", "old-unread", "new-read", "old-read"}, got)
}

func TestSortInboxStableForEqualKeys(t *testing.T) {
	ts := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	inbox := []domain.Feedback{
		{ID: "first", CreatedAt: ts},
		{ID: "second", CreatedAt: ts},
	}

	SortInbox(inbox)

	assert.Equal(t, "first", inbox[0].ID)
	assert.Equal(t, "second", inbox[1].ID)
}
