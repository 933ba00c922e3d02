package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oancholarevelo/interniskolar/internal/applications/domain"
)

func statusPtr(s domain.Status) *domain.Status { return &s }

func TestNormalize(t *testing.T) {
	t.Run("legacy list maps every id to an Interested record in order", func(t *testing.T) {
		raw := []interface{}{"c1", "c2", "c3"}
		got := Normalize(domain.DecodeStoredList(raw))

		require.Len(t, got, 3)
		for i, id := range []string{"c1", "c2", "c3"} {
			assert.Equal(t, id, got[i].CompanyID)
			assert.Equal(t, domain.StatusInterested, got[i].Status)
		}
	})

	t.Run("current list passes through in order", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"hteId": "c1", "status": "Applied"},
			map[string]interface{}{"hteId": "c2", "status": "Rejected"},
		}
		got := Normalize(domain.DecodeStoredList(raw))

		require.Len(t, got, 2)
		assert.Equal(t, domain.Record{CompanyID: "c1", Status: domain.StatusApplied}, got[0])
		assert.Equal(t, domain.Record{CompanyID: "c2", Status: domain.StatusRejected}, got[1])
	})

	t.Run("normalize is idempotent on current-shape lists", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"hteId": "c1", "status": "Interviewing"},
		}
		once := Normalize(domain.DecodeStoredList(raw))
		twice := Normalize(domain.StoredList{Shape: domain.ShapeCurrent, Records: once})
		assert.Equal(t, once, twice)
	})

	t.Run("malformed elements are dropped, not errors", func(t *testing.T) {
		raw := []interface{}{
			map[string]interface{}{"hteId": "c1", "status": "Applied"},
			42,
			map[string]interface{}{"status": "Applied"}, // no id
			map[string]interface{}{"hteId": "c2", "status": "Interested"},
		}
		got := Normalize(domain.DecodeStoredList(raw))

		require.Len(t, got, 2)
		assert.Equal(t, "c1", got[0].CompanyID)
		assert.Equal(t, "c2", got[1].CompanyID)
	})

	t.Run("empty and absent lists normalize to empty", func(t *testing.T) {
		assert.Empty(t, Normalize(domain.DecodeStoredList(nil)))
		assert.Empty(t, Normalize(domain.DecodeStoredList([]interface{}{})))
	})
}

func TestUpsert(t *testing.T) {
	base := []domain.Record{
		{CompanyID: "c1", Status: domain.StatusInterested},
		{CompanyID: "c2", Status: domain.StatusApplied},
		{CompanyID: "c3", Status: domain.StatusInterested},
	}

	t.Run("updating an existing record preserves its position", func(t *testing.T) {
		got := Upsert(base, "c2", statusPtr(domain.StatusInterviewing))

		require.Len(t, got, 3)
		assert.Equal(t, "c2", got[1].CompanyID)
		assert.Equal(t, domain.StatusInterviewing, got[1].Status)
		assert.Equal(t, base[0], got[0])
		assert.Equal(t, base[2], got[2])
	})

	t.Run("new company appends at the end", func(t *testing.T) {
		got := Upsert(base, "c4", statusPtr(domain.StatusApplied))

		require.Len(t, got, 4)
		assert.Equal(t, domain.Record{CompanyID: "c4", Status: domain.StatusApplied}, got[3])
	})

	t.Run("nil status removes the record and preserves order", func(t *testing.T) {
		got := Upsert(base, "c2", nil)

		require.Len(t, got, 2)
		assert.Equal(t, "c1", got[0].CompanyID)
		assert.Equal(t, "c3", got[1].CompanyID)
	})

	t.Run("removing an absent company is a no-op", func(t *testing.T) {
		got := Upsert(base, "missing", nil)
		assert.Equal(t, base, got)
	})

	t.Run("remove then re-add lands at the end", func(t *testing.T) {
		removed := Upsert(base, "c1", nil)
		got := Upsert(removed, "c1", statusPtr(domain.StatusApplied))

		require.Len(t, got, 3)
		assert.Equal(t, domain.Record{CompanyID: "c1", Status: domain.StatusApplied}, got[2])
	})

	t.Run("never produces duplicate company ids", func(t *testing.T) {
		got := base
		for _, s := range []domain.Status{domain.StatusApplied, domain.StatusRejected, domain.StatusInterviewing} {
			got = Upsert(got, "c2", statusPtr(s))
		}

		seen := map[string]int{}
		for _, r := range got {
			seen[r.CompanyID]++
		}
		for id, n := range seen {
			assert.Equal(t, 1, n, id)
		}
	})

	t.Run("does not mutate the input slice", func(t *testing.T) {
		before := append([]domain.Record(nil), base...)
		_ = Upsert(base, "c2", statusPtr(domain.StatusRejected))
		_ = Upsert(base, "c1", nil)
		assert.Equal(t, before, base)
	})
}
