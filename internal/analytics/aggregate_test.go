package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/oancholarevelo/interniskolar/internal/applications/domain"
	dirdomain "github.com/oancholarevelo/interniskolar/internal/directory/domain"
)

func datePtr(t time.Time) *time.Time { return &t }

func TestCompute(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("mixed legacy and current lists tally per status and per company", func(t *testing.T) {
		shortlists := []appdomain.StoredList{
			appdomain.DecodeStoredList([]interface{}{"c1"}),
			appdomain.DecodeStoredList([]interface{}{
				map[string]interface{}{"hteId": "c1", "status": "Applied"},
			}),
		}
		catalog := []dirdomain.HTE{{ID: "c1", Name: "Acme"}}

		got := Compute(shortlists, catalog, now)

		assert.Equal(t, 2, got.TotalStudents)
		assert.Equal(t, 1, got.ApplicationStats[appdomain.StatusInterested])
		assert.Equal(t, 1, got.ApplicationStats[appdomain.StatusApplied])
		require.Len(t, got.MostPopularHTEs, 1)
		assert.Equal(t, 2, got.MostPopularHTEs[0].Applications)
	})

	t.Run("all five statuses are present even when zero", func(t *testing.T) {
		got := Compute(nil, nil, now)
		for _, status := range appdomain.Statuses {
			count, ok := got.ApplicationStats[status]
			assert.True(t, ok, status)
			assert.Zero(t, count)
		}
	})

	t.Run("unknown stored statuses are counted, not dropped", func(t *testing.T) {
		shortlists := []appdomain.StoredList{
			appdomain.DecodeStoredList([]interface{}{
				map[string]interface{}{"hteId": "c1", "status": "Ghosted"},
			}),
		}

		got := Compute(shortlists, nil, now)

		assert.Equal(t, 1, got.ApplicationStats[appdomain.StatusUnknown])
	})

	t.Run("leaderboard sorts by count with encounter-order ties", func(t *testing.T) {
		shortlists := []appdomain.StoredList{
			appdomain.DecodeStoredList([]interface{}{"c2", "c1", "c3"}),
			appdomain.DecodeStoredList([]interface{}{"c3"}),
		}
		catalog := []dirdomain.HTE{{ID: "c1"}, {ID: "c2"}, {ID: "c3"}}

		got := Compute(shortlists, catalog, now)

		require.Len(t, got.MostPopularHTEs, 3)
		assert.Equal(t, "c3", got.MostPopularHTEs[0].HTE.ID)
		assert.Equal(t, "c2", got.MostPopularHTEs[1].HTE.ID)
		assert.Equal(t, "c1", got.MostPopularHTEs[2].HTE.ID)
	})

	t.Run("companies deleted from the catalog leave the leaderboard", func(t *testing.T) {
		shortlists := []appdomain.StoredList{
			appdomain.DecodeStoredList([]interface{}{"gone", "c1"}),
		}
		catalog := []dirdomain.HTE{{ID: "c1"}}

		got := Compute(shortlists, catalog, now)

		require.Len(t, got.MostPopularHTEs, 1)
		assert.Equal(t, "c1", got.MostPopularHTEs[0].HTE.ID)
	})

	t.Run("expiring window is inclusive at 90 days and excludes 91", func(t *testing.T) {
		catalog := []dirdomain.HTE{
			{ID: "at90", MOAEndDate: datePtr(now.Add(90 * 24 * time.Hour))},
			{ID: "at91", MOAEndDate: datePtr(now.Add(91 * 24 * time.Hour))},
		}

		got := Compute(nil, catalog, now)

		require.Len(t, got.ExpiringHTEs, 1)
		assert.Equal(t, "at90", got.ExpiringHTEs[0].HTE.ID)
		assert.Equal(t, 90, got.ExpiringHTEs[0].DaysUntilExpiry)
		assert.Equal(t, dirdomain.UrgencyLow, got.ExpiringHTEs[0].Urgency)
	})

	t.Run("urgency buckets by 30 and 60 day boundaries, sorted ascending", func(t *testing.T) {
		catalog := []dirdomain.HTE{
			{ID: "low", MOAEndDate: datePtr(now.Add(75 * 24 * time.Hour))},
			{ID: "high", MOAEndDate: datePtr(now.Add(10 * 24 * time.Hour))},
			{ID: "medium", MOAEndDate: datePtr(now.Add(45 * 24 * time.Hour))},
		}

		got := Compute(nil, catalog, now)

		require.Len(t, got.ExpiringHTEs, 3)
		assert.Equal(t, "high", got.ExpiringHTEs[0].HTE.ID)
		assert.Equal(t, dirdomain.UrgencyHigh, got.ExpiringHTEs[0].Urgency)
		assert.Equal(t, "medium", got.ExpiringHTEs[1].HTE.ID)
		assert.Equal(t, dirdomain.UrgencyMedium, got.ExpiringHTEs[1].Urgency)
		assert.Equal(t, "low", got.ExpiringHTEs[2].HTE.ID)
		assert.Equal(t, dirdomain.UrgencyLow, got.ExpiringHTEs[2].Urgency)
	})

	t.Run("expired HTEs never appear in the expiring list", func(t *testing.T) {
		catalog := []dirdomain.HTE{
			{ID: "expired", MOAEndDate: datePtr(now.Add(-24 * time.Hour))},
		}
		got := Compute(nil, catalog, now)
		assert.Empty(t, got.ExpiringHTEs)
	})

	t.Run("active and expired counts partition the catalog", func(t *testing.T) {
		catalog := []dirdomain.HTE{
			{ID: "undated"},
			{ID: "future", MOAEndDate: datePtr(now.Add(400 * 24 * time.Hour))},
			{ID: "past", MOAEndDate: datePtr(now.Add(-24 * time.Hour))},
		}

		got := Compute(nil, catalog, now)

		assert.Equal(t, 2, got.ActiveHTEs)
		assert.Equal(t, 1, got.ExpiredHTEs)
	})
}
