package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oancholarevelo/interniskolar/internal/directory/domain"
)

func datePtr(t time.Time) *time.Time { return &t }

func testCatalog(now time.Time) []domain.HTE {
	return []domain.HTE{
		{ID: "acme", Name: "Acme", Address: "Manila", NatureOfBusiness: "Software Development", Course: "DIT/DCET", MOAEndDate: datePtr(now.Add(10 * 24 * time.Hour))},
		{ID: "beta", Name: "Beta", Address: "Cebu", NatureOfBusiness: "Manufacturing", Course: "DEET", MOAEndDate: datePtr(now.Add(-24 * time.Hour))},
		{ID: "gamma", Name: "Gamma", Address: "Quezon City", NatureOfBusiness: "IT Services", Course: "DCPET, DOMT"},
		{ID: "delta", Name: "Delta", Address: "Makati", NatureOfBusiness: "Banking", Course: "DIT", MOAEndDate: datePtr(now.Add(80 * 24 * time.Hour))},
	}
}

func ids(htes []domain.HTE) []string {
	out := make([]string, len(htes))
	for i, h := range htes {
		out[i] = h.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	catalog := testCatalog(now)

	t.Run("non-admin never sees expired HTEs", func(t *testing.T) {
		got := Filter(catalog, Criteria{}, now)
		assert.NotContains(t, ids(got), "beta")

		// ...even when the agreement-status selector asks for them
		got = Filter(catalog, Criteria{MOAStatus: domain.MOAExpired}, now)
		assert.Empty(t, got)
	})

	t.Run("admin show-expired partitions the catalog", func(t *testing.T) {
		expired := Filter(catalog, Criteria{Admin: true, ShowExpired: true}, now)
		assert.Equal(t, []string{"beta"}, ids(expired))

		active := Filter(catalog, Criteria{Admin: true}, now)
		assert.Equal(t, []string{"acme", "gamma", "delta"}, ids(active))
	})

	t.Run("text search matches name address or industry", func(t *testing.T) {
		assert.Equal(t, []string{"acme"}, ids(Filter(catalog, Criteria{Search: "acme"}, now)))
		assert.Equal(t, []string{"gamma"}, ids(Filter(catalog, Criteria{Search: "quezon"}, now)))
		assert.Equal(t, []string{"delta"}, ids(Filter(catalog, Criteria{Search: "BANK"}, now)))
	})

	t.Run("course filter normalizes both sides", func(t *testing.T) {
		// Acme lists DCET, Gamma lists DCPET; both normalize to DCPET
		got := Filter(catalog, Criteria{Course: "dcpet"}, now)
		assert.Equal(t, []string{"acme", "gamma"}, ids(got))
	})

	t.Run("All wildcards match everything", func(t *testing.T) {
		got := Filter(catalog, Criteria{Course: "All", Location: "All", Industry: "All", MOAStatus: domain.MOAAll}, now)
		assert.Equal(t, []string{"acme", "gamma", "delta"}, ids(got))
	})

	t.Run("critical selects 0-30 day window only", func(t *testing.T) {
		got := Filter(catalog, Criteria{Admin: true, MOAStatus: domain.MOACritical}, now)
		require.Equal(t, []string{"acme"}, ids(got))

		// expired HTEs are not critical
		got = Filter(catalog, Criteria{Admin: true, ShowExpired: true, MOAStatus: domain.MOACritical}, now)
		assert.Empty(t, got)
	})

	t.Run("expiring soon selects the 90 day window", func(t *testing.T) {
		got := Filter(catalog, Criteria{MOAStatus: domain.MOAExpiringSoon}, now)
		assert.Equal(t, []string{"acme", "delta"}, ids(got))
	})

	t.Run("undated agreements count as active", func(t *testing.T) {
		got := Filter(catalog, Criteria{MOAStatus: domain.MOAActive}, now)
		assert.Contains(t, ids(got), "gamma")
	})

	t.Run("criteria AND together", func(t *testing.T) {
		got := Filter(catalog, Criteria{Search: "a", Course: "DIT", Location: "manila"}, now)
		assert.Equal(t, []string{"acme"}, ids(got))
	})

	t.Run("relative order is preserved", func(t *testing.T) {
		got := Filter(catalog, Criteria{}, now)
		assert.Equal(t, []string{"acme", "gamma", "delta"}, ids(got))
	})
}

func TestSortCatalog(t *testing.T) {
	catalog := []domain.HTE{
		{ID: "2", Name: "beta"},
		{ID: "1", Name: "Acme"},
		{ID: "3", Name: "ACME Manufacturing"},
	}
	SortCatalog(catalog)
	assert.Equal(t, []string{"1", "3", "2"}, ids(catalog))
}

func TestCourseOptions(t *testing.T) {
	now := time.Now()
	got := CourseOptions(testCatalog(now))
	assert.Equal(t, []string{"DCPET", "DEET", "DIT", "DOMT"}, got)
}
