package group

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appdomain "github.com/oancholarevelo/interniskolar/internal/applications/domain"
	dirdomain "github.com/oancholarevelo/interniskolar/internal/directory/domain"
)

func TestByStatus(t *testing.T) {
	catalog := []dirdomain.HTE{
		{ID: "c1", Name: "Acme"},
		{ID: "c2", Name: "Beta"},
		{ID: "c3", Name: "Gamma"},
	}

	t.Run("groups companies by status in record order", func(t *testing.T) {
		records := []appdomain.Record{
			{CompanyID: "c3", Status: appdomain.StatusApplied},
			{CompanyID: "c1", Status: appdomain.StatusInterested},
			{CompanyID: "c2", Status: appdomain.StatusApplied},
		}

		got := ByStatus(records, catalog)

		require.Equal(t, 3, got.Total)
		applied := got.Groups[appdomain.StatusApplied]
		require.Len(t, applied, 2)
		assert.Equal(t, "Gamma", applied[0].Name)
		assert.Equal(t, "Beta", applied[1].Name)
		require.Len(t, got.Groups[appdomain.StatusInterested], 1)
		assert.Empty(t, got.Groups[appdomain.StatusRejected])
	})

	t.Run("deleted company counts toward total but joins no group", func(t *testing.T) {
		records := []appdomain.Record{
			{CompanyID: "gone", Status: appdomain.StatusInterested},
			{CompanyID: "c1", Status: appdomain.StatusInterested},
		}

		got := ByStatus(records, catalog)

		assert.Equal(t, 2, got.Total)
		grouped := 0
		for _, htes := range got.Groups {
			grouped += len(htes)
		}
		assert.Equal(t, 1, grouped)
	})

	t.Run("unrecognized stored status buckets under Unknown", func(t *testing.T) {
		records := []appdomain.Record{
			{CompanyID: "c1", Status: appdomain.Status("Ghosted")},
		}

		got := ByStatus(records, catalog)

		require.Len(t, got.Groups[appdomain.StatusUnknown], 1)
		assert.Equal(t, "Acme", got.Groups[appdomain.StatusUnknown][0].Name)
	})

	t.Run("empty list produces empty groups for all known statuses", func(t *testing.T) {
		got := ByStatus(nil, catalog)

		assert.Zero(t, got.Total)
		for _, status := range appdomain.Statuses {
			htes, ok := got.Groups[status]
			assert.True(t, ok)
			assert.Empty(t, htes)
		}
	})
}
