package letters

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/oancholarevelo/interniskolar/internal/directory/domain"
)

func TestRenewal(t *testing.T) {
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	base := domain.HTE{
		Name:          "Acme",
		ContactPerson: "Jane Reyes",
		ContactEmail:  "jane@acme.ph",
	}

	t.Run("expired agreement gets the renewal-required letter", func(t *testing.T) {
		hte := base
		end := now.Add(-48 * time.Hour)
		hte.MOAEndDate = &end

		letter := Renewal(hte, now)

		assert.Equal(t, "MOA Renewal Required - Acme", letter.Subject)
		assert.Contains(t, letter.Body, "has expired on")
		assert.Equal(t, "jane@acme.ph", letter.To)
	})

	t.Run("expiring agreement gets the reminder with a day count", func(t *testing.T) {
		hte := base
		end := now.Add(45 * 24 * time.Hour)
		hte.MOAEndDate = &end

		letter := Renewal(hte, now)

		assert.Equal(t, "MOA Renewal Reminder - Acme", letter.Subject)
		assert.Contains(t, letter.Body, "approximately 45 days")
	})

	t.Run("healthy agreement gets the general inquiry", func(t *testing.T) {
		hte := base
		end := now.Add(200 * 24 * time.Hour)
		hte.MOAEndDate = &end

		letter := Renewal(hte, now)

		assert.True(t, strings.HasPrefix(letter.Subject, "PUP OJT Program Inquiry"))
	})

	t.Run("missing contact person falls back to a salutation", func(t *testing.T) {
		hte := base
		hte.ContactPerson = ""

		letter := Renewal(hte, now)

		assert.Contains(t, letter.Body, "Dear Sir/Madam")
	})
}
