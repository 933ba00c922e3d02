package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNameFromEmail(t *testing.T) {
	t.Run("dotted local part becomes title-cased words", func(t *testing.T) {
		assert.Equal(t, "Juan Delacruz", NameFromEmail("juan.delacruz@iskolarngbayan.pup.edu.ph"))
	})

	t.Run("plain local part is capitalized", func(t *testing.T) {
		assert.Equal(t, "Mariasantos", NameFromEmail("MARIASANTOS@pup.edu.ph"))
	})

	t.Run("empty email yields empty name", func(t *testing.T) {
		assert.Equal(t, "", NameFromEmail(""))
	})
}
