package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoleResolver(t *testing.T) {
	r := NewRoleResolver("pup.edu.ph", "oliver@iskolarngbayan.pup.edu.ph, extra@example.com")

	t.Run("domain accounts are admins", func(t *testing.T) {
		assert.True(t, r.IsAdmin("ojt.office@pup.edu.ph"))
		assert.True(t, r.IsAdmin("OJT.OFFICE@PUP.EDU.PH"))
	})

	t.Run("allowlisted accounts are admins", func(t *testing.T) {
		assert.True(t, r.IsAdmin("oliver@iskolarngbayan.pup.edu.ph"))
		assert.True(t, r.IsAdmin("extra@example.com"))
	})

	t.Run("student subdomain accounts are not admins", func(t *testing.T) {
		assert.False(t, r.IsAdmin("juan.delacruz@iskolarngbayan.pup.edu.ph"))
	})

	t.Run("empty email is not admin", func(t *testing.T) {
		assert.False(t, r.IsAdmin(""))
	})
}
