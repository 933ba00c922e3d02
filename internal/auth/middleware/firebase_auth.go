package middleware

import (
	"net/http"
	"strings"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"

	portalauth "github.com/oancholarevelo/interniskolar/internal/auth"
)

// Context keys set for downstream handlers.
const (
	KeyUID     = "firebase_uid"
	KeyEmail   = "email"
	KeyIsAdmin = "is_admin"
)

// FirebaseAuthMiddleware validates Firebase ID tokens, requires a verified
// email, and tags the request with the resolved role.
func FirebaseAuthMiddleware(authClient *auth.Client, roles *portalauth.RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing authorization token"})
			c.Abort()
			return
		}

		decodedToken, err := authClient.VerifyIDToken(c.Request.Context(), token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		email, _ := decodedToken.Claims["email"].(string)
		verified, _ := decodedToken.Claims["email_verified"].(bool)
		if !verified {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "email not verified"})
			c.Abort()
			return
		}

		c.Set(KeyUID, decodedToken.UID)
		c.Set(KeyEmail, email)
		c.Set(KeyIsAdmin, roles.IsAdmin(email))

		c.Next()
	}
}

// RequireAdmin rejects requests whose token did not resolve to an admin.
// Must run after FirebaseAuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !c.GetBool(KeyIsAdmin) {
			c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractToken extracts the Bearer token from the Authorization header
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
