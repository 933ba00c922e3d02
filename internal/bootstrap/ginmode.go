package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode switches gin to release mode outside development so request
// logs come from our middleware only.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
