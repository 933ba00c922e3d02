package bootstrap

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/oancholarevelo/interniskolar/config"
	httpapi "github.com/oancholarevelo/interniskolar/internal/api/http"
	apimw "github.com/oancholarevelo/interniskolar/internal/api/http/middleware"
	"github.com/oancholarevelo/interniskolar/internal/api/http/routes"
	"github.com/oancholarevelo/interniskolar/internal/auth"
	dirservice "github.com/oancholarevelo/interniskolar/internal/directory/service"
	"github.com/oancholarevelo/interniskolar/internal/platform/firebase"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	Config      *config.Config
	Clients     *firebase.Clients
	Redis       *redis.Client
	Logger      *zap.Logger
}

// BuildRouter assembles the gin engine: CORS for the web client, request
// IDs on every call, the health probe, and the versioned API.
func BuildRouter(dep RouterDeps) (*gin.Engine, *dirservice.CatalogProvider) {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimw.RequestIDMiddleware(dep.Logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(dep.Config.Server.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Disposition", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	health := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Redis)
	r.GET("/health", health.HealthCheck)

	roles := auth.NewRoleResolver(dep.Config.App.AdminDomain, dep.Config.App.AdminEmails)
	catalog := routes.RegisterV1(r, routes.V1Deps{
		Clients: dep.Clients,
		Redis:   dep.Redis,
		Roles:   roles,
		Logger:  dep.Logger,
	})

	return r, catalog
}
