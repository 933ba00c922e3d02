package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	analyticshttp "github.com/oancholarevelo/interniskolar/internal/analytics/http"
	apprepo "github.com/oancholarevelo/interniskolar/internal/applications/repository"
	apphttp "github.com/oancholarevelo/interniskolar/internal/applications/http"
	"github.com/oancholarevelo/interniskolar/internal/auth"
	"github.com/oancholarevelo/interniskolar/internal/auth/middleware"
	dircache "github.com/oancholarevelo/interniskolar/internal/directory/cache"
	dirhttp "github.com/oancholarevelo/interniskolar/internal/directory/http"
	dirrepo "github.com/oancholarevelo/interniskolar/internal/directory/repository"
	dirservice "github.com/oancholarevelo/interniskolar/internal/directory/service"
	fbhttp "github.com/oancholarevelo/interniskolar/internal/feedback/http"
	fbrepo "github.com/oancholarevelo/interniskolar/internal/feedback/repository"
	"github.com/oancholarevelo/interniskolar/internal/platform/firebase"
	profhttp "github.com/oancholarevelo/interniskolar/internal/profiles/http"
	profrepo "github.com/oancholarevelo/interniskolar/internal/profiles/repository"
	tmplhttp "github.com/oancholarevelo/interniskolar/internal/templates/http"
	tmplrepo "github.com/oancholarevelo/interniskolar/internal/templates/repository"
)

type V1Deps struct {
	Clients *firebase.Clients
	Redis   *redis.Client
	Roles   *auth.RoleResolver
	Logger  *zap.Logger
}

// RegisterV1 wires every feature under /api/v1 behind the verified-token
// gate, and returns the catalog provider so the watcher and the digest job
// can share it.
func RegisterV1(r *gin.Engine, dep V1Deps) *dirservice.CatalogProvider {
	api := r.Group("/api/v1")
	api.Use(middleware.FirebaseAuthMiddleware(dep.Clients.Auth, dep.Roles))

	var cache dirservice.Cache
	if dep.Redis != nil {
		cache = dircache.NewCatalogCache(dep.Redis)
	}
	directoryRepo := dirrepo.NewRepository(dep.Clients.Firestore)
	catalog := dirservice.NewCatalogProvider(directoryRepo, cache, dep.Logger)
	dirhttp.Register(api.Group("/htes"), dirhttp.NewHandler(catalog, directoryRepo, dep.Logger))

	profileRepo := profrepo.NewRepository(dep.Clients.Firestore)
	resumes := profrepo.NewResumeStore(dep.Clients.Storage, dep.Clients.Bucket)
	profhttp.Register(api.Group("/profile"), profhttp.NewHandler(profileRepo, resumes, dep.Logger))

	applicationRepo := apprepo.NewRepository(dep.Clients.Firestore, dep.Logger)
	apphttp.Register(api.Group("/applications"), apphttp.NewHandler(applicationRepo, profileRepo, catalog, dep.Logger))

	fbhttp.Register(api.Group("/feedback"), fbhttp.NewHandler(fbrepo.NewRepository(dep.Clients.Firestore), dep.Logger))

	templateRepo := tmplrepo.NewRepository(dep.Clients.Firestore, dep.Clients.Storage, dep.Clients.Bucket)
	tmplhttp.Register(api.Group("/templates"), tmplhttp.NewHandler(templateRepo, dep.Logger))

	adminGroup := api.Group("/admin", middleware.RequireAdmin())
	analyticshttp.Register(adminGroup.Group("/analytics"), analyticshttp.NewHandler(profileRepo, catalog, dep.Logger))

	return catalog
}
