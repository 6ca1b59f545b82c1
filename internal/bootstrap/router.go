package bootstrap

import (
	"database/sql"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	httpapi "github.com/pitwall-dev/portfolio-backend/internal/api/http"
	apimiddleware "github.com/pitwall-dev/portfolio-backend/internal/api/http/middleware"
	"github.com/pitwall-dev/portfolio-backend/internal/auth"
	authhttp "github.com/pitwall-dev/portfolio-backend/internal/auth/http"
	authmiddleware "github.com/pitwall-dev/portfolio-backend/internal/auth/middleware"
	contacthttp "github.com/pitwall-dev/portfolio-backend/internal/contact/http"
	contactrepo "github.com/pitwall-dev/portfolio-backend/internal/contact/repository"
	projecthttp "github.com/pitwall-dev/portfolio-backend/internal/projects/http"
	projectrepo "github.com/pitwall-dev/portfolio-backend/internal/projects/repository"
	projectsvc "github.com/pitwall-dev/portfolio-backend/internal/projects/service"
)

type RouterDeps struct {
	ServiceName    string
	Version        string
	AllowedOrigins []string
	DB             *sql.DB
	Redis          *redis.Client
	AuthClient     authhttp.Client
	Verifier       auth.Verifier
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(apimiddleware.RequestID())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     dep.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")

	projectHandler := projecthttp.New(projectsvc.NewProjectService(projectrepo.NewProjectRepository(dep.DB)))
	contactHandler := contacthttp.New(contactrepo.NewMessageRepository(dep.Redis))

	// Public, read-only surfaces.
	projectHandler.Register(api.Group("/projects"))
	contactHandler.RegisterPublic(api.Group("/contact"))
	authhttp.New(dep.AuthClient).Register(api.Group("/auth"))

	// Everything that writes sits behind the session gate.
	protected := api.Group("")
	protected.Use(authmiddleware.RequireSession(dep.Verifier))
	projectHandler.RegisterAdmin(protected.Group("/projects"))
	contactHandler.RegisterAdmin(protected.Group("/contact/inbox"))

	return r
}
