package bootstrap

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	httpapi "github.com/GoSim-25-26J-441/projects-overview/internal/api/http"
	"github.com/GoSim-25-26J-441/projects-overview/internal/api/http/middleware"
	"github.com/GoSim-25-26J-441/projects-overview/internal/identity"
	projectshttp "github.com/GoSim-25-26J-441/projects-overview/internal/projects/http"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/live"
	"github.com/GoSim-25-26J-441/projects-overview/internal/projects/view"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	// Catalog names the backing store reported by the health check.
	Catalog string
	// Redis is pinged by the health check when set.
	Redis httpapi.Pinger

	Projects projectshttp.ProjectLister
	Renderer *view.Renderer
	User     identity.User

	AllowedOrigins []string
	RateLimit      float64
	RateBurst      int
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(), gin.Recovery())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Catalog, dep.Redis)
	healthHandler.RegisterRoutes(r)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	projectsHandler := projectshttp.New(dep.Projects, dep.Renderer, dep.User)
	projectsHandler.RegisterPages(r)
	live.NewHandler(dep.Projects.ListProjects, dep.Renderer, dep.AllowedOrigins).Register(r)

	api := r.Group("/api/v1")
	api.Use(cors.New(corsConfig(dep.AllowedOrigins)))
	api.Use(middleware.RateLimit(dep.RateLimit, dep.RateBurst))
	projectsHandler.Register(api)

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders: []string{middleware.RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			return cfg
		}
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
