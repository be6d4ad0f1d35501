package router

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stemsi/heritage-admin/internal/config"
	"github.com/stemsi/heritage-admin/internal/handler"
	"github.com/stemsi/heritage-admin/internal/logger"
	"github.com/stemsi/heritage-admin/internal/middleware"
	"github.com/stemsi/heritage-admin/internal/response"
	"github.com/stemsi/heritage-admin/internal/service"
	"github.com/stemsi/heritage-admin/internal/view"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Pages             *handler.Pages
	Auth              *handler.AuthHandler
	CulturalHeritages *handler.CulturalHeritageHandler
	ArtStudios        *handler.ArtStudioHandler
	SubDistricts      *handler.SubDistrictHandler
	API               *handler.APIHandler
}

// resource is the set of seven form-driven actions every record type exposes.
type resource interface {
	Index(c *gin.Context)
	Create(c *gin.Context)
	Store(c *gin.Context)
	Show(c *gin.Context)
	Edit(c *gin.Context)
	Update(c *gin.Context)
	Destroy(c *gin.Context)
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
// The returned handler applies the _method form override before routing.
// ctx bounds the background cleanup of the login rate limiter.
func SetupRouter(
	ctx context.Context,
	authService *service.AuthService,
	renderer *view.Renderer,
	handlers *Handlers,
	cfg *config.Config,
	log zerolog.Logger,
) http.Handler {
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	router.HTMLRender = renderer

	router.Use(response.RequestIDMiddleware())
	router.Use(logger.RequestLogger(log, response.ContextKeyRequestID))
	router.Use(gin.Recovery())
	router.Use(middleware.Brotli())

	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	loginLimiter := middleware.NewRateLimiter(ctx, 10, time.Minute)

	// ─── Public pages ──────────────────────────────────────────────────
	router.GET("/login", handlers.Auth.LoginForm)
	router.POST("/login", loginLimiter.Middleware(), handlers.Auth.Login)

	// ─── Authenticated pages ───────────────────────────────────────────
	pages := router.Group("/")
	pages.Use(middleware.RequireUserSession(authService, cfg.SessionCookie), middleware.NoStore())
	{
		pages.GET("", func(c *gin.Context) {
			c.Redirect(http.StatusFound, handler.HomePath)
		})
		pages.POST("logout", handlers.Auth.Logout)

		mount(pages, "cultural-heritages", handlers.CulturalHeritages)
		mount(pages, "art-studios", handlers.ArtStudios)
		mount(pages, "sub-districts", handlers.SubDistricts)
	}

	// ─── JSON API ──────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour

	api := router.Group("/api/v1")
	api.Use(cors.New(corsConfig))
	{
		api.POST("/auth/login", loginLimiter.Middleware(), handlers.Auth.APILogin)

		protected := api.Group("")
		protected.Use(middleware.RequireUserJWT(authService))
		{
			protected.GET("/cultural-heritages", handlers.API.ListCulturalHeritages)
			protected.GET("/cultural-heritages/:id", handlers.API.GetCulturalHeritage)
			protected.GET("/sub-districts", handlers.API.ListSubDistricts)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		handlers.Pages.NotFound(c)
	})

	return middleware.MethodOverride(router)
}

// mount registers the seven form routes of a resource under path.
func mount(g *gin.RouterGroup, path string, h resource) {
	r := g.Group(path)
	r.GET("", h.Index)
	r.GET("/create", h.Create)
	r.POST("", h.Store)
	r.GET("/:id", h.Show)
	r.GET("/:id/edit", h.Edit)
	r.PATCH("/:id", h.Update)
	r.PUT("/:id", h.Update)
	r.DELETE("/:id", h.Destroy)
}
