package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"movie-booking/internal/handler/api"
	"movie-booking/internal/handler/middleware"
	"movie-booking/internal/handler/validation"
	"movie-booking/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Catalog *api.CatalogHandler
	Booking *api.BookingHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) error {
	if err := validation.Register(); err != nil {
		return err
	}
	gin.EnableJsonDecoderDisallowUnknownFields()

	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, authMiddleware, limiter)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.NewLogger(cfg.Log).LoggingMiddleware())
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, authMiddleware *middleware.AuthMiddleware, limiter *middleware.RateLimiter) {
	engine.GET("/health", healthCheck)
	engine.GET("/version", h.Catalog.Version)
	if cfg.Server.StaticIndexPath != "" {
		engine.StaticFile("/", cfg.Server.StaticIndexPath)
	}

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	root := &engine.RouterGroup

	throttled := []gin.HandlerFunc{limiter.Limit()}
	addRoutes(root, []route{
		{Method: http.MethodPost, Path: "/signup", Handler: h.Auth.Signup, Mw: throttled},
		{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login, Mw: throttled},
	})

	addRoutes(root.Group("/movies"), []route{
		{Method: http.MethodGet, Path: "", Handler: h.Catalog.ListMovies},
		{Method: http.MethodGet, Path: "/:movie_id", Handler: h.Catalog.GetMovie},
		{Method: http.MethodGet, Path: "/:movie_id/availability/:date", Handler: h.Catalog.ListTimeslots},
		{Method: http.MethodGet, Path: "/:movie_id/:timeslot_id/seats", Handler: h.Catalog.ListSeats},
	})

	bookings := root.Group("")
	if cfg.Auth.RequireToken {
		bookings.Use(authMiddleware.RequireAuth())
	}
	addRoutes(bookings, []route{
		{Method: http.MethodPost, Path: "/add-booking", Handler: h.Booking.Create},
		{Method: http.MethodPost, Path: "/edit-booking/:booking_id", Handler: h.Booking.Edit},
		{Method: http.MethodDelete, Path: "/delete-booking/:booking_id", Handler: h.Booking.Delete},
		{Method: http.MethodGet, Path: "/bookings/:user_id", Handler: h.Booking.ListForUser},
	})
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
