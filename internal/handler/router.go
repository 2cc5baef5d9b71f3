package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eatyaar/internal/handler/api"
	"eatyaar/internal/handler/middleware"
	"eatyaar/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	authHandler *api.AuthHandler,
	listingHandler *api.ListingHandler,
	claimHandler *api.ClaimHandler,
	ratingHandler *api.RatingHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, authHandler, listingHandler, claimHandler, ratingHandler, userHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	authHandler *api.AuthHandler,
	listingHandler *api.ListingHandler,
	claimHandler *api.ClaimHandler,
	ratingHandler *api.RatingHandler,
	userHandler *api.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/send-code", Handler: authHandler.SendCode},
				{Method: http.MethodPost, Path: "/verify-code", Handler: authHandler.VerifyCode},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodPut, Path: "/profile", Handler: authHandler.CompleteProfile},
				{Method: http.MethodPatch, Path: "/profile", Handler: authHandler.UpdateProfile},
			})
		}

		listings := apiGroup.Group("/listings")
		{
			public := listings.Group("")
			public.Use(authMiddleware.OptionalAuth())
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "", Handler: listingHandler.ListAvailable},
				{Method: http.MethodGet, Path: "/:id", Handler: listingHandler.Get},
			})

			owned := listings.Group("")
			owned.Use(authMiddleware.RequireAuth())
			addRoutes(owned, []route{
				{Method: http.MethodPost, Path: "", Handler: listingHandler.Create},
				{Method: http.MethodGet, Path: "/mine", Handler: listingHandler.MyListings},
				{Method: http.MethodPost, Path: "/:id/expire", Handler: listingHandler.Expire},
				{Method: http.MethodDelete, Path: "/:id", Handler: listingHandler.Delete},
			})
		}

		claims := apiGroup.Group("/claims")
		claims.Use(authMiddleware.RequireAuth())
		{
			addRoutes(claims, []route{
				{Method: http.MethodPost, Path: "", Handler: claimHandler.Create},
				{Method: http.MethodGet, Path: "/my", Handler: claimHandler.MyClaims},
				{Method: http.MethodGet, Path: "/received", Handler: claimHandler.ReceivedClaims},
				{Method: http.MethodPost, Path: "/:id/approve", Handler: claimHandler.Approve},
				{Method: http.MethodPost, Path: "/:id/reject", Handler: claimHandler.Reject},
				{Method: http.MethodPost, Path: "/:id/picked-up", Handler: claimHandler.MarkPickedUp},
			})
		}

		ratings := apiGroup.Group("/ratings")
		ratings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(ratings, []route{
				{Method: http.MethodPost, Path: "", Handler: ratingHandler.Submit},
			})
		}

		users := apiGroup.Group("/users")
		{
			me := users.Group("")
			me.Use(authMiddleware.RequireAuth())
			addRoutes(me, []route{
				{Method: http.MethodGet, Path: "/me", Handler: userHandler.Me},
			})

			public := users.Group("")
			public.Use(authMiddleware.OptionalAuth())
			addRoutes(public, []route{
				{Method: http.MethodGet, Path: "/:id/profile", Handler: userHandler.Profile},
				{Method: http.MethodGet, Path: "/:id/ratings", Handler: userHandler.Ratings},
			})
		}

		stats := apiGroup.Group("/stats")
		{
			addRoutes(stats, []route{
				{Method: http.MethodGet, Path: "/global", Handler: listingHandler.GlobalStats},
			})
		}
	}
}

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
