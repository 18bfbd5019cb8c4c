package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/movie-tracker/internal/config"
	"github.com/iliyamo/movie-tracker/internal/handler"
	"github.com/iliyamo/movie-tracker/internal/middleware"
)

// RegisterRoutes registers routes that live outside the /api surface.
// Currently that is only the health check used by load balancers and
// monitoring systems.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAPI wires the JSON API.  Layout:
//
//	/api/auth/*   – session endpoints, no guard (login issues the session)
//	/api/search, /api/ratings, /api/movie, /api/credits, /api/genres
//	              – public catalog proxies, response-cached when Redis is up
//	/api/list     – GET public; POST and DELETE behind the admin guard
//
// The rate limiter fronts the whole /api group.  Both Redis middlewares
// collapse to no-ops when rdb is nil, so the API works with no Redis at all.
func RegisterAPI(e *echo.Echo, cfg config.Config, rdb *redis.Client,
	a *handler.AuthHandler, l *handler.ListHandler, s *handler.SearchHandler,
	rt *handler.RatingsHandler, cat *handler.CatalogHandler) {

	api := e.Group("/api")
	api.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	auth := api.Group("/auth")
	auth.POST("/login", a.Login)
	auth.POST("/logout", a.Logout)
	auth.GET("/me", a.Me)

	cached := api.Group("", middleware.NewRedisCache(config.LoadCacheConfig(), rdb))
	cached.GET("/search", s.Search)
	cached.GET("/ratings", rt.Ratings)
	cached.GET("/movie", cat.Movie)
	cached.GET("/credits", cat.Credits)
	cached.GET("/genres", cat.Genres)

	api.GET("/list", l.List)
	admin := api.Group("/list", middleware.AdminOnly(cfg.SessionSecret))
	admin.POST("", l.Add)
	admin.DELETE("", l.Remove)
}
