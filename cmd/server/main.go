package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-tracker/internal/catalog"
	"github.com/iliyamo/movie-tracker/internal/config"
	"github.com/iliyamo/movie-tracker/internal/database"
	"github.com/iliyamo/movie-tracker/internal/handler"
	"github.com/iliyamo/movie-tracker/internal/queue"
	"github.com/iliyamo/movie-tracker/internal/ratings"
	"github.com/iliyamo/movie-tracker/internal/repository"
	"github.com/iliyamo/movie-tracker/internal/router"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	// Storage is optional: without it the list reads empty and writes fail
	// with a storage error, everything else keeps working.
	var repo *repository.ListRepo
	if cfg.StorageConfigured() {
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Printf("database unavailable, list storage disabled: %v", err)
		} else {
			repo = repository.NewListRepo(db)
		}
	} else {
		log.Printf("database not configured, list storage disabled")
	}

	rdb := config.NewRedisClient() // nil disables response cache and rate limiting

	cat := catalog.New(cfg.CatalogKey, cfg.CatalogLanguage)
	resolver := ratings.NewResolver(cat, ratings.NewOMDbClient(cfg.RatingsKey))

	authH := handler.NewAuthHandler(cfg)
	listH := handler.NewListHandler(repo, resolver, cfg.EnrichLimit, cfg.EventsEnabled)
	searchH := handler.NewSearchHandler(cat, resolver, cfg.EnrichLimit)
	ratingsH := handler.NewRatingsHandler(cat, resolver)
	catH := handler.NewCatalogHandler(cat)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e, cfg, rdb, authH, listH, searchH, ratingsH, catH)

	if cfg.EventsEnabled {
		go func() {
			if err := queue.StartListActivityConsumer(); err != nil {
				log.Printf("list activity consumer stopped: %v", err)
			}
		}()
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
