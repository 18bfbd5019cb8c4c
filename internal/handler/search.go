package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-tracker/internal/catalog"
	"github.com/iliyamo/movie-tracker/internal/ratings"
)

// SearchHandler proxies catalog search and attaches aggregated scores to
// every result before ranking.
type SearchHandler struct {
	Catalog     *catalog.Client
	Resolver    ScoreResolver
	EnrichLimit int
}

func NewSearchHandler(cat *catalog.Client, resolver ScoreResolver, enrichLimit int) *SearchHandler {
	return &SearchHandler{Catalog: cat, Resolver: resolver, EnrichLimit: enrichLimit}
}

// searchResult is one catalog hit with its scores attached.
type searchResult struct {
	catalog.Movie
	Primary   *float64 `json:"primary_score"`
	Secondary *int     `json:"secondary_score"`
}

// Search runs ?q= against the catalog, enriches each hit with bounded
// concurrency and returns the sequence ranked by primary score (unscored
// hits keep the catalog's order at the tail).  An empty query or an
// upstream failure yields an empty result list, never an error page.
func (h *SearchHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusOK, echo.Map{"results": []searchResult{}})
	}

	ctx := c.Request().Context()
	movies, err := h.Catalog.Search(ctx, q)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"results": []searchResult{}})
	}

	recs, err := ratings.MapWithLimit(ctx, movies, h.EnrichLimit,
		func(ctx context.Context, m catalog.Movie) (ratings.Record, error) {
			if h.Resolver == nil {
				return ratings.Record{}, nil
			}
			return h.Resolver.Resolve(ctx, m.ID), nil
		})
	if err != nil {
		recs = make([]ratings.Record, len(movies))
	}

	results := make([]searchResult, len(movies))
	for i, m := range movies {
		results[i] = searchResult{Movie: m, Primary: recs[i].Primary, Secondary: recs[i].Secondary}
	}
	ratings.SortByScore(results, func(r searchResult) *float64 { return r.Primary })

	return c.JSON(http.StatusOK, echo.Map{"results": results})
}
