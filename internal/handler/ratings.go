package handler

import (
	"context"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-tracker/internal/catalog"
	"github.com/iliyamo/movie-tracker/internal/ratings"
)

// ScoreResolver resolves aggregated scores for one catalog id.
// *ratings.Resolver satisfies it; tests substitute canned records.
type ScoreResolver interface {
	Resolve(ctx context.Context, catalogID int64) ratings.Record
}

// RatingsHandler serves the aggregated scores for a single movie.
type RatingsHandler struct {
	Catalog  *catalog.Client
	Resolver ScoreResolver
}

func NewRatingsHandler(cat *catalog.Client, resolver ScoreResolver) *RatingsHandler {
	return &RatingsHandler{Catalog: cat, Resolver: resolver}
}

// Ratings resolves both scores for ?id=N.  When no primary score could be
// resolved it falls back to the catalog's own vote average, rounded to one
// decimal, so the detail page rarely shows an empty rating.  Upstream
// failures still answer 200 with nulls.
func (h *RatingsHandler) Ratings(c echo.Context) error {
	raw := c.QueryParam("id")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id must be an integer"})
	}

	ctx := c.Request().Context()
	rec := ratings.Record{}
	if h.Resolver != nil {
		rec = h.Resolver.Resolve(ctx, id)
	}

	if rec.Primary == nil && h.Catalog != nil {
		if m, err := h.Catalog.Movie(ctx, id); err == nil && m.VoteAverage != nil {
			v := math.Round(*m.VoteAverage*10) / 10
			rec.Primary = &v
		}
	}

	return c.JSON(http.StatusOK, rec)
}
