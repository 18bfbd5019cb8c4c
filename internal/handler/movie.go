package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-tracker/internal/catalog"
)

// CatalogHandler bundles the read-only catalog proxy endpoints: movie
// details, credits and the genre list.  Details surface upstream failures
// because a detail page without data is useless; credits and genres degrade
// to empty lists.
type CatalogHandler struct {
	Catalog *catalog.Client
}

func NewCatalogHandler(cat *catalog.Client) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// movieResp flattens the detail record for the UI: genre names only and a
// single nullable rating field.
type movieResp struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Overview     *string  `json:"overview"`
	PosterPath   *string  `json:"poster_path"`
	BackdropPath *string  `json:"backdrop_path"`
	ReleaseDate  *string  `json:"release_date"`
	Rating       *float64 `json:"rating"`
	Genres       []string `json:"genres"`
}

// Movie serves detail data for ?id=N.
func (h *CatalogHandler) Movie(c echo.Context) error {
	raw := c.QueryParam("id")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id required"})
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "id must be an integer"})
	}
	if h.Catalog == nil || h.Catalog.APIKey == "" {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog not configured"})
	}

	m, err := h.Catalog.Movie(c.Request().Context(), id)
	if err != nil {
		var se *catalog.StatusError
		if errors.As(err, &se) {
			return c.JSON(se.Code, echo.Map{"error": "catalog error"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "catalog unavailable"})
	}

	genres := make([]string, 0, len(m.Genres))
	for _, g := range m.Genres {
		genres = append(genres, g.Name)
	}
	return c.JSON(http.StatusOK, movieResp{
		ID:           m.ID,
		Title:        m.Title,
		Overview:     m.Overview,
		PosterPath:   m.PosterPath,
		BackdropPath: m.BackdropPath,
		ReleaseDate:  m.ReleaseDate,
		Rating:       m.VoteAverage,
		Genres:       genres,
	})
}

// Credits serves the top billed cast names for ?id=N.  Anything that goes
// wrong yields an empty cast list.
func (h *CatalogHandler) Credits(c echo.Context) error {
	raw := c.QueryParam("id")
	if raw == "" || h.Catalog == nil {
		return c.JSON(http.StatusOK, echo.Map{"cast": []string{}})
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"cast": []string{}})
	}
	names, err := h.Catalog.Credits(c.Request().Context(), id)
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"cast": []string{}})
	}
	if len(names) > 5 {
		names = names[:5]
	}
	return c.JSON(http.StatusOK, echo.Map{"cast": names})
}

// Genres serves the provider's genre list; failures degrade to empty.
func (h *CatalogHandler) Genres(c echo.Context) error {
	if h.Catalog == nil {
		return c.JSON(http.StatusOK, echo.Map{"genres": []catalog.Genre{}})
	}
	genres, err := h.Catalog.Genres(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"genres": []catalog.Genre{}})
	}
	return c.JSON(http.StatusOK, echo.Map{"genres": genres})
}
