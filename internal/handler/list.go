package handler

import (
	"context"
	"errors"
	"log"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-tracker/internal/model"
	"github.com/iliyamo/movie-tracker/internal/queue"
	"github.com/iliyamo/movie-tracker/internal/ratings"
	"github.com/iliyamo/movie-tracker/internal/repository"
	queuepublisher "github.com/iliyamo/movie-tracker/internal/service"
)

// ListStore is what the list endpoints need from storage.  *repository.ListRepo
// satisfies it; tests substitute an in-memory store.
type ListStore interface {
	EnsureSchema(ctx context.Context) error
	List(ctx context.Context) ([]model.ListEntry, error)
	Add(ctx context.Context, e model.ListEntry) error
	Remove(ctx context.Context, catalogID int64) error
}

// ListHandler serves the curated favorites list.  Reads are public and
// degrade to an empty list when storage is down; writes require an admin
// session and surface storage failures.
type ListHandler struct {
	Store       ListStore
	Resolver    ScoreResolver
	EnrichLimit int
	Events      bool // publish list activity events to the broker
}

func NewListHandler(store ListStore, resolver ScoreResolver, enrichLimit int, events bool) *ListHandler {
	return &ListHandler{Store: store, Resolver: resolver, EnrichLimit: enrichLimit, Events: events}
}

// enrichedEntry is a list entry with its resolved scores attached.
type enrichedEntry struct {
	model.ListEntry
	Primary   *float64 `json:"primary_score"`
	Secondary *int     `json:"secondary_score"`
}

// List returns all entries, most recent first.  With ?enrich=1 each entry
// carries its resolved scores and the sequence is re-ranked: scored entries
// descending, unscored entries after them in recency order.
func (h *ListHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	if err := h.Store.EnsureSchema(ctx); err != nil {
		log.Printf("list: ensure schema: %v", err)
		return c.JSON(http.StatusOK, echo.Map{"items": []model.ListEntry{}})
	}
	entries, err := h.Store.List(ctx)
	if err != nil {
		log.Printf("list: read failed: %v", err)
		return c.JSON(http.StatusOK, echo.Map{"items": []model.ListEntry{}})
	}
	if entries == nil {
		entries = []model.ListEntry{}
	}

	if c.QueryParam("enrich") != "1" || h.Resolver == nil {
		return c.JSON(http.StatusOK, echo.Map{"items": entries})
	}

	// Worker never fails, so a batch is never aborted by one bad lookup.
	recs, err := ratings.MapWithLimit(ctx, entries, h.EnrichLimit,
		func(ctx context.Context, e model.ListEntry) (ratings.Record, error) {
			return h.Resolver.Resolve(ctx, e.CatalogID), nil
		})
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"items": entries})
	}

	out := make([]enrichedEntry, len(entries))
	for i, e := range entries {
		out[i] = enrichedEntry{ListEntry: e, Primary: recs[i].Primary, Secondary: recs[i].Secondary}
	}
	ratings.SortByScore(out, func(e enrichedEntry) *float64 { return e.Primary })
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

type addReq struct {
	CatalogID int64    `json:"catalog_id"`
	Title     string   `json:"title"`
	Year      *float64 `json:"year"`
	PosterURL *string  `json:"poster_url"`
}

// Add inserts a favorite.  Requires an admin session (enforced by
// middleware).  Duplicate catalog ids are a silent no-op.
func (h *ListHandler) Add(c echo.Context) error {
	var req addReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.CatalogID == 0 || strings.TrimSpace(req.Title) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "catalog_id and title required"})
	}

	entry := model.ListEntry{
		CatalogID: req.CatalogID,
		Title:     strings.TrimSpace(req.Title),
		PosterURL: req.PosterURL,
	}
	if req.Year != nil && !math.IsNaN(*req.Year) && !math.IsInf(*req.Year, 0) {
		y := int(*req.Year)
		entry.Year = &y
	}
	if email, ok := c.Get("admin_email").(string); ok && email != "" {
		entry.AddedBy = &email
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Store.EnsureSchema(ctx); err != nil {
		return storageError(c, err)
	}
	if err := h.Store.Add(ctx, entry); err != nil {
		if errors.Is(err, repository.ErrMissingField) {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return storageError(c, err)
	}

	h.publish("added", entry.CatalogID, entry.Title, entry.AddedBy)
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// Remove deletes a favorite by catalog id.  Removing an absent id still
// answers ok.
func (h *ListHandler) Remove(c echo.Context) error {
	raw := c.QueryParam("catalog_id")
	if raw == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "catalog_id required"})
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "catalog_id must be an integer"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	if err := h.Store.EnsureSchema(ctx); err != nil {
		return storageError(c, err)
	}
	if err := h.Store.Remove(ctx, id); err != nil {
		return storageError(c, err)
	}

	h.publish("removed", id, "", nil)
	return c.JSON(http.StatusOK, echo.Map{"ok": true})
}

// publish sends a list activity event without tying the request outcome to
// the broker.  Failures are logged by the publisher.
func (h *ListHandler) publish(action string, catalogID int64, title string, actor *string) {
	if !h.Events {
		return
	}
	ev := queue.ListChangedEvent{
		Action:     action,
		CatalogID:  catalogID,
		Title:      title,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if actor != nil {
		ev.Actor = *actor
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queuepublisher.PublishListChanged(ctx, ev)
	}()
}

func storageError(c echo.Context, err error) error {
	log.Printf("list: write failed: %v", err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "storage not configured"})
}
