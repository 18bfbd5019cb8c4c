// Package ratings aggregates movie scores from two upstream providers: the
// catalog provider resolves a cross-reference id, and the ratings provider
// returns a list of labeled score strings for that id.  Everything here is
// best effort; a failed lookup yields an unavailable score, never an error.
package ratings

import (
	"context"
	"strconv"
	"strings"
)

// Source labels used by the ratings provider for the two scores we keep.
const (
	sourceIMDb           = "Internet Movie Database"
	sourceRottenTomatoes = "Rotten Tomatoes"
)

// Record holds the aggregated scores for one catalog item.  A nil field
// means the score was resolved but no usable value exists; because Resolve
// has no error path, holding a Record always means a resolve completed.
type Record struct {
	Primary   *float64 `json:"primary_score"`  // 0–10 scale
	Secondary *int     `json:"secondary_score"` // 0–100 percent
}

// Unavailable reports whether no score at all could be resolved.
func (r Record) Unavailable() bool {
	return r.Primary == nil && r.Secondary == nil
}

// CrossReferencer resolves a catalog id into the ratings provider's
// namespace.  An empty id with a nil error means no cross-reference exists.
type CrossReferencer interface {
	ExternalIDs(ctx context.Context, catalogID int64) (string, error)
}

// SourceRating is one labeled score string as returned by the ratings
// provider, e.g. {Source: "Internet Movie Database", Value: "8.1/10"}.
type SourceRating struct {
	Source string
	Value  string
}

// ScoreSource fetches the rating list for a cross-reference id.
type ScoreSource interface {
	Ratings(ctx context.Context, externalID string) ([]SourceRating, error)
}

// Resolver chains the two providers.
type Resolver struct {
	refs CrossReferencer
	src  ScoreSource
}

func NewResolver(refs CrossReferencer, src ScoreSource) *Resolver {
	return &Resolver{refs: refs, src: src}
}

// Resolve returns the scores for a catalog id.  Any upstream failure —
// network error, non-2xx status, malformed body, missing cross-reference —
// yields an all-nil Record.  Unparseable score strings yield nil for that
// field only, never zero.  No retries, no caching.
func (r *Resolver) Resolve(ctx context.Context, catalogID int64) Record {
	var rec Record
	if r == nil || r.refs == nil || r.src == nil {
		return rec
	}
	ext, err := r.refs.ExternalIDs(ctx, catalogID)
	if err != nil || ext == "" {
		return rec
	}
	list, err := r.src.Ratings(ctx, ext)
	if err != nil {
		return rec
	}
	for _, sr := range list {
		switch sr.Source {
		case sourceIMDb:
			if v, ok := parseOutOfTen(sr.Value); ok {
				rec.Primary = &v
			}
		case sourceRottenTomatoes:
			if v, ok := parsePercent(sr.Value); ok {
				rec.Secondary = &v
			}
		}
	}
	return rec
}

// parseOutOfTen extracts the numeric prefix of an "X.Y/10" score string.
func parseOutOfTen(s string) (float64, bool) {
	num, _, _ := strings.Cut(s, "/")
	v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parsePercent extracts the integer prefix of an "NN%" score string.
func parsePercent(s string) (int, bool) {
	num := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	v, err := strconv.Atoi(num)
	if err != nil {
		return 0, false
	}
	return v, true
}
