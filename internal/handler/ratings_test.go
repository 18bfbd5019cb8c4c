package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-tracker/internal/catalog"
	"github.com/iliyamo/movie-tracker/internal/ratings"
)

// recordMap resolves scores from a fixed table; unknown ids resolve to an
// all-nil record, like a failed upstream chain would.
type recordMap map[int64]ratings.Record

func (m recordMap) Resolve(ctx context.Context, catalogID int64) ratings.Record {
	return m[catalogID]
}

// rec builds a Record; zero arguments mean "score absent".
func rec(primary float64, secondary int) ratings.Record {
	var r ratings.Record
	if primary != 0 {
		r.Primary = &primary
	}
	if secondary != 0 {
		r.Secondary = &secondary
	}
	return r
}

func getJSON(e *echo.Echo, h echo.HandlerFunc, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rc := httptest.NewRecorder()
	if err := h(e.NewContext(req, rc)); err != nil {
		panic(err)
	}
	return rc
}

func TestRatingsResolved(t *testing.T) {
	e := echo.New()
	h := NewRatingsHandler(nil, recordMap{603: rec(8.7, 83)})

	rc := getJSON(e, h.Ratings, "/api/ratings?id=603")
	if rc.Code != http.StatusOK {
		t.Fatalf("status = %d", rc.Code)
	}
	var body ratings.Record
	if err := json.Unmarshal(rc.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Primary == nil || *body.Primary != 8.7 || body.Secondary == nil || *body.Secondary != 83 {
		t.Fatalf("body = %s", rc.Body.String())
	}
}

func TestRatingsMissingID(t *testing.T) {
	e := echo.New()
	h := NewRatingsHandler(nil, recordMap{})

	if rc := getJSON(e, h.Ratings, "/api/ratings"); rc.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rc.Code)
	}
	if rc := getJSON(e, h.Ratings, "/api/ratings?id=abc"); rc.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rc.Code)
	}
}

func TestRatingsFallsBackToCatalogAverage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":603,"title":"The Matrix","vote_average":8.22}`))
	}))
	defer srv.Close()

	cat := catalog.New("k", "en-US")
	cat.BaseURL = srv.URL

	e := echo.New()
	h := NewRatingsHandler(cat, recordMap{}) // resolver finds nothing

	rc := getJSON(e, h.Ratings, "/api/ratings?id=603")
	var body ratings.Record
	if err := json.Unmarshal(rc.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body.Primary == nil || *body.Primary != 8.2 {
		t.Fatalf("primary = %v, want catalog fallback 8.2", body.Primary)
	}
	if body.Secondary != nil {
		t.Fatalf("secondary = %v, want null", *body.Secondary)
	}
}

func TestRatingsAllUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	cat := catalog.New("k", "en-US")
	cat.BaseURL = srv.URL

	e := echo.New()
	h := NewRatingsHandler(cat, recordMap{})

	rc := getJSON(e, h.Ratings, "/api/ratings?id=603")
	if rc.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even when everything is down", rc.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rc.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["primary_score"] != nil || body["secondary_score"] != nil {
		t.Fatalf("body = %s, want both scores null", rc.Body.String())
	}
}
