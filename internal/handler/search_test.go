package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-tracker/internal/catalog"
)

func searchCatalog(t *testing.T, payload string) *catalog.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(srv.Close)
	cat := catalog.New("k", "en-US")
	cat.BaseURL = srv.URL
	return cat
}

func TestSearchEnrichesAndRanks(t *testing.T) {
	cat := searchCatalog(t, `{"results":[
		{"id":1,"title":"Low","release_date":"2001-01-01"},
		{"id":2,"title":"None"},
		{"id":3,"title":"High","release_date":"2003-01-01"}]}`)

	h := NewSearchHandler(cat, recordMap{
		1: rec(6.5, 0),
		3: rec(9.1, 97),
	}, 8)

	e := echo.New()
	rc := getJSON(e, h.Search, "/api/search?q=test")
	if rc.Code != http.StatusOK {
		t.Fatalf("status = %d", rc.Code)
	}

	var body struct {
		Results []struct {
			ID        int64    `json:"id"`
			Title     string   `json:"title"`
			Primary   *float64 `json:"primary_score"`
			Secondary *int     `json:"secondary_score"`
		} `json:"results"`
	}
	if err := json.Unmarshal(rc.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Results) != 3 {
		t.Fatalf("results = %d, want 3", len(body.Results))
	}
	want := []int64{3, 1, 2}
	for i, r := range body.Results {
		if r.ID != want[i] {
			t.Fatalf("order = %+v, want ids %v", body.Results, want)
		}
	}
	if p := body.Results[0].Primary; p == nil || *p != 9.1 {
		t.Fatalf("top primary = %v, want 9.1", p)
	}
	if s := body.Results[0].Secondary; s == nil || *s != 97 {
		t.Fatalf("top secondary = %v, want 97", s)
	}
	if body.Results[2].Primary != nil {
		t.Fatalf("unscored primary = %v, want null", *body.Results[2].Primary)
	}
}

func TestSearchEmptyQuery(t *testing.T) {
	h := NewSearchHandler(catalog.New("k", "en-US"), recordMap{}, 8)

	e := echo.New()
	rc := getJSON(e, h.Search, "/api/search?q=++")
	if rc.Code != http.StatusOK {
		t.Fatalf("status = %d", rc.Code)
	}
	var body struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(rc.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Results) != 0 {
		t.Fatalf("results = %d, want 0", len(body.Results))
	}
}

func TestSearchUpstreamFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()
	cat := catalog.New("k", "en-US")
	cat.BaseURL = srv.URL

	h := NewSearchHandler(cat, recordMap{}, 8)

	e := echo.New()
	rc := getJSON(e, h.Search, "/api/search?q=test")
	if rc.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 with empty results", rc.Code)
	}
	var body struct {
		Results []json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(rc.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if len(body.Results) != 0 {
		t.Fatalf("results = %d, want 0", len(body.Results))
	}
}
