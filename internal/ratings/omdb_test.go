package ratings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestOMDbRatings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("i"); got != "tt0111161" {
			t.Errorf("i = %q, want tt0111161", got)
		}
		if got := r.URL.Query().Get("apikey"); got != "k" {
			t.Errorf("apikey = %q, want k", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"Response":"True","Ratings":[
			{"Source":"Internet Movie Database","Value":"9.3/10"},
			{"Source":"Rotten Tomatoes","Value":"89%"}]}`))
	}))
	defer srv.Close()

	c := NewOMDbClient("k")
	c.BaseURL = srv.URL

	list, err := c.Ratings(context.Background(), "tt0111161")
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].Source != "Internet Movie Database" || list[0].Value != "9.3/10" {
		t.Fatalf("first rating = %+v", list[0])
	}
}

func TestOMDbResponseFalseIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Incorrect IMDb ID."}`))
	}))
	defer srv.Close()

	c := NewOMDbClient("k")
	c.BaseURL = srv.URL

	if _, err := c.Ratings(context.Background(), "bogus"); err == nil {
		t.Fatal("want error for Response=False")
	}
}

func TestOMDbNon200IsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewOMDbClient("k")
	c.BaseURL = srv.URL

	if _, err := c.Ratings(context.Background(), "tt1"); err == nil {
		t.Fatal("want error for non-2xx status")
	}
}

func TestOMDbMissingKeyIsError(t *testing.T) {
	c := NewOMDbClient("")
	if _, err := c.Ratings(context.Background(), "tt1"); err == nil {
		t.Fatal("want error when no API key is configured")
	}
}
