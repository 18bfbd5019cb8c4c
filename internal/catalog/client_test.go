package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func testClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c := New("k", "en-US")
	c.BaseURL = srv.URL
	return c
}

func TestSearch(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "heat" {
			t.Errorf("query = %q, want heat", got)
		}
		if got := r.URL.Query().Get("api_key"); got != "k" {
			t.Errorf("api_key = %q, want k", got)
		}
		_, _ = w.Write([]byte(`{"results":[
			{"id":949,"title":"Heat","release_date":"1995-12-15","vote_average":7.9},
			{"id":1710,"title":"Heat","poster_path":null}]}`))
	})

	movies, err := c.Search(context.Background(), "heat")
	if err != nil {
		t.Fatal(err)
	}
	if len(movies) != 2 {
		t.Fatalf("len = %d, want 2", len(movies))
	}
	if movies[0].ID != 949 || movies[0].Title != "Heat" {
		t.Fatalf("first = %+v", movies[0])
	}
	if movies[0].VoteAverage == nil || *movies[0].VoteAverage != 7.9 {
		t.Fatalf("vote_average = %v, want 7.9", movies[0].VoteAverage)
	}
	if movies[1].PosterPath != nil {
		t.Fatalf("poster_path = %v, want nil", *movies[1].PosterPath)
	}
}

func TestMovieDetails(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/949" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"id":949,"title":"Heat","overview":"A crew of thieves.",
			"genres":[{"id":80,"name":"Crime"},{"id":18,"name":"Drama"}]}`))
	})

	m, err := c.Movie(context.Background(), 949)
	if err != nil {
		t.Fatal(err)
	}
	if len(m.Genres) != 2 || m.Genres[0].Name != "Crime" {
		t.Fatalf("genres = %+v", m.Genres)
	}
}

func TestCredits(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"cast":[{"name":"Al Pacino"},{"name":"Robert De Niro"}]}`))
	})

	names, err := c.Credits(context.Background(), 949)
	if err != nil {
		t.Fatal(err)
	}
	if len(names) != 2 || names[1] != "Robert De Niro" {
		t.Fatalf("names = %v", names)
	}
}

func TestExternalIDs(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/949/external_ids" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"imdb_id":"tt0113277"}`))
	})

	id, err := c.ExternalIDs(context.Background(), 949)
	if err != nil {
		t.Fatal(err)
	}
	if id != "tt0113277" {
		t.Fatalf("id = %q, want tt0113277", id)
	}
}

func TestExternalIDsNull(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"imdb_id":null}`))
	})

	id, err := c.ExternalIDs(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if id != "" {
		t.Fatalf("id = %q, want empty", id)
	}
}

func TestNon2xxIsStatusError(t *testing.T) {
	c := testClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := c.Movie(context.Background(), 1)
	var se *StatusError
	if !errors.As(err, &se) {
		t.Fatalf("err = %v, want StatusError", err)
	}
	if se.Code != http.StatusNotFound {
		t.Fatalf("code = %d, want 404", se.Code)
	}
}

func TestMissingKeyIsError(t *testing.T) {
	c := New("", "en-US")
	if _, err := c.Search(context.Background(), "heat"); err == nil {
		t.Fatal("want error when no API key is configured")
	}
}
