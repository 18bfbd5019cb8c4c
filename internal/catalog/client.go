// Package catalog is a thin HTTP client for the external movie catalog
// provider (a TMDb-compatible API).  Every call is a single best-effort
// request; callers decide whether a failure degrades to empty data or is
// surfaced to the user.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.themoviedb.org/3"

// StatusError reports a non-2xx response from the provider so handlers can
// pass the upstream status through when they choose to.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog: upstream status %d", e.Code)
}

// Client talks to the catalog provider.  BaseURL is overridable for tests.
type Client struct {
	BaseURL  string
	APIKey   string
	Language string
	HTTP     *http.Client
}

// New builds a Client with the production base URL and a request timeout.
func New(apiKey, language string) *Client {
	return &Client{
		BaseURL:  defaultBaseURL,
		APIKey:   apiKey,
		Language: language,
		HTTP:     &http.Client{Timeout: 10 * time.Second},
	}
}

// Movie is a catalog record.  Search responses carry GenreIDs, detail
// responses carry Genres; the other fields are shared.
type Movie struct {
	ID           int64    `json:"id"`
	Title        string   `json:"title"`
	Overview     *string  `json:"overview,omitempty"`
	PosterPath   *string  `json:"poster_path"`
	BackdropPath *string  `json:"backdrop_path,omitempty"`
	ReleaseDate  *string  `json:"release_date"`
	VoteAverage  *float64 `json:"vote_average,omitempty"`
	GenreIDs     []int64  `json:"genre_ids,omitempty"`
	Genres       []Genre  `json:"genres,omitempty"`
}

// Genre is an id/name pair from the provider's genre list.
type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Search returns the first page of movies matching the query.
func (c *Client) Search(ctx context.Context, query string) ([]Movie, error) {
	q := url.Values{}
	q.Set("query", query)
	var out struct {
		Results []Movie `json:"results"`
	}
	if err := c.get(ctx, "/search/movie", q, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

// Movie fetches full details for one catalog id.
func (c *Client) Movie(ctx context.Context, id int64) (Movie, error) {
	var m Movie
	err := c.get(ctx, fmt.Sprintf("/movie/%d", id), nil, &m)
	return m, err
}

// Credits returns the cast names for a movie in billing order.
func (c *Client) Credits(ctx context.Context, id int64) ([]string, error) {
	var out struct {
		Cast []struct {
			Name string `json:"name"`
		} `json:"cast"`
	}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", id), nil, &out); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(out.Cast))
	for _, m := range out.Cast {
		names = append(names, m.Name)
	}
	return names, nil
}

// Genres returns the provider's movie genre list.
func (c *Client) Genres(ctx context.Context) ([]Genre, error) {
	var out struct {
		Genres []Genre `json:"genres"`
	}
	if err := c.get(ctx, "/genre/movie/list", nil, &out); err != nil {
		return nil, err
	}
	return out.Genres, nil
}

// ExternalIDs resolves the cross-reference id for a catalog id.  An empty
// string with a nil error means the provider knows the movie but has no
// cross-reference for it.
func (c *Client) ExternalIDs(ctx context.Context, id int64) (string, error) {
	var out struct {
		IMDbID *string `json:"imdb_id"`
	}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/external_ids", id), nil, &out); err != nil {
		return "", err
	}
	if out.IMDbID == nil {
		return "", nil
	}
	return *out.IMDbID, nil
}

// get performs one provider request and decodes the JSON body into dst.
func (c *Client) get(ctx context.Context, path string, q url.Values, dst any) error {
	if c.APIKey == "" {
		return fmt.Errorf("catalog: no API key configured")
	}
	if q == nil {
		q = url.Values{}
	}
	q.Set("api_key", c.APIKey)
	if c.Language != "" && !q.Has("language") {
		q.Set("language", c.Language)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return &StatusError{Code: res.StatusCode}
	}
	return json.NewDecoder(res.Body).Decode(dst)
}
