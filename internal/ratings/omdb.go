package ratings

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultOMDbBaseURL = "https://www.omdbapi.com/"

// OMDbClient fetches rating lists from the OMDb API by IMDb id.  It
// implements ScoreSource.
type OMDbClient struct {
	BaseURL string
	APIKey  string
	HTTP    *http.Client
}

func NewOMDbClient(apiKey string) *OMDbClient {
	return &OMDbClient{
		BaseURL: defaultOMDbBaseURL,
		APIKey:  apiKey,
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

// Ratings returns the labeled score strings for one IMDb id.  OMDb signals
// lookup failures inside a 200 body via Response=False; that is treated as
// an error so the resolver degrades the same way it does for transport
// failures.
func (c *OMDbClient) Ratings(ctx context.Context, externalID string) ([]SourceRating, error) {
	if c.APIKey == "" {
		return nil, fmt.Errorf("omdb: no API key configured")
	}
	q := url.Values{}
	q.Set("apikey", c.APIKey)
	q.Set("i", externalID)
	q.Set("tomatoes", "true")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, fmt.Errorf("omdb: upstream status %d", res.StatusCode)
	}

	var body struct {
		Response string `json:"Response"`
		Error    string `json:"Error"`
		Ratings  []struct {
			Source string `json:"Source"`
			Value  string `json:"Value"`
		} `json:"Ratings"`
	}
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, err
	}
	if body.Response == "False" {
		return nil, fmt.Errorf("omdb: %s", body.Error)
	}
	out := make([]SourceRating, 0, len(body.Ratings))
	for _, r := range body.Ratings {
		out = append(out, SourceRating{Source: r.Source, Value: r.Value})
	}
	return out, nil
}
