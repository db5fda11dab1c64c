package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Client is a minimal forward-geocoding client for the public Nominatim API.
// Searches are scoped to one country by suffixing the query; at most one
// candidate is requested.
type Client struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
}

func NewClient(baseURL, userAgent string) *Client {
	if userAgent == "" {
		userAgent = "virtual-view-estate"
	}
	return &Client{
		BaseURL:    baseURL,
		UserAgent:  userAgent,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

// Search geocodes "<query>, <country>" and returns the first candidate.
// A miss (no candidate, unparsable coordinates) returns ok=false with a nil
// error; only transport/HTTP-level failures produce an error.
func (c *Client) Search(ctx context.Context, query, country string) (lat, lng float64, ok bool, err error) {
	q := query
	if country != "" {
		q = query + ", " + country
	}

	endpoint := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.BaseURL, url.QueryEscape(q))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, 0, false, err
	}
	req.Header.Set("User-Agent", c.UserAgent)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return 0, 0, false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, false, fmt.Errorf("nominatim returned status %d", resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, false, fmt.Errorf("decode nominatim response: %w", err)
	}
	if len(results) == 0 {
		return 0, 0, false, nil
	}

	lat, latErr := strconv.ParseFloat(results[0].Lat, 64)
	lng, lngErr := strconv.ParseFloat(results[0].Lon, 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, false, nil
	}
	return lat, lng, true, nil
}
