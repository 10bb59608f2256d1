// Package kakaolocal is a client for the Kakao Local keyword-search API, the
// live external place source. It is authoritative for names, addresses and
// coordinates but knows nothing about facilities.
package kakaolocal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"parkfinder/internal/models"
)

const defaultBaseURL = "https://dapi.kakao.com"

// Client calls the Kakao Local REST API.
type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

// NewClient creates a client authenticated with a Kakao REST API key.
func NewClient(apiKey string) *Client {
	return &Client{
		httpClient: http.DefaultClient,
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
}

// Search queries places of a category around a coordinate. The category is
// translated to its Korean search keyword; an unknown or keyword-less
// category yields an empty result, not an error. Upstream failures are
// returned as-is, retrying is the caller's call.
func (c *Client) Search(ctx context.Context, category models.Category, lat, lng float64, radius int) ([]models.Place, error) {
	query, ok := models.CategoryLabels[category]
	if !ok || category == models.CategoryEtc {
		return nil, nil
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("x", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("y", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("radius", strconv.Itoa(radius))

	reqURL := fmt.Sprintf("%s/v2/local/search/keyword.json?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "KakaoAK "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("kakao local search failed: %s", resp.Status)
	}

	var apiResp searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, err
	}

	places := make([]models.Place, 0, len(apiResp.Documents))
	for _, doc := range apiResp.Documents {
		place, err := doc.toPlace(category)
		if err != nil {
			// A document without parseable coordinates can never be
			// surfaced; drop it here rather than leak the invariant.
			continue
		}
		places = append(places, place)
	}
	return places, nil
}
