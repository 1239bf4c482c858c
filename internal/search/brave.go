package search

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
)

const braveAPI = "https://api.search.brave.com/res/v1"

// Brave implements Provider for the Brave Search API. News queries use
// the news endpoint; text queries use web search.
type Brave struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewBrave(apiKey string) *Brave {
	return &Brave{
		apiKey:     apiKey,
		baseURL:    braveAPI,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (b *Brave) Name() string { return "brave" }

func (b *Brave) Search(ctx context.Context, query string, kind Kind, limit int) ([]Result, error) {
	endpoint, path := "/web/search", "web.results"
	if kind == News {
		endpoint, path = "/news/search", "results"
	}
	params := url.Values{
		"q":     {query},
		"count": {strconv.Itoa(limit)},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("brave: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Subscription-Token", b.apiKey)

	body, err := fetch(b.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("brave: %w", err)
	}
	return collect(gjson.GetBytes(body, path), "description", limit), nil
}
