package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// SearXNG implements Provider for a SearXNG instance with the JSON
// format enabled.
type SearXNG struct {
	baseURL    string
	httpClient *http.Client
}

// NewSearXNG creates a SearXNG provider. The baseURL should be the root
// URL of the instance (e.g., "http://localhost:8888").
func NewSearXNG(baseURL string) *SearXNG {
	return &SearXNG{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *SearXNG) Name() string { return "searxng" }

func (s *SearXNG) Search(ctx context.Context, query string, kind Kind, limit int) ([]Result, error) {
	category := "general"
	if kind == News {
		category = "news"
	}
	params := url.Values{
		"q":          {query},
		"format":     {"json"},
		"categories": {category},
	}

	reqURL := fmt.Sprintf("%s/search?%s", s.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("searxng: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	body, err := fetch(s.httpClient, req)
	if err != nil {
		return nil, fmt.Errorf("searxng: %w", err)
	}
	return collect(gjson.GetBytes(body, "results"), "content", limit), nil
}

// fetch performs req and returns the body of a 200 response.
func fetch(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("invalid JSON response")
	}
	return body, nil
}

// collect maps a JSON array of results into Results, reading the snippet
// from bodyField.
func collect(arr gjson.Result, bodyField string, limit int) []Result {
	var out []Result
	arr.ForEach(func(_, r gjson.Result) bool {
		if limit > 0 && len(out) >= limit {
			return false
		}
		out = append(out, Result{
			Title: r.Get("title").String(),
			URL:   r.Get("url").String(),
			Body:  r.Get(bodyField).String(),
		})
		return true
	})
	return out
}
