// Package search runs the SEARCH tool against a pluggable web search
// provider.
//
// A lookup asks the provider's news source first and its general text
// source second, merges and deduplicates the results, and formats the
// first few as observation lines. The lookup runs in its own goroutine
// and the caller waits on a hard deadline, so a provider that hangs
// cannot stall the agent loop.
package search

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	DefaultTimeout = 10 * time.Second

	perKind    = 2
	keep       = 3
	sigRunes   = 20
	noResults  = "No results found. Nichts."
	timedOut   = "Search timed out. Internet is kaputt."
	failPrefix = "Search failed: "
)

// Kind selects the provider's result source.
type Kind string

const (
	News Kind = "news"
	Text Kind = "text"
)

type Result struct {
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
	Body  string `json:"body"`
}

// Provider is the interface search backends implement.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, kind Kind, limit int) ([]Result, error)
}

type Tool struct {
	provider Provider
	timeout  time.Duration
}

func NewTool(p Provider, timeout time.Duration) *Tool {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Tool{provider: p, timeout: timeout}
}

type outcome struct {
	results []Result
	err     error
}

// Search returns formatted results or one of the fixed fallback strings.
// It always returns within the tool's timeout.
func (t *Tool) Search(ctx context.Context, query string) string {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	done := make(chan outcome, 1)
	go func() {
		results, err := t.lookup(ctx, query)
		done <- outcome{results, err}
	}()

	var o outcome
	select {
	case o = <-done:
	case <-ctx.Done():
		o.err = ctx.Err()
	}

	switch {
	case errors.Is(o.err, context.DeadlineExceeded):
		log.Warn().Str("provider", t.provider.Name()).Str("query", query).Dur("timeout", t.timeout).Msg("search timed out")
		return timedOut
	case o.err != nil:
		log.Error().Err(o.err).Str("provider", t.provider.Name()).Str("query", query).Msg("search failed")
		return failPrefix + o.err.Error()
	}
	return Format(o.results)
}

func (t *Tool) lookup(ctx context.Context, query string) ([]Result, error) {
	var raw []Result
	for _, kind := range []Kind{News, Text} {
		results, err := t.provider.Search(ctx, query, kind, perKind)
		if err != nil {
			return nil, fmt.Errorf("%s %s: %w", t.provider.Name(), kind, err)
		}
		raw = append(raw, results...)
	}
	return Dedupe(raw, keep), nil
}

// Dedupe drops results with an empty body and results whose title and
// body share their first 20 characters with an earlier result. At most
// limit results are kept.
func Dedupe(results []Result, limit int) []Result {
	seen := make(map[[2]string]bool)
	var out []Result
	for _, r := range results {
		if r.Body == "" {
			continue
		}
		sig := [2]string{prefix(r.Title, sigRunes), prefix(r.Body, sigRunes)}
		if seen[sig] {
			continue
		}
		seen[sig] = true
		out = append(out, r)
		if len(out) == limit {
			break
		}
	}
	return out
}

// Format renders results as "- title: body" lines.
func Format(results []Result) string {
	if len(results) == 0 {
		return noResults
	}
	lines := make([]string, len(results))
	for i, r := range results {
		lines[i] = fmt.Sprintf("- %s: %s", r.Title, r.Body)
	}
	return strings.Join(lines, "\n")
}

func prefix(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// NewProvider builds the named provider.
func NewProvider(name, searxngURL, braveKey string) (Provider, error) {
	switch name {
	case "searxng", "":
		if searxngURL == "" {
			return nil, fmt.Errorf("searxng provider needs SEARXNG_URL")
		}
		return NewSearXNG(searxngURL), nil
	case "brave":
		if braveKey == "" {
			return nil, fmt.Errorf("brave provider needs BRAVE_API_KEY")
		}
		return NewBrave(braveKey), nil
	default:
		return nil, fmt.Errorf("unknown search provider: %s", name)
	}
}
