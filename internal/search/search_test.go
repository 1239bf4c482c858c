package search

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

// mockProvider returns canned results per kind.
type mockProvider struct {
	news  []Result
	text  []Result
	err   error
	kinds []Kind
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Search(_ context.Context, _ string, kind Kind, limit int) ([]Result, error) {
	m.kinds = append(m.kinds, kind)
	if m.err != nil {
		return nil, m.err
	}
	if limit != perKind {
		return nil, errors.New("unexpected limit")
	}
	if kind == News {
		return m.news, nil
	}
	return m.text, nil
}

// hangingProvider never returns on its own and ignores cancellation.
type hangingProvider struct{ release chan struct{} }

func (h *hangingProvider) Name() string { return "hang" }

func (h *hangingProvider) Search(context.Context, string, Kind, int) ([]Result, error) {
	<-h.release
	return nil, nil
}

func TestToolSearch_MergesNewsThenText(t *testing.T) {
	p := &mockProvider{
		news: []Result{{Title: "Breaking", Body: "news body"}},
		text: []Result{{Title: "Wiki", Body: "text body"}, {Title: "Blog", Body: "blog body"}},
	}
	got := NewTool(p, time.Second).Search(context.Background(), "berlin")
	want := "- Breaking: news body\n- Wiki: text body\n- Blog: blog body"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if len(p.kinds) != 2 || p.kinds[0] != News || p.kinds[1] != Text {
		t.Errorf("kinds queried = %v, want [news text]", p.kinds)
	}
}

func TestToolSearch_NoResults(t *testing.T) {
	got := NewTool(&mockProvider{}, time.Second).Search(context.Background(), "x")
	if got != noResults {
		t.Errorf("got %q, want %q", got, noResults)
	}
}

func TestToolSearch_Failure(t *testing.T) {
	got := NewTool(&mockProvider{err: errors.New("HTTP 502")}, time.Second).Search(context.Background(), "x")
	if !strings.HasPrefix(got, failPrefix) || !strings.Contains(got, "HTTP 502") {
		t.Errorf("got %q", got)
	}
}

func TestToolSearch_Timeout(t *testing.T) {
	p := &hangingProvider{release: make(chan struct{})}
	defer close(p.release)

	start := time.Now()
	got := NewTool(p, 50*time.Millisecond).Search(context.Background(), "x")
	if got != timedOut {
		t.Errorf("got %q, want %q", got, timedOut)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Errorf("search took %v, should stop at its deadline", elapsed)
	}
}

func TestDedupe(t *testing.T) {
	long := strings.Repeat("a", 30)
	results := []Result{
		{Title: "Same title here, really long", Body: long + "1"},
		{Title: "Same title here, really long!!", Body: long + "2"}, // same 20-char signature
		{Title: "No body"},
		{Title: "Other", Body: "x"},
		{Title: "Third", Body: "y"},
		{Title: "Fourth", Body: "z"},
	}
	got := Dedupe(results, 3)
	if len(got) != 3 {
		t.Fatalf("expected 3 results, got %d: %v", len(got), got)
	}
	if got[0].Body != long+"1" || got[1].Title != "Other" || got[2].Title != "Third" {
		t.Errorf("unexpected dedupe result: %v", got)
	}
}

func TestDedupe_RuneSafe(t *testing.T) {
	results := []Result{
		{Title: strings.Repeat("ü", 25), Body: "körper"},
		{Title: strings.Repeat("ü", 21), Body: "körper"},
	}
	if got := Dedupe(results, 3); len(got) != 1 {
		t.Errorf("expected multibyte titles to share a signature, got %d results", len(got))
	}
}

func TestFormatEmpty(t *testing.T) {
	if got := Format(nil); got != noResults {
		t.Errorf("got %q", got)
	}
}

func TestNewProvider(t *testing.T) {
	if p, err := NewProvider("searxng", "http://x", ""); err != nil || p.Name() != "searxng" {
		t.Errorf("searxng: %v, %v", p, err)
	}
	if p, err := NewProvider("brave", "", "key"); err != nil || p.Name() != "brave" {
		t.Errorf("brave: %v, %v", p, err)
	}
	if _, err := NewProvider("brave", "", ""); err == nil {
		t.Error("brave without key should fail")
	}
	if _, err := NewProvider("bing", "", ""); err == nil {
		t.Error("unknown provider should fail")
	}
}
