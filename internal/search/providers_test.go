package search

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearXNG_Search(t *testing.T) {
	var gotCategory string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCategory = r.URL.Query().Get("categories")
		if r.URL.Query().Get("format") != "json" {
			t.Errorf("format = %q", r.URL.Query().Get("format"))
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":[
			{"title":"One","url":"https://a","content":"first"},
			{"title":"Two","url":"https://b","content":"second"},
			{"title":"Three","url":"https://c","content":"third"}
		]}`))
	}))
	defer srv.Close()

	p := NewSearXNG(srv.URL + "/")
	results, err := p.Search(context.Background(), "q", News, 2)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if gotCategory != "news" {
		t.Errorf("category = %q, want news", gotCategory)
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[0] != (Result{Title: "One", URL: "https://a", Body: "first"}) {
		t.Errorf("result[0] = %+v", results[0])
	}

	if _, err := p.Search(context.Background(), "q", Text, 2); err != nil {
		t.Fatalf("Search(text): %v", err)
	}
	if gotCategory != "general" {
		t.Errorf("category = %q, want general", gotCategory)
	}
}

func TestSearXNG_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	if _, err := NewSearXNG(srv.URL).Search(context.Background(), "q", Text, 2); err == nil {
		t.Error("expected error for 429")
	}
}

func TestSearXNG_InvalidJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>nope</html>"))
	}))
	defer srv.Close()

	if _, err := NewSearXNG(srv.URL).Search(context.Background(), "q", Text, 2); err == nil {
		t.Error("expected error for non-JSON body")
	}
}

func TestBrave_Search(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Subscription-Token") != "secret" {
			t.Errorf("missing subscription token")
		}
		switch r.URL.Path {
		case "/news/search":
			w.Write([]byte(`{"results":[{"title":"N","url":"https://n","description":"news"}]}`))
		case "/web/search":
			w.Write([]byte(`{"web":{"results":[{"title":"W","url":"https://w","description":"web"}]}}`))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	b := NewBrave("secret")
	b.baseURL = srv.URL

	news, err := b.Search(context.Background(), "q", News, 2)
	if err != nil || len(news) != 1 || news[0].Body != "news" {
		t.Errorf("news = %v, %v", news, err)
	}
	web, err := b.Search(context.Background(), "q", Text, 2)
	if err != nil || len(web) != 1 || web[0].Title != "W" {
		t.Errorf("web = %v, %v", web, err)
	}
}
