package hub

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/skillyard-labs/skillyard/internal/errdefs"
)

func TestSearch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/search" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("q"); got != "commit msg" {
			t.Errorf("q = %q", got)
		}
		if got := r.URL.Query().Get("limit"); got != "20" {
			t.Errorf("limit = %q", got)
		}
		w.Write([]byte(`{"skills": [
			{"id": "1", "skillId": "commit-writer", "name": "Commit Writer", "installs": 42, "source": "octo/skills"}
		]}`))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	results, err := client.Search(context.Background(), "commit msg")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
	r := results[0]
	if r.SkillID != "commit-writer" || r.Name != "Commit Writer" || r.Installs != 42 || r.Source != "octo/skills" {
		t.Errorf("unexpected result: %+v", r)
	}
}

func TestSearchServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.Search(context.Background(), "x")
	if !errdefs.IsNetwork(err) {
		t.Errorf("got %v, want network error", err)
	}
}

func TestSearchMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not json</html>"))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.Search(context.Background(), "x")
	if !errdefs.IsNetwork(err) {
		t.Errorf("got %v, want network error", err)
	}
}

func TestSearchUnreachable(t *testing.T) {
	client := New(WithBaseURL("http://127.0.0.1:1"))
	_, err := client.Search(context.Background(), "x")
	if !errdefs.IsNetwork(err) {
		t.Errorf("got %v, want network error", err)
	}
}
