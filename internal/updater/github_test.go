package updater

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCheckLatestVersion(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasSuffix(r.URL.Path, "/releases/latest") {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{"tag_name": "v1.4.0", "html_url": "https://github.com/x/y/releases/tag/v1.4.0"}`))
	}))
	defer server.Close()

	u := New("1.2.0", WithAPIBase(server.URL))
	release, err := u.CheckLatestVersion()
	if err != nil {
		t.Fatalf("CheckLatestVersion: %v", err)
	}
	if release.Version != "v1.4.0" {
		t.Errorf("Version = %q", release.Version)
	}

	available, err := IsUpdateAvailable(u.CurrentVersion(), release.Version)
	if err != nil {
		t.Fatal(err)
	}
	if !available {
		t.Error("1.2.0 -> 1.4.0 should report an update")
	}
}

func TestCheckLatestVersionRateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	u := New("1.0.0", WithAPIBase(server.URL))
	if _, err := u.CheckLatestVersion(); err == nil {
		t.Fatal("expected error on 403")
	}
}
