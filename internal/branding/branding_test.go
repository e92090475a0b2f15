package branding

import (
	"strings"
	"testing"
)

func TestEmbeddedValues(t *testing.T) {
	if CLIName() == "" {
		t.Error("CLIName is empty")
	}
	if HomeDir() == "" || !strings.HasPrefix(HomeDir(), ".") {
		t.Errorf("HomeDir = %q, want a dot-directory", HomeDir())
	}
	if !strings.HasPrefix(HubBaseURL(), "https://") {
		t.Errorf("HubBaseURL = %q, want an https URL", HubBaseURL())
	}
	if !strings.Contains(GitHubRepo(), "/") {
		t.Errorf("GitHubRepo = %q, want owner/repo", GitHubRepo())
	}
}

func TestEnvVar(t *testing.T) {
	got := EnvVar("home")
	want := EnvPrefix() + "_HOME"
	if got != want {
		t.Errorf("EnvVar(home) = %q, want %q", got, want)
	}
}
