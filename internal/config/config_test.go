package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	path := writeConfig(t, "[tmdb]\napi_key = \"abc\"\n")

	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists {
		t.Fatal("expected config file to be found")
	}
	if cfg.TMDB.BaseURL != defaultTMDBBaseURL {
		t.Fatalf("expected default base url, got %q", cfg.TMDB.BaseURL)
	}
	if cfg.Awards.FeedURL != defaultFeedURL {
		t.Fatalf("expected default feed url, got %q", cfg.Awards.FeedURL)
	}
	if cfg.Awards.LookupConcurrency != defaultLookupConcurrency {
		t.Fatalf("expected default concurrency, got %d", cfg.Awards.LookupConcurrency)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Fatalf("unexpected logging defaults %+v", cfg.Logging)
	}
}

func TestLoadMissingAPIKeyFails(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	path := writeConfig(t, "")

	_, _, _, err := Load(path)
	if err == nil || !strings.Contains(err.Error(), "tmdb.api_key") {
		t.Fatalf("expected api key error, got %v", err)
	}
}

func TestLoadEnvOverridesAPIKey(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "from-env")
	path := writeConfig(t, "[tmdb]\napi_key = \"from-file\"\n")

	cfg, _, _, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.TMDB.APIKey != "from-env" {
		t.Fatalf("env var must win, got %q", cfg.TMDB.APIKey)
	}
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "abc")

	cases := []struct {
		name     string
		contents string
		want     string
	}{
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad level", "[logging]\nlevel = \"trace\"\n", "logging.level"},
		{"concurrency too high", "[awards]\nlookup_concurrency = 64\n", "lookup_concurrency"},
		{"bad feed url", "[awards]\nfeed_url = \"not a url\"\n", "awards.feed_url"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeConfig(t, tc.contents)
			_, _, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("expected error mentioning %q, got %v", tc.want, err)
			}
		})
	}
}

func TestSampleConfigParses(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "abc")
	target := filepath.Join(t.TempDir(), "sample", "config.toml")
	if err := CreateSample(target); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	if err := CreateSample(target); err == nil {
		t.Fatal("expected error when target already exists")
	}

	cfg, _, exists, err := Load(target)
	if err != nil {
		t.Fatalf("sample config must load cleanly: %v", err)
	}
	if !exists {
		t.Fatal("expected sample file to be found")
	}
	if cfg.API.Bind != defaultAPIBind {
		t.Fatalf("unexpected bind %q", cfg.API.Bind)
	}
}
