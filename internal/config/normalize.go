package config

import (
	"fmt"
	"os"
	"strings"
)

func (c *Config) normalize() error {
	c.normalizeTMDB()
	c.normalizeAwards()
	c.normalizeAPI()
	return c.normalizeLogging()
}

func (c *Config) normalizeTMDB() {
	if key, ok := os.LookupEnv("TMDB_API_KEY"); ok && strings.TrimSpace(key) != "" {
		c.TMDB.APIKey = strings.TrimSpace(key)
	}
	c.TMDB.APIKey = strings.TrimSpace(c.TMDB.APIKey)
	c.TMDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.TMDB.BaseURL), "/")
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = defaultTMDBBaseURL
	}
	c.TMDB.Language = strings.TrimSpace(c.TMDB.Language)
	if c.TMDB.RequestTimeout <= 0 {
		c.TMDB.RequestTimeout = defaultTMDBTimeoutSeconds
	}
}

func (c *Config) normalizeAwards() {
	c.Awards.FeedURL = strings.TrimSpace(c.Awards.FeedURL)
	if c.Awards.FeedURL == "" {
		c.Awards.FeedURL = defaultFeedURL
	}
	if c.Awards.FeedTimeout <= 0 {
		c.Awards.FeedTimeout = defaultFeedTimeoutSeconds
	}
	if c.Awards.MinYear <= 0 {
		c.Awards.MinYear = defaultMinYear
	}
	if c.Awards.LookupConcurrency <= 0 {
		c.Awards.LookupConcurrency = defaultLookupConcurrency
	}
}

func (c *Config) normalizeAPI() {
	c.API.Bind = strings.TrimSpace(c.API.Bind)
	if c.API.Bind == "" {
		c.API.Bind = defaultAPIBind
	}
	origins := make([]string, 0, len(c.API.AllowedOrigins))
	for _, origin := range c.API.AllowedOrigins {
		if trimmed := strings.TrimSpace(origin); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	c.API.AllowedOrigins = origins
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.LogDir) != "" {
		expanded, err := expandPath(c.Logging.LogDir)
		if err != nil {
			return fmt.Errorf("logging.log_dir: %w", err)
		}
		c.Logging.LogDir = expanded
	}
	return nil
}
