package main

import (
	"log/slog"
	"strings"
	"sync"
	"time"

	"nextrailer/internal/awards"
	"nextrailer/internal/awards/resolve"
	"nextrailer/internal/config"
	"nextrailer/internal/logging"
	"nextrailer/internal/tmdb"
)

type commandContext struct {
	configFlag   *string
	logLevelFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, logLevelFlag *string) *commandContext {
	return &commandContext{
		configFlag:   configFlag,
		logLevelFlag: logLevelFlag,
	}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) newLogger(cfg *config.Config) (*slog.Logger, error) {
	if c.logLevelFlag != nil && strings.TrimSpace(*c.logLevelFlag) != "" {
		override := *cfg
		override.Logging.Level = strings.TrimSpace(*c.logLevelFlag)
		return logging.NewFromConfig(&override)
	}
	return logging.NewFromConfig(cfg)
}

// newEngine wires the feed client, lookup client, and batch coordinator
// from configuration.
func (c *commandContext) newEngine(cfg *config.Config, logger *slog.Logger) (*awards.FeedClient, *resolve.Coordinator, error) {
	feed, err := awards.NewFeedClient(cfg.Awards.FeedURL,
		awards.WithFeedTimeout(time.Duration(cfg.Awards.FeedTimeout)*time.Second))
	if err != nil {
		return nil, nil, err
	}

	lookup, err := tmdb.New(cfg.TMDB.APIKey, cfg.TMDB.BaseURL, cfg.TMDB.Language,
		tmdb.WithTimeout(time.Duration(cfg.TMDB.RequestTimeout)*time.Second))
	if err != nil {
		return nil, nil, err
	}

	resolver, err := resolve.NewResolver(lookup, logger)
	if err != nil {
		return nil, nil, err
	}

	return feed, resolve.NewCoordinator(resolver, logger, cfg.Awards.LookupConcurrency), nil
}
