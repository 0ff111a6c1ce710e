package config

const (
	defaultTMDBBaseURL        = "https://api.themoviedb.org/3"
	defaultTMDBLanguage       = "en-US"
	defaultTMDBTimeoutSeconds = 10

	defaultFeedURL            = "https://raw.githubusercontent.com/delventhalz/json-nominations/master/oscar-nominations.json"
	defaultFeedTimeoutSeconds = 15
	defaultMinYear            = 1980
	defaultLookupConcurrency  = 8

	defaultAPIBind = "127.0.0.1:7788"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		TMDB: TMDB{
			BaseURL:        defaultTMDBBaseURL,
			Language:       defaultTMDBLanguage,
			RequestTimeout: defaultTMDBTimeoutSeconds,
		},
		Awards: Awards{
			FeedURL:           defaultFeedURL,
			FeedTimeout:       defaultFeedTimeoutSeconds,
			MinYear:           defaultMinYear,
			LookupConcurrency: defaultLookupConcurrency,
		},
		API: API{
			Bind:           defaultAPIBind,
			AllowedOrigins: []string{"*"},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
