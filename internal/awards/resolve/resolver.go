package resolve

import (
	"context"
	"errors"
	"log/slog"

	"golang.org/x/text/cases"

	"nextrailer/internal/awards"
	"nextrailer/internal/logging"
	"nextrailer/internal/tmdb"
)

// Lookup is the subset of the TMDB client used to resolve references.
type Lookup interface {
	GetMovieDetails(ctx context.Context, movieID int64) (*tmdb.MediaItem, error)
	SearchMovie(ctx context.Context, query string) (*tmdb.SearchResults, error)
}

// Resolver maps one film reference to a canonical media record. It is pure
// with respect to its inputs and the lookup responses; it keeps no state
// between calls.
type Resolver struct {
	lookup Lookup
	logger *slog.Logger
}

// NewResolver creates a Resolver backed by the given lookup client.
func NewResolver(lookup Lookup, logger *slog.Logger) (*Resolver, error) {
	if lookup == nil {
		return nil, errors.New("resolver requires a lookup client")
	}
	return &Resolver{
		lookup: lookup,
		logger: logging.NewComponentLogger(logger, "resolver"),
	}, nil
}

var titleFolder = cases.Fold()

// Resolve turns a reference into a media record, or reports it unresolved.
//
// A reference carrying a TMDB identifier is fetched by that identifier
// alone; the identifier is authoritative, so a not-found or transport
// failure yields unresolved rather than falling through to a title search
// that could silently substitute an unrelated film. A reference without an
// identifier is resolved by title search, preferring an exact
// case-insensitive title match over the first candidate.
//
// Unresolved is reported as (nil, nil) when the lookup simply had no match
// and (nil, err) when a call failed; callers treat both the same way.
func (r *Resolver) Resolve(ctx context.Context, ref awards.MovieRef) (*tmdb.MediaItem, error) {
	if ref.TMDBID > 0 {
		item, err := r.lookup.GetMovieDetails(ctx, ref.TMDBID)
		if err != nil {
			return nil, err
		}
		return tagged(item), nil
	}

	results, err := r.lookup.SearchMovie(ctx, ref.Title)
	if err != nil {
		return nil, err
	}
	if results == nil || len(results.Movies) == 0 {
		return nil, nil
	}

	want := titleFolder.String(ref.Title)
	for i := range results.Movies {
		if titleFolder.String(results.Movies[i].Title) == want {
			return tagged(&results.Movies[i]), nil
		}
	}
	r.logger.Debug("no exact title match, using first candidate",
		logging.String(logging.FieldTitle, ref.Title),
		logging.String("candidate", results.Movies[0].Title),
		logging.Int("candidates", len(results.Movies)))
	return tagged(&results.Movies[0]), nil
}

// tagged stamps the film-only media kind on a lookup result. The nomination
// dataset contains no television entries, and search payloads omit
// media_type entirely.
func tagged(item *tmdb.MediaItem) *tmdb.MediaItem {
	if item == nil {
		return nil
	}
	copied := *item
	copied.MediaType = "movie"
	if len(copied.GenreIDs) == 0 && len(copied.Genres) > 0 {
		copied.GenreIDs = make([]int64, 0, len(copied.Genres))
		for _, genre := range copied.Genres {
			copied.GenreIDs = append(copied.GenreIDs, genre.ID)
		}
	}
	return &copied
}
