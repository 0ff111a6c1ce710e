package awards

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
)

// NominationRecord is one entry of the nomination feed, kept verbatim.
// Year is a string in the source data. Won is nullable upstream; absent and
// null both mean the record did not win.
type NominationRecord struct {
	Category string        `json:"category"`
	Year     string        `json:"year"`
	Nominees []string      `json:"nominees"`
	Movies   []RawMovieRef `json:"movies"`
	Won      *bool         `json:"won"`
}

// Winner reports whether the record is flagged as a winning nomination.
func (r NominationRecord) Winner() bool {
	return r.Won != nil && *r.Won
}

// RawMovieRef is the loose film reference carried by a nomination record.
type RawMovieRef struct {
	Title  string  `json:"title"`
	TMDBID *int64  `json:"tmdb_id"`
	IMDBID *string `json:"imdb_id"`
}

// MovieRef is a normalized film reference. Title is never empty; a zero
// TMDBID means the feed supplied no external identifier.
type MovieRef struct {
	Title  string
	TMDBID int64
	IMDBID string
}

// NormalizeRef converts a raw feed reference into a MovieRef. The second
// return value is false when the reference is unusable (blank title).
func NormalizeRef(raw RawMovieRef) (MovieRef, bool) {
	title := strings.TrimSpace(raw.Title)
	if title == "" {
		return MovieRef{}, false
	}
	ref := MovieRef{Title: title}
	if raw.TMDBID != nil && *raw.TMDBID > 0 {
		ref.TMDBID = *raw.TMDBID
	}
	if raw.IMDBID != nil {
		ref.IMDBID = strings.TrimSpace(*raw.IMDBID)
	}
	return ref, true
}

var keyFolder = cases.Fold()

// Key returns the deduplication identity for the reference. References
// sharing a TMDB identifier are the same film no matter how the feed spells
// the title; references without one collapse only on case-insensitive title
// equality.
func (r MovieRef) Key() string {
	if r.TMDBID > 0 {
		return "id:" + strconv.FormatInt(r.TMDBID, 10)
	}
	return "title:" + keyFolder.String(r.Title)
}

// Category holds one award category's deduplicated nominees in first-seen
// feed order, plus the subset flagged as winners.
type Category struct {
	Name     string
	Nominees []MovieRef

	winners map[string]struct{}
}

// IsWinner reports whether the given reference belongs to the winning
// nomination of this category.
func (c *Category) IsWinner(ref MovieRef) bool {
	_, ok := c.winners[ref.Key()]
	return ok
}

// Winners returns the winning references in nominee order.
func (c *Category) Winners() []MovieRef {
	if len(c.winners) == 0 {
		return nil
	}
	winners := make([]MovieRef, 0, len(c.winners))
	for _, ref := range c.Nominees {
		if c.IsWinner(ref) {
			winners = append(winners, ref)
		}
	}
	return winners
}

// HasWinners reports whether any nominee is flagged as winning.
func (c *Category) HasWinners() bool {
	return len(c.winners) > 0
}
