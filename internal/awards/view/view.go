// Package view assembles resolved resolution batches into the per-category
// payloads the browsing surfaces display.
package view

import (
	"nextrailer/internal/awards"
	"nextrailer/internal/tmdb"
)

// CategoryView is the display payload for one award category: resolved
// media aligned to nominee order, plus winner titles when they may be shown.
type CategoryView struct {
	Name         string           `json:"name"`
	Items        []tmdb.MediaItem `json:"items"`
	WinnerTitles []string         `json:"winner_titles,omitempty"`
}

// ShowWinners reports whether winner annotations may be displayed: always
// for past ceremonies, and for the current year once any category carries a
// winner flag (the ceremony has been held).
func ShowWinners(categories []awards.Category, effectiveYear, currentYear int) bool {
	if effectiveYear < currentYear {
		return true
	}
	for i := range categories {
		if categories[i].HasWinners() {
			return true
		}
	}
	return false
}

// Assemble combines category structure, resolved media, and winner flags
// into ordered category views. Winner titles are the reference titles as the
// feed announced them, in nominee order, and are populated only when
// showWinners is true.
func Assemble(categories []awards.Category, items map[string][]tmdb.MediaItem, showWinners bool) []CategoryView {
	views := make([]CategoryView, 0, len(categories))
	for i := range categories {
		category := &categories[i]
		cv := CategoryView{
			Name:  category.Name,
			Items: items[category.Name],
		}
		if cv.Items == nil {
			cv.Items = []tmdb.MediaItem{}
		}
		if showWinners {
			for _, winner := range category.Winners() {
				cv.WinnerTitles = append(cv.WinnerTitles, winner.Title)
			}
		}
		views = append(views, cv)
	}
	return views
}
