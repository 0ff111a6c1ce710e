package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"nextrailer/internal/awards/view"
	"nextrailer/internal/logging"
)

// awardsResponse is the payload for one year's reconciled ceremony.
type awardsResponse struct {
	Year          int                 `json:"year"`
	EffectiveYear int                 `json:"effective_year"`
	ShowWinners   bool                `json:"show_winners"`
	Categories    []view.CategoryView `json:"categories"`
}

func (s *Server) handleGetAwards(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "year must be an integer")
		return
	}
	if year < s.cfg.Awards.MinYear {
		writeError(w, http.StatusBadRequest, "year is before the start of the dataset")
		return
	}

	snapshot, err := s.session.Select(r.Context(), year)
	if err != nil {
		s.logger.Error("awards selection failed",
			logging.Int(logging.FieldYear, year),
			logging.Error(err))
		writeError(w, http.StatusBadGateway, "could not resolve awards data")
		return
	}

	showWinners := view.ShowWinners(snapshot.Categories, snapshot.EffectiveYear, time.Now().Year())
	writeJSON(w, http.StatusOK, awardsResponse{
		Year:          snapshot.RequestedYear,
		EffectiveYear: snapshot.EffectiveYear,
		ShowWinners:   showWinners,
		Categories:    view.Assemble(snapshot.Categories, snapshot.Items, showWinners),
	})
}
