package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"nextrailer/internal/awards/resolve"
	"nextrailer/internal/awards/view"
)

func newAwardsCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "awards [year]",
		Short: "Show award categories, nominees, and winners for a year",
		Long: `Fetch the nomination feed, resolve every nominee against TMDB, and print
the ceremony's categories. When the requested year has no records the feed's
previous year is used instead (some ceremonies are labeled by the year they
were held rather than the eligibility year).

Examples:
  nextrailer awards           # current year
  nextrailer awards 2023
  nextrailer awards 2023 --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			currentYear := time.Now().Year()
			year := currentYear
			if len(args) > 0 {
				year, err = strconv.Atoi(strings.TrimSpace(args[0]))
				if err != nil {
					return fmt.Errorf("parse year %q: %w", args[0], err)
				}
			}
			if year < cfg.Awards.MinYear {
				return fmt.Errorf("year %d is before the dataset start (%d)", year, cfg.Awards.MinYear)
			}

			logger, err := ctx.newLogger(cfg)
			if err != nil {
				return fmt.Errorf("setup logging: %w", err)
			}

			feed, coordinator, err := ctx.newEngine(cfg, logger)
			if err != nil {
				return err
			}

			session, err := resolve.LoadSession(cmd.Context(), feed, coordinator, logger)
			if err != nil {
				return err
			}

			snapshot, err := session.Select(cmd.Context(), year)
			if err != nil {
				return err
			}

			showWinners := view.ShowWinners(snapshot.Categories, snapshot.EffectiveYear, currentYear)
			views := view.Assemble(snapshot.Categories, snapshot.Items, showWinners)

			if jsonOut {
				return writeJSON(cmd, struct {
					Year          int                 `json:"year"`
					EffectiveYear int                 `json:"effective_year"`
					ShowWinners   bool                `json:"show_winners"`
					Categories    []view.CategoryView `json:"categories"`
				}{snapshot.RequestedYear, snapshot.EffectiveYear, showWinners, views})
			}

			out := cmd.OutOrStdout()
			if snapshot.EffectiveYear != snapshot.RequestedYear {
				fmt.Fprintf(out, "No records for %d; showing the %d ceremony instead.\n\n", snapshot.RequestedYear, snapshot.EffectiveYear)
			}
			if len(views) == 0 {
				fmt.Fprintf(out, "No award data available for %d.\n", snapshot.EffectiveYear)
				return nil
			}

			for _, cv := range views {
				fmt.Fprintln(out, renderCategory(cv))
				fmt.Fprintln(out)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit machine-readable JSON")
	return cmd
}

func renderCategory(cv view.CategoryView) string {
	var b strings.Builder
	b.WriteString(cv.Name)
	if len(cv.WinnerTitles) > 0 {
		b.WriteString("  (winner: ")
		b.WriteString(strings.Join(cv.WinnerTitles, ", "))
		b.WriteString(")")
	}
	b.WriteByte('\n')

	if len(cv.Items) == 0 {
		b.WriteString("  no resolved titles for this category")
		return b.String()
	}

	winners := make(map[string]struct{}, len(cv.WinnerTitles))
	for _, title := range cv.WinnerTitles {
		winners[strings.ToLower(title)] = struct{}{}
	}

	rows := make([][]string, 0, len(cv.Items))
	for _, item := range cv.Items {
		marker := ""
		if _, ok := winners[strings.ToLower(item.Title)]; ok {
			marker = "*"
		}
		year := item.ReleaseDate
		if len(year) >= 4 {
			year = year[:4]
		}
		rows = append(rows, []string{marker, item.Title, year, fmt.Sprintf("%.1f", item.VoteAverage)})
	}
	b.WriteString(renderTable([]string{"", "Title", "Year", "Rating"}, rows, []columnAlignment{alignLeft, alignLeft, alignRight, alignRight}))
	return b.String()
}
