package resolve

import (
	"context"
	"errors"
	"testing"

	"nextrailer/internal/awards"
	"nextrailer/internal/tmdb"
)

func int64Ptr(v int64) *int64 { return &v }

func boolPtr(v bool) *bool { return &v }

func groupFixture(t *testing.T, records []awards.NominationRecord, year int) []awards.Category {
	t.Helper()
	categories := awards.GroupByCategory(records, year)
	if len(categories) == 0 {
		t.Fatal("fixture produced no categories")
	}
	return categories
}

func TestResolveAllSharedReferenceResolvedOnce(t *testing.T) {
	lookup := newFakeLookup()
	lookup.details = func(movieID int64) (*tmdb.MediaItem, error) {
		return &tmdb.MediaItem{ID: movieID, Title: "Oppenheimer"}, nil
	}

	resolver, err := NewResolver(lookup, nil)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	coordinator := NewCoordinator(resolver, nil, 4)

	categories := groupFixture(t, []awards.NominationRecord{
		{Category: "Best Picture", Year: "2023", Movies: []awards.RawMovieRef{{Title: "Oppenheimer", TMDBID: int64Ptr(100)}}},
		{Category: "Best Director", Year: "2023", Movies: []awards.RawMovieRef{{Title: "Oppenheimer", TMDBID: int64Ptr(100)}}},
	}, 2023)

	items, err := coordinator.ResolveAll(context.Background(), categories)
	if err != nil {
		t.Fatalf("ResolveAll returned error: %v", err)
	}

	if got := lookup.detailCalls[100]; got != 1 {
		t.Fatalf("shared reference must cost exactly one lookup, got %d", got)
	}
	for _, name := range []string{"Best Director", "Best Picture"} {
		if len(items[name]) != 1 {
			t.Fatalf("category %s expected 1 resolved item, got %d", name, len(items[name]))
		}
		if items[name][0].ID != 100 {
			t.Fatalf("category %s resolved wrong item %d", name, items[name][0].ID)
		}
	}
}

func TestResolveAllDropsUnresolvedReferences(t *testing.T) {
	lookup := newFakeLookup()
	lookup.details = func(movieID int64) (*tmdb.MediaItem, error) {
		return &tmdb.MediaItem{ID: movieID, Title: "Poor Things"}, nil
	}
	// search stays nil: every title-only reference returns zero results.

	resolver, err := NewResolver(lookup, nil)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	coordinator := NewCoordinator(resolver, nil, 2)

	categories := groupFixture(t, []awards.NominationRecord{
		{Category: "Best Picture", Year: "2023", Movies: []awards.RawMovieRef{
			{Title: "Poor Things", TMDBID: int64Ptr(792307)},
			{Title: "Some Obscure Nominee"},
		}},
	}, 2023)

	items, err := coordinator.ResolveAll(context.Background(), categories)
	if err != nil {
		t.Fatalf("unresolved references must not error the batch: %v", err)
	}
	list := items["Best Picture"]
	if len(list) != 1 {
		t.Fatalf("expected unresolved reference omitted, got %d items", len(list))
	}
	if list[0].ID != 792307 {
		t.Fatalf("wrong surviving item %d", list[0].ID)
	}
}

func TestResolveAllIsolatesFailures(t *testing.T) {
	lookup := newFakeLookup()
	lookup.details = func(movieID int64) (*tmdb.MediaItem, error) {
		if movieID == 13 {
			return nil, errors.New("transport reset")
		}
		return &tmdb.MediaItem{ID: movieID, Title: "Fine"}, nil
	}

	resolver, err := NewResolver(lookup, nil)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	coordinator := NewCoordinator(resolver, nil, 4)

	categories := groupFixture(t, []awards.NominationRecord{
		{Category: "Best Picture", Year: "2023", Movies: []awards.RawMovieRef{
			{Title: "Unlucky", TMDBID: int64Ptr(13)},
			{Title: "Fine", TMDBID: int64Ptr(14)},
			{Title: "Also Fine", TMDBID: int64Ptr(15)},
		}},
	}, 2023)

	items, err := coordinator.ResolveAll(context.Background(), categories)
	if err != nil {
		t.Fatalf("one failed lookup must not fail the batch: %v", err)
	}
	if len(items["Best Picture"]) != 2 {
		t.Fatalf("expected 2 surviving items, got %d", len(items["Best Picture"]))
	}
}

func TestResolveAllPreservesNomineeOrder(t *testing.T) {
	lookup := newFakeLookup()
	lookup.details = func(movieID int64) (*tmdb.MediaItem, error) {
		return &tmdb.MediaItem{ID: movieID}, nil
	}

	resolver, err := NewResolver(lookup, nil)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	coordinator := NewCoordinator(resolver, nil, 8)

	categories := groupFixture(t, []awards.NominationRecord{
		{Category: "Best Picture", Year: "2023", Movies: []awards.RawMovieRef{
			{Title: "A", TMDBID: int64Ptr(3)},
			{Title: "B", TMDBID: int64Ptr(1)},
			{Title: "C", TMDBID: int64Ptr(2)},
		}},
	}, 2023)

	items, err := coordinator.ResolveAll(context.Background(), categories)
	if err != nil {
		t.Fatalf("ResolveAll returned error: %v", err)
	}
	got := items["Best Picture"]
	if len(got) != 3 || got[0].ID != 3 || got[1].ID != 1 || got[2].ID != 2 {
		t.Fatalf("items must follow nominee order, got %+v", got)
	}
}

func TestResolveAllCancelledContext(t *testing.T) {
	resolver, err := NewResolver(newFakeLookup(), nil)
	if err != nil {
		t.Fatalf("NewResolver failed: %v", err)
	}
	coordinator := NewCoordinator(resolver, nil, 1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := coordinator.ResolveAll(ctx, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
