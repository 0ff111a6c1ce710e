package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
)

func TestSearchMoviePartitionsMovieResults(t *testing.T) {
	var captured url.Values
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/movie" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		captured = r.URL.Query()
		payload := map[string]any{
			"page":          1,
			"total_pages":   1,
			"total_results": 2,
			"results": []map[string]any{
				{"id": 346698, "title": "Barbie", "release_date": "2023-07-19", "genre_ids": []int64{35, 12}},
				{"id": 77771, "title": "Barbie of Swan Lake", "release_date": "2003-09-23"},
			},
		}
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	client, err := New("key", server.URL, "en-US")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	results, err := client.SearchMovie(context.Background(), "Barbie")
	if err != nil {
		t.Fatalf("SearchMovie returned error: %v", err)
	}
	if len(results.Movies) != 2 {
		t.Fatalf("expected 2 movie candidates, got %d", len(results.Movies))
	}
	if results.Movies[0].ID != 346698 {
		t.Fatalf("expected first candidate 346698, got %d", results.Movies[0].ID)
	}
	if captured.Get("query") != "Barbie" {
		t.Fatalf("expected query Barbie, got %q", captured.Get("query"))
	}
	if captured.Get("language") != "en-US" {
		t.Fatalf("expected language en-US, got %q", captured.Get("language"))
	}
}

func TestSearchMovieRejectsEmptyQuery(t *testing.T) {
	client, err := New("key", "http://localhost", "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if _, err := client.SearchMovie(context.Background(), "   "); err == nil {
		t.Fatal("expected error for empty query")
	}
}

func TestGetMovieDetailsDerivesGenreIDsAndKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/movie/872585" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		payload := map[string]any{
			"id":           872585,
			"title":        "Oppenheimer",
			"release_date": "2023-07-19",
			"genres": []map[string]any{
				{"id": 18, "name": "Drama"},
				{"id": 36, "name": "History"},
			},
		}
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer server.Close()

	client, err := New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	item, err := client.GetMovieDetails(context.Background(), 872585)
	if err != nil {
		t.Fatalf("GetMovieDetails returned error: %v", err)
	}
	if item.MediaType != "movie" {
		t.Fatalf("expected media type movie, got %q", item.MediaType)
	}
	if len(item.GenreIDs) != 2 || item.GenreIDs[0] != 18 || item.GenreIDs[1] != 36 {
		t.Fatalf("expected genre ids derived from genres, got %v", item.GenreIDs)
	}
}

func TestGetMovieDetailsNotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client, err := New("key", server.URL, "")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, err = client.GetMovieDetails(context.Background(), 999999)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNewValidatesInputs(t *testing.T) {
	if _, err := New("", "http://localhost", ""); err == nil {
		t.Fatal("expected error for missing api key")
	}
	if _, err := New("key", "", ""); err == nil {
		t.Fatal("expected error for missing base url")
	}
}
