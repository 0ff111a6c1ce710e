// Package tmdb provides the lookup API client used to resolve award
// nominees to canonical media records: movie details by TMDB identifier and
// movie search by free-text title.
package tmdb
