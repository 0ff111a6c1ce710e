// Package resolve reconciles nominee references against the TMDB lookup
// API. The Resolver maps a single reference to a canonical media record;
// the Coordinator resolves every unique reference of a ceremony exactly
// once, concurrently, with per-reference failure isolation; the Session
// owns the immutable nomination set and generation-stamps each batch so a
// superseded year selection can never overwrite a newer one.
package resolve
