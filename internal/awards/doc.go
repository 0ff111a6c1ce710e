// Package awards models the external award-nomination feed and the pure
// reconciliation steps that run before any lookup: effective-year selection,
// nominee normalization, reference keying, and per-category grouping.
//
// Everything here is deterministic over its inputs; network resolution of
// nominees lives in the resolve subpackage.
package awards
