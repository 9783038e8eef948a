// Package virtual implements windowed rendering for large ordered collections.
//
// A List presents an arbitrarily long collection as a scrollable surface of
// totalItems * itemHeight rows while only ever materializing the rows that
// intersect the viewport plus a small buffer above and below. Key features:
//   - O(viewport_height) render complexity regardless of collection size
//   - Change detection: the per-item render callback fires only when the
//     visible index range actually moves, not on every raw scroll event
//   - Stable per-item identity via a caller-supplied key extractor, so a
//     window sliding by one row reuses rendered state instead of rebuilding it
//   - An accessibility status string ("Showing items X to Y of Z") refreshed
//     on every recompute
//
// The package is framework neutral: it knows nothing about Bubble Tea or any
// other UI toolkit. Callers adapt their event source to the Container
// interface and consume the published row slice however they render.
//
// Item height is fixed per List instance. Variable-height rows would require
// a prefix-sum position model and are deliberately unsupported.
package virtual
