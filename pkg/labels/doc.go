// Package labels implements identifier resolution, duplicate
// disambiguation, and label installation for genetable entities.
//
// Resolve turns a list of requested identifiers into positional indices
// against a reference label sequence, supporting exact or partial matching
// and first-hit or all-hits collection. Deduplicate rewrites colliding
// labels with positional suffixes. SetLabels and SetLabelsFromColumn
// install a new identifier sequence on an entity axis.
package labels
