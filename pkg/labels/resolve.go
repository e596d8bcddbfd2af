package labels

import (
	"strings"

	"github.com/mesh-intelligence/genetable/pkg/types"
)

// MatchFunc reports whether a reference candidate satisfies a query
// pattern. It is the pluggable backend for partial matching; the default is
// substring containment.
type MatchFunc func(pattern, candidate string) bool

// containsMatch is the default MatchFunc.
func containsMatch(pattern, candidate string) bool {
	return strings.Contains(candidate, pattern)
}

// ResolveOptions selects the reference sequence and match mode for Resolve.
// The zero value means: search the live identifier sequence, exact
// equality, first hit per query item.
type ResolveOptions struct {
	// ByColumn names an annotation column to search instead of the live
	// identifier sequence. Requires an annotation-table-bearing entity.
	ByColumn string

	// BySequence supplies an explicit reference sequence, bypassing both
	// the live identifiers and annotation lookup. Must be full axis length.
	// Takes precedence over ByColumn.
	BySequence []string

	// Partial switches from exact equality to pattern containment.
	Partial bool

	// All collects every hit per query item instead of only the first.
	All bool

	// Match overrides the partial-match backend. Ignored in exact mode;
	// nil means substring containment.
	Match MatchFunc
}

// Severity grades a resolution diagnostic. Diagnostics are advisory and
// never abort a call.
type Severity string

const (
	// SeverityWarning flags partial misses and redundant matches.
	SeverityWarning Severity = "warning"
	// SeverityCritical flags a query with no matches at all.
	SeverityCritical Severity = "critical"
)

// Diagnostic describes a non-fatal resolution finding.
type Diagnostic struct {
	Severity Severity
	Message  string
	Items    []string // offending query items or reference labels
}

// Result is the outcome of a Resolve call. Indices are 0-based positions
// into the reference sequence, each reported at most once.
type Result struct {
	Indices          []int
	NotFound         []string // query items with no match, in query order
	DuplicateTargets []string // see Resolve for the per-mode meaning
	Diagnostics      []Diagnostic
}

// Resolve maps the query identifiers to positional indices in a reference
// sequence of the given axis.
//
// The reference sequence is, in order of precedence: opts.BySequence,
// the annotation column opts.ByColumn, or the entity's live identifier
// sequence.
//
// Four match modes exist, selected by opts.Partial and opts.All:
//
//   - exact, first hit: each query item claims the first position holding
//     it; DuplicateTargets lists reference labels claimed by more than one
//     distinct query item.
//   - exact, all hits: the indices are every position whose label occurs in
//     the query, in reference order; DuplicateTargets lists query items
//     that were redundantly repeated among the matched subset.
//   - partial, first hit: each query item is a pattern scanned against the
//     reference in order, claiming its first hit.
//   - partial, all hits: every hit per pattern is claimed. In both partial
//     modes DuplicateTargets lists reference labels claimed by more than
//     one distinct query item.
//
// Unmatched query items are collected in NotFound and reported through
// advisory Diagnostics; they never fail the call. Fatal errors are
// ErrInvalidAxis, ErrNotTableLike, ErrUnknownAnnotationColumn,
// ErrMissingIdentifiers, and ErrLengthMismatch (explicit BySequence of the
// wrong length).
func Resolve(e types.Entity, query []string, axis types.Axis, opts ResolveOptions) (*Result, error) {
	if e == nil {
		return nil, types.ErrNotTableLike
	}
	if err := axis.Validate(); err != nil {
		return nil, err
	}

	ref, err := referenceSequence(e, axis, opts)
	if err != nil {
		return nil, err
	}

	res := &Result{}
	if opts.Partial {
		resolvePartial(res, ref, query, opts)
	} else if opts.All {
		resolveExactAll(res, ref, query)
	} else {
		resolveExactFirst(res, ref, query)
	}

	res.appendDiagnostics(query, opts)
	return res, nil
}

// referenceSequence selects the sequence to search against.
func referenceSequence(e types.Entity, axis types.Axis, opts ResolveOptions) ([]string, error) {
	if opts.BySequence != nil {
		if len(opts.BySequence) != e.AxisExtent(axis) {
			return nil, types.ErrLengthMismatch
		}
		return opts.BySequence, nil
	}
	if opts.ByColumn != "" {
		ann, ok := e.(types.Annotated)
		if !ok {
			return nil, types.ErrNotTableLike
		}
		col, ok := ann.AnnotationColumn(axis, opts.ByColumn)
		if !ok {
			return nil, types.ErrUnknownAnnotationColumn
		}
		return col, nil
	}
	ref, ok := e.AxisLabels(axis)
	if !ok {
		return nil, types.ErrMissingIdentifiers
	}
	return ref, nil
}

// resolveExactFirst takes, per query item, the position of its first
// occurrence in the reference sequence.
func resolveExactFirst(res *Result, ref, query []string) {
	firstAt := make(map[string]int, len(ref))
	for i, r := range ref {
		if _, seen := firstAt[r]; !seen {
			firstAt[r] = i
		}
	}

	claims := make(map[int]map[string]bool) // position -> distinct query items
	missed := make(map[string]bool)
	for _, q := range query {
		pos, ok := firstAt[q]
		if !ok {
			if !missed[q] {
				missed[q] = true
				res.NotFound = append(res.NotFound, q)
			}
			continue
		}
		res.addIndex(pos)
		if claims[pos] == nil {
			claims[pos] = make(map[string]bool)
		}
		claims[pos][q] = true
	}
	res.collectContestedLabels(ref, claims)
}

// resolveExactAll selects every reference position whose label is a member
// of the query set, in reference order. DuplicateTargets reports query
// items that were repeated among the subset of query items with a match.
func resolveExactAll(res *Result, ref, query []string) {
	occurrences := make(map[string]int, len(query))
	for _, q := range query {
		occurrences[q]++
	}

	matched := make(map[string]bool)
	for i, r := range ref {
		if _, wanted := occurrences[r]; wanted {
			res.addIndex(i)
			matched[r] = true
		}
	}

	reportedMiss := make(map[string]bool)
	reportedDup := make(map[string]bool)
	for _, q := range query {
		switch {
		case !matched[q]:
			if !reportedMiss[q] {
				reportedMiss[q] = true
				res.NotFound = append(res.NotFound, q)
			}
		case occurrences[q] > 1:
			if !reportedDup[q] {
				reportedDup[q] = true
				res.DuplicateTargets = append(res.DuplicateTargets, q)
			}
		}
	}
}

// resolvePartial scans the reference sequence per query pattern, taking the
// first hit or every hit depending on opts.All.
func resolvePartial(res *Result, ref, query []string, opts ResolveOptions) {
	match := opts.Match
	if match == nil {
		match = containsMatch
	}

	claims := make(map[int]map[string]bool)
	missed := make(map[string]bool)
	for _, q := range query {
		found := false
		for i, r := range ref {
			if !match(q, r) {
				continue
			}
			found = true
			res.addIndex(i)
			if claims[i] == nil {
				claims[i] = make(map[string]bool)
			}
			claims[i][q] = true
			if !opts.All {
				break
			}
		}
		if !found && !missed[q] {
			missed[q] = true
			res.NotFound = append(res.NotFound, q)
		}
	}
	res.collectContestedLabels(ref, claims)
}

// addIndex appends pos unless it is already present. Selection order is
// preserved; each position appears at most once.
func (r *Result) addIndex(pos int) {
	for _, existing := range r.Indices {
		if existing == pos {
			return
		}
	}
	r.Indices = append(r.Indices, pos)
}

// collectContestedLabels records, as reference labels, the positions
// claimed by more than one distinct query item.
func (r *Result) collectContestedLabels(ref []string, claims map[int]map[string]bool) {
	reported := make(map[string]bool)
	for _, pos := range r.Indices {
		if len(claims[pos]) > 1 && !reported[ref[pos]] {
			reported[ref[pos]] = true
			r.DuplicateTargets = append(r.DuplicateTargets, ref[pos])
		}
	}
}

// appendDiagnostics attaches the advisory findings for this resolution.
// Multiple diagnostics may apply to a single call.
func (r *Result) appendDiagnostics(query []string, opts ResolveOptions) {
	if len(query) > 0 && len(r.Indices) == 0 {
		msg := "none of the requested identifiers were found; consider partial matching"
		if opts.Partial {
			msg = "no reference labels matched the requested patterns; check the search column"
		}
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Severity: SeverityCritical,
			Message:  msg,
			Items:    append([]string(nil), r.NotFound...),
		})
	} else if len(r.NotFound) > 0 {
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Severity: SeverityWarning,
			Message:  "some requested identifiers were not found",
			Items:    append([]string(nil), r.NotFound...),
		})
	}

	if len(r.DuplicateTargets) > 0 {
		msg := "reference labels matched by multiple query items"
		if !opts.Partial && opts.All {
			msg = "query items redundantly repeated for the same label"
		}
		r.Diagnostics = append(r.Diagnostics, Diagnostic{
			Severity: SeverityWarning,
			Message:  msg,
			Items:    append([]string(nil), r.DuplicateTargets...),
		})
	}
}
