package place

import "github.com/sarchlab/zeonica-pnr/design"

// PlaceDesign is the non-heuristic placement entry point referenced in
// the Open Questions (§9): the reference implementation this repo was
// distilled from keeps a `place_design` variant alongside the
// heuristic one, but its cost function is not part of the
// distillation. It is kept as a documented fallback contract rather
// than dropped, so callers that branch on core entry points by name
// still find it; it returns a NotImplemented error rather than
// panicking.
func PlaceDesign(ctx *design.Context, opts Options) (bool, error) {
	return false, newError(KindNotImplemented, "PlaceDesign has no cost function in this build; use PlaceHeuristic")
}
