package place

import (
	"github.com/sarchlab/zeonica-pnr/arch"
	"github.com/sarchlab/zeonica-pnr/design"
)

// Run composes the full placement pipeline in the order §2 prescribes:
// C9 budget assignment, C7 constraint placement, C8 heuristic
// placement, with C6's integrity check invoked as a post-condition
// after each phase (§2: "C6 is invoked as a post-condition after each
// phase"). It is a convenience for cmd/zplace, not itself one of the
// three named core entry points (§6.4); callers that need finer
// control call PlaceConstraints/PlaceHeuristic/Context.Check directly.
func Run(ctx *design.Context, opts Options) (*Summary, error) {
	AssignBudgets(ctx, opts)

	s := &Summary{RunID: ctx.RunID(), Total: len(ctx.Cells())}

	constraintsOK, err := PlaceConstraints(ctx, opts)
	if err != nil {
		return nil, err
	}
	if !constraintsOK {
		s.PhaseAWarn = append(s.PhaseAWarn, "one or more constraints were downgraded by --force")
	}
	if err := ctx.Check(); err != nil {
		return nil, err
	}

	heuristicOK, err := PlaceHeuristic(ctx, opts)
	if err != nil {
		return nil, err
	}
	if !heuristicOK {
		s.PhaseBWarn = append(s.PhaseBWarn, "one or more cells were downgraded by --force")
	}
	if err := ctx.Check(); err != nil {
		return nil, err
	}

	s.ByType = histogram(ctx)
	s.Placed = countPlaced(ctx)
	s.Checksum = ctx.Checksum()

	return s, nil
}

// histogram computes the bel-utilisation-by-type table: one walk over
// the catalog's bels, counting per bel type how many exist and how many
// are currently bound.
func histogram(ctx *design.Context) map[string]TypeUtilization {
	out := make(map[string]TypeUtilization)

	for _, bel := range ctx.Catalog.Bels() {
		typ := ctx.Interner.String(ctx.Catalog.BelType(bel))
		u := out[typ]
		u.Type = typ
		u.Avail++
		if _, bound := ctx.BelBoundCell(bel); bound {
			u.Used++
		}
		out[typ] = u
	}

	return out
}

func countPlaced(ctx *design.Context) int {
	n := 0
	for _, cell := range ctx.Cells() {
		if cell.Bel() != arch.NullBel {
			n++
		}
	}
	return n
}
