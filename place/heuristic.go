package place

import (
	"github.com/sarchlab/zeonica-pnr/arch"
	"github.com/sarchlab/zeonica-pnr/design"
	"github.com/sarchlab/zeonica-pnr/ident"
)

// heuristicPasses is K in §4.6: the fixed number of Phase B
// improvement passes over the Phase-A-placed cells.
const heuristicPasses = 3

// fanoutDampingThreshold is the §4.6 cutoff: an output net with this
// many users or more contributes to Phase B's cost only through its
// driver, not through every user.
const fanoutDampingThreshold = 5

// PlaceHeuristic runs C8: Phase A greedy type-batched seeding followed
// by heuristicPasses rounds of Phase B iterative HPWL-cost
// improvement. Both phases assume constraint-placed cells (bound by
// PlaceConstraints at StrengthUser) are already bound and leaves them
// untouched. Returns false (without error) if a non-fatal failure was
// downgraded by opts' Force flag.
func PlaceHeuristic(ctx *design.Context, opts Options) (bool, error) {
	ok := true

	if err := phaseA(ctx, opts, &ok); err != nil {
		return false, err
	}

	for pass := 0; pass < heuristicPasses; pass++ {
		if err := phaseB(ctx, opts, &ok, pass); err != nil {
			return false, err
		}
	}

	return ok, nil
}

// phaseA implements §4.6 Phase A: for each distinct cell type among
// unplaced cells, a single cursor scans the catalog's bels() in
// declaration order, skipping any bel that does not match, is
// unavailable, or fails the catalog's DRC predicate.
func phaseA(ctx *design.Context, opts Options, ok *bool) error {
	bels := ctx.Catalog.Bels()

	types := distinctUnplacedTypes(ctx)
	placedSoFar := 0
	total := len(ctx.Cells())

	for _, typ := range types {
		if !catalogHasBelOfType(ctx, bels, typ) {
			if err := fail(opts, ok, newError(KindUnknownBelType,
				"cell type %q has no bels in the catalog", ctx.Interner.String(typ))); err != nil {
				return err
			}
			continue
		}

		cursor := 0
		for _, cell := range ctx.Cells() {
			if cell.Bel() != arch.NullBel || cell.Type() != typ {
				continue
			}

			assigned := false
			for cursor < len(bels) {
				bel := bels[cursor]
				cursor++

				if ctx.Catalog.BelType(bel) != typ {
					continue
				}
				if !ctx.CheckBelAvail(bel) {
					continue
				}
				if !ctx.Catalog.IsValidBelForCell(cell, bel, ctx) {
					continue
				}

				if err := ctx.BindBel(bel, cell.Name(), design.StrengthPlacer); err != nil {
					return err
				}
				backAnnotate(ctx, cell, bel)
				assigned = true
				break
			}

			if !assigned {
				if err := fail(opts, ok, newError(KindResourceExhausted,
					"too many %q cells used: no bel available for %q",
					ctx.Interner.String(typ), ctx.Interner.String(cell.Name()))); err != nil {
					return err
				}
				continue
			}

			placedSoFar++
			if placedSoFar%progressInterval == 0 {
				opts.report("phase A: placed %d/%d", placedSoFar, total)
			}
		}
	}

	opts.report("phase A complete: placed %d/%d", placedSoFar, total)
	return nil
}

// catalogHasBelOfType reports whether the catalog declares any bel of
// typ at all, regardless of availability. Phase A distinguishes this
// from a merely exhausted cursor: a type with zero matching bels is an
// UnknownBelType error (§7), never a ResourceExhausted one.
func catalogHasBelOfType(ctx *design.Context, bels []arch.BelId, typ ident.Id) bool {
	for _, bel := range bels {
		if ctx.Catalog.BelType(bel) == typ {
			return true
		}
	}
	return false
}

// distinctUnplacedTypes collects the set of cell.Type() values among
// unplaced cells, in first-occurrence order over ctx.Cells() for
// determinism.
func distinctUnplacedTypes(ctx *design.Context) []ident.Id {
	seen := make(map[ident.Id]bool)
	var types []ident.Id
	for _, cell := range ctx.Cells() {
		if cell.Bel() != arch.NullBel {
			continue
		}
		if !seen[cell.Type()] {
			seen[cell.Type()] = true
			types = append(types, cell.Type())
		}
	}
	return types
}

// phaseB implements one pass of §4.6 Phase B over every cell the
// placer itself bound (StrengthPlacer), in insertion order.
// Constraint-placed (StrengthUser) cells are left untouched.
func phaseB(ctx *design.Context, opts Options, ok *bool, pass int) error {
	cells := ctx.Cells()

	for i, cell := range cells {
		if cell.BelStrength() != design.StrengthPlacer {
			continue
		}

		oldBel := cell.Bel()
		if err := ctx.UnbindBel(oldBel); err != nil {
			return err
		}

		bel, found := bestBel(ctx, cell)
		if !found {
			if err := fail(opts, ok, newError(KindPlacementFailure,
				"no legal bel for cell %q in phase B pass %d", ctx.Interner.String(cell.Name()), pass+1)); err != nil {
				return err
			}
			// Restore the cell to its previous bel so the design stays
			// legal even though this pass could not improve it.
			if err := ctx.BindBel(oldBel, cell.Name(), design.StrengthPlacer); err != nil {
				return err
			}
			continue
		}

		if err := ctx.BindBel(bel, cell.Name(), design.StrengthPlacer); err != nil {
			return err
		}
		backAnnotate(ctx, cell, bel)

		if opts.verbose {
			opts.report("phase B pass %d: %d/%d %s -> %s", pass+1, i+1, len(cells),
				ctx.Interner.String(cell.Name()), ctx.Catalog.BelName(bel))
		}
	}

	return nil
}

// bestBel scores every legal candidate bel for cell and returns the
// minimum-cost one, tie-breaking by last-seen (§4.6: "later candidates
// replace earlier equal-cost ones").
func bestBel(ctx *design.Context, cell *design.Cell) (arch.BelId, bool) {
	var (
		best    arch.BelId
		bestSet bool
		bestVal int
	)

	for _, bel := range ctx.Catalog.Bels() {
		if ctx.Catalog.BelType(bel) != cell.Type() {
			continue
		}
		if !ctx.CheckBelAvail(bel) {
			continue
		}
		if !ctx.Catalog.IsValidBelForCell(cell, bel, ctx) {
			continue
		}

		cost := hpwlCost(ctx, cell, bel)
		if !bestSet || cost <= bestVal {
			best = bel
			bestVal = cost
			bestSet = true
		}
	}

	return best, bestSet
}

// hpwlCost computes §4.6's candidate cost: the sum of Manhattan
// distances from bel to every currently-placed connected neighbour,
// with fanout damping on nets with fanoutDampingThreshold or more
// users.
func hpwlCost(ctx *design.Context, cell *design.Cell, bel arch.BelId) int {
	bx, by, _ := ctx.Catalog.BelLocation(bel)

	cost := 0
	for _, port := range cell.Ports() {
		if port.Net == ident.Null {
			continue
		}
		net := ctx.Net(port.Net)
		if net == nil {
			continue
		}

		switch port.Dir {
		case design.PortIn:
			driver := net.Driver()
			if nc := placedNeighbour(ctx, driver); nc != nil {
				cost += manhattan(ctx, bx, by, nc)
			}
		case design.PortOut:
			if net.NumUsers() >= fanoutDampingThreshold {
				continue
			}
			for _, user := range net.Users() {
				if nc := placedNeighbour(ctx, user); nc != nil {
					cost += manhattan(ctx, bx, by, nc)
				}
			}
		}
	}
	return cost
}

// placedNeighbour returns the cell ref's owning cell if it is
// currently placed (and not the null driver slot), or nil otherwise.
func placedNeighbour(ctx *design.Context, ref design.PortRef) *design.Cell {
	if ref.IsNull() {
		return nil
	}
	c := ctx.Cell(ref.Cell)
	if c == nil || c.Bel() == arch.NullBel {
		return nil
	}
	return c
}

func manhattan(ctx *design.Context, bx, by int, neighbour *design.Cell) int {
	nx, ny, _ := ctx.Catalog.BelLocation(neighbour.Bel())
	return abs(bx-nx) + abs(by-ny)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// backAnnotate implements §6.3's back-annotation contract:
// cell.attrs["BEL"] = catalog.belName(cell.bel).
func backAnnotate(ctx *design.Context, cell *design.Cell, bel arch.BelId) {
	cell.SetAttr(ctx.Interner.Intern(belAttrKey), []byte(ctx.Catalog.BelName(bel)))
}
