package place

import (
	"github.com/sarchlab/zeonica-pnr/design"
)

// belAttrKey is the cell attribute holding a user's bel constraint
// ("BEL = <name>", §4.5), and the same key the placer back-annotates
// with the chosen bel after Phase B (§6.3).
const belAttrKey = "BEL"

// PlaceConstraints runs C7: for every cell carrying the BEL attribute,
// resolve it to a BelId, verify the bel's type matches the cell's, and
// bind it at USER strength. Constrained cells are fixed and ignored by
// PlaceHeuristic. Returns false (without error) if a non-fatal failure
// was downgraded by opts' Force flag.
func PlaceConstraints(ctx *design.Context, opts Options) (bool, error) {
	ok := true
	belKey := ctx.Interner.Intern(belAttrKey)

	for _, cell := range ctx.Cells() {
		raw, has := cell.Attr(belKey)
		if !has {
			continue
		}
		belName := string(raw)

		bel, found := ctx.Catalog.GetBelByName(belName)
		if !found {
			if err := fail(opts, &ok, newError(KindUnknownBel, "unknown bel %q constraining cell %q", belName, ctx.Interner.String(cell.Name()))); err != nil {
				return false, err
			}
			continue
		}

		belType := ctx.Catalog.BelType(bel)
		if belType != cell.Type() {
			if err := fail(opts, &ok, newError(KindTypeMismatch,
				"bel %q is type %q, cell %q is type %q",
				belName, ctx.Interner.String(belType), ctx.Interner.String(cell.Name()), ctx.Interner.String(cell.Type()))); err != nil {
				return false, err
			}
			continue
		}

		if err := ctx.BindBel(bel, cell.Name(), design.StrengthUser); err != nil {
			return false, err
		}

		opts.report("constrained %s -> %s", ctx.Interner.String(cell.Name()), belName)
	}

	return ok, nil
}

// fail applies opts.force to a downgradable placer error: if force is
// set, it records the false outcome in *ok and returns nil so the
// caller continues; otherwise it returns err so the caller aborts.
func fail(opts Options, ok *bool, err *Error) error {
	if opts.force && err.Downgradable() {
		*ok = false
		opts.report("warning: %s", err.Error())
		return nil
	}
	return err
}
