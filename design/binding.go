package design

import (
	"github.com/sarchlab/zeonica-pnr/arch"
	"github.com/sarchlab/zeonica-pnr/ident"
)

// BindBel binds bel to cellName at strength, failing with a
// KindAlreadyBound error if bel is already bound at >= strength. On
// success it sets cell.bel and cell.belStrength, keeping both sides of
// the duality in sync; a cell displaced from bel by a stronger bind is
// left unplaced.
func (ctx *Context) BindBel(bel arch.BelId, cellName ident.Id, strength Strength) error {
	existing, held := ctx.belBind[bel]
	if held && existing.strength >= strength {
		return newError(KindAlreadyBound, "bel %s held at strength %s", ctx.Catalog.BelName(bel), existing.strength)
	}

	cell := ctx.cells[cellName]
	if cell == nil {
		return newError(KindNotBound, "cannot bind unknown cell %q", ctx.Interner.String(cellName))
	}

	if held {
		if prev := ctx.cells[existing.cell]; prev != nil {
			prev.bel = arch.NullBel
			prev.belStrength = StrengthNone
		}
	}

	ctx.belBind[bel] = belBinding{cell: cellName, strength: strength}
	cell.bel = bel
	cell.belStrength = strength

	return nil
}

// UnbindBel clears bel's binding on both sides, failing with a
// KindNotBound error if bel is not currently bound.
func (ctx *Context) UnbindBel(bel arch.BelId) error {
	b, ok := ctx.belBind[bel]
	if !ok {
		return newError(KindNotBound, "bel %s", ctx.Catalog.BelName(bel))
	}

	delete(ctx.belBind, bel)

	if cell := ctx.cells[b.cell]; cell != nil {
		cell.bel = arch.NullBel
		cell.belStrength = StrengthNone
	}

	return nil
}

// BindWire binds wire to netName at strength, for a wire driven
// directly by a bel pin (no pip). Fails with a KindAlreadyBound error
// if wire is already bound at >= strength.
func (ctx *Context) BindWire(wire arch.WireId, netName ident.Id, strength Strength) error {
	if existing, ok := ctx.wireBind[wire]; ok && existing.strength >= strength {
		return newError(KindAlreadyBound, "wire held at strength %s", existing.strength)
	}

	net := ctx.nets[netName]
	if net == nil {
		return newError(KindNotBound, "cannot bind unknown net %q", ctx.Interner.String(netName))
	}

	ctx.wireBind[wire] = wireBinding{net: netName, strength: strength}
	net.wires[wire] = WireBinding{Pip: arch.NullPip, Strength: strength}

	return nil
}

// UnbindWire removes wire from its net's Wires map and releases it
// from the binding store. If the wire's entry carried a driving pip,
// the pip is released too (cascade), per §4.3.
func (ctx *Context) UnbindWire(wire arch.WireId) error {
	wb, ok := ctx.wireBind[wire]
	if !ok {
		return newError(KindNotBound, "wire")
	}

	net := ctx.nets[wb.net]
	var drivingPip arch.PipId
	if net != nil {
		if entry, ok := net.wires[wire]; ok {
			drivingPip = entry.Pip
		}
		delete(net.wires, wire)
	}

	delete(ctx.wireBind, wire)

	if drivingPip != arch.NullPip {
		delete(ctx.pipBind, drivingPip)
	}

	return nil
}

// BindPip binds pip to netName at strength. This additionally records
// the pip as the driver of its destination wire: net.Wires[pipDst(pip)]
// = {pip, strength}. Fails with a KindAlreadyBound error if pip (or
// its destination wire) is already bound at >= strength.
func (ctx *Context) BindPip(pip arch.PipId, netName ident.Id, strength Strength) error {
	if existing, ok := ctx.pipBind[pip]; ok && existing.strength >= strength {
		return newError(KindAlreadyBound, "pip held at strength %s", existing.strength)
	}

	dst := ctx.Catalog.PipDst(pip)
	if existing, ok := ctx.wireBind[dst]; ok && existing.strength >= strength {
		return newError(KindAlreadyBound, "pip destination wire held at strength %s", existing.strength)
	}

	net := ctx.nets[netName]
	if net == nil {
		return newError(KindNotBound, "cannot bind unknown net %q", ctx.Interner.String(netName))
	}

	ctx.pipBind[pip] = pipBinding{net: netName, strength: strength}
	ctx.wireBind[dst] = wireBinding{net: netName, strength: strength}
	net.wires[dst] = WireBinding{Pip: pip, Strength: strength}

	return nil
}

// CheckBelAvail reports whether bel is free to bind: unbound in the
// store AND not excluded by an architecture-intrinsic rule (the
// catalog consults the current binding state through ctx itself,
// which implements arch.BindingView).
func (ctx *Context) CheckBelAvail(bel arch.BelId) bool {
	if _, bound := ctx.belBind[bel]; bound {
		return false
	}
	return ctx.Catalog.CheckBelAvail(bel, ctx)
}

// CheckWireAvail reports whether wire is free to bind.
func (ctx *Context) CheckWireAvail(wire arch.WireId) bool {
	_, bound := ctx.wireBind[wire]
	return !bound
}

// CheckPipAvail reports whether pip, and the wire it would drive, are
// both free to bind.
func (ctx *Context) CheckPipAvail(pip arch.PipId) bool {
	if _, bound := ctx.pipBind[pip]; bound {
		return false
	}
	dst := ctx.Catalog.PipDst(pip)
	_, dstBound := ctx.wireBind[dst]
	return !dstBound
}

// GetConflictingBelCell returns the single cell that, if unbound,
// would free bel — or ident.Null if bel is already free or freeing it
// would require more than one unbind (which cannot happen for bels,
// since each bel has exactly one occupant, but the null-result case
// covers "already free").
func (ctx *Context) GetConflictingBelCell(bel arch.BelId) (ident.Id, bool) {
	b, ok := ctx.belBind[bel]
	if !ok {
		return ident.Null, false
	}
	return b.cell, true
}

// BelBoundCell implements arch.BindingView.
func (ctx *Context) BelBoundCell(bel arch.BelId) (ident.Id, bool) {
	b, ok := ctx.belBind[bel]
	if !ok {
		return ident.Null, false
	}
	return b.cell, true
}

// CellAttr implements arch.BindingView.
func (ctx *Context) CellAttr(cellName ident.Id, key ident.Id) ([]byte, bool) {
	cell := ctx.cells[cellName]
	if cell == nil {
		return nil, false
	}
	return cell.Attr(key)
}
