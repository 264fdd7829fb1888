package design

import (
	"github.com/sarchlab/zeonica-pnr/arch"
	"github.com/sarchlab/zeonica-pnr/ident"
)

// Check asserts invariants I1–I5 (§3), returning the first violation
// found as a KindInvariantFailure error naming the offending entity.
// It is a post-condition run after each phase, never mutates state.
func (ctx *Context) Check() error {
	if err := ctx.checkCellInvariant(); err != nil {
		return err
	}
	if err := ctx.checkNetInvariant(); err != nil {
		return err
	}
	if err := ctx.checkBoundWiresBelongToNets(); err != nil {
		return err
	}
	if err := ctx.checkPortLinkage(); err != nil {
		return err
	}
	if err := ctx.checkHandlesBelongToCatalog(); err != nil {
		return err
	}
	return nil
}

// checkCellInvariant verifies I1: every placed cell's bel maps back to
// it in the binding store.
func (ctx *Context) checkCellInvariant() error {
	for _, name := range ctx.cellOrder {
		cell := ctx.cells[name]
		if cell.bel == arch.NullBel {
			continue
		}
		bound, ok := ctx.belBind[cell.bel]
		if !ok || bound.cell != name {
			return newError(KindInvariantFailure,
				"I1: cell %q claims bel %s but binding store disagrees",
				ctx.Interner.String(name), ctx.Catalog.BelName(cell.bel))
		}
	}
	return nil
}

// checkNetInvariant verifies I2: every net's wire entries agree with
// the binding store, and any driving pip actually targets that wire.
func (ctx *Context) checkNetInvariant() error {
	for _, name := range ctx.netOrder {
		net := ctx.nets[name]
		for wire, entry := range net.wires {
			bound, ok := ctx.wireBind[wire]
			if !ok || bound.net != name {
				return newError(KindInvariantFailure,
					"I2: net %q claims wire %s but binding store disagrees",
					ctx.Interner.String(name), ctx.Catalog.WireName(wire))
			}
			if entry.Pip == arch.NullPip {
				continue
			}
			if ctx.Catalog.PipDst(entry.Pip) != wire {
				return newError(KindInvariantFailure,
					"I2: net %q's pip for wire does not target that wire", ctx.Interner.String(name))
			}
			pipBound, ok := ctx.pipBind[entry.Pip]
			if !ok || pipBound.net != name {
				return newError(KindInvariantFailure,
					"I2: net %q's pip binding disagrees with the binding store", ctx.Interner.String(name))
			}
		}
	}
	return nil
}

// checkBoundWiresBelongToNets verifies I3: every bound wire's net
// exists and lists that wire.
func (ctx *Context) checkBoundWiresBelongToNets() error {
	for wire, wb := range ctx.wireBind {
		net, ok := ctx.nets[wb.net]
		if !ok {
			return newError(KindInvariantFailure,
				"I3: wire bound to nonexistent net %q", ctx.Interner.String(wb.net))
		}
		if _, ok := net.wires[wire]; !ok {
			return newError(KindInvariantFailure,
				"I3: net %q does not list wire it is bound to", ctx.Interner.String(wb.net))
		}
	}
	return nil
}

// checkPortLinkage verifies I4: OUT ports are exactly the net's
// driver, IN ports appear exactly once in the net's users.
func (ctx *Context) checkPortLinkage() error {
	for _, cellName := range ctx.cellOrder {
		cell := ctx.cells[cellName]
		for portName, port := range cell.ports {
			if port.Net == ident.Null {
				continue
			}
			net := ctx.nets[port.Net]
			if net == nil {
				return newError(KindInvariantFailure,
					"I4: cell %q port %q references nonexistent net",
					ctx.Interner.String(cellName), ctx.Interner.String(portName))
			}

			switch port.Dir {
			case PortOut:
				if net.driver.Cell != cellName || net.driver.Port != portName {
					return newError(KindInvariantFailure,
						"I4: cell %q OUT port %q is not net %q's driver",
						ctx.Interner.String(cellName), ctx.Interner.String(portName), ctx.Interner.String(port.Net))
				}
			case PortIn:
				count := 0
				for _, u := range net.users {
					if u.Cell == cellName && u.Port == portName {
						count++
					}
				}
				if count != 1 {
					return newError(KindInvariantFailure,
						"I4: cell %q IN port %q appears %d times in net %q's users, want exactly 1",
						ctx.Interner.String(cellName), ctx.Interner.String(portName), count, ctx.Interner.String(port.Net))
				}
			}
		}
	}
	return nil
}

// checkHandlesBelongToCatalog verifies I5: every bel/wire/pip stored
// in any binding was issued by the current catalog.
func (ctx *Context) checkHandlesBelongToCatalog() error {
	validBels := make(map[arch.BelId]bool)
	for _, b := range ctx.Catalog.Bels() {
		validBels[b] = true
	}
	for bel := range ctx.belBind {
		if !validBels[bel] {
			return newError(KindInvariantFailure, "I5: bound bel not issued by current catalog")
		}
	}

	validWires := make(map[arch.WireId]bool)
	for _, w := range ctx.Catalog.Wires() {
		validWires[w] = true
	}
	for wire := range ctx.wireBind {
		if !validWires[wire] {
			return newError(KindInvariantFailure, "I5: bound wire not issued by current catalog")
		}
	}

	validPips := make(map[arch.PipId]bool)
	for _, p := range ctx.Catalog.Pips() {
		validPips[p] = true
	}
	for pip := range ctx.pipBind {
		if !validPips[pip] {
			return newError(KindInvariantFailure, "I5: bound pip not issued by current catalog")
		}
	}

	return nil
}
