package design

import (
	"github.com/sarchlab/zeonica-pnr/arch"
	"github.com/sarchlab/zeonica-pnr/ident"
)

// CellSnapshot is a placed/unplaced cell's read-only state at the
// moment Snapshot was taken.
type CellSnapshot struct {
	Bel      arch.BelId
	Strength Strength
}

// Snapshot is a read-only view of a Context's placement state, for
// observers that run between phases (§5 permits "read-only observers
// between phases"). It is a shallow copy taken once: like the
// teacher's DebugGetPortBuffer, it copies the top-level map so later
// mutation of the live Context cannot retroactively change what an
// observer already read, but it does not deep-clone anything nested
// inside each entry.
type Snapshot struct {
	cells map[ident.Id]CellSnapshot
}

// Snapshot takes a shallow copy-on-read snapshot of every cell's bel
// binding and strength.
func (ctx *Context) Snapshot() Snapshot {
	cells := make(map[ident.Id]CellSnapshot, len(ctx.cells))
	for name, cell := range ctx.cells {
		cells[name] = CellSnapshot{Bel: cell.bel, Strength: cell.belStrength}
	}
	return Snapshot{cells: cells}
}

// Cell returns the snapshotted state of the named cell, or the zero
// CellSnapshot (unplaced, StrengthNone) if it did not exist when the
// snapshot was taken.
func (s Snapshot) Cell(name ident.Id) CellSnapshot {
	return s.cells[name]
}

// Cells returns a copy of the snapshotted cell-name-to-state map, keyed
// by the same ident.Id the binding store itself keys on. It exists so
// callers (notably tests comparing two binding-store snapshots with
// cmp.Diff) can diff the whole map without reaching into Snapshot's
// unexported field.
func (s Snapshot) Cells() map[ident.Id]CellSnapshot {
	out := make(map[ident.Id]CellSnapshot, len(s.cells))
	for name, c := range s.cells {
		out[name] = c
	}
	return out
}

// Placed reports how many cells were bound to a bel at snapshot time.
func (s Snapshot) Placed() int {
	n := 0
	for _, c := range s.cells {
		if c.Bel != arch.NullBel {
			n++
		}
	}
	return n
}
