// Package design holds the shared design-state substrate the placer
// depends on: the netlist model (cells, nets, ports — C4), the
// binding store (bel/wire/pip occupancy — C5), and the integrity
// checker and checksum (C6). A Context owns exactly one of each for
// the lifetime of one placement run; nothing here is process-global.
package design

import (
	"github.com/sarchlab/zeonica-pnr/arch"
	"github.com/sarchlab/zeonica-pnr/delay"
	"github.com/sarchlab/zeonica-pnr/ident"
)

// Strength is an ordered tag on a binding describing who placed it and
// who may overwrite it. A bind may only overwrite a strictly lower
// strength; equal strength never displaces equal strength.
type Strength int

const (
	StrengthNone Strength = iota
	StrengthWeak
	StrengthStrong
	StrengthPlacer
	StrengthUser
)

func (s Strength) String() string {
	switch s {
	case StrengthNone:
		return "NONE"
	case StrengthWeak:
		return "WEAK"
	case StrengthStrong:
		return "STRONG"
	case StrengthPlacer:
		return "PLACER"
	case StrengthUser:
		return "USER"
	default:
		return "UNKNOWN"
	}
}

// PortDir is the direction of a cell port.
type PortDir int

const (
	PortIn PortDir = iota
	PortOut
	PortInOut
)

// PortInfo describes a single port on a cell.
type PortInfo struct {
	Name ident.Id
	Net  ident.Id // Null when unconnected
	Dir  PortDir
}

// PortRef names a (cell, port) pair and, for timing-budget purposes, a
// writable delay budget. Cell is Null when the ref denotes an
// undriven net's driver slot.
type PortRef struct {
	Cell   ident.Id
	Port   ident.Id
	Budget delay.Delay
}

// IsNull reports whether r refers to no cell, the representation of
// "this net has no driver".
func (r PortRef) IsNull() bool {
	return r.Cell == ident.Null
}

// sinkView adapts a PortRef plus its owning net's name to
// arch.SinkView, so it can be passed to the catalog for delay
// prediction without PortRef itself needing method/field name
// collisions (it already exposes Budget as a field).
type sinkView struct {
	net ident.Id
	ref PortRef
}

func (s sinkView) NetName() ident.Id  { return s.net }
func (s sinkView) CellName() ident.Id { return s.ref.Cell }
func (s sinkView) PortName() ident.Id { return s.ref.Port }
func (s sinkView) Budget() delay.Delay { return s.ref.Budget }

// WireBinding is the per-wire entry in a Net's Wires map: the pip (if
// any) driving the wire, and the strength at which it was bound.
type WireBinding struct {
	Pip      arch.PipId // NullPip when the wire is driven directly by a bel pin
	Strength Strength
}
