package design

import (
	"github.com/sarchlab/zeonica-pnr/arch"
	"github.com/sarchlab/zeonica-pnr/ident"
)

// Cell is a netlist instance: a type, a set of ports, free-form
// attributes/parameters, and (once placed) a bel binding. Cell fields
// are unexported; every mutation that would break invariants I1–I5
// goes through Context/the binding store instead of direct field
// writes.
type Cell struct {
	name ident.Id
	typ  ident.Id

	ports  map[ident.Id]*PortInfo
	attrs  map[ident.Id][]byte
	params map[ident.Id][]byte

	bel         arch.BelId
	belStrength Strength

	// pins remaps a logical cell port to a physical bel pin name, for
	// cells whose port naming does not match the bel's pin naming.
	pins map[ident.Id]ident.Id
}

// newCell creates an unplaced cell with empty port/attr/param maps.
func newCell(name, typ ident.Id) *Cell {
	return &Cell{
		name:   name,
		typ:    typ,
		ports:  make(map[ident.Id]*PortInfo),
		attrs:  make(map[ident.Id][]byte),
		params: make(map[ident.Id][]byte),
		bel:    arch.NullBel,
		pins:   make(map[ident.Id]ident.Id),
	}
}

// Name implements arch.CellView.
func (c *Cell) Name() ident.Id { return c.name }

// Type implements arch.CellView.
func (c *Cell) Type() ident.Id { return c.typ }

// Attr implements arch.CellView.
func (c *Cell) Attr(key ident.Id) ([]byte, bool) {
	v, ok := c.attrs[key]
	return v, ok
}

// Param implements arch.CellView.
func (c *Cell) Param(key ident.Id) ([]byte, bool) {
	v, ok := c.params[key]
	return v, ok
}

// SetAttr sets a free-form attribute, e.g. the placer's BEL
// back-annotation.
func (c *Cell) SetAttr(key ident.Id, value []byte) {
	c.attrs[key] = value
}

// SetParam sets a free-form parameter.
func (c *Cell) SetParam(key ident.Id, value []byte) {
	c.params[key] = value
}

// Bel returns the cell's bound bel, or arch.NullBel if unplaced.
func (c *Cell) Bel() arch.BelId { return c.bel }

// BelStrength returns the strength at which the cell's bel was bound.
func (c *Cell) BelStrength() Strength { return c.belStrength }

// AddPort registers a new port on the cell. If the port already
// exists, it returns the existing port unchanged.
func (c *Cell) AddPort(name ident.Id, dir PortDir) *PortInfo {
	if existing, ok := c.ports[name]; ok {
		return existing
	}
	pi := &PortInfo{Name: name, Net: ident.Null, Dir: dir}
	c.ports[name] = pi
	return pi
}

// Port returns the named port, or nil if the cell has no such port.
func (c *Cell) Port(name ident.Id) *PortInfo {
	return c.ports[name]
}

// Ports returns the cell's ports in no particular order; callers that
// need determinism should sort by name themselves (cells do not carry
// a separate declared-order list). The placer's hpwlCost ranges over
// this map, which is order-independent because it only sums
// distances; Checksum sorts the port names first.
func (c *Cell) Ports() map[ident.Id]*PortInfo {
	return c.ports
}

// RemapPin records that logical port name should use physical bel pin
// physicalPin.
func (c *Cell) RemapPin(name, physicalPin ident.Id) {
	c.pins[name] = physicalPin
}

// PhysicalPin returns the physical bel pin for a logical port name,
// falling back to the logical name itself when no remap was recorded.
func (c *Cell) PhysicalPin(name ident.Id) ident.Id {
	if p, ok := c.pins[name]; ok {
		return p
	}
	return name
}
