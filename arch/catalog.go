package arch

import (
	"github.com/sarchlab/zeonica-pnr/delay"
	"github.com/sarchlab/zeonica-pnr/ident"
)

// CellView is the minimal read-only view of a netlist cell the
// architecture catalog needs. design.Cell implements it; arch never
// imports the design package directly, to keep the dependency arrow
// pointing from design -> arch and not back.
type CellView interface {
	Name() ident.Id
	Type() ident.Id
	Attr(key ident.Id) ([]byte, bool)
	Param(key ident.Id) ([]byte, bool)
}

// SinkView is the minimal read-only view of a net's user port the
// catalog needs for delay prediction and budget overrides.
type SinkView interface {
	NetName() ident.Id
	CellName() ident.Id
	PortName() ident.Id
	Budget() delay.Delay
}

// BindingView is the minimal read-only view of the binding store (C5)
// the catalog needs to make decisions that depend on currently bound
// resources — e.g. a cap on distinct clocks within a region, or two
// bels sharing one physical site so that binding one excludes the
// other. design.Context implements it; the catalog never mutates
// bindings through it.
type BindingView interface {
	// BelBoundCell reports the cell name bound to bel, if any.
	BelBoundCell(bel BelId) (ident.Id, bool)
	// CellAttr looks up an attribute on a (possibly already-bound)
	// cell by name, without requiring the catalog to hold a CellView.
	CellAttr(cellName ident.Id, key ident.Id) ([]byte, bool)
}

// Catalog is the architecture catalog interface the placer consumes
// (§4.2). Every method must be pure with respect to catalog state;
// side-effects are confined to the binding store the caller threads
// through separately. Implementations are constructed once per
// context and fixed for that context's lifetime.
type Catalog interface {
	// Tile/bel enumeration and attributes.
	BelsByTile(x, y int) []BelId
	Bels() []BelId
	BelType(bel BelId) ident.Id
	BelLocation(bel BelId) (x, y, z int)
	BelPinWire(bel BelId, pin ident.Id) WireId
	BelPins(bel BelId) []ident.Id
	BelGlobalBuf(bel BelId) bool
	// CheckBelAvail reports architecture-intrinsic exclusion only
	// (e.g. bel shares a physical site with an already-bound bel); it
	// does not know whether bel itself is bound — that is the binding
	// store's job. bound is consulted to see what else is currently
	// placed nearby.
	CheckBelAvail(bel BelId, bound BindingView) bool
	EstimatePosition(bel BelId) (fx, fy float64)
	GetBelByName(name string) (BelId, bool)
	BelName(bel BelId) string

	// Wire/pip enumeration and topology.
	Wires() []WireId
	WireName(w WireId) string
	Pips() []PipId
	PipSrc(p PipId) WireId
	PipDst(p PipId) WireId
	PipsUphill(w WireId) []PipId
	PipsDownhill(w WireId) []PipId
	WireDelay(w WireId) delay.Info
	PipDelay(p PipId) delay.Info
	EstimateDelay(src, dst WireId) delay.Delay
	PredictDelay(sink SinkView) delay.Delay
	GetDelayEpsilon() delay.Delay
	GetRipupDelayPenalty() delay.Delay

	// Cell-level design rule checking, the only architecture-level DRC
	// the placer consults. Must consider currently bound resources
	// (e.g. a limit on distinct clocks within a region).
	IsValidBelForCell(cell CellView, bel BelId, bound BindingView) bool
	IsBelLocationValid(bel BelId) bool
	GetCellDelay(cell CellView, from, to ident.Id) (delay.Info, bool)
	GetPortClock(cell CellView, port ident.Id) ident.Id
	IsClockPort(cell CellView, port ident.Id) bool
	GetBudgetOverride(net ident.Id, sink SinkView, budget delay.Delay) delay.Delay

	// Per-object checksums, folded into the design-wide digest (C6).
	BelChecksum(bel BelId) uint32
	WireChecksum(w WireId) uint32
	PipChecksum(p PipId) uint32
}
