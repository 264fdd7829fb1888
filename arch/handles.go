// Package arch defines the architecture catalog interface that the
// placer consumes (§4.2 of the placement specification) and a small
// YAML-backed sample catalog used by tests and the demo command,
// standing in for the real per-architecture device database, which
// this repository treats as an external collaborator.
package arch

// BelId identifies a programmable logic site (a "bel": LUT, flip-flop,
// DSP, BRAM, IO, ...). The zero value is the distinguished null bel.
type BelId uint32

// NullBel is the distinguished null BelId.
const NullBel BelId = 0

// WireId identifies a named node in the routing graph. The zero value
// is the distinguished null wire.
type WireId uint32

// NullWire is the distinguished null WireId.
const NullWire WireId = 0

// PipId identifies a programmable interconnect point: a configurable
// directional switch between two wires. The zero value is the
// distinguished null pip.
type PipId uint32

// NullPip is the distinguished null PipId.
const NullPip PipId = 0

// GroupId identifies a named group of bels/wires/pips (e.g. a clock
// region or a tile), used only for reporting and DRC grouping.
type GroupId uint32

// NullGroup is the distinguished null GroupId.
const NullGroup GroupId = 0

// DecalId identifies a decorative/graphical decal (a GUI collaborator
// concern); the core never inspects its contents, only passes it
// through. The zero value is the distinguished null decal.
type DecalId uint32

// NullDecal is the distinguished null DecalId.
const NullDecal DecalId = 0
