package design

import (
	"github.com/sarchlab/zeonica-pnr/arch"
	"github.com/sarchlab/zeonica-pnr/ident"
)

// Net is a logical signal connecting at most one driver port to any
// number of user ports, plus the set of wires currently carrying it.
type Net struct {
	name ident.Id

	driver PortRef   // driver.Cell == Null means undriven
	users  []PortRef // order preserved, as loaded

	attrs  map[ident.Id][]byte
	params map[ident.Id][]byte

	// wires is the set of wires currently carrying this net; for each
	// wire, the pip (if any) that drives it. A Null pip means the wire
	// is driven directly by a bel pin.
	wires map[arch.WireId]WireBinding
}

func newNet(name ident.Id) *Net {
	return &Net{
		name:   name,
		driver: PortRef{Cell: ident.Null},
		attrs:  make(map[ident.Id][]byte),
		params: make(map[ident.Id][]byte),
		wires:  make(map[arch.WireId]WireBinding),
	}
}

// Name returns the net's interned name.
func (n *Net) Name() ident.Id { return n.name }

// Driver returns the net's driver port ref; Cell == ident.Null means
// undriven.
func (n *Net) Driver() PortRef { return n.driver }

// SetDriver sets the net's driver.
func (n *Net) SetDriver(ref PortRef) { n.driver = ref }

// Users returns the net's user port refs, in declared order.
func (n *Net) Users() []PortRef { return n.users }

// AddUser appends a user port ref, preserving order.
func (n *Net) AddUser(ref PortRef) { n.users = append(n.users, ref) }

// NumUsers is shorthand for len(Users()), used by the placer's fanout
// damping rule.
func (n *Net) NumUsers() int { return len(n.users) }

// Attr/SetAttr and Param/SetParam expose the net's free-form metadata.
func (n *Net) Attr(key ident.Id) ([]byte, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

func (n *Net) SetAttr(key ident.Id, value []byte) { n.attrs[key] = value }

func (n *Net) Param(key ident.Id) ([]byte, bool) {
	v, ok := n.params[key]
	return v, ok
}

func (n *Net) SetParam(key ident.Id, value []byte) { n.params[key] = value }

// Wires returns the net's wire bindings, keyed by wire.
func (n *Net) Wires() map[arch.WireId]WireBinding {
	return n.wires
}

// WireEntry returns the binding for a single wire, if any.
func (n *Net) WireEntry(w arch.WireId) (WireBinding, bool) {
	wb, ok := n.wires[w]
	return wb, ok
}
