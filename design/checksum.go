package design

import (
	"sort"

	"github.com/sarchlab/zeonica-pnr/arch"
	"github.com/sarchlab/zeonica-pnr/delay"
	"github.com/sarchlab/zeonica-pnr/ident"
)

// Checksum computes a stable 32-bit digest of the design state (§4.4):
// interned indices of names, delay checksums of budgets, per-wire
// (wireChecksum, pipChecksum, strength), and attribute/parameter
// bytes. Maps are combined by sum reduction so digest order is
// independent of Go's randomised map iteration; declared-order
// sequences (a net's users) are folded in that order instead.
// Two Contexts built from identical inputs in identical order with an
// identical seed produce identical values (the determinism law, §5).
func (ctx *Context) Checksum() uint32 {
	var total uint32
	for name, cell := range ctx.cells {
		total += cellDigest(name, cell)
	}
	for name, net := range ctx.nets {
		total += ctx.netDigest(name, net)
	}
	return ident.Mix32(total)
}

func cellDigest(name ident.Id, cell *Cell) uint32 {
	d := uint32(name)
	d = ident.Mix32(d + uint32(cell.typ))
	d = ident.Mix32(d + uint32(cell.bel))
	d = ident.Mix32(d + uint32(cell.belStrength))

	portNames := make([]ident.Id, 0, len(cell.ports))
	for pn := range cell.ports {
		portNames = append(portNames, pn)
	}
	sort.Slice(portNames, func(i, j int) bool { return portNames[i] < portNames[j] })
	for _, pn := range portNames {
		p := cell.ports[pn]
		d = ident.Mix32(d + uint32(pn) + uint32(p.Net) + uint32(p.Dir))
	}

	d += byteMapDigest(cell.attrs)
	d += byteMapDigest(cell.params)
	return d
}

func (ctx *Context) netDigest(name ident.Id, net *Net) uint32 {
	d := uint32(name)
	d = ident.Mix32(d + portRefDigest(net.driver))
	for _, u := range net.users {
		d = ident.Mix32(d + portRefDigest(u))
	}

	var wireSum uint32
	for w, wb := range net.wires {
		e := uint32(w) + ctx.Catalog.WireChecksum(w) + uint32(wb.Strength)
		if wb.Pip != arch.NullPip {
			e += ctx.Catalog.PipChecksum(wb.Pip)
		}
		wireSum += ident.Mix32(e)
	}
	d = ident.Mix32(d + wireSum)

	d += byteMapDigest(net.attrs)
	d += byteMapDigest(net.params)
	return d
}

func portRefDigest(r PortRef) uint32 {
	return uint32(r.Cell) + uint32(r.Port) + delayDigest(r.Budget)
}

func delayDigest(d delay.Delay) uint32 {
	u := uint64(d)
	return uint32(u) ^ uint32(u>>32)
}

// byteMapDigest sum-reduces a map[ident.Id][]byte, as required for any
// hash-mapped container feeding the checksum (§4.4).
func byteMapDigest(m map[ident.Id][]byte) uint32 {
	var sum uint32
	for k, v := range m {
		sum += ident.Mix32(uint32(k) + bytesDigest(v))
	}
	return sum
}

func bytesDigest(b []byte) uint32 {
	h := uint32(2166136261)
	for _, c := range b {
		h = ident.Mix32(h ^ uint32(c))
	}
	return h
}
