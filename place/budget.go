package place

import (
	"github.com/sarchlab/zeonica-pnr/delay"
	"github.com/sarchlab/zeonica-pnr/design"
	"github.com/sarchlab/zeonica-pnr/ident"
)

// AssignBudgets runs C9: before placement, seed every sink's delay
// budget from opts' target frequency (1/f), or delay.Unreachable if no
// target was set, then let the catalog's GetBudgetOverride clamp it
// per-sink. Must run before PlaceConstraints/PlaceHeuristic so any
// future timing-aware cost function sees a populated budget.
func AssignBudgets(ctx *design.Context, opts Options) {
	base := opts.targetBudget()

	for _, net := range ctx.Nets() {
		users := net.Users()
		for i, sink := range users {
			sink := netSink{net: net.Name(), ref: sink}
			users[i].Budget = ctx.Catalog.GetBudgetOverride(net.Name(), sink, base)
		}
	}
}

// netSink adapts a net name and PortRef to arch.SinkView for the
// GetBudgetOverride call, the same shape as design's own sinkView
// adapter (PortRef cannot grow a Budget() method directly: it already
// exposes Budget as a field).
type netSink struct {
	net ident.Id
	ref design.PortRef
}

func (s netSink) NetName() ident.Id   { return s.net }
func (s netSink) CellName() ident.Id  { return s.ref.Cell }
func (s netSink) PortName() ident.Id  { return s.ref.Port }
func (s netSink) Budget() delay.Delay { return s.ref.Budget }
