package arch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/zeonica-pnr/delay"
	"github.com/sarchlab/zeonica-pnr/ident"
)

// yamlBel is the on-disk description of a single bel.
type yamlBel struct {
	Name string            `yaml:"name"`
	Type string            `yaml:"type"`
	X    int               `yaml:"x"`
	Y    int               `yaml:"y"`
	Z    int               `yaml:"z"`
	Pins map[string]string `yaml:"pins"` // pin name -> wire name
}

// yamlPip is the on-disk description of a single pip.
type yamlPip struct {
	Name     string `yaml:"name"`
	Src      string `yaml:"src"`
	Dst      string `yaml:"dst"`
	DelayPs  int64  `yaml:"delay_ps"`
}

// yamlDoc is the top-level shape of a sample architecture description.
type yamlDoc struct {
	Bels  []yamlBel `yaml:"bels"`
	Wires []string  `yaml:"wires"`
	Pips  []yamlPip `yaml:"pips"`
}

// SampleCatalog is a small, in-memory Catalog built from a YAML
// description. It stands in for the real per-architecture device
// database (out of scope per the placement specification) in tests
// and the demo command.
type SampleCatalog struct {
	interner *ident.Interner
	groups   *groupNames

	belName  []string // BelId -> name, index 0 unused (NullBel)
	belType  []ident.Id
	belX     []int
	belY     []int
	belZ     []int
	belPins  []map[ident.Id]WireId
	belGroup []GroupId
	byName   map[string]BelId

	// rowGroup caches the GroupId registered for a tile row, so every
	// bel in the same row shares one group instead of minting a new
	// name per bel.
	rowGroup map[int]GroupId

	wireName []string // WireId -> name, index 0 unused
	wireIdx  map[string]WireId

	pipName  []string
	pipSrc   []WireId
	pipDst   []WireId
	pipDelay []delay.Info

	uphill   map[WireId][]PipId
	downhill map[WireId][]PipId

	// maxClocksPerGroup caps how many cells carrying the
	// IS_CLOCK_DRIVER attribute may be bound within the same group,
	// exercised by IsValidBelForCell to
	// demonstrate the "considers currently bound resources" DRC
	// requirement (§4.2). 0 means unconstrained.
	maxClocksPerGroup int
}

// NewSampleCatalog creates an empty catalog using in, the interner the
// owning design.Context uses for cell/net names, so bel types and
// cell types share one index space.
func NewSampleCatalog(in *ident.Interner) *SampleCatalog {
	return &SampleCatalog{
		interner: in,
		groups:   newGroupNames(),
		belName:  []string{""},
		belType:  []ident.Id{ident.Null},
		belX:     []int{0},
		belY:     []int{0},
		belZ:     []int{0},
		belPins:  []map[ident.Id]WireId{nil},
		belGroup: []GroupId{0},
		byName:   make(map[string]BelId),
		rowGroup: make(map[int]GroupId),
		wireName: []string{""},
		wireIdx:  make(map[string]WireId),
		pipName:  []string{""},
		pipSrc:   []WireId{NullWire},
		pipDst:   []WireId{NullWire},
		pipDelay: []delay.Info{{}},
		uphill:   make(map[WireId][]PipId),
		downhill: make(map[WireId][]PipId),
	}
}

// LoadSampleCatalogFromYAML reads a sample architecture description
// from path, interning bel type and bel pin names against in (bel,
// wire and pip names themselves are kept as plain strings).
func LoadSampleCatalogFromYAML(path string, in *ident.Interner) (*SampleCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("arch: reading %s: %w", path, err)
	}

	var doc yamlDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("arch: parsing %s: %w", path, err)
	}

	c := NewSampleCatalog(in)

	for _, w := range doc.Wires {
		c.addWire(w)
	}

	for _, b := range doc.Bels {
		c.addBel(b)
	}

	for _, p := range doc.Pips {
		if err := c.addPip(p); err != nil {
			return nil, fmt.Errorf("arch: %s: %w", path, err)
		}
	}

	return c, nil
}

func (c *SampleCatalog) addWire(name string) WireId {
	if id, ok := c.wireIdx[name]; ok {
		return id
	}
	id := WireId(len(c.wireName))
	c.wireName = append(c.wireName, name)
	c.wireIdx[name] = id
	return id
}

func (c *SampleCatalog) addBel(b yamlBel) BelId {
	id := BelId(len(c.belName))
	c.belName = append(c.belName, b.Name)
	c.belType = append(c.belType, c.interner.Intern(b.Type))
	c.belX = append(c.belX, b.X)
	c.belY = append(c.belY, b.Y)
	c.belZ = append(c.belZ, b.Z)

	pins := make(map[ident.Id]WireId, len(b.Pins))
	for pin, wire := range b.Pins {
		pins[c.interner.Intern(pin)] = c.addWire(wire)
	}
	c.belPins = append(c.belPins, pins)
	c.belGroup = append(c.belGroup, c.groupForRow(b.Y))

	c.byName[b.Name] = id
	return id
}

// groupForRow returns the GroupId registered for tile row y, minting a
// new "row-N" group name the first time the row is seen. Bels are
// grouped by row because that is the unit IsValidBelForCell's
// clock-region cap reasons about.
func (c *SampleCatalog) groupForRow(y int) GroupId {
	if g, ok := c.rowGroup[y]; ok {
		return g
	}
	g := c.groups.Add(fmt.Sprintf("row-%d", y))
	c.rowGroup[y] = g
	return g
}

// GroupName returns the name of the tile-row group bel belongs to, the
// read side of the registry addBel writes through groupForRow.
func (c *SampleCatalog) GroupName(bel BelId) string {
	return c.groups.Name(c.belGroup[bel])
}

func (c *SampleCatalog) addPip(p yamlPip) error {
	src, ok := c.wireIdx[p.Src]
	if !ok {
		return fmt.Errorf("pip %s: unknown src wire %s", p.Name, p.Src)
	}
	dst, ok := c.wireIdx[p.Dst]
	if !ok {
		return fmt.Errorf("pip %s: unknown dst wire %s", p.Name, p.Dst)
	}

	id := PipId(len(c.pipName))
	c.pipName = append(c.pipName, p.Name)
	c.pipSrc = append(c.pipSrc, src)
	c.pipDst = append(c.pipDst, dst)
	c.pipDelay = append(c.pipDelay, delay.Info{
		MinRiseDelay: delay.Delay(p.DelayPs),
		MaxRiseDelay: delay.Delay(p.DelayPs),
		MinFallDelay: delay.Delay(p.DelayPs),
		MaxFallDelay: delay.Delay(p.DelayPs),
	})

	c.downhill[src] = append(c.downhill[src], id)
	c.uphill[dst] = append(c.uphill[dst], id)

	return nil
}

// WithMaxClocksPerGroup sets the clock-region capacity used by
// IsValidBelForCell. Returns the receiver for chaining, following the
// teacher's With*-style builder convention.
func (c *SampleCatalog) WithMaxClocksPerGroup(n int) *SampleCatalog {
	c.maxClocksPerGroup = n
	return c
}
