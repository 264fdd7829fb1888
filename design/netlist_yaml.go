package design

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sarchlab/zeonica-pnr/ident"
)

// yamlPortRef is the on-disk form of a PortRef, a mapping with
// separate cell and port keys, used for both a net's driver and its
// users.
type yamlPortRef struct {
	Cell string `yaml:"cell"`
	Port string `yaml:"port"`
}

// yamlPort is the on-disk description of one of a cell's ports.
type yamlPort struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"` // "in", "out", or "inout"
}

// yamlCell is the on-disk description of a single netlist cell.
type yamlCell struct {
	Name  string            `yaml:"name"`
	Type  string            `yaml:"type"`
	Ports []yamlPort        `yaml:"ports"`
	Attrs map[string]string `yaml:"attrs"`
}

// yamlNet is the on-disk description of a single net.
type yamlNet struct {
	Name   string        `yaml:"name"`
	Driver *yamlPortRef  `yaml:"driver"`
	Users  []yamlPortRef `yaml:"users"`
}

// yamlNetlistDoc is the top-level shape of a sample netlist, the
// design-side counterpart to arch's yamlDoc.
type yamlNetlistDoc struct {
	Cells []yamlCell `yaml:"cells"`
	Nets  []yamlNet  `yaml:"nets"`
}

func portDir(s string) PortDir {
	switch s {
	case "out":
		return PortOut
	case "inout":
		return PortInOut
	default:
		return PortIn
	}
}

// LoadNetlistFromYAML populates ctx with a netlist described in the
// file at path, interning every cell, net, port, and attribute name
// against ctx.Interner. It is a demo-scale loader: the real netlist
// ingestion path (e.g. from a synthesis tool's JSON) is out of scope,
// matching how arch.LoadSampleCatalogFromYAML stands in for the real
// device database.
func LoadNetlistFromYAML(ctx *Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("design: reading %s: %w", path, err)
	}

	var doc yamlNetlistDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("design: parsing %s: %w", path, err)
	}

	in := ctx.Interner

	for _, yc := range doc.Cells {
		cell, err := ctx.AddCell(in.Intern(yc.Name), in.Intern(yc.Type))
		if err != nil {
			return fmt.Errorf("design: %s: %w", path, err)
		}
		for _, yp := range yc.Ports {
			cell.AddPort(in.Intern(yp.Name), portDir(yp.Dir))
		}
		for k, v := range yc.Attrs {
			cell.SetAttr(in.Intern(k), []byte(v))
		}
	}

	for _, yn := range doc.Nets {
		net, err := ctx.AddNet(in.Intern(yn.Name))
		if err != nil {
			return fmt.Errorf("design: %s: %w", path, err)
		}

		if yn.Driver != nil {
			ref := PortRef{Cell: in.Intern(yn.Driver.Cell), Port: in.Intern(yn.Driver.Port)}
			net.SetDriver(ref)
			if err := connectPort(ctx, ref, net.Name()); err != nil {
				return fmt.Errorf("design: %s: %w", path, err)
			}
		}

		for _, yu := range yn.Users {
			ref := PortRef{Cell: in.Intern(yu.Cell), Port: in.Intern(yu.Port)}
			net.AddUser(ref)
			if err := connectPort(ctx, ref, net.Name()); err != nil {
				return fmt.Errorf("design: %s: %w", path, err)
			}
		}
	}

	return nil
}

// connectPort records net on the named cell's port, so hpwlCost's walk
// over a cell's ports can find the net without a separate index.
func connectPort(ctx *Context, ref PortRef, net ident.Id) error {
	cell := ctx.Cell(ref.Cell)
	if cell == nil {
		return fmt.Errorf("port ref to unknown cell %q", ctx.Interner.String(ref.Cell))
	}
	port := cell.Port(ref.Port)
	if port == nil {
		return fmt.Errorf("port ref to unknown port %q on cell %q",
			ctx.Interner.String(ref.Port), ctx.Interner.String(ref.Cell))
	}
	port.Net = net
	return nil
}
