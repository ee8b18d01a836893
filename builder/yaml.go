// SPDX-License-Identifier: MIT
// Package: railway/builder
//
// yaml.go - network documents.
//
// Document shape:
//
//	name: Kiwiland
//	routes:
//	  - AB5                               # short form
//	  - Alpha-Beta:12                     # long form
//	  - {from: Gamma, to: Delta, distance: 7}
//
// Entries may mix scalar and mapping nodes; every entry goes through the same
// validation as Builder.AddRoute.

package builder

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/railway/core"
)

// Network is the decoded form of a network document.
type Network struct {
	Name   string      `yaml:"name"`
	Routes []RouteSpec `yaml:"routes"`
}

// RouteSpec is one route entry of a Network document.
type RouteSpec struct {
	From     string `yaml:"from"`
	To       string `yaml:"to"`
	Distance int64  `yaml:"distance"`
}

// UnmarshalYAML accepts either a route token ("AB5", "Alpha-Beta:12") or a
// mapping with from/to/distance keys.
func (s *RouteSpec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		r, err := ParseRoute(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		*s = RouteSpec{From: r.From, To: r.To, Distance: r.Distance}
		return nil
	case yaml.MappingNode:
		type plain RouteSpec // drops the method set, avoids recursion
		var p plain
		if err := node.Decode(&p); err != nil {
			return fmt.Errorf("line %d: %w: %v", node.Line, ErrInvalidRoute, err)
		}
		*s = RouteSpec(p)
		return nil
	default:
		return fmt.Errorf("line %d: %w: expected a route token or mapping", node.Line, ErrInvalidRoute)
	}
}

// MarshalYAML writes the compact token form.
func (s RouteSpec) MarshalYAML() (interface{}, error) {
	return FormatRoute(s.Route()), nil
}

// Route converts the entry to a core.Route.
func (s RouteSpec) Route() core.Route {
	return core.Route{From: s.From, To: s.To, Distance: s.Distance}
}

// DecodeNetwork reads one network document from r.
// An empty document or an empty route list yields ErrNoRoutes.
func DecodeNetwork(r io.Reader) (*Network, error) {
	var n Network
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&n); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, builderErrorf(MethodFromYAML, ErrNoRoutes, "empty document")
		}
		return nil, fmt.Errorf("%s: %w", MethodFromYAML, err)
	}
	if len(n.Routes) == 0 {
		return nil, builderErrorf(MethodFromYAML, ErrNoRoutes, "network %q", n.Name)
	}

	return &n, nil
}

// Graph validates every route of n and builds the network.
func (n *Network) Graph(opts ...BuilderOption) (*core.Graph, error) {
	routes := make([]core.Route, len(n.Routes))
	for i, s := range n.Routes {
		routes[i] = s.Route()
	}

	return FromRoutes(routes, opts...)
}

// NetworkOf captures the routes of g as a Network document named name.
func NetworkOf(name string, g *core.Graph) *Network {
	routes := g.Routes()
	n := &Network{Name: name, Routes: make([]RouteSpec, len(routes))}
	for i, r := range routes {
		n.Routes[i] = RouteSpec{From: r.From, To: r.To, Distance: r.Distance}
	}

	return n
}

// Encode writes n as a YAML document to w.
func (n *Network) Encode(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(n); err != nil {
		return err
	}

	return enc.Close()
}

// FromYAML decodes a network document from r and builds its graph.
// It also returns the document name.
func FromYAML(r io.Reader, opts ...BuilderOption) (*core.Graph, string, error) {
	n, err := DecodeNetwork(r)
	if err != nil {
		return nil, "", err
	}
	g, err := n.Graph(opts...)
	if err != nil {
		return nil, "", err
	}

	return g, n.Name, nil
}

// LoadFile reads the network document at path. See FromYAML.
func LoadFile(path string, opts ...BuilderOption) (*core.Graph, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", MethodLoadFile, err)
	}
	defer f.Close()

	return FromYAML(f, opts...)
}
