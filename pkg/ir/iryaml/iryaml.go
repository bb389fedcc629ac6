// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

// Package iryaml loads ir.Graph from YAML descriptions, used by the deviceprop tool and by golden tests.
//
// Example:
//
//	inputs:
//	  - {name: x, type: "Float32(2, 3)@cuda:0"}
//	  - {name: c, type: bool}
//	nodes:
//	  - {kind: constant, device: "cuda:1", outputs: [{name: d}]}
//	  - op: aten::relu
//	    inputs: [x]
//	    outputs: [{name: y}]
//	  - kind: if
//	    inputs: [c]
//	    outputs: [{name: r}]
//	    blocks:
//	      - {returns: [x]}
//	      - {returns: [y]}
//	returns: [r]
//
// Nodes with an "op" and no "kind" are operators. Kinds are the snake-case names of ir.NodeKind ("if", "loop",
// "list_construct", "call_method", ...). Output types default to "Tensor", and types use the ir.ParseType format.
//
// Constants take exactly one of: "value" (a YAML scalar: null, bool, int, float or string), "none: true",
// "device" (e.g. "cuda:0") or "devices" (a list of candidate devices).
//
// Values are referred to by name: a name is visible after its definition, in its block and in nested blocks.
package iryaml

import (
	"io"
	"os"

	"github.com/gomlx/deviceprop/pkg/core/devices"
	"github.com/gomlx/deviceprop/pkg/ir"
	"github.com/gomlx/deviceprop/pkg/ir/opset"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// blockDoc describes a block, or the whole graph for the top-level block.
type blockDoc struct {
	Inputs  []valueDoc `yaml:"inputs"`
	Nodes   []nodeDoc  `yaml:"nodes"`
	Returns []string   `yaml:"returns"`
}

type valueDoc struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

type nodeDoc struct {
	Kind    string     `yaml:"kind"`
	Op      string     `yaml:"op"`
	Inputs  []string   `yaml:"inputs"`
	Outputs []valueDoc `yaml:"outputs"`
	Blocks  []blockDoc `yaml:"blocks"`

	// Constants.
	Value   yaml.Node `yaml:"value"`
	None    bool      `yaml:"none"`
	Device  string    `yaml:"device"`
	Devices []string  `yaml:"devices"`

	line int
}

// UnmarshalYAML records the line of the node, for error messages.
func (n *nodeDoc) UnmarshalYAML(value *yaml.Node) error {
	type plain nodeDoc
	if err := value.Decode((*plain)(n)); err != nil {
		return err
	}
	n.line = value.Line
	return nil
}

// Parse builds a graph from its YAML description.
// If registry is nil, opset.Default() is used to resolve operators.
func Parse(data []byte, registry *ir.Registry) (*ir.Graph, error) {
	var doc blockDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "iryaml: failed to parse YAML")
	}
	if registry == nil {
		registry = opset.Default()
	}
	g := ir.NewGraph(registry)
	if err := buildBlock(g.Block(), &doc, nil); err != nil {
		return nil, errors.WithMessage(err, "iryaml")
	}
	return g, nil
}

// Load reads the YAML description from r and builds the graph. See Parse.
func Load(r io.Reader, registry *ir.Registry) (*ir.Graph, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "iryaml: failed to read graph description")
	}
	return Parse(data, registry)
}

// LoadFile reads the YAML description from the file at path and builds the graph. See Parse.
func LoadFile(path string, registry *ir.Registry) (*ir.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "iryaml: failed to read %q", path)
	}
	g, err := Parse(data, registry)
	if err != nil {
		return nil, errors.WithMessagef(err, "loading %q", path)
	}
	return g, nil
}

// scope maps value names to values, for one block. Lookups fall back to the enclosing scope.
type scope struct {
	parent *scope
	values map[string]*ir.Value
}

func (s *scope) lookup(name string) (*ir.Value, bool) {
	for ; s != nil; s = s.parent {
		if v, found := s.values[name]; found {
			return v, true
		}
	}
	return nil, false
}

func (s *scope) define(v *ir.Value, name string) error {
	if name == "" {
		return nil
	}
	if _, found := s.values[name]; found {
		return errors.Errorf("value %q defined more than once", name)
	}
	v.SetName(name)
	s.values[name] = v
	return nil
}

func buildBlock(b *ir.Block, doc *blockDoc, parent *scope) error {
	s := &scope{parent: parent, values: make(map[string]*ir.Value)}
	for ii, input := range doc.Inputs {
		t, err := parseType(input.Type)
		if err != nil {
			return errors.WithMessagef(err, "input #%d (%q)", ii, input.Name)
		}
		if err := s.define(b.AddInput(input.Name, t), input.Name); err != nil {
			return errors.WithMessagef(err, "input #%d", ii)
		}
	}
	for ii := range doc.Nodes {
		nd := &doc.Nodes[ii]
		if err := buildNode(b, nd, s); err != nil {
			return errors.WithMessagef(err, "node #%d (line %d)", ii, nd.line)
		}
	}
	for _, name := range doc.Returns {
		v, found := s.lookup(name)
		if !found {
			return errors.Errorf("returns unknown value %q", name)
		}
		b.RegisterOutput(v)
	}
	return nil
}

func buildNode(b *ir.Block, doc *nodeDoc, s *scope) error {
	kind := ir.KindOperator
	if doc.Kind != "" {
		var err error
		kind, err = ir.NodeKindString(doc.Kind)
		if err != nil || kind == ir.KindInvalid {
			return errors.Errorf("unknown node kind %q", doc.Kind)
		}
	}
	if kind == ir.KindOperator && doc.Op == "" {
		return errors.New("operator nodes require an \"op\"")
	}

	if kind == ir.KindConstant {
		c, err := parseConstant(doc)
		if err != nil {
			return err
		}
		if len(doc.Inputs) > 0 || len(doc.Blocks) > 0 || len(doc.Outputs) > 1 {
			return errors.New("constants have no inputs or blocks, and a single output")
		}
		v := b.AppendConstant(c)
		if len(doc.Outputs) == 1 {
			if doc.Outputs[0].Type != "" {
				return errors.New("the type of constants is given by their value")
			}
			return s.define(v, doc.Outputs[0].Name)
		}
		return nil
	}

	inputs := make([]*ir.Value, 0, len(doc.Inputs))
	for _, name := range doc.Inputs {
		v, found := s.lookup(name)
		if !found {
			return errors.Errorf("unknown input value %q", name)
		}
		inputs = append(inputs, v)
	}
	outputTypes := make([]ir.Type, 0, len(doc.Outputs))
	for ii, output := range doc.Outputs {
		t, err := parseType(output.Type)
		if err != nil {
			return errors.WithMessagef(err, "output #%d (%q)", ii, output.Name)
		}
		outputTypes = append(outputTypes, t)
	}
	if len(doc.Blocks) > 0 && !kind.IsCompound() {
		return errors.Errorf("nodes of kind %s can't have blocks", kind)
	}

	n := b.AppendNode(kind, doc.Op, inputs, outputTypes...)
	for ii := range doc.Blocks {
		if err := buildBlock(n.AddBlock(), &doc.Blocks[ii], s); err != nil {
			return errors.WithMessagef(err, "block #%d", ii)
		}
	}
	// Outputs are defined after the blocks, so they are not visible inside them.
	for ii, output := range doc.Outputs {
		if err := s.define(n.Output(ii), output.Name); err != nil {
			return err
		}
	}
	return nil
}

func parseType(text string) (ir.Type, error) {
	if text == "" {
		return ir.AnyTensor(), nil
	}
	return ir.ParseType(text)
}

func parseConstant(doc *nodeDoc) (ir.Constant, error) {
	var (
		c     ir.Constant
		count int
	)
	if doc.Value.Kind != 0 {
		count++
		var err error
		c, err = parseScalar(&doc.Value)
		if err != nil {
			return ir.Constant{}, err
		}
	}
	if doc.None {
		count++
		c = ir.NoneConstant()
	}
	if doc.Device != "" {
		count++
		device, err := devices.Parse(doc.Device)
		if err != nil {
			return ir.Constant{}, err
		}
		c = ir.DeviceConstant(device)
	}
	if len(doc.Devices) > 0 {
		count++
		if len(doc.Devices) < 2 {
			return ir.Constant{}, errors.New("\"devices\" requires at least 2 devices, use \"device\" for one")
		}
		options := make([]devices.Device, len(doc.Devices))
		for ii, text := range doc.Devices {
			var err error
			options[ii], err = devices.Parse(text)
			if err != nil {
				return ir.Constant{}, err
			}
		}
		c = ir.DeviceUnionConstant(options...)
	}
	if count != 1 {
		return ir.Constant{}, errors.New("constants require exactly one of \"value\", \"none\", \"device\" or \"devices\"")
	}
	return c, nil
}

func parseScalar(node *yaml.Node) (ir.Constant, error) {
	if node.Kind != yaml.ScalarNode {
		return ir.Constant{}, errors.Errorf("constant value at line %d must be a scalar", node.Line)
	}
	switch node.ShortTag() {
	case "!!null":
		return ir.NoneConstant(), nil
	case "!!bool":
		var b bool
		if err := node.Decode(&b); err != nil {
			return ir.Constant{}, errors.Wrap(err, "invalid bool constant")
		}
		return ir.BoolConstant(b), nil
	case "!!int":
		var i int64
		if err := node.Decode(&i); err != nil {
			return ir.Constant{}, errors.Wrap(err, "invalid int constant")
		}
		return ir.IntConstant(i), nil
	case "!!float":
		var f float64
		if err := node.Decode(&f); err != nil {
			return ir.Constant{}, errors.Wrap(err, "invalid float constant")
		}
		return ir.FloatConstant(f), nil
	case "!!str":
		return ir.StringConstant(node.Value), nil
	default:
		return ir.Constant{}, errors.Errorf("unsupported constant value %q (tag %s)", node.Value, node.ShortTag())
	}
}
