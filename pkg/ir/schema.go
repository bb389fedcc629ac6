// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"strings"

	"github.com/pkg/errors"
)

// Argument of an operator Schema, or one of its returns (in which case the Name may be empty).
type Argument struct {
	Name string
	Type Type

	// Default value, or nil if the argument has no default.
	Default *Constant

	// KwargOnly is set for arguments declared after the "*" marker.
	KwargOnly bool
}

// String implements fmt.Stringer, in the schema format: "Type name=default".
func (a Argument) String() string {
	s := a.Type.String()
	if a.Name != "" {
		s += " " + a.Name
	}
	if a.Default != nil {
		s += "=" + a.Default.String()
	}
	return s
}

// Schema is the declared signature of an operator. It is static: analyses consult it, never modify it.
//
// Graph builders fill in default values, so a node invoking an operator has one input per argument.
type Schema struct {
	// Name is the qualified operator name, e.g. "aten::to".
	Name string

	// Overload name, e.g. "device" for "aten::to.device". It may be empty.
	Overload string

	Arguments []Argument
	Returns   []Argument
}

// QualifiedName returns the name including the overload, e.g. "aten::to.device".
func (s *Schema) QualifiedName() string {
	if s.Overload == "" {
		return s.Name
	}
	return s.Name + "." + s.Overload
}

// String implements fmt.Stringer, in the format accepted by ParseSchema.
func (s *Schema) String() string {
	var sb strings.Builder
	sb.WriteString(s.QualifiedName())
	sb.WriteByte('(')
	kwargs := false
	for ii, arg := range s.Arguments {
		if ii > 0 {
			sb.WriteString(", ")
		}
		if arg.KwargOnly && !kwargs {
			sb.WriteString("*, ")
			kwargs = true
		}
		sb.WriteString(arg.String())
	}
	sb.WriteString(") -> ")
	if len(s.Returns) == 1 && s.Returns[0].Name == "" {
		sb.WriteString(s.Returns[0].String())
		return sb.String()
	}
	sb.WriteByte('(')
	for ii, ret := range s.Returns {
		if ii > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ret.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

// Matches returns whether the schema can be invoked with the given inputs: one input per argument, each of a
// type that is a subtype of the argument type.
func (s *Schema) Matches(inputs []*Value) bool {
	if len(inputs) != len(s.Arguments) {
		return false
	}
	for ii, arg := range s.Arguments {
		if !IsSubtypeOf(inputs[ii].Type(), arg.Type) {
			return false
		}
	}
	return true
}

// ParseSchema parses an operator signature. Example:
//
//	aten::to.device(Tensor self, Device device, ScalarType dtype, bool non_blocking=False, bool copy=False,
//	    MemoryFormat? memory_format=None) -> Tensor
//
// Argument types use the ParseType format. A "*" marks the following arguments as keyword-only. Multiple returns
// are written as a parenthesized list, optionally named: "-> (Tensor values, Tensor indices)".
func ParseSchema(text string) (*Schema, error) {
	p := &parser{text: text}
	namespace := p.ident()
	if namespace == "" {
		return nil, p.errorf("expected operator namespace")
	}
	if err := p.expect("::"); err != nil {
		return nil, err
	}
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected operator name")
	}
	s := &Schema{Name: namespace + "::" + name}
	if p.consume(".") {
		s.Overload = p.ident()
		if s.Overload == "" {
			return nil, p.errorf("expected overload name")
		}
	}

	if err := p.expect("("); err != nil {
		return nil, err
	}
	if !p.consume(")") {
		kwargOnly := false
		for {
			if p.consume("*") {
				kwargOnly = true
				if err := p.expect(","); err != nil {
					return nil, err
				}
			}
			arg, err := p.parseArgument(true)
			if err != nil {
				return nil, errors.WithMessagef(err, "argument #%d of %s", len(s.Arguments), s.QualifiedName())
			}
			arg.KwargOnly = kwargOnly
			s.Arguments = append(s.Arguments, arg)
			if p.consume(")") {
				break
			}
			if err := p.expect(","); err != nil {
				return nil, err
			}
		}
	}

	if err := p.expect("->"); err != nil {
		return nil, err
	}
	if p.consume("(") {
		if !p.consume(")") {
			for {
				ret, err := p.parseArgument(false)
				if err != nil {
					return nil, errors.WithMessagef(err, "return #%d of %s", len(s.Returns), s.QualifiedName())
				}
				s.Returns = append(s.Returns, ret)
				if p.consume(")") {
					break
				}
				if err := p.expect(","); err != nil {
					return nil, err
				}
			}
		}
	} else {
		ret, err := p.parseArgument(false)
		if err != nil {
			return nil, errors.WithMessagef(err, "return of %s", s.QualifiedName())
		}
		s.Returns = []Argument{ret}
	}
	if !p.eof() {
		return nil, p.errorf("unexpected trailing text")
	}
	return s, nil
}

// MustParseSchema is like ParseSchema, but panics on error.
func MustParseSchema(text string) *Schema {
	s, err := ParseSchema(text)
	if err != nil {
		panic(err)
	}
	return s
}

// parseArgument parses "Type [name][=default]". The name is required for arguments, optional for returns.
func (p *parser) parseArgument(isInput bool) (Argument, error) {
	t, err := p.parseType()
	if err != nil {
		return Argument{}, err
	}
	arg := Argument{Type: t, Name: p.ident()}
	if arg.Name == "" && isInput {
		return Argument{}, p.errorf("expected argument name")
	}
	if isInput && p.consume("=") {
		c, err := p.parseLiteral()
		if err != nil {
			return Argument{}, err
		}
		arg.Default = &c
	}
	return arg, nil
}
