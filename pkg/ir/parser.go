// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomlx/deviceprop/pkg/core/devices"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

var primitivesByName = map[string]PrimitiveType{
	"int":          IntType,
	"float":        FloatType,
	"bool":         BoolType,
	"str":          StrType,
	"None":         NoneType,
	"NoneType":     NoneType,
	"Device":       DeviceObjType,
	"ScalarType":   DTypeObjType,
	"Layout":       LayoutType,
	"MemoryFormat": MemoryFormatType,
	"Scalar":       NumberType,
	"Any":          AnyType,
}

// ParseType parses the textual representation of a type, as printed by Type.String. Examples:
//
//   - Primitives: "int", "float", "bool", "str", "None", "Device", "ScalarType", "Layout", "MemoryFormat",
//     "Scalar", "Any".
//   - Tensors: "Tensor" (nothing known), "Float32" (dtype only), "Tensor()" (rank 0), "Float32(2, ?)" (rank 2 with
//     an unknown dimension), "Tensor@cuda:0", "Int64()@cpu". Dtypes are named as in github.com/gomlx/gopjrt/dtypes.
//   - Composites: "Device?" (optional), "int[]" (list), "Union(str, Device)".
func ParseType(text string) (Type, error) {
	p := &parser{text: text}
	t, err := p.parseType()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected trailing text")
	}
	return t, nil
}

// MustParseType is like ParseType, but panics on error.
func MustParseType(text string) Type {
	t, err := ParseType(text)
	if err != nil {
		panic(err)
	}
	return t
}

// parser is a small recursive-descent parser shared by ParseType and ParseSchema.
type parser struct {
	text string
	pos  int
}

func (p *parser) errorf(format string, args ...any) error {
	return errors.Errorf("%s at position %d of %q", fmt.Sprintf(format, args...), p.pos, p.text)
}

func (p *parser) skipSpaces() {
	for p.pos < len(p.text) && (p.text[p.pos] == ' ' || p.text[p.pos] == '\t' || p.text[p.pos] == '\n') {
		p.pos++
	}
}

func (p *parser) eof() bool {
	p.skipSpaces()
	return p.pos >= len(p.text)
}

// peek returns the next non-space byte, or 0 at the end of the text.
func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.text[p.pos]
}

func (p *parser) consume(token string) bool {
	p.skipSpaces()
	if strings.HasPrefix(p.text[p.pos:], token) {
		p.pos += len(token)
		return true
	}
	return false
}

func (p *parser) expect(token string) error {
	if !p.consume(token) {
		return p.errorf("expected %q", token)
	}
	return nil
}

func isIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}

// ident reads an identifier, or returns "" if there is none.
func (p *parser) ident() string {
	p.skipSpaces()
	start := p.pos
	if p.pos >= len(p.text) || !isIdentStart(p.text[p.pos]) {
		return ""
	}
	for p.pos < len(p.text) && isIdentChar(p.text[p.pos]) {
		p.pos++
	}
	return p.text[start:p.pos]
}

func (p *parser) parseType() (Type, error) {
	start := p.pos
	name := p.ident()
	if name == "" {
		return nil, p.errorf("expected a type")
	}
	var (
		t   Type
		err error
	)
	switch {
	case name == "Union":
		t, err = p.parseUnion()
	case name == "Tensor":
		t, err = p.parseTensor(dtypes.InvalidDType)
	default:
		if primitive, found := primitivesByName[name]; found {
			t = primitive
		} else if dtype, found := dtypes.MapOfNames[name]; found && dtype != dtypes.InvalidDType {
			t, err = p.parseTensor(dtype)
		} else {
			p.pos = start
			return nil, p.errorf("unknown type %q", name)
		}
	}
	if err != nil {
		return nil, err
	}

	// Suffixes: "?" for optional, "[]" or "[<size>]" for lists.
	for {
		switch {
		case p.consume("?"):
			t = Optional(t)
		case p.consume("["):
			p.skipSpaces()
			for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
				p.pos++
			}
			if err := p.expect("]"); err != nil {
				return nil, err
			}
			t = List(t)
		default:
			return t, nil
		}
	}
}

func (p *parser) parseUnion() (Type, error) {
	if err := p.expect("("); err != nil {
		return nil, err
	}
	var members []Type
	for {
		member, err := p.parseType()
		if err != nil {
			return nil, err
		}
		members = append(members, member)
		if p.consume(")") {
			break
		}
		if err := p.expect(","); err != nil {
			return nil, err
		}
	}
	if len(members) < 2 {
		return nil, p.errorf("Union requires at least 2 types")
	}
	return Union(members...), nil
}

// parseTensor parses the optional "(<dims>)" or alias annotation "(a!)", and the optional "@<device>" that follow
// the tensor type name.
func (p *parser) parseTensor(dtype dtypes.DType) (Type, error) {
	t := UnrankedTensorType(dtype)
	if p.pos < len(p.text) && p.text[p.pos] == '(' {
		p.pos++
		p.skipSpaces()
		if p.pos < len(p.text) && isIdentStart(p.text[p.pos]) {
			// Alias annotation, as in "Tensor(a!) self": it carries no type information.
			end := strings.IndexByte(p.text[p.pos:], ')')
			if end < 0 {
				return nil, p.errorf("unterminated alias annotation")
			}
			p.pos += end + 1
		} else {
			t.rankKnown = true
			t.dimensions = []int{}
			if !p.consume(")") {
				for {
					dim, err := p.parseDim()
					if err != nil {
						return nil, err
					}
					t.dimensions = append(t.dimensions, dim)
					if p.consume(")") {
						break
					}
					if err := p.expect(","); err != nil {
						return nil, err
					}
				}
			}
		}
	}
	if p.pos < len(p.text) && p.text[p.pos] == '@' {
		p.pos++
		start := p.pos
		for p.pos < len(p.text) && (isIdentChar(p.text[p.pos]) || p.text[p.pos] == ':') {
			p.pos++
		}
		device, err := devices.Parse(p.text[start:p.pos])
		if err != nil {
			p.pos = start
			return nil, errors.WithMessagef(err, "at position %d of %q", p.pos, p.text)
		}
		t.device = device
	}
	return t, nil
}

func (p *parser) parseDim() (int, error) {
	if p.consume("?") {
		return UnknownDim, nil
	}
	p.skipSpaces()
	start := p.pos
	for p.pos < len(p.text) && p.text[p.pos] >= '0' && p.text[p.pos] <= '9' {
		p.pos++
	}
	if start == p.pos {
		return 0, p.errorf("expected a dimension or \"?\"")
	}
	dim, err := strconv.Atoi(p.text[start:p.pos])
	if err != nil {
		return 0, p.errorf("invalid dimension %q", p.text[start:p.pos])
	}
	return dim, nil
}

// parseLiteral parses a default value: None, True, False, a number, a quoted string, or a bare identifier
// (e.g. "contiguous_format"), which is taken as a string.
func (p *parser) parseLiteral() (Constant, error) {
	c := p.peek()
	switch {
	case c == '"' || c == '\'':
		start := p.pos
		end := strings.IndexByte(p.text[p.pos+1:], c)
		if end < 0 {
			return Constant{}, p.errorf("unterminated string")
		}
		p.pos += end + 2
		return StringConstant(p.text[start+1 : p.pos-1]), nil
	case c == '-' || (c >= '0' && c <= '9'):
		start := p.pos
		p.pos++
		for p.pos < len(p.text) && strings.IndexByte("0123456789.eE+-", p.text[p.pos]) >= 0 {
			p.pos++
		}
		literal := p.text[start:p.pos]
		if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
			return IntConstant(i), nil
		}
		f, err := strconv.ParseFloat(literal, 64)
		if err != nil {
			p.pos = start
			return Constant{}, p.errorf("invalid number %q", literal)
		}
		return FloatConstant(f), nil
	case isIdentStart(c):
		switch name := p.ident(); name {
		case "None":
			return NoneConstant(), nil
		case "True":
			return BoolConstant(true), nil
		case "False":
			return BoolConstant(false), nil
		default:
			return StringConstant(name), nil
		}
	default:
		return Constant{}, p.errorf("unsupported default value")
	}
}
