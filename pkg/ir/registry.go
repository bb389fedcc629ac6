// Copyright 2023-2026 The GoMLX Authors. SPDX-License-Identifier: Apache-2.0

package ir

import (
	"strings"

	"github.com/pkg/errors"
)

// Operator is a schema registered with an implementation.
//
// Schemas can also be only declared (see Registry.Declare): those resolve with Node.MaybeSchema, but not with
// Node.MaybeOperator.
type Operator struct {
	schema *Schema
}

// Schema of the operator.
func (op *Operator) Schema() *Schema { return op.schema }

// String implements fmt.Stringer.
func (op *Operator) String() string { return op.schema.String() }

// Registry of operator schemas, used by nodes to resolve the operator they invoke.
//
// It is safe for concurrent lookups, but registration must happen before it is shared.
type Registry struct {
	// byName maps the operator name (without overload) to its schemas, in registration order.
	byName map[string][]*Schema

	byQualifiedName map[string]*Schema
	operators       map[*Schema]*Operator
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:          make(map[string][]*Schema),
		byQualifiedName: make(map[string]*Schema),
		operators:       make(map[*Schema]*Operator),
	}
}

// Register adds the schemas as operators with an implementation.
// It returns an error if a schema with the same qualified name is already present.
func (r *Registry) Register(schemas ...*Schema) error {
	for _, s := range schemas {
		if err := r.add(s); err != nil {
			return err
		}
		r.operators[s] = &Operator{schema: s}
	}
	return nil
}

// Declare adds the schemas without an implementation.
func (r *Registry) Declare(schemas ...*Schema) error {
	for _, s := range schemas {
		if err := r.add(s); err != nil {
			return err
		}
	}
	return nil
}

// RegisterText parses the schemas with ParseSchema and registers them as operators.
func (r *Registry) RegisterText(texts ...string) error {
	for _, text := range texts {
		s, err := ParseSchema(text)
		if err != nil {
			return err
		}
		if err := r.Register(s); err != nil {
			return err
		}
	}
	return nil
}

// DeclareText parses the schemas with ParseSchema and declares them, without implementation.
func (r *Registry) DeclareText(texts ...string) error {
	for _, text := range texts {
		s, err := ParseSchema(text)
		if err != nil {
			return err
		}
		if err := r.Declare(s); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) add(s *Schema) error {
	if s == nil {
		return errors.New("cannot register a nil schema")
	}
	qualified := s.QualifiedName()
	if _, found := r.byQualifiedName[qualified]; found {
		return errors.Errorf("operator schema %q already registered", qualified)
	}
	r.byQualifiedName[qualified] = s
	r.byName[s.Name] = append(r.byName[s.Name], s)
	return nil
}

// Len returns the number of schemas, registered or declared.
func (r *Registry) Len() int { return len(r.byQualifiedName) }

// Schema returns the schema with the given qualified name (e.g. "aten::to.device"), or nil.
func (r *Registry) Schema(qualifiedName string) *Schema { return r.byQualifiedName[qualifiedName] }

// Lookup resolves an operator invocation.
//
// If op includes an overload name (e.g. "aten::to.device"), that schema is used, provided it matches the inputs.
// Otherwise, the first schema registered with that name that matches the inputs is used (see Schema.Matches).
//
// It returns a nil schema if nothing matches, and a nil operator if the schema is only declared.
func (r *Registry) Lookup(op string, inputs []*Value) (*Schema, *Operator) {
	var candidates []*Schema
	if isOverloadQualified(op) {
		if s := r.byQualifiedName[op]; s != nil {
			candidates = []*Schema{s}
		}
	} else {
		candidates = r.byName[op]
	}
	for _, s := range candidates {
		if s.Matches(inputs) {
			return s, r.operators[s]
		}
	}
	return nil, nil
}

// isOverloadQualified returns whether the operator name includes an overload, as in "aten::to.device".
func isOverloadQualified(op string) bool {
	_, name, found := strings.Cut(op, "::")
	if !found {
		name = op
	}
	return strings.Contains(name, ".")
}
