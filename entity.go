// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

// Entity is the capability set every resolved entity exposes (spec.md §3
// "Entity object").
type Entity interface {
	GetType() int
	GetFormNumber() int
	GetID() EntityID
	GetDE() *DirectoryEntry
	GetParameters() *ParameterVector
	GetReferencedIDs() []EntityID
	ResolveReference(idx int, id EntityID)
	Validate() error
	ToRawPD() *RawPD
}

// EntityContext is what a factory needs beyond the raw record: the
// pointer-to-identifier map built in resolution pass 1, and the
// generator that owns this session's identifiers (spec.md §4.6 "entity
// factory ... (DE record, token list, pointer-to-id map, owning file
// identifier)").
type EntityContext struct {
	DE       *DirectoryEntry
	PD       *RawPD
	IDs      *IDGenerator
	ID       EntityID
	PointerToID func(sequenceNumber int) (EntityID, bool)
}

// EntityFactory constructs a typed Entity from a raw record.
type EntityFactory func(ctx *EntityContext) (Entity, error)

// PartitionFunc computes the count of entity-specific tokens given the
// full post-entity-type token list (spec.md §4.6 "GetParameterPartition").
type PartitionFunc func(tokens []Param) (nEntity int, err error)

type registryKey struct {
	entityType int
	form       int // -1 matches any form not otherwise registered for this type.
}

var entityFactories = map[registryKey]EntityFactory{}
var entityPartitioners = map[int]PartitionFunc{}

// registerEntity wires a factory for (entityType, form); form -1 matches
// any form number not otherwise registered.
func registerEntity(entityType, form int, factory EntityFactory) {
	entityFactories[registryKey{entityType, form}] = factory
}

// registerPartition wires the parameter-count partition function for an
// entity type, shared across all of its forms.
func registerPartition(entityType int, fn PartitionFunc) {
	entityPartitioners[entityType] = fn
}

func lookupFactory(entityType, form int) (EntityFactory, bool) {
	if f, ok := entityFactories[registryKey{entityType, form}]; ok {
		return f, true
	}
	if f, ok := entityFactories[registryKey{entityType, -1}]; ok {
		return f, true
	}
	return nil, false
}

// GetParameterPartition partitions a PD record's tokens (the entity-type
// token already stripped) into the entity-specific, associativity, and
// property groups (spec.md §4.6). nAssoc and nProps each include their
// own leading count token; a group whose count token is absent because
// the record ends first is reported as 0.
func GetParameterPartition(entityType int, tokens []Param) (nEntity, nAssoc, nProps int, err error) {
	fn, ok := entityPartitioners[entityType]
	if !ok {
		// Unregistered types (including everything destined for the
		// Unsupported fallback) treat every token as entity-specific:
		// there is no declared layout to partition against.
		return len(tokens), 0, 0, nil
	}
	nEntity, err = fn(tokens)
	if err != nil {
		return 0, 0, 0, err
	}
	if nEntity > len(tokens) {
		return 0, 0, 0, &DataFormatError{Message: "declared entity-specific parameter count overruns the token stream"}
	}

	rest := tokens[nEntity:]
	na, err := leadingCount(rest)
	if err != nil {
		return 0, 0, 0, err
	}
	if len(rest) > 0 {
		nAssoc = 1 + na
	}
	if nEntity+nAssoc > len(tokens) {
		return 0, 0, 0, &DataFormatError{Message: "declared associativity-pointer count overruns the token stream"}
	}

	rest = tokens[nEntity+nAssoc:]
	np, err := leadingCount(rest)
	if err != nil {
		return 0, 0, 0, err
	}
	if len(rest) > 0 {
		nProps = 1 + np
	}
	if nEntity+nAssoc+nProps > len(tokens) {
		return 0, 0, 0, &DataFormatError{Message: "declared property-pointer count overruns the token stream"}
	}
	if nEntity+nAssoc+nProps != len(tokens) {
		return 0, 0, 0, &DataFormatError{Message: "parameter partition does not account for every token"}
	}
	return nEntity, nAssoc, nProps, nil
}

func leadingCount(tokens []Param) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}
	if tokens[0].Value.Type != TypeInteger {
		return 0, &DataFormatError{Message: "associativity/property count field is not an Integer"}
	}
	return int(tokens[0].Value.Int), nil
}

// BuildEntity invokes the registered factory for ctx.DE's (type, form),
// or constructs an Unsupported entity if none is registered.
func BuildEntity(ctx *EntityContext) (Entity, error) {
	factory, ok := lookupFactory(ctx.DE.EntityType, ctx.DE.FormNumber)
	if !ok {
		factory = newUnsupported
	}
	return factory(ctx)
}
