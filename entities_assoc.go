// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

func init() {
	registerPartition(106, copiousDataPartition)
	registerEntity(106, 11, newCopiousData)
	registerEntity(106, 12, newCopiousData)
	registerEntity(106, 63, newCopiousData)

	registerPartition(308, subfigureDefinitionPartition)
	registerEntity(308, 0, newSubfigureDefinition)

	registerPartition(402, associativityInstancePartition)
	registerEntity(402, 1, newAssociativityInstance)
	registerEntity(402, 7, newAssociativityInstance)
	registerEntity(402, 9, newAssociativityInstance)

	registerPartition(406, propertyNamePartition)
	registerEntity(406, 15, newPropertyName)

	registerPartition(408, fixedCount(5))
	registerEntity(408, 0, newSingularSubfigureInstance)
}

// copiousDataPartition covers the 3 registered forms of IGES type 106
// (Copious Data): IP (interpretation flag) and N (tuple count) fix the
// per-tuple width.
func copiousDataPartition(tokens []Param) (int, error) {
	if err := requireTokens(tokens, 2); err != nil {
		return 0, err
	}
	ip, n := intAt(tokens, 0), intAt(tokens, 1)
	if n < 0 {
		return 0, &DataFormatError{Message: "Copious Data tuple count must be non-negative"}
	}
	switch ip {
	case 1:
		return 2 + 1 + 2*n, nil // common Z plus (x, y) pairs.
	case 2:
		return 2 + 3*n, nil // (x, y, z) triples.
	case 3:
		return 2 + 6*n, nil // (x, y, z) triples plus an associated vector.
	default:
		return 0, &DataFormatError{Message: "Copious Data interpretation flag must be 1, 2, or 3"}
	}
}

// CopiousData is IGES type 106: a list of points, optionally paired with
// vectors (spec.md ENTITY COVERAGE).
type CopiousData struct {
	entityBase
	InterpretationFlag int
	CommonZ            float64
	Points             [][3]float64
	Vectors            [][3]float64
}

func newCopiousData(ctx *EntityContext) (Entity, error) {
	t := ctx.PD.Tokens
	ip, n := intAt(t.All(), 0), intAt(t.All(), 1)
	e := &CopiousData{entityBase: newEntityBase(ctx), InterpretationFlag: ip}
	idx := 2
	switch ip {
	case 1:
		e.CommonZ = t.Real(idx)
		idx++
		for i := 0; i < n; i++ {
			e.Points = append(e.Points, [3]float64{t.Real(idx), t.Real(idx + 1), e.CommonZ})
			idx += 2
		}
	case 2:
		for i := 0; i < n; i++ {
			e.Points = append(e.Points, [3]float64{t.Real(idx), t.Real(idx + 1), t.Real(idx + 2)})
			idx += 3
		}
	case 3:
		for i := 0; i < n; i++ {
			e.Points = append(e.Points, [3]float64{t.Real(idx), t.Real(idx + 1), t.Real(idx + 2)})
			idx += 3
			e.Vectors = append(e.Vectors, [3]float64{t.Real(idx), t.Real(idx + 1), t.Real(idx + 2)})
			idx += 3
		}
	}
	return e, nil
}

// subfigureDefinitionPartition: DEPTH, NAME, N, then N pointers.
func subfigureDefinitionPartition(tokens []Param) (int, error) {
	if err := requireTokens(tokens, 3); err != nil {
		return 0, err
	}
	n := intAt(tokens, 2)
	if n < 0 {
		return 0, &DataFormatError{Message: "Subfigure Definition member count must be non-negative"}
	}
	return 3 + n, nil
}

// SubfigureDefinition is IGES type 308: a named group of entities usable
// as a reusable instance template.
type SubfigureDefinition struct {
	entityBase
	Depth int
	Name  string
}

func newSubfigureDefinition(ctx *EntityContext) (Entity, error) {
	n := intAt(ctx.PD.Tokens.All(), 2)
	reinterpretRangeAsPointers(ctx.PD.Tokens, 3, n)
	t := ctx.PD.Tokens
	return &SubfigureDefinition{
		entityBase: newEntityBase(ctx),
		Depth:      intAt(t.All(), 0),
		Name:       t.Str(1),
	}, nil
}

// associativityInstancePartition: N (member count) then N pointers,
// shared across the group/ordered/single-parent forms this module
// implements.
func associativityInstancePartition(tokens []Param) (int, error) {
	if err := requireTokens(tokens, 1); err != nil {
		return 0, err
	}
	n := intAt(tokens, 0)
	if n < 0 {
		return 0, &DataFormatError{Message: "Associativity Instance member count must be non-negative"}
	}
	return 1 + n, nil
}

// AssociativityInstance is IGES type 402: a named relationship between a
// set of member entities (spec.md ENTITY COVERAGE).
type AssociativityInstance struct {
	entityBase
}

func newAssociativityInstance(ctx *EntityContext) (Entity, error) {
	n := intAt(ctx.PD.Tokens.All(), 0)
	reinterpretRangeAsPointers(ctx.PD.Tokens, 1, n)
	return &AssociativityInstance{entityBase: newEntityBase(ctx)}, nil
}

// propertyNamePartition: N (count, conventionally 1) then N strings.
func propertyNamePartition(tokens []Param) (int, error) {
	if err := requireTokens(tokens, 1); err != nil {
		return 0, err
	}
	n := intAt(tokens, 0)
	if n < 0 {
		return 0, &DataFormatError{Message: "Property Name count must be non-negative"}
	}
	return 1 + n, nil
}

// PropertyName is IGES type 406 form 15: a named string attribute
// attachable to any entity via the DE's property-pointer list.
type PropertyName struct {
	entityBase
	Names []string
}

func newPropertyName(ctx *EntityContext) (Entity, error) {
	t := ctx.PD.Tokens
	n := intAt(t.All(), 0)
	e := &PropertyName{entityBase: newEntityBase(ctx)}
	for i := 0; i < n; i++ {
		e.Names = append(e.Names, t.Str(1+i))
	}
	return e, nil
}

// SingularSubfigureInstance is IGES type 408: a single placement of a
// Subfigure Definition at a translation and uniform scale.
type SingularSubfigureInstance struct {
	entityBase
	X, Y, Z, Scale float64
}

func newSingularSubfigureInstance(ctx *EntityContext) (Entity, error) {
	reinterpretAsPointer(ctx.PD.Tokens, 0)
	t := ctx.PD.Tokens
	return &SingularSubfigureInstance{
		entityBase: newEntityBase(ctx),
		X:          t.Real(1), Y: t.Real(2), Z: t.Real(3), Scale: t.Real(4),
	}, nil
}

// SubfigureRef resolves the pointer to the referenced Subfigure
// Definition.
func (s *SingularSubfigureInstance) SubfigureRef() EntityID { return s.refs[0] }
