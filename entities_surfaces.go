// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

func init() {
	registerPartition(108, fixedCount(9))
	registerEntity(108, 0, newPlane)
	registerEntity(108, 1, newPlane)

	registerPartition(120, fixedCount(4))
	registerEntity(120, 0, newSurfaceOfRevolution)

	registerPartition(122, fixedCount(4))
	registerEntity(122, 0, newTabulatedCylinder)

	registerPartition(128, rationalBSplineSurfacePartition)
	for form := 0; form <= 9; form++ {
		registerEntity(128, form, newRationalBSplineSurface)
	}

	registerPartition(142, fixedCount(5))
	registerEntity(142, 0, newCurveOnParametricSurface)

	registerPartition(144, trimmedSurfacePartition)
	registerEntity(144, 0, newTrimmedSurface)
	registerEntity(144, 1, newTrimmedSurface)
}

// Plane is IGES type 108: the half-space A*x+B*y+C*z=D, optionally
// bounded by a closed curve, with an optional display symbol.
type Plane struct {
	entityBase
	A, B, C, D           float64
	SymbolX, SymbolY, SymbolZ, SymbolSize float64
}

func newPlane(ctx *EntityContext) (Entity, error) {
	reinterpretAsPointer(ctx.PD.Tokens, 4)
	t := ctx.PD.Tokens
	e := &Plane{
		entityBase: newEntityBase(ctx),
		A:          t.Real(0), B: t.Real(1), C: t.Real(2), D: t.Real(3),
		SymbolX: t.Real(5), SymbolY: t.Real(6), SymbolZ: t.Real(7),
		SymbolSize: t.Real(8),
	}
	return e, nil
}

// BoundingCurveRef resolves the optional bounding-curve pointer.
func (p *Plane) BoundingCurveRef() EntityID {
	if len(p.refs) == 0 {
		return EntityID{}
	}
	return p.refs[0]
}

// SurfaceOfRevolution is IGES type 120: a generatrix curve swept about an
// axis between a start and terminate angle.
type SurfaceOfRevolution struct {
	entityBase
	StartAngle, EndAngle float64
}

func newSurfaceOfRevolution(ctx *EntityContext) (Entity, error) {
	reinterpretAsPointer(ctx.PD.Tokens, 0)
	reinterpretAsPointer(ctx.PD.Tokens, 1)
	t := ctx.PD.Tokens
	return &SurfaceOfRevolution{
		entityBase: newEntityBase(ctx),
		StartAngle: t.Real(2), EndAngle: t.Real(3),
	}, nil
}

// AxisRef and GeneratrixRef resolve the axis line and generatrix curve.
func (s *SurfaceOfRevolution) AxisRef() EntityID       { return s.refs[0] }
func (s *SurfaceOfRevolution) GeneratrixRef() EntityID { return s.refs[1] }

// TabulatedCylinder is IGES type 122: a ruled surface formed by sweeping
// a directrix curve along a fixed direction.
type TabulatedCylinder struct {
	entityBase
	EndX, EndY, EndZ float64
}

func newTabulatedCylinder(ctx *EntityContext) (Entity, error) {
	reinterpretAsPointer(ctx.PD.Tokens, 0)
	t := ctx.PD.Tokens
	return &TabulatedCylinder{
		entityBase: newEntityBase(ctx),
		EndX:       t.Real(1), EndY: t.Real(2), EndZ: t.Real(3),
	}, nil
}

// DirectrixRef resolves the directrix curve pointer.
func (c *TabulatedCylinder) DirectrixRef() EntityID { return c.refs[0] }

// rationalBSplineSurfacePartition mirrors rationalBSplineCurvePartition
// in two directions (spec.md ENTITY COVERAGE).
func rationalBSplineSurfacePartition(tokens []Param) (int, error) {
	if err := requireTokens(tokens, 4); err != nil {
		return 0, err
	}
	k1, k2 := intAt(tokens, 0), intAt(tokens, 1)
	m1, m2 := intAt(tokens, 2), intAt(tokens, 3)
	if k1 < 0 || k2 < 0 || m1 < 0 || m2 < 0 {
		return 0, &DataFormatError{Message: "Rational B-Spline Surface degree/index must be non-negative"}
	}
	nKnotsU := m1 + k1 + 2
	nKnotsV := m2 + k2 + 2
	nCtrl := (m1 + 1) * (m2 + 1)
	total := 4 + 5 + nKnotsU + nKnotsV + nCtrl + 3*nCtrl + 4
	return total, nil
}

// RationalBSplineSurface is IGES type 128: a NURBS surface.
type RationalBSplineSurface struct {
	entityBase
	DegreeU, DegreeV, UpperIndexU, UpperIndexV int
	ClosedU, ClosedV, Rational, PeriodicU, PeriodicV bool
	KnotsU, KnotsV                                   []float64
	Weights                                           []float64
	ControlPoints                                     [][3]float64
	ParameterRange                                    [4]float64
}

func newRationalBSplineSurface(ctx *EntityContext) (Entity, error) {
	t := ctx.PD.Tokens
	k1, k2 := intAt(t.All(), 0), intAt(t.All(), 1)
	m1, m2 := intAt(t.All(), 2), intAt(t.All(), 3)
	e := &RationalBSplineSurface{
		entityBase:  newEntityBase(ctx),
		DegreeU:     k1, DegreeV: k2, UpperIndexU: m1, UpperIndexV: m2,
		ClosedU: t.Int(4) != 0, ClosedV: t.Int(5) != 0, Rational: t.Int(6) != 0,
		PeriodicU: t.Int(7) != 0, PeriodicV: t.Int(8) != 0,
	}
	idx := 9
	for i := 0; i < m1+k1+2; i++ {
		e.KnotsU = append(e.KnotsU, t.Real(idx))
		idx++
	}
	for i := 0; i < m2+k2+2; i++ {
		e.KnotsV = append(e.KnotsV, t.Real(idx))
		idx++
	}
	nCtrl := (m1 + 1) * (m2 + 1)
	for i := 0; i < nCtrl; i++ {
		e.Weights = append(e.Weights, t.Real(idx))
		idx++
	}
	for i := 0; i < nCtrl; i++ {
		e.ControlPoints = append(e.ControlPoints, [3]float64{t.Real(idx), t.Real(idx + 1), t.Real(idx + 2)})
		idx += 3
	}
	for i := 0; i < 4; i++ {
		e.ParameterRange[i] = t.Real(idx)
		idx++
	}
	return e, nil
}

// CurveOnParametricSurface is IGES type 142 (spec.md §8 scenario 6).
type CurveOnParametricSurface struct {
	entityBase
	CreationMode           int
	PreferredRepresentation int
}

func newCurveOnParametricSurface(ctx *EntityContext) (Entity, error) {
	reinterpretAsPointer(ctx.PD.Tokens, 1)
	reinterpretAsPointer(ctx.PD.Tokens, 2)
	reinterpretAsPointer(ctx.PD.Tokens, 3)
	t := ctx.PD.Tokens
	return &CurveOnParametricSurface{
		entityBase:              newEntityBase(ctx),
		CreationMode:            intAt(t.All(), 0),
		PreferredRepresentation: intAt(t.All(), 4),
	}, nil
}

// SurfaceRef, ParameterSpaceCurveRef, ModelSpaceCurveRef resolve the
// entity's three pointer fields.
func (c *CurveOnParametricSurface) SurfaceRef() EntityID             { return c.refs[0] }
func (c *CurveOnParametricSurface) ParameterSpaceCurveRef() EntityID { return c.refs[1] }
func (c *CurveOnParametricSurface) ModelSpaceCurveRef() EntityID     { return c.refs[2] }

// trimmedSurfacePartition: PTS, N1, N2, PTO, then N2 inner-boundary
// pointers.
func trimmedSurfacePartition(tokens []Param) (int, error) {
	if err := requireTokens(tokens, 4); err != nil {
		return 0, err
	}
	n2 := intAt(tokens, 2)
	if n2 < 0 {
		return 0, &DataFormatError{Message: "Trimmed Surface inner-boundary count must be non-negative"}
	}
	return 4 + n2, nil
}

// TrimmedSurface is IGES type 144: a parametric surface restricted to the
// region inside an outer boundary and outside zero or more inner ones.
type TrimmedSurface struct {
	entityBase
	HasOuterBoundary bool
	InnerBoundaryCount int
}

func newTrimmedSurface(ctx *EntityContext) (Entity, error) {
	n2 := intAt(ctx.PD.Tokens.All(), 2)
	reinterpretAsPointer(ctx.PD.Tokens, 0)
	reinterpretAsPointer(ctx.PD.Tokens, 3)
	reinterpretRangeAsPointers(ctx.PD.Tokens, 4, n2)
	t := ctx.PD.Tokens
	return &TrimmedSurface{
		entityBase:         newEntityBase(ctx),
		HasOuterBoundary:   t.Int(1) != 0,
		InnerBoundaryCount: n2,
	}, nil
}

// SurfaceRef and OuterBoundaryRef resolve the surface and outer-boundary
// pointers.
func (s *TrimmedSurface) SurfaceRef() EntityID        { return s.refs[0] }
func (s *TrimmedSurface) OuterBoundaryRef() EntityID  { return s.refs[1] }
