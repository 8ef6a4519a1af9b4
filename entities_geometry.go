// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

func fixedCount(n int) PartitionFunc {
	return func(tokens []Param) (int, error) {
		if n > len(tokens) {
			return 0, &DataFormatError{Message: "entity has fewer tokens than its fixed parameter count requires"}
		}
		return n, nil
	}
}

func init() {
	registerPartition(100, fixedCount(7))
	registerEntity(100, 0, newCircularArc)

	registerPartition(110, fixedCount(6))
	registerEntity(110, 0, newLine)

	registerPartition(116, fixedCount(4))
	registerEntity(116, 0, newPoint)

	registerPartition(124, fixedCount(12))
	registerEntity(124, 0, newTransformationMatrix)

	registerPartition(314, fixedCount(4))
	registerEntity(314, 0, newColorDefinition)
}

// CircularArc is IGES type 100: a circle or circular arc in a plane
// parallel to XT,YT at ZT (spec.md ENTITY COVERAGE).
type CircularArc struct {
	entityBase
	ZPlane              float64
	CenterX, CenterY    float64
	StartX, StartY      float64
	EndX, EndY          float64
}

func newCircularArc(ctx *EntityContext) (Entity, error) {
	t := ctx.PD.Tokens
	e := &CircularArc{
		entityBase: newEntityBase(ctx),
		ZPlane:     t.Real(0),
		CenterX:    t.Real(1), CenterY: t.Real(2),
		StartX: t.Real(3), StartY: t.Real(4),
		EndX: t.Real(5), EndY: t.Real(6),
	}
	return e, nil
}

// LineSegment is IGES type 110: a line segment, ray, or unbounded line
// between two points.
type LineSegment struct {
	entityBase
	X1, Y1, Z1 float64
	X2, Y2, Z2 float64
}

func newLine(ctx *EntityContext) (Entity, error) {
	t := ctx.PD.Tokens
	e := &LineSegment{
		entityBase: newEntityBase(ctx),
		X1:         t.Real(0), Y1: t.Real(1), Z1: t.Real(2),
		X2: t.Real(3), Y2: t.Real(4), Z2: t.Real(5),
	}
	return e, nil
}

// Point is IGES type 116: a single point, with an optional pointer to a
// display-symbol subfigure.
type Point struct {
	entityBase
	X, Y, Z float64
}

func newPoint(ctx *EntityContext) (Entity, error) {
	reinterpretAsPointer(ctx.PD.Tokens, 3)
	t := ctx.PD.Tokens
	e := &Point{
		entityBase: newEntityBase(ctx),
		X:          t.Real(0), Y: t.Real(1), Z: t.Real(2),
	}
	return e, nil
}

// DisplaySymbolRef resolves the optional display-symbol pointer (field
// index 3); the zero EntityID means "none".
func (p *Point) DisplaySymbolRef() EntityID {
	if len(p.refs) == 0 {
		return EntityID{}
	}
	return p.refs[0]
}

// TransformationMatrix is IGES type 124: a 3x3 rotation plus translation,
// stored as an opaque 12-value aggregate per this module's scope (spec.md
// §1 "a 4x4 homogeneous form as an opaque numeric aggregate").
type TransformationMatrix struct {
	entityBase
	R [9]float64 // row-major 3x3 rotation.
	T [3]float64 // translation.
}

func newTransformationMatrix(ctx *EntityContext) (Entity, error) {
	t := ctx.PD.Tokens
	e := &TransformationMatrix{entityBase: newEntityBase(ctx)}
	e.R[0], e.R[1], e.R[2] = t.Real(0), t.Real(1), t.Real(2)
	e.T[0] = t.Real(3)
	e.R[3], e.R[4], e.R[5] = t.Real(4), t.Real(5), t.Real(6)
	e.T[1] = t.Real(7)
	e.R[6], e.R[7], e.R[8] = t.Real(8), t.Real(9), t.Real(10)
	e.T[2] = t.Real(11)
	return e, nil
}

// ColorDefinition is IGES type 314: a custom color as three 0-100
// percentages of red, green, and blue, with an optional display name.
type ColorDefinition struct {
	entityBase
	Red, Green, Blue float64
	Name             string
}

func newColorDefinition(ctx *EntityContext) (Entity, error) {
	t := ctx.PD.Tokens
	e := &ColorDefinition{
		entityBase: newEntityBase(ctx),
		Red:        t.Real(0), Green: t.Real(1), Blue: t.Real(2),
		Name: t.Str(3),
	}
	return e, nil
}
