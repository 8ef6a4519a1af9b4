// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

func init() {
	registerPartition(102, compositeCurvePartition)
	registerEntity(102, 0, newCompositeCurve)

	registerPartition(112, parametricSplinePartition)
	registerEntity(112, 0, newParametricSplineCurve)

	registerPartition(126, rationalBSplineCurvePartition)
	for form := 0; form <= 5; form++ {
		registerEntity(126, form, newRationalBSplineCurve)
	}
}

func requireTokens(tokens []Param, n int) error {
	if len(tokens) < n {
		return &DataFormatError{Message: "entity has fewer tokens than its header requires"}
	}
	return nil
}

func intAt(tokens []Param, i int) int { return int(tokens[i].Value.Int) }

// compositeCurvePartition: N (count of constituent curves) followed by N
// pointers (spec.md §8 scenario 3).
func compositeCurvePartition(tokens []Param) (int, error) {
	if err := requireTokens(tokens, 1); err != nil {
		return 0, err
	}
	n := intAt(tokens, 0)
	if n < 0 {
		return 0, &DataFormatError{Message: "Composite Curve constituent count must be non-negative"}
	}
	return 1 + n, nil
}

// CompositeCurve is IGES type 102: an ordered sequence of curves treated
// as a single logical curve (spec.md §8 scenario 3).
type CompositeCurve struct {
	entityBase
}

func newCompositeCurve(ctx *EntityContext) (Entity, error) {
	n := intAt(ctx.PD.Tokens.All(), 0)
	reinterpretRangeAsPointers(ctx.PD.Tokens, 1, n)
	return &CompositeCurve{entityBase: newEntityBase(ctx)}, nil
}

// parametricSplinePartition: CTYPE, H, NDIM, N (segment count), then N+1
// breakpoints and 12 coefficients per segment.
func parametricSplinePartition(tokens []Param) (int, error) {
	if err := requireTokens(tokens, 4); err != nil {
		return 0, err
	}
	n := intAt(tokens, 3)
	if n < 0 {
		return 0, &DataFormatError{Message: "Parametric Spline Curve segment count must be non-negative"}
	}
	return 4 + (n + 1) + 12*n, nil
}

// ParametricSplineCurve is IGES type 112: a piecewise polynomial curve in
// up to 3 dimensions, stored per-segment as its cubic coefficients.
type ParametricSplineCurve struct {
	entityBase
	CurveType, Continuity, Dimension int
	Breakpoints                      []float64
	SegmentCoefficients              [][12]float64
}

func newParametricSplineCurve(ctx *EntityContext) (Entity, error) {
	t := ctx.PD.Tokens
	n := intAt(t.All(), 3)
	e := &ParametricSplineCurve{
		entityBase: newEntityBase(ctx),
		CurveType:  intAt(t.All(), 0), Continuity: intAt(t.All(), 1), Dimension: intAt(t.All(), 2),
	}
	idx := 4
	for i := 0; i <= n; i++ {
		e.Breakpoints = append(e.Breakpoints, t.Real(idx))
		idx++
	}
	for s := 0; s < n; s++ {
		var coeffs [12]float64
		for k := 0; k < 12; k++ {
			coeffs[k] = t.Real(idx)
			idx++
		}
		e.SegmentCoefficients = append(e.SegmentCoefficients, coeffs)
	}
	return e, nil
}

// rationalBSplineCurvePartition follows the conventional IGES 126 layout:
// K (degree), M (upper control-point index), 4 form flags, M+K+2 knots,
// M+1 weights, 3*(M+1) control-point coordinates, a 2-value parameter
// range, and a 3-value normal vector (spec.md §8 scenario 2).
func rationalBSplineCurvePartition(tokens []Param) (int, error) {
	if err := requireTokens(tokens, 2); err != nil {
		return 0, err
	}
	k, m := intAt(tokens, 0), intAt(tokens, 1)
	if k < 0 || m < 0 {
		return 0, &DataFormatError{Message: "Rational B-Spline Curve degree/index must be non-negative"}
	}
	total := 2 + 4 + (m + k + 2) + (m + 1) + 3*(m+1) + 2 + 3
	return total, nil
}

// RationalBSplineCurve is IGES type 126: a NURBS curve (spec.md §8
// scenario 2).
type RationalBSplineCurve struct {
	entityBase
	Degree, UpperIndex int
	Planar, Closed, Rational, Periodic bool
	Knots                              []float64
	Weights                            []float64
	ControlPoints                      [][3]float64
	ParameterRange                     [2]float64
	Normal                             [3]float64
}

func newRationalBSplineCurve(ctx *EntityContext) (Entity, error) {
	t := ctx.PD.Tokens
	k, m := intAt(t.All(), 0), intAt(t.All(), 1)
	e := &RationalBSplineCurve{
		entityBase: newEntityBase(ctx),
		Degree:     k, UpperIndex: m,
		Planar: t.Int(2) != 0, Closed: t.Int(3) != 0, Rational: t.Int(4) != 0, Periodic: t.Int(5) != 0,
	}
	idx := 6
	nKnots := m + k + 2
	for i := 0; i < nKnots; i++ {
		e.Knots = append(e.Knots, t.Real(idx))
		idx++
	}
	for i := 0; i <= m; i++ {
		e.Weights = append(e.Weights, t.Real(idx))
		idx++
	}
	for i := 0; i <= m; i++ {
		e.ControlPoints = append(e.ControlPoints, [3]float64{t.Real(idx), t.Real(idx + 1), t.Real(idx + 2)})
		idx += 3
	}
	e.ParameterRange[0], e.ParameterRange[1] = t.Real(idx), t.Real(idx+1)
	idx += 2
	e.Normal[0], e.Normal[1], e.Normal[2] = t.Real(idx), t.Real(idx+1), t.Real(idx+2)
	return e, nil
}
