// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

// Param is one (scalar value, format) pair inside a ParameterVector.
type Param struct {
	Value  Value
	Format ValueFormat
}

// ParameterVector is an ordered, random-access, size-stable sequence of
// parameters (spec.md §3 "Parameter vector").
type ParameterVector struct {
	params []Param
}

// NewParameterVector builds a ParameterVector from params, copying the
// slice so later mutation by the caller doesn't alias.
func NewParameterVector(params []Param) *ParameterVector {
	pv := &ParameterVector{params: make([]Param, len(params))}
	copy(pv.params, params)
	return pv
}

// Len returns the number of parameters.
func (pv *ParameterVector) Len() int { return len(pv.params) }

// At returns the parameter at the given 0-based index.
func (pv *ParameterVector) At(i int) Param { return pv.params[i] }

// Set overwrites the parameter at the given 0-based index.
func (pv *ParameterVector) Set(i int, p Param) { pv.params[i] = p }

// Append adds a parameter to the end of the vector.
func (pv *ParameterVector) Append(p Param) { pv.params = append(pv.params, p) }

// Slice returns the parameters in range [start, end) as plain Params,
// without copying the backing array.
func (pv *ParameterVector) Slice(start, end int) []Param { return pv.params[start:end] }

// All returns every parameter in the vector.
func (pv *ParameterVector) All() []Param { return pv.params }

// Int returns the Integer/Pointer value at i as an int.
func (pv *ParameterVector) Int(i int) int { return int(pv.params[i].Value.Int) }

// Real returns the Real value at i.
func (pv *ParameterVector) Real(i int) float64 { return pv.params[i].Value.Real }

// Str returns the String/LanguageStatement value at i.
func (pv *ParameterVector) Str(i int) string { return pv.params[i].Value.Str }

// Bool returns the Logical value at i.
func (pv *ParameterVector) Bool(i int) bool { return pv.params[i].Value.Bool }
