// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"os"
	"path/filepath"
)

// buildMinimalModel returns an IntermediateModel with one Circular Arc
// entity, suitable as a seed fixture for round-trip and fuzz tests
// (spec.md §8 scenario 1).
func buildMinimalModel() *IntermediateModel {
	global := NewDefaultGlobalRecord()

	de := &DirectoryEntry{
		EntityType:           100,
		ParameterDataPointer: 1,
		SequenceNumber:       1,
		IsDefault:            [10]bool{true, true, true, true, true, true, true, true, true, true},
	}

	tokens := []Param{
		{Value: Value{Type: TypeReal, Real: 0}, Format: ValueFormat{Type: TypeReal, HasIntegerPart: true, HasFractionPart: false}},
		{Value: Value{Type: TypeReal, Real: 0}, Format: ValueFormat{Type: TypeReal, HasIntegerPart: true, HasFractionPart: false}},
		{Value: Value{Type: TypeReal, Real: 0}, Format: ValueFormat{Type: TypeReal, HasIntegerPart: true, HasFractionPart: false}},
		{Value: Value{Type: TypeReal, Real: 2}, Format: ValueFormat{Type: TypeReal, HasIntegerPart: true, HasFractionPart: false}},
		{Value: Value{Type: TypeReal, Real: 0}, Format: ValueFormat{Type: TypeReal, HasIntegerPart: true, HasFractionPart: false}},
		{Value: Value{Type: TypeReal, Real: -2}, Format: ValueFormat{Type: TypeReal, HasIntegerPart: true, HasFractionPart: false}},
		{Value: Value{Type: TypeReal, Real: 0}, Format: ValueFormat{Type: TypeReal, HasIntegerPart: true, HasFractionPart: false}},
	}

	pd := &RawPD{EntityType: 100, DEPointer: 1, FirstLineSeq: 1, Tokens: NewParameterVector(tokens)}

	return &IntermediateModel{
		StartText:        "Minimal seed file",
		Global:           global,
		DirectoryEntries: []*DirectoryEntry{de},
		ParameterData:    []*RawPD{pd},
	}
}

// minimalSeedIGES serialises buildMinimalModel through the real writer so
// fixture bytes always match the codec's own emission rules exactly.
func minimalSeedIGES() string {
	dir, err := os.MkdirTemp("", "iges-seed-*")
	if err != nil {
		return ""
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "seed.igs")
	if err := WriteIntermediate(buildMinimalModel(), path); err != nil {
		return ""
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return ""
	}
	return string(data)
}
