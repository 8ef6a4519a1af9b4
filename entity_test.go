// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import "testing"

func TestGetParameterPartitionFixedCount(t *testing.T) {
	tokens := []Param{realParam(1), realParam(2), realParam(3), realParam(4), realParam(5), realParam(6), realParam(7)}
	nEntity, nAssoc, nProps, err := GetParameterPartition(100, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nEntity != 7 || nAssoc != 0 || nProps != 0 {
		t.Fatalf("got (%d, %d, %d), want (7, 0, 0)", nEntity, nAssoc, nProps)
	}
}

func TestGetParameterPartitionWithTrailingCounts(t *testing.T) {
	tokens := []Param{
		realParam(1), realParam(2), realParam(3), realParam(4), realParam(5), realParam(6), realParam(7),
		intParam(0), // associativity count: none
		intParam(0), // property count: none
	}
	nEntity, nAssoc, nProps, err := GetParameterPartition(100, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nEntity != 7 || nAssoc != 1 || nProps != 1 {
		t.Fatalf("got (%d, %d, %d), want (7, 1, 1)", nEntity, nAssoc, nProps)
	}
}

func TestGetParameterPartitionUnregisteredTypeTreatsAllAsEntity(t *testing.T) {
	tokens := []Param{realParam(1), realParam(2)}
	nEntity, nAssoc, nProps, err := GetParameterPartition(999999, tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if nEntity != 2 || nAssoc != 0 || nProps != 0 {
		t.Fatalf("got (%d, %d, %d), want (2, 0, 0)", nEntity, nAssoc, nProps)
	}
}

func TestGetParameterPartitionOverrunErrors(t *testing.T) {
	tokens := []Param{realParam(1), realParam(2)}
	if _, _, _, err := GetParameterPartition(100, tokens); err == nil {
		t.Fatal("expected error: fewer tokens than the fixed parameter count requires")
	}
}

func TestBuildEntityFallsBackToUnsupported(t *testing.T) {
	de := &DirectoryEntry{EntityType: 777777, FormNumber: 0, SequenceNumber: 1}
	pd := &RawPD{EntityType: 777777, DEPointer: 1, FirstLineSeq: 1, Tokens: NewParameterVector([]Param{intParam(1), intParam(2)})}
	ids := NewIDGenerator("test")
	ctx := &EntityContext{DE: de, PD: pd, IDs: ids, ID: ids.Reserve(1)}

	entity, err := BuildEntity(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := entity.(*Unsupported); !ok {
		t.Fatalf("got %T, want *Unsupported", entity)
	}
	if entity.GetType() != 777777 {
		t.Fatalf("got type %d, want 777777", entity.GetType())
	}
}

func TestBuildEntityDispatchesRegisteredType(t *testing.T) {
	de := &DirectoryEntry{EntityType: 100, FormNumber: 0, SequenceNumber: 1}
	pd := &RawPD{EntityType: 100, DEPointer: 1, FirstLineSeq: 1, Tokens: NewParameterVector([]Param{
		realParam(0), realParam(0), realParam(0), realParam(2), realParam(0), realParam(-2), realParam(0),
	})}
	ids := NewIDGenerator("test")
	ctx := &EntityContext{DE: de, PD: pd, IDs: ids, ID: ids.Reserve(1)}

	entity, err := BuildEntity(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	arc, ok := entity.(*CircularArc)
	if !ok {
		t.Fatalf("got %T, want *CircularArc", entity)
	}
	if arc.StartX != 2 || arc.EndX != -2 {
		t.Fatalf("got %+v", arc)
	}
}

func TestEntityToRawPDRoundTrip(t *testing.T) {
	de := &DirectoryEntry{EntityType: 100, FormNumber: 0, SequenceNumber: 1, ParameterDataPointer: 1}
	pd := &RawPD{EntityType: 100, DEPointer: 1, FirstLineSeq: 1, Tokens: NewParameterVector([]Param{
		realParam(0), realParam(0), realParam(0), realParam(2), realParam(0), realParam(-2), realParam(0),
	})}
	ids := NewIDGenerator("test")
	ctx := &EntityContext{DE: de, PD: pd, IDs: ids, ID: ids.Reserve(1)}

	entity, err := BuildEntity(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	raw := entity.ToRawPD()
	if raw.EntityType != 100 || raw.DEPointer != 1 {
		t.Fatalf("got %+v", raw)
	}
	if raw.Tokens.Len() != 7 {
		t.Fatalf("got %d tokens, want 7", raw.Tokens.Len())
	}
}
