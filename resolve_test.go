// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import "testing"

func realParam(v float64) Param {
	return Param{Value: Value{Type: TypeReal, Real: v}, Format: ValueFormat{Type: TypeReal, HasIntegerPart: true}}
}

func intParam(v int32) Param {
	return Param{Value: Value{Type: TypeInteger, Int: v}, Format: ValueFormat{Type: TypeInteger}}
}

func buildTwoPointModel(forwardRefSeq int) *IntermediateModel {
	global := NewDefaultGlobalRecord()

	de1 := &DirectoryEntry{EntityType: 116, ParameterDataPointer: 1, SequenceNumber: 1, IsDefault: [10]bool{true, true, true, true, true, true, true, true, true, true}}
	pd1 := &RawPD{EntityType: 116, DEPointer: 1, FirstLineSeq: 1, Tokens: NewParameterVector([]Param{
		realParam(1), realParam(2), realParam(3), intParam(int32(forwardRefSeq)),
	})}

	de2 := &DirectoryEntry{EntityType: 116, ParameterDataPointer: 1, SequenceNumber: 3, IsDefault: [10]bool{true, true, true, true, true, true, true, true, true, true}}
	pd2 := &RawPD{EntityType: 116, DEPointer: 3, FirstLineSeq: 1, Tokens: NewParameterVector([]Param{
		realParam(4), realParam(5), realParam(6), intParam(0),
	})}

	return &IntermediateModel{
		StartText:        "two points",
		Global:           global,
		DirectoryEntries: []*DirectoryEntry{de1, de2},
		ParameterData:    []*RawPD{pd1, pd2},
	}
}

func TestResolveMinimalModel(t *testing.T) {
	rm, err := Resolve(buildMinimalModel(), NewIDGenerator("test"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rm.Entities()) != 1 {
		t.Fatalf("got %d entities, want 1", len(rm.Entities()))
	}
	if rm.Entities()[0].GetType() != 100 {
		t.Fatalf("got type %d, want 100", rm.Entities()[0].GetType())
	}
}

func TestResolveForwardReference(t *testing.T) {
	rm, err := Resolve(buildTwoPointModel(3), NewIDGenerator("test"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entities := rm.Entities()
	if len(entities) != 2 {
		t.Fatalf("got %d entities, want 2", len(entities))
	}
	refs := entities[0].GetReferencedIDs()
	if len(refs) != 1 {
		t.Fatalf("got %d refs, want 1", len(refs))
	}
	if refs[0].IsZero() {
		t.Fatal("forward reference to a later DE record must resolve, not stay zero")
	}
	target, ok := rm.Lookup(refs[0])
	if !ok {
		t.Fatal("resolved reference must be looked up successfully in the model")
	}
	if target.GetDE().SequenceNumber != 3 {
		t.Fatalf("resolved reference points at DE seq %d, want 3", target.GetDE().SequenceNumber)
	}
}

func TestResolveNoReference(t *testing.T) {
	rm, err := Resolve(buildTwoPointModel(0), NewIDGenerator("test"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	refs := rm.Entities()[0].GetReferencedIDs()
	if len(refs) != 1 || !refs[0].IsZero() {
		t.Fatalf("a zero pointer value must resolve to the zero EntityID, got %+v", refs)
	}
}

func TestResolveDanglingReferenceErrors(t *testing.T) {
	model := buildTwoPointModel(99) // DE sequence 99 does not exist.
	if _, err := Resolve(model, NewIDGenerator("test"), false); err == nil {
		t.Fatal("a pointer to a nonexistent DE sequence number must surface as an error")
	}
}

func TestUnresolvedReferencesEmptyForClosedGraph(t *testing.T) {
	rm, err := Resolve(buildTwoPointModel(3), NewIDGenerator("test"), false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := rm.UnresolvedReferences(); len(got) != 0 {
		t.Fatalf("got %d unresolved references, want 0", len(got))
	}
}
