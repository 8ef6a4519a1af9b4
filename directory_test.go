// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"strconv"
	"testing"
)

func deField(n int) string {
	if n == 0 {
		return "        "
	}
	s := strconv.Itoa(n)
	for len(s) < deFieldWidth {
		s = " " + s
	}
	return s
}

func blankDEField() string { return "        " }

func buildDELines(seq int) (Line, Line) {
	line1Data := deField(100) + deField(1) + blankDEField() + blankDEField() +
		blankDEField() + blankDEField() + blankDEField() + blankDEField() + "00000100"
	line2Data := deField(100) + blankDEField() + blankDEField() + deField(1) +
		blankDEField() + blankDEField() + blankDEField() + "LABEL   " + blankDEField()

	l1 := Line{Text: makeLine(line1Data, 'D', seq), Section: SectionDirectory, Sequence: seq, LineNo: seq}
	l2 := Line{Text: makeLine(line2Data, 'D', seq+1), Section: SectionDirectory, Sequence: seq + 1, LineNo: seq + 1}
	return l1, l2
}

func TestParseDirectoryEntryRoundTrip(t *testing.T) {
	l1, l2 := buildDELines(1)
	de, err := ParseDirectoryEntry(l1, l2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if de.EntityType != 100 || de.ParameterDataPointer != 1 {
		t.Fatalf("got %+v", de)
	}
	if de.EntityLabel != "LABEL" {
		t.Fatalf("got EntityLabel %q, want LABEL", de.EntityLabel)
	}
	if de.Status.Use != Annotation {
		t.Fatalf("got Use %v, want Annotation", de.Status.Use)
	}

	line1, line2 := de.Emit(de.ParameterDataPointer, de.ParameterLineCount)
	if len(line1) != 80 || len(line2) != 80 {
		t.Fatalf("Emit lines must be 80 bytes, got %d/%d", len(line1), len(line2))
	}
	reparsed, err := ParseDirectoryEntry(
		Line{Text: line1, Section: SectionDirectory, Sequence: 1},
		Line{Text: line2, Section: SectionDirectory, Sequence: 2},
	)
	if err != nil {
		t.Fatalf("re-parse error: %v", err)
	}
	if reparsed.EntityLabel != de.EntityLabel || reparsed.EntityType != de.EntityType {
		t.Fatalf("round trip mismatch: got %+v, want %+v", reparsed, de)
	}
}

func TestDirectoryEntryEmitZeroPadsSequenceSuffix(t *testing.T) {
	l1, l2 := buildDELines(1)
	de, err := ParseDirectoryEntry(l1, l2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line1, line2 := de.Emit(1, 1)
	if got := line1[len(line1)-8:]; got != "D0000001" {
		t.Errorf("line1 suffix = %q, want zero-padded D0000001", got)
	}
	if got := line2[len(line2)-8:]; got != "D0000002" {
		t.Errorf("line2 suffix = %q, want zero-padded D0000002", got)
	}
}

func TestParseDirectoryEntryRejectsMismatchedSequence(t *testing.T) {
	l1, l2 := buildDELines(1)
	l2.Sequence = 5
	if _, err := ParseDirectoryEntry(l1, l2); err == nil {
		t.Fatal("expected error for a non-consecutive DE line pair")
	}
}

func TestParseDirectoryEntryRejectsMismatchedEntityType(t *testing.T) {
	l1, l2 := buildDELines(1)
	line2Data := deField(110) + blankDEField() + blankDEField() + deField(1) +
		blankDEField() + blankDEField() + blankDEField() + "LABEL   " + blankDEField()
	l2.Text = makeLine(line2Data, 'D', l2.Sequence)
	if _, err := ParseDirectoryEntry(l1, l2); err == nil {
		t.Fatal("expected error for Entity Type differing between the two DE lines")
	}
}

func TestValidateDEStrictTable(t *testing.T) {
	l1, l2 := buildDELines(1)
	de, err := ParseDirectoryEntry(l1, l2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	de.ParameterLineCount = 1
	if err := ValidateDE(de); err != nil {
		t.Fatalf("expected a conforming type-100 DE to validate, got: %v", err)
	}

	de.ParameterLineCount = 0
	if err := ValidateDE(de); err == nil {
		t.Fatal("expected ParameterLineCount=0 to violate the ConstraintPositive rule for type 100")
	}
}

func TestValidateDEUncheckedTypePasses(t *testing.T) {
	de := &DirectoryEntry{EntityType: 999999, ParameterLineCount: 1}
	if err := ValidateDE(de); err != nil {
		t.Fatalf("an entity type absent from the strict table must not be rejected, got: %v", err)
	}
}
