// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"reflect"
	"strings"
	"testing"
)

func TestLexRecordSimple(t *testing.T) {
	got, err := LexRecord("1,2,3;", ',', ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1", "2", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

// A trailing blank field before the record delimiter must still surface
// as an empty token, not be silently swallowed.
func TestLexRecordTrailingBlankField(t *testing.T) {
	got, err := LexRecord("1,2,;", ',', ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"1", "2", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexRecordLeadingBlankField(t *testing.T) {
	got, err := LexRecord(",2,3;", ',', ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"", "2", "3"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexRecordHollerithPayloadHidesDelimiters(t *testing.T) {
	got, err := LexRecord("3H,;,,2;", ',', ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"3H,;,", "2"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestLexRecordMissingRecordDelimiter(t *testing.T) {
	if _, err := LexRecord("1,2,3", ',', ';'); err == nil {
		t.Fatal("expected error: record delimiter missing")
	}
}

func TestEmitFreeFormatRoundTrip(t *testing.T) {
	tokens := []string{"1", "2", "3"}
	lines := EmitFreeFormat(tokens, ',', ';', 10)
	joined := strings.TrimRight(strings.Join(lines, ""), " ")
	if joined != "1,2,3;" {
		t.Fatalf("got %q, want %q", joined, "1,2,3;")
	}
	for _, l := range lines {
		if len(l) != 10 {
			t.Fatalf("line %q is %d bytes, want 10", l, len(l))
		}
	}
}

func TestEmitFreeFormatNeverSplitsHollerithPrefix(t *testing.T) {
	tokens := []string{"9", "12Hhello world!"}
	lines := EmitFreeFormat(tokens, ',', ';', 6)
	for i, l := range lines {
		trimmed := strings.TrimRight(l, " ")
		if idx, ok := isHollerithToken(trimmed); ok {
			if len(trimmed) < idx {
				t.Fatalf("line %d (%q) splits the Hollerith length prefix", i, l)
			}
		}
	}
	joined := strings.TrimRight(strings.Join(lines, ""), " ")
	if joined != "9,12Hhello world!;" {
		t.Fatalf("got %q", joined)
	}
}

func TestIsHollerithToken(t *testing.T) {
	if idx, ok := isHollerithToken("5HHello"); !ok || idx != 2 {
		t.Fatalf("got idx=%d ok=%v, want idx=2 ok=true", idx, ok)
	}
	if _, ok := isHollerithToken("42"); ok {
		t.Fatal("a bare integer token must not be mistaken for Hollerith")
	}
	if _, ok := isHollerithToken("H5"); ok {
		t.Fatal("a token with no leading digit run must not be mistaken for Hollerith")
	}
}
