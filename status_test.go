// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import "testing"

func TestParseStatusNumberRoundTrip(t *testing.T) {
	s, err := ParseStatusNumber("01020300")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Blank != Hidden || s.Subordinate != LogicallyDependent || s.Use != Other || s.Hierarchy != GlobalTopDown {
		t.Fatalf("got %+v", s)
	}
	if got := s.Emit(); got != "01020300" {
		t.Errorf("Emit() = %q, want %q", got, "01020300")
	}
}

func TestParseStatusNumberBlanksAreZero(t *testing.T) {
	s, err := ParseStatusNumber("        ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Blank != Visible || s.Subordinate != Independent || s.Use != Geometry || s.Hierarchy != GlobalTopDown {
		t.Fatalf("got %+v, want all-zero", s)
	}
}

func TestParseStatusNumberWrongLength(t *testing.T) {
	if _, err := ParseStatusNumber("0102"); err == nil {
		t.Fatal("expected error for a field shorter than 8 characters")
	}
}

func TestParseStatusNumberNonNumeric(t *testing.T) {
	if _, err := ParseStatusNumber("0X020300"); err == nil {
		t.Fatal("expected error for a non-numeric pair")
	}
}
