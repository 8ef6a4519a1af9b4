// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import "testing"

func TestParseIntegerDefault(t *testing.T) {
	v, f, err := ParseInteger("  ", true, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Int != 7 || !f.IsDefault {
		t.Fatalf("got %+v %+v, want default value 7", v, f)
	}
}

func TestParseIntegerNoDefault(t *testing.T) {
	if _, _, err := ParseInteger("", false, 0); err == nil {
		t.Fatal("expected error for blank field with no default")
	}
}

func TestParseIntegerRoundTrip(t *testing.T) {
	cases := []string{"42", "-17", "+5"}
	for _, c := range cases {
		v, f, err := ParseInteger(c, false, 0)
		if err != nil {
			t.Fatalf("ParseInteger(%q): %v", c, err)
		}
		got := EmitInteger(v, f)
		if got != c {
			t.Errorf("ParseInteger(%q) round-trip = %q", c, got)
		}
	}
}

func TestParsePointerMagnitude(t *testing.T) {
	if _, _, err := ParsePointer("100000000", false, 0); err == nil {
		t.Fatal("expected magnitude error")
	}
	v, _, err := ParsePointer("-99999999", false, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Type != TypePointer {
		t.Fatalf("expected TypePointer, got %v", v.Type)
	}
}

func TestParseRealRoundTrip(t *testing.T) {
	cases := []string{"1.5", "-2.", ".25", "1.5E+2", "3.14D-10"}
	for _, c := range cases {
		v, f, err := ParseReal(c, false, 0)
		if err != nil {
			t.Fatalf("ParseReal(%q): %v", c, err)
		}
		got := EmitReal(v, f)
		if got != c {
			t.Errorf("ParseReal(%q) round-trip = %q", c, got)
		}
	}
}

func TestParseRealMissingDecimalPoint(t *testing.T) {
	if _, _, err := ParseReal("42", false, 0); err == nil {
		t.Fatal("expected error: Real token requires a decimal point")
	}
}

func TestParseRealUnderflow(t *testing.T) {
	if _, _, err := ParseReal("1.D-400", false, 0); err == nil {
		t.Fatal("expected underflow error")
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	v, f, err := ParseString("5HHello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Str != "Hello" {
		t.Fatalf("got %q, want Hello", v.Str)
	}
	if got := EmitString(v, f); got != "5HHello" {
		t.Errorf("round-trip = %q", got)
	}
}

func TestParseStringLengthMismatch(t *testing.T) {
	if _, _, err := ParseString("5HHi"); err == nil {
		t.Fatal("expected length-mismatch error")
	}
}

func TestParseLogical(t *testing.T) {
	v, _, err := ParseLogical("TRUE", false, false)
	if err != nil || !v.Bool {
		t.Fatalf("got %+v, %v", v, err)
	}
	v2, _, err := ParseLogical("0", false, false)
	if err != nil || v2.Bool {
		t.Fatalf("got %+v, %v", v2, err)
	}
}

func TestValueFormatEqualIgnoresIrrelevantFields(t *testing.T) {
	a := ValueFormat{Type: TypeInteger, IsDefault: false, HasPlusSign: false}
	b := ValueFormat{Type: TypeInteger, IsDefault: false, HasPlusSign: false, HasExponent: true}
	if !a.Equal(b) {
		t.Fatal("Integer format equality should ignore Real-only fields")
	}
}
