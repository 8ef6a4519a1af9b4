// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"strconv"
	"testing"
)

func TestClassifyTokenGreedyOrder(t *testing.T) {
	if v, f := classifyToken(""); f.Type != TypeString || !f.IsDefault || v.Str != "" {
		t.Fatalf("blank token: got %+v %+v, want default String", v, f)
	}
	if v, _ := classifyToken("3HFoo"); v.Type != TypeString || v.Str != "Foo" {
		t.Fatalf("Hollerith token: got %+v, want String Foo", v)
	}
	if v, _ := classifyToken("42"); v.Type != TypeInteger || v.Int != 42 {
		t.Fatalf("integer token: got %+v, want Integer 42", v)
	}
	if v, _ := classifyToken("1.5"); v.Type != TypeReal {
		t.Fatalf("real token: got %+v, want Real", v)
	}
}

func TestParseRawPDBasic(t *testing.T) {
	pd, err := ParseRawPD("100,0.,0.,0.,2.,0.,-2.,0.;", 1, 1, ',', ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pd.EntityType != 100 {
		t.Fatalf("got EntityType %d, want 100", pd.EntityType)
	}
	if pd.Tokens.Len() != 7 {
		t.Fatalf("got %d tokens, want 7", pd.Tokens.Len())
	}
	if got := pd.Tokens.At(3).Value.Real; got != 2 {
		t.Fatalf("token[3] = %v, want 2", got)
	}
}

func TestParseRawPDRejectsEmptyRecord(t *testing.T) {
	if _, err := ParseRawPD(";", 1, 1, ',', ';'); err == nil {
		t.Fatal("expected error: a record with no entity-type token")
	}
}

func TestEmitRawPDBackPointerAndSuffix(t *testing.T) {
	pd, err := ParseRawPD("100,0.,0.,0.,2.,0.,-2.,0.;", 5, 1, ',', ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := EmitRawPD(pd, pd.TokenStrings(), ',', ';', 1)
	if len(lines) == 0 {
		t.Fatal("expected at least one output line")
	}
	for i, l := range lines {
		if len(l) != 80 {
			t.Fatalf("line %d is %d bytes, want 80", i, len(l))
		}
		backPointer := l[64:72]
		if backPointer != "       5" {
			t.Errorf("line %d back-pointer = %q, want right-justified 5", i, backPointer)
		}
		suffix := l[72:]
		want := "P" + padLeft7(strconv.Itoa(i+1))
		if suffix != want {
			t.Errorf("line %d suffix = %q, want %q", i, suffix, want)
		}
	}
}

func TestRawPDTokenStringsRoundTrip(t *testing.T) {
	pd, err := ParseRawPD("100,0.,0.,0.,2.,0.,-2.,0.;", 1, 1, ',', ';')
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	toks := pd.TokenStrings()
	if toks[0] != "100" {
		t.Fatalf("TokenStrings()[0] = %q, want 100", toks[0])
	}
	if len(toks) != 8 {
		t.Fatalf("got %d tokens (incl. entity type), want 8", len(toks))
	}
}
