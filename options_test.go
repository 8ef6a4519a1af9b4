// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import "testing"

func TestOptionsNilSafeDefaults(t *testing.T) {
	var o *Options
	if o.strict() {
		t.Fatal("nil Options must report non-strict")
	}
	if o.saveUnsupported() {
		t.Fatal("nil Options must report no SaveUnsupported")
	}
	if got := o.nonce("fallback"); got != "fallback" {
		t.Fatalf("got %q, want fallback", got)
	}
	if o.recorder() != nil {
		t.Fatal("nil Options must yield a nil recorder")
	}
	if o.logger() == nil {
		t.Fatal("nil Options must still yield a usable logger")
	}
}

func TestOptionsNonceOverride(t *testing.T) {
	o := &Options{SessionNonce: "custom"}
	if got := o.nonce("fallback"); got != "custom" {
		t.Fatalf("got %q, want custom", got)
	}
}

func TestDefaultOptionsIsUsable(t *testing.T) {
	o := defaultOptions()
	if o.strict() || o.saveUnsupported() {
		t.Fatal("default Options must be non-strict and not save Unsupported entities")
	}
}
