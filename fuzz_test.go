// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"os"
	"path/filepath"
	"testing"
)

// FuzzReadIntermediate feeds arbitrary byte strings through the full
// reader pipeline (line codec, free-format parser, Global/DE/PD
// decoding). It only asserts that no input makes the reader panic; it
// does not check which error kind malformed input returns, nor anything
// about well-formed input beyond "doesn't crash", since a
// fuzzer-mutated valid file is no longer expected to stay valid.
func FuzzReadIntermediate(f *testing.F) {
	f.Add([]byte(minimalSeedIGES()))
	f.Add([]byte(""))
	f.Add([]byte("garbage"))

	f.Fuzz(func(t *testing.T, data []byte) {
		dir := t.TempDir()
		path := filepath.Join(dir, "fuzz.igs")
		if err := os.WriteFile(path, data, 0o644); err != nil {
			t.Skip()
		}
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("ReadIntermediate panicked on fuzz input: %v", r)
			}
		}()
		_, _ = ReadIntermediate(path, &Options{})
	})
}

// FuzzLexRecord exercises the free-format tokenizer directly against
// arbitrary data and delimiter choices.
func FuzzLexRecord(f *testing.F) {
	f.Add([]byte("1,2,3;"), byte(','), byte(';'))
	f.Add([]byte("1H+,2H-;"), byte(','), byte(';'))

	f.Fuzz(func(t *testing.T, data []byte, paramDelim, recordDelim byte) {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("LexRecord panicked: %v", r)
			}
		}()
		_, _ = LexRecord(string(data), paramDelim, recordDelim)
	})
}
