// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"

	"github.com/fatih/color"

	iges "github.com/igesio/iges-go"
)

// runRoundtrip reads path and re-writes it, either alongside the input
// (default, suffixed ".out") or into outputDirFlag, to exercise Read and
// Write against the same file in one invocation.
func runRoundtrip(path string) error {
	opts := &iges.Options{Strict: strictFlag, SaveUnsupported: saveUnsupportedFlag}
	rm, err := iges.Read(path, opts)
	if err != nil {
		return err
	}

	out := path + ".out"
	if outputDirFlag != "" {
		out = filepath.Join(outputDirFlag, filepath.Base(path))
	}
	if err := iges.Write(rm, out, opts); err != nil {
		return err
	}

	msg := fmt.Sprintf("wrote %s", out)
	if colorized() {
		msg = color.CyanString(msg)
	}
	fmt.Println(msg)
	return nil
}
