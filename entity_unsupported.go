// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

// Unsupported stands in for any entity type (or type/form pair) this
// module has no concrete implementation for. It preserves the raw token
// list verbatim so the record round-trips intact (spec.md §3 "Entity
// object", §8 scenario 4).
type Unsupported struct {
	entityBase
}

func newUnsupported(ctx *EntityContext) (Entity, error) {
	return &Unsupported{entityBase: newEntityBase(ctx)}, nil
}
