// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

// IGESMetadata is a quick-glance summary of a resolved model, handy for
// a CLI dumper or a catalog indexer that doesn't want to walk the full
// entity graph itself (SPEC_FULL.md SUPPLEMENTED FEATURES).
type IGESMetadata struct {
	ProductID   string
	Author      string
	Units       UnitsFlag
	UnitsName   string
	Version     VersionFlag
	EntityCount int
	EntityTypeCounts map[int]int
	UnsupportedCount int
	UnresolvedReferenceCount int
}

// Summarize walks a ResolvedModel once and tallies its entity
// population, without mutating the model.
func Summarize(m *ResolvedModel) IGESMetadata {
	meta := IGESMetadata{
		ProductID: m.Global.ProductID.Value.Str,
		Author:    m.Global.Author.Value.Str,
		Units:     m.Global.UnitsFlag(),
		UnitsName: m.Global.UnitsName.Value.Str,
		Version:   m.Global.VersionFlag(),
		EntityTypeCounts: make(map[int]int),
	}

	for _, e := range m.Entities() {
		meta.EntityCount++
		meta.EntityTypeCounts[e.GetType()]++
		if _, ok := e.(*Unsupported); ok {
			meta.UnsupportedCount++
		}
	}
	meta.UnresolvedReferenceCount = len(m.UnresolvedReferences())

	return meta
}
