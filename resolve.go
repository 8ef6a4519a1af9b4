// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

// ResolvedModel is a map from entity identifier to entity object, plus
// the global record and start text (spec.md §3 "Resolved model").
type ResolvedModel struct {
	StartText string
	Global    *GlobalRecord
	entities  map[EntityID]Entity
	order     []EntityID // construction order, for deterministic iteration/writing.
	bySeq     map[int]EntityID
	ids       *IDGenerator
}

// Entities returns every resolved entity in construction order.
func (m *ResolvedModel) Entities() []Entity {
	out := make([]Entity, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, m.entities[id])
	}
	return out
}

// Lookup returns the entity named by id, if any.
func (m *ResolvedModel) Lookup(id EntityID) (Entity, bool) {
	e, ok := m.entities[id]
	return e, ok
}

// UnresolvedReferences returns every identifier referenced by some
// entity but never constructed (spec.md §4.7 "on request, computes the
// inverse", SPEC_FULL.md "SUPPLEMENTED FEATURES"). Resolve fails with a
// DataFormatError on a pointer to an absent DE record, so for a model
// returned by Resolve this list is empty.
func (m *ResolvedModel) UnresolvedReferences() []EntityID {
	var out []EntityID
	for _, id := range m.order {
		for _, ref := range m.entities[id].GetReferencedIDs() {
			if ref.IsZero() {
				continue
			}
			if _, ok := m.entities[ref]; !ok {
				out = append(out, ref)
			}
		}
	}
	return out
}

// Release drops every identifier this model holds back to the
// generator (spec.md §3 "Lifecycles").
func (m *ResolvedModel) Release() {
	for _, id := range m.order {
		m.ids.Release(id)
	}
}

// Resolve constructs a ResolvedModel from an IntermediateModel using the
// two-pass algorithm of spec.md §4.7: pass 1 reserves one identifier per
// DE record keyed by sequence number; pass 2 invokes the entity factory
// with the resulting pointer-to-id map, once per record in DE order.
// Forward references need no deferral, since every pointer target is
// reserved up front in pass 1. A parameter-count overrun fails with a
// DataFormatError whether or not strict is set; strict only adds the DE
// field-validation table.
func Resolve(model *IntermediateModel, ids *IDGenerator, strict bool) (*ResolvedModel, error) {
	if err := model.Validate(); err != nil {
		return nil, err
	}

	bySeq := make(map[int]EntityID, len(model.DirectoryEntries))
	for _, de := range model.DirectoryEntries {
		bySeq[de.SequenceNumber] = ids.Reserve(de.SequenceNumber)
	}

	toID := func(seq int) (EntityID, bool) {
		id, ok := bySeq[seq]
		return id, ok
	}

	rm := &ResolvedModel{
		StartText: model.StartText,
		Global:    model.Global,
		entities:  make(map[EntityID]Entity, len(model.DirectoryEntries)),
		bySeq:     bySeq,
		ids:       ids,
	}

	for i, de := range model.DirectoryEntries {
		if strict {
			if err := ValidateDE(de); err != nil {
				return nil, err
			}
		}
		pd := model.ParameterData[i]

		if _, _, _, err := GetParameterPartition(de.EntityType, pd.Tokens.All()); err != nil {
			return nil, err
		}

		id := bySeq[de.SequenceNumber]
		ctx := &EntityContext{DE: de, PD: pd, IDs: ids, ID: id, PointerToID: toID}

		entity, err := BuildEntity(ctx)
		if err != nil {
			return nil, err
		}

		base := entityReflectBase(entity)
		if base != nil {
			if err := base.resolvePointers(toID); err != nil {
				return nil, err
			}
		}

		ids.Promote(id)
		rm.entities[id] = entity
		rm.order = append(rm.order, id)
	}

	return rm, nil
}

// entityReflectBase extracts the *entityBase embedded in every concrete
// Entity implementation, so Resolve can drive pointer resolution
// generically without a type switch over every registered entity.
func entityReflectBase(e Entity) *entityBase {
	type baseHolder interface {
		baseRef() *entityBase
	}
	if bh, ok := e.(baseHolder); ok {
		return bh.baseRef()
	}
	return nil
}
