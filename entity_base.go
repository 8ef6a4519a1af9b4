// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

// entityBase factors the bookkeeping every concrete Entity needs: its DE
// record, its full parameter vector, and the subset of parameter indices
// that carry pointer values, tracked so ResolveReference/GetReferencedIDs
// have something to operate on without each entity reimplementing the
// same scan.
type entityBase struct {
	de         *DirectoryEntry
	id         EntityID
	params     *ParameterVector
	pointerIdx []int // indices into params that are TypePointer.
	refs       []EntityID
}

func newEntityBase(ctx *EntityContext) entityBase {
	b := entityBase{de: ctx.DE, id: ctx.ID, params: ctx.PD.Tokens}
	for i, p := range ctx.PD.Tokens.All() {
		if p.Value.Type == TypePointer {
			b.pointerIdx = append(b.pointerIdx, i)
		}
	}
	b.refs = make([]EntityID, len(b.pointerIdx))
	return b
}

func (b *entityBase) GetType() int                   { return b.de.EntityType }
func (b *entityBase) GetFormNumber() int              { return b.de.FormNumber }
func (b *entityBase) GetID() EntityID                 { return b.id }
func (b *entityBase) GetDE() *DirectoryEntry          { return b.de }
func (b *entityBase) GetParameters() *ParameterVector { return b.params }

// GetReferencedIDs returns the resolved identifier for each pointer-typed
// parameter, in parameter order (spec.md §4.7).
func (b *entityBase) GetReferencedIDs() []EntityID { return b.refs }

// ResolveReference sets the idx'th pointer reference (idx indexes
// GetReferencedIDs' result, not the raw parameter vector).
func (b *entityBase) ResolveReference(idx int, id EntityID) {
	if idx >= 0 && idx < len(b.refs) {
		b.refs[idx] = id
	}
}

// resolvePointers walks every pointer-typed parameter and resolves it
// through toID, recording a DataFormatError (without aborting the scan)
// for the first dangling reference encountered.
func (b *entityBase) resolvePointers(toID func(sequenceNumber int) (EntityID, bool)) error {
	var firstErr error
	for i, paramIdx := range b.pointerIdx {
		seq := b.params.Int(paramIdx)
		if seq == 0 {
			continue // a zero pointer value means "not referenced".
		}
		id, ok := toID(abs(seq))
		if !ok {
			if firstErr == nil {
				firstErr = &DataFormatError{Message: "pointer references a sequence number absent from the Directory Entry list"}
			}
			continue
		}
		b.refs[i] = id
	}
	return firstErr
}

// reinterpretAsPointer recasts the token at idx from its provisionally
// classified type to Pointer, preserving its numeric value and sign
// format (spec.md §4.6 "the typed entity constructor is free to
// reinterpret each token with its declared type").
func reinterpretAsPointer(pv *ParameterVector, idx int) {
	p := pv.At(idx)
	p.Value.Type = TypePointer
	p.Format.Type = TypePointer
	pv.Set(idx, p)
}

// reinterpretRangeAsPointers reinterprets count consecutive tokens
// starting at start, e.g. an associativity or property pointer list.
func reinterpretRangeAsPointers(pv *ParameterVector, start, count int) {
	for i := start; i < start+count && i < pv.Len(); i++ {
		reinterpretAsPointer(pv, i)
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// ToRawPD regenerates the wire-level record from the live parameter
// vector (spec.md §4.8 step 2). Concrete entities that mutate fields
// outside of GetParameters should override this.
func (b *entityBase) ToRawPD() *RawPD {
	return &RawPD{
		EntityType:   b.de.EntityType,
		DEPointer:    b.de.SequenceNumber,
		FirstLineSeq: b.de.ParameterDataPointer,
		Tokens:       b.params,
	}
}

// Validate reports no defect. No concrete entity type overrides it, so
// structural invariants such as a NURBS curve's knot-vector
// monotonicity are not checked.
func (b *entityBase) Validate() error { return nil }

// baseRef lets generic code (Resolve's pointer-resolution pass) reach the
// embedded entityBase of any concrete entity without a type switch over
// the registry.
func (b *entityBase) baseRef() *entityBase { return b }
