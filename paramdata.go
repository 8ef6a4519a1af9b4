// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import "strconv"

// parameterDataWidth is the data-area column width of Parameter section
// lines (spec.md §4.3); columns 65-72 carry the back-pointer to the
// owning DE sequence number instead of free-format data.
const parameterDataWidth = 64

// RawPD is a parsed-but-untyped Parameter Data record (spec.md §3 "PD
// record (raw)"). The wire's leading entity-type token has already been
// stripped; Tokens holds everything after it.
type RawPD struct {
	EntityType     int
	DEPointer      int // sequence number of the owning DE record.
	FirstLineSeq   int
	Tokens         *ParameterVector
}

// classifyToken assigns a provisional scalar type to a free-format token
// using the greedy classifier C7 specifies: a Hollerith token is always
// String; otherwise try Integer, then Real, else treat it as an opaque
// LanguageStatement. A blank token is String with default (spec.md §4.6).
func classifyToken(tok string) (Value, ValueFormat) {
	if trimASCIISpaces(tok) == "" {
		return Value{Type: TypeString}, ValueFormat{Type: TypeString, IsDefault: true}
	}
	if _, ok := isHollerithToken(tok); ok {
		if v, f, err := ParseString(tok); err == nil {
			return v, f
		}
	}
	if v, f, err := ParseInteger(tok, false, 0); err == nil {
		return v, f
	}
	if v, f, err := ParseReal(tok, false, 0); err == nil {
		return v, f
	}
	v, f, _ := ParseLanguageStatement(tok)
	return v, f
}

// ParseRawPD lexes the concatenated data area of a Parameter Data record
// (spec.md §4.6). dePointer and firstLineSeq come from the section reader
// (C4), which tracks the DE back-pointer and first physical line.
func ParseRawPD(data string, dePointer, firstLineSeq int, paramDelim, recordDelim byte) (*RawPD, error) {
	tokens, err := LexRecord(data, paramDelim, recordDelim)
	if err != nil {
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &SectionFormatError{Message: "Parameter Data record has no entity-type token"}
	}

	entityType, _, err := ParseInteger(tokens[0], false, 0)
	if err != nil {
		return nil, &TypeConversionError{Message: "Parameter Data entity-type token: " + err.Error()}
	}

	params := make([]Param, 0, len(tokens)-1)
	for _, tok := range tokens[1:] {
		v, f := classifyToken(tok)
		params = append(params, Param{Value: v, Format: f})
	}

	return &RawPD{
		EntityType:   int(entityType.Int),
		DEPointer:    dePointer,
		FirstLineSeq: firstLineSeq,
		Tokens:       NewParameterVector(params),
	}, nil
}

// EmitRawPD renders the record's entity-type token and its parameters
// back into 80-byte physical lines, including the 8-byte back-pointer
// suffix in columns 65-72 and the "P"+7-digit sequence suffix in columns
// 73-80 (spec.md §4.8 step 5). firstSeq is the sequence number of this
// record's first physical line.
func EmitRawPD(pd *RawPD, tokens []string, paramDelim, recordDelim byte, firstSeq int) []string {
	dataLines := EmitFreeFormat(tokens, paramDelim, recordDelim, parameterDataWidth)
	lines := make([]string, len(dataLines))
	for i, data := range dataLines {
		backPointer := pad8Int(pd.DEPointer)
		seqSuffix := "P" + padLeft7(strconv.Itoa(firstSeq+i))
		lines[i] = data + backPointer + seqSuffix
	}
	return lines
}

func pad8Int(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 8 {
		s = " " + s
	}
	return s
}

func padLeft7(s string) string {
	for len(s) < 7 {
		s = "0" + s
	}
	return s
}

// TokenStrings renders a RawPD's entity-type and parameters back to raw
// lexeme strings, suitable as input to EmitFreeFormat.
func (pd *RawPD) TokenStrings() []string {
	out := make([]string, 0, pd.Tokens.Len()+1)
	out = append(out, strconv.Itoa(pd.EntityType))
	for _, p := range pd.Tokens.All() {
		out = append(out, emitParam(p))
	}
	return out
}

func emitParam(p Param) string {
	switch p.Value.Type {
	case TypeLogical:
		return EmitLogical(p.Value, p.Format)
	case TypeInteger:
		return EmitInteger(p.Value, p.Format)
	case TypeReal:
		return EmitReal(p.Value, p.Format)
	case TypePointer:
		return EmitPointer(p.Value, p.Format)
	case TypeString:
		return EmitString(p.Value, p.Format)
	case TypeLanguage:
		return EmitLanguageStatement(p.Value, p.Format)
	default:
		return ""
	}
}
