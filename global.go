// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import "strings"

// UnitsFlag is the Global record's model-space unit system (spec.md §3
// "Global record").
type UnitsFlag int32

// Units-flag values, in the order IGES 5.3 assigns them.
const (
	UnitsInch       UnitsFlag = 1
	UnitsMillimeter UnitsFlag = 2
	UnitsCustom     UnitsFlag = 3 // the unit name is spelled out in field 15.
	UnitsFoot       UnitsFlag = 4
	UnitsMile       UnitsFlag = 5
	UnitsMeter      UnitsFlag = 6
	UnitsKilometer  UnitsFlag = 7
	UnitsMil        UnitsFlag = 8
	UnitsMicron     UnitsFlag = 9
	UnitsCentimeter UnitsFlag = 10
	UnitsMicroInch  UnitsFlag = 11
)

var unitsAbbreviation = map[UnitsFlag]string{
	UnitsInch: "IN", UnitsMillimeter: "MM", UnitsFoot: "FT", UnitsMile: "MI",
	UnitsMeter: "M", UnitsKilometer: "KM", UnitsMil: "MIL", UnitsMicron: "MICRON",
	UnitsCentimeter: "CM", UnitsMicroInch: "UIN",
}

// VersionFlag is the Global record's declared originating-spec version.
type VersionFlag int32

// Version-flag values: the 11 spec revisions IGES 5.3 enumerates,
// preceded by an unused zero value.
const (
	versionUnused VersionFlag = iota
	Version1_0
	Version2_0
	Version3_0
	Version4_0
	Version4_1
	Version5_0
	Version5_1
	Version5_2
	Version5_3
	Version6_0
	VersionANS
)

// DraftingStandardFlag is the Global record's referenced drafting
// standard, if any.
type DraftingStandardFlag int32

// Drafting-standard-flag values: "none" plus the 7 named standards.
const (
	DraftingNone DraftingStandardFlag = iota
	DraftingISO
	DraftingAFNOR
	DraftingANSI
	DraftingBSI
	DraftingCSA
	DraftingDIN
	DraftingJIS
)

// delimiterForbidden reports whether b may not be used as a custom
// parameter or record delimiter (spec.md §3 "Global record").
func delimiterForbidden(b byte) bool {
	if b <= 0x20 || b == 0x7f {
		return true
	}
	switch b {
	case '+', '-', '.', 'D', 'E', 'd', 'e', 'H', 'h':
		return true
	}
	return isDigitByte(b)
}

// GlobalRecord is the typed carrier for the 26 Global parameters (spec.md
// §3 "Global record", §4.4 C5). Every non-delimiter field is stored as a
// Param (value, format) pair so round-trip formatting survives a
// read/write cycle unchanged.
type GlobalRecord struct {
	ParamDelim          byte
	ParamDelimIsDefault bool
	RecordDelim         byte
	RecordDelimIsDefault bool

	ProductID            Param
	FileName             Param
	NativeSystemID       Param
	PreprocessorVersion  Param
	IntegerBitWidth      Param
	SingleExpMax         Param
	SingleDigits         Param
	DoubleExpMax         Param
	DoubleDigits         Param
	ReceivingSystemID    Param
	ModelSpaceScale      Param
	UnitsFlagField       Param
	UnitsName            Param
	LineWeightGradations Param
	MaxLineWeight        Param
	GenerationDatetime   Param
	MinResolution        Param
	MaxCoordinate        Param
	Author               Param
	AuthorOrganization   Param
	VersionFlagField     Param
	DraftingStandardField Param
	ModifiedDatetime     Param
	ProtocolIdentifier   Param
}

// UnitsFlag returns the typed units-flag value.
func (g *GlobalRecord) UnitsFlag() UnitsFlag { return UnitsFlag(g.UnitsFlagField.Value.Int) }

// VersionFlag returns the typed version-flag value.
func (g *GlobalRecord) VersionFlag() VersionFlag { return VersionFlag(g.VersionFlagField.Value.Int) }

// DraftingStandardFlag returns the typed drafting-standard-flag value.
func (g *GlobalRecord) DraftingStandardFlag() DraftingStandardFlag {
	return DraftingStandardFlag(g.DraftingStandardField.Value.Int)
}

// globalDataWidth is the data-area column width of Start and Global
// section lines (spec.md §4.3).
const globalDataWidth = 72

func resolveDelimiterField(data string, defaultChar byte) (value byte, isDefault bool, consumed int, err error) {
	total, terr := stringTokenLength(data)
	if terr != nil {
		return 0, false, 0, terr
	}
	if total < 0 {
		// Blank/defaulted: zero bytes consumed, the default applies.
		return defaultChar, true, 0, nil
	}
	v, _, perr := ParseString(data[:total])
	if perr != nil {
		return 0, false, 0, perr
	}
	if len(v.Str) != 1 {
		return 0, false, 0, &SectionFormatError{Message: "Global delimiter declaration must be exactly one character"}
	}
	b := v.Str[0]
	if delimiterForbidden(b) {
		return 0, false, 0, &SectionFormatError{Message: "Global delimiter character is not permitted: " + string(b)}
	}
	return b, false, total, nil
}

// ParseGlobalRecord parses the concatenated, suffix-stripped data area of
// the Global section (spec.md §4.3, §4.4). It performs the delimiter
// bootstrap: fields 1 and 2 are read without knowing the eventual
// delimiter, because a Hollerith token's length prefix (or its absence,
// signalling a default) locates the very next byte as the real
// delimiter, whatever character it turns out to be.
func ParseGlobalRecord(data string) (*GlobalRecord, error) {
	paramDelim, paramIsDefault, n1, err := resolveDelimiterField(data, ',')
	if err != nil {
		return nil, err
	}
	pos := n1
	if pos >= len(data) {
		return nil, &SectionFormatError{Message: "Global section truncated while reading parameter-delimiter field"}
	}
	if data[pos] != paramDelim {
		return nil, &SectionFormatError{Message: "malformed Global delimiter declaration: field 1 not followed by its own delimiter"}
	}
	pos++

	recordDelim, recordIsDefault, n2, err := resolveDelimiterField(data[pos:], ';')
	if err != nil {
		return nil, err
	}
	pos += n2
	if pos >= len(data) {
		return nil, &SectionFormatError{Message: "Global section truncated while reading record-delimiter field"}
	}
	if data[pos] != paramDelim {
		return nil, &SectionFormatError{Message: "malformed Global delimiter declaration: field 2 not followed by the parameter delimiter"}
	}
	pos++

	tokens, err := LexRecord(data[pos:], paramDelim, recordDelim)
	if err != nil {
		return nil, err
	}
	if len(tokens) != 24 {
		return nil, &SectionFormatError{Message: "Global section must declare exactly 24 parameters after the delimiters"}
	}

	g := &GlobalRecord{
		ParamDelim: paramDelim, ParamDelimIsDefault: paramIsDefault,
		RecordDelim: recordDelim, RecordDelimIsDefault: recordIsDefault,
	}

	str := func(tok string) (Param, error) {
		v, f, err := ParseString(tok)
		if err != nil {
			return Param{}, err
		}
		return Param{Value: v, Format: f}, nil
	}
	integer := func(tok string, def int32) (Param, error) {
		v, f, err := ParseInteger(tok, true, def)
		if err != nil {
			return Param{}, err
		}
		return Param{Value: v, Format: f}, nil
	}
	real := func(tok string, def float64) (Param, error) {
		v, f, err := ParseReal(tok, true, def)
		if err != nil {
			return Param{}, err
		}
		return Param{Value: v, Format: f}, nil
	}

	var perr error
	set := func(dst *Param, p Param, e error) {
		*dst = p
		if e != nil && perr == nil {
			perr = e
		}
	}

	set(&g.ProductID, str(tokens[0]))
	set(&g.FileName, str(tokens[1]))
	set(&g.NativeSystemID, str(tokens[2]))
	set(&g.PreprocessorVersion, str(tokens[3]))
	set(&g.IntegerBitWidth, integer(tokens[4], 32))
	set(&g.SingleExpMax, integer(tokens[5], 38))
	set(&g.SingleDigits, integer(tokens[6], 6))
	set(&g.DoubleExpMax, integer(tokens[7], 308))
	set(&g.DoubleDigits, integer(tokens[8], 15))
	set(&g.ReceivingSystemID, str(tokens[9]))
	set(&g.ModelSpaceScale, real(tokens[10], 1.0))
	set(&g.UnitsFlagField, integer(tokens[11], int32(UnitsInch)))
	set(&g.UnitsName, str(tokens[12]))
	set(&g.LineWeightGradations, integer(tokens[13], 1))
	set(&g.MaxLineWeight, real(tokens[14], 0.0))
	set(&g.GenerationDatetime, str(tokens[15]))
	set(&g.MinResolution, real(tokens[16], 1e-6))
	set(&g.MaxCoordinate, real(tokens[17], 0.0))
	set(&g.Author, str(tokens[18]))
	set(&g.AuthorOrganization, str(tokens[19]))
	set(&g.VersionFlagField, integer(tokens[20], int32(Version5_3)))
	set(&g.DraftingStandardField, integer(tokens[21], int32(DraftingNone)))
	set(&g.ModifiedDatetime, str(tokens[22]))
	set(&g.ProtocolIdentifier, str(tokens[23]))
	if perr != nil {
		return nil, perr
	}
	if g.UnitsFlag() == UnitsCustom {
		return nil, &NotImplementedError{Message: "units flag 3 (unit named in Global parameter 15) is not supported"}
	}

	if g.ReceivingSystemID.Format.IsDefault {
		g.ReceivingSystemID.Value.Str = g.ProductID.Value.Str
	}
	if g.UnitsName.Format.IsDefault {
		if abbr, ok := unitsAbbreviation[g.UnitsFlag()]; ok {
			g.UnitsName.Value.Str = abbr
		}
	}

	return g, nil
}

// Emit renders the Global record back to its free-format token stream
// and wraps it into 72-byte-wide lines (spec.md §4.8 step 4).
func (g *GlobalRecord) Emit() []string {
	delimToken := func(b, def byte, isDefault bool) string {
		if isDefault && b == def {
			return ""
		}
		return "1H" + string(b)
	}

	tokens := []string{
		delimToken(g.ParamDelim, ',', g.ParamDelimIsDefault),
		delimToken(g.RecordDelim, ';', g.RecordDelimIsDefault),
		EmitString(g.ProductID.Value, g.ProductID.Format),
		EmitString(g.FileName.Value, g.FileName.Format),
		EmitString(g.NativeSystemID.Value, g.NativeSystemID.Format),
		EmitString(g.PreprocessorVersion.Value, g.PreprocessorVersion.Format),
		EmitInteger(g.IntegerBitWidth.Value, g.IntegerBitWidth.Format),
		EmitInteger(g.SingleExpMax.Value, g.SingleExpMax.Format),
		EmitInteger(g.SingleDigits.Value, g.SingleDigits.Format),
		EmitInteger(g.DoubleExpMax.Value, g.DoubleExpMax.Format),
		EmitInteger(g.DoubleDigits.Value, g.DoubleDigits.Format),
		EmitString(g.ReceivingSystemID.Value, g.ReceivingSystemID.Format),
		EmitReal(g.ModelSpaceScale.Value, g.ModelSpaceScale.Format),
		EmitInteger(g.UnitsFlagField.Value, g.UnitsFlagField.Format),
		EmitString(g.UnitsName.Value, g.UnitsName.Format),
		EmitInteger(g.LineWeightGradations.Value, g.LineWeightGradations.Format),
		EmitReal(g.MaxLineWeight.Value, g.MaxLineWeight.Format),
		EmitString(g.GenerationDatetime.Value, g.GenerationDatetime.Format),
		EmitReal(g.MinResolution.Value, g.MinResolution.Format),
		EmitReal(g.MaxCoordinate.Value, g.MaxCoordinate.Format),
		EmitString(g.Author.Value, g.Author.Format),
		EmitString(g.AuthorOrganization.Value, g.AuthorOrganization.Format),
		EmitInteger(g.VersionFlagField.Value, g.VersionFlagField.Format),
		EmitInteger(g.DraftingStandardField.Value, g.DraftingStandardField.Format),
		EmitString(g.ModifiedDatetime.Value, g.ModifiedDatetime.Format),
		EmitString(g.ProtocolIdentifier.Value, g.ProtocolIdentifier.Format),
	}

	return EmitFreeFormat(tokens, g.ParamDelim, g.RecordDelim, globalDataWidth)
}

// NewDefaultGlobalRecord returns a GlobalRecord populated entirely with
// spec defaults, suitable as a starting point for programmatic model
// construction (spec.md §6 "Numeric limits").
func NewDefaultGlobalRecord() *GlobalRecord {
	data := strings.Repeat(",", 25) + ";"
	g, err := ParseGlobalRecord(data)
	if err != nil {
		// The all-default record is constructed from a fixed literal and
		// must always parse; a failure here is a self-consistency bug.
		panic(&ImplementationError{Message: "default Global record failed to parse: " + err.Error()})
	}
	return g
}
