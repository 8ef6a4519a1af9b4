// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import "strconv"

// deFieldWidth is the column width of each of the 8 data fields packed
// into a Directory Entry line (spec.md §4.5).
const deFieldWidth = 8

// defaultableFieldOrder lists, in bitmap order, the 10 DE fields that
// may be defaulted (spec.md §3 "DE record"): Structure, Line Font
// Pattern, Level, View, Transformation Matrix, Label Display
// Associativity, Line Weight, Color Number, Form Number, Entity Label.
var defaultableFieldOrder = [10]string{
	"Structure", "LineFontPattern", "Level", "View",
	"TransformationMatrix", "LabelDisplayAssoc",
	"LineWeight", "ColorNumber", "FormNumber", "EntityLabel",
}

// Defaultable field bitmap indices.
const (
	defStructure = iota
	defLineFontPattern
	defLevel
	defView
	defTransformationMatrix
	defLabelDisplayAssoc
	defLineWeight
	defColorNumber
	defFormNumber
	defEntityLabel
)

// DirectoryEntry is a parsed, two-physical-line DE record (spec.md §3
// "DE record").
type DirectoryEntry struct {
	EntityType            int
	ParameterDataPointer   int
	Structure              int // integer-or-pointer: negative means pointer.
	LineFontPattern         int
	Level                   int
	View                    int
	TransformationMatrix    int
	LabelDisplayAssoc       int
	Status                  StatusNumber
	SequenceNumber          int // odd, 1-based DE sequence number (line 1).
	LineWeight              int
	ColorNumber             int // negative means pointer to a Color Definition entity.
	ParameterLineCount      int
	FormNumber              int
	EntityLabel             string
	Subscript               int
	IsDefault               [10]bool
}

func parseDEIntField(text string, fieldName string, hasDefault bool) (int, bool, error) {
	v, f, err := ParseInteger(text, hasDefault, 0)
	if err != nil {
		return 0, false, &TypeConversionError{Message: fieldName + ": " + err.Error()}
	}
	return int(v.Int), f.IsDefault, nil
}

// ParseDirectoryEntry parses a DE record from its two physical lines.
func ParseDirectoryEntry(line1, line2 Line) (*DirectoryEntry, error) {
	if line1.Section != SectionDirectory || line2.Section != SectionDirectory {
		return nil, &SectionFormatError{Line: line1.LineNo, Message: "Directory Entry record requires two Directory-section lines"}
	}
	if line2.Sequence != line1.Sequence+1 {
		return nil, &SectionFormatError{Line: line2.LineNo, Message: "Directory Entry's second line must follow the first"}
	}

	field := func(line Line, slot int) string {
		start := slot * deFieldWidth
		return line.Text[start : start+deFieldWidth]
	}

	de := &DirectoryEntry{}
	var err error

	entityType1, _, err := parseDEIntField(field(line1, 0), "EntityType", false)
	if err != nil {
		return nil, err
	}
	de.EntityType = entityType1

	pdPointer, _, err := parseDEIntField(field(line1, 1), "ParameterDataPointer", false)
	if err != nil {
		return nil, err
	}
	de.ParameterDataPointer = pdPointer

	if de.Structure, de.IsDefault[defStructure], err = parseDEIntField(field(line1, 2), "Structure", true); err != nil {
		return nil, err
	}
	if de.LineFontPattern, de.IsDefault[defLineFontPattern], err = parseDEIntField(field(line1, 3), "LineFontPattern", true); err != nil {
		return nil, err
	}
	if de.Level, de.IsDefault[defLevel], err = parseDEIntField(field(line1, 4), "Level", true); err != nil {
		return nil, err
	}
	if de.View, de.IsDefault[defView], err = parseDEIntField(field(line1, 5), "View", true); err != nil {
		return nil, err
	}
	if de.TransformationMatrix, de.IsDefault[defTransformationMatrix], err = parseDEIntField(field(line1, 6), "TransformationMatrix", true); err != nil {
		return nil, err
	}
	if de.LabelDisplayAssoc, de.IsDefault[defLabelDisplayAssoc], err = parseDEIntField(field(line1, 7), "LabelDisplayAssoc", true); err != nil {
		return nil, err
	}

	status, err := ParseStatusNumber(field(line1, 8))
	if err != nil {
		return nil, err
	}
	de.Status = status
	de.SequenceNumber = line1.Sequence

	entityType2, _, err := parseDEIntField(field(line2, 0), "EntityType (line 2)", false)
	if err != nil {
		return nil, err
	}
	if entityType2 != de.EntityType {
		return nil, &DataFormatError{Message: "Entity Type differs between the DE record's two lines"}
	}

	if de.LineWeight, de.IsDefault[defLineWeight], err = parseDEIntField(field(line2, 1), "LineWeight", true); err != nil {
		return nil, err
	}
	if de.ColorNumber, de.IsDefault[defColorNumber], err = parseDEIntField(field(line2, 2), "ColorNumber", true); err != nil {
		return nil, err
	}

	plCount, _, err := parseDEIntField(field(line2, 3), "ParameterLineCount", false)
	if err != nil {
		return nil, err
	}
	de.ParameterLineCount = plCount

	if de.FormNumber, de.IsDefault[defFormNumber], err = parseDEIntField(field(line2, 4), "FormNumber", true); err != nil {
		return nil, err
	}
	// Fields 16/17 (line 2, slots 5/6) are reserved and ignored.

	labelField := field(line2, 7)
	trimmedLabel := trimASCIISpaces(labelField)
	de.EntityLabel = trimmedLabel
	de.IsDefault[defEntityLabel] = trimmedLabel == ""

	subscript, _, err := parseDEIntField(field(line2, 8), "Subscript", true)
	if err != nil {
		return nil, err
	}
	de.Subscript = subscript

	return de, nil
}

// Emit renders the DE record back to its two 80-byte physical lines.
// pdPointer, parameterLineCount are supplied by the writer so they stay
// consistent with the actually-written PD record (spec.md §4.5 (ii)).
func (de *DirectoryEntry) Emit(pdPointer, parameterLineCount int) (string, string) {
	pad8 := func(n int) string {
		s := strconv.Itoa(n)
		if len(s) > deFieldWidth {
			s = s[len(s)-deFieldWidth:]
		}
		for len(s) < deFieldWidth {
			s = " " + s
		}
		return s
	}
	padLeft := func(s string, width int) string {
		if len(s) > width {
			return s[:width]
		}
		for len(s) < width {
			s = " " + s
		}
		return s
	}
	padRight := func(s string, width int) string {
		if len(s) > width {
			return s[:width]
		}
		for len(s) < width {
			s += " "
		}
		return s
	}
	blankOrInt := func(isDefault bool, n int) string {
		if isDefault {
			return padLeft("", deFieldWidth)
		}
		return pad8(n)
	}

	seqSuffix := func(seq int) string {
		s := strconv.Itoa(seq)
		for len(s) < 7 {
			s = "0" + s
		}
		return s
	}

	line1 := pad8(de.EntityType) +
		pad8(pdPointer) +
		blankOrInt(de.IsDefault[defStructure], de.Structure) +
		blankOrInt(de.IsDefault[defLineFontPattern], de.LineFontPattern) +
		blankOrInt(de.IsDefault[defLevel], de.Level) +
		blankOrInt(de.IsDefault[defView], de.View) +
		blankOrInt(de.IsDefault[defTransformationMatrix], de.TransformationMatrix) +
		blankOrInt(de.IsDefault[defLabelDisplayAssoc], de.LabelDisplayAssoc) +
		de.Status.Emit() +
		"D" + seqSuffix(de.SequenceNumber)

	line2 := pad8(de.EntityType) +
		blankOrInt(de.IsDefault[defLineWeight], de.LineWeight) +
		blankOrInt(de.IsDefault[defColorNumber], de.ColorNumber) +
		pad8(parameterLineCount) +
		blankOrInt(de.IsDefault[defFormNumber], de.FormNumber) +
		padLeft("", deFieldWidth) + // reserved
		padLeft("", deFieldWidth) + // reserved
		func() string {
			if de.IsDefault[defEntityLabel] {
				return padRight("", deFieldWidth)
			}
			return padRight(de.EntityLabel, deFieldWidth)
		}() +
		pad8(de.Subscript) +
		"D" + seqSuffix(de.SequenceNumber+1)

	return line1, line2
}
