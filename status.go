// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import "strconv"

// BlankStatus is the first field of a Status Number.
type BlankStatus int

// Blank-status values.
const (
	Visible BlankStatus = 0
	Hidden  BlankStatus = 1
)

// SubordinateSwitch is the second field of a Status Number.
type SubordinateSwitch int

// Subordinate-switch values.
const (
	Independent         SubordinateSwitch = 0
	PhysicallyDependent SubordinateSwitch = 1
	LogicallyDependent  SubordinateSwitch = 2
	Both                SubordinateSwitch = 3
)

// UseFlag is the third field of a Status Number.
type UseFlag int

// Use-flag values.
const (
	Geometry           UseFlag = 0
	Annotation         UseFlag = 1
	Definition         UseFlag = 2
	Other              UseFlag = 3
	LogicalPosition    UseFlag = 4
	ParametricXY       UseFlag = 5
	StructuralGeometry UseFlag = 6
)

// Hierarchy is the fourth field of a Status Number.
type Hierarchy int

// Hierarchy values.
const (
	GlobalTopDown        Hierarchy = 0
	GlobalDefer          Hierarchy = 1
	UseHierarchyProperty Hierarchy = 2
)

// StatusNumber is the packed 4-field DE aggregate (spec.md §3 "Status
// number"): an 8-digit string on the wire, a structured value in
// memory.
type StatusNumber struct {
	Blank       BlankStatus
	Subordinate SubordinateSwitch
	Use         UseFlag
	Hierarchy   Hierarchy
}

// ParseStatusNumber parses an 8-character packed Status Number field.
// Spaces are treated as '0' (spec.md §4.5).
func ParseStatusNumber(s string) (StatusNumber, error) {
	if len(s) != 8 {
		return StatusNumber{}, &TypeConversionError{Message: "Status Number field must be 8 characters"}
	}
	pairs := [4]int{}
	for i := 0; i < 4; i++ {
		field := s[i*2 : i*2+2]
		normalized := make([]byte, 2)
		for j := 0; j < 2; j++ {
			if field[j] == ' ' {
				normalized[j] = '0'
			} else {
				normalized[j] = field[j]
			}
		}
		n, err := strconv.Atoi(string(normalized))
		if err != nil {
			return StatusNumber{}, &TypeConversionError{Message: "Status Number field is not numeric: " + field}
		}
		pairs[i] = n
	}
	return StatusNumber{
		Blank:       BlankStatus(pairs[0]),
		Subordinate: SubordinateSwitch(pairs[1]),
		Use:         UseFlag(pairs[2]),
		Hierarchy:   Hierarchy(pairs[3]),
	}, nil
}

// Emit renders the Status Number back to its 8-character packed form.
func (s StatusNumber) Emit() string {
	pad := func(n int) string {
		str := strconv.Itoa(n)
		for len(str) < 2 {
			str = "0" + str
		}
		return str
	}
	return pad(int(s.Blank)) + pad(int(s.Subordinate)) + pad(int(s.Use)) + pad(int(s.Hierarchy))
}
