// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import "fmt"

// Error taxonomy (spec.md §7). Every failure the reader or writer can
// raise is one of these kinds. Kinds that can report a precise location
// carry it; kinds that can't (e.g. a missing file) don't pretend to.

// FileOpenError is returned when the path is missing, not a regular
// file, or the writer failed to create parent directories / write bytes.
type FileOpenError struct {
	Path string
	Err  error
}

func (e *FileOpenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("FileOpenError: %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("FileOpenError: %s", e.Path)
}

func (e *FileOpenError) Unwrap() error { return e.Err }

// LineFormatError is returned when a physical line violates the
// column-width or terminator discipline.
type LineFormatError struct {
	Line    int // 1-based
	Message string
}

func (e *LineFormatError) Error() string {
	return fmt.Sprintf("LineFormatError: line %d: %s", e.Line, e.Message)
}

// SectionFormatError is returned when section ordering, sequence
// numbering, or a free-format record's delimiter discipline is violated.
type SectionFormatError struct {
	Line    int // 1-based, 0 if not line-specific
	Message string
}

func (e *SectionFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("SectionFormatError: line %d: %s", e.Line, e.Message)
	}
	return fmt.Sprintf("SectionFormatError: %s", e.Message)
}

// TypeConversionError is returned when a scalar lexeme fails to parse,
// including numeric underflow and a required-but-blank field.
type TypeConversionError struct {
	Line    int // 1-based, 0 if not line-specific
	Column  int // 1-based, 0 if not column-specific
	Message string
}

func (e *TypeConversionError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("TypeConversionError: line %d col %d: %s", e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("TypeConversionError: line %d: %s", e.Line, e.Message)
	default:
		return fmt.Sprintf("TypeConversionError: %s", e.Message)
	}
}

// DataFormatError is returned when strict DE validation fails, when
// declared parameter counts overrun the token stream, when a PD record's
// DE back-pointer has no matching DE, or when DE sequence numbers fail
// the odd-progression invariant on write.
type DataFormatError struct {
	Record  int // 0-based index of the offending DE/PD record, -1 if n/a
	Message string
}

func (e *DataFormatError) Error() string {
	if e.Record >= 0 {
		return fmt.Sprintf("DataFormatError: record %d: %s", e.Record, e.Message)
	}
	return fmt.Sprintf("DataFormatError: %s", e.Message)
}

// NotImplementedError is returned for input this module recognizes but
// deliberately does not support, principally the compressed IGES form.
type NotImplementedError struct {
	Message string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("NotImplementedError: %s", e.Message)
}

// ImplementationError indicates a self-consistency assertion failed: a
// bug in this module, not a malformed file.
type ImplementationError struct {
	Message string
}

func (e *ImplementationError) Error() string {
	return fmt.Sprintf("ImplementationError: %s", e.Message)
}
