// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"strconv"
	"strings"
)

// deBackPointerColumn is the 0-based start of the 8-byte DE back-pointer
// field packed into columns 65-72 of a Parameter Data line (spec.md
// §4.3).
const deBackPointerColumn = 64

// SectionReader is the stateful pull parser C4 names: it drives a
// LineStream one section at a time, with one line of lookahead, so each
// Read*Section call either consumes the next record of its kind or
// reports the section exhausted without disturbing the stream for a
// different section's reader (spec.md §4.4).
type SectionReader struct {
	lines *LineStream
}

// NewSectionReader wraps an already-validated LineStream.
func NewSectionReader(lines *LineStream) *SectionReader {
	return &SectionReader{lines: lines}
}

// ReadStartSection consumes every physical Start-section line, if the
// stream is currently positioned at one, and returns their data columns
// joined by newlines. ok is false (with no error) if the stream isn't
// positioned at a Start line, e.g. because the Start section is already
// exhausted or hasn't been reached yet.
func (r *SectionReader) ReadStartSection() (string, bool, error) {
	line, ok := r.lines.Peek()
	if !ok || line.Section != SectionStart {
		return "", false, nil
	}
	var parts []string
	for {
		line, ok := r.lines.Peek()
		if !ok || line.Section != SectionStart {
			break
		}
		r.lines.Next()
		parts = append(parts, strings.TrimRight(line.Data(sectionCharColumn), " "))
	}
	return strings.Join(parts, "\n"), true, nil
}

// ReadGlobalSection consumes every physical Global-section line and
// parses the free-format Global record they carry.
func (r *SectionReader) ReadGlobalSection() (*GlobalRecord, bool, error) {
	line, ok := r.lines.Peek()
	if !ok || line.Section != SectionGlobal {
		return nil, false, nil
	}
	var data strings.Builder
	for {
		line, ok := r.lines.Peek()
		if !ok || line.Section != SectionGlobal {
			break
		}
		r.lines.Next()
		data.WriteString(line.Data(sectionCharColumn))
	}
	g, err := ParseGlobalRecord(data.String())
	if err != nil {
		return nil, true, err
	}
	return g, true, nil
}

// ReadDirectoryEntryRecord consumes the next two physical Directory-
// section lines and parses the DE record they carry.
func (r *SectionReader) ReadDirectoryEntryRecord() (*DirectoryEntry, bool, error) {
	line1, ok := r.lines.Peek()
	if !ok || line1.Section != SectionDirectory {
		return nil, false, nil
	}
	r.lines.Next()
	line2, ok := r.lines.Next()
	if !ok || line2.Section != SectionDirectory {
		return nil, true, &SectionFormatError{
			Line:    line1.LineNo,
			Message: "Directory Entry record is missing its second line",
		}
	}
	de, err := ParseDirectoryEntry(line1, line2)
	if err != nil {
		return nil, true, err
	}
	return de, true, nil
}

// ReadParameterDataRecord consumes as many physical Parameter-section
// lines as the free-format record needs, stopping as soon as the
// accumulated data area yields a complete token stream terminated by
// recordDelim (spec.md §4.3, §4.6): it tries to lex after each line is
// appended and only pulls another line when the attempt fails for lack
// of a record delimiter or because a String token's payload continues
// past the data read so far.
func (r *SectionReader) ReadParameterDataRecord(paramDelim, recordDelim byte) (*RawPD, bool, error) {
	first, ok := r.lines.Peek()
	if !ok || first.Section != SectionParameter {
		return nil, false, nil
	}

	var data strings.Builder
	dePointer, err := parsePDBackPointer(first)
	if err != nil {
		return nil, true, err
	}
	firstLineSeq := first.Sequence

	for {
		line, ok := r.lines.Peek()
		if !ok || line.Section != SectionParameter {
			return nil, true, &SectionFormatError{
				Line:    first.LineNo,
				Message: "Parameter Data record has no record delimiter before the section ends",
			}
		}
		thisPointer, err := parsePDBackPointer(line)
		if err != nil {
			return nil, true, err
		}
		if thisPointer != dePointer {
			return nil, true, &SectionFormatError{
				Line:    line.LineNo,
				Message: "Parameter Data line's DE back-pointer changed mid-record",
			}
		}
		r.lines.Next()
		data.WriteString(line.Data(parameterDataWidth))

		pd, err := ParseRawPD(data.String(), dePointer, firstLineSeq, paramDelim, recordDelim)
		if err == nil {
			return pd, true, nil
		}
		if !isRecordDelimiterMissing(err) && !isStringTokenTruncated(err) {
			return nil, true, err
		}
		// Another line's worth of data is needed; loop and pull it.
	}
}

func parsePDBackPointer(line Line) (int, error) {
	field := trimASCIISpaces(line.Text[deBackPointerColumn:sectionCharColumn])
	v, _, err := ParseInteger(field, false, 0)
	if err != nil {
		return 0, &TypeConversionError{Message: "Parameter Data DE back-pointer: " + err.Error()}
	}
	return int(v.Int), nil
}

func isRecordDelimiterMissing(err error) bool {
	sfe, ok := err.(*SectionFormatError)
	return ok && strings.Contains(sfe.Message, "record delimiter missing")
}

func isStringTokenTruncated(err error) bool {
	sfe, ok := err.(*SectionFormatError)
	return ok && strings.Contains(sfe.Message, "String token length exceeds remaining bytes")
}

// ReadTerminateSection consumes the single Terminate-section line and
// parses its four zero-padded section line counts.
func (r *SectionReader) ReadTerminateSection() (TerminateCounts, bool, error) {
	line, ok := r.lines.Peek()
	if !ok || line.Section != SectionTerminate {
		return TerminateCounts{}, false, nil
	}
	r.lines.Next()

	// Each of the 4 fields is a section-letter followed by a 7-digit
	// zero-padded count, packed 8 bytes each (spec.md §4.8 step 6).
	field := func(slot int, want byte) (int, error) {
		start := slot * deFieldWidth
		raw := line.Text[start : start+deFieldWidth]
		if raw[0] != want {
			return 0, &SectionFormatError{
				Line:    line.LineNo,
				Message: "Terminate section field " + string(want) + " has the wrong section letter",
			}
		}
		n, err := strconv.Atoi(raw[1:deFieldWidth])
		if err != nil {
			return 0, &TypeConversionError{Message: "Terminate section count: " + err.Error()}
		}
		return n, nil
	}

	var counts TerminateCounts
	var err error
	if counts.StartLines, err = field(0, 'S'); err != nil {
		return TerminateCounts{}, true, err
	}
	if counts.GlobalLines, err = field(1, 'G'); err != nil {
		return TerminateCounts{}, true, err
	}
	if counts.DirectoryLines, err = field(2, 'D'); err != nil {
		return TerminateCounts{}, true, err
	}
	if counts.ParameterLines, err = field(3, 'P'); err != nil {
		return TerminateCounts{}, true, err
	}
	return counts, true, nil
}
