// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"fmt"
	"strings"
	"testing"
)

// makeLine renders one 80-column physical line: data padded/truncated to
// 72 bytes, followed by the section letter and a 7-digit zero-padded
// sequence number.
func makeLine(data string, section byte, seq int) string {
	for len(data) < 72 {
		data += " "
	}
	return data[:72] + string(section) + fmt.Sprintf("%07d", seq)
}

func minimalValidLines() []string {
	return []string{
		makeLine("Start text", 'S', 1),
		makeLine(strings.Repeat(",", 25)+";", 'G', 1),
		makeLine("100,1,1,1,0,0,0,0,000000000001,0,1,0,0,00000000", 'D', 1),
		makeLine("100,0,1,1,1,2HOK,0,0D0000001D0000001D0000001D1", 'D', 2),
		makeLine("100,0.,0.,0.,2.,0.,-2.,0.;", 'P', 1),
		makeLine("S0000001G0000001D0000002P0000001", 'T', 1),
	}
}

func TestNewLineStreamAcceptsMinimalFile(t *testing.T) {
	data := []byte(strings.Join(minimalValidLines(), "\n") + "\n")
	ls, err := NewLineStream(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var got int
	for {
		if _, ok := ls.Next(); !ok {
			break
		}
		got++
	}
	if got != 6 {
		t.Fatalf("got %d lines, want 6", got)
	}
}

func TestNewLineStreamRejectsShortLine(t *testing.T) {
	lines := minimalValidLines()
	lines[0] = lines[0][:70]
	data := []byte(strings.Join(lines, "\n") + "\n")
	if _, err := NewLineStream(data); err == nil {
		t.Fatal("expected error for a line shorter than 80 bytes")
	}
}

func TestNewLineStreamRejectsEmptyFile(t *testing.T) {
	if _, err := NewLineStream([]byte{}); err == nil {
		t.Fatal("expected error for an empty file")
	}
}

func TestNewLineStreamRejectsOutOfOrderSection(t *testing.T) {
	lines := minimalValidLines()
	// Splice a Global-section line back in after the Directory section has
	// already started; a section kind may only ever advance, never revert.
	lines = append(lines[:3], append([]string{makeLine(strings.Repeat(",", 25)+";", 'G', 2)}, lines[3:]...)...)
	data := []byte(strings.Join(lines, "\n") + "\n")
	if _, err := NewLineStream(data); err == nil {
		t.Fatal("expected error for an out-of-order section transition")
	}
}

func TestNewLineStreamRejectsNonConsecutiveSequence(t *testing.T) {
	lines := minimalValidLines()
	lines[3] = makeLine("100,0,1,1,1,2HOK,0,0D0000001D0000001D0000001D1", 'D', 5)
	data := []byte(strings.Join(lines, "\n") + "\n")
	if _, err := NewLineStream(data); err == nil {
		t.Fatal("expected error for a non-consecutive sequence number")
	}
}

func TestNewLineStreamRejectsMissingTerminate(t *testing.T) {
	lines := minimalValidLines()[:5]
	data := []byte(strings.Join(lines, "\n") + "\n")
	if _, err := NewLineStream(data); err == nil {
		t.Fatal("expected error for a file with no Terminate section")
	}
}

func TestNewLineStreamRejectsCompressedForm(t *testing.T) {
	lines := minimalValidLines()
	lines[0] = makeLine("compressed flag", 'C', 1)
	data := []byte(strings.Join(lines, "\n") + "\n")
	if _, err := NewLineStream(data); err == nil {
		t.Fatal("expected the compressed form (Flag section) to be rejected as not implemented")
	}
}

func TestLineStreamPeekDoesNotConsume(t *testing.T) {
	data := []byte(strings.Join(minimalValidLines(), "\n") + "\n")
	ls, err := NewLineStream(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first, ok := ls.Peek()
	if !ok {
		t.Fatal("expected a line")
	}
	again, ok := ls.Peek()
	if !ok || again.LineNo != first.LineNo {
		t.Fatal("Peek must not advance the stream")
	}
	next, ok := ls.Next()
	if !ok || next.LineNo != first.LineNo {
		t.Fatal("Next must return the same line Peek saw")
	}
}

func TestDetectTerminatorVariants(t *testing.T) {
	cases := map[string]string{
		"a\nb":   "\n",
		"a\r\nb": "\r\n",
		"a\rb":   "\r",
	}
	for input, want := range cases {
		got, err := detectTerminator([]byte(input))
		if err != nil {
			t.Fatalf("detectTerminator(%q): %v", input, err)
		}
		if got != want {
			t.Errorf("detectTerminator(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestLineDataTruncatesAtSectionColumn(t *testing.T) {
	l := Line{Text: makeLine("hello", 'G', 1)}
	if got := l.Data(100); len(got) != sectionCharColumn {
		t.Fatalf("Data(100) returned %d bytes, want %d", len(got), sectionCharColumn)
	}
}
