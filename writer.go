// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"bytes"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"
)

// startDataWidth is the data-area column width of Start section lines
// (spec.md §4.3, shared with Global's 72-byte width).
const startDataWidth = 72

// libraryIdentity is burned into Global parameters 5/6 on write (spec.md
// §4.8 step 4).
const libraryIdentity = "iges-go"

// WriteIntermediate serialises model to path following the C11 algorithm
// of spec.md §4.8: DE sequence numbers must already form the 1, 3, 5, …
// progression; PD bodies are emitted first so each DE's PD-pointer and
// parameter-line-count are known when the DE lines are built.
func WriteIntermediate(model *IntermediateModel, path string) error {
	if err := model.Validate(); err != nil {
		return err
	}
	if err := validateDESequencing(model.DirectoryEntries); err != nil {
		return err
	}

	var pdBuf bytes.Buffer
	pdFirstSeq := make([]int, len(model.ParameterData))
	pdLineCount := make([]int, len(model.ParameterData))

	pdSeq := 1
	for i, pd := range model.ParameterData {
		pdFirstSeq[i] = pdSeq
		lines := EmitRawPD(pd, pd.TokenStrings(), model.Global.ParamDelim, model.Global.RecordDelim, pdSeq)
		for _, line := range lines {
			pdBuf.WriteString(line)
			pdBuf.WriteByte('\n')
			pdSeq++
		}
		pdLineCount[i] = len(lines)
	}
	pdLines := pdSeq - 1

	var deBuf bytes.Buffer
	for i, de := range model.DirectoryEntries {
		line1, line2 := de.Emit(pdFirstSeq[i], pdLineCount[i])
		deBuf.WriteString(line1)
		deBuf.WriteByte('\n')
		deBuf.WriteString(line2)
		deBuf.WriteByte('\n')
	}
	deLines := len(model.DirectoryEntries) * 2

	startLines := emitPaddedSection(model.StartText, startDataWidth)
	global := regenerateGlobal(model.Global, filepath.Base(path))
	globalLines := global.Emit()

	var out bytes.Buffer
	for i, line := range startLines {
		out.WriteString(line)
		out.WriteString("S" + sevenDigitZero(i+1))
		out.WriteByte('\n')
	}
	for i, line := range globalLines {
		out.WriteString(line)
		out.WriteString("G" + sevenDigitZero(i+1))
		out.WriteByte('\n')
	}
	out.Write(deBuf.Bytes())
	out.Write(pdBuf.Bytes())

	termData := emitTerminate(TerminateCounts{
		StartLines:     len(startLines),
		GlobalLines:    len(globalLines),
		DirectoryLines: deLines,
		ParameterLines: pdLines,
	})
	out.WriteString(termData)
	out.WriteString("T" + sevenDigitZero(1))
	out.WriteByte('\n')

	return writeFileCreatingDirs(path, out.Bytes())
}

// Write resolves rm's entities back into an IntermediateModel and writes
// it, dropping Unsupported entities unless opts.SaveUnsupported is set
// (spec.md §4.8).
func Write(rm *ResolvedModel, path string, opts *Options) error {
	model := buildIntermediateForWrite(rm, opts)
	if err := WriteIntermediate(model, path); err != nil {
		return err
	}
	rec := opts.recorder()
	for _, de := range model.DirectoryEntries {
		rec.ObserveWrite(de.EntityType)
	}
	return nil
}

// WriteGzip writes the serialised file through a gzip compressor, for
// callers that want to store archival copies compactly (SPEC_FULL.md
// DOMAIN STACK: klauspost/compress).
func WriteGzip(rm *ResolvedModel, path string, opts *Options) error {
	model := buildIntermediateForWrite(rm, opts)

	tmp := path + ".tmp"
	if err := WriteIntermediate(model, tmp); err != nil {
		return err
	}
	defer os.Remove(tmp)
	plain, err := os.ReadFile(tmp)
	if err != nil {
		return &FileOpenError{Path: path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return &FileOpenError{Path: path, Err: err}
	}
	f, err := os.Create(path)
	if err != nil {
		return &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if _, err := gz.Write(plain); err != nil {
		return &FileOpenError{Path: path, Err: err}
	}
	return gz.Close()
}

func buildIntermediateForWrite(rm *ResolvedModel, opts *Options) *IntermediateModel {
	model := &IntermediateModel{StartText: rm.StartText, Global: rm.Global}
	for _, id := range rm.order {
		e := rm.entities[id]
		if _, ok := e.(*Unsupported); ok && !opts.saveUnsupported() {
			continue
		}
		model.DirectoryEntries = append(model.DirectoryEntries, e.GetDE())
		model.ParameterData = append(model.ParameterData, e.ToRawPD())
	}
	return model
}

func validateDESequencing(des []*DirectoryEntry) error {
	expect := 1
	for i, de := range des {
		if de.SequenceNumber != expect {
			return &DataFormatError{Record: i, Message: "Directory Entry sequence numbers must form the progression 1, 3, 5, ..."}
		}
		expect += 2
	}
	return nil
}

func emitPaddedSection(text string, width int) []string {
	if text == "" {
		return []string{strings.Repeat(" ", width)}
	}
	var lines []string
	for _, part := range strings.Split(text, "\n") {
		for len(part) > width {
			lines = append(lines, part[:width])
			part = part[width:]
		}
		lines = append(lines, padRightTo(part, width))
	}
	return lines
}

func padRightTo(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

func sevenDigitZero(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 7 {
		s = "0" + s
	}
	return s
}

// regenerateGlobal applies the writer's mandatory Global overrides (spec.md
// §4.8 step 4) to a copy of g, leaving every other parameter untouched.
func regenerateGlobal(g *GlobalRecord, outputBasename string) *GlobalRecord {
	out := *g
	out.FileName = Param{
		Value:  Value{Type: TypeString, Str: outputBasename},
		Format: ValueFormat{Type: TypeString},
	}
	out.NativeSystemID = Param{
		Value:  Value{Type: TypeString, Str: libraryIdentity},
		Format: ValueFormat{Type: TypeString},
	}
	out.PreprocessorVersion = Param{
		Value:  Value{Type: TypeString, Str: libraryIdentity},
		Format: ValueFormat{Type: TypeString},
	}
	now := time.Now().Format("20060102.150405")
	out.GenerationDatetime = Param{
		Value:  Value{Type: TypeString, Str: now},
		Format: ValueFormat{Type: TypeString},
	}
	out.ModifiedDatetime = Param{
		Value:  Value{Type: TypeString, Str: now},
		Format: ValueFormat{Type: TypeString},
	}
	return &out
}

func emitTerminate(c TerminateCounts) string {
	field := func(letter byte, n int) string {
		return string(letter) + sevenDigitZero(n)
	}
	data := field('S', c.StartLines) + field('G', c.GlobalLines) +
		field('D', c.DirectoryLines) + field('P', c.ParameterLines)
	return padRightTo(data, startDataWidth)
}

func writeFileCreatingDirs(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &FileOpenError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return &FileOpenError{Path: path, Err: err}
	}
	return nil
}
