// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// ReadIntermediate opens path and parses it through C1-C8, returning the
// untyped IntermediateModel without attempting entity construction
// (spec.md §2 "Data flow on read"). The file is memory-mapped rather than
// read in full, mirroring the teacher's File.New.
func ReadIntermediate(path string, opts *Options) (*IntermediateModel, error) {
	logger := opts.logger()
	rec := opts.recorder()

	f, err := os.Open(path)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &FileOpenError{Path: path, Err: os.ErrInvalid}
	}
	if info.Size() == 0 {
		return nil, &LineFormatError{Line: 1, Message: "empty file"}
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, &FileOpenError{Path: path, Err: err}
	}
	defer data.Unmap()

	stop := rec.TimeSection("file")
	defer stop()

	lines, err := NewLineStream(data)
	if err != nil {
		return nil, err
	}
	sr := NewSectionReader(lines)

	model := &IntermediateModel{}

	if text, ok, err := sr.ReadStartSection(); err != nil {
		return nil, err
	} else if ok {
		model.StartText = text
	}

	global, ok, err := sr.ReadGlobalSection()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &SectionFormatError{Message: "file has no Global section"}
	}
	model.Global = global

	for {
		de, ok, err := sr.ReadDirectoryEntryRecord()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		model.DirectoryEntries = append(model.DirectoryEntries, de)
	}

	for {
		pd, ok, err := sr.ReadParameterDataRecord(global.ParamDelim, global.RecordDelim)
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		model.ParameterData = append(model.ParameterData, pd)
		rec.ObserveRead(pd.EntityType)
	}

	counts, ok, err := sr.ReadTerminateSection()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &SectionFormatError{Message: "file has no Terminate section"}
	}
	model.Terminate = counts

	if err := model.Validate(); err != nil {
		if opts.strict() {
			return nil, err
		}
		logger.Warnf("intermediate model validation failed on %s: %v", path, err)
	}

	return model, nil
}

// Read opens path, parses it, and resolves it into entity objects
// (spec.md §2 "Data flow on read": ... → C8 → C9, C10). strict mode runs
// the Directory Entry field-validation table of §4.5 against every
// record; a parameter-count overrun is a DataFormatError in either mode.
func Read(path string, opts *Options) (*ResolvedModel, error) {
	model, err := ReadIntermediate(path, opts)
	if err != nil {
		return nil, err
	}

	ids := NewIDGenerator(opts.nonce(path))
	rm, err := Resolve(model, ids, opts.strict())
	if err != nil {
		if opts.strict() {
			opts.recorder().ObserveStrictReject()
		}
		return nil, err
	}
	return rm, nil
}
