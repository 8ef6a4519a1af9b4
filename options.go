// Copyright 2026 The iges-go authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package iges

import (
	"github.com/igesio/iges-go/log"
	"github.com/igesio/iges-go/metrics"
)

// Options configures a read or write operation (spec.md §5 "Options"),
// mirroring the teacher's pe.Options pattern: a single struct threaded
// through the top-level entry points, every field optional.
type Options struct {
	// Strict enables DE field validation against the per-entity-type
	// table. A parameter-count overrun is a DataFormatError in either
	// mode.
	Strict bool

	// SaveUnsupported controls whether the writer re-emits entities that
	// were read as Unsupported. False drops them from the output file.
	SaveUnsupported bool

	// SessionNonce seeds the identifier generator's per-process salt
	// (spec.md §5 "Identifier"). Two reads of the same file with the same
	// nonce give their identifiers the same salts, but the identifiers
	// themselves differ, since each takes a fresh value from a
	// process-wide counter; leave blank to derive a nonce from the input
	// path.
	SessionNonce string

	// Logger receives diagnostic messages; when nil, log.Default() is
	// used, which writes Warn and above to stderr.
	Logger log.Logger

	// Metrics receives Prometheus observations; nil disables
	// instrumentation entirely.
	Metrics *metrics.Recorder
}

func (o *Options) logger() *log.Helper {
	if o == nil || o.Logger == nil {
		return log.Default()
	}
	return log.NewHelper(o.Logger)
}

func (o *Options) recorder() *metrics.Recorder {
	if o == nil {
		return nil
	}
	return o.Metrics
}

func (o *Options) strict() bool {
	return o != nil && o.Strict
}

func (o *Options) saveUnsupported() bool {
	return o != nil && o.SaveUnsupported
}

func (o *Options) nonce(fallback string) string {
	if o == nil || o.SessionNonce == "" {
		return fallback
	}
	return o.SessionNonce
}

// defaultOptions is used by the convenience entry points that take no
// explicit Options.
func defaultOptions() *Options { return &Options{} }
