// Package metrics holds the optional Prometheus instrumentation for the
// iges reader and writer. It is nil-safe throughout: a caller that never
// sets Options.Metrics pays no instrumentation cost.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder records reader/writer activity. All methods are safe to call
// on a nil *Recorder.
type Recorder struct {
	recordsRead    *prometheus.CounterVec
	recordsWritten *prometheus.CounterVec
	parseSeconds   *prometheus.HistogramVec
	strictRejects  prometheus.Counter
}

// NewRecorder builds a Recorder and registers its collectors against reg.
// Passing a prometheus.NewRegistry() keeps metrics out of the global
// default registry, which matters for callers embedding this module
// inside a larger process.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	r := &Recorder{
		recordsRead: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "iges",
			Name:      "records_read_total",
			Help:      "Number of Directory Entry/Parameter Data record pairs read, by entity type.",
		}, []string{"entity_type"}),
		recordsWritten: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "iges",
			Name:      "records_written_total",
			Help:      "Number of Directory Entry/Parameter Data record pairs written, by entity type.",
		}, []string{"entity_type"}),
		parseSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "iges",
			Name:      "section_parse_seconds",
			Help:      "Time spent parsing a single section.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"section"}),
		strictRejects: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "iges",
			Name:      "strict_rejects_total",
			Help:      "Number of DE records rejected by strict-mode validation.",
		}),
	}
	if reg != nil {
		reg.MustRegister(r.recordsRead, r.recordsWritten, r.parseSeconds, r.strictRejects)
	}
	return r
}

// ObserveRead increments the read counter for entityType.
func (r *Recorder) ObserveRead(entityType int) {
	if r == nil {
		return
	}
	r.recordsRead.WithLabelValues(typeLabel(entityType)).Inc()
}

// ObserveWrite increments the write counter for entityType.
func (r *Recorder) ObserveWrite(entityType int) {
	if r == nil {
		return
	}
	r.recordsWritten.WithLabelValues(typeLabel(entityType)).Inc()
}

// ObserveStrictReject increments the strict-mode rejection counter.
func (r *Recorder) ObserveStrictReject() {
	if r == nil {
		return
	}
	r.strictRejects.Inc()
}

// TimeSection returns a function that records the elapsed time for
// parsing the named section when called; use as `defer rec.TimeSection("global")()`.
func (r *Recorder) TimeSection(section string) func() {
	if r == nil {
		return func() {}
	}
	start := time.Now()
	return func() {
		r.parseSeconds.WithLabelValues(section).Observe(time.Since(start).Seconds())
	}
}

func typeLabel(entityType int) string {
	const maxLabels = 600
	if entityType < 0 || entityType > maxLabels {
		return "other"
	}
	return itoa(entityType)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [12]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
