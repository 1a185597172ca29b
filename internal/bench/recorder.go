// Package bench aggregates request latencies and outcome counts for
// the bench command using HDR histograms.
package bench

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Recorder collects latencies from concurrent workers. Counters use
// atomic operations; the histogram is mutex protected.
type Recorder struct {
	// Range: 1 microsecond to 1 hour, 3 significant figures.
	hist   *hdrhistogram.Histogram
	histMu sync.Mutex

	total    atomic.Int64
	failures atomic.Int64

	start time.Time
}

// NewRecorder creates a recorder and starts its clock.
func NewRecorder() *Recorder {
	return &Recorder{
		hist:  hdrhistogram.New(1, 3600000000, 3),
		start: time.Now(),
	}
}

// Record adds one completed request. ok is whether the call produced a
// success variant.
func (r *Recorder) Record(latency time.Duration, ok bool) {
	r.total.Add(1)
	if !ok {
		r.failures.Add(1)
	}

	r.histMu.Lock()
	_ = r.hist.RecordValue(latency.Microseconds())
	r.histMu.Unlock()
}

// Snapshot is a point-in-time summary of everything recorded so far.
type Snapshot struct {
	Total    int64
	Failures int64
	Elapsed  time.Duration

	Min  time.Duration
	Mean time.Duration
	P50  time.Duration
	P90  time.Duration
	P99  time.Duration
	Max  time.Duration
}

// Snapshot computes the current summary.
func (r *Recorder) Snapshot() Snapshot {
	r.histMu.Lock()
	defer r.histMu.Unlock()

	return Snapshot{
		Total:    r.total.Load(),
		Failures: r.failures.Load(),
		Elapsed:  time.Since(r.start),
		Min:      time.Duration(r.hist.Min()) * time.Microsecond,
		Mean:     time.Duration(r.hist.Mean() * float64(time.Microsecond)),
		P50:      time.Duration(r.hist.ValueAtQuantile(50)) * time.Microsecond,
		P90:      time.Duration(r.hist.ValueAtQuantile(90)) * time.Microsecond,
		P99:      time.Duration(r.hist.ValueAtQuantile(99)) * time.Microsecond,
		Max:      time.Duration(r.hist.Max()) * time.Microsecond,
	}
}

// Throughput returns completed requests per second.
func (s Snapshot) Throughput() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.Total) / s.Elapsed.Seconds()
}

// ErrorRate returns the fraction of requests that did not produce a
// success variant.
func (s Snapshot) ErrorRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Failures) / float64(s.Total)
}
