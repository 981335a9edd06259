package aggregator

import (
	"sync"
	"time"

	hdrhistogram "github.com/HdrHistogram/hdrhistogram-go"
)

// liveHistogram is a thread-safe latency histogram backing the progress
// snapshot. Final report statistics never read from it; they are computed
// exactly from the finalized outcomes.
type liveHistogram struct {
	mu   sync.Mutex
	hist *hdrhistogram.Histogram
}

func newLiveHistogram() *liveHistogram {
	// 1us to 10min, 3 significant figures
	return &liveHistogram{
		hist: hdrhistogram.New(1, int64(10*time.Minute/time.Microsecond), 3),
	}
}

func (h *liveHistogram) record(d time.Duration) {
	us := d.Microseconds()
	if us < 1 {
		us = 1
	}
	h.mu.Lock()
	_ = h.hist.RecordValue(us) // out-of-range values are dropped from the live view only
	h.mu.Unlock()
}

// quantileMs returns the latency at quantile q (0-100) in milliseconds.
func (h *liveHistogram) quantileMs(q float64) float64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	return float64(h.hist.ValueAtQuantile(q)) / 1000.0
}
