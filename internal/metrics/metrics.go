package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// Catalog counts page loads and their outcomes since the process started.
type Catalog struct {
	PageLoads         Counter
	ProductFailures   Counter
	CategoryFailures  Counter
	SnapshotsSaved    Counter
	TotalRenderMicros Counter
}

// Observe records one page load.
func (c *Catalog) Observe(productsFailed, categoriesFailed, snapshotSaved bool, d time.Duration) {
	c.PageLoads.Inc()
	if productsFailed {
		c.ProductFailures.Inc()
	}
	if categoriesFailed {
		c.CategoryFailures.Inc()
	}
	if snapshotSaved {
		c.SnapshotsSaved.Inc()
	}
	if d > 0 {
		c.TotalRenderMicros.Add(uint64(d.Microseconds()))
	}
}

type Snapshot struct {
	PageLoads        uint64  `json:"page_loads"`
	ProductFailures  uint64  `json:"product_failures"`
	CategoryFailures uint64  `json:"category_failures"`
	SnapshotsSaved   uint64  `json:"snapshots_saved"`
	AvgRenderMillis  float64 `json:"avg_render_ms"`
}

func (c *Catalog) Snapshot() Snapshot {
	s := Snapshot{
		PageLoads:        c.PageLoads.Load(),
		ProductFailures:  c.ProductFailures.Load(),
		CategoryFailures: c.CategoryFailures.Load(),
		SnapshotsSaved:   c.SnapshotsSaved.Load(),
	}
	if s.PageLoads > 0 {
		s.AvgRenderMillis = float64(c.TotalRenderMicros.Load()) / float64(s.PageLoads) / 1000
	}
	return s
}
