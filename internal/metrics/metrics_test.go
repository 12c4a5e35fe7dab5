package metrics

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCounter_Concurrent(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.Inc()
			c.Add(2)
		}()
	}
	wg.Wait()
	assert.Equal(t, uint64(150), c.Load())
}

func TestTimer(t *testing.T) {
	timer := StartTimer()
	time.Sleep(time.Millisecond)
	assert.GreaterOrEqual(t, timer.Duration(), time.Millisecond)
}

func TestCatalog_Observe(t *testing.T) {
	var c Catalog
	assert.Equal(t, Snapshot{}, c.Snapshot())

	c.Observe(false, false, true, 10*time.Millisecond)
	c.Observe(true, false, false, 30*time.Millisecond)
	c.Observe(true, true, false, 20*time.Millisecond)

	assert.Equal(t, Snapshot{
		PageLoads:        3,
		ProductFailures:  2,
		CategoryFailures: 1,
		SnapshotsSaved:   1,
		AvgRenderMillis:  20,
	}, c.Snapshot())
}
