package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestCollector_Record(t *testing.T) {
	c := NewCollector()
	c.Record("query", 100*time.Millisecond, false)
	c.Record("query", 300*time.Millisecond, true)
	c.Record("list_documents", 50*time.Millisecond, false)

	snap := c.Snapshot()
	if len(snap.Requests) != 2 {
		t.Fatalf("snapshot has %d ops, want 2", len(snap.Requests))
	}

	// Sorted by op name.
	if snap.Requests[0].Op != "list_documents" || snap.Requests[1].Op != "query" {
		t.Errorf("ops = %v, %v; want name order", snap.Requests[0].Op, snap.Requests[1].Op)
	}

	q := snap.Requests[1]
	if q.Count != 2 || q.Failures != 1 {
		t.Errorf("query count=%d failures=%d, want 2/1", q.Count, q.Failures)
	}
	if q.MinTimeMs != 100 || q.MaxTimeMs != 300 || q.TotalTimeMs != 400 {
		t.Errorf("query times min=%d max=%d total=%d", q.MinTimeMs, q.MaxTimeMs, q.TotalTimeMs)
	}
	if q.AvgTimeMs != 200 {
		t.Errorf("query avg=%f, want 200", q.AvgTimeMs)
	}
}

func TestCollector_SnapshotSkipsEmptyOps(t *testing.T) {
	c := NewCollector()
	if got := c.Snapshot(); len(got.Requests) != 0 {
		t.Errorf("empty collector produced %d ops", len(got.Requests))
	}
	if c.Snapshot().UptimeSeconds < 0 {
		t.Errorf("uptime went backwards")
	}
}

func TestCollector_ConcurrentRecord(t *testing.T) {
	c := NewCollector()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c.Record("query", time.Millisecond, j%10 == 0)
			}
		}()
	}
	wg.Wait()

	snap := c.Snapshot()
	if snap.Requests[0].Count != 800 {
		t.Errorf("count = %d, want 800", snap.Requests[0].Count)
	}
	if snap.Requests[0].Failures != 80 {
		t.Errorf("failures = %d, want 80", snap.Requests[0].Failures)
	}
}
