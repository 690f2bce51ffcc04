package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type countJob struct {
	counter *atomic.Int32
}

type countResult struct{ err error }

func (r *countResult) Err() error { return r.err }

func (j *countJob) Execute(_ context.Context) Result {
	j.counter.Add(1)
	time.Sleep(2 * time.Millisecond)
	return &countResult{}
}

func TestPool_RunsAllJobs(t *testing.T) {
	var counter atomic.Int32
	pool := NewPool(3)
	pool.Start()

	const jobs = 10
	for i := 0; i < jobs; i++ {
		pool.Submit(&countJob{counter: &counter})
	}
	results := pool.Wait()

	if len(results) != jobs {
		t.Fatalf("got %d results, want %d", len(results), jobs)
	}
	if n := counter.Load(); n != jobs {
		t.Fatalf("executed %d jobs, want %d", n, jobs)
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	var counter atomic.Int32
	pool := NewPool(0)
	pool.Start()
	pool.Submit(&countJob{counter: &counter})

	if results := pool.Wait(); len(results) != 1 {
		t.Fatalf("got %d results, want 1", len(results))
	}
}

func TestPool_ShutdownStopsWorkers(t *testing.T) {
	pool := NewPool(2)
	pool.Start()
	pool.Shutdown()

	// Submitting after shutdown must not block or panic.
	done := make(chan struct{})
	go func() {
		pool.Submit(&countJob{counter: &atomic.Int32{}})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Submit blocked after Shutdown")
	}
}
