package debounce

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestSingleValue(t *testing.T) {
	var fired int32
	var got atomic.Value
	d := New(50*time.Millisecond, func(v string) {
		got.Store(v)
		atomic.AddInt32(&fired, 1)
	})

	d.Set("aadhaar")
	time.Sleep(100 * time.Millisecond)

	if atomic.LoadInt32(&fired) != 1 {
		t.Fatalf("expected 1 delivery, got %d", fired)
	}
	if got.Load() != "aadhaar" {
		t.Errorf("expected %q, got %v", "aadhaar", got.Load())
	}
	if d.Stable() != "aadhaar" {
		t.Errorf("Stable() = %q, want %q", d.Stable(), "aadhaar")
	}
}

func TestBurstDeliversOnlyLastValue(t *testing.T) {
	var fired int32
	var got atomic.Value
	d := New(60*time.Millisecond, func(v string) {
		got.Store(v)
		atomic.AddInt32(&fired, 1)
	})

	// Changes at t=0, t=20, t=50: each restarts the timer, so only the
	// last value is ever delivered.
	d.Set("l")
	time.Sleep(20 * time.Millisecond)
	d.Set("lu")
	time.Sleep(30 * time.Millisecond)
	d.Set("luc")

	// Before the delay elapses nothing has fired.
	time.Sleep(30 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Fatalf("delivery fired before delay elapsed")
	}

	time.Sleep(80 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 1 {
		t.Fatalf("expected 1 delivery for the burst, got %d", fired)
	}
	if got.Load() != "luc" {
		t.Errorf("expected last value %q, got %v", "luc", got.Load())
	}
}

func TestCancelDropsPendingDelivery(t *testing.T) {
	var fired int32
	d := New(50*time.Millisecond, func(string) {
		atomic.AddInt32(&fired, 1)
	})

	d.Set("pending")
	time.Sleep(10 * time.Millisecond)
	d.Cancel()
	time.Sleep(100 * time.Millisecond)

	if atomic.LoadInt32(&fired) != 0 {
		t.Errorf("expected no delivery after Cancel, got %d", fired)
	}

	// Cancel does not close: a later Set still works.
	d.Set("again")
	time.Sleep(100 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 1 {
		t.Errorf("expected delivery after re-Set, got %d", fired)
	}
}

func TestCloseSuppressesDelivery(t *testing.T) {
	var fired int32
	d := New(50*time.Millisecond, func(string) {
		atomic.AddInt32(&fired, 1)
	})

	d.Set("doomed")
	time.Sleep(10 * time.Millisecond)
	d.Close()
	time.Sleep(100 * time.Millisecond)

	if atomic.LoadInt32(&fired) != 0 {
		t.Errorf("delivery fired after Close, got %d", fired)
	}

	// Set after Close is a no-op.
	d.Set("ignored")
	time.Sleep(100 * time.Millisecond)
	if atomic.LoadInt32(&fired) != 0 {
		t.Errorf("Set after Close delivered, got %d", fired)
	}
}

func TestGenericOverNonStringTypes(t *testing.T) {
	var mu sync.Mutex
	var got []int
	d := New(30*time.Millisecond, func(v []int) {
		mu.Lock()
		got = v
		mu.Unlock()
	})

	d.Set([]int{1})
	d.Set([]int{1, 2, 3})
	time.Sleep(80 * time.Millisecond)

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 3 {
		t.Errorf("expected last slice delivered, got %v", got)
	}
}
