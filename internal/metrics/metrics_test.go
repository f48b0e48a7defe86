package metrics

import (
	"sync"
	"testing"
	"time"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	snap := m.GetSnapshot()
	if snap.Inserts != 0 || snap.Moves != 0 || snap.Deletes != 0 || snap.RowsShifted != 0 {
		t.Errorf("Expected zeroed counters, got %+v", snap)
	}

	// Verify StartTime is set to a recent time (within last second)
	if time.Since(m.StartTime) > time.Second {
		t.Errorf("Expected StartTime to be recent, got %v", m.StartTime)
	}
}

func TestCounters(t *testing.T) {
	m := NewMetrics()

	m.IncInserts()
	m.IncInserts()
	m.IncMoves()
	m.IncDeletes()
	m.AddRowsShifted(5)
	m.IncConstraintViolations()
	m.IncStoreUnavailable()

	snap := m.GetSnapshot()
	if snap.Inserts != 2 {
		t.Errorf("Expected Inserts to be 2, got %d", snap.Inserts)
	}
	if snap.Moves != 1 {
		t.Errorf("Expected Moves to be 1, got %d", snap.Moves)
	}
	if snap.Deletes != 1 {
		t.Errorf("Expected Deletes to be 1, got %d", snap.Deletes)
	}
	if snap.RowsShifted != 5 {
		t.Errorf("Expected RowsShifted to be 5, got %d", snap.RowsShifted)
	}
	if snap.ConstraintViolations != 1 || snap.StoreUnavailable != 1 {
		t.Errorf("Expected failure counters to be 1, got %+v", snap)
	}
}

func TestConcurrentIncrements(t *testing.T) {
	m := NewMetrics()

	const goroutines = 50
	const perGoroutine = 100

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				m.IncMoves()
				m.AddRowsShifted(2)
			}
		}()
	}
	wg.Wait()

	if got := m.Moves.Load(); got != goroutines*perGoroutine {
		t.Errorf("Expected Moves to be %d, got %d", goroutines*perGoroutine, got)
	}
	if got := m.RowsShifted.Load(); got != 2*goroutines*perGoroutine {
		t.Errorf("Expected RowsShifted to be %d, got %d", 2*goroutines*perGoroutine, got)
	}
}
