package metrics

import (
	"sync/atomic"
	"time"
)

// Metrics tracks card store statistics using atomic operations for thread-safety
type Metrics struct {
	Inserts              atomic.Int64
	Moves                atomic.Int64
	Deletes              atomic.Int64
	RowsShifted          atomic.Int64
	ConstraintViolations atomic.Int64
	StoreUnavailable     atomic.Int64
	StartTime            time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncInserts increments the successful insert counter
func (m *Metrics) IncInserts() {
	m.Inserts.Add(1)
}

// IncMoves increments the successful move counter
func (m *Metrics) IncMoves() {
	m.Moves.Add(1)
}

// IncDeletes increments the successful delete counter
func (m *Metrics) IncDeletes() {
	m.Deletes.Add(1)
}

// AddRowsShifted records how many neighbouring rows an operation renumbered
func (m *Metrics) AddRowsShifted(n int64) {
	m.RowsShifted.Add(n)
}

// IncConstraintViolations counts invariant breaches reported by the store
func (m *Metrics) IncConstraintViolations() {
	m.ConstraintViolations.Add(1)
}

// IncStoreUnavailable counts connection and lock failures
func (m *Metrics) IncStoreUnavailable() {
	m.StoreUnavailable.Add(1)
}

// Snapshot represents a point-in-time snapshot of metrics
type Snapshot struct {
	Inserts              int64     `json:"inserts"`
	Moves                int64     `json:"moves"`
	Deletes              int64     `json:"deletes"`
	RowsShifted          int64     `json:"rows_shifted"`
	ConstraintViolations int64     `json:"constraint_violations"`
	StoreUnavailable     int64     `json:"store_unavailable"`
	StartTime            time.Time `json:"start_time"`
	Uptime               string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() Snapshot {
	return Snapshot{
		Inserts:              m.Inserts.Load(),
		Moves:                m.Moves.Load(),
		Deletes:              m.Deletes.Load(),
		RowsShifted:          m.RowsShifted.Load(),
		ConstraintViolations: m.ConstraintViolations.Load(),
		StoreUnavailable:     m.StoreUnavailable.Load(),
		StartTime:            m.StartTime,
		Uptime:               time.Since(m.StartTime).String(),
	}
}
