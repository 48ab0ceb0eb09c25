package workflow

import (
	"sync"
	"time"
)

// Metrics is a consistent snapshot of the system counters with the
// derived fields computed at read time.
type Metrics struct {
	TotalWorkflows            int
	SuccessfulWorkflows       int
	FailedWorkflows           int
	TotalProcessingTime       time.Duration
	CrossBranchCollaborations int
	AutomationDecisions       int
	SuccessRate               float64
	AverageDuration           time.Duration
}

// Ledger owns the process-lifetime workflow history and the system
// counters. A finalized record is committed with one lock acquisition,
// so concurrent workflow completions never lose updates. History is
// unbounded and never pruned.
type Ledger struct {
	mu             sync.Mutex
	history        []*Record
	total          int
	successful     int
	failed         int
	processing     time.Duration
	collaborations int
	decisions      int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// Commit appends a finalized record to history and updates every
// counter atomically. Each record must be committed exactly once.
func (l *Ledger) Commit(rec *Record) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.history = append(l.history, rec)
	l.total++
	if rec.Status.Succeeded() {
		l.successful++
	} else {
		l.failed++
	}
	l.processing += rec.Duration
	l.decisions += len(rec.Insights)
}

// RecordCollaboration counts one cross-branch collaboration.
func (l *Ledger) RecordCollaboration() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.collaborations++
}

// Snapshot returns a consistent copy of the counters.
func (l *Ledger) Snapshot() Metrics {
	l.mu.Lock()
	defer l.mu.Unlock()

	m := Metrics{
		TotalWorkflows:            l.total,
		SuccessfulWorkflows:       l.successful,
		FailedWorkflows:           l.failed,
		TotalProcessingTime:       l.processing,
		CrossBranchCollaborations: l.collaborations,
		AutomationDecisions:       l.decisions,
	}
	if l.total > 0 {
		m.SuccessRate = float64(l.successful) / float64(l.total) * 100
		m.AverageDuration = l.processing / time.Duration(l.total)
	}
	return m
}

// Recent returns up to n of the most recent records, oldest first.
func (l *Ledger) Recent(n int) []*Record {
	l.mu.Lock()
	defer l.mu.Unlock()

	if n <= 0 || n > len(l.history) {
		n = len(l.history)
	}
	out := make([]*Record, n)
	copy(out, l.history[len(l.history)-n:])
	return out
}

// Len returns the number of committed records.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.history)
}
