// Package inmemory counts scheduler outcomes for the ops endpoint.
package inmemory

import (
	"sync"

	"deltaland/internal/domain/game"
)

type Snapshot struct {
	ResolvedTotal uint64            `json:"resolved_total"`
	FaultTotal    uint64            `json:"fault_total"`
	OrphanTotal   uint64            `json:"orphan_total"`
	ByKind        map[string]uint64 `json:"by_kind"`
}

type Recorder struct {
	mu       sync.Mutex
	resolved uint64
	faults   uint64
	orphans  uint64
	byKind   map[string]uint64
}

func NewRecorder() *Recorder {
	return &Recorder{
		byKind: map[string]uint64{},
	}
}

func (r *Recorder) RecordResolved(kind game.TimerKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resolved++
	r.byKind[string(kind)]++
}

func (r *Recorder) RecordFault(kind game.TimerKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.faults++
}

func (r *Recorder) RecordOrphan(kind game.TimerKind) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orphans++
}

func (r *Recorder) Snapshot() Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := Snapshot{
		ResolvedTotal: r.resolved,
		FaultTotal:    r.faults,
		OrphanTotal:   r.orphans,
		ByKind:        make(map[string]uint64, len(r.byKind)),
	}
	for k, v := range r.byKind {
		out.ByKind[k] = v
	}
	return out
}

func (r *Recorder) SnapshotAny() any {
	return r.Snapshot()
}
