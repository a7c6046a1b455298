package ports

import "deltaland/internal/domain/game"

// SchedulerMetrics counts timer resolutions by kind.
type SchedulerMetrics interface {
	RecordResolved(kind game.TimerKind)
	RecordFault(kind game.TimerKind)
	RecordOrphan(kind game.TimerKind)
}
