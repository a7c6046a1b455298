package ports

import (
	"context"

	"deltaland/internal/domain/game"
)

// Notifier delivers a message to a player. Delivery is best-effort:
// callers invoke it after their transaction commits and ignore
// failures, so implementations must not block for long.
type Notifier interface {
	Notify(ctx context.Context, n game.Notification)
}
