// Package lognotify delivers notifications to the server log. A real
// deployment swaps in a chat transport; the port contract is the same.
package lognotify

import (
	"context"
	"log"

	"deltaland/internal/domain/game"
)

type Notifier struct{}

func New() Notifier {
	return Notifier{}
}

func (Notifier) Notify(_ context.Context, n game.Notification) {
	log.Printf("notify player %d: %s", n.PlayerID, n.Text)
}
