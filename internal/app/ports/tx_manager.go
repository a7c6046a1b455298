package ports

import "context"

// TxManager runs fn inside one storage transaction. Implementations
// also serialize transactions against each other: the command path and
// the scheduler must never interleave mutations on the same owner.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}
