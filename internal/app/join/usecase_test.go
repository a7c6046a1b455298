package join

import (
	"context"
	"errors"
	"testing"
	"time"

	"deltaland/internal/adapter/repo/memory"
	"deltaland/internal/domain/game"
)

var testTime = time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)

func newUseCase(store *memory.Store) UseCase {
	return UseCase{
		TxManager: memory.NewTxManager(store),
		Players:   memory.NewPlayerRepo(store),
		Now:       func() time.Time { return testTime },
	}
}

func TestExecute_CreatesStartingPlayer(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)

	resp, err := uc.Execute(context.Background(), Request{PlayerID: 7})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Reason != game.ReasonOK {
		t.Fatalf("reason %q, want ok", resp.Reason)
	}
	p, ok := store.PlayerState(7)
	if !ok {
		t.Fatal("player not persisted")
	}
	if p.Level != game.StartingLevel || p.Gold != game.StartingGold || p.HP != game.MaxHP {
		t.Fatalf("unexpected starting stats: %+v", p)
	}
	if !p.Birthday.Equal(testTime) {
		t.Fatalf("birthday %v, want %v", p.Birthday, testTime)
	}
}

func TestExecute_SecondJoinRejected(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)

	if _, err := uc.Execute(context.Background(), Request{PlayerID: 7}); err != nil {
		t.Fatalf("first join: %v", err)
	}
	resp, err := uc.Execute(context.Background(), Request{PlayerID: 7})
	if err != nil {
		t.Fatalf("second join: %v", err)
	}
	if resp.Reason != game.ReasonAlreadyJoined {
		t.Fatalf("reason %q, want already joined", resp.Reason)
	}
}

func TestExecute_RejectsInvalidID(t *testing.T) {
	uc := newUseCase(memory.NewStore())
	if _, err := uc.Execute(context.Background(), Request{}); !errors.Is(err, ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
