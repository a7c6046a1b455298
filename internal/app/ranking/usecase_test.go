package ranking

import (
	"context"
	"testing"
	"time"

	"deltaland/internal/adapter/repo/memory"
	"deltaland/internal/app/ports"
	"deltaland/internal/domain/game"
)

var testTime = time.Date(2024, time.March, 14, 12, 0, 0, 0, time.UTC)

func newUseCase(store *memory.Store) UseCase {
	return UseCase{
		TxManager: memory.NewTxManager(store),
		Players:   memory.NewPlayerRepo(store),
		Ranks:     memory.NewRankRepo(store),
		Now:       func() time.Time { return testTime },
	}
}

func seedLeveled(store *memory.Store, id int64, gold int) {
	p := game.NewPlayer(id, testTime)
	p.Level = game.RanksMinLevel
	p.Gold = gold
	store.SeedPlayer(p)
}

func TestExecute_GoldBoard(t *testing.T) {
	store := memory.NewStore()
	seedLeveled(store, 1, 30)
	seedLeveled(store, 2, 80)
	seedLeveled(store, 3, 50)
	uc := newUseCase(store)

	resp, err := uc.Execute(context.Background(), Request{PlayerID: 1, Board: BoardGold})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Reason != game.ReasonOK {
		t.Fatalf("reason %q, want ok", resp.Reason)
	}
	if len(resp.Top) != 3 {
		t.Fatalf("%d entries, want 3", len(resp.Top))
	}
	if resp.Top[0].PlayerID != 2 || resp.Top[1].PlayerID != 3 || resp.Top[2].PlayerID != 1 {
		t.Fatalf("order %v, want richest first", resp.Top)
	}
	if resp.OwnScore != 30 {
		t.Fatalf("own score %d, want caller's gold", resp.OwnScore)
	}
}

func TestExecute_ScoredBoard(t *testing.T) {
	store := memory.NewStore()
	seedLeveled(store, 1, 0)
	seedLeveled(store, 2, 0)
	ctx := context.Background()
	ranks := memory.NewRankRepo(store)
	if err := ranks.Add(ctx, ports.RankDice, 1, 3); err != nil {
		t.Fatalf("seed rank: %v", err)
	}
	if err := ranks.Add(ctx, ports.RankDice, 2, 7); err != nil {
		t.Fatalf("seed rank: %v", err)
	}
	uc := newUseCase(store)

	resp, err := uc.Execute(ctx, Request{PlayerID: 1, Board: BoardDice})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if len(resp.Top) != 2 || resp.Top[0].PlayerID != 2 {
		t.Fatalf("top %v, want player 2 leading", resp.Top)
	}
	if resp.OwnScore != 3 {
		t.Fatalf("own score %d, want 3", resp.OwnScore)
	}
}

func TestExecute_RefusedBelowLevelGate(t *testing.T) {
	store := memory.NewStore()
	store.SeedPlayer(game.NewPlayer(1, testTime))
	uc := newUseCase(store)

	resp, err := uc.Execute(context.Background(), Request{PlayerID: 1, Board: BoardGold})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Reason != game.ReasonLowLevel {
		t.Fatalf("reason %q, want low level", resp.Reason)
	}
}

func TestExecute_RejectsUnknownBoard(t *testing.T) {
	store := memory.NewStore()
	seedLeveled(store, 1, 0)
	uc := newUseCase(store)

	if _, err := uc.Execute(context.Background(), Request{PlayerID: 1, Board: "fame"}); err != ErrInvalidRequest {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}
