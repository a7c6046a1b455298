package leave

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
		Timers:    memory.NewTimerRepo(store),
		Items:     memory.NewItemRepo(store),
		Skills:    memory.NewSkillRepo(store),
		Ranks:     memory.NewRankRepo(store),
		Battles:   memory.NewBattleRepo(store),
		Cauldron:  memory.NewCauldronRepo(store),
	}
}

func TestExecute_RemovesEverything(t *testing.T) {
	store := memory.NewStore()
	store.SeedPlayer(game.NewPlayer(1, testTime))
	store.SeedTimer(game.Timer{OwnerID: 1, Kind: game.TimerStamina, FiresAt: testTime.Add(time.Hour)})
	ctx := context.Background()
	item := game.Item{PlayerID: 1, BaseID: 1, Slot: game.SlotBag}
	if err := memory.NewItemRepo(store).Create(ctx, &item); err != nil {
		t.Fatalf("seed item: %v", err)
	}
	if err := memory.NewSkillRepo(store).Save(ctx, game.Skill{PlayerID: 1, BaseID: 1, Level: 1}); err != nil {
		t.Fatalf("seed skill: %v", err)
	}
	if err := memory.NewRankRepo(store).Add(ctx, ports.RankDice, 1, 5); err != nil {
		t.Fatalf("seed rank: %v", err)
	}
	if err := memory.NewBattleRepo(store).SetTactic(ctx, 1, game.TacticHit); err != nil {
		t.Fatalf("seed tactic: %v", err)
	}
	uc := newUseCase(store)

	resp, err := uc.Execute(ctx, Request{PlayerID: 1})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Reason != game.ReasonOK {
		t.Fatalf("reason %q, want ok", resp.Reason)
	}
	if _, ok := store.PlayerState(1); ok {
		t.Fatal("player row survived")
	}
	if _, err := memory.NewTimerRepo(store).Get(ctx, 1, game.TimerStamina); err != ports.ErrNotFound {
		t.Fatal("timer survived")
	}
	if _, err := memory.NewItemRepo(store).Get(ctx, item.ID, 1); err != ports.ErrNotFound {
		t.Fatal("item survived")
	}
	if skills, _ := memory.NewSkillRepo(store).ListByPlayer(ctx, 1); len(skills) != 0 {
		t.Fatal("skills survived")
	}
	if score, _ := memory.NewRankRepo(store).Score(ctx, ports.RankDice, 1); score != 0 {
		t.Fatal("rank score survived")
	}
	if _, err := memory.NewBattleRepo(store).GetTactic(ctx, 1); err != ports.ErrNotFound {
		t.Fatal("tactic survived")
	}
}

func TestExecute_UnwindsOwnWatch(t *testing.T) {
	store := memory.NewStore()
	sentinel := game.NewPlayer(1, testTime)
	thief := game.NewPlayer(2, testTime)
	sentinel.StartWatching(&thief)
	store.SeedPlayer(sentinel)
	store.SeedPlayer(thief)
	uc := newUseCase(store)

	if _, err := uc.Execute(context.Background(), Request{PlayerID: 1}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	got, _ := store.PlayerState(2)
	if !got.State.IsResting() {
		t.Fatalf("thief state %q, want resting after sentinel left", got.State.Kind)
	}
}

func TestExecute_UnwindsSentinelWatchingUs(t *testing.T) {
	store := memory.NewStore()
	sentinel := game.NewPlayer(1, testTime)
	thief := game.NewPlayer(2, testTime)
	sentinel.StartWatching(&thief)
	store.SeedPlayer(sentinel)
	store.SeedPlayer(thief)
	store.SeedTimer(game.Timer{
		OwnerID: 1,
		Kind:    game.TimerThiefWatch,
		FiresAt: testTime.Add(game.ThiefWatchWindow),
	})
	uc := newUseCase(store)
	ctx := context.Background()

	if _, err := uc.Execute(ctx, Request{PlayerID: 2}); err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	got, _ := store.PlayerState(1)
	if !got.State.IsResting() || got.WatchingID != nil {
		t.Fatalf("sentinel not released: state %q watching %v", got.State.Kind, got.WatchingID)
	}
	if _, err := memory.NewTimerRepo(store).Get(ctx, 1, game.TimerThiefWatch); err != ports.ErrNotFound {
		t.Fatal("watch timer survived")
	}
}

func TestExecute_NotJoined(t *testing.T) {
	uc := newUseCase(memory.NewStore())
	resp, err := uc.Execute(context.Background(), Request{PlayerID: 9})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Reason != game.ReasonNotJoined {
		t.Fatalf("reason %q, want not joined", resp.Reason)
	}
}
