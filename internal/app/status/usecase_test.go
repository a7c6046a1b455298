package status

import (
	"context"
	"strings"
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
		Timers:    memory.NewTimerRepo(store),
		Items:     memory.NewItemRepo(store),
		Now:       func() time.Time { return testTime },
	}
}

func TestExecute(t *testing.T) {
	store := memory.NewStore()
	store.SeedPlayer(game.NewPlayer(1, testTime))
	store.SeedTimer(game.Timer{OwnerID: 1, Kind: game.TimerStamina, FiresAt: testTime.Add(20 * time.Minute)})
	store.SeedTimer(game.Timer{OwnerID: game.WorldID, Kind: game.TimerBattle, FiresAt: testTime.Add(3 * time.Hour)})
	uc := newUseCase(store)

	resp, err := uc.Execute(context.Background(), Request{PlayerID: 1})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Reason != game.ReasonOK {
		t.Fatalf("reason %q, want ok", resp.Reason)
	}
	if resp.Attack != game.StartingAttack || resp.Defense != game.StartingDefense {
		t.Fatalf("stats %d/%d, want bare starting stats", resp.Attack, resp.Defense)
	}
	if resp.NextExp != game.RequiredExp(game.StartingLevel+1) {
		t.Fatalf("next exp %d", resp.NextExp)
	}
	if resp.StaminaIn != 20*time.Minute {
		t.Fatalf("stamina in %v, want 20m", resp.StaminaIn)
	}
	if resp.NextBattle != 3*time.Hour {
		t.Fatalf("next battle in %v, want 3h", resp.NextBattle)
	}
	if !strings.Contains(resp.Doing, "Resting") {
		t.Fatalf("doing %q, want resting", resp.Doing)
	}
}

func TestExecute_IncludesEquipment(t *testing.T) {
	store := memory.NewStore()
	store.SeedPlayer(game.NewPlayer(1, testTime))
	items := memory.NewItemRepo(store)
	ctx := context.Background()
	sword := game.Item{PlayerID: 1, BaseID: 1, Slot: game.SlotHands, Attack: 3}
	if err := items.Create(ctx, &sword); err != nil {
		t.Fatalf("seed sword: %v", err)
	}
	pocket := game.Item{PlayerID: 1, BaseID: 2, Slot: game.SlotBag, Defense: 2}
	if err := items.Create(ctx, &pocket); err != nil {
		t.Fatalf("seed bag item: %v", err)
	}
	uc := newUseCase(store)

	resp, err := uc.Execute(ctx, Request{PlayerID: 1})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Attack != game.StartingAttack+3 {
		t.Fatalf("attack %d, want equipped sword counted", resp.Attack)
	}
	if resp.Defense != game.StartingDefense {
		t.Fatalf("defense %d, want bag item ignored", resp.Defense)
	}
	if resp.BagUsed != 1 {
		t.Fatalf("bag used %d, want 1", resp.BagUsed)
	}
}

func TestExecute_DescribesQuest(t *testing.T) {
	store := memory.NewStore()
	p := game.NewPlayer(1, testTime)
	p.State = game.InQuest(game.QuestWander)
	store.SeedPlayer(p)
	uc := newUseCase(store)

	resp, err := uc.Execute(context.Background(), Request{PlayerID: 1})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	q, _ := game.QuestByID(game.QuestWander)
	if !strings.Contains(resp.Doing, q.Name) {
		t.Fatalf("doing %q, want quest name", resp.Doing)
	}
}

func TestExecute_NotJoined(t *testing.T) {
	uc := newUseCase(memory.NewStore())
	resp, err := uc.Execute(context.Background(), Request{PlayerID: 1})
	if err != nil {
		t.Fatalf("Execute error: %v", err)
	}
	if resp.Reason != game.ReasonNotJoined {
		t.Fatalf("reason %q, want not joined", resp.Reason)
	}
}
