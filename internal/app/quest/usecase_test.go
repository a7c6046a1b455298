package quest

import (
	"context"
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
		Now:       func() time.Time { return testTime },
	}
}

func TestStart_Wander(t *testing.T) {
	store := memory.NewStore()
	store.SeedPlayer(game.NewPlayer(1, testTime))
	uc := newUseCase(store)

	resp, err := uc.Start(context.Background(), StartRequest{PlayerID: 1, QuestID: game.QuestWander})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if resp.Reason != game.ReasonOK {
		t.Fatalf("reason %q, want ok", resp.Reason)
	}

	p, _ := store.PlayerState(1)
	if !p.State.IsInQuest() || p.State.Quest != game.QuestWander {
		t.Fatalf("state %+v, want wander quest", p.State)
	}
	if p.Stamina != game.MaxStamina-1 {
		t.Fatalf("stamina %d, want cost spent", p.Stamina)
	}
	timers := memory.NewTimerRepo(store)
	quest, err := timers.Get(context.Background(), 1, game.TimerQuest)
	if err != nil {
		t.Fatalf("quest timer not armed: %v", err)
	}
	if quest.QuestID != game.QuestWander {
		t.Fatalf("quest timer carries %d, want wander", quest.QuestID)
	}
	if _, err := timers.Get(context.Background(), 1, game.TimerStamina); err != nil {
		t.Fatalf("stamina regen not armed after spend: %v", err)
	}
}

func TestStart_ThieveGatedByLevel(t *testing.T) {
	store := memory.NewStore()
	store.SeedPlayer(game.NewPlayer(1, testTime))
	uc := newUseCase(store)

	resp, err := uc.Start(context.Background(), StartRequest{PlayerID: 1, QuestID: game.QuestThieve})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if resp.Reason != game.ReasonLowLevel {
		t.Fatalf("reason %q, want low level", resp.Reason)
	}
}

func TestStart_RefusedWithoutStamina(t *testing.T) {
	store := memory.NewStore()
	p := game.NewPlayer(1, testTime)
	p.Stamina = 0
	store.SeedPlayer(p)
	uc := newUseCase(store)

	resp, err := uc.Start(context.Background(), StartRequest{PlayerID: 1, QuestID: game.QuestWander})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if resp.Reason != game.ReasonNoStamina {
		t.Fatalf("reason %q, want no stamina", resp.Reason)
	}
}

func TestStart_RefusedWhenWounded(t *testing.T) {
	store := memory.NewStore()
	p := game.NewPlayer(1, testTime)
	p.HP = p.MaxHP/4 - 1
	store.SeedPlayer(p)
	uc := newUseCase(store)

	resp, err := uc.Start(context.Background(), StartRequest{PlayerID: 1, QuestID: game.QuestWander})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if resp.Reason != game.ReasonWounded {
		t.Fatalf("reason %q, want wounded", resp.Reason)
	}
}

func TestStart_RefusedBeforeBattle(t *testing.T) {
	store := memory.NewStore()
	store.SeedPlayer(game.NewPlayer(1, testTime))
	store.SeedTimer(game.Timer{
		OwnerID: game.WorldID,
		Kind:    game.TimerBattle,
		FiresAt: testTime.Add(game.PreBattleLockout / 2),
	})
	uc := newUseCase(store)

	resp, err := uc.Start(context.Background(), StartRequest{PlayerID: 1, QuestID: game.QuestWander})
	if err != nil {
		t.Fatalf("Start error: %v", err)
	}
	if resp.Reason != game.ReasonBattleSoon {
		t.Fatalf("reason %q, want battle soon", resp.Reason)
	}
}

func TestList_FiltersByLevel(t *testing.T) {
	store := memory.NewStore()
	store.SeedPlayer(game.NewPlayer(1, testTime))
	uc := newUseCase(store)

	resp, err := uc.List(context.Background(), ListRequest{PlayerID: 1})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(resp.Quests) != 1 || resp.Quests[0].ID != game.QuestWander {
		t.Fatalf("level 1 quests %v, want wander only", resp.Quests)
	}
}
