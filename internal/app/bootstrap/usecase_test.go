package bootstrap

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
		Items:     memory.NewItemRepo(store),
		Skills:    memory.NewSkillRepo(store),
		Now:       func() time.Time { return testTime },
	}
}

func TestExecute_SeedsWorld(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)
	ctx := context.Background()

	if err := uc.Execute(ctx); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	world, ok := store.PlayerState(game.WorldID)
	if !ok || world.Name != "world" {
		t.Fatalf("world row %+v, %v", world, ok)
	}
	bases, _ := memory.NewItemRepo(store).ListShop(ctx)
	if len(bases) != len(game.BaseItems()) {
		t.Fatalf("%d base items seeded", len(bases))
	}
	skills, _ := memory.NewSkillRepo(store).ListBases(ctx)
	if len(skills) != len(game.BaseSkills()) {
		t.Fatalf("%d base skills seeded", len(skills))
	}

	timers := memory.NewTimerRepo(store)
	for _, kind := range []game.TimerKind{game.TimerBattle, game.TimerDay, game.TimerMonth, game.TimerYear} {
		if _, err := timers.Get(ctx, game.WorldID, kind); err != nil {
			t.Fatalf("world clock %q not armed: %v", kind, err)
		}
	}
	day, _ := timers.Get(ctx, game.WorldID, game.TimerDay)
	if !day.FiresAt.Equal(game.NextDayBoundary(testTime)) {
		t.Fatalf("day clock at %v", day.FiresAt)
	}
}

func TestExecute_Idempotent(t *testing.T) {
	store := memory.NewStore()
	uc := newUseCase(store)
	ctx := context.Background()

	if err := uc.Execute(ctx); err != nil {
		t.Fatalf("first boot: %v", err)
	}
	battle, _ := memory.NewTimerRepo(store).Get(ctx, game.WorldID, game.TimerBattle)

	later := testTime.Add(26 * time.Hour)
	uc.Now = func() time.Time { return later }
	if err := uc.Execute(ctx); err != nil {
		t.Fatalf("second boot: %v", err)
	}
	again, _ := memory.NewTimerRepo(store).Get(ctx, game.WorldID, game.TimerBattle)
	if !again.FiresAt.Equal(battle.FiresAt) {
		t.Fatalf("battle clock moved from %v to %v", battle.FiresAt, again.FiresAt)
	}
}
