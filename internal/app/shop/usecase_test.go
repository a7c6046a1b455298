package shop

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
		Now:       func() time.Time { return testTime },
	}
}

func seedCatalog(t *testing.T, store *memory.Store) {
	t.Helper()
	items := memory.NewItemRepo(store)
	for _, b := range game.BaseItems() {
		if err := items.UpsertBase(context.Background(), b); err != nil {
			t.Fatalf("seed base %d: %v", b.ID, err)
		}
	}
}

func seedPlayer(store *memory.Store, id int64, gold int) {
	p := game.NewPlayer(id, testTime)
	p.Gold = gold
	store.SeedPlayer(p)
}

func TestList(t *testing.T) {
	store := memory.NewStore()
	seedCatalog(t, store)
	seedPlayer(store, 1, 7)
	uc := newUseCase(store)

	resp, err := uc.List(context.Background(), ListRequest{PlayerID: 1})
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if resp.Reason != game.ReasonOK || resp.Gold != 7 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Offers) != len(game.BaseItems())+1 {
		t.Fatalf("%d offers, want catalog plus name reset", len(resp.Offers))
	}
	first := resp.Offers[0]
	if first.Base.ID != NameResetID || first.Price != game.ResetNameCost {
		t.Fatalf("first offer %+v, want name reset", first)
	}
}

func TestBuy(t *testing.T) {
	store := memory.NewStore()
	seedCatalog(t, store)
	seedPlayer(store, 1, 10)
	uc := newUseCase(store)

	resp, err := uc.Buy(context.Background(), BuyRequest{PlayerID: 1, BaseID: 1})
	if err != nil {
		t.Fatalf("Buy error: %v", err)
	}
	if resp.Reason != game.ReasonOK || resp.Gold != 7 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Item.Slot != game.SlotBag || resp.Item.BaseID != 1 {
		t.Fatalf("bought item %+v, want base 1 in bag", resp.Item)
	}
	if resp.Item.MaxAttack != 5 {
		t.Fatalf("item stats not copied from base: %+v", resp.Item)
	}
	p, _ := store.PlayerState(1)
	if p.Gold != 7 {
		t.Fatalf("persisted gold %d", p.Gold)
	}
}

func TestBuy_RefusedWithoutGold(t *testing.T) {
	store := memory.NewStore()
	seedCatalog(t, store)
	seedPlayer(store, 1, 2)
	uc := newUseCase(store)

	resp, err := uc.Buy(context.Background(), BuyRequest{PlayerID: 1, BaseID: 1})
	if err != nil {
		t.Fatalf("Buy error: %v", err)
	}
	if resp.Reason != game.ReasonNoGold {
		t.Fatalf("reason %q, want no gold", resp.Reason)
	}
}

func TestBuy_RefusedWhenBagFull(t *testing.T) {
	store := memory.NewStore()
	seedCatalog(t, store)
	p := game.NewPlayer(1, testTime)
	p.Gold = 100
	p.BagSize = 1
	store.SeedPlayer(p)
	uc := newUseCase(store)
	ctx := context.Background()

	if _, err := uc.Buy(ctx, BuyRequest{PlayerID: 1, BaseID: 1}); err != nil {
		t.Fatalf("first buy: %v", err)
	}
	resp, err := uc.Buy(ctx, BuyRequest{PlayerID: 1, BaseID: 1})
	if err != nil {
		t.Fatalf("second buy: %v", err)
	}
	if resp.Reason != game.ReasonBagFull {
		t.Fatalf("reason %q, want bag full", resp.Reason)
	}
}

func TestBuy_UnknownBase(t *testing.T) {
	store := memory.NewStore()
	seedCatalog(t, store)
	seedPlayer(store, 1, 10)
	uc := newUseCase(store)

	resp, err := uc.Buy(context.Background(), BuyRequest{PlayerID: 1, BaseID: 99})
	if err != nil {
		t.Fatalf("Buy error: %v", err)
	}
	if resp.Reason != game.ReasonNotFound {
		t.Fatalf("reason %q, want not found", resp.Reason)
	}
}

func TestBuy_NameReset(t *testing.T) {
	store := memory.NewStore()
	p := game.NewPlayer(1, testTime)
	p.Name = "Ada"
	p.Gold = game.ResetNameCost + 5
	store.SeedPlayer(p)
	uc := newUseCase(store)

	resp, err := uc.Buy(context.Background(), BuyRequest{PlayerID: 1, BaseID: NameResetID})
	if err != nil {
		t.Fatalf("Buy error: %v", err)
	}
	if resp.Reason != game.ReasonOK || !resp.NameReset || resp.Gold != 5 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	got, _ := store.PlayerState(1)
	if got.Name != "" {
		t.Fatalf("name %q, want forgotten", got.Name)
	}
}

func TestSell(t *testing.T) {
	store := memory.NewStore()
	seedCatalog(t, store)
	seedPlayer(store, 1, 10)
	uc := newUseCase(store)
	ctx := context.Background()

	bought, err := uc.Buy(ctx, BuyRequest{PlayerID: 1, BaseID: 1})
	if err != nil {
		t.Fatalf("Buy error: %v", err)
	}
	resp, err := uc.Sell(ctx, SellRequest{PlayerID: 1, ItemID: bought.Item.ID})
	if err != nil {
		t.Fatalf("Sell error: %v", err)
	}
	if resp.Reason != game.ReasonOK || resp.Price != 1 || resp.Gold != 8 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if _, err := memory.NewItemRepo(store).Get(ctx, bought.Item.ID, 1); err == nil {
		t.Fatal("sold item still owned")
	}
}

func TestSell_RefusedWhileEquipped(t *testing.T) {
	store := memory.NewStore()
	seedCatalog(t, store)
	seedPlayer(store, 1, 10)
	uc := newUseCase(store)
	ctx := context.Background()
	items := memory.NewItemRepo(store)

	bought, err := uc.Buy(ctx, BuyRequest{PlayerID: 1, BaseID: 1})
	if err != nil {
		t.Fatalf("Buy error: %v", err)
	}
	item := bought.Item
	item.Slot = game.SlotHands
	if err := items.Save(ctx, item); err != nil {
		t.Fatalf("equip item: %v", err)
	}

	resp, err := uc.Sell(ctx, SellRequest{PlayerID: 1, ItemID: item.ID})
	if err != nil {
		t.Fatalf("Sell error: %v", err)
	}
	if resp.Reason != game.ReasonBusy {
		t.Fatalf("reason %q, want busy", resp.Reason)
	}
}
