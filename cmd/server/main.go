package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	httpadapter "deltaland/internal/adapter/http"
	metricsinmem "deltaland/internal/adapter/metrics/inmemory"
	"deltaland/internal/adapter/notify/lognotify"
	gormrepo "deltaland/internal/adapter/repo/gorm"
	"deltaland/internal/app/battle"
	"deltaland/internal/app/bootstrap"
	"deltaland/internal/app/inventory"
	"deltaland/internal/app/join"
	"deltaland/internal/app/leave"
	"deltaland/internal/app/profile"
	"deltaland/internal/app/quest"
	"deltaland/internal/app/ranking"
	"deltaland/internal/app/scheduler"
	"deltaland/internal/app/shop"
	"deltaland/internal/app/skills"
	"deltaland/internal/app/status"
	"deltaland/internal/app/tavern"
	"deltaland/internal/app/thief"
	"deltaland/internal/platform/config"

	"github.com/cloudwego/hertz/pkg/app/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := gormrepo.OpenPostgres(cfg.DBDSN)
	if err != nil {
		log.Fatalf("open postgres: %v", err)
	}
	if err := gormrepo.ApplyMigrations(context.Background(), db, cfg.MigrationsDir); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	txManager := gormrepo.NewTxManager(db)
	players := gormrepo.NewPlayerRepo(db)
	timers := gormrepo.NewTimerRepo(db)
	items := gormrepo.NewItemRepo(db)
	skillRepo := gormrepo.NewSkillRepo(db)
	ranks := gormrepo.NewRankRepo(db)
	battles := gormrepo.NewBattleRepo(db)
	cauldron := gormrepo.NewCauldronRepo(db)

	notifier := lognotify.New()
	recorder := metricsinmem.NewRecorder()
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	seed := bootstrap.UseCase{
		TxManager: txManager,
		Players:   players,
		Timers:    timers,
		Items:     items,
		Skills:    skillRepo,
		Now:       time.Now,
	}
	if err := seed.Execute(context.Background()); err != nil {
		log.Fatalf("bootstrap world: %v", err)
	}

	loop := &scheduler.Loop{
		TxManager: txManager,
		Timers:    timers,
		Players:   players,
		Battles:   battles,
		Ranks:     ranks,
		Cauldron:  cauldron,
		Notifier:  notifier,
		Metrics:   recorder,
		Now:       time.Now,
		Rng:       rng,
		Interval:  cfg.TickInterval,
	}
	loopCtx, stopLoop := context.WithCancel(context.Background())
	defer stopLoop()
	go loop.Run(loopCtx)

	h := httpadapter.Handler{
		JoinUC: join.UseCase{TxManager: txManager, Players: players, Now: time.Now},
		LeaveUC: leave.UseCase{
			TxManager: txManager, Players: players, Timers: timers, Items: items,
			Skills: skillRepo, Ranks: ranks, Battles: battles, Cauldron: cauldron,
		},
		ProfileUC: profile.UseCase{TxManager: txManager, Players: players, Timers: timers, Now: time.Now},
		StatusUC:  status.UseCase{TxManager: txManager, Players: players, Timers: timers, Items: items, Now: time.Now},
		QuestUC:   quest.UseCase{TxManager: txManager, Players: players, Timers: timers, Now: time.Now},
		BattleUC:  battle.UseCase{TxManager: txManager, Players: players, Timers: timers, Battles: battles, Now: time.Now},
		TavernUC: tavern.UseCase{
			TxManager: txManager, Players: players, Timers: timers, Ranks: ranks,
			Cauldron: cauldron, Notifier: notifier, Now: time.Now, Rng: rng,
		},
		ThiefUC: thief.UseCase{
			TxManager: txManager, Players: players, Timers: timers, Ranks: ranks,
			Notifier: notifier, Now: time.Now, Rng: rng,
		},
		ShopUC:      shop.UseCase{TxManager: txManager, Players: players, Timers: timers, Items: items, Now: time.Now},
		InventoryUC: inventory.UseCase{TxManager: txManager, Players: players, Timers: timers, Items: items, Now: time.Now},
		SkillsUC:    skills.UseCase{TxManager: txManager, Players: players, Timers: timers, Skills: skillRepo, Now: time.Now},
		RankingUC:   ranking.UseCase{TxManager: txManager, Players: players, Ranks: ranks, Now: time.Now},
		Metrics:     recorder,
	}

	s := server.Default(server.WithHostPorts(cfg.ListenAddr))
	h.RegisterRoutes(s)

	log.Printf("deltaland server listening on %s", cfg.ListenAddr)
	s.Spin()
}
