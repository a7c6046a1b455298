// Package httpadapter maps game commands 1:1 onto HTTP endpoints. The
// acting player is identified by the X-Player-ID header; command
// outcomes travel in the response body, HTTP errors are reserved for
// malformed requests and infrastructure faults.
package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"strings"

	"deltaland/internal/app/battle"
	"deltaland/internal/app/inventory"
	"deltaland/internal/app/join"
	"deltaland/internal/app/leave"
	"deltaland/internal/app/ports"
	"deltaland/internal/app/profile"
	"deltaland/internal/app/quest"
	"deltaland/internal/app/ranking"
	"deltaland/internal/app/shop"
	"deltaland/internal/app/skills"
	"deltaland/internal/app/status"
	"deltaland/internal/app/tavern"
	"deltaland/internal/app/thief"
	"deltaland/internal/domain/game"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

const playerIDHeader = "X-Player-ID"

type Handler struct {
	JoinUC      join.UseCase
	LeaveUC     leave.UseCase
	ProfileUC   profile.UseCase
	StatusUC    status.UseCase
	QuestUC     quest.UseCase
	BattleUC    battle.UseCase
	TavernUC    tavern.UseCase
	ThiefUC     thief.UseCase
	ShopUC      shop.UseCase
	InventoryUC inventory.UseCase
	SkillsUC    skills.UseCase
	RankingUC   ranking.UseCase
	Metrics     metricsSnapshotProvider
}

func (h Handler) RegisterRoutes(s *server.Hertz) {
	s.Use(corsMiddleware())

	player := s.Group("/api/player")
	player.POST("/join", h.join)
	player.POST("/leave", h.leave)
	player.POST("/name", h.setName)
	player.POST("/status", h.status)

	questGroup := s.Group("/api/quest")
	questGroup.POST("/list", h.questList)
	questGroup.POST("/start", h.questStart)

	battleGroup := s.Group("/api/battle")
	battleGroup.POST("/tactic", h.chooseTactic)
	battleGroup.POST("/report", h.battleReport)

	tavernGroup := s.Group("/api/tavern")
	tavernGroup.POST("/dice", h.dice)
	tavernGroup.POST("/cauldron", h.tossCoin)

	s.POST("/api/thief/interfere", h.interfere)

	shopGroup := s.Group("/api/shop")
	shopGroup.POST("/list", h.shopList)
	shopGroup.POST("/buy", h.shopBuy)
	shopGroup.POST("/sell", h.shopSell)

	invGroup := s.Group("/api/inventory")
	invGroup.POST("/list", h.inventoryList)
	invGroup.POST("/equip", h.equip)
	invGroup.POST("/unequip", h.unequip)

	skillGroup := s.Group("/api/skills")
	skillGroup.POST("/list", h.skillList)
	skillGroup.POST("/learn", h.skillLearn)

	s.POST("/api/ranking", h.ranking)
	s.GET("/ops/metrics", h.metrics)
}

func (h Handler) join(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.JoinUC.Execute(c, join.Request{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) leave(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.LeaveUC.Execute(c, leave.Request{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type setNameRequest struct {
	Name string `json:"name"`
}

func (h Handler) setName(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body setNameRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ProfileUC.SetName(c, profile.SetNameRequest{PlayerID: playerID, Name: body.Name})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) status(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.StatusUC.Execute(c, status.Request{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) questList(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.QuestUC.List(c, quest.ListRequest{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type questStartRequest struct {
	QuestID int `json:"quest_id"`
}

func (h Handler) questStart(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body questStartRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.QuestUC.Start(c, quest.StartRequest{
		PlayerID: playerID,
		QuestID:  game.QuestID(body.QuestID),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type chooseTacticRequest struct {
	Tactic string `json:"tactic"`
}

func (h Handler) chooseTactic(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body chooseTacticRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.BattleUC.ChooseTactic(c, battle.ChooseTacticRequest{
		PlayerID: playerID,
		Tactic:   body.Tactic,
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) battleReport(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.BattleUC.Report(c, battle.ReportRequest{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) dice(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.TavernUC.Dice(c, tavern.DiceRequest{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) tossCoin(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.TavernUC.TossCoin(c, tavern.TossCoinRequest{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) interfere(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.ThiefUC.Interfere(c, thief.InterfereRequest{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) shopList(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.ShopUC.List(c, shop.ListRequest{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type shopBuyRequest struct {
	BaseID int64 `json:"base_id"`
}

func (h Handler) shopBuy(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body shopBuyRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ShopUC.Buy(c, shop.BuyRequest{PlayerID: playerID, BaseID: body.BaseID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type shopSellRequest struct {
	ItemID int64 `json:"item_id"`
}

func (h Handler) shopSell(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body shopSellRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.ShopUC.Sell(c, shop.SellRequest{PlayerID: playerID, ItemID: body.ItemID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) inventoryList(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.InventoryUC.List(c, inventory.ListRequest{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type itemRequest struct {
	ItemID int64 `json:"item_id"`
}

func (h Handler) equip(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body itemRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.InventoryUC.Equip(c, inventory.EquipRequest{PlayerID: playerID, ItemID: body.ItemID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) unequip(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body itemRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.InventoryUC.Unequip(c, inventory.UnequipRequest{PlayerID: playerID, ItemID: body.ItemID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

func (h Handler) skillList(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	resp, err := h.SkillsUC.List(c, skills.ListRequest{PlayerID: playerID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type skillLearnRequest struct {
	SkillID int64 `json:"skill_id"`
}

func (h Handler) skillLearn(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body skillLearnRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.SkillsUC.Learn(c, skills.LearnRequest{PlayerID: playerID, SkillID: body.SkillID})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type rankingRequest struct {
	Board string `json:"board"`
}

func (h Handler) ranking(c context.Context, ctx *app.RequestContext) {
	playerID, err := requirePlayerID(ctx)
	if err != nil {
		writeError(ctx, err)
		return
	}
	var body rankingRequest
	if err := decodeJSON(ctx, &body); err != nil {
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_json", "invalid json")
		return
	}
	resp, err := h.RankingUC.Execute(c, ranking.Request{
		PlayerID: playerID,
		Board:    ranking.Board(body.Board),
	})
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(consts.StatusOK, resp)
}

type metricsSnapshotProvider interface {
	SnapshotAny() any
}

func (h Handler) metrics(_ context.Context, ctx *app.RequestContext) {
	if h.Metrics == nil {
		writeErrorBody(ctx, consts.StatusNotFound, "not_configured", "metrics provider not configured")
		return
	}
	ctx.JSON(consts.StatusOK, h.Metrics.SnapshotAny())
}

func decodeJSON(ctx *app.RequestContext, out any) error {
	body := ctx.Request.Body()
	if len(body) == 0 {
		return nil
	}
	return json.Unmarshal(body, out)
}

var ErrMissingPlayerIDHeader = errors.New("missing x-player-id header")
var ErrInvalidPlayerIDHeader = errors.New("invalid x-player-id header")

func requirePlayerID(ctx *app.RequestContext) (int64, error) {
	raw := strings.TrimSpace(string(ctx.GetHeader(playerIDHeader)))
	if raw == "" {
		return 0, ErrMissingPlayerIDHeader
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidPlayerIDHeader
	}
	return id, nil
}

func writeError(ctx *app.RequestContext, err error) {
	switch {
	case errors.Is(err, ErrMissingPlayerIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "missing_player_id", err.Error())
	case errors.Is(err, ErrInvalidPlayerIDHeader):
		writeErrorBody(ctx, consts.StatusBadRequest, "invalid_player_id", err.Error())
	case errors.Is(err, join.ErrInvalidRequest),
		errors.Is(err, leave.ErrInvalidRequest),
		errors.Is(err, profile.ErrInvalidRequest),
		errors.Is(err, status.ErrInvalidRequest),
		errors.Is(err, quest.ErrInvalidRequest),
		errors.Is(err, battle.ErrInvalidRequest),
		errors.Is(err, tavern.ErrInvalidRequest),
		errors.Is(err, thief.ErrInvalidRequest),
		errors.Is(err, shop.ErrInvalidRequest),
		errors.Is(err, inventory.ErrInvalidRequest),
		errors.Is(err, skills.ErrInvalidRequest),
		errors.Is(err, ranking.ErrInvalidRequest):
		writeErrorBody(ctx, consts.StatusBadRequest, "bad_request", err.Error())
	case errors.Is(err, ports.ErrNotFound):
		writeErrorBody(ctx, consts.StatusNotFound, "not_found", err.Error())
	case errors.Is(err, ports.ErrConflict):
		writeErrorBody(ctx, consts.StatusConflict, "conflict", err.Error())
	default:
		writeErrorBody(ctx, consts.StatusInternalServerError, "internal_error", "internal error")
	}
}

func writeErrorBody(ctx *app.RequestContext, status int, code, message string) {
	ctx.JSON(status, map[string]any{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
