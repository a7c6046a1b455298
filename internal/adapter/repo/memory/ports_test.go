package memory

import "deltaland/internal/app/ports"

var (
	_ ports.TxManager          = TxManager{}
	_ ports.PlayerRepository   = PlayerRepo{}
	_ ports.TimerRepository    = TimerRepo{}
	_ ports.ItemRepository     = ItemRepo{}
	_ ports.RankRepository     = RankRepo{}
	_ ports.BattleRepository   = BattleRepo{}
	_ ports.CauldronRepository = CauldronRepo{}
	_ ports.SkillRepository    = SkillRepo{}
)
