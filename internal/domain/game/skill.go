package game

// BaseSkill is a learnable skill template. Each learned level applies
// the listed stat bonuses once.
type BaseSkill struct {
	ID          int64
	Name        string
	Description string
	MinAtk      int
	MaxAtk      int
	MinDef      int
	MaxDef      int
	MaxHP       int
}

// Skill is a player's learned level of a base skill.
type Skill struct {
	BaseID   int64
	PlayerID int64
	Level    int
}

// Apply raises the player's stats by one level of the skill.
func (b BaseSkill) Apply(p *Player) {
	p.Attack += b.MinAtk
	p.MaxAttack += b.MaxAtk
	p.Defense += b.MinDef
	p.MaxDefense += b.MaxDef
	p.MaxHP += b.MaxHP
	p.HP += b.MaxHP
}

// BaseSkills is the skill catalog seeded on first boot.
func BaseSkills() []BaseSkill {
	return []BaseSkill{
		{ID: 1, Name: "Brawler", Description: "Increase base attack +1⚔️ per level", MinAtk: 1, MaxAtk: 1},
		{ID: 2, Name: "Sturdy Body", Description: "Increase base defense +2🛡️ per level", MinDef: 2, MaxDef: 2},
		{ID: 3, Name: "Constitution", Description: "Increase life points +10❤️ per level", MaxHP: 10},
	}
}
