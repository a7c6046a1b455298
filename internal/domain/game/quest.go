package game

import (
	"math/rand"
	"time"
)

type QuestID int

const (
	QuestNone   QuestID = 0
	QuestWander QuestID = 1
	QuestThieve QuestID = 2
)

type Quest struct {
	ID          QuestID
	Name        string
	Description string
	StatusMsg   string
	PartingMsg  string
	Duration    time.Duration
	StaminaCost int
	MinLevel    int
}

// QuestResult is the rolled outcome of a finished quest. HP may be
// negative (injury) or positive (rest).
type QuestResult struct {
	Description string
	Gold        int
	Exp         int
	HP          int
}

var quests = []Quest{
	{
		ID:          QuestWander,
		Name:        "👣Wander around the town",
		Description: "You decide to wander around the town in the hope that something interesting will happen",
		StatusMsg:   "👣 Wandering around the town",
		PartingMsg:  "You start to wander around the town",
		Duration:    3 * time.Minute,
		StaminaCost: 1,
		MinLevel:    0,
	},
	{
		ID:          QuestThieve,
		Name:        "🗡️Thieve",
		Description: "Thieving is a dangerous activity. Someone can notice you and beat you up. But if you go unnoticed, you will acquire a lot of loot.",
		StatusMsg:   "🗡️ Thieving in the town",
		PartingMsg:  `This is not a fair world so you decide to take "what you deserve" with your own hands`,
		Duration:    2 * time.Minute,
		StaminaCost: 2,
		MinLevel:    3,
	},
}

func Quests() []Quest { return quests }

func QuestByID(id QuestID) (Quest, bool) {
	for _, q := range quests {
		if q.ID == id {
			return q, true
		}
	}
	return Quest{}, false
}

type outcomeQuality int

const (
	qualityBad outcomeQuality = iota
	qualityNormal
	qualityGood
)

var wanderBad = []string{
	"You helped a blacksmith with the chores. One of your fingers got hurt with a hammer", // injury roll
	"You stepped on a pile of poop, lucky day :/",
	"You came back empty handed and bored",
	"A wagon passed near you and splashed water from a puddle, your clothes are wet and stinky",
	"You wandered around for a while but nothing interesting happened",
}

var wanderNormal = []string{
	"You were walking around when you noticed a gold coin on the floor!", // single coin roll
	"You helped a peasant with the crops. It was hard work but you feel pleased about helping people... and charging for it.",
	"A merchant asked for your help to transport some of his cargo to the main plaza, you helped him and received a reward",
	"In a dark alley you saw a thief threatening an old man, you helped him and shared the loot",
	`You saw some rats in an alley, you killed them and sold their pelt as "rabbit pelt" to a local merchant`,
	"You ran some errands for a butcher, he paid you with a piece of bacon, you sold it to a fat guy for some gold",
	"An old retired knight asked you to run some errands",
	"A knight paid you to bathe and feed his horse",
	"You worked as a helper in the inn's kitchen",
}

var wanderGood = []string{
	"You gave a hand cleaning the inn. They allowed you to take a snap in one of their comfortable beds", // healing roll
	"As you were walking in the crowded market you saw some gold coins falling from the pocket of a beautiful lady, you politely picked the coins and disappeared in the crowd",
	"Wandering around you accidentally kicked an old pot near other trash, the pot broke and inside you found some gold coins!",
	"You came across a magician asking for help to brew a potion. You helped him to brew the potion, then he drunk it and became a talking frog, you sold the frog to a local pet shop",
}

// RollWander draws a weighted bad/normal/good outcome for the Wander
// quest. The first description of each pool carries its special reward
// shape (injury, single coin, healing).
func RollWander(rng *rand.Rand) QuestResult {
	quality := qualityNormal
	switch roll := rng.Intn(100); {
	case roll < 10:
		quality = qualityBad
	case roll >= 90:
		quality = qualityGood
	}

	switch quality {
	case qualityBad:
		desc := wanderBad[rng.Intn(len(wanderBad))]
		if desc == wanderBad[0] {
			return QuestResult{
				Description: desc,
				Gold:        randBetween(rng, 1, 2),
				Exp:         randBetween(rng, 1, 2),
				HP:          -randBetween(rng, 5, 10),
			}
		}
		return QuestResult{Description: desc}
	case qualityGood:
		desc := wanderGood[rng.Intn(len(wanderGood))]
		if desc == wanderGood[0] {
			return QuestResult{
				Description: desc,
				Gold:        randBetween(rng, 2, 3),
				Exp:         randBetween(rng, 2, 3),
				HP:          randBetween(rng, 5, 10),
			}
		}
		return QuestResult{
			Description: desc,
			Gold:        randBetween(rng, 3, 4),
			Exp:         randBetween(rng, 2, 3),
		}
	default:
		desc := wanderNormal[rng.Intn(len(wanderNormal))]
		if desc == wanderNormal[0] {
			return QuestResult{Description: desc, Gold: 1, Exp: randBetween(rng, 1, 2)}
		}
		return QuestResult{
			Description: desc,
			Gold:        randBetween(rng, 1, 2),
			Exp:         randBetween(rng, 1, 2),
		}
	}
}
