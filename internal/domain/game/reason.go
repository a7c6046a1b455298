package game

// Reason classifies the outcome of a command. Anything other than
// ReasonOK is a validation failure: it is returned to the caller,
// mutates nothing and is never logged as an error.
type Reason string

const (
	ReasonOK            Reason = "ok"
	ReasonNotJoined     Reason = "not_joined"
	ReasonAlreadyJoined Reason = "already_joined"
	ReasonBusy          Reason = "busy"
	ReasonBattleSoon    Reason = "battle_soon"
	ReasonNoGold        Reason = "no_gold"
	ReasonNoStamina     Reason = "no_stamina"
	ReasonLowLevel      Reason = "low_level"
	ReasonWounded       Reason = "wounded"
	ReasonBagFull       Reason = "bag_full"
	ReasonNameSet       Reason = "name_already_set"
	ReasonInvalidName   Reason = "invalid_name"
	ReasonNotFound      Reason = "not_found"
	ReasonNotEquipable  Reason = "not_equipable"
	ReasonAlreadyTossed Reason = "already_tossed"
	ReasonNoSkillPoints Reason = "no_skill_points"
	ReasonTooLate       Reason = "too_late"
)
