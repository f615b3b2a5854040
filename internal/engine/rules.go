package engine

import (
	"github.com/KitchAIv1/statjam-sub000/internal/models"
)

var allowedModifiers = map[models.StatType][]models.Modifier{
	models.StatTypeFieldGoal:    {models.ModifierMade, models.ModifierMissed},
	models.StatTypeThreePointer: {models.ModifierMade, models.ModifierMissed},
	models.StatTypeFreeThrow:    {models.ModifierMade, models.ModifierMissed},
	models.StatTypeRebound:      {models.ModifierOffensive, models.ModifierDefensive},
	models.StatTypeAssist:       {models.ModifierNone},
	models.StatTypeSteal:        {models.ModifierNone},
	models.StatTypeBlock:        {models.ModifierNone},
	models.StatTypeTimeout:      {models.ModifierNone},
	models.StatTypeSubstitution: {models.ModifierNone},
	models.StatTypeFoul:         {models.ModifierPersonal, models.ModifierTechnical},
	models.StatTypeTurnover: {
		models.ModifierBadPass,
		models.ModifierLostBall,
		models.ModifierTravel,
		models.ModifierDoubleDribble,
		models.ModifierOffensiveFoul,
		models.ModifierOutOfBounds,
		models.ModifierShotClock,
		models.ModifierThreeSeconds,
		models.ModifierBackcourt,
		models.ModifierOtherTurnover,
	},
}

// AllowedPair returns true if modifier may qualify statType
func AllowedPair(statType models.StatType, modifier models.Modifier) bool {
	for _, m := range allowedModifiers[statType] {
		if m == modifier {
			return true
		}
	}
	return false
}

// PointValue returns the points a stat contributes to the acting team
func PointValue(statType models.StatType, modifier models.Modifier) int {
	if modifier != models.ModifierMade {
		return 0
	}
	switch statType {
	case models.StatTypeFieldGoal:
		return 2
	case models.StatTypeThreePointer:
		return 3
	case models.StatTypeFreeThrow:
		return 1
	default:
		return 0
	}
}

// allowedWhileStopped lists the dead-ball actions that may be recorded with the clock stopped.
// A missed free throw is a live-ball action and is not in this list.
func allowedWhileStopped(statType models.StatType, modifier models.Modifier) bool {
	switch statType {
	case models.StatTypeSubstitution, models.StatTypeTimeout:
		return true
	case models.StatTypeFreeThrow:
		return modifier == models.ModifierMade
	default:
		return false
	}
}
