package service

import "github.com/hiyoko/dailystamp/pkg/entity"

// StageFor maps the streak and total counters to a growth stage. Highest
// threshold first, first match wins; either counter alone can satisfy a
// row. Deterministic, no side effects.
func StageFor(consecutive, total int) entity.Stage {
	switch {
	case consecutive >= 30 || total >= 40:
		return entity.StagePhoenix
	case consecutive >= 14 || total >= 20:
		return entity.StageHawk
	case consecutive >= 7 || total >= 10:
		return entity.StageChicken
	case consecutive >= 3 || total >= 5:
		return entity.StageChick
	default:
		return entity.StageEgg
	}
}
