package service

import (
	"time"

	"github.com/hiyoko/dailystamp/pkg/entity"
)

// AdvanceProgress applies a first-time brush on date to the profile in
// place: bumps the total, extends or resets the streak, and recomputes
// the stage. Must run exactly once per created record, inside the ledger
// transaction.
func AdvanceProgress(p *entity.Profile, date time.Time) {
	p.TotalDaysBrushed++
	switch {
	case p.LastBrushDate == nil:
		p.ConsecutiveDaysBrushed = 1
	case sameDay(date, p.LastBrushDate.AddDate(0, 0, 1)):
		p.ConsecutiveDaysBrushed++
	case sameDay(date, *p.LastBrushDate):
		// Should not happen through the ledger, tolerated without
		// touching the streak
	default:
		// Gap or out-of-order backfill resets the streak
		p.ConsecutiveDaysBrushed = 1
	}
	d := date
	p.LastBrushDate = &d

	newStage := StageFor(p.ConsecutiveDaysBrushed, p.TotalDaysBrushed)
	if newStage != p.CurrentStage {
		p.CurrentStage = newStage
		p.StageStartDate = date
	}
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
