package service_test

import (
	"testing"
	"time"

	"github.com/hiyoko/dailystamp/internal/service"
	"github.com/hiyoko/dailystamp/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestAdvanceProgressConsecutiveDays(t *testing.T) {
	t.Parallel()
	profile := &entity.Profile{CurrentStage: entity.StageEgg}
	dates := []time.Time{day("2025-04-01"), day("2025-04-02"), day("2025-04-03")}
	for _, d := range dates {
		service.AdvanceProgress(profile, d)
	}
	assert.Equal(t, 3, profile.TotalDaysBrushed)
	assert.Equal(t, 3, profile.ConsecutiveDaysBrushed)
	assert.Equal(t, entity.StageChick, profile.CurrentStage)
	assert.Equal(t, day("2025-04-03"), profile.StageStartDate)
	require.NotNil(t, profile.LastBrushDate)
	assert.Equal(t, day("2025-04-03"), *profile.LastBrushDate)
}

func TestAdvanceProgressGapResetsStreak(t *testing.T) {
	t.Parallel()
	profile := &entity.Profile{CurrentStage: entity.StageEgg}
	for _, d := range []time.Time{day("2025-04-01"), day("2025-04-02"), day("2025-04-05")} {
		service.AdvanceProgress(profile, d)
	}
	assert.Equal(t, 3, profile.TotalDaysBrushed)
	assert.Equal(t, 1, profile.ConsecutiveDaysBrushed)
	assert.Equal(t, entity.StageEgg, profile.CurrentStage)
}

func TestAdvanceProgressBackfillResetsStreak(t *testing.T) {
	t.Parallel()
	profile := &entity.Profile{CurrentStage: entity.StageEgg}
	for _, d := range []time.Time{day("2025-04-10"), day("2025-04-11"), day("2025-04-05")} {
		service.AdvanceProgress(profile, d)
	}
	assert.Equal(t, 3, profile.TotalDaysBrushed)
	assert.Equal(t, 1, profile.ConsecutiveDaysBrushed)
	require.NotNil(t, profile.LastBrushDate)
	assert.Equal(t, day("2025-04-05"), *profile.LastBrushDate)
}

func TestAdvanceProgressSameDayKeepsStreak(t *testing.T) {
	t.Parallel()
	profile := &entity.Profile{CurrentStage: entity.StageEgg}
	service.AdvanceProgress(profile, day("2025-04-01"))
	service.AdvanceProgress(profile, day("2025-04-02"))
	service.AdvanceProgress(profile, day("2025-04-02"))
	assert.Equal(t, 3, profile.TotalDaysBrushed)
	assert.Equal(t, 2, profile.ConsecutiveDaysBrushed)
}

func TestAdvanceProgressStageKeptByTotal(t *testing.T) {
	t.Parallel()
	// 40 days with gaps everywhere: total alone carries phoenix, a broken
	// streak must not demote it.
	profile := &entity.Profile{CurrentStage: entity.StageEgg}
	d := day("2025-01-01")
	for i := 0; i < 40; i++ {
		service.AdvanceProgress(profile, d)
		d = d.AddDate(0, 0, 2)
	}
	assert.Equal(t, 40, profile.TotalDaysBrushed)
	assert.Equal(t, 1, profile.ConsecutiveDaysBrushed)
	assert.Equal(t, entity.StagePhoenix, profile.CurrentStage)

	service.AdvanceProgress(profile, d.AddDate(0, 0, 5))
	assert.Equal(t, entity.StagePhoenix, profile.CurrentStage)
}

func TestAdvanceProgressStageStartDateOnlyMovesOnChange(t *testing.T) {
	t.Parallel()
	profile := &entity.Profile{CurrentStage: entity.StageEgg}
	for _, d := range []time.Time{day("2025-04-01"), day("2025-04-02"), day("2025-04-03"), day("2025-04-04")} {
		service.AdvanceProgress(profile, d)
	}
	// Chick since day three; day four is still chick.
	assert.Equal(t, entity.StageChick, profile.CurrentStage)
	assert.Equal(t, day("2025-04-03"), profile.StageStartDate)
}
