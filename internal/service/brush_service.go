package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/hiyoko/dailystamp/internal/error_values"
	"github.com/hiyoko/dailystamp/internal/repository"
	"github.com/hiyoko/dailystamp/pkg/entity"
)

type BrushService struct {
	repo repository.BrushesRepositoryI
}

func NewBrushService(brushesRepo repository.BrushesRepositoryI) *BrushService {
	if brushesRepo == nil {
		log.Fatal("provided nil brushesRepo")
	}
	return &BrushService{
		repo: brushesRepo,
	}
}

// RecordBrush upserts the record for (uid, date). An existing record only
// gets its stamps replaced: the day already contributed to the counters
// once. A new record commits together with the counter update.
func (bs *BrushService) RecordBrush(ctx context.Context, uid uuid.UUID, date time.Time, stamps []string) (*entity.Brush, error) {
	existing, err := bs.repo.GetByUserAndDate(ctx, uid, date)
	if err == nil {
		return bs.replaceStamps(ctx, existing.ID, stamps)
	}
	if !errors.Is(err, errorvalues.ErrBrushNotFound) {
		return nil, errors.New("brushes repository error: " + err.Error())
	}
	brush := &entity.Brush{
		UserID: uid,
		Date:   date,
		Stamps: stamps,
	}
	created, _, err := bs.repo.CreateWithProgress(ctx, brush, func(p *entity.Profile) {
		AdvanceProgress(p, date)
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrBrushExists) {
			// Lost the race for the first record of this date; the winner
			// owns the counter update, we only replace stamps
			existing, err := bs.repo.GetByUserAndDate(ctx, uid, date)
			if err != nil {
				return nil, errors.New("brushes repository error: " + err.Error())
			}
			return bs.replaceStamps(ctx, existing.ID, stamps)
		}
		return nil, errors.New("brushes repository error: " + err.Error())
	}
	return created, nil
}

func (bs *BrushService) replaceStamps(ctx context.Context, id int64, stamps []string) (*entity.Brush, error) {
	updated, err := bs.repo.UpdateStamps(ctx, id, stamps)
	if err != nil {
		return nil, errors.New("brushes repository error: " + err.Error())
	}
	return updated, nil
}

func (bs *BrushService) GetMonthBrushes(ctx context.Context, uid uuid.UUID, month string) ([]entity.Brush, error) {
	from, to, err := monthRange(month)
	if err != nil {
		return nil, err
	}
	brushes, err := bs.repo.GetByUserAndDateRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("brushes repository error: " + err.Error())
	}
	return brushes, nil
}

// monthRange turns a strict YYYY-MM string into the inclusive [first,
// last] day window of that calendar month.
func monthRange(month string) (time.Time, time.Time, error) {
	if len(month) != len("2006-01") {
		return time.Time{}, time.Time{}, errorvalues.ErrInvalidMonth
	}
	from, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, errorvalues.ErrInvalidMonth
	}
	to := from.AddDate(0, 1, -1)
	return from, to, nil
}
