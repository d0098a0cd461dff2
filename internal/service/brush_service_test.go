package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/hiyoko/dailystamp/internal/error_values"
	"github.com/hiyoko/dailystamp/internal/repository/mocks"
	"github.com/hiyoko/dailystamp/internal/service"
	"github.com/hiyoko/dailystamp/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordBrush(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	brushesRepo := mocks.NewMockBrushesRepositoryI(ctrl)

	serv := service.NewBrushService(brushesRepo)
	uid := uuid.New()
	date := day("2025-04-02")
	stamps := []string{"brushing_completed"}
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
		CheckResult  func(t *testing.T, brush *entity.Brush)
	}{
		{
			Desc:  "new date inserts and advances counters once",
			Error: nil,
			MockPrepFunc: func() {
				brushesRepo.EXPECT().
					GetByUserAndDate(gomock.Any(), uid, date).
					Return(nil, errorvalues.ErrBrushNotFound)
				brushesRepo.EXPECT().
					CreateWithProgress(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, brush *entity.Brush, advance func(*entity.Profile)) (*entity.Brush, *entity.Profile, error) {
						last := date.AddDate(0, 0, -1)
						profile := &entity.Profile{
							UserID:                 uid,
							CurrentStage:           entity.StageEgg,
							TotalDaysBrushed:       1,
							ConsecutiveDaysBrushed: 1,
							LastBrushDate:          &last,
						}
						advance(profile)
						assert.Equal(t, 2, profile.TotalDaysBrushed)
						assert.Equal(t, 2, profile.ConsecutiveDaysBrushed)
						created := *brush
						created.ID = 1
						return &created, profile, nil
					})
			},
			CheckResult: func(t *testing.T, brush *entity.Brush) {
				require.NotNil(t, brush)
				assert.Equal(t, int64(1), brush.ID)
				assert.Equal(t, stamps, brush.Stamps)
			},
		},
		{
			Desc:  "existing date only replaces stamps",
			Error: nil,
			MockPrepFunc: func() {
				brushesRepo.EXPECT().
					GetByUserAndDate(gomock.Any(), uid, date).
					Return(&entity.Brush{ID: 7, UserID: uid, Date: date, Stamps: []string{"old"}}, nil)
				brushesRepo.EXPECT().
					UpdateStamps(gomock.Any(), int64(7), stamps).
					Return(&entity.Brush{ID: 7, UserID: uid, Date: date, Stamps: stamps}, nil)
			},
			CheckResult: func(t *testing.T, brush *entity.Brush) {
				require.NotNil(t, brush)
				assert.Equal(t, stamps, brush.Stamps)
			},
		},
		{
			Desc:  "lost insert race falls back to stamps update",
			Error: nil,
			MockPrepFunc: func() {
				brushesRepo.EXPECT().
					GetByUserAndDate(gomock.Any(), uid, date).
					Return(nil, errorvalues.ErrBrushNotFound)
				brushesRepo.EXPECT().
					CreateWithProgress(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil, errorvalues.ErrBrushExists)
				brushesRepo.EXPECT().
					GetByUserAndDate(gomock.Any(), uid, date).
					Return(&entity.Brush{ID: 9, UserID: uid, Date: date, Stamps: []string{"old"}}, nil)
				brushesRepo.EXPECT().
					UpdateStamps(gomock.Any(), int64(9), stamps).
					Return(&entity.Brush{ID: 9, UserID: uid, Date: date, Stamps: stamps}, nil)
			},
			CheckResult: func(t *testing.T, brush *entity.Brush) {
				require.NotNil(t, brush)
				assert.Equal(t, int64(9), brush.ID)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			brush, err := serv.RecordBrush(ctx, uid, date, stamps)
			assert.ErrorIs(t, err, tc.Error)
			tc.CheckResult(t, brush)
		})
	}
}

func TestGetMonthBrushes(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	brushesRepo := mocks.NewMockBrushesRepositoryI(ctrl)

	serv := service.NewBrushService(brushesRepo)
	uid := uuid.New()
	returned := []entity.Brush{
		{ID: 1, UserID: uid, Date: day("2024-02-01"), Stamps: []string{"brushing_completed"}},
		{ID: 2, UserID: uid, Date: day("2024-02-29"), Stamps: []string{"brushing_completed"}},
	}
	testCases := []struct {
		Desc         string
		Error        error
		Month        string
		Result       []entity.Brush
		MockPrepFunc func()
	}{
		{
			Desc:   "leap february window",
			Error:  nil,
			Month:  "2024-02",
			Result: returned,
			MockPrepFunc: func() {
				brushesRepo.EXPECT().
					GetByUserAndDateRange(gomock.Any(), uid, day("2024-02-01"), day("2024-02-29")).
					Return(returned, nil)
			},
		},
		{
			Desc:   "december window",
			Error:  nil,
			Month:  "2025-12",
			Result: nil,
			MockPrepFunc: func() {
				brushesRepo.EXPECT().
					GetByUserAndDateRange(gomock.Any(), uid, day("2025-12-01"), day("2025-12-31")).
					Return(nil, nil)
			},
		},
		{
			Desc:         "error month out of range",
			Error:        errorvalues.ErrInvalidMonth,
			Month:        "2024-13",
			Result:       nil,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error month not zero padded",
			Error:        errorvalues.ErrInvalidMonth,
			Month:        "2024-5",
			Result:       nil,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "error month junk",
			Error:        errorvalues.ErrInvalidMonth,
			Month:        "not-a-m",
			Result:       nil,
			MockPrepFunc: func() {},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			result, err := serv.GetMonthBrushes(ctx, uid, tc.Month)
			assert.ErrorIs(t, err, tc.Error)
			assert.Equal(t, tc.Result, result)
		})
	}
}

// fakeBrushLedger imitates the transactional repository with a mutex and
// the unique (user, date) constraint so racing submissions behave like
// they do against the real database.
type fakeBrushLedger struct {
	mu      sync.Mutex
	nextID  int64
	brushes map[string]*entity.Brush
	profile entity.Profile
}

func newFakeBrushLedger() *fakeBrushLedger {
	return &fakeBrushLedger{
		nextID:  1,
		brushes: make(map[string]*entity.Brush),
		profile: entity.Profile{CurrentStage: entity.StageEgg},
	}
}

func brushKey(uid uuid.UUID, date time.Time) string {
	return uid.String() + "/" + date.Format("2006-01-02")
}

func (f *fakeBrushLedger) GetByUserAndDate(_ context.Context, uid uuid.UUID, date time.Time) (*entity.Brush, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	brush, ok := f.brushes[brushKey(uid, date)]
	if !ok {
		return nil, errorvalues.ErrBrushNotFound
	}
	found := *brush
	return &found, nil
}

func (f *fakeBrushLedger) UpdateStamps(_ context.Context, id int64, stamps []string) (*entity.Brush, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, brush := range f.brushes {
		if brush.ID == id {
			brush.Stamps = stamps
			updated := *brush
			return &updated, nil
		}
	}
	return nil, errorvalues.ErrBrushNotFound
}

func (f *fakeBrushLedger) GetByUserAndDateRange(_ context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Brush, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []entity.Brush
	for _, brush := range f.brushes {
		if brush.UserID == uid && !brush.Date.Before(from) && !brush.Date.After(to) {
			result = append(result, *brush)
		}
	}
	return result, nil
}

func (f *fakeBrushLedger) CreateWithProgress(_ context.Context, brush *entity.Brush, advance func(*entity.Profile)) (*entity.Brush, *entity.Profile, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	key := brushKey(brush.UserID, brush.Date)
	if _, ok := f.brushes[key]; ok {
		return nil, nil, errorvalues.ErrBrushExists
	}
	created := &entity.Brush{
		ID:     f.nextID,
		UserID: brush.UserID,
		Date:   brush.Date,
		Stamps: brush.Stamps,
	}
	f.nextID++
	f.brushes[key] = created
	advance(&f.profile)
	result := *created
	profile := f.profile
	return &result, &profile, nil
}

func TestRecordBrushConcurrentSameDate(t *testing.T) {
	t.Parallel()
	ledger := newFakeBrushLedger()
	serv := service.NewBrushService(ledger)
	uid := uuid.New()
	date := day("2025-04-01")

	ctx := context.Background()
	var wg sync.WaitGroup
	const submitters = 16
	errs := make(chan error, submitters)
	for i := 0; i < submitters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := serv.RecordBrush(ctx, uid, date, []string{"brushing_completed"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, 1, ledger.profile.TotalDaysBrushed)
	assert.Equal(t, 1, ledger.profile.ConsecutiveDaysBrushed)
	assert.Len(t, ledger.brushes, 1)
}
