package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/hiyoko/dailystamp/internal/error_values"
	"github.com/hiyoko/dailystamp/pkg/cleanup"
	"github.com/hiyoko/dailystamp/pkg/entity"
)

type BrushesRepository struct {
	conn PgConnection
}

func NewBrushesRepo(cfg DBConfig) *BrushesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for brushesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for brushesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing brushesRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &BrushesRepository{
		conn: pool,
	}
}

func NewBrushesRepoWithConn(conn PgConnection) *BrushesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for brushesRepo: " + err.Error())
	}
	return &BrushesRepository{
		conn: conn,
	}
}

func scanBrush(row pgx.Row) (*entity.Brush, error) {
	var b entity.Brush
	var stamps []byte
	err := row.Scan(&b.ID, &b.UserID, &b.Date, &stamps, &b.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrBrushNotFound
		}
		return nil, errors.New("brush row parsing error: " + err.Error())
	}
	if err := sonic.Unmarshal(stamps, &b.Stamps); err != nil {
		return nil, errors.New("unmarshalling stamps error: " + err.Error())
	}
	return &b, nil
}

func (br *BrushesRepository) GetByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Brush, error) {
	row := br.conn.QueryRow(
		ctx,
		`SELECT id, user_id, date, stamps, created_at FROM brushes WHERE user_id = $1 AND date = $2;`,
		uid,
		date,
	)
	return scanBrush(row)
}

func (br *BrushesRepository) UpdateStamps(ctx context.Context, id int64, stamps []string) (*entity.Brush, error) {
	encoded, err := sonic.MarshalString(stamps)
	if err != nil {
		return nil, errors.New("marshalling stamps error: " + err.Error())
	}
	row := br.conn.QueryRow(
		ctx,
		`UPDATE brushes SET stamps = $1::jsonb WHERE id = $2 RETURNING id, user_id, date, stamps, created_at;`,
		encoded,
		id,
	)
	return scanBrush(row)
}

func (br *BrushesRepository) GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Brush, error) {
	rows, err := br.conn.Query(
		ctx,
		`SELECT id, user_id, date, stamps, created_at FROM brushes WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("getting brushes for period error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.Brush, 0)
	for rows.Next() {
		b := entity.Brush{}
		var stamps []byte
		err = rows.Scan(&b.ID, &b.UserID, &b.Date, &stamps, &b.CreatedAt)
		if err != nil {
			return nil, errors.New("brush row parsing error: " + err.Error())
		}
		if err = sonic.Unmarshal(stamps, &b.Stamps); err != nil {
			return nil, errors.New("unmarshalling stamps error: " + err.Error())
		}
		result = append(result, b)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected brush rows error: " + rows.Err().Error())
	}
	return result, nil
}

// CreateWithProgress inserts the record and applies advance to the user's
// profile inside one transaction. The profile row is taken FOR UPDATE, so
// simultaneous submissions for the same user serialize and counters never
// lose an increment. Either both writes commit or neither does.
func (br *BrushesRepository) CreateWithProgress(ctx context.Context, brush *entity.Brush, advance func(p *entity.Profile)) (*entity.Brush, *entity.Profile, error) {
	encoded, err := sonic.MarshalString(brush.Stamps)
	if err != nil {
		return nil, nil, errors.New("marshalling stamps error: " + err.Error())
	}
	tx, err := br.conn.Begin(ctx)
	if err != nil {
		return nil, nil, errors.New("opening transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	created := *brush
	row := tx.QueryRow(
		ctx,
		`INSERT INTO brushes (user_id, date, stamps) VALUES ($1, $2, $3::jsonb) RETURNING id, created_at;`,
		brush.UserID,
		brush.Date,
		encoded,
	)
	if err := row.Scan(&created.ID, &created.CreatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return nil, nil, errorvalues.ErrBrushExists
			}
		}
		return nil, nil, errors.New("creating brush error: " + err.Error())
	}

	profile, err := scanProfile(tx.QueryRow(
		ctx,
		`SELECT `+profileColumns+` FROM profiles WHERE user_id = $1 FOR UPDATE;`,
		brush.UserID,
	))
	if errors.Is(err, errorvalues.ErrProfileNotFound) {
		// First brush before the profile was ever read
		profile, err = scanProfile(tx.QueryRow(
			ctx,
			`INSERT INTO profiles (user_id) VALUES ($1) RETURNING `+profileColumns+`;`,
			brush.UserID,
		))
	}
	if err != nil {
		return nil, nil, errors.New("locking profile error: " + err.Error())
	}

	advance(profile)

	ct, err := tx.Exec(
		ctx,
		`UPDATE profiles SET current_stage = $1, stage_start_date = $2, total_days_brushed = $3, consecutive_days_brushed = $4, last_brush_date = $5 WHERE user_id = $6;`,
		profile.CurrentStage,
		profile.StageStartDate,
		profile.TotalDaysBrushed,
		profile.ConsecutiveDaysBrushed,
		profile.LastBrushDate,
		profile.UserID,
	)
	if err != nil {
		return nil, nil, errors.New("updating profile error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return nil, nil, errorvalues.ErrProfileNotFound
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, nil, errors.New("committing brush with progress error: " + err.Error())
	}
	return &created, profile, nil
}
