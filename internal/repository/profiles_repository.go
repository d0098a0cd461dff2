package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/hiyoko/dailystamp/internal/error_values"
	"github.com/hiyoko/dailystamp/pkg/cleanup"
	"github.com/hiyoko/dailystamp/pkg/entity"
)

const profileColumns = `id, user_id, character_name, current_stage, stage_start_date, total_days_brushed, consecutive_days_brushed, last_brush_date`

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepo(cfg DBConfig) *ProfilesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for profilesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for profilesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing profilesRepo pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &ProfilesRepository{
		conn: pool,
	}
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for profilesRepo: " + err.Error())
	}
	return &ProfilesRepository{
		conn: conn,
	}
}

func scanProfile(row pgx.Row) (*entity.Profile, error) {
	var p entity.Profile
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.CharacterName,
		&p.CurrentStage,
		&p.StageStartDate,
		&p.TotalDaysBrushed,
		&p.ConsecutiveDaysBrushed,
		&p.LastBrushDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("profile row parsing error: " + err.Error())
	}
	return &p, nil
}

func (pr *ProfilesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	row := pr.conn.QueryRow(ctx, `SELECT `+profileColumns+` FROM profiles WHERE user_id = $1;`, uid)
	return scanProfile(row)
}

func (pr *ProfilesRepository) Create(ctx context.Context, uid uuid.UUID) (*entity.Profile, error) {
	row := pr.conn.QueryRow(ctx, `INSERT INTO profiles (user_id) VALUES ($1) RETURNING `+profileColumns+`;`, uid)
	profile, err := scanProfile(row)
	if err != nil {
		return nil, errors.New("creating profile error: " + err.Error())
	}
	return profile, nil
}

func (pr *ProfilesRepository) UpdateCharacterName(ctx context.Context, uid uuid.UUID, name string) (*entity.Profile, error) {
	row := pr.conn.QueryRow(ctx, `UPDATE profiles SET character_name = $1 WHERE user_id = $2 RETURNING `+profileColumns+`;`, name, uid)
	return scanProfile(row)
}
