package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hiyoko/dailystamp/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user in database
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by email. Can be used for login
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type ProfilesRepositoryI interface {
	// Searches profile of user with uid
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Creates profile with default zeroed state for user with uid
	Create(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Renames the guide character on user's profile
	UpdateCharacterName(ctx context.Context, uid uuid.UUID, name string) (*entity.Profile, error)
}

type BrushesRepositoryI interface {
	// Searches brush record of user for a calendar date
	GetByUserAndDate(ctx context.Context, uid uuid.UUID, date time.Time) (*entity.Brush, error)
	// Replaces stamps on an existing record. Counters are not touched
	UpdateStamps(ctx context.Context, id int64, stamps []string) (*entity.Brush, error)
	// Lists records of user with date in [from, to] inclusive
	GetByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.Brush, error)
	// Inserts a first-time record and commits the profile counters update
	// produced by advance in the same transaction. The profile row is
	// locked for the duration, created on the fly if absent. Returns
	// ErrBrushExists when another record for (user, date) won the race.
	CreateWithProgress(ctx context.Context, brush *entity.Brush, advance func(p *entity.Profile)) (*entity.Brush, *entity.Profile, error)
}

type ConversationsRepositoryI interface {
	// Appends one chat exchange to the log
	Create(ctx context.Context, conv *entity.Conversation) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
