package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hiyoko/dailystamp/pkg/entity"
)

type SignupRequest struct {
	Name     string `validate:"required,min=1,max=100"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,max=72"`
}

type UpdateProfileRequest struct {
	CharacterName string `validate:"required,max=100"`
}

type ChatResult struct {
	Response string
	Stage    entity.Stage
}

type UserServiceI interface {
	// Validates credentials, stores the user and creates an empty profile
	Signup(ctx context.Context, req *SignupRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back user's data with ID
	Login(ctx context.Context, email, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type ProfileServiceI interface {
	// Returns user's profile, creating the default one when absent
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.Profile, error)
	// Renames the guide character. Counters and stage stay untouched
	UpdateProfile(ctx context.Context, uid uuid.UUID, req *UpdateProfileRequest) (*entity.Profile, error)
}

type BrushServiceI interface {
	// Upserts the record for (user, date). A first-time date advances the
	// progress counters exactly once; resubmits only replace stamps
	RecordBrush(ctx context.Context, uid uuid.UUID, date time.Time, stamps []string) (*entity.Brush, error)
	// Lists records of a YYYY-MM calendar month
	GetMonthBrushes(ctx context.Context, uid uuid.UUID, month string) ([]entity.Brush, error)
}

type ChatServiceI interface {
	// Sends message to the guide character and logs the exchange
	Chat(ctx context.Context, uid uuid.UUID, message string) (*ChatResult, error)
}

// ChatCompleterI is the upstream chat collaborator: a system prompt plus
// the user's message in, the reply text out.
type ChatCompleterI interface {
	Complete(ctx context.Context, system, user string) (string, error)
}
