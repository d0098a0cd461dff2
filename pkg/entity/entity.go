package entity

import (
	"time"

	"github.com/google/uuid"
)

// Stage is the character growth stage. Values are ordered from StageEgg
// up to StagePhoenix and are only ever written by the progress
// recomputation, never set directly.
type Stage string

const (
	StageEgg     Stage = "egg"
	StageChick   Stage = "chick"
	StageChicken Stage = "chicken"
	StageHawk    Stage = "hawk"
	StagePhoenix Stage = "phoenix"
)

// DefaultCharacterName is assigned to freshly created profiles.
const DefaultCharacterName = "ぴよちゃん"

type User struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Profile is the per-user growth state. One row per user, created lazily
// on first access. CurrentStage always equals what the stage rules
// compute from the counters.
type Profile struct {
	ID                     int64      `json:"id"`
	UserID                 uuid.UUID  `json:"user_id"`
	CharacterName          string     `json:"character_name"`
	CurrentStage           Stage      `json:"current_stage"`
	StageStartDate         time.Time  `json:"stage_start_date"`
	TotalDaysBrushed       int        `json:"total_days_brushed"`
	ConsecutiveDaysBrushed int        `json:"consecutive_days_brushed"`
	LastBrushDate          *time.Time `json:"last_brush_date"`
}

// Brush is one brushing record. At most one per (user, date).
type Brush struct {
	ID        int64     `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Date      time.Time `json:"date"`
	Stamps    []string  `json:"stamps"`
	CreatedAt time.Time `json:"created_at"`
}

// Conversation is an append-only log entry of one chat exchange.
type Conversation struct {
	ID           int64     `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	RequestText  string    `json:"request_text"`
	ResponseText string    `json:"response_text"`
	Timestamp    time.Time `json:"timestamp"`
}

// PersonaContext parametrizes the guide character's tone for a chat call.
type PersonaContext struct {
	CharacterName   string
	Stage           Stage
	ConsecutiveDays int
	TotalDays       int
}
