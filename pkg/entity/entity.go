package entity

import (
	"time"

	"github.com/google/uuid"
)

type VerificationStatus string

const (
	StatusPending  VerificationStatus = "pending"
	StatusVerified VerificationStatus = "verified"
	StatusRejected VerificationStatus = "rejected"
)

type HabitCategory string

const (
	CategoryHealth       HabitCategory = "health"
	CategoryProductivity HabitCategory = "productivity"
	CategoryWellness     HabitCategory = "wellness"
	CategoryFitness      HabitCategory = "fitness"
	CategoryLearning     HabitCategory = "learning"
	CategoryLifestyle    HabitCategory = "lifestyle"
	CategoryCustom       HabitCategory = "custom"
)

type VerificationType string

const (
	VerifyPhoto    VerificationType = "photo"
	VerifyManual   VerificationType = "manual"
	VerifyTimer    VerificationType = "timer"
	VerifyLocation VerificationType = "location"
)

// User carries the identity-linked profile and the aggregate stats mutated by
// verified check-ins. longest_streak >= current_streak holds after every
// update; level is always floor(total_points/500)+1.
type User struct {
	ID            uuid.UUID  `json:"id"`
	SubjectID     string     `json:"subject_id"`
	Email         string     `json:"email"`
	DisplayName   string     `json:"display_name"`
	CurrentStreak int        `json:"current_streak"`
	LongestStreak int        `json:"longest_streak"`
	TotalPoints   int        `json:"total_points"`
	Level         int        `json:"level"`
	TotalCheckIns int        `json:"total_check_ins"`
	LastCheckIn   *time.Time `json:"last_check_in_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Habit is a trackable activity owned by exactly one user. Deactivated habits
// are kept forever so check-in history stays intact.
type Habit struct {
	ID                 uuid.UUID        `json:"id"`
	UserID             uuid.UUID        `json:"uid"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	Category           HabitCategory    `json:"category"`
	Icon               string           `json:"icon"`
	VerificationType   VerificationType `json:"verification_type"`
	VerificationPrompt string           `json:"verification_prompt"`
	ReminderTime       string           `json:"reminder_time"`
	IsCustom           bool             `json:"is_custom"`
	IsActive           bool             `json:"is_active"`
	CatalogID          *uuid.UUID       `json:"catalog_id,omitempty"`
	CreatedAt          time.Time        `json:"created_at"`
	UpdatedAt          time.Time        `json:"updated_at"`
}

// CheckIn is one submission attempt for a habit on a calendar day. At most one
// verified row may exist per (user, habit, day); pending and rejected rows are
// superseded by retries.
type CheckIn struct {
	ID           uuid.UUID          `json:"id"`
	UserID       uuid.UUID          `json:"uid"`
	HabitID      uuid.UUID          `json:"habit_id"`
	ImageURL     string             `json:"image_url"`
	ImageKey     string             `json:"-"`
	Status       VerificationStatus `json:"verification_status"`
	Note         string             `json:"verification_note,omitempty"`
	CheckInDate  time.Time          `json:"check_in_date"`
	PointsEarned int                `json:"points_earned"`
	CreatedAt    time.Time          `json:"created_at"`
}

// Streak is a contiguous run of verified-day completions for one (user, habit)
// pair. At most one active streak exists per pair.
type Streak struct {
	ID        uuid.UUID  `json:"id"`
	UserID    uuid.UUID  `json:"uid"`
	HabitID   uuid.UUID  `json:"habit_id"`
	StartDate time.Time  `json:"start_date"`
	EndDate   *time.Time `json:"end_date,omitempty"`
	Length    int        `json:"streak_length"`
	IsActive  bool       `json:"is_active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// CatalogHabit is a predefined habit template users can adopt as-is.
type CatalogHabit struct {
	ID                 uuid.UUID        `json:"id"`
	Name               string           `json:"name"`
	Description        string           `json:"description"`
	Category           HabitCategory    `json:"category"`
	Icon               string           `json:"icon"`
	VerificationType   VerificationType `json:"verification_type"`
	VerificationPrompt string           `json:"verification_prompt"`
	Difficulty         string           `json:"difficulty"`
	Popularity         int              `json:"popularity"`
	IsActive           bool             `json:"-"`
}
