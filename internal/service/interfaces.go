package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitproof/internal/clients/vision"
	"github.com/limbo/habitproof/pkg/entity"
	"github.com/limbo/habitproof/pkg/points"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

// Identity is what the external identity provider asserts about a caller.
type Identity struct {
	SubjectID   string
	Email       string
	DisplayName string
}

type UserServiceI interface {
	// Find-or-create keyed by the provider subject id. A fresh display name
	// from the token overwrites a stale one
	VerifyIdentity(ctx context.Context, ident Identity) (*entity.User, error)
	GetBySubject(ctx context.Context, subjectID string) (*entity.User, error)
	GetByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	Profile(ctx context.Context, uid uuid.UUID) (*ProfileView, error)
	UpdateProfile(ctx context.Context, uid uuid.UUID, displayName string) (*entity.User, error)
	Stats(ctx context.Context, uid uuid.UUID) (*UserStats, error)
}

type ProfileView struct {
	User          *entity.User     `json:"user"`
	LevelProgress int              `json:"level_progress"`
	NextMilestone points.Milestone `json:"next_milestone"`
	DaysRemaining int              `json:"days_remaining"`
}

type UserStats struct {
	CurrentStreak    int        `json:"current_streak"`
	LongestStreak    int        `json:"longest_streak"`
	TotalPoints      int        `json:"total_points"`
	Level            int        `json:"level"`
	TotalCheckIns    int        `json:"total_check_ins"`
	VerifiedCheckIns int        `json:"verified_check_ins"`
	DaysSinceJoining int        `json:"days_since_joining"`
	LastCheckIn      *time.Time `json:"last_check_in_date,omitempty"`
}

type CreateHabitRequest struct {
	Name               string `validate:"required,min=1,max=120"`
	Description        string `validate:"max=1000"`
	Category           string `validate:"omitempty,habit_category"`
	Icon               string
	ReminderTime       string `validate:"omitempty,clock_hhmm"`
	VerificationType   string `validate:"omitempty,oneof=photo manual timer location"`
	VerificationPrompt string `validate:"max=2000"`
}

type UpdateHabitRequest struct {
	Name               *string `validate:"omitempty,min=1,max=120"`
	Description        *string `validate:"omitempty,max=1000"`
	Category           *string `validate:"omitempty,habit_category"`
	Icon               *string
	ReminderTime       *string `validate:"omitempty,clock_hhmm"`
	VerificationPrompt *string `validate:"omitempty,max=2000"`
}

// DashboardHabit pairs a habit with its completion state for today.
type DashboardHabit struct {
	Habit            *entity.Habit   `json:"habit"`
	IsCompletedToday bool            `json:"is_completed_today"`
	CheckIn          *entity.CheckIn `json:"check_in,omitempty"`
}

type Dashboard struct {
	Habits         []*DashboardHabit `json:"habits"`
	Total          int               `json:"total"`
	CompletedToday int               `json:"completed_today"`
	RemainingToday int               `json:"remaining_today"`
}

type HabitsServiceI interface {
	// Creates from a catalog template when the name matches one, otherwise a
	// custom habit (which requires description and verification prompt)
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error)
	// Soft delete, check-in history survives
	DeactivateHabit(ctx context.Context, habitID, userID uuid.UUID) error
	Dashboard(ctx context.Context, uid uuid.UUID) (*Dashboard, error)
	BrowseCatalog(ctx context.Context, category, search string, limit int) ([]*entity.CatalogHabit, error)
	// Never fails structurally: falls back to a keyword rule table when the
	// AI call errors
	SuggestVerification(ctx context.Context, habitName, description string) (*vision.Suggestion, error)
}

// StreakSnapshot is the streak part of a successful check-in response.
type StreakSnapshot struct {
	Current     int  `json:"current"`
	Longest     int  `json:"longest"`
	IsMilestone bool `json:"is_milestone"`
}

// PointsSnapshot is the points part of a successful check-in response.
type PointsSnapshot struct {
	Earned        int `json:"earned"`
	Total         int `json:"total"`
	Level         int `json:"level"`
	TotalCheckIns int `json:"total_check_ins"`
}

// CheckInResult is the outcome of one submit: the finalized check-in always,
// streak and points snapshots only when it verified.
type CheckInResult struct {
	CheckIn *entity.CheckIn `json:"check_in"`
	Streak  *StreakSnapshot `json:"streak,omitempty"`
	Points  *PointsSnapshot `json:"points,omitempty"`
}

type CheckInPage struct {
	CheckIns   []*entity.CheckIn `json:"check_ins"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Total      int               `json:"total"`
	TotalPages int               `json:"total_pages"`
	HasMore    bool              `json:"has_more"`
}

type CheckInServiceI interface {
	// The core workflow: idempotency guard, evidence upload, synchronous
	// adjudication, streak and points mutation. On ErrAlreadyCheckedIn the
	// result still carries the existing verified record
	Submit(ctx context.Context, user *entity.User, habitID uuid.UUID, image []byte, mimeType string) (*CheckInResult, error)
	History(ctx context.Context, uid uuid.UUID, habitID *uuid.UUID, page, limit int) (*CheckInPage, error)
	// Today's attempt for the pair, nil when none exists
	Today(ctx context.Context, uid, habitID uuid.UUID) (*entity.CheckIn, error)
	Get(ctx context.Context, uid, checkInID uuid.UUID) (*entity.CheckIn, error)
}

type StreakStats struct {
	Current      int  `json:"current"`
	Longest      int  `json:"longest"`
	IsActiveNow  bool `json:"is_active_now"`
	TotalStreaks int  `json:"total_streaks"`
}

type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	DisplayName   string `json:"display_name"`
	CurrentStreak int    `json:"current_streak"`
	LongestStreak int    `json:"longest_streak"`
	Level         int    `json:"level"`
}

// StreakAdvancerI is the single authoritative mutation entry point for streak
// and user aggregate updates. Only the check-in workflow holds this handle.
type StreakAdvancerI interface {
	Advance(ctx context.Context, user *entity.User, habitID uuid.UUID, verifiedAt time.Time) (*entity.Streak, error)
}

type StreakReaderI interface {
	// Active streak, or a zero-length placeholder when none exists
	Current(ctx context.Context, uid, habitID uuid.UUID) (*entity.Streak, error)
	History(ctx context.Context, uid, habitID uuid.UUID, limit int) ([]*entity.Streak, error)
	Stats(ctx context.Context, user *entity.User, habitID uuid.UUID) (*StreakStats, error)
	Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error)
}

// BlobStoreI is the external object-storage capability.
type BlobStoreI interface {
	Put(ctx context.Context, key string, data []byte, mimeType string) (string, error)
	// Best-effort: callers log failures and move on
	Delete(ctx context.Context, key string) error
}

// ImageVerifierI is the external AI adjudication capability.
type ImageVerifierI interface {
	Judge(ctx context.Context, imageURL, prompt string) (vision.Verdict, error)
}

// SuggesterI is the external text-generation capability behind habit
// verification suggestions.
type SuggesterI interface {
	Suggest(ctx context.Context, habitName, description string) (vision.Suggestion, error)
}
