package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/habitproof/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user row. Fails with ErrUserExists on a duplicate subject id
	Create(ctx context.Context, user *entity.User) (uuid.UUID, error)
	// Looks up user by the identity provider's subject id
	FindBySubject(ctx context.Context, subjectID string) (*entity.User, error)
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates profile fields only (display name)
	UpdateProfile(ctx context.Context, uid uuid.UUID, displayName string) error
	// Persists the aggregate stats block: streaks, points, level, counters,
	// last check-in date. Only the streak mutation path calls this
	UpdateStats(ctx context.Context, user *entity.User) error
	// Top users by current streak, for the leaderboard
	TopByCurrentStreak(ctx context.Context, limit int) ([]*entity.User, error)
}

type HabitsRepositoryI interface {
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Active habits owned by uid, oldest first
	GetActiveByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	Update(ctx context.Context, habit *entity.Habit) error
	// Soft delete: flips is_active to false, history stays
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type CheckInsRepositoryI interface {
	// Inserts a check-in row. The partial unique index on
	// (user_id, habit_id, check_in_date) for verified rows turns a concurrent
	// double-submission into ErrAlreadyCheckedIn
	Create(ctx context.Context, checkIn *entity.CheckIn) (uuid.UUID, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.CheckIn, error)
	// Today's attempt for the pair, nil if none
	FindForDay(ctx context.Context, uid, habitID uuid.UUID, day time.Time) (*entity.CheckIn, error)
	// All of the user's attempts on a day, any habit (dashboard)
	FindDayForUser(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.CheckIn, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Moves a pending row to its terminal status. ErrAlreadyCheckedIn when the
	// verified-per-day index rejects the transition
	Finalize(ctx context.Context, id uuid.UUID, status entity.VerificationStatus, note string, points int) error
	// Paginated history, newest day first. habitID narrows to one habit
	ListByUser(ctx context.Context, uid uuid.UUID, habitID *uuid.UUID, limit, offset int) ([]*entity.CheckIn, error)
	CountByUser(ctx context.Context, uid uuid.UUID, habitID *uuid.UUID) (int, error)
	CountVerifiedByUser(ctx context.Context, uid uuid.UUID) (int, error)
	// Pending rows whose day started before the cutoff, for the janitor
	ListStalePending(ctx context.Context, before time.Time) ([]*entity.CheckIn, error)
}

type StreaksRepositoryI interface {
	// Active streak for the pair, nil if none
	GetActive(ctx context.Context, uid, habitID uuid.UUID) (*entity.Streak, error)
	Create(ctx context.Context, streak *entity.Streak) (uuid.UUID, error)
	UpdateLength(ctx context.Context, id uuid.UUID, length int) error
	// Marks the streak inactive with the given end date
	Close(ctx context.Context, id uuid.UUID, endDate time.Time) error
	// Streak history for the pair, newest start first, capped by limit
	ListByPair(ctx context.Context, uid, habitID uuid.UUID, limit int) ([]*entity.Streak, error)
	CountByPair(ctx context.Context, uid, habitID uuid.UUID) (int, error)
}

type CatalogRepositoryI interface {
	// Active catalog entries, most popular first. Category and search are
	// optional filters
	List(ctx context.Context, category, search string, limit int) ([]*entity.CatalogHabit, error)
	// Exact name match against active entries
	FindByName(ctx context.Context, name string) (*entity.CatalogHabit, error)
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
