package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/internal/repository"
	"github.com/limbo/habitproof/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var streakCols = []string{"id", "user_id", "habit_id", "start_date", "end_date", "streak_length",
	"is_active", "created_at", "updated_at"}

func TestGetActiveStreak(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewStreaksRepoWithConn(conn)
	now := time.Now()
	streak := entity.Streak{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		HabitID:   uuid.New(),
		StartDate: now.AddDate(0, 0, -4),
		Length:    5,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
	query := regexp.QuoteMeta(`WHERE user_id = $1 AND habit_id = $2 AND is_active = TRUE;`)
	t.Run("found", func(t *testing.T) {
		rows := pgxmock.NewRows(streakCols).AddRow(
			streak.ID, streak.UserID, streak.HabitID, streak.StartDate, streak.EndDate,
			streak.Length, streak.IsActive, streak.CreatedAt, streak.UpdatedAt,
		)
		conn.ExpectQuery(query).WithArgs(streak.UserID, streak.HabitID).WillReturnRows(rows)
		result, err := repo.GetActive(ctx, streak.UserID, streak.HabitID)
		assert.NoError(t, err)
		assert.Equal(t, streak, *result)
	})
	t.Run("no active streak", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(streak.UserID, streak.HabitID).WillReturnError(pgx.ErrNoRows)
		result, err := repo.GetActive(ctx, streak.UserID, streak.HabitID)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(streak.UserID, streak.HabitID).WillReturnError(errors.New("db error"))
		_, err := repo.GetActive(ctx, streak.UserID, streak.HabitID)
		assert.Error(t, err)
	})
}

func TestCreateStreak(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewStreaksRepoWithConn(conn)
	streak := entity.Streak{
		UserID:    uuid.New(),
		HabitID:   uuid.New(),
		StartDate: time.Now().Truncate(24 * time.Hour),
		Length:    1,
		IsActive:  true,
	}
	query := regexp.QuoteMeta(`INSERT INTO streaks (user_id, habit_id, start_date, streak_length, is_active)`)
	t.Run("successfully created", func(t *testing.T) {
		id := uuid.New()
		conn.ExpectQuery(query).
			WithArgs(streak.UserID, streak.HabitID, streak.StartDate, streak.Length).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		got, err := repo.Create(ctx, &streak)
		assert.NoError(t, err)
		assert.Equal(t, id, got)
	})
	t.Run("active streak already exists", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(streak.UserID, streak.HabitID, streak.StartDate, streak.Length).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Create(ctx, &streak)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyCheckedIn)
	})
	t.Run("habit doesn't exist", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(streak.UserID, streak.HabitID, streak.StartDate, streak.Length).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &streak)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestCloseStreak(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewStreaksRepoWithConn(conn)
	id := uuid.New()
	endDate := time.Now().Truncate(24 * time.Hour)
	query := regexp.QuoteMeta(`UPDATE streaks SET is_active = FALSE, end_date = $1, updated_at = NOW() WHERE id = $2;`)
	t.Run("successfully closed", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(endDate, id).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Close(ctx, id, endDate)
		assert.NoError(t, err)
	})
	t.Run("streak doesn't exist", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(endDate, id).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Close(ctx, id, endDate)
		assert.ErrorIs(t, err, errorvalues.ErrStreakNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(endDate, id).WillReturnError(errors.New("db error"))
		err := repo.Close(ctx, id, endDate)
		assert.Error(t, err)
	})
}

func TestUpdateStreakLength(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewStreaksRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE streaks SET streak_length = $1, updated_at = NOW() WHERE id = $2;`)
	t.Run("successfully updated", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(6, id).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.UpdateLength(ctx, id, 6)
		assert.NoError(t, err)
	})
	t.Run("streak doesn't exist", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(6, id).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.UpdateLength(ctx, id, 6)
		assert.ErrorIs(t, err, errorvalues.ErrStreakNotFound)
	})
}
