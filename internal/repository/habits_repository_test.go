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

var habitCols = []string{"id", "user_id", "name", "description", "category", "icon", "verification_type",
	"verification_prompt", "reminder_time", "is_custom", "is_active", "catalog_id", "created_at", "updated_at"}

func habitRow(h *entity.Habit) *pgxmock.Rows {
	return pgxmock.NewRows(habitCols).AddRow(
		h.ID, h.UserID, h.Name, h.Description, h.Category, h.Icon, h.VerificationType,
		h.VerificationPrompt, h.ReminderTime, h.IsCustom, h.IsActive, h.CatalogID,
		h.CreatedAt, h.UpdatedAt,
	)
}

func TestCreateHabit(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	habit := entity.Habit{
		UserID:             uuid.New(),
		Name:               "Evening Walk",
		Description:        "Walk around the block after dinner",
		Category:           "fitness",
		Icon:               "🚶",
		VerificationType:   "photo",
		VerificationPrompt: "Does this image show someone walking outdoors?",
		ReminderTime:       "19:30",
		IsCustom:           true,
	}
	query := regexp.QuoteMeta(`INSERT INTO habits (user_id, name, description, category, icon,`)
	args := []any{habit.UserID, habit.Name, habit.Description, habit.Category, habit.Icon,
		habit.VerificationType, habit.VerificationPrompt, habit.ReminderTime, habit.IsCustom, habit.CatalogID}
	t.Run("successfully created", func(t *testing.T) {
		id := uuid.New()
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		got, err := repo.Create(ctx, &habit)
		assert.NoError(t, err)
		assert.Equal(t, id, got)
	})
	t.Run("owner doesn't exist", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &habit)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &habit)
		assert.Error(t, err)
	})
}

func TestGetHabitByID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	now := time.Now()
	habit := entity.Habit{
		ID:               uuid.New(),
		UserID:           uuid.New(),
		Name:             "Meditate",
		Category:         "wellness",
		VerificationType: "photo",
		ReminderTime:     "09:00",
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	query := regexp.QuoteMeta(`FROM habits WHERE id = $1;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(habit.ID).WillReturnRows(habitRow(&habit))
		result, err := repo.GetByID(ctx, habit.ID)
		assert.NoError(t, err)
		assert.Equal(t, habit, *result)
	})
	t.Run("not found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(habit.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestGetActiveByUserID(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	uid := uuid.New()
	now := time.Now()
	first := entity.Habit{ID: uuid.New(), UserID: uid, Name: "Read", Category: "learning",
		VerificationType: "photo", ReminderTime: "21:00", IsActive: true, CreatedAt: now, UpdatedAt: now}
	second := entity.Habit{ID: uuid.New(), UserID: uid, Name: "Gym", Category: "fitness",
		VerificationType: "photo", ReminderTime: "07:00", IsActive: true, CreatedAt: now, UpdatedAt: now}
	query := regexp.QuoteMeta(`WHERE user_id = $1 AND is_active = TRUE ORDER BY created_at ASC;`)
	t.Run("two active habits", func(t *testing.T) {
		rows := pgxmock.NewRows(habitCols).
			AddRow(first.ID, first.UserID, first.Name, first.Description, first.Category, first.Icon,
				first.VerificationType, first.VerificationPrompt, first.ReminderTime, first.IsCustom,
				first.IsActive, first.CatalogID, first.CreatedAt, first.UpdatedAt).
			AddRow(second.ID, second.UserID, second.Name, second.Description, second.Category, second.Icon,
				second.VerificationType, second.VerificationPrompt, second.ReminderTime, second.IsCustom,
				second.IsActive, second.CatalogID, second.CreatedAt, second.UpdatedAt)
		conn.ExpectQuery(query).WithArgs(uid).WillReturnRows(rows)
		result, err := repo.GetActiveByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, first, *result[0])
	})
	t.Run("no habits", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnRows(pgxmock.NewRows(habitCols))
		result, err := repo.GetActiveByUserID(ctx, uid)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid).WillReturnError(errors.New("db error"))
		_, err := repo.GetActiveByUserID(ctx, uid)
		assert.Error(t, err)
	})
}

func TestUpdateHabit(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	habit := entity.Habit{
		ID:                 uuid.New(),
		Name:               "Read",
		Description:        "Read for 45 minutes",
		Category:           "learning",
		Icon:               "📚",
		VerificationPrompt: "Does this image show reading?",
		ReminderTime:       "20:00",
		IsActive:           true,
	}
	query := regexp.QuoteMeta(`UPDATE habits SET name = $1, description = $2, category = $3, icon = $4,`)
	args := []any{habit.Name, habit.Description, habit.Category, habit.Icon,
		habit.VerificationPrompt, habit.ReminderTime, habit.IsActive, habit.ID}
	t.Run("successfully updated", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Update(ctx, &habit)
		assert.NoError(t, err)
	})
	t.Run("habit doesn't exist", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(args...).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Update(ctx, &habit)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestDeactivateHabit(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewHabitsRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE habits SET is_active = FALSE, updated_at = NOW() WHERE id = $1;`)
	t.Run("successfully deactivated", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Deactivate(ctx, id)
		assert.NoError(t, err)
	})
	t.Run("habit doesn't exist", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Deactivate(ctx, id)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectExec(query).WithArgs(id).WillReturnError(errors.New("db error"))
		err := repo.Deactivate(ctx, id)
		assert.Error(t, err)
	})
}
