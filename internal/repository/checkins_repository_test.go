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

var checkInCols = []string{"id", "user_id", "habit_id", "image_url", "image_key", "verification_status",
	"verification_note", "check_in_date", "points_earned", "created_at"}

func checkInRow(c *entity.CheckIn) *pgxmock.Rows {
	return pgxmock.NewRows(checkInCols).AddRow(
		c.ID, c.UserID, c.HabitID, c.ImageURL, c.ImageKey, c.Status,
		c.Note, c.CheckInDate, c.PointsEarned, c.CreatedAt,
	)
}

func TestCreateCheckIn(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewCheckInsRepoWithConn(conn)
	checkIn := entity.CheckIn{
		UserID:      uuid.New(),
		HabitID:     uuid.New(),
		ImageURL:    "https://cdn.example.com/checkins/img.jpg",
		ImageKey:    "checkins/img.jpg",
		Status:      entity.StatusPending,
		CheckInDate: time.Now().Truncate(24 * time.Hour),
	}
	query := regexp.QuoteMeta(`INSERT INTO check_ins (user_id, habit_id, image_url, image_key,`)
	args := []any{checkIn.UserID, checkIn.HabitID, checkIn.ImageURL, checkIn.ImageKey,
		checkIn.Status, checkIn.CheckInDate, checkIn.PointsEarned}
	t.Run("successfully created", func(t *testing.T) {
		id := uuid.New()
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(id))
		got, err := repo.Create(ctx, &checkIn)
		assert.NoError(t, err)
		assert.Equal(t, id, got)
	})
	t.Run("verified row already exists", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		_, err := repo.Create(ctx, &checkIn)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyCheckedIn)
	})
	t.Run("habit doesn't exist", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &checkIn)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &checkIn)
		assert.Error(t, err)
	})
}

func TestFindForDay(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewCheckInsRepoWithConn(conn)
	day := time.Now().Truncate(24 * time.Hour)
	checkIn := entity.CheckIn{
		ID:          uuid.New(),
		UserID:      uuid.New(),
		HabitID:     uuid.New(),
		Status:      entity.StatusVerified,
		CheckInDate: day,
		CreatedAt:   time.Now(),
	}
	query := regexp.QuoteMeta(`WHERE user_id = $1 AND habit_id = $2 AND check_in_date = $3;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(checkIn.UserID, checkIn.HabitID, day).
			WillReturnRows(checkInRow(&checkIn))
		result, err := repo.FindForDay(ctx, checkIn.UserID, checkIn.HabitID, day)
		assert.NoError(t, err)
		assert.Equal(t, checkIn, *result)
	})
	t.Run("no attempt today", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(checkIn.UserID, checkIn.HabitID, day).
			WillReturnError(pgx.ErrNoRows)
		result, err := repo.FindForDay(ctx, checkIn.UserID, checkIn.HabitID, day)
		assert.NoError(t, err)
		assert.Nil(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).
			WithArgs(checkIn.UserID, checkIn.HabitID, day).
			WillReturnError(errors.New("db error"))
		_, err := repo.FindForDay(ctx, checkIn.UserID, checkIn.HabitID, day)
		assert.Error(t, err)
	})
}

func TestFinalizeCheckIn(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewCheckInsRepoWithConn(conn)
	id := uuid.New()
	query := regexp.QuoteMeta(`UPDATE check_ins SET verification_status = $1, verification_note = $2,`)
	t.Run("successfully finalized", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(entity.StatusVerified, "Looks legit.", 60, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		err := repo.Finalize(ctx, id, entity.StatusVerified, "Looks legit.", 60)
		assert.NoError(t, err)
	})
	t.Run("verified index rejects transition", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(entity.StatusVerified, "Looks legit.", 60, id).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		err := repo.Finalize(ctx, id, entity.StatusVerified, "Looks legit.", 60)
		assert.ErrorIs(t, err, errorvalues.ErrAlreadyCheckedIn)
	})
	t.Run("check-in doesn't exist", func(t *testing.T) {
		conn.ExpectExec(query).
			WithArgs(entity.StatusRejected, "nope", 0, id).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		err := repo.Finalize(ctx, id, entity.StatusRejected, "nope", 0)
		assert.ErrorIs(t, err, errorvalues.ErrCheckInNotFound)
	})
}

func TestListByUser(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewCheckInsRepoWithConn(conn)
	uid := uuid.New()
	habitID := uuid.New()
	first := entity.CheckIn{ID: uuid.New(), UserID: uid, HabitID: habitID,
		Status: entity.StatusVerified, CheckInDate: time.Now(), PointsEarned: 15, CreatedAt: time.Now()}
	second := entity.CheckIn{ID: uuid.New(), UserID: uid, HabitID: habitID,
		Status: entity.StatusRejected, CheckInDate: time.Now().AddDate(0, 0, -1), CreatedAt: time.Now()}
	query := regexp.QuoteMeta(`ORDER BY check_in_date DESC LIMIT $3 OFFSET $4;`)
	t.Run("filtered by habit", func(t *testing.T) {
		rows := pgxmock.NewRows(checkInCols).
			AddRow(first.ID, first.UserID, first.HabitID, first.ImageURL, first.ImageKey, first.Status,
				first.Note, first.CheckInDate, first.PointsEarned, first.CreatedAt).
			AddRow(second.ID, second.UserID, second.HabitID, second.ImageURL, second.ImageKey, second.Status,
				second.Note, second.CheckInDate, second.PointsEarned, second.CreatedAt)
		conn.ExpectQuery(query).WithArgs(uid, &habitID, 30, 0).WillReturnRows(rows)
		result, err := repo.ListByUser(ctx, uid, &habitID, 30, 0)
		assert.NoError(t, err)
		assert.Len(t, result, 2)
		assert.Equal(t, first, *result[0])
	})
	t.Run("all habits", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, (*uuid.UUID)(nil), 30, 0).
			WillReturnRows(pgxmock.NewRows(checkInCols))
		result, err := repo.ListByUser(ctx, uid, nil, 30, 0)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(uid, (*uuid.UUID)(nil), 30, 0).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListByUser(ctx, uid, nil, 30, 0)
		assert.Error(t, err)
	})
}

func TestListStalePending(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewCheckInsRepoWithConn(conn)
	cutoff := time.Now().Truncate(24 * time.Hour)
	stale := entity.CheckIn{ID: uuid.New(), UserID: uuid.New(), HabitID: uuid.New(),
		Status: entity.StatusPending, CheckInDate: cutoff.AddDate(0, 0, -2), CreatedAt: time.Now()}
	query := regexp.QuoteMeta(`WHERE verification_status = 'pending' AND check_in_date < $1;`)
	t.Run("stale rows found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(cutoff).WillReturnRows(checkInRow(&stale))
		result, err := repo.ListStalePending(ctx, cutoff)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, stale, *result[0])
	})
	t.Run("nothing stale", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(cutoff).WillReturnRows(pgxmock.NewRows(checkInCols))
		result, err := repo.ListStalePending(ctx, cutoff)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}
