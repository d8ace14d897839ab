package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/pkg/cleanup"
	"github.com/limbo/habitproof/pkg/entity"
)

const checkInColumns = `id, user_id, habit_id, image_url, image_key, verification_status,
		verification_note, check_in_date, points_earned, created_at`

type CheckInsRepository struct {
	conn PgConnection
}

func NewCheckInsRepo(cfg DBConfig) *CheckInsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for checkInsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for checkInsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CheckInsRepository{
		conn: pool,
	}
}

func NewCheckInsRepoWithConn(conn PgConnection) *CheckInsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for checkInsRepo: " + err.Error())
	}
	return &CheckInsRepository{
		conn: conn,
	}
}

func (cr *CheckInsRepository) Create(ctx context.Context, checkIn *entity.CheckIn) (uuid.UUID, error) {
	var id uuid.UUID
	row := cr.conn.QueryRow(ctx, `INSERT INTO check_ins (user_id, habit_id, image_url, image_key,
		verification_status, check_in_date, points_earned) VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id;`,
		checkIn.UserID,
		checkIn.HabitID,
		checkIn.ImageURL,
		checkIn.ImageKey,
		checkIn.Status,
		checkIn.CheckInDate,
		checkIn.PointsEarned,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: verified row already exists for this day
			case "23505":
				return uuid.UUID{}, errorvalues.ErrAlreadyCheckedIn
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrHabitNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating check-in error: " + err.Error())
	}
	return id, nil
}

func (cr *CheckInsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.CheckIn, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+checkInColumns+` FROM check_ins WHERE id = $1;`, id)
	checkIn, err := scanCheckIn(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCheckInNotFound
		}
		return nil, err
	}
	return checkIn, nil
}

func scanCheckIn(row pgx.Row) (*entity.CheckIn, error) {
	var c entity.CheckIn
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.HabitID,
		&c.ImageURL,
		&c.ImageKey,
		&c.Status,
		&c.Note,
		&c.CheckInDate,
		&c.PointsEarned,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (cr *CheckInsRepository) FindForDay(ctx context.Context, uid, habitID uuid.UUID, day time.Time) (*entity.CheckIn, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+checkInColumns+` FROM check_ins
		WHERE user_id = $1 AND habit_id = $2 AND check_in_date = $3;`,
		uid,
		habitID,
		day,
	)
	checkIn, err := scanCheckIn(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("searching day's check-in error: " + err.Error())
	}
	return checkIn, nil
}

func (cr *CheckInsRepository) FindDayForUser(ctx context.Context, uid uuid.UUID, day time.Time) ([]*entity.CheckIn, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+checkInColumns+` FROM check_ins
		WHERE user_id = $1 AND check_in_date = $2;`,
		uid,
		day,
	)
	if err != nil {
		return nil, errors.New("getting day's check-ins error: " + err.Error())
	}
	defer rows.Close()
	return collectCheckIns(rows)
}

func collectCheckIns(rows pgx.Rows) ([]*entity.CheckIn, error) {
	result := make([]*entity.CheckIn, 0)
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, errors.New("check-in row parsing error: " + err.Error())
		}
		result = append(result, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected check-in rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (cr *CheckInsRepository) Delete(ctx context.Context, id uuid.UUID) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM check_ins WHERE id = $1;`, id)
	if err != nil {
		return errors.New("deleting check-in error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCheckInNotFound
	}
	return nil
}

func (cr *CheckInsRepository) Finalize(ctx context.Context, id uuid.UUID, status entity.VerificationStatus, note string, points int) error {
	ct, err := cr.conn.Exec(ctx, `UPDATE check_ins SET verification_status = $1, verification_note = $2,
		points_earned = $3 WHERE id = $4;`,
		status,
		note,
		points,
		id,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errorvalues.ErrAlreadyCheckedIn
		}
		return errors.New("finalizing check-in error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCheckInNotFound
	}
	return nil
}

func (cr *CheckInsRepository) ListByUser(ctx context.Context, uid uuid.UUID, habitID *uuid.UUID, limit, offset int) ([]*entity.CheckIn, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+checkInColumns+` FROM check_ins
		WHERE user_id = $1 AND ($2::uuid IS NULL OR habit_id = $2)
		ORDER BY check_in_date DESC LIMIT $3 OFFSET $4;`,
		uid,
		habitID,
		limit,
		offset,
	)
	if err != nil {
		return nil, errors.New("getting check-ins by uid error: " + err.Error())
	}
	defer rows.Close()
	return collectCheckIns(rows)
}

func (cr *CheckInsRepository) CountByUser(ctx context.Context, uid uuid.UUID, habitID *uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM check_ins
		WHERE user_id = $1 AND ($2::uuid IS NULL OR habit_id = $2);`,
		uid,
		habitID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting check-ins: " + err.Error())
	}
	return count, nil
}

func (cr *CheckInsRepository) CountVerifiedByUser(ctx context.Context, uid uuid.UUID) (int, error) {
	row := cr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM check_ins
		WHERE user_id = $1 AND verification_status = 'verified';`,
		uid,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting verified check-ins: " + err.Error())
	}
	return count, nil
}

func (cr *CheckInsRepository) ListStalePending(ctx context.Context, before time.Time) ([]*entity.CheckIn, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+checkInColumns+` FROM check_ins
		WHERE verification_status = 'pending' AND check_in_date < $1;`,
		before,
	)
	if err != nil {
		return nil, errors.New("getting stale pending check-ins error: " + err.Error())
	}
	defer rows.Close()
	return collectCheckIns(rows)
}
