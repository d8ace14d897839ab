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

const streakColumns = `id, user_id, habit_id, start_date, end_date, streak_length, is_active, created_at, updated_at`

type StreaksRepository struct {
	conn PgConnection
}

func NewStreaksRepo(cfg DBConfig) *StreaksRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for streaksRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &StreaksRepository{
		conn: pool,
	}
}

func NewStreaksRepoWithConn(conn PgConnection) *StreaksRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for streaksRepo: " + err.Error())
	}
	return &StreaksRepository{
		conn: conn,
	}
}

func (sr *StreaksRepository) GetActive(ctx context.Context, uid, habitID uuid.UUID) (*entity.Streak, error) {
	row := sr.conn.QueryRow(ctx, `SELECT `+streakColumns+` FROM streaks
		WHERE user_id = $1 AND habit_id = $2 AND is_active = TRUE;`,
		uid,
		habitID,
	)
	streak, err := scanStreak(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting active streak error: " + err.Error())
	}
	return streak, nil
}

func scanStreak(row pgx.Row) (*entity.Streak, error) {
	var s entity.Streak
	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.HabitID,
		&s.StartDate,
		&s.EndDate,
		&s.Length,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (sr *StreaksRepository) Create(ctx context.Context, streak *entity.Streak) (uuid.UUID, error) {
	var id uuid.UUID
	row := sr.conn.QueryRow(ctx, `INSERT INTO streaks (user_id, habit_id, start_date, streak_length, is_active)
		VALUES ($1, $2, $3, $4, TRUE) RETURNING id;`,
		streak.UserID,
		streak.HabitID,
		streak.StartDate,
		streak.Length,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation: an active streak already exists for the pair
			case "23505":
				return uuid.UUID{}, errorvalues.ErrAlreadyCheckedIn
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrHabitNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating streak error: " + err.Error())
	}
	return id, nil
}

func (sr *StreaksRepository) UpdateLength(ctx context.Context, id uuid.UUID, length int) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE streaks SET streak_length = $1, updated_at = NOW() WHERE id = $2;`,
		length,
		id,
	)
	if err != nil {
		return errors.New("updating streak length error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStreakNotFound
	}
	return nil
}

func (sr *StreaksRepository) Close(ctx context.Context, id uuid.UUID, endDate time.Time) error {
	ct, err := sr.conn.Exec(ctx, `UPDATE streaks SET is_active = FALSE, end_date = $1, updated_at = NOW() WHERE id = $2;`,
		endDate,
		id,
	)
	if err != nil {
		return errors.New("closing streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrStreakNotFound
	}
	return nil
}

func (sr *StreaksRepository) ListByPair(ctx context.Context, uid, habitID uuid.UUID, limit int) ([]*entity.Streak, error) {
	rows, err := sr.conn.Query(ctx, `SELECT `+streakColumns+` FROM streaks
		WHERE user_id = $1 AND habit_id = $2 ORDER BY start_date DESC LIMIT $3;`,
		uid,
		habitID,
		limit,
	)
	if err != nil {
		return nil, errors.New("getting streak history error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.Streak, 0)
	for rows.Next() {
		s, err := scanStreak(rows)
		if err != nil {
			return nil, errors.New("streak row parsing error: " + err.Error())
		}
		result = append(result, s)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected streak rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (sr *StreaksRepository) CountByPair(ctx context.Context, uid, habitID uuid.UUID) (int, error) {
	row := sr.conn.QueryRow(ctx, `SELECT COUNT(*) FROM streaks WHERE user_id = $1 AND habit_id = $2;`,
		uid,
		habitID,
	)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, errors.New("error counting streaks: " + err.Error())
	}
	return count, nil
}
