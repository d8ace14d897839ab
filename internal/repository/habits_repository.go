package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/pkg/cleanup"
	"github.com/limbo/habitproof/pkg/entity"
)

const habitColumns = `id, user_id, name, description, category, icon, verification_type,
		verification_prompt, reminder_time, is_custom, is_active, catalog_id, created_at, updated_at`

type HabitsRepository struct {
	conn PgConnection
}

func NewHabitsRepo(cfg DBConfig) *HabitsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for habitsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &HabitsRepository{
		conn: pool,
	}
}

func NewHabitsRepoWithConn(conn PgConnection) *HabitsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for habitsRepo: " + err.Error())
	}
	return &HabitsRepository{
		conn: conn,
	}
}

func (hr *HabitsRepository) Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error) {
	var id uuid.UUID
	row := hr.conn.QueryRow(ctx, `INSERT INTO habits (user_id, name, description, category, icon,
		verification_type, verification_prompt, reminder_time, is_custom, catalog_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id;`,
		habit.UserID,
		habit.Name,
		habit.Description,
		habit.Category,
		habit.Icon,
		habit.VerificationType,
		habit.VerificationPrompt,
		habit.ReminderTime,
		habit.IsCustom,
		habit.CatalogID,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// FK violation
			case "23503":
				return uuid.UUID{}, errorvalues.ErrUserNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating habit db error: " + err.Error())
	}
	return id, nil
}

func (hr *HabitsRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error) {
	row := hr.conn.QueryRow(ctx, `SELECT `+habitColumns+` FROM habits WHERE id = $1;`, id)
	habit, err := scanHabit(row)
	if err != nil {
		return nil, err
	}
	return habit, nil
}

func scanHabit(row pgx.Row) (*entity.Habit, error) {
	var h entity.Habit
	err := row.Scan(
		&h.ID,
		&h.UserID,
		&h.Name,
		&h.Description,
		&h.Category,
		&h.Icon,
		&h.VerificationType,
		&h.VerificationPrompt,
		&h.ReminderTime,
		&h.IsCustom,
		&h.IsActive,
		&h.CatalogID,
		&h.CreatedAt,
		&h.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrHabitNotFound
		}
		return nil, errors.New("getting habit error: " + err.Error())
	}
	return &h, nil
}

func (hr *HabitsRepository) GetActiveByUserID(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	rows, err := hr.conn.Query(ctx, `SELECT `+habitColumns+` FROM habits
		WHERE user_id = $1 AND is_active = TRUE ORDER BY created_at ASC;`, uid)
	if err != nil {
		return nil, errors.New("getting habits by uid error: " + err.Error())
	}
	defer rows.Close()
	habits := make([]*entity.Habit, 0)
	for rows.Next() {
		h, err := scanHabit(rows)
		if err != nil {
			return nil, err
		}
		habits = append(habits, h)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning habits: " + rows.Err().Error())
	}
	return habits, nil
}

func (hr *HabitsRepository) Update(ctx context.Context, habit *entity.Habit) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET name = $1, description = $2, category = $3, icon = $4,
		verification_prompt = $5, reminder_time = $6, is_active = $7, updated_at = NOW() WHERE id = $8;`,
		habit.Name,
		habit.Description,
		habit.Category,
		habit.Icon,
		habit.VerificationPrompt,
		habit.ReminderTime,
		habit.IsActive,
		habit.ID,
	)
	if err != nil {
		return errors.New("error updating habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}

func (hr *HabitsRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	ct, err := hr.conn.Exec(ctx, `UPDATE habits SET is_active = FALSE, updated_at = NOW() WHERE id = $1;`, id)
	if err != nil {
		return errors.New("error deactivating habit: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrHabitNotFound
	}
	return nil
}
