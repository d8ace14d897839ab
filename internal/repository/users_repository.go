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

const userColumns = `id, subject_id, email, display_name, current_streak, longest_streak,
		total_points, level, total_check_ins, last_check_in_date, created_at, updated_at`

type UsersRepository struct {
	conn PgConnection
}

func NewUsersRepo(cfg DBConfig) *UsersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for usersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &UsersRepository{
		conn: pool,
	}
}

func NewUsersRepoWithConn(conn PgConnection) *UsersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for usersRepo: " + err.Error())
	}
	return &UsersRepository{
		conn: conn,
	}
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) (uuid.UUID, error) {
	if user == nil {
		return uuid.UUID{}, errors.New("user is nil")
	}
	var id uuid.UUID
	row := ur.conn.QueryRow(ctx, `INSERT INTO users (subject_id, email, display_name) VALUES ($1, $2, $3) RETURNING id;`,
		user.SubjectID,
		user.Email,
		user.DisplayName,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			// Unique violation
			case "23505":
				return uuid.UUID{}, errorvalues.ErrUserExists
			}
		}
		return uuid.UUID{}, errors.New("creating user db error: " + err.Error())
	}
	return id, nil
}

func (ur *UsersRepository) FindBySubject(ctx context.Context, subjectID string) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE subject_id = $1;`, subjectID)
	return scanUser(row)
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	row := ur.conn.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1;`, uid)
	return scanUser(row)
}

func scanUser(row pgx.Row) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.SubjectID,
		&user.Email,
		&user.DisplayName,
		&user.CurrentStreak,
		&user.LongestStreak,
		&user.TotalPoints,
		&user.Level,
		&user.TotalCheckIns,
		&user.LastCheckIn,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user error: " + err.Error())
	}
	return &user, nil
}

func (ur *UsersRepository) UpdateProfile(ctx context.Context, uid uuid.UUID, displayName string) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET display_name = $1, updated_at = NOW() WHERE id = $2;`,
		displayName,
		uid,
	)
	if err != nil {
		return errors.New("updating user profile error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) UpdateStats(ctx context.Context, user *entity.User) error {
	ct, err := ur.conn.Exec(ctx, `UPDATE users SET current_streak = $1, longest_streak = $2, total_points = $3,
		level = $4, total_check_ins = $5, last_check_in_date = $6, updated_at = NOW() WHERE id = $7;`,
		user.CurrentStreak,
		user.LongestStreak,
		user.TotalPoints,
		user.Level,
		user.TotalCheckIns,
		user.LastCheckIn,
		user.ID,
	)
	if err != nil {
		return errors.New("updating user stats error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrUserNotFound
	}
	return nil
}

func (ur *UsersRepository) TopByCurrentStreak(ctx context.Context, limit int) ([]*entity.User, error) {
	rows, err := ur.conn.Query(ctx, `SELECT `+userColumns+` FROM users ORDER BY current_streak DESC LIMIT $1;`, limit)
	if err != nil {
		return nil, errors.New("getting leaderboard error: " + err.Error())
	}
	defer rows.Close()
	users := make([]*entity.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected error after scanning users: " + rows.Err().Error())
	}
	return users, nil
}
