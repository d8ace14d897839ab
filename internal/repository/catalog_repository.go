package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/pkg/cleanup"
	"github.com/limbo/habitproof/pkg/entity"
)

const catalogColumns = `id, name, description, category, icon, verification_type,
		verification_prompt, difficulty, popularity, is_active`

type CatalogRepository struct {
	conn PgConnection
}

func NewCatalogRepo(cfg DBConfig) *CatalogRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for catalogRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for catalogRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CatalogRepository{
		conn: pool,
	}
}

func NewCatalogRepoWithConn(conn PgConnection) *CatalogRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for catalogRepo: " + err.Error())
	}
	return &CatalogRepository{
		conn: conn,
	}
}

func (cr *CatalogRepository) List(ctx context.Context, category, search string, limit int) ([]*entity.CatalogHabit, error) {
	rows, err := cr.conn.Query(ctx, `SELECT `+catalogColumns+` FROM catalog_habits
		WHERE is_active = TRUE AND ($1 = '' OR category = $1) AND ($2 = '' OR name ILIKE '%' || $2 || '%')
		ORDER BY popularity DESC LIMIT $3;`,
		category,
		search,
		limit,
	)
	if err != nil {
		return nil, errors.New("listing catalog habits error: " + err.Error())
	}
	defer rows.Close()
	result := make([]*entity.CatalogHabit, 0)
	for rows.Next() {
		ch, err := scanCatalogHabit(rows)
		if err != nil {
			return nil, errors.New("catalog row parsing error: " + err.Error())
		}
		result = append(result, ch)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected catalog rows error: " + rows.Err().Error())
	}
	return result, nil
}

func (cr *CatalogRepository) FindByName(ctx context.Context, name string) (*entity.CatalogHabit, error) {
	row := cr.conn.QueryRow(ctx, `SELECT `+catalogColumns+` FROM catalog_habits
		WHERE name = $1 AND is_active = TRUE;`, name)
	ch, err := scanCatalogHabit(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCatalogHabitNotFound
		}
		return nil, errors.New("searching catalog habit error: " + err.Error())
	}
	return ch, nil
}

func scanCatalogHabit(row pgx.Row) (*entity.CatalogHabit, error) {
	var ch entity.CatalogHabit
	err := row.Scan(
		&ch.ID,
		&ch.Name,
		&ch.Description,
		&ch.Category,
		&ch.Icon,
		&ch.VerificationType,
		&ch.VerificationPrompt,
		&ch.Difficulty,
		&ch.Popularity,
		&ch.IsActive,
	)
	if err != nil {
		return nil, err
	}
	return &ch, nil
}
