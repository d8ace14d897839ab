package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/internal/repository"
	"github.com/limbo/habitproof/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
)

var catalogCols = []string{"id", "name", "description", "category", "icon", "verification_type",
	"verification_prompt", "difficulty", "popularity", "is_active"}

func catalogRow(ch *entity.CatalogHabit) *pgxmock.Rows {
	return pgxmock.NewRows(catalogCols).AddRow(
		ch.ID, ch.Name, ch.Description, ch.Category, ch.Icon, ch.VerificationType,
		ch.VerificationPrompt, ch.Difficulty, ch.Popularity, ch.IsActive,
	)
}

func TestListCatalog(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewCatalogRepoWithConn(conn)
	gym := entity.CatalogHabit{
		ID:                 uuid.New(),
		Name:               "Go to the Gym",
		Description:        "Visit the gym and complete a workout session",
		Category:           "fitness",
		Icon:               "💪",
		VerificationType:   "photo",
		VerificationPrompt: "Does this image show evidence of being at a gym or doing a workout?",
		Difficulty:         "medium",
		Popularity:         95,
		IsActive:           true,
	}
	query := regexp.QuoteMeta(`ORDER BY popularity DESC LIMIT $3;`)
	t.Run("filtered by category", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs("fitness", "", 20).WillReturnRows(catalogRow(&gym))
		result, err := repo.List(ctx, "fitness", "", 20)
		assert.NoError(t, err)
		assert.Len(t, result, 1)
		assert.Equal(t, gym, *result[0])
	})
	t.Run("search with no matches", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs("", "chess", 20).WillReturnRows(pgxmock.NewRows(catalogCols))
		result, err := repo.List(ctx, "", "chess", 20)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs("", "", 20).WillReturnError(errors.New("db error"))
		_, err := repo.List(ctx, "", "", 20)
		assert.Error(t, err)
	})
}

func TestFindCatalogByName(t *testing.T) {
	conn, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	ctx := context.Background()
	repo := repository.NewCatalogRepoWithConn(conn)
	bed := entity.CatalogHabit{
		ID:                 uuid.New(),
		Name:               "Make My Bed",
		Description:        "Make your bed every morning with neatly arranged sheets",
		Category:           "lifestyle",
		Icon:               "🛏️",
		VerificationType:   "photo",
		VerificationPrompt: "Does this image show a properly made bed?",
		Difficulty:         "easy",
		Popularity:         100,
		IsActive:           true,
	}
	query := regexp.QuoteMeta(`WHERE name = $1 AND is_active = TRUE;`)
	t.Run("found", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(bed.Name).WillReturnRows(catalogRow(&bed))
		result, err := repo.FindByName(ctx, bed.Name)
		assert.NoError(t, err)
		assert.Equal(t, bed, *result)
	})
	t.Run("not in catalog", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs("Juggling").WillReturnError(pgx.ErrNoRows)
		_, err := repo.FindByName(ctx, "Juggling")
		assert.ErrorIs(t, err, errorvalues.ErrCatalogHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		conn.ExpectQuery(query).WithArgs(bed.Name).WillReturnError(errors.New("db error"))
		_, err := repo.FindByName(ctx, bed.Name)
		assert.Error(t, err)
	})
}
