package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/habitproof/internal/clients/vision"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/internal/repository/mocks"
	"github.com/limbo/habitproof/internal/service"
	svcmocks "github.com/limbo/habitproof/internal/service/mocks"
	"github.com/limbo/habitproof/pkg/dates"
	"github.com/limbo/habitproof/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type habitsMocks struct {
	habits    *mocks.MockHabitsRepositoryI
	catalog   *mocks.MockCatalogRepositoryI
	checkIns  *mocks.MockCheckInsRepositoryI
	suggester *svcmocks.MockSuggesterI
}

func newHabitsService(t *testing.T) (*service.HabitsService, *habitsMocks) {
	ctrl := gomock.NewController(t)
	m := &habitsMocks{
		habits:    mocks.NewMockHabitsRepositoryI(ctrl),
		catalog:   mocks.NewMockCatalogRepositoryI(ctrl),
		checkIns:  mocks.NewMockCheckInsRepositoryI(ctrl),
		suggester: svcmocks.NewMockSuggesterI(ctrl),
	}
	return service.NewHabitsService(m.habits, m.catalog, m.checkIns, m.suggester), m
}

func TestCreateHabitFromCatalog(t *testing.T) {
	t.Parallel()
	serv, m := newHabitsService(t)
	uid := uuid.New()
	template := &entity.CatalogHabit{
		ID:                 uuid.New(),
		Name:               "Go to the Gym",
		Description:        "Visit the gym and complete a workout session",
		Category:           "fitness",
		Icon:               "💪",
		VerificationType:   "photo",
		VerificationPrompt: "Does this image show evidence of being at a gym?",
		Difficulty:         "medium",
		IsActive:           true,
	}
	habitID := uuid.New()

	m.catalog.EXPECT().FindByName(gomock.Any(), "Go to the Gym").Return(template, nil)
	m.habits.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *entity.Habit) (uuid.UUID, error) {
			assert.Equal(t, uid, h.UserID)
			assert.False(t, h.IsCustom)
			assert.Equal(t, &template.ID, h.CatalogID)
			assert.Equal(t, template.VerificationPrompt, h.VerificationPrompt)
			assert.Equal(t, "18:00", h.ReminderTime)
			return habitID, nil
		})
	m.habits.EXPECT().GetByID(gomock.Any(), habitID).
		Return(&entity.Habit{ID: habitID, UserID: uid, Name: template.Name}, nil)

	habit, err := serv.CreateHabit(context.Background(), uid, &service.CreateHabitRequest{
		Name:         "Go to the Gym",
		ReminderTime: "18:00",
	})
	assert.NoError(t, err)
	assert.Equal(t, habitID, habit.ID)
}

func TestCreateCustomHabit(t *testing.T) {
	t.Parallel()
	serv, m := newHabitsService(t)
	uid := uuid.New()

	t.Run("defaults applied", func(t *testing.T) {
		habitID := uuid.New()
		m.catalog.EXPECT().FindByName(gomock.Any(), "Cold Shower").
			Return(nil, errorvalues.ErrCatalogHabitNotFound)
		m.habits.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, h *entity.Habit) (uuid.UUID, error) {
				assert.True(t, h.IsCustom)
				assert.Equal(t, entity.CategoryCustom, h.Category)
				assert.Equal(t, "✓", h.Icon)
				assert.Equal(t, entity.VerifyPhoto, h.VerificationType)
				assert.Equal(t, "09:00", h.ReminderTime)
				return habitID, nil
			})
		m.habits.EXPECT().GetByID(gomock.Any(), habitID).
			Return(&entity.Habit{ID: habitID, UserID: uid, Name: "Cold Shower"}, nil)

		habit, err := serv.CreateHabit(context.Background(), uid, &service.CreateHabitRequest{
			Name:               "Cold Shower",
			Description:        "Take a cold shower every morning",
			VerificationPrompt: "Does this image show a running cold shower?",
		})
		assert.NoError(t, err)
		assert.Equal(t, habitID, habit.ID)
	})

	t.Run("custom habit without a prompt", func(t *testing.T) {
		m.catalog.EXPECT().FindByName(gomock.Any(), "Cold Shower").
			Return(nil, errorvalues.ErrCatalogHabitNotFound)
		_, err := serv.CreateHabit(context.Background(), uid, &service.CreateHabitRequest{
			Name:        "Cold Shower",
			Description: "Take a cold shower every morning",
		})
		assert.ErrorContains(t, err, "validation error")
	})

	t.Run("malformed reminder time", func(t *testing.T) {
		_, err := serv.CreateHabit(context.Background(), uid, &service.CreateHabitRequest{
			Name:         "Cold Shower",
			ReminderTime: "25:99",
		})
		assert.ErrorContains(t, err, "validation error")
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := serv.CreateHabit(context.Background(), uid, &service.CreateHabitRequest{})
		assert.ErrorContains(t, err, "validation error")
	})
}

func TestGetHabitOwnership(t *testing.T) {
	t.Parallel()
	serv, m := newHabitsService(t)
	uid := uuid.New()
	habitID := uuid.New()

	t.Run("owned", func(t *testing.T) {
		habit := &entity.Habit{ID: habitID, UserID: uid, IsActive: true}
		m.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(habit, nil)
		result, err := serv.GetHabit(context.Background(), habitID, uid)
		assert.NoError(t, err)
		assert.Equal(t, habit, result)
	})

	t.Run("someone else's habit", func(t *testing.T) {
		m.habits.EXPECT().GetByID(gomock.Any(), habitID).
			Return(&entity.Habit{ID: habitID, UserID: uuid.New()}, nil)
		_, err := serv.GetHabit(context.Background(), habitID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})

	t.Run("missing habit", func(t *testing.T) {
		m.habits.EXPECT().GetByID(gomock.Any(), habitID).
			Return(nil, errorvalues.ErrHabitNotFound)
		_, err := serv.GetHabit(context.Background(), habitID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
}

func TestUpdateHabitFields(t *testing.T) {
	t.Parallel()
	serv, m := newHabitsService(t)
	uid := uuid.New()
	habitID := uuid.New()
	newName := "Morning Run"
	newReminder := "06:30"

	m.habits.EXPECT().GetByID(gomock.Any(), habitID).Return(&entity.Habit{
		ID:           habitID,
		UserID:       uid,
		Name:         "Go for a Run",
		ReminderTime: "09:00",
		IsActive:     true,
	}, nil)
	m.habits.EXPECT().Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, h *entity.Habit) error {
			assert.Equal(t, newName, h.Name)
			assert.Equal(t, newReminder, h.ReminderTime)
			return nil
		})

	habit, err := serv.UpdateHabit(context.Background(), habitID, uid, &service.UpdateHabitRequest{
		Name:         &newName,
		ReminderTime: &newReminder,
	})
	assert.NoError(t, err)
	assert.Equal(t, newName, habit.Name)
}

func TestDeactivateHabit_Service(t *testing.T) {
	t.Parallel()
	serv, m := newHabitsService(t)
	uid := uuid.New()
	habitID := uuid.New()

	t.Run("deactivated", func(t *testing.T) {
		m.habits.EXPECT().GetByID(gomock.Any(), habitID).
			Return(&entity.Habit{ID: habitID, UserID: uid, IsActive: true}, nil)
		m.habits.EXPECT().Deactivate(gomock.Any(), habitID).Return(nil)
		err := serv.DeactivateHabit(context.Background(), habitID, uid)
		assert.NoError(t, err)
	})

	t.Run("wrong owner never reaches the repo", func(t *testing.T) {
		m.habits.EXPECT().GetByID(gomock.Any(), habitID).
			Return(&entity.Habit{ID: habitID, UserID: uuid.New()}, nil)
		err := serv.DeactivateHabit(context.Background(), habitID, uid)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestDashboard(t *testing.T) {
	t.Parallel()
	serv, m := newHabitsService(t)
	uid := uuid.New()
	readID := uuid.New()
	gymID := uuid.New()
	runID := uuid.New()
	today := dates.DayStart(time.Now())

	m.habits.EXPECT().GetActiveByUserID(gomock.Any(), uid).Return([]*entity.Habit{
		{ID: readID, UserID: uid, Name: "Read"},
		{ID: gymID, UserID: uid, Name: "Gym"},
		{ID: runID, UserID: uid, Name: "Run"},
	}, nil)
	m.checkIns.EXPECT().FindDayForUser(gomock.Any(), uid, today).Return([]*entity.CheckIn{
		{ID: uuid.New(), UserID: uid, HabitID: readID, Status: entity.StatusVerified},
		{ID: uuid.New(), UserID: uid, HabitID: gymID, Status: entity.StatusRejected},
	}, nil)

	dash, err := serv.Dashboard(context.Background(), uid)
	assert.NoError(t, err)
	assert.Equal(t, 3, dash.Total)
	assert.Equal(t, 1, dash.CompletedToday)
	assert.Equal(t, 2, dash.RemainingToday)
	assert.True(t, dash.Habits[0].IsCompletedToday)
	// A rejected attempt still shows up but does not complete the habit
	assert.False(t, dash.Habits[1].IsCompletedToday)
	assert.NotNil(t, dash.Habits[1].CheckIn)
	assert.Nil(t, dash.Habits[2].CheckIn)
}

func TestBrowseCatalog(t *testing.T) {
	t.Parallel()
	serv, m := newHabitsService(t)

	t.Run("limit falls back to default", func(t *testing.T) {
		m.catalog.EXPECT().List(gomock.Any(), "fitness", "", 50).
			Return([]*entity.CatalogHabit{{Name: "Go to the Gym"}}, nil)
		habits, err := serv.BrowseCatalog(context.Background(), "fitness", "", 0)
		assert.NoError(t, err)
		assert.Len(t, habits, 1)
	})

	t.Run("repository error propagates", func(t *testing.T) {
		m.catalog.EXPECT().List(gomock.Any(), "", "", 20).Return(nil, errors.New("db error"))
		_, err := serv.BrowseCatalog(context.Background(), "", "", 20)
		assert.Error(t, err)
	})
}

func TestSuggestVerification(t *testing.T) {
	t.Parallel()
	serv, m := newHabitsService(t)

	t.Run("AI suggestion preferred", func(t *testing.T) {
		want := vision.Suggestion{
			VerificationType:   "photo",
			VerificationPrompt: "Does this image show a running cold shower?",
			Reasoning:          "Photo proof is straightforward for this activity.",
		}
		m.suggester.EXPECT().Suggest(gomock.Any(), "Cold Shower", "Take a cold shower").
			Return(want, nil)
		got, err := serv.SuggestVerification(context.Background(), "Cold Shower", "Take a cold shower")
		assert.NoError(t, err)
		assert.Equal(t, &want, got)
	})

	t.Run("fallback on AI failure", func(t *testing.T) {
		m.suggester.EXPECT().Suggest(gomock.Any(), "Read Before Bed", "Read a chapter").
			Return(vision.Suggestion{}, errors.New("api down"))
		got, err := serv.SuggestVerification(context.Background(), "Read Before Bed", "Read a chapter")
		assert.NoError(t, err)
		assert.Equal(t, "photo", got.VerificationType)
		assert.Contains(t, got.VerificationPrompt, "reading")
	})

	t.Run("missing inputs", func(t *testing.T) {
		_, err := serv.SuggestVerification(context.Background(), "", "")
		assert.ErrorContains(t, err, "validation error")
	})
}
