package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/limbo/habitproof/internal/clients/vision"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/internal/repository"
	"github.com/limbo/habitproof/pkg/dates"
	"github.com/limbo/habitproof/pkg/entity"
)

const defaultReminderTime = "09:00"

type HabitsService struct {
	repo         repository.HabitsRepositoryI
	catalogRepo  repository.CatalogRepositoryI
	checkInsRepo repository.CheckInsRepositoryI
	suggester    SuggesterI
}

func NewHabitsService(
	habitsRepo repository.HabitsRepositoryI,
	catalogRepo repository.CatalogRepositoryI,
	checkInsRepo repository.CheckInsRepositoryI,
	suggester SuggesterI,
) *HabitsService {
	if habitsRepo == nil || catalogRepo == nil || checkInsRepo == nil {
		log.Fatal("provided nil repos to habits service")
	}
	return &HabitsService{
		repo:         habitsRepo,
		catalogRepo:  catalogRepo,
		checkInsRepo: checkInsRepo,
		suggester:    suggester,
	}
}

func (hs *HabitsService) CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	reminder := req.ReminderTime
	if reminder == "" {
		reminder = defaultReminderTime
	}

	var h entity.Habit
	template, err := hs.catalogRepo.FindByName(ctx, req.Name)
	switch {
	case err == nil:
		// Adopted from the catalog: template carries category, prompt and type
		h = entity.Habit{
			UserID:             uid,
			Name:               template.Name,
			Description:        template.Description,
			Category:           template.Category,
			Icon:               template.Icon,
			VerificationType:   template.VerificationType,
			VerificationPrompt: template.VerificationPrompt,
			ReminderTime:       reminder,
			IsCustom:           false,
			CatalogID:          &template.ID,
		}
	case errors.Is(err, errorvalues.ErrCatalogHabitNotFound):
		// Custom habit: the caller must have confirmed a verification prompt
		if req.Description == "" || req.VerificationPrompt == "" {
			return nil, errors.New("validation error: description and verification prompt are required for custom habits")
		}
		h = entity.Habit{
			UserID:             uid,
			Name:               req.Name,
			Description:        req.Description,
			Category:           categoryOrCustom(req.Category),
			Icon:               iconOrDefault(req.Icon),
			VerificationType:   verificationTypeOrPhoto(req.VerificationType),
			VerificationPrompt: req.VerificationPrompt,
			ReminderTime:       reminder,
			IsCustom:           true,
		}
	default:
		return nil, errors.New("catalog repository error: " + err.Error())
	}

	id, err := hs.repo.Create(ctx, &h)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	habit, err := hs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func categoryOrCustom(category string) entity.HabitCategory {
	if category == "" {
		return entity.CategoryCustom
	}
	return entity.HabitCategory(category)
}

func iconOrDefault(icon string) string {
	if icon == "" {
		return "✓"
	}
	return icon
}

func verificationTypeOrPhoto(vt string) entity.VerificationType {
	if vt == "" {
		return entity.VerifyPhoto
	}
	return entity.VerificationType(vt)
}

func validateStruct(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var validationError validator.ValidationErrors
	if errors.As(err, &validationError) {
		joined := errors.New("validation error: ")
		for _, fieldErr := range validationError {
			joined = errors.Join(joined, fieldErr)
		}
		return joined
	}
	return errors.New("validation unexpected error: " + err.Error())
}

func (hs *HabitsService) GetUserHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error) {
	habits, err := hs.repo.GetActiveByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habits, nil
}

func (hs *HabitsService) GetHabit(ctx context.Context, habitID, userID uuid.UUID) (*entity.Habit, error) {
	habit, err := hs.repo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != userID {
		return nil, errorvalues.ErrWrongOwner
	}
	return habit, nil
}

func (hs *HabitsService) UpdateHabit(ctx context.Context, habitID, userID uuid.UUID, req *UpdateHabitRequest) (*entity.Habit, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	habit, err := hs.GetHabit(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		habit.Name = *req.Name
	}
	if req.Description != nil {
		habit.Description = *req.Description
	}
	if req.Category != nil {
		habit.Category = entity.HabitCategory(*req.Category)
	}
	if req.Icon != nil {
		habit.Icon = *req.Icon
	}
	if req.ReminderTime != nil {
		habit.ReminderTime = *req.ReminderTime
	}
	if req.VerificationPrompt != nil {
		habit.VerificationPrompt = *req.VerificationPrompt
	}
	if err := hs.repo.Update(ctx, habit); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	return habit, nil
}

func (hs *HabitsService) DeactivateHabit(ctx context.Context, habitID, userID uuid.UUID) error {
	if _, err := hs.GetHabit(ctx, habitID, userID); err != nil {
		return err
	}
	if err := hs.repo.Deactivate(ctx, habitID); err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return err
		}
		return errors.New("habits repository error: " + err.Error())
	}
	return nil
}

func (hs *HabitsService) Dashboard(ctx context.Context, uid uuid.UUID) (*Dashboard, error) {
	habits, err := hs.repo.GetActiveByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	todays, err := hs.checkInsRepo.FindDayForUser(ctx, uid, dates.DayStart(time.Now()))
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	byHabit := make(map[uuid.UUID]*entity.CheckIn, len(todays))
	for _, c := range todays {
		byHabit[c.HabitID] = c
	}
	dash := &Dashboard{
		Habits: make([]*DashboardHabit, 0, len(habits)),
		Total:  len(habits),
	}
	for _, h := range habits {
		item := &DashboardHabit{Habit: h}
		if c, ok := byHabit[h.ID]; ok {
			item.CheckIn = c
			item.IsCompletedToday = c.Status == entity.StatusVerified
		}
		if item.IsCompletedToday {
			dash.CompletedToday++
		}
		dash.Habits = append(dash.Habits, item)
	}
	dash.RemainingToday = dash.Total - dash.CompletedToday
	return dash, nil
}

func (hs *HabitsService) BrowseCatalog(ctx context.Context, category, search string, limit int) ([]*entity.CatalogHabit, error) {
	if limit < 1 || limit > 100 {
		limit = 50
	}
	habits, err := hs.catalogRepo.List(ctx, category, search, limit)
	if err != nil {
		return nil, errors.New("catalog repository error: " + err.Error())
	}
	return habits, nil
}

// SuggestVerification delegates to the AI capability and falls back to a
// keyword rule table on any failure. The fallback cannot fail.
func (hs *HabitsService) SuggestVerification(ctx context.Context, habitName, description string) (*vision.Suggestion, error) {
	if habitName == "" || description == "" {
		return nil, errors.New("validation error: habit name and description are required")
	}
	if hs.suggester != nil {
		suggestion, err := hs.suggester.Suggest(ctx, habitName, description)
		if err == nil {
			return &suggestion, nil
		}
		slog.WarnContext(ctx, "suggestion service failed, using fallback", "error", err.Error())
	}
	fallback := fallbackSuggestion(habitName, description)
	return &fallback, nil
}

func fallbackSuggestion(habitName, description string) vision.Suggestion {
	name := strings.ToLower(habitName)
	switch {
	case strings.Contains(name, "read") || strings.Contains(name, "book"):
		return vision.Suggestion{
			VerificationType:   string(entity.VerifyPhoto),
			VerificationPrompt: "Does this image show someone reading a book or engaged with reading material?",
			Reasoning:          "Photo verification works well for reading habits as books are easily photographed.",
			Alternatives: []vision.Alternative{
				{Type: string(entity.VerifyManual), Description: "Manually confirm you completed your reading session"},
			},
		}
	case strings.Contains(name, "meditat") || strings.Contains(name, "mindful"):
		return vision.Suggestion{
			VerificationType:   string(entity.VerifyTimer),
			VerificationPrompt: "Complete a meditation session using the timer",
			Reasoning:          "Meditation is best tracked with a timer as it's time-based and private.",
			Alternatives: []vision.Alternative{
				{Type: string(entity.VerifyManual), Description: "Manually confirm completion"},
			},
		}
	case strings.Contains(name, "gym") || strings.Contains(name, "workout") || strings.Contains(name, "exercise"):
		return vision.Suggestion{
			VerificationType:   string(entity.VerifyPhoto),
			VerificationPrompt: "Does this image show evidence of being at a gym or doing a workout?",
			Reasoning:          "Photo proof from the gym provides clear verification of workout completion.",
			Alternatives: []vision.Alternative{
				{Type: string(entity.VerifyLocation), Description: "Use GPS to verify you're at the gym"},
			},
		}
	}
	return vision.Suggestion{
		VerificationType: string(entity.VerifyPhoto),
		VerificationPrompt: fmt.Sprintf(
			"Does this image show evidence of completing: %s? The image should demonstrate that the activity described as %q has been completed.",
			habitName, description),
		Reasoning: "Photo verification provides visual proof of habit completion and works for most activities.",
		Alternatives: []vision.Alternative{
			{Type: string(entity.VerifyManual), Description: "Manually confirm you completed this habit"},
			{Type: string(entity.VerifyTimer), Description: "Use a timer if this is a time-based activity"},
		},
	}
}
