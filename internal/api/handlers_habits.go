package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/internal/service"
	"github.com/limbo/habitproof/pkg/entity"
	"github.com/limbo/habitproof/pkg/httputil"
)

type CreateHabitRequest struct {
	Name               string `json:"name"`
	Description        string `json:"description"`
	Category           string `json:"category"`
	Icon               string `json:"icon"`
	ReminderTime       string `json:"reminder_time"`
	VerificationType   string `json:"verification_type"`
	VerificationPrompt string `json:"verification_prompt"`
}

type UpdateHabitRequest struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	Category           *string `json:"category"`
	Icon               *string `json:"icon"`
	ReminderTime       *string `json:"reminder_time"`
	VerificationPrompt *string `json:"verification_prompt"`
}

type SuggestVerificationRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (s *Server) CreateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("create habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	var req CreateHabitRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("create habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.CreateHabit(ctx, user.ID, &service.CreateHabitRequest{
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		Icon:               req.Icon,
		ReminderTime:       req.ReminderTime,
		VerificationType:   req.VerificationType,
		VerificationPrompt: req.VerificationPrompt,
	})
	if err != nil {
		switch {
		case strings.HasPrefix(err.Error(), "validation error"):
			logger.Error("create habit error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("create habit error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "couldn't create habit: user doesn't exist")
		default:
			logger.Error("create habit error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating habit")
		}
		return
	}
	// Clients refresh their habit list from the creation response
	habits, err := s.habitsService.GetUserHabits(ctx, user.ID)
	if err != nil {
		logger.Warn("create habit: refreshing habit list failed", slog.String("error", err.Error()))
		habits = []*entity.Habit{}
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"habit":  habit,
		"habits": habits,
	})
	logger.Info("habit created", slog.String("habit_id", habit.ID.String()))
}

func (s *Server) GetHabits(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get habits error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	habits, err := s.habitsService.GetUserHabits(ctx, user.ID)
	if err != nil {
		logger.Error("getting habits list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting habits list")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"habits": habits,
		"total":  len(habits),
	})
}

func habitIDFromPath(r *http.Request, param string) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, param))
}

func (s *Server) GetHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	id, err := habitIDFromPath(r, "id")
	if err != nil {
		logger.Error("get habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.GetHabit(ctx, id, user.ID)
	if err != nil {
		writeHabitLookupError(w, logger, "get habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habit": habit})
}

func (s *Server) UpdateHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("update habit error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	id, err := habitIDFromPath(r, "id")
	if err != nil {
		logger.Error("update habit error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value")
		return
	}
	var req UpdateHabitRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update habit error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habit, err := s.habitsService.UpdateHabit(ctx, id, user.ID, &service.UpdateHabitRequest{
		Name:               req.Name,
		Description:        req.Description,
		Category:           req.Category,
		Icon:               req.Icon,
		ReminderTime:       req.ReminderTime,
		VerificationPrompt: req.VerificationPrompt,
	})
	if err != nil {
		if strings.HasPrefix(err.Error(), "validation error") {
			logger.Error("update habit error: validation failed", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		writeHabitLookupError(w, logger, "update habit", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"habit": habit})
	logger.Info("habit updated", slog.String("habit_id", habit.ID.String()))
}

func (s *Server) DeleteHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("habit deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	id, err := habitIDFromPath(r, "id")
	if err != nil {
		logger.Error("habit deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	if err := s.habitsService.DeactivateHabit(ctx, id, user.ID); err != nil {
		writeHabitLookupError(w, logger, "habit deletion", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"message": "habit deactivated"})
	logger.Info("habit deactivated", slog.String("habit_id", id.String()))
}

// Missing habits and other users' habits are both reported as 404.
func writeHabitLookupError(w http.ResponseWriter, logger *slog.Logger, op string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrHabitNotFound):
		logger.Error(op + " error: unexist habit")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist")
	case errors.Is(err, errorvalues.ErrWrongOwner):
		logger.Error(op + " error: habit has different owner")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist")
	default:
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while handling habit")
	}
}

func (s *Server) GetDashboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get dashboard error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	dashboard, err := s.habitsService.Dashboard(ctx, user.ID)
	if err != nil {
		logger.Error("get dashboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while building dashboard")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dashboard)
}

func (s *Server) BrowseCatalog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil {
		limit = 0
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	habits, err := s.habitsService.BrowseCatalog(ctx,
		r.URL.Query().Get("category"),
		r.URL.Query().Get("search"),
		limit)
	if err != nil {
		logger.Error("browse catalog error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while browsing catalog")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"habits": habits,
		"total":  len(habits),
	})
}

func (s *Server) SuggestVerification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req SuggestVerificationRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("suggest verification error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*30)
	defer cancel()
	suggestion, err := s.habitsService.SuggestVerification(ctx, req.Name, req.Description)
	if err != nil {
		if strings.HasPrefix(err.Error(), "validation error") {
			logger.Error("suggest verification error: validation failed")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		logger.Error("suggest verification error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while suggesting verification")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, suggestion)
}
