package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/limbo/habitproof/pkg/httputil"
)

func (s *Server) GetCurrentStreak(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get streak error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	habitID, err := habitIDFromPath(r, "habitID")
	if err != nil {
		logger.Error("get streak error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	streak, err := s.streakReader.Current(ctx, user.ID, habitID)
	if err != nil {
		logger.Error("get streak error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting streak")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"streak": streak})
}

func (s *Server) GetStreakHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("streak history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	habitID, err := habitIDFromPath(r, "habitID")
	if err != nil {
		logger.Error("streak history error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value")
		return
	}
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	streaks, err := s.streakReader.History(ctx, user.ID, habitID, limit)
	if err != nil {
		logger.Error("streak history error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting streak history")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"streaks": streaks,
		"total":   len(streaks),
	})
}

func (s *Server) GetStreakStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("streak stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	habitID, err := habitIDFromPath(r, "habitID")
	if err != nil {
		logger.Error("streak stats error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	stats, err := s.streakReader.Stats(ctx, user, habitID)
	if err != nil {
		logger.Error("streak stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting streak stats")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	entries, err := s.streakReader.Leaderboard(ctx, limit)
	if err != nil {
		logger.Error("leaderboard error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting leaderboard")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"leaderboard": entries})
}
