package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/pkg/httputil"
)

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"service":   "habitproof-api",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

// VerifyAuth registers the token identity on first call and returns the
// existing user afterwards.
func (s *Server) VerifyAuth(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ident, err := GetIdentityFromContext(r)
	if err != nil {
		logger.Error("auth verify error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	user, err := s.userService.VerifyIdentity(ctx, ident)
	if err != nil {
		logger.Error("auth verify error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during identity verification")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"user": user})
	logger.Info("identity verified", slog.String("uid", user.ID.String()))
}

func (s *Server) AuthStatus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	ident, err := GetIdentityFromContext(r)
	if err != nil {
		logger.Error("auth status error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
	defer cancel()
	user, err := s.userService.GetBySubject(ctx, ident.SubjectID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
				"authenticated": true,
				"registered":    false,
			})
			return
		}
		logger.Error("auth status error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while checking status")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"authenticated": true,
		"registered":    true,
		"user":          user,
	})
}

func (s *Server) GetProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	profile, err := s.userService.Profile(ctx, user.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get profile error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist")
			return
		}
		logger.Error("get profile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting profile")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
}

type UpdateProfileRequest struct {
	DisplayName string `json:"display_name"`
}

func (s *Server) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("update profile error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	var req UpdateProfileRequest
	defer r.Body.Close()
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("update profile error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.DisplayName == "" || len(req.DisplayName) > 120 {
		logger.Error("update profile error: invalid display name")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "display name must be 1-120 characters")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	updated, err := s.userService.UpdateProfile(ctx, user.ID, req.DisplayName)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("update profile error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist")
			return
		}
		logger.Error("update profile error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while updating profile")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"user": updated})
	logger.Info("profile updated")
}

func (s *Server) GetUserStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	stats, err := s.userService.Stats(ctx, user.ID)
	if err != nil {
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting stats")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}
