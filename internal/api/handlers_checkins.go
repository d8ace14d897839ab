package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/pkg/httputil"
)

// multipart memory ceiling, larger images spill to disk before validation
const maxMultipartMemory = 12 << 20

// SubmitCheckIn runs the whole check-in flow from a multipart form with an
// "image" file part and a "habit_id" value.
func (s *Server) SubmitCheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("submit check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		logger.Error("submit check-in error: invalid multipart form")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "expected multipart form with image and habit_id")
		return
	}
	habitID, err := uuid.Parse(r.FormValue("habit_id"))
	if err != nil {
		logger.Error("submit check-in error: invalid habit id")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit_id in form")
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		logger.Error("submit check-in error: missing image part")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "image file is required")
		return
	}
	defer file.Close()
	image, err := io.ReadAll(file)
	if err != nil {
		logger.Error("submit check-in error: reading image failed", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "could not read image file")
		return
	}
	mimeType := header.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = http.DetectContentType(image)
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Second*60)
	defer cancel()
	result, err := s.checkInService.Submit(ctx, user, habitID, image, mimeType)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrAlreadyCheckedIn):
			logger.Error("submit check-in error: already verified today")
			resp := map[string]any{
				"error":  "habit already checked in today",
				"status": http.StatusConflict,
			}
			if result != nil && result.CheckIn != nil {
				resp["check_in"] = result.CheckIn
			}
			httputil.WriteJSONResponse(w, http.StatusConflict, resp)
		case errors.Is(err, errorvalues.ErrInvalidImage):
			logger.Error("submit check-in error: invalid image")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "image must be a valid jpeg, png or webp under 10MB")
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("submit check-in error: unexist habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist")
		case errors.Is(err, errorvalues.ErrHabitInactive):
			logger.Error("submit check-in error: inactive habit")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "habit is deactivated")
		default:
			logger.Error("submit check-in error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while submitting check-in")
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, result)
	logger.Info("check-in submitted",
		slog.String("habit_id", habitID.String()),
		slog.String("status", string(result.CheckIn.Status)))
}

func (s *Server) GetCheckInHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("check-in history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	var habitID *uuid.UUID
	if raw := r.URL.Query().Get("habit_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			logger.Error("check-in history error: invalid habit id filter")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit_id filter")
			return
		}
		habitID = &id
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*15)
	defer cancel()
	pageResult, err := s.checkInService.History(ctx, user.ID, habitID, page, limit)
	if err != nil {
		logger.Error("check-in history error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting check-in history")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, pageResult)
}

func (s *Server) GetTodayCheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("today check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	habitID, err := habitIDFromPath(r, "habitID")
	if err != nil {
		logger.Error("today check-in error: invalid habit id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	checkIn, err := s.checkInService.Today(ctx, user.ID, habitID)
	if err != nil {
		logger.Error("today check-in error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting today's check-in")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"checked_in": checkIn != nil,
		"check_in":   checkIn,
	})
}

func (s *Server) GetCheckIn(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	user, err := GetUserFromContext(r)
	if err != nil {
		logger.Error("get check-in error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
		return
	}
	id, err := habitIDFromPath(r, "id")
	if err != nil {
		logger.Error("get check-in error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid check-in id in path value")
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), time.Second*10)
	defer cancel()
	checkIn, err := s.checkInService.Get(ctx, user.ID, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCheckInNotFound) {
			logger.Error("get check-in error: unexist check-in")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "check-in doesn't exist")
			return
		}
		logger.Error("get check-in error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting check-in")
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{"check_in": checkIn})
}
