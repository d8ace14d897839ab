package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/internal/service"
	"github.com/limbo/habitproof/pkg/entity"
	"github.com/limbo/habitproof/pkg/httputil"
)

var (
	requestIDKContextKey = "Request-ID"
	loggerContextKey     = "Logger"
	identityContextKey   = "Identity"
	userContextKey       = "User"
)

func (s *Server) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqID := uuid.New()
		ctx := context.WithValue(r.Context(), requestIDKContextKey, reqID.String())
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) SettingUpLoggerMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := slog.Default()
		reqID, ok := r.Context().Value(requestIDKContextKey).(string)
		if ok && reqID != "" {
			logger = logger.With(slog.String("request_id", reqID))
		}
		logger = logger.With(slog.String("from", r.RemoteAddr))
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

func (s *Server) LoggerExtensionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		user, ok := r.Context().Value(userContextKey).(*entity.User)
		if ok && user != nil {
			logger = logger.With(slog.String("uid", user.ID.String()))
		}
		ctx := context.WithValue(r.Context(), loggerContextKey, logger)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// AuthMiddleware verifies the bearer token and stores the asserted identity.
// It does not touch the database; ResolveUserMiddleware does that part.
func (s *Server) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		// Getting token from header
		tokenString, err := GetTokenFromHeader(r)
		if err != nil {
			logger.Error("auth failed: invalid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token")
			return
		}
		// Getting claims from token string
		tokenClaims, err := s.jwtService.ParseToken(tokenString)
		if err != nil {
			switch {
			case errors.Is(err, errorvalues.ErrInvalidToken):
				logger.Error("auth failed: error parsing token")
				httputil.WriteErrorResponse(w, http.StatusUnauthorized, "authorization failed: invalid token")
				return
			default:
				logger.Error("auth failed: internal error while parsing token", slog.String("error", err.Error()))
				httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error parsing token")
				return
			}
		}
		// Assuring if token is alive
		now := time.Now()
		if tokenClaims.ExpiresAt != nil && tokenClaims.ExpiresAt.Time.Before(now) {
			logger.Error("tried to auth with expired token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token expired")
			return
		}
		if tokenClaims.NotBefore != nil && tokenClaims.NotBefore.Time.After(now) {
			logger.Error("tried to auth with not yet valid token")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "token not ready")
			return
		}
		ident := service.Identity{
			SubjectID:   tokenClaims.Subject,
			Email:       tokenClaims.Email,
			DisplayName: tokenClaims.DisplayName,
		}
		ctx := context.WithValue(r.Context(), identityContextKey, ident)
		r = r.WithContext(ctx)
		next.ServeHTTP(w, r)
	})
}

// ResolveUserMiddleware maps the token identity onto a registered user row.
// Callers who never hit POST /auth/verify get a 404 here.
func (s *Server) ResolveUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLoggerFromCtx(r.Context())
		ident, ok := r.Context().Value(identityContextKey).(service.Identity)
		if !ok {
			logger.Error("resolve user failed: no identity in context")
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), time.Second*5)
		defer cancel()
		user, err := s.userService.GetBySubject(ctx, ident.SubjectID)
		if err != nil {
			if errors.Is(err, errorvalues.ErrUserNotFound) {
				logger.Error("resolve user failed: identity not registered")
				httputil.WriteErrorResponse(w, http.StatusNotFound, "user not registered, call /auth/verify first")
				return
			}
			logger.Error("resolve user failed: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while searching for user")
			return
		}
		r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
		next.ServeHTTP(w, r)
	})
}

// keyedLimiter hands out one token bucket per key and keeps them forever.
// Key cardinality is bounded by the user base, which is fine at this scale.
type keyedLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newKeyedLimiter(limit rate.Limit, burst int) *keyedLimiter {
	return &keyedLimiter{
		limiters: make(map[string]*rate.Limiter),
		limit:    limit,
		burst:    burst,
	}
}

func (kl *keyedLimiter) get(key string) *rate.Limiter {
	kl.mu.Lock()
	defer kl.mu.Unlock()
	if l, ok := kl.limiters[key]; ok {
		return l
	}
	l := rate.NewLimiter(kl.limit, kl.burst)
	kl.limiters[key] = l
	return l
}

// RateLimitMiddleware applies the general per-caller budget, keyed by the
// token subject when present and the remote address otherwise.
func (s *Server) RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if ident, ok := r.Context().Value(identityContextKey).(service.Identity); ok {
			key = ident.SubjectID
		}
		if !s.generalLimiter.get(key).Allow() {
			GetLoggerFromCtx(r.Context()).Warn("request rate limited")
			httputil.WriteErrorResponse(w, http.StatusTooManyRequests, "too many requests, slow down")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// CheckInRateLimitMiddleware caps submissions per user. Retries after a
// rejection are part of the budget.
func (s *Server) CheckInRateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := GetUserFromContext(r)
		if err != nil {
			httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization")
			return
		}
		if !s.checkInLimiter.get(user.ID.String()).Allow() {
			GetLoggerFromCtx(r.Context()).Warn("check-in rate limited")
			httputil.WriteErrorResponse(w, http.StatusTooManyRequests, "check-in limit reached, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerContextKey).(*slog.Logger)
	if ok {
		return logger
	}
	return slog.Default()
}

func GetTokenFromHeader(r *http.Request) (string, error) {
	token := r.Header.Get("Authorization")
	if token == "" {
		return "", errorvalues.ErrInvalidToken
	}
	parts := strings.Split(token, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", errorvalues.ErrInvalidToken
	}
	return parts[1], nil
}

func GetIdentityFromContext(r *http.Request) (service.Identity, error) {
	ident, ok := r.Context().Value(identityContextKey).(service.Identity)
	if !ok {
		return service.Identity{}, errors.New("identity invalid or doesn't exist")
	}
	return ident, nil
}

func GetUserFromContext(r *http.Request) (*entity.User, error) {
	user, ok := r.Context().Value(userContextKey).(*entity.User)
	if !ok || user == nil {
		return nil, errors.New("user invalid or doesn't exist")
	}
	return user, nil
}
