package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/time/rate"

	"github.com/limbo/habitproof/internal/service"
	"github.com/limbo/habitproof/pkg/cleanup"
)

const (
	// 100 requests per 15 minutes per caller
	generalRateLimit = rate.Limit(100.0 / (15 * 60))
	generalBurst     = 100
	// 5 check-in submissions per 24 hours per user
	checkInRateLimit = rate.Limit(5.0 / (24 * 60 * 60))
	checkInBurst     = 5
)

type Server struct {
	mx             *chi.Mux
	userService    service.UserServiceI
	habitsService  service.HabitsServiceI
	checkInService service.CheckInServiceI
	streakReader   service.StreakReaderI
	jwtService     JWTServiceI
	generalLimiter *keyedLimiter
	checkInLimiter *keyedLimiter
	srv            *http.Server
}

type ServicesList struct {
	UserService    service.UserServiceI
	HabitsService  service.HabitsServiceI
	CheckInService service.CheckInServiceI
	StreakReader   service.StreakReaderI
	JwtService     JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:             chi.NewMux(),
		userService:    servicesOptions.UserService,
		habitsService:  servicesOptions.HabitsService,
		checkInService: servicesOptions.CheckInService,
		streakReader:   servicesOptions.StreakReader,
		jwtService:     servicesOptions.JwtService,
		generalLimiter: newKeyedLimiter(generalRateLimit, generalBurst),
		checkInLimiter: newKeyedLimiter(checkInRateLimit, checkInBurst),
	}
}

func (s *Server) configureRoutes() {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)

	s.mx.Get("/health", s.Health)

	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Use(s.AuthMiddleware)
		r.Use(s.RateLimitMiddleware)

		// Identity endpoints work before the user row exists
		r.Route("/auth", func(r chi.Router) {
			r.Post("/verify", s.VerifyAuth)
			r.Get("/status", s.AuthStatus)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.ResolveUserMiddleware)
			r.Use(s.LoggerExtensionMiddleware)

			r.Route("/users/me", func(r chi.Router) {
				r.Get("/", s.GetProfile)
				r.Put("/", s.UpdateProfile)
				r.Get("/stats", s.GetUserStats)
			})

			r.Route("/habits", func(r chi.Router) {
				r.Post("/", s.CreateHabit)
				r.Get("/", s.GetHabits)
				r.Get("/dashboard", s.GetDashboard)
				r.Get("/catalog", s.BrowseCatalog)
				r.Post("/suggest-verification", s.SuggestVerification)
				r.Get("/{id}", s.GetHabit)
				r.Put("/{id}", s.UpdateHabit)
				r.Delete("/{id}", s.DeleteHabit)
			})

			r.Route("/checkins", func(r chi.Router) {
				r.With(s.CheckInRateLimitMiddleware).Post("/", s.SubmitCheckIn)
				r.Get("/", s.GetCheckInHistory)
				r.Get("/today/{habitID}", s.GetTodayCheckIn)
				r.Get("/{id}", s.GetCheckIn)
			})

			r.Route("/streaks", func(r chi.Router) {
				r.Get("/leaderboard", s.GetLeaderboard)
				r.Get("/{habitID}", s.GetCurrentStreak)
				r.Get("/{habitID}/history", s.GetStreakHistory)
				r.Get("/{habitID}/stats", s.GetStreakStats)
			})
		})
	})
}

func (s *Server) Run(address string) error {
	s.configureRoutes()
	s.srv = &http.Server{
		Addr:              address,
		Handler:           s.mx,
		ReadHeaderTimeout: 10 * time.Second,
	}
	cleanup.Register(&cleanup.Job{
		Name: "shutting down http server",
		F: func() error {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return s.srv.Shutdown(ctx)
		},
	})
	err := s.srv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
