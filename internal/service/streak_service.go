package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitproof/internal/repository"
	"github.com/limbo/habitproof/pkg/dates"
	"github.com/limbo/habitproof/pkg/entity"
	"github.com/limbo/habitproof/pkg/points"
)

// StreakService implements both StreakAdvancerI and StreakReaderI. Advance is
// the only place streak rows and user aggregates change.
type StreakService struct {
	repo      repository.StreaksRepositoryI
	usersRepo repository.UsersRepositoryI
}

func NewStreakService(streaksRepo repository.StreaksRepositoryI, usersRepo repository.UsersRepositoryI) *StreakService {
	if streaksRepo == nil || usersRepo == nil {
		log.Fatal("provided nil repos to streak service")
	}
	return &StreakService{
		repo:      streaksRepo,
		usersRepo: usersRepo,
	}
}

// lastAdvancedDay is the calendar day the streak last grew on.
func lastAdvancedDay(s *entity.Streak) time.Time {
	return dates.DayStart(s.StartDate).AddDate(0, 0, s.Length-1)
}

// Advance moves the (user, habit) streak forward for a check-in verified at
// verifiedAt and folds the outcome into the user's aggregate stats. Calling it
// twice for the same day is a no-op on the second call.
func (ss *StreakService) Advance(ctx context.Context, user *entity.User, habitID uuid.UUID, verifiedAt time.Time) (*entity.Streak, error) {
	day := dates.DayStart(verifiedAt)

	active, err := ss.repo.GetActive(ctx, user.ID, habitID)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}

	var streak *entity.Streak
	switch {
	case active == nil:
		streak, err = ss.startStreak(ctx, user.ID, habitID, day)
		if err != nil {
			return nil, err
		}
	case dates.IsSameDay(lastAdvancedDay(active), day):
		// Already advanced today, nothing to mutate
		return active, nil
	case dates.IsConsecutiveDay(lastAdvancedDay(active), day):
		active.Length++
		if err := ss.repo.UpdateLength(ctx, active.ID, active.Length); err != nil {
			return nil, errors.New("streaks repository error: " + err.Error())
		}
		streak = active
	default:
		// The chain broke. Close the old run where it stopped and start over
		if err := ss.repo.Close(ctx, active.ID, lastAdvancedDay(active)); err != nil {
			return nil, errors.New("streaks repository error: " + err.Error())
		}
		streak, err = ss.startStreak(ctx, user.ID, habitID, day)
		if err != nil {
			return nil, err
		}
	}

	earned := points.CheckInPoints(streak.Length)
	user.CurrentStreak = streak.Length
	if streak.Length > user.LongestStreak {
		user.LongestStreak = streak.Length
	}
	user.TotalPoints += earned
	user.Level = points.Level(user.TotalPoints)
	user.TotalCheckIns++
	user.LastCheckIn = &day
	if err := ss.usersRepo.UpdateStats(ctx, user); err != nil {
		return nil, errors.New("updating user stats error: " + err.Error())
	}
	return streak, nil
}

func (ss *StreakService) startStreak(ctx context.Context, uid, habitID uuid.UUID, day time.Time) (*entity.Streak, error) {
	streak := &entity.Streak{
		UserID:    uid,
		HabitID:   habitID,
		StartDate: day,
		Length:    1,
		IsActive:  true,
	}
	id, err := ss.repo.Create(ctx, streak)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	streak.ID = id
	return streak, nil
}

func (ss *StreakService) Current(ctx context.Context, uid, habitID uuid.UUID) (*entity.Streak, error) {
	active, err := ss.repo.GetActive(ctx, uid, habitID)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	if active == nil {
		return &entity.Streak{
			UserID:  uid,
			HabitID: habitID,
		}, nil
	}
	return active, nil
}

func (ss *StreakService) History(ctx context.Context, uid, habitID uuid.UUID, limit int) ([]*entity.Streak, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	streaks, err := ss.repo.ListByPair(ctx, uid, habitID, limit)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	return streaks, nil
}

func (ss *StreakService) Stats(ctx context.Context, user *entity.User, habitID uuid.UUID) (*StreakStats, error) {
	active, err := ss.repo.GetActive(ctx, user.ID, habitID)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	total, err := ss.repo.CountByPair(ctx, user.ID, habitID)
	if err != nil {
		return nil, errors.New("streaks repository error: " + err.Error())
	}
	stats := &StreakStats{
		Longest:      user.LongestStreak,
		TotalStreaks: total,
	}
	if active != nil {
		stats.Current = active.Length
		// A row stays open in storage after the chain breaks. It only counts
		// as live while the last counted day is today or yesterday
		stats.IsActiveNow = dates.DaysBetween(lastAdvancedDay(active), time.Now()) <= 1
		if active.Length > stats.Longest {
			stats.Longest = active.Length
		}
	}
	return stats, nil
}

func (ss *StreakService) Leaderboard(ctx context.Context, limit int) ([]LeaderboardEntry, error) {
	if limit < 1 || limit > 50 {
		limit = 10
	}
	users, err := ss.usersRepo.TopByCurrentStreak(ctx, limit)
	if err != nil {
		return nil, errors.New("users repository error: " + err.Error())
	}
	entries := make([]LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, LeaderboardEntry{
			Rank:          i + 1,
			DisplayName:   u.DisplayName,
			CurrentStreak: u.CurrentStreak,
			LongestStreak: u.LongestStreak,
			Level:         u.Level,
		})
	}
	return entries, nil
}

var _ StreakAdvancerI = (*StreakService)(nil)
var _ StreakReaderI = (*StreakService)(nil)
