package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/internal/repository"
	"github.com/limbo/habitproof/pkg/dates"
	"github.com/limbo/habitproof/pkg/entity"
	"github.com/limbo/habitproof/pkg/points"
)

type UserService struct {
	repo         repository.UsersRepositoryI
	checkInsRepo repository.CheckInsRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI, checkInsRepo repository.CheckInsRepositoryI) *UserService {
	return &UserService{
		repo:         usersRepo,
		checkInsRepo: checkInsRepo,
	}
}

func (us *UserService) VerifyIdentity(ctx context.Context, ident Identity) (*entity.User, error) {
	user, err := us.repo.FindBySubject(ctx, ident.SubjectID)
	if err == nil {
		if ident.DisplayName != "" && ident.DisplayName != user.DisplayName {
			if err := us.repo.UpdateProfile(ctx, user.ID, ident.DisplayName); err != nil {
				return nil, errors.New("refreshing display name error: " + err.Error())
			}
			user.DisplayName = ident.DisplayName
		}
		return user, nil
	}
	if !errors.Is(err, errorvalues.ErrUserNotFound) {
		return nil, errors.New("repository searching error: " + err.Error())
	}

	displayName := ident.DisplayName
	if displayName == "" {
		displayName = strings.SplitN(ident.Email, "@", 2)[0]
	}
	id, err := us.repo.Create(ctx, &entity.User{
		SubjectID:   ident.SubjectID,
		Email:       ident.Email,
		DisplayName: displayName,
	})
	if err != nil {
		// Concurrent first-time verify: someone else created the row
		if errors.Is(err, errorvalues.ErrUserExists) {
			return us.repo.FindBySubject(ctx, ident.SubjectID)
		}
		return nil, errors.New("repository creating error: " + err.Error())
	}
	return us.repo.FindByID(ctx, id)
}

func (us *UserService) GetBySubject(ctx context.Context, subjectID string) (*entity.User, error) {
	user, err := us.repo.FindBySubject(ctx, subjectID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository searching error: " + err.Error())
	}
	return user, nil
}

func (us *UserService) Profile(ctx context.Context, uid uuid.UUID) (*ProfileView, error) {
	user, err := us.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	milestone, remaining := points.NextMilestone(user.CurrentStreak)
	return &ProfileView{
		User:          user,
		LevelProgress: points.LevelProgress(user.TotalPoints),
		NextMilestone: milestone,
		DaysRemaining: remaining,
	}, nil
}

func (us *UserService) UpdateProfile(ctx context.Context, uid uuid.UUID, displayName string) (*entity.User, error) {
	if err := us.repo.UpdateProfile(ctx, uid, displayName); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("repository updating error: " + err.Error())
	}
	return us.GetByID(ctx, uid)
}

func (us *UserService) Stats(ctx context.Context, uid uuid.UUID) (*UserStats, error) {
	user, err := us.GetByID(ctx, uid)
	if err != nil {
		return nil, err
	}
	totalCheckIns, err := us.checkInsRepo.CountByUser(ctx, uid, nil)
	if err != nil {
		return nil, errors.New("repository counting error: " + err.Error())
	}
	verified, err := us.checkInsRepo.CountVerifiedByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("repository counting error: " + err.Error())
	}
	return &UserStats{
		CurrentStreak:    user.CurrentStreak,
		LongestStreak:    user.LongestStreak,
		TotalPoints:      user.TotalPoints,
		Level:            user.Level,
		TotalCheckIns:    totalCheckIns,
		VerifiedCheckIns: verified,
		DaysSinceJoining: dates.DaysBetween(user.CreatedAt, time.Now()),
		LastCheckIn:      user.LastCheckIn,
	}, nil
}
