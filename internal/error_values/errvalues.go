package errorvalues

import "errors"

var (
	ErrInvalidToken = errors.New("invalid or malformed token")

	ErrUserExists   = errors.New("such user already exists")
	ErrUserNotFound = errors.New("user doesn't exist")

	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrWrongOwner    = errors.New("habit belongs to a different user")
	ErrHabitInactive = errors.New("habit is deactivated")

	ErrCheckInNotFound  = errors.New("check-in doesn't exist")
	ErrAlreadyCheckedIn = errors.New("already checked in today with verified status")
	ErrInvalidImage     = errors.New("file is not a supported image")

	ErrStreakNotFound = errors.New("no active streak for this habit")

	ErrCatalogHabitNotFound = errors.New("catalog habit doesn't exist")

	ErrStorageFailure = errors.New("blob storage operation failed")
)
