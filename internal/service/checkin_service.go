package service

import (
	"bytes"
	"context"
	"errors"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/habitproof/internal/clients/blobstore"
	errorvalues "github.com/limbo/habitproof/internal/error_values"
	"github.com/limbo/habitproof/internal/repository"
	"github.com/limbo/habitproof/pkg/dates"
	"github.com/limbo/habitproof/pkg/entity"
	"github.com/limbo/habitproof/pkg/points"
)

const (
	maxImageBytes   = 10 << 20
	defaultPageSize = 30
	maxPageSize     = 100

	verifierDownNote = "Verification service was unavailable, the submission was rejected. Please try again."
)

type CheckInService struct {
	repo       repository.CheckInsRepositoryI
	habitsRepo repository.HabitsRepositoryI
	blobs      BlobStoreI
	verifier   ImageVerifierI
	advancer   StreakAdvancerI

	// Serializes submissions per (user, habit) pair within this process. The
	// partial unique index closes the cross-process window.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewCheckInService(
	checkInsRepo repository.CheckInsRepositoryI,
	habitsRepo repository.HabitsRepositoryI,
	blobs BlobStoreI,
	verifier ImageVerifierI,
	advancer StreakAdvancerI,
) *CheckInService {
	if checkInsRepo == nil || habitsRepo == nil || blobs == nil || verifier == nil || advancer == nil {
		log.Fatal("provided nil dependencies to check-in service")
	}
	return &CheckInService{
		repo:       checkInsRepo,
		habitsRepo: habitsRepo,
		blobs:      blobs,
		verifier:   verifier,
		advancer:   advancer,
		locks:      make(map[string]*sync.Mutex),
	}
}

func (cs *CheckInService) pairLock(uid, habitID uuid.UUID) *sync.Mutex {
	key := uid.String() + ":" + habitID.String()
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if l, ok := cs.locks[key]; ok {
		return l
	}
	l := &sync.Mutex{}
	cs.locks[key] = l
	return l
}

var (
	jpegMagic = []byte{0xFF, 0xD8, 0xFF}
	pngMagic  = []byte{0x89, 0x50, 0x4E, 0x47}
	riffMagic = []byte("RIFF")
	webpMagic = []byte("WEBP")
)

// validateImage rejects payloads whose bytes do not match the declared type.
func validateImage(data []byte, mimeType string) error {
	if len(data) == 0 || len(data) > maxImageBytes {
		return errorvalues.ErrInvalidImage
	}
	switch mimeType {
	case "image/jpeg":
		if !bytes.HasPrefix(data, jpegMagic) {
			return errorvalues.ErrInvalidImage
		}
	case "image/png":
		if !bytes.HasPrefix(data, pngMagic) {
			return errorvalues.ErrInvalidImage
		}
	case "image/webp":
		if len(data) < 12 || !bytes.HasPrefix(data, riffMagic) || !bytes.Equal(data[8:12], webpMagic) {
			return errorvalues.ErrInvalidImage
		}
	default:
		return errorvalues.ErrInvalidImage
	}
	return nil
}

// Submit runs the whole check-in workflow: guard, evidence upload, pending
// insert, synchronous adjudication, streak and points mutation. A verifier
// outage degrades the attempt to rejected instead of failing the request.
func (cs *CheckInService) Submit(ctx context.Context, user *entity.User, habitID uuid.UUID, image []byte, mimeType string) (*CheckInResult, error) {
	if err := validateImage(image, mimeType); err != nil {
		return nil, err
	}

	lock := cs.pairLock(user.ID, habitID)
	lock.Lock()
	defer lock.Unlock()

	habit, err := cs.habitsRepo.GetByID(ctx, habitID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("habits repository error: " + err.Error())
	}
	if habit.UserID != user.ID {
		return nil, errorvalues.ErrWrongOwner
	}
	if !habit.IsActive {
		return nil, errorvalues.ErrHabitInactive
	}

	now := time.Now()
	today := dates.DayStart(now)
	existing, err := cs.repo.FindForDay(ctx, user.ID, habitID, today)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	if existing != nil {
		if existing.Status == entity.StatusVerified {
			return &CheckInResult{CheckIn: existing}, errorvalues.ErrAlreadyCheckedIn
		}
		// A retry supersedes today's pending or rejected attempt
		if err := cs.repo.Delete(ctx, existing.ID); err != nil {
			return nil, errors.New("check-ins repository error: " + err.Error())
		}
		cs.discardBlob(ctx, existing.ImageKey)
	}

	key := blobstore.ObjectKey(user.ID, mimeType)
	imageURL, err := cs.blobs.Put(ctx, key, image, mimeType)
	if err != nil {
		return nil, err
	}

	checkIn := &entity.CheckIn{
		UserID:      user.ID,
		HabitID:     habitID,
		ImageURL:    imageURL,
		ImageKey:    key,
		Status:      entity.StatusPending,
		CheckInDate: today,
	}
	id, err := cs.repo.Create(ctx, checkIn)
	if err != nil {
		cs.discardBlob(ctx, key)
		if errors.Is(err, errorvalues.ErrAlreadyCheckedIn) || errors.Is(err, errorvalues.ErrHabitNotFound) {
			return nil, err
		}
		return nil, errors.New("check-ins repository error: " + err.Error())
	}

	verdict, err := cs.verifier.Judge(ctx, imageURL, habit.VerificationPrompt)
	if err != nil {
		slog.ErrorContext(ctx, "image verifier failed, rejecting attempt", "error", err.Error(), "check_in_id", id)
		verdict.Pass = false
		verdict.Explanation = verifierDownNote
	}

	if !verdict.Pass {
		if err := cs.repo.Finalize(ctx, id, entity.StatusRejected, verdict.Explanation, 0); err != nil {
			return nil, errors.New("finalizing check-in error: " + err.Error())
		}
		rejected, err := cs.repo.GetByID(ctx, id)
		if err != nil {
			return nil, errors.New("check-ins repository error: " + err.Error())
		}
		return &CheckInResult{CheckIn: rejected}, nil
	}

	// Advance runs before Finalize because the awarded points depend on the
	// advanced length. The pair mutex serializes this in-process; a loser
	// racing from another instance hits the unique index below and its
	// Advance collapses into the same-day no-op.
	streak, err := cs.advancer.Advance(ctx, user, habitID, now)
	if err != nil {
		return nil, errors.New("advancing streak error: " + err.Error())
	}
	earned := points.CheckInPoints(streak.Length)
	if err := cs.repo.Finalize(ctx, id, entity.StatusVerified, verdict.Explanation, earned); err != nil {
		// A concurrent submission from another instance verified first
		if errors.Is(err, errorvalues.ErrAlreadyCheckedIn) {
			if winner, findErr := cs.repo.FindForDay(ctx, user.ID, habitID, today); findErr == nil && winner != nil {
				return &CheckInResult{CheckIn: winner}, errorvalues.ErrAlreadyCheckedIn
			}
			return nil, err
		}
		return nil, errors.New("finalizing check-in error: " + err.Error())
	}
	verified, err := cs.repo.GetByID(ctx, id)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	return &CheckInResult{
		CheckIn: verified,
		Streak: &StreakSnapshot{
			Current:     streak.Length,
			Longest:     user.LongestStreak,
			IsMilestone: points.IsMilestone(streak.Length),
		},
		Points: &PointsSnapshot{
			Earned:        earned,
			Total:         user.TotalPoints,
			Level:         user.Level,
			TotalCheckIns: user.TotalCheckIns,
		},
	}, nil
}

func (cs *CheckInService) discardBlob(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := cs.blobs.Delete(ctx, key); err != nil {
		slog.WarnContext(ctx, "discarding evidence blob failed", "key", key, "error", err.Error())
	}
}

func (cs *CheckInService) History(ctx context.Context, uid uuid.UUID, habitID *uuid.UUID, page, limit int) (*CheckInPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > maxPageSize {
		limit = defaultPageSize
	}
	offset := (page - 1) * limit
	checkIns, err := cs.repo.ListByUser(ctx, uid, habitID, limit, offset)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	total, err := cs.repo.CountByUser(ctx, uid, habitID)
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	totalPages := (total + limit - 1) / limit
	return &CheckInPage{
		CheckIns:   checkIns,
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
		HasMore:    page < totalPages,
	}, nil
}

func (cs *CheckInService) Today(ctx context.Context, uid, habitID uuid.UUID) (*entity.CheckIn, error) {
	checkIn, err := cs.repo.FindForDay(ctx, uid, habitID, dates.DayStart(time.Now()))
	if err != nil {
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	return checkIn, nil
}

func (cs *CheckInService) Get(ctx context.Context, uid, checkInID uuid.UUID) (*entity.CheckIn, error) {
	checkIn, err := cs.repo.GetByID(ctx, checkInID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCheckInNotFound) {
			return nil, err
		}
		return nil, errors.New("check-ins repository error: " + err.Error())
	}
	// Other users' check-ins are indistinguishable from missing ones
	if checkIn.UserID != uid {
		return nil, errorvalues.ErrCheckInNotFound
	}
	return checkIn, nil
}

var _ CheckInServiceI = (*CheckInService)(nil)
