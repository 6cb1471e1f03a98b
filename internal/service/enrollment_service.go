package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	apperrors "mergington/internal/errors"
	"mergington/internal/model"
	"mergington/internal/repository"
)

// EnrollmentService handles signing students up for activities and removing them.
type EnrollmentService interface {
	SignUp(ctx context.Context, activityName, email string) error
	Unregister(ctx context.Context, activityName, email string) error
}

type enrollmentService struct {
	activityRepo   repository.ActivityRepository
	userRepo       repository.UserRepository
	enrollmentRepo repository.EnrollmentRepository
}

// NewEnrollmentService creates a new enrollment service.
func NewEnrollmentService(
	activityRepo repository.ActivityRepository,
	userRepo repository.UserRepository,
	enrollmentRepo repository.EnrollmentRepository,
) EnrollmentService {
	return &enrollmentService{
		activityRepo:   activityRepo,
		userRepo:       userRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

func (s *enrollmentService) findActivity(ctx context.Context, name string) (*model.Activity, error) {
	activity, err := s.activityRepo.FindByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("find activity: %w", err)
	}
	return activity, nil
}

// SignUp enrolls email in the named activity.
//
// The student row is created and committed before the enrollment checks run,
// so a student can exist without any enrollment when a later check fails.
func (s *enrollmentService) SignUp(ctx context.Context, activityName, email string) error {
	activity, err := s.findActivity(ctx, activityName)
	if err != nil {
		return err
	}

	_, created, err := s.userRepo.FindOrCreate(ctx, email)
	if err != nil {
		return fmt.Errorf("ensure user: %w", err)
	}
	if created {
		zerolog.Ctx(ctx).Debug().Str("email", email).Msg("created user on first signup")
	}

	_, err = s.enrollmentRepo.Find(ctx, activity.ID, email)
	if err == nil {
		return apperrors.ErrAlreadySignedUp
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("find enrollment: %w", err)
	}

	if activity.HasCapacityLimit() {
		current, err := s.enrollmentRepo.CountByActivity(ctx, activity.ID)
		if err != nil {
			return fmt.Errorf("count enrollments: %w", err)
		}
		if current >= int64(activity.MaxParticipants) {
			return apperrors.ErrActivityFull
		}
	}

	// The checks above give the error precedence; the insert itself re-checks
	// both conditions against concurrent signups.
	inserted, err := s.enrollmentRepo.CreateWithinCapacity(ctx, &model.Enrollment{
		ActivityID: activity.ID,
		UserEmail:  email,
	}, activity.MaxParticipants)
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperrors.ErrAlreadySignedUp
		}
		return fmt.Errorf("create enrollment: %w", err)
	}
	if !inserted {
		return apperrors.ErrActivityFull
	}
	return nil
}

// Unregister removes email from the named activity.
func (s *enrollmentService) Unregister(ctx context.Context, activityName, email string) error {
	activity, err := s.findActivity(ctx, activityName)
	if err != nil {
		return err
	}

	enrollment, err := s.enrollmentRepo.Find(ctx, activity.ID, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrNotSignedUp
		}
		return fmt.Errorf("find enrollment: %w", err)
	}

	if err := s.enrollmentRepo.Delete(ctx, enrollment); err != nil {
		return fmt.Errorf("delete enrollment: %w", err)
	}
	return nil
}
