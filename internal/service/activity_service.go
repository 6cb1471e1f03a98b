package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"mergington/internal/model"
	"mergington/internal/repository"
)

// DefaultActivities are inserted by Seed into an empty store.
var DefaultActivities = []model.Activity{
	{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
	},
	{
		Name:            "Programming Class",
		Description:     "Learn programming fundamentals and build software projects",
		Schedule:        "Tuesdays and Thursdays, 3:30 PM - 4:30 PM",
		MaxParticipants: 20,
	},
	{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
	},
}

// ActivityDetails is the public projection of an activity and its participants.
type ActivityDetails struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityService handles activity listing and seeding.
type ActivityService interface {
	List(ctx context.Context) (map[string]ActivityDetails, error)
	Seed(ctx context.Context) (int, error)
}

type activityService struct {
	activityRepo   repository.ActivityRepository
	enrollmentRepo repository.EnrollmentRepository
}

// NewActivityService creates a new activity service.
func NewActivityService(activityRepo repository.ActivityRepository, enrollmentRepo repository.EnrollmentRepository) ActivityService {
	return &activityService{
		activityRepo:   activityRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// List returns every activity keyed by name. Participants are listed in signup order.
func (s *activityService) List(ctx context.Context) (map[string]ActivityDetails, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	ids := lo.Map(activities, func(a model.Activity, _ int) uint { return a.ID })
	enrollments, err := s.enrollmentRepo.ListByActivities(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}
	byActivity := lo.GroupBy(enrollments, func(e model.Enrollment) uint { return e.ActivityID })

	result := make(map[string]ActivityDetails, len(activities))
	for _, a := range activities {
		participants := lo.Map(byActivity[a.ID], func(e model.Enrollment, _ int) string { return e.UserEmail })
		result[a.Name] = ActivityDetails{
			Name:            a.Name,
			Description:     a.Description,
			Schedule:        a.Schedule,
			MaxParticipants: a.MaxParticipants,
			Participants:    participants,
		}
	}
	return result, nil
}

// Seed inserts DefaultActivities when the activity table is empty and returns
// how many rows it inserted. It runs in its own transaction.
func (s *activityService) Seed(ctx context.Context) (int, error) {
	inserted := 0
	err := s.activityRepo.WithTransaction(ctx, func(ctx context.Context, txRepo repository.ActivityRepository) error {
		count, err := txRepo.Count(ctx)
		if err != nil {
			return fmt.Errorf("count activities: %w", err)
		}
		if count > 0 {
			return nil
		}

		rows := lo.Map(DefaultActivities, func(a model.Activity, _ int) *model.Activity {
			row := a
			return &row
		})
		if err := txRepo.Create(ctx, rows...); err != nil {
			return fmt.Errorf("insert default activities: %w", err)
		}
		inserted = len(rows)
		return nil
	})
	if err != nil {
		return 0, err
	}

	zerolog.Ctx(ctx).Info().Int("inserted", inserted).Msg("activity seed complete")
	return inserted, nil
}
