package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mergington/internal/model"
	"mergington/internal/repository"
)

// MockActivityRepository is a mock implementation of ActivityRepository.
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, activities ...*model.Activity) error {
	args := m.Called(ctx, activities)
	return args.Error(0)
}

func (m *MockActivityRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) FindByName(ctx context.Context, name string) (*model.Activity, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Activity), args.Error(1)
}

func (m *MockActivityRepository) List(ctx context.Context) ([]model.Activity, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Activity), args.Error(1)
}

// WithTransaction runs fn against the mock itself unless an error is stubbed.
func (m *MockActivityRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo repository.ActivityRepository) error) error {
	args := m.Called(ctx, fn)
	if err := args.Error(0); err != nil {
		return err
	}
	return fn(ctx, m)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindOrCreate(ctx context.Context, email string) (*model.User, bool, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*model.User), args.Bool(1), args.Error(2)
}

// MockEnrollmentRepository is a mock implementation of EnrollmentRepository.
type MockEnrollmentRepository struct {
	mock.Mock
}

func (m *MockEnrollmentRepository) Find(ctx context.Context, activityID uint, email string) (*model.Enrollment, error) {
	args := m.Called(ctx, activityID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) CountByActivity(ctx context.Context, activityID uint) (int64, error) {
	args := m.Called(ctx, activityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockEnrollmentRepository) ListByActivities(ctx context.Context, activityIDs []uint) ([]model.Enrollment, error) {
	args := m.Called(ctx, activityIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Enrollment), args.Error(1)
}

func (m *MockEnrollmentRepository) CreateWithinCapacity(ctx context.Context, enrollment *model.Enrollment, capacity int) (bool, error) {
	args := m.Called(ctx, enrollment, capacity)
	return args.Bool(0), args.Error(1)
}

func (m *MockEnrollmentRepository) Delete(ctx context.Context, enrollment *model.Enrollment) error {
	args := m.Called(ctx, enrollment)
	return args.Error(0)
}
