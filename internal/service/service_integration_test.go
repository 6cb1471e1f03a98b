package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	apperrors "mergington/internal/errors"
	"mergington/internal/model"
	"mergington/internal/repository"
	"mergington/internal/service"
	"mergington/internal/testutil"
)

type fixture struct {
	db          *gorm.DB
	activities  service.ActivityService
	enrollments service.EnrollmentService
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	gdb := testutil.OpenInMemoryDB(t)
	activityRepo := repository.NewActivityRepository(gdb)
	userRepo := repository.NewUserRepository(gdb)
	enrollmentRepo := repository.NewEnrollmentRepository(gdb)

	f := fixture{
		db:          gdb,
		activities:  service.NewActivityService(activityRepo, enrollmentRepo),
		enrollments: service.NewEnrollmentService(activityRepo, userRepo, enrollmentRepo),
	}
	_, err := f.activities.Seed(context.Background())
	require.NoError(t, err)
	return f
}

func (f fixture) count(t *testing.T, m any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Model(m).Count(&n).Error)
	return n
}

func (f fixture) participants(t *testing.T, activity string) []string {
	t.Helper()
	list, err := f.activities.List(context.Background())
	require.NoError(t, err)
	return list[activity].Participants
}

func TestSeedIsIdempotent(t *testing.T) {
	f := newFixture(t)

	inserted, err := f.activities.Seed(context.Background())
	require.NoError(t, err)
	assert.Zero(t, inserted)
	assert.EqualValues(t, 3, f.count(t, &model.Activity{}))
}

func TestSignUpUnregisterRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.enrollments.SignUp(ctx, "Chess Club", "a@b.com"))
	assert.Contains(t, f.participants(t, "Chess Club"), "a@b.com")

	require.NoError(t, f.enrollments.Unregister(ctx, "Chess Club", "a@b.com"))
	assert.NotContains(t, f.participants(t, "Chess Club"), "a@b.com")

	// The user outlives the enrollment.
	assert.EqualValues(t, 1, f.count(t, &model.User{}))
}

func TestSignUpTwice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.enrollments.SignUp(ctx, "Gym Class", "a@b.com"))
	err := f.enrollments.SignUp(ctx, "Gym Class", "a@b.com")
	assert.ErrorIs(t, err, apperrors.ErrAlreadySignedUp)
	assert.Len(t, f.participants(t, "Gym Class"), 1)
}

func TestUnregisterWithoutEnrollment(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.enrollments.SignUp(ctx, "Gym Class", "a@b.com"))

	err := f.enrollments.Unregister(ctx, "Chess Club", "a@b.com")
	assert.ErrorIs(t, err, apperrors.ErrNotSignedUp)
	assert.EqualValues(t, 1, f.count(t, &model.Enrollment{}))
}

func TestSignUpUnknownActivity(t *testing.T) {
	f := newFixture(t)

	err := f.enrollments.SignUp(context.Background(), "Knitting", "a@b.com")
	assert.ErrorIs(t, err, apperrors.ErrActivityNotFound)
	assert.Zero(t, f.count(t, &model.User{}))
	assert.Zero(t, f.count(t, &model.Enrollment{}))
}

func TestSignUpCapacity(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for i := 0; i < 12; i++ {
		require.NoError(t, f.enrollments.SignUp(ctx, "Chess Club", fmt.Sprintf("student%d@mergington.edu", i)))
	}

	err := f.enrollments.SignUp(ctx, "Chess Club", "late@mergington.edu")
	assert.ErrorIs(t, err, apperrors.ErrActivityFull)
	assert.Len(t, f.participants(t, "Chess Club"), 12)

	// The user row was committed before the capacity check failed.
	var user model.User
	require.NoError(t, f.db.First(&user, "email = ?", "late@mergington.edu").Error)

	// Freeing a slot lets the next student in.
	require.NoError(t, f.enrollments.Unregister(ctx, "Chess Club", "student0@mergington.edu"))
	require.NoError(t, f.enrollments.SignUp(ctx, "Chess Club", "late@mergington.edu"))
	assert.Len(t, f.participants(t, "Chess Club"), 12)
}

func TestSignUpUnlimitedWhenZero(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	require.NoError(t, f.db.Create(&model.Activity{Name: "Open Library"}).Error)

	for i := 0; i < 40; i++ {
		require.NoError(t, f.enrollments.SignUp(ctx, "Open Library", fmt.Sprintf("reader%d@mergington.edu", i)))
	}
	assert.Len(t, f.participants(t, "Open Library"), 40)
}

func TestParticipantsInSignupOrder(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	for _, email := range []string{"zoe@b.com", "adam@b.com", "mia@b.com"} {
		require.NoError(t, f.enrollments.SignUp(ctx, "Programming Class", email))
	}
	assert.Equal(t, []string{"zoe@b.com", "adam@b.com", "mia@b.com"}, f.participants(t, "Programming Class"))
}
