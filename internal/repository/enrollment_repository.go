package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"mergington/internal/model"
)

// EnrollmentRepository defines enrollment persistence operations.
type EnrollmentRepository interface {
	Find(ctx context.Context, activityID uint, email string) (*model.Enrollment, error)
	CountByActivity(ctx context.Context, activityID uint) (int64, error)
	ListByActivities(ctx context.Context, activityIDs []uint) ([]model.Enrollment, error)
	// CreateWithinCapacity inserts enrollment unless the activity already holds
	// capacity rows. A capacity of zero or less disables the check. It reports
	// whether the row was inserted.
	CreateWithinCapacity(ctx context.Context, enrollment *model.Enrollment, capacity int) (bool, error)
	Delete(ctx context.Context, enrollment *model.Enrollment) error
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Find finds the enrollment for an (activity, email) pair.
func (r *enrollmentRepository) Find(ctx context.Context, activityID uint, email string) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	if err := r.db.WithContext(ctx).
		Where("activity_id = ? AND user_email = ?", activityID, email).
		First(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// CountByActivity counts enrollments of an activity.
func (r *enrollmentRepository) CountByActivity(ctx context.Context, activityID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Enrollment{}).
		Where("activity_id = ?", activityID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// ListByActivities returns the enrollments of the given activities in insertion order.
func (r *enrollmentRepository) ListByActivities(ctx context.Context, activityIDs []uint) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	if len(activityIDs) == 0 {
		return enrollments, nil
	}
	if err := r.db.WithContext(ctx).
		Where("activity_id IN ?", activityIDs).
		Order("id").
		Find(&enrollments).Error; err != nil {
		return nil, err
	}
	return enrollments, nil
}

// CreateWithinCapacity inserts with a single conditional statement so that two
// concurrent signups cannot both take the last slot.
func (r *enrollmentRepository) CreateWithinCapacity(ctx context.Context, enrollment *model.Enrollment, capacity int) (bool, error) {
	if enrollment.CreatedAt.IsZero() {
		enrollment.CreatedAt = time.Now().UTC()
	}

	if capacity <= 0 {
		if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(enrollment).Error; err != nil {
			return false, err
		}
		return true, nil
	}

	// MySQL needs a table reference before WHERE; SQLite has no DUAL.
	from := ""
	if r.db.Dialector.Name() == "mysql" {
		from = " FROM DUAL"
	}
	res := r.db.WithContext(ctx).Exec(
		"INSERT INTO enrollments (activity_id, user_email, created_at) SELECT ?, ?, ?"+from+
			" WHERE (SELECT COUNT(*) FROM enrollments WHERE activity_id = ?) < ?",
		enrollment.ActivityID, enrollment.UserEmail, enrollment.CreatedAt,
		enrollment.ActivityID, capacity,
	)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// Delete removes an enrollment row.
func (r *enrollmentRepository) Delete(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Delete(enrollment).Error
}
