package repository

import (
	"context"

	"gorm.io/gorm"

	"mergington/internal/model"
)

// ActivityRepository defines activity persistence operations.
type ActivityRepository interface {
	Create(ctx context.Context, activities ...*model.Activity) error
	Count(ctx context.Context) (int64, error)
	FindByName(ctx context.Context, name string) (*model.Activity, error)
	List(ctx context.Context) ([]model.Activity, error)
	// Transaction methods
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ActivityRepository) error) error
}

type activityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository.
func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

// Create inserts activities in one statement.
func (r *activityRepository) Create(ctx context.Context, activities ...*model.Activity) error {
	if len(activities) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(activities).Error
}

// Count returns the number of activities.
func (r *activityRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Activity{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// FindByName finds an activity by exact name.
func (r *activityRepository) FindByName(ctx context.Context, name string) (*model.Activity, error) {
	var activity model.Activity
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&activity).Error; err != nil {
		return nil, err
	}
	return &activity, nil
}

// List returns every activity in insertion order.
func (r *activityRepository) List(ctx context.Context) ([]model.Activity, error) {
	var activities []model.Activity
	if err := r.db.WithContext(ctx).Order("id").Find(&activities).Error; err != nil {
		return nil, err
	}
	return activities, nil
}

// WithTransaction executes a function within a database transaction.
func (r *activityRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo ActivityRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := &activityRepository{db: tx}
		return fn(ctx, txRepo)
	})
}
