package model

import "time"

// Enrollment links one User to one Activity. Deleting either side removes it.
type Enrollment struct {
	ID         uint      `json:"-" gorm:"primaryKey"`
	ActivityID uint      `json:"-" gorm:"not null;index;uniqueIndex:uq_enrollments_activity_user"`
	UserEmail  string    `json:"email" gorm:"size:200;not null;uniqueIndex:uq_enrollments_activity_user"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Activity Activity `json:"-" gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
	User     User     `json:"-" gorm:"foreignKey:UserEmail;references:Email;constraint:OnDelete:CASCADE"`
}
