package model

// User is a student, keyed by email. Users are created on their first signup.
type User struct {
	Email string  `json:"email" gorm:"primaryKey;size:200"`
	Name  *string `json:"name,omitempty" gorm:"size:200"`
}
