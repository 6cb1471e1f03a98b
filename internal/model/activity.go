package model

// Activity is one extracurricular offering. Name is the external lookup key;
// ID never leaves the service.
type Activity struct {
	ID              uint   `json:"-" gorm:"primaryKey"`
	Name            string `json:"name" gorm:"size:200;uniqueIndex;not null"`
	Description     string `json:"description" gorm:"type:text"`
	Schedule        string `json:"schedule" gorm:"size:200"`
	MaxParticipants int    `json:"max_participants" gorm:"not null;default:0"`
}

// HasCapacityLimit reports whether signups are checked against MaxParticipants.
// Zero means no check is made.
func (a *Activity) HasCapacityLimit() bool {
	return a.MaxParticipants > 0
}
