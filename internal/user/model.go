package user

import "time"

type User struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time `json:"createdAt"`
	Username     string    `gorm:"uniqueIndex" json:"username"`
	Email        string    `gorm:"uniqueIndex" json:"email,omitempty"`
	Password     string    `json:"-"` // bcrypt hash, never serialized
	ProfileImage string    `json:"profileImage"`
}
