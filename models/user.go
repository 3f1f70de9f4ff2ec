// models/user.go
package models

import (
	"time"
)

// Role values stored on User.Role.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is a workshop participant. The DNI is the business identifier used
// for login and leaderboard de-duplication; the numeric ID is internal.
type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	DNI      string  `gorm:"uniqueIndex;not null;size:20" json:"DNI"`
	Name     string  `gorm:"size:100" json:"name"`
	Lastname string  `gorm:"size:100" json:"lastname"`
	Email    *string `gorm:"uniqueIndex" json:"email,omitempty"`
	Password string  `gorm:"not null" json:"-"`
	Role     string  `gorm:"default:'user';size:20" json:"role"`

	// Progression
	XP int `gorm:"default:0" json:"exp"`

	// Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	LastLogin time.Time `json:"last_login"`

	// Relationships
	Answers []Answer `gorm:"foreignKey:UserID" json:"answers,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// FullName joins name and lastname, tolerating a missing lastname.
func (u *User) FullName() string {
	if u.Lastname == "" {
		return u.Name
	}
	return u.Name + " " + u.Lastname
}
