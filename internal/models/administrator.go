package models

import (
	"time"
)

// Profile values accepted for an administrator account
const (
	ProfileAdmin  = "Admin"
	ProfileEditor = "Editor"
)

// Administrator represents an API operator account.
// The password is never serialized in responses.
type Administrator struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Profile   string    `gorm:"not null" json:"profile"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// View returns the externally visible shape of the administrator
func (a Administrator) View() AdministratorView {
	return AdministratorView{
		ID:      a.ID,
		Email:   a.Email,
		Profile: a.Profile,
	}
}
