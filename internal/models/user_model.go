package models

import "gorm.io/gorm"

// User is an identity record. Created once by the population engine and
// immutable thereafter.
type User struct {
	gorm.Model
	FirstName   string      `json:"first_name" gorm:"not null"`
	LastName    string      `json:"last_name" gorm:"not null"`
	Email       string      `gorm:"unique;not null" json:"email"`
	Password    string      `json:"-"`
	Phone       *string     `json:"phone"` // only coach-type roles carry a phone
	PrimaryRole Role        `json:"primary_role" gorm:"index;not null"`
	Roles       StringSlice `json:"roles" gorm:"type:json"`
}

// HasRole reports whether the user's role set includes r.
func (u *User) HasRole(r Role) bool {
	return u.Roles.Contains(string(r))
}

// Admin has no domain attributes beyond its user.
type Admin struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"index;not null"`
}

// Fan has no domain attributes beyond its user.
type Fan struct {
	gorm.Model
	UserID uint `json:"user_id" gorm:"index;not null"`
}

// Address is owned independently and referenced by id; a household may share
// one address across parents and their players.
type Address struct {
	gorm.Model
	Address1 string  `json:"address1" gorm:"not null"`
	Address2 *string `json:"address2"`
	City     string  `json:"city" gorm:"not null"`
	State    string  `json:"state" gorm:"not null"`
	Zip      string  `json:"zip" gorm:"not null"`
}
