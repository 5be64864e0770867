// Package models holds the persisted entities of the account subsystem and
// the plain views handed to the transport layer.
package models

import "time"

// Account is a system user, identified by its normalized email.
// PasswordHash never leaves the services package in a response.
type Account struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	CreatedAt    time.Time
}

// PublicAccount is the only shape of an Account handed to clients.
type PublicAccount struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Public strips everything but email and name.
func (a *Account) Public() PublicAccount {
	return PublicAccount{Email: a.Email, Name: a.Name}
}

// ProfileUpdate carries the fields a caller wants to change. A nil field is
// left untouched.
type ProfileUpdate struct {
	Email    *string `json:"email"`
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// IsEmpty reports whether no field is set.
func (u ProfileUpdate) IsEmpty() bool {
	return u.Email == nil && u.Name == nil && u.Password == nil
}
