package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleEditor = "editor"
	RoleAuthor = "author"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnknownRole = errors.New("unknown role")

// Role is an entry in the fixed role registry. Name is the authorization
// key; there is no hierarchy between roles.
type Role struct {
	ID          int    `json:"id" bson:"_id"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
}

// Roles returns the complete role registry. Exactly one entry per name.
func Roles() []Role {
	return []Role{
		{ID: 1, Name: RoleAdmin, Description: "Administrator with full access to all features"},
		{ID: 2, Name: RoleEditor, Description: "Editor who can publish articles and manage content"},
		{ID: 3, Name: RoleAuthor, Description: "Author who can create and edit their own articles"},
	}
}

// KnownRole reports whether name is a registered role name.
func KnownRole(name string) bool {
	for _, r := range Roles() {
		if r.Name == name {
			return true
		}
	}
	return false
}

// User models an authenticated actor in the system.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// HasRole reports whether the user holds exactly the named role. No role
// implies another: an admin does not satisfy an author-required check.
func (u *User) HasRole(name string) bool {
	return u.Role == name
}
