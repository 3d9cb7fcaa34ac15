package domain

import (
	"errors"
	"time"
)

const (
	RoleResident = "resident"
	RoleEmployee = "employee"
	RoleAdmin    = "admin"
)

var ErrMissingEmail = errors.New("email is required")
var ErrUnauthorized = errors.New("unauthorized access")
var ErrForbidden = errors.New("access forbidden")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidRole = errors.New("invalid role")

// KnownRole reports whether s is one of the recognised role values.
func KnownRole(s string) bool {
	return s == RoleResident || s == RoleEmployee || s == RoleAdmin
}

// LoginActivity records one sign-in event on a user record.
type LoginActivity struct {
	Date string `json:"date" bson:"date"`
}

// User models a resident, employee or administrator of the building.
// Role is the sole authorization signal and is re-read from storage on
// every role-scoped request, never cached in the session token.
type User struct {
	ID            string          `json:"id" bson:"-"`
	Name          string          `json:"name" bson:"name"`
	Email         string          `json:"email" bson:"email"`
	Phone         string          `json:"phone,omitempty" bson:"phone,omitempty"`
	Role          string          `json:"role,omitempty" bson:"role,omitempty"`
	Address       string          `json:"address,omitempty" bson:"address,omitempty"`
	Age           int             `json:"age,omitempty" bson:"age,omitempty"`
	Gender        string          `json:"gender,omitempty" bson:"gender,omitempty"`
	Region        string          `json:"region,omitempty" bson:"region,omitempty"`
	Photo         string          `json:"photo,omitempty" bson:"photo,omitempty"`
	LoginActivity []LoginActivity `json:"login_activity,omitempty" bson:"login_activity,omitempty"`
	CreatedAt     time.Time       `json:"created_at" bson:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at" bson:"updated_at"`
}

// Profile carries the self-service editable subset of a user record.
type Profile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Age     int    `json:"age"`
	Gender  string `json:"gender"`
	Region  string `json:"region"`
	Role    string `json:"role"`
}
