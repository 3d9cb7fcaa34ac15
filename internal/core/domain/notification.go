package domain

import (
	"errors"
	"time"
)

var ErrNotificationNotFound = errors.New("notification not found")

// Notification is an announcement pushed to residents by an administrator.
type Notification struct {
	ID        string    `json:"id" bson:"-"`
	Title     string    `json:"title" bson:"title"`
	Message   string    `json:"message,omitempty" bson:"message,omitempty"`
	Audience  string    `json:"audience,omitempty" bson:"audience,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
