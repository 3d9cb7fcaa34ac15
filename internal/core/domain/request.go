package domain

import (
	"errors"
	"time"
)

var ErrRequestNotFound = errors.New("request not found")

// Request is a resident's service request (device install, repair visit,
// facility booking) reviewed by an employee who sets its status.
type Request struct {
	ID        string    `json:"id" bson:"-"`
	Email     string    `json:"email" bson:"email"`
	Name      string    `json:"name,omitempty" bson:"name,omitempty"`
	Kind      string    `json:"kind,omitempty" bson:"kind,omitempty"`
	Details   string    `json:"details,omitempty" bson:"details,omitempty"`
	Status    string    `json:"status" bson:"status"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
