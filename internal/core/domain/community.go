package domain

import "time"

// CommunityEvent is a building-wide event visible to all residents.
type CommunityEvent struct {
	ID       string `json:"id" bson:"-"`
	Title    string `json:"title" bson:"title"`
	Details  string `json:"details,omitempty" bson:"details,omitempty"`
	Date     string `json:"date,omitempty" bson:"date,omitempty"`
	Location string `json:"location,omitempty" bson:"location,omitempty"`
	Img      string `json:"img,omitempty" bson:"img,omitempty"`
}

// WashingBooking reserves a slot on a shared washing machine.
type WashingBooking struct {
	ID        string    `json:"id" bson:"-"`
	Email     string    `json:"email" bson:"email"`
	Machine   string    `json:"machine,omitempty" bson:"machine,omitempty"`
	Date      string    `json:"date,omitempty" bson:"date,omitempty"`
	Slot      string    `json:"slot,omitempty" bson:"slot,omitempty"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}
