package domain

import (
	"errors"
	"time"
)

// ReportStatus is the lifecycle state of a maintenance report.
type ReportStatus string

const (
	ReportPending ReportStatus = "pending"
	ReportSolved  ReportStatus = "solved"
)

var ErrReportNotFound = errors.New("report not found")
var ErrDuplicateReport = errors.New("report already submitted")

// Report is a maintenance issue raised by a resident and worked by an
// employee. Reports are keyed by the reporter's email plus a short topic.
type Report struct {
	ID        string       `json:"id" bson:"-"`
	Email     string       `json:"email" bson:"email"`
	Name      string       `json:"name,omitempty" bson:"name,omitempty"`
	Topic     string       `json:"topic" bson:"topic"`
	Message   string       `json:"message,omitempty" bson:"message,omitempty"`
	Apartment string       `json:"apartment,omitempty" bson:"apartment,omitempty"`
	Status    ReportStatus `json:"status" bson:"status"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}
