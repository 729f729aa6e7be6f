package model

import (
	"fmt"
	"time"
)

// RequestStatus is the closed set of workflow states for a tutoring request.
type RequestStatus string

const (
	StatusPending  RequestStatus = "pending"
	StatusApproved RequestStatus = "approved"
	StatusRejected RequestStatus = "rejected"
)

// ParseRequestStatus validates a caller-supplied status string.
// Free-form strings are rejected so a typo cannot corrupt workflow state.
func ParseRequestStatus(s string) (RequestStatus, error) {
	switch RequestStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return RequestStatus(s), nil
	}
	return "", fmt.Errorf("unknown request status %q", s)
}

// CanTransitionTo reports whether a status change is allowed.
// Transitions are deliberately unrestricted between known states; a secretary
// may move a request back to pending after approving it.
func (s RequestStatus) CanTransitionTo(RequestStatus) bool { return true }

// TutoringRequest is a student's exam accommodation request, tracked through
// its status field. Never deleted by the API.
type TutoringRequest struct {
	RequestID   string        `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"request_id"`
	StudentName string        `gorm:"type:varchar(100);not null"                     json:"student_name"`
	CourseName  string        `gorm:"type:varchar(200);not null"                     json:"course_name"`
	ExamDate    time.Time     `gorm:"type:date;not null"                             json:"exam_date"`
	Status      RequestStatus `gorm:"type:varchar(20);not null;default:'pending'"    json:"status"`
	FileName    string        `gorm:"type:varchar(255);not null;default:''"          json:"file_name"`
	CreatedAt   time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"created_at"`
	UpdatedAt   time.Time     `gorm:"not null;default:CURRENT_TIMESTAMP"             json:"updated_at"`
}

// TableName maps the model to its table.
func (TutoringRequest) TableName() string { return "tutoring_requests" }

// UrgencyWindow is how far ahead an exam date counts as urgent.
const UrgencyWindow = 14 * 24 * time.Hour

// IsUrgent reports whether the exam falls within the urgency window of now.
// The boundary is inclusive: an exam exactly 14 days out is urgent.
func (r *TutoringRequest) IsUrgent(now time.Time) bool {
	return !r.ExamDate.After(now.Add(UrgencyWindow))
}
