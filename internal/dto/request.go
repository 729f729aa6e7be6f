package dto

// ── tutoring request DTOs ──

// SubmitRequest is the multipart submission form.
// The file attachment itself is read separately; only its name is recorded.
type SubmitRequest struct {
	StudentName string `form:"student_name" binding:"required"`
	CourseName  string `form:"course_name"  binding:"required"`
	ExamDate    string `form:"exam_date"    binding:"required"` // YYYY-MM-DD
}

// SubmitResponse acknowledges a stored submission.
type SubmitResponse struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// RequestResponse is a tutoring request as rendered on the dashboard.
type RequestResponse struct {
	ID          string `json:"id"`
	StudentName string `json:"student_name"`
	CourseName  string `json:"course_name"`
	ExamDate    string `json:"exam_date"` // YYYY-MM-DD
	Status      string `json:"status"`
	FileName    string `json:"file_name"`
	IsUrgent    bool   `json:"is_urgent"` // computed at read time, never stored
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// UpdateStatusRequest changes a request's workflow state.
type UpdateStatusRequest struct {
	NewStatus string `json:"new_status" binding:"required"`
}

// UpdateStatusResponse acknowledges a status change.
type UpdateStatusResponse struct {
	ID        string `json:"id"`
	NewStatus string `json:"new_status"`
}
