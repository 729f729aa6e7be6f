package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/dwahderian-ui/uniform/internal/dto"
	"github.com/dwahderian-ui/uniform/internal/service"
	"github.com/dwahderian-ui/uniform/pkg/response"
)

// RequestHandler handles tutoring-request endpoints.
type RequestHandler struct {
	requestSvc service.RequestService
}

// NewRequestHandler creates the RequestHandler.
func NewRequestHandler(requestSvc service.RequestService) *RequestHandler {
	return &RequestHandler{requestSvc: requestSvc}
}

// Submit stores a new tutoring request.
// POST /api/v1/requests
//
// multipart/form-data: student_name, course_name, exam_date (YYYY-MM-DD),
// plus one file attachment. Only the attachment's original name is recorded.
func (h *RequestHandler) Submit(c *gin.Context) {
	var req dto.SubmitRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, 10001, "student_name, course_name and exam_date are required")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, 12001, "a supporting document must be attached")
		return
	}

	result, err := h.requestSvc.Submit(c.Request.Context(), &req, fileHeader.Filename)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.Created(c, result)
}

// Dashboard lists all requests ordered by exam date with urgency flags.
// GET /api/v1/admin/dashboard
func (h *RequestHandler) Dashboard(c *gin.Context) {
	list, err := h.requestSvc.ListPrioritized(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"list": list})
}

// GetRequest fetches a single request.
// GET /api/v1/admin/requests/:id
func (h *RequestHandler) GetRequest(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id must not be empty")
		return
	}

	result, err := h.requestSvc.GetByID(c.Request.Context(), id)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OK(c, result)
}

// UpdateStatus changes a request's workflow state.
// PUT /api/v1/admin/requests/:id/status
func (h *RequestHandler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		response.BadRequest(c, 10001, "request id must not be empty")
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "new_status is required")
		return
	}

	result, err := h.requestSvc.UpdateStatus(c.Request.Context(), id, &req)
	if err != nil {
		h.handleRequestError(c, err)
		return
	}

	response.OK(c, result)
}

func (h *RequestHandler) handleRequestError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrMalformedDate):
		response.BadRequest(c, 12002, "exam date must be in YYYY-MM-DD format")
	case errors.Is(err, service.ErrMissingField):
		response.BadRequest(c, 12003, "student name and course name must not be empty")
	case errors.Is(err, service.ErrRequestNotFound):
		response.NotFound(c, 12004, "request not found")
	case errors.Is(err, service.ErrUnknownStatus):
		response.BadRequest(c, 12005, "status must be pending, approved or rejected")
	case errors.Is(err, service.ErrStatusForbidden):
		response.BadRequest(c, 12006, "status transition not allowed")
	default:
		response.InternalError(c)
	}
}
