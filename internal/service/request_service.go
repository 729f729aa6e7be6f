package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/dwahderian-ui/uniform/internal/dto"
	"github.com/dwahderian-ui/uniform/internal/model"
	"github.com/dwahderian-ui/uniform/internal/repository"
)

// ── request lifecycle errors ──

var (
	ErrMalformedDate   = errors.New("exam date must be in YYYY-MM-DD format")
	ErrMissingField    = errors.New("student name and course name must not be empty")
	ErrRequestNotFound = errors.New("request not found")
	ErrUnknownStatus   = errors.New("unknown request status")
	ErrStatusForbidden = errors.New("status transition not allowed")
)

const examDateLayout = "2006-01-02"

// dashboardLimit caps the prioritized listing; there is no pagination cursor.
const dashboardLimit = 100

// RequestService owns the tutoring-request lifecycle: submission,
// prioritized listing, and status changes.
type RequestService interface {
	Submit(ctx context.Context, req *dto.SubmitRequest, fileName string) (*dto.SubmitResponse, error)
	ListPrioritized(ctx context.Context) ([]dto.RequestResponse, error)
	GetByID(ctx context.Context, id string) (*dto.RequestResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateStatusRequest) (*dto.UpdateStatusResponse, error)
}

type requestService struct {
	repo   *repository.Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewRequestService creates the RequestService.
func NewRequestService(repo *repository.Repository, logger *zap.Logger) RequestService {
	return &requestService{
		repo:   repo,
		logger: logger,
		now:    time.Now,
	}
}

// Submit validates and persists a new request. Status always starts at
// pending regardless of anything the caller sends.
func (s *requestService) Submit(ctx context.Context, req *dto.SubmitRequest, fileName string) (*dto.SubmitResponse, error) {
	if strings.TrimSpace(req.StudentName) == "" || strings.TrimSpace(req.CourseName) == "" {
		return nil, ErrMissingField
	}

	// no range or future-date check, only the fixed format
	examDate, err := time.ParseInLocation(examDateLayout, req.ExamDate, time.UTC)
	if err != nil {
		return nil, ErrMalformedDate
	}

	request := &model.TutoringRequest{
		StudentName: req.StudentName,
		CourseName:  req.CourseName,
		ExamDate:    examDate,
		Status:      model.StatusPending,
		FileName:    fileName,
	}

	if err := s.repo.Request.Create(ctx, request); err != nil {
		s.logger.Error("create request failed", zap.Error(err))
		return nil, err
	}

	return &dto.SubmitResponse{
		ID:      request.RequestID,
		Status:  string(request.Status),
		Message: "Request submitted",
	}, nil
}

// ListPrioritized returns up to 100 requests sorted ascending by exam date,
// each tagged with is_urgent relative to the moment of the call.
func (s *requestService) ListPrioritized(ctx context.Context) ([]dto.RequestResponse, error) {
	requests, err := s.repo.Request.ListByExamDate(ctx, dashboardLimit)
	if err != nil {
		s.logger.Error("list requests failed", zap.Error(err))
		return nil, err
	}

	now := s.now()
	result := make([]dto.RequestResponse, 0, len(requests))
	for i := range requests {
		result = append(result, *s.toRequestResponse(&requests[i], now))
	}

	return result, nil
}

// GetByID fetches a single request. A malformed id is indistinguishable from
// an absent one to the caller.
func (s *requestService) GetByID(ctx context.Context, id string) (*dto.RequestResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrRequestNotFound
	}

	request, err := s.repo.Request.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("get request failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return s.toRequestResponse(request, s.now()), nil
}

// UpdateStatus moves a request to a new workflow state. Only known states
// are accepted; transitions between known states are unrestricted.
// Last write wins when two secretaries race.
func (s *requestService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateStatusRequest) (*dto.UpdateStatusResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrRequestNotFound
	}

	newStatus, err := model.ParseRequestStatus(req.NewStatus)
	if err != nil {
		return nil, ErrUnknownStatus
	}

	current, err := s.repo.Request.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("get request failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !current.Status.CanTransitionTo(newStatus) {
		return nil, ErrStatusForbidden
	}

	if err := s.repo.Request.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRequestNotFound
		}
		s.logger.Error("update status failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return &dto.UpdateStatusResponse{
		ID:        id,
		NewStatus: string(newStatus),
	}, nil
}

func (s *requestService) toRequestResponse(r *model.TutoringRequest, now time.Time) *dto.RequestResponse {
	return &dto.RequestResponse{
		ID:          r.RequestID,
		StudentName: r.StudentName,
		CourseName:  r.CourseName,
		ExamDate:    r.ExamDate.Format(examDateLayout),
		Status:      string(r.Status),
		FileName:    r.FileName,
		IsUrgent:    r.IsUrgent(now),
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
