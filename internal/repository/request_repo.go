package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/dwahderian-ui/uniform/internal/model"
)

// RequestRepository is the tutoring-request data-access interface.
type RequestRepository interface {
	Create(ctx context.Context, req *model.TutoringRequest) error
	GetByID(ctx context.Context, id string) (*model.TutoringRequest, error)
	// ListByExamDate returns requests ordered ascending by exam date,
	// capped at limit. Ties break on creation time so the order is stable.
	ListByExamDate(ctx context.Context, limit int) ([]model.TutoringRequest, error)
	// UpdateStatus sets the status and refreshes updated_at. Returns
	// gorm.ErrRecordNotFound when no row matched the id.
	UpdateStatus(ctx context.Context, id string, status model.RequestStatus) error
}

type requestRepo struct {
	db *gorm.DB
}

// NewRequestRepo creates the GORM-backed RequestRepository.
func NewRequestRepo(db *gorm.DB) RequestRepository {
	return &requestRepo{db: db}
}

func (r *requestRepo) Create(ctx context.Context, req *model.TutoringRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *requestRepo) GetByID(ctx context.Context, id string) (*model.TutoringRequest, error) {
	var req model.TutoringRequest
	err := r.db.WithContext(ctx).
		Where("request_id = ?", id).
		First(&req).Error
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *requestRepo) ListByExamDate(ctx context.Context, limit int) ([]model.TutoringRequest, error) {
	var requests []model.TutoringRequest
	err := r.db.WithContext(ctx).
		Order("exam_date ASC, created_at ASC").
		Limit(limit).
		Find(&requests).Error
	if err != nil {
		return nil, err
	}
	return requests, nil
}

func (r *requestRepo) UpdateStatus(ctx context.Context, id string, status model.RequestStatus) error {
	result := r.db.WithContext(ctx).
		Model(&model.TutoringRequest{}).
		Where("request_id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	// an update that matched nothing must not look like success
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
