package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dwahderian-ui/uniform/internal/model"
	"github.com/dwahderian-ui/uniform/internal/repository"
)

// ── Mock Repositories ──

type mockIdentityRepo struct {
	identities map[string]*model.Identity // key: username
}

func newMockIdentityRepo() *mockIdentityRepo {
	return &mockIdentityRepo{identities: make(map[string]*model.Identity)}
}

func (m *mockIdentityRepo) GetByUsername(_ context.Context, username string) (*model.Identity, error) {
	if id, ok := m.identities[username]; ok {
		return id, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockIdentityRepo) Create(_ context.Context, identity *model.Identity) error {
	if identity.IdentityID == "" {
		identity.IdentityID = uuid.New().String()
	}
	m.identities[identity.Username] = identity
	return nil
}

func (m *mockIdentityRepo) DeleteAll(_ context.Context) error {
	m.identities = make(map[string]*model.Identity)
	return nil
}

type mockRequestRepo struct {
	requests map[string]*model.TutoringRequest // key: request_id
	seq      int                               // insertion order for stable ties
	order    map[string]int
}

func newMockRequestRepo() *mockRequestRepo {
	return &mockRequestRepo{
		requests: make(map[string]*model.TutoringRequest),
		order:    make(map[string]int),
	}
}

func (m *mockRequestRepo) Create(_ context.Context, req *model.TutoringRequest) error {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now()
	}
	if req.UpdatedAt.IsZero() {
		req.UpdatedAt = req.CreatedAt
	}
	m.seq++
	m.order[req.RequestID] = m.seq
	m.requests[req.RequestID] = req
	return nil
}

func (m *mockRequestRepo) GetByID(_ context.Context, id string) (*model.TutoringRequest, error) {
	if req, ok := m.requests[id]; ok {
		return req, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRequestRepo) ListByExamDate(_ context.Context, limit int) ([]model.TutoringRequest, error) {
	all := make([]model.TutoringRequest, 0, len(m.requests))
	for _, req := range m.requests {
		all = append(all, *req)
	}
	sort.Slice(all, func(i, j int) bool {
		if !all[i].ExamDate.Equal(all[j].ExamDate) {
			return all[i].ExamDate.Before(all[j].ExamDate)
		}
		return m.order[all[i].RequestID] < m.order[all[j].RequestID]
	})
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (m *mockRequestRepo) UpdateStatus(_ context.Context, id string, status model.RequestStatus) error {
	req, ok := m.requests[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	req.Status = status
	req.UpdatedAt = time.Now()
	return nil
}

func newMockRepository(identityRepo *mockIdentityRepo, requestRepo *mockRequestRepo) *repository.Repository {
	return &repository.Repository{
		Identity: identityRepo,
		Request:  requestRepo,
	}
}
