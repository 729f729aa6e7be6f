package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/dwahderian-ui/uniform/internal/model"
)

// IdentityRepository is the identity data-access interface.
// Runtime traffic only reads; Create and DeleteAll exist for the seeder.
type IdentityRepository interface {
	GetByUsername(ctx context.Context, username string) (*model.Identity, error)
	Create(ctx context.Context, identity *model.Identity) error
	DeleteAll(ctx context.Context) error
}

type identityRepo struct {
	db *gorm.DB
}

// NewIdentityRepo creates the GORM-backed IdentityRepository.
func NewIdentityRepo(db *gorm.DB) IdentityRepository {
	return &identityRepo{db: db}
}

func (r *identityRepo) GetByUsername(ctx context.Context, username string) (*model.Identity, error) {
	var identity model.Identity
	err := r.db.WithContext(ctx).
		Where("username = ?", username).
		First(&identity).Error
	if err != nil {
		return nil, err
	}
	return &identity, nil
}

func (r *identityRepo) Create(ctx context.Context, identity *model.Identity) error {
	return r.db.WithContext(ctx).Create(identity).Error
}

func (r *identityRepo) DeleteAll(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.Identity{}).Error
}
