package repository

import "gorm.io/gorm"

// Repository aggregates all data-access interfaces.
// The gorm handle is injected once at startup; nothing here is a singleton.
type Repository struct {
	Identity IdentityRepository
	Request  RequestRepository
}

// NewRepository wires every repository to the shared database handle.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Identity: NewIdentityRepo(db),
		Request:  NewRequestRepo(db),
	}
}
