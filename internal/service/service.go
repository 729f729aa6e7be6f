package service

import (
	"go.uber.org/zap"

	"github.com/dwahderian-ui/uniform/config"
	"github.com/dwahderian-ui/uniform/internal/repository"
	"github.com/dwahderian-ui/uniform/pkg/jwt"
	"github.com/dwahderian-ui/uniform/pkg/redis"
)

// Service aggregates all business-logic interfaces.
type Service struct {
	Auth    AuthService
	Request RequestService
	Export  ExportService
}

// NewService wires every service to its dependencies.
// rdb may be nil; token revocation then degrades to a no-op.
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:    NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		Request: NewRequestService(repo, logger),
		Export:  NewExportService(repo, logger),
	}
}
