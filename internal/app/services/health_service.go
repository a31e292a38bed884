package services

import (
	"context"

	"github.com/yigit/enrollment-api/internal/pkg/dberrors"
	"github.com/yigit/enrollment-api/internal/pkg/logger"
)

// HealthService defines the interface for liveness checks
type HealthService interface {
	Check(ctx context.Context) error
}

type healthServiceImpl struct {
	db Pinger
}

// NewHealthService creates a new health service instance
func NewHealthService(db Pinger) HealthService {
	return &healthServiceImpl{db: db}
}

// Check pings the database
func (s *healthServiceImpl) Check(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		logger.Error().Err(err).Msg("Database health check failed")
		return dberrors.Wrap(err)
	}
	return nil
}
