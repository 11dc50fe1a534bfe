package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	"github.com/qlhs-edu/dashboard-bff/internal/upstream"
)

// ClassService lists classes with their student counts.
type ClassService struct {
	upstream classLister
	cache    *CacheService
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewClassService constructs a ClassService.
func NewClassService(lister classLister, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *ClassService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{upstream: lister, cache: cache, logger: logger, cacheTTL: cacheTTL}
}

// List returns all classes.
func (s *ClassService) List(ctx context.Context) ([]models.ClassRow, error) {
	const cacheKey = "classes:all"
	if s.cache != nil {
		var cached []models.ClassRow
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := s.upstream.ListClasses(ctx)
	if err != nil {
		if upstream.IsNoRecords(err) {
			return []models.ClassRow{}, nil
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, rows, s.cacheTTL); err != nil {
			s.logger.Warn("class cache write failed", zap.Error(err))
		}
	}
	return rows, nil
}
