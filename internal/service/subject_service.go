package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	"github.com/qlhs-edu/dashboard-bff/internal/upstream"
)

// NormalizeSubjects maps raw subject rows to dropdown options. The backend is
// inconsistent about which name field it populates, so fall through name,
// subject_name and finally the id.
func NormalizeSubjects(rows []models.SubjectRow) []models.SubjectOption {
	options := make([]models.SubjectOption, 0, len(rows))
	for _, r := range rows {
		name := r.Name
		if name == "" {
			name = r.SubjectName
		}
		if name == "" {
			name = r.SubjectID
		}
		options = append(options, models.SubjectOption{ID: r.SubjectID, Name: name})
	}
	return options
}

// SubjectService lists the subjects a teacher is assigned to.
type SubjectService struct {
	upstream subjectLister
	cache    *CacheService
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewSubjectService constructs a SubjectService.
func NewSubjectService(lister subjectLister, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *SubjectService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SubjectService{upstream: lister, cache: cache, logger: logger, cacheTTL: cacheTTL}
}

// ListByTeacher returns the teacher's subject options and their count.
func (s *SubjectService) ListByTeacher(ctx context.Context, teacherID string) ([]models.SubjectOption, int, error) {
	cacheKey := fmt.Sprintf("subjects:%s", teacherID)
	if s.cache != nil {
		var cached []models.SubjectOption
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return cached, len(cached), nil
		}
	}

	rows, count, err := s.upstream.ListSubjectsByTeacher(ctx, teacherID)
	if err != nil {
		if upstream.IsNoRecords(err) {
			return []models.SubjectOption{}, 0, nil
		}
		return nil, 0, err
	}
	options := NormalizeSubjects(rows)
	if count <= 0 {
		count = len(options)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, options, s.cacheTTL); err != nil {
			s.logger.Warn("subject cache write failed", zap.Error(err))
		}
	}
	return options, count, nil
}
