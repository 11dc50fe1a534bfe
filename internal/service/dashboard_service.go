package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	"github.com/qlhs-edu/dashboard-bff/pkg/i18n"
)

// DashboardResult aggregates the landing-page cards and feeds.
type DashboardResult struct {
	Today        models.TodayStats         `json:"today"`
	StudentCount int                       `json:"student_count"`
	SubjectCount int                       `json:"subject_count"`
	TodayClasses []models.ScheduleEntry    `json:"today_classes"`
	Recent       []models.AttendanceRecord `json:"recent"`
	GeneratedAt  time.Time                 `json:"generated_at"`
}

type dashboardAttendance interface {
	TodayStats(ctx context.Context, ref time.Time) (models.TodayStats, error)
	Recent(ctx context.Context, limit int) ([]models.AttendanceRecord, error)
}

type dashboardSchedule interface {
	Weekly(ctx context.Context, teacherID string, selectedWeek int, locale i18n.Locale) (*ScheduleResult, error)
}

type dashboardSubjects interface {
	ListByTeacher(ctx context.Context, teacherID string) ([]models.SubjectOption, int, error)
}

type dashboardStudents interface {
	ListStudents(ctx context.Context) ([]models.StudentRow, int, error)
}

// DashboardService assembles the teacher's landing page from the other
// services. Each section degrades independently; a failing feed never blanks
// the whole dashboard.
type DashboardService struct {
	attendance dashboardAttendance
	schedule   dashboardSchedule
	subjects   dashboardSubjects
	students   dashboardStudents
	cache      *CacheService
	logger     *zap.Logger
	cacheTTL   time.Duration
	now        func() time.Time
}

// NewDashboardService constructs a DashboardService.
func NewDashboardService(attendance dashboardAttendance, schedule dashboardSchedule, subjects dashboardSubjects, students dashboardStudents, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		attendance: attendance,
		schedule:   schedule,
		subjects:   subjects,
		students:   students,
		cache:      cache,
		logger:     logger,
		cacheTTL:   cacheTTL,
		now:        time.Now,
	}
}

// Overview builds the dashboard payload for a teacher.
func (s *DashboardService) Overview(ctx context.Context, teacherID string, locale i18n.Locale) (*DashboardResult, error) {
	cacheKey := fmt.Sprintf("dashboard:%s:%s", teacherID, locale)
	if s.cache != nil {
		var cached DashboardResult
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return &cached, nil
		}
	}

	now := s.now()
	result := &DashboardResult{
		Today:       models.TodayStats{RatePct: "0%"},
		GeneratedAt: now.UTC(),
	}

	today, err := s.attendance.TodayStats(ctx, now)
	if err != nil {
		s.logger.Warn("dashboard today stats failed", zap.Error(err))
	} else {
		result.Today = today
	}

	recent, err := s.attendance.Recent(ctx, 10)
	if err != nil {
		s.logger.Warn("dashboard recent feed failed", zap.Error(err))
	} else {
		result.Recent = recent
	}

	if weekly, err := s.schedule.Weekly(ctx, teacherID, 0, locale); err != nil {
		s.logger.Warn("dashboard schedule failed", zap.Error(err))
	} else {
		result.TodayClasses = weekly.Today
	}

	if _, count, err := s.subjects.ListByTeacher(ctx, teacherID); err != nil {
		s.logger.Warn("dashboard subject count failed", zap.Error(err))
	} else {
		result.SubjectCount = count
	}

	if rows, count, err := s.students.ListStudents(ctx); err != nil {
		s.logger.Warn("dashboard student count failed", zap.Error(err))
	} else {
		if count <= 0 {
			count = len(rows)
		}
		result.StudentCount = count
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result, s.cacheTTL); err != nil {
			s.logger.Warn("dashboard cache write failed", zap.Error(err))
		}
	}
	return result, nil
}
