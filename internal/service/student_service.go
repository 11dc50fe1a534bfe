package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	"github.com/qlhs-edu/dashboard-bff/internal/upstream"
)

type studentFetcher interface {
	ListStudents(ctx context.Context) ([]models.StudentRow, int, error)
	ListStudentsByClass(ctx context.Context, classID string) ([]models.StudentRow, int, error)
	ListStudentsBySubject(ctx context.Context, subjectID string) ([]models.StudentRow, int, error)
}

type classLister interface {
	ListClasses(ctx context.Context) ([]models.ClassRow, error)
}

type subjectLister interface {
	ListSubjectsByTeacher(ctx context.Context, teacherID string) ([]models.SubjectRow, int, error)
}

// StudentListRequest scopes a roster listing. ClassID pins the roster to one
// class (the per-class page) and SubjectID to one subject's enrollment (the
// subject detail page); a scoped roster ignores the matching criterion.
type StudentListRequest struct {
	TeacherID string
	ClassID   string
	SubjectID string
	Filter    models.StudentFilter
}

// StudentListResult carries the filtered roster plus the dropdown options.
type StudentListResult struct {
	Students []models.StudentRecord `json:"students"`
	Classes  []models.ClassRow      `json:"classes"`
	Subjects []models.SubjectOption `json:"subjects"`
}

// StudentService fetches and shapes the student roster.
type StudentService struct {
	upstream studentFetcher
	classes  classLister
	subjects subjectLister
	cache    *CacheService
	logger   *zap.Logger
	cacheTTL time.Duration
}

// NewStudentService constructs a StudentService.
func NewStudentService(fetcher studentFetcher, classes classLister, subjects subjectLister, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{
		upstream: fetcher,
		classes:  classes,
		subjects: subjects,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
	}
}

// NormalizeStudents maps raw rows to roster view models, same length and
// order. Missing denormalized fields become the em-dash placeholder; the
// backend's integer flag folds to active/inactive.
func NormalizeStudents(rows []models.StudentRow) []models.StudentRecord {
	records := make([]models.StudentRecord, 0, len(rows))
	for _, r := range rows {
		grade := r.ClassNames
		if grade == "" {
			grade = models.MissingFieldPlaceholder
		}
		subjects := r.SubjectNames
		if subjects == "" {
			subjects = models.MissingFieldPlaceholder
		}
		status := models.StudentStatusInactive
		if r.Status == 1 {
			status = models.StudentStatusActive
		}
		records = append(records, models.StudentRecord{
			ID:             r.StudentID,
			Name:           r.FullName,
			Grade:          grade,
			Email:          r.Email,
			Phone:          r.PhoneNumber,
			Subjects:       subjects,
			AttendanceRate: 0,
			Status:         status,
		})
	}
	return records
}

// FilterStudents applies the conjunctive roster filter, preserving order.
// Class and subject criteria resolve their display names first and then
// match loosely against the denormalized text.
func FilterStudents(records []models.StudentRecord, filter models.StudentFilter, classes []models.ClassRow, subjects []models.SubjectOption) []models.StudentRecord {
	classDisplay := filter.Class
	for _, c := range classes {
		if c.ClassID == filter.Class {
			classDisplay = c.ClassName
			break
		}
	}
	subjectDisplay := filter.Subject
	for _, s := range subjects {
		if s.ID == filter.Subject {
			subjectDisplay = s.Name
			break
		}
	}

	search := strings.ToLower(filter.Search)
	result := make([]models.StudentRecord, 0, len(records))
	for _, r := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.Name), search) &&
			!strings.Contains(strings.ToLower(r.ID), search) {
			continue
		}
		if !matchesDenormalized(r.Grade, filter.Class, classDisplay) {
			continue
		}
		if filter.Subject != "" && filter.Subject != models.FilterSentinel && r.Subjects == models.MissingFieldPlaceholder {
			continue
		}
		if !matchesDenormalized(r.Subjects, filter.Subject, subjectDisplay) {
			continue
		}
		result = append(result, r)
	}
	return result
}

// List fetches the roster (optionally scoped to a class or a subject),
// normalizes and filters it, and resolves the class/subject dropdown options.
func (s *StudentService) List(ctx context.Context, req StudentListRequest) (*StudentListResult, error) {
	records, err := s.fetchNormalized(ctx, req.ClassID, req.SubjectID)
	if err != nil {
		return nil, err
	}

	classes := s.loadClasses(ctx)
	subjects := s.loadSubjects(ctx, req.TeacherID)

	filter := req.Filter
	if req.ClassID != "" {
		// Per-class pages never filter by class on top of the scope.
		filter.Class = models.FilterSentinel
	}
	if req.SubjectID != "" {
		filter.Subject = models.FilterSentinel
	}

	return &StudentListResult{
		Students: FilterStudents(records, filter, classes, subjects),
		Classes:  classes,
		Subjects: subjects,
	}, nil
}

func (s *StudentService) fetchNormalized(ctx context.Context, classID, subjectID string) ([]models.StudentRecord, error) {
	cacheKey := "students:all"
	switch {
	case classID != "":
		cacheKey = "students:class:" + classID
	case subjectID != "":
		cacheKey = "students:subject:" + subjectID
	}
	if s.cache != nil {
		var cached []models.StudentRecord
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	var (
		rows []models.StudentRow
		err  error
	)
	switch {
	case classID != "":
		rows, _, err = s.upstream.ListStudentsByClass(ctx, classID)
	case subjectID != "":
		rows, _, err = s.upstream.ListStudentsBySubject(ctx, subjectID)
	default:
		rows, _, err = s.upstream.ListStudents(ctx)
	}
	if err != nil {
		if upstream.IsNoRecords(err) {
			return []models.StudentRecord{}, nil
		}
		return nil, err
	}
	records := NormalizeStudents(rows)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, records, s.cacheTTL); err != nil {
			s.logger.Warn("student cache write failed", zap.Error(err))
		}
	}
	return records, nil
}

// Dropdown options degrade to empty on upstream failure; the roster itself
// stays usable without them.
func (s *StudentService) loadClasses(ctx context.Context) []models.ClassRow {
	if s.classes == nil {
		return nil
	}
	classes, err := s.classes.ListClasses(ctx)
	if err != nil {
		s.logger.Warn("class options fetch failed", zap.Error(err))
		return nil
	}
	return classes
}

func (s *StudentService) loadSubjects(ctx context.Context, teacherID string) []models.SubjectOption {
	if s.subjects == nil || teacherID == "" {
		return nil
	}
	rows, _, err := s.subjects.ListSubjectsByTeacher(ctx, teacherID)
	if err != nil {
		s.logger.Warn("subject options fetch failed", zap.Error(err))
		return nil
	}
	return NormalizeSubjects(rows)
}
