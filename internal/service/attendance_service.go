package service

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	"github.com/qlhs-edu/dashboard-bff/internal/upstream"
)

type attendanceFetcher interface {
	ListAttendance(ctx context.Context) ([]models.AttendanceRow, int, error)
	ListAttendanceByClass(ctx context.Context, classID string) ([]models.AttendanceRow, int, error)
}

// AttendanceListRequest captures the filter and page window for a listing.
type AttendanceListRequest struct {
	Filter   models.AttendanceFilter
	ClassID  string
	Page     int `validate:"omitempty,min=1"`
	PageSize int `validate:"omitempty,min=1,max=100"`
}

// AttendanceListResult is the shaped listing the dashboard renders. Classes
// and Subjects are the distinct dropdown options derived from the full batch,
// not the filtered subset.
type AttendanceListResult struct {
	Records  []models.AttendanceRecord `json:"records"`
	Stats    models.AttendanceStats    `json:"stats"`
	Classes  []string                  `json:"classes"`
	Subjects []string                  `json:"subjects"`
}

// AttendanceService fetches attendance batches from the backend, normalizes
// them and applies the conjunctive filter engine.
type AttendanceService struct {
	upstream  attendanceFetcher
	cache     *CacheService
	validator *validator.Validate
	logger    *zap.Logger
	cacheTTL  time.Duration
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(fetcher attendanceFetcher, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *AttendanceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AttendanceService{
		upstream:  fetcher,
		cache:     cache,
		validator: validator.New(),
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

// NormalizeAttendance maps raw rows to view models, same length and order.
// The synthetic id suffixes the batch index, so duplicate natural keys still
// yield unique ids. Missing fields degrade to zero values, never an error.
func NormalizeAttendance(rows []models.AttendanceRow) []models.AttendanceRecord {
	records := make([]models.AttendanceRecord, 0, len(rows))
	for idx, r := range rows {
		records = append(records, models.AttendanceRecord{
			ID:          fmt.Sprintf("%d-%d-%d-%s-%s-%d", r.Year, r.Month, r.Day, r.Time, r.StudentID, idx),
			Time:        r.Time,
			Day:         r.Day,
			Month:       r.Month,
			Year:        r.Year,
			DayOfWeek:   r.DayOfWeek,
			StudentID:   r.StudentID,
			StudentName: r.StudentName,
			SubjectID:   r.SubjectID,
			SubjectName: r.SubjectName,
			Status:      models.NormalizeAttendanceStatus(r.Status),
			Remark:      r.Remark,
			ClassIDs:    r.ClassIDs,
			ClassNames:  r.ClassNames,
			AttendedAt:  r.AttendedAt,
		})
	}
	return records
}

// FilterAttendance returns the subset matching every specified criterion,
// preserving input order. Empty criteria and the "all" sentinel always match.
// The class criterion is exact trimmed membership in the comma-joined class
// list and the subject criterion is strict subject-name equality; only the
// roster view matches loosely.
func FilterAttendance(records []models.AttendanceRecord, filter models.AttendanceFilter) []models.AttendanceRecord {
	search := strings.ToLower(filter.Search)
	result := make([]models.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if search != "" &&
			!strings.Contains(strings.ToLower(r.StudentName), search) &&
			!strings.Contains(strings.ToLower(r.StudentID), search) {
			continue
		}
		if !matchesClassToken(r.ClassNames, filter.Class) {
			continue
		}
		if filter.Subject != "" && filter.Subject != models.FilterSentinel && r.SubjectName != filter.Subject {
			continue
		}
		if filter.Date != "" && recordDateKey(r) != filter.Date {
			continue
		}
		result = append(result, r)
	}
	return result
}

// matchesClassToken reports whether the selected class equals one of the
// trimmed comma-separated class tokens. Unset and "all" always match.
func matchesClassToken(classNames, selected string) bool {
	if selected == "" || selected == models.FilterSentinel {
		return true
	}
	for _, name := range strings.Split(classNames, ",") {
		if strings.TrimSpace(name) == selected {
			return true
		}
	}
	return false
}

func recordDateKey(r models.AttendanceRecord) string {
	return fmt.Sprintf("%d-%02d-%02d", r.Year, r.Month, r.Day)
}

// SummarizeAttendance counts by remark and computes the integer-rounded
// rate. The rate is 0 for an empty set, never NaN.
func SummarizeAttendance(records []models.AttendanceRecord) models.AttendanceStats {
	stats := models.AttendanceStats{Total: len(records)}
	for _, r := range records {
		switch strings.ToLower(r.Remark) {
		case "on time":
			stats.Present++
		case "late":
			stats.Late++
		case "absent":
			stats.Absent++
		}
	}
	if stats.Total > 0 {
		stats.Rate = int(math.Round(float64(stats.Present+stats.Late) / float64(stats.Total) * 100))
	}
	return stats
}

// SummarizeToday computes the dashboard cards for a reference date. This
// rate keeps one decimal while SummarizeAttendance rounds to an integer;
// both granularities are observed behavior and must stay distinct.
func SummarizeToday(records []models.AttendanceRecord, ref time.Time) models.TodayStats {
	stats := models.TodayStats{RatePct: "0%"}
	for _, r := range records {
		if r.Year != ref.Year() || r.Month != int(ref.Month()) || r.Day != ref.Day() {
			continue
		}
		stats.TodayCount++
		switch r.Status {
		case models.AttendanceStatusPresent:
			stats.PresentToday++
		case models.AttendanceStatusAbsent:
			stats.AbsentToday++
		}
	}
	if stats.TodayCount > 0 {
		rate := float64(stats.PresentToday) / float64(stats.TodayCount) * 100
		stats.RatePct = fmt.Sprintf("%.1f%%", rate)
	}
	return stats
}

// List fetches, normalizes, filters and paginates attendance records.
func (s *AttendanceService) List(ctx context.Context, req AttendanceListRequest) (*AttendanceListResult, *models.Pagination, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, nil, validationError(err)
	}

	records, err := s.fetchNormalized(ctx, req.ClassID)
	if err != nil {
		return nil, nil, err
	}

	filtered := FilterAttendance(records, req.Filter)

	page := req.Page
	if page < 1 {
		page = 1
	}
	size := req.PageSize
	if size <= 0 {
		size = 15
	}
	start := (page - 1) * size
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}

	totalPages := (len(filtered) + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}

	result := &AttendanceListResult{
		Records:  filtered[start:end],
		Stats:    SummarizeAttendance(filtered),
		Classes:  classOptions(records),
		Subjects: subjectOptions(records),
	}
	pagination := &models.Pagination{
		Page:       page,
		PageSize:   size,
		TotalCount: len(filtered),
		TotalPages: totalPages,
	}
	return result, pagination, nil
}

// Filtered returns the full filtered collection, used by exports.
func (s *AttendanceService) Filtered(ctx context.Context, filter models.AttendanceFilter) ([]models.AttendanceRecord, error) {
	records, err := s.fetchNormalized(ctx, "")
	if err != nil {
		return nil, err
	}
	return FilterAttendance(records, filter), nil
}

// TodayStats computes the dashboard cards over the full batch.
func (s *AttendanceService) TodayStats(ctx context.Context, ref time.Time) (models.TodayStats, error) {
	records, err := s.fetchNormalized(ctx, "")
	if err != nil {
		return models.TodayStats{RatePct: "0%"}, err
	}
	return SummarizeToday(records, ref), nil
}

// Recent returns the newest checked-in records, attended_at descending.
func (s *AttendanceService) Recent(ctx context.Context, limit int) ([]models.AttendanceRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	records, err := s.fetchNormalized(ctx, "")
	if err != nil {
		return nil, err
	}
	attended := make([]models.AttendanceRecord, 0, len(records))
	for _, r := range records {
		if r.AttendedAt != "" {
			attended = append(attended, r)
		}
	}
	sort.SliceStable(attended, func(i, j int) bool {
		return attended[i].AttendedAt > attended[j].AttendedAt
	})
	if len(attended) > limit {
		attended = attended[:limit]
	}
	return attended, nil
}

func (s *AttendanceService) fetchNormalized(ctx context.Context, classID string) ([]models.AttendanceRecord, error) {
	cacheKey := "attendance:all"
	if classID != "" {
		cacheKey = "attendance:class:" + classID
	}
	if s.cache != nil {
		var cached []models.AttendanceRecord
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	var (
		rows []models.AttendanceRow
		err  error
	)
	if classID != "" {
		rows, _, err = s.upstream.ListAttendanceByClass(ctx, classID)
	} else {
		rows, _, err = s.upstream.ListAttendance(ctx)
	}
	if err != nil {
		if upstream.IsNoRecords(err) {
			return []models.AttendanceRecord{}, nil
		}
		return nil, err
	}
	records := NormalizeAttendance(rows)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, records, s.cacheTTL); err != nil {
			s.logger.Warn("attendance cache write failed", zap.Error(err))
		}
	}
	return records, nil
}

func classOptions(records []models.AttendanceRecord) []string {
	seen := map[string]struct{}{}
	var options []string
	for _, r := range records {
		for _, name := range strings.Split(r.ClassNames, ",") {
			name = strings.TrimSpace(name)
			if name == "" {
				continue
			}
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				options = append(options, name)
			}
		}
	}
	return options
}

func subjectOptions(records []models.AttendanceRecord) []string {
	seen := map[string]struct{}{}
	var options []string
	for _, r := range records {
		if r.SubjectName == "" {
			continue
		}
		if _, ok := seen[r.SubjectName]; !ok {
			seen[r.SubjectName] = struct{}{}
			options = append(options, r.SubjectName)
		}
	}
	return options
}
