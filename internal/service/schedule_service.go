package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	"github.com/qlhs-edu/dashboard-bff/internal/upstream"
	"github.com/qlhs-edu/dashboard-bff/pkg/i18n"
)

type scheduleFetcher interface {
	ListSchedulesByTeacher(ctx context.Context, teacherID string) ([]models.ScheduleRow, error)
}

// ScheduleResult is the weekly-schedule payload.
type ScheduleResult struct {
	Entries      []models.ScheduleEntry `json:"entries"`
	Weeks        []models.WeekInfo      `json:"weeks"`
	SelectedWeek int                    `json:"selected_week"`
	Today        []models.ScheduleEntry `json:"today"`
	SubjectCount int                    `json:"subject_count"`
}

// ScheduleService fetches a teacher's schedule and groups it into week
// buckets.
type ScheduleService struct {
	upstream scheduleFetcher
	cache    *CacheService
	logger   *zap.Logger
	cacheTTL time.Duration
	now      func() time.Time
}

// NewScheduleService constructs a ScheduleService.
func NewScheduleService(fetcher scheduleFetcher, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		upstream: fetcher,
		cache:    cache,
		logger:   logger,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// WeekOf buckets a calendar day into its month-local week:
// ceil((day + weekday of the 1st) / 7), Sunday-based weekday.
//
// Entries from different months can collide on the same week number. That
// quirk is what users see in the week selector today, so it is preserved
// instead of being corrected to ISO weeks.
func WeekOf(day, month, year int) int {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	offset := int(first.Weekday())
	return (day + offset + 6) / 7
}

// NormalizeSchedule maps raw slots to view models, same length and order.
// Times are truncated to HH:MM; weekday codes outside 2..7 fall back to the
// literal placeholder label.
func NormalizeSchedule(rows []models.ScheduleRow, locale i18n.Locale) []models.ScheduleEntry {
	entries := make([]models.ScheduleEntry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, models.ScheduleEntry{
			ID:           fmt.Sprintf("%s-%d-%d-%d", r.SubjectID, r.Day, r.Month, r.Year),
			SubjectID:    r.SubjectID,
			SubjectName:  r.SubjectName,
			TeacherName:  r.TeacherName,
			TeacherEmail: r.TeacherEmail,
			Room:         r.Room,
			DayLabel:     i18n.WeekdayLabel(locale, r.DayOfWeek),
			DayOfWeekRaw: r.DayOfWeek,
			TimeRange:    fmt.Sprintf("%s - %s", truncateTime(r.StartTime), truncateTime(r.EndTime)),
			StartTime:    r.StartTime,
			EndTime:      r.EndTime,
			DateLabel:    fmt.Sprintf("%d/%d/%d", r.Day, r.Month, r.Year),
			FullDate:     time.Date(r.Year, time.Month(r.Month), r.Day, 0, 0, 0, 0, time.UTC),
			Status:       r.Status,
			Week:         WeekOf(r.Day, r.Month, r.Year),
		})
	}
	return entries
}

func truncateTime(raw string) string {
	if len(raw) < 5 {
		return raw
	}
	return raw[:5]
}

// WeekInfos returns the sorted distinct week buckets with their date ranges
// and display labels.
func WeekInfos(entries []models.ScheduleEntry, locale i18n.Locale) []models.WeekInfo {
	byWeek := map[int][]time.Time{}
	for _, e := range entries {
		byWeek[e.Week] = append(byWeek[e.Week], e.FullDate)
	}
	infos := make([]models.WeekInfo, 0, len(byWeek))
	for week, dates := range byWeek {
		sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
		start := dates[0]
		end := dates[len(dates)-1]
		infos = append(infos, models.WeekInfo{
			Week:        week,
			StartDate:   start,
			EndDate:     end,
			DisplayText: i18n.WeekLabel(locale, week, formatDayMonth(start), formatDayMonth(end)),
		})
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Week < infos[j].Week })
	return infos
}

func formatDayMonth(t time.Time) string {
	return fmt.Sprintf("%02d/%02d", t.Day(), int(t.Month()))
}

// EntriesForWeek returns entries in the given week bucket, input order.
func EntriesForWeek(entries []models.ScheduleEntry, week int) []models.ScheduleEntry {
	result := make([]models.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		if e.Week == week {
			result = append(result, e)
		}
	}
	return result
}

// EntriesForDate returns entries whose full date equals the given day.
func EntriesForDate(entries []models.ScheduleEntry, ref time.Time) []models.ScheduleEntry {
	result := make([]models.ScheduleEntry, 0, len(entries))
	for _, e := range entries {
		if e.FullDate.Year() == ref.Year() && e.FullDate.YearDay() == ref.YearDay() {
			result = append(result, e)
		}
	}
	return result
}

// Weekly fetches and shapes the teacher's schedule. A zero selectedWeek
// defaults to the smallest available bucket.
func (s *ScheduleService) Weekly(ctx context.Context, teacherID string, selectedWeek int, locale i18n.Locale) (*ScheduleResult, error) {
	entries, err := s.fetchNormalized(ctx, teacherID, locale)
	if err != nil {
		return nil, err
	}

	weeks := WeekInfos(entries, locale)
	if selectedWeek == 0 && len(weeks) > 0 {
		selectedWeek = weeks[0].Week
	}

	subjects := map[string]struct{}{}
	for _, e := range entries {
		subjects[e.SubjectID] = struct{}{}
	}

	return &ScheduleResult{
		Entries:      EntriesForWeek(entries, selectedWeek),
		Weeks:        weeks,
		SelectedWeek: selectedWeek,
		Today:        EntriesForDate(entries, s.now()),
		SubjectCount: len(subjects),
	}, nil
}

func (s *ScheduleService) fetchNormalized(ctx context.Context, teacherID string, locale i18n.Locale) ([]models.ScheduleEntry, error) {
	cacheKey := fmt.Sprintf("schedule:%s:%s", teacherID, locale)
	if s.cache != nil {
		var cached []models.ScheduleEntry
		if hit, err := s.cache.Get(ctx, cacheKey, &cached); err == nil && hit {
			return cached, nil
		}
	}

	rows, err := s.upstream.ListSchedulesByTeacher(ctx, teacherID)
	if err != nil {
		if upstream.IsNoRecords(err) {
			return []models.ScheduleEntry{}, nil
		}
		return nil, err
	}
	entries := NormalizeSchedule(rows, locale)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, entries, s.cacheTTL); err != nil {
			s.logger.Warn("schedule cache write failed", zap.Error(err))
		}
	}
	return entries, nil
}
