package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	"github.com/qlhs-edu/dashboard-bff/pkg/i18n"
)

type fakeScheduleFetcher struct {
	rows []models.ScheduleRow
	err  error
}

func (f *fakeScheduleFetcher) ListSchedulesByTeacher(context.Context, string) ([]models.ScheduleRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func TestWeekOf(t *testing.T) {
	// March 2024 starts on a Friday (weekday offset 5).
	assert.Equal(t, 1, WeekOf(1, 3, 2024))
	assert.Equal(t, 1, WeekOf(2, 3, 2024))
	assert.Equal(t, 2, WeekOf(3, 3, 2024))
	assert.Equal(t, 3, WeekOf(10, 3, 2024))
	assert.Equal(t, 6, WeekOf(31, 3, 2024))

	// September 2024 starts on a Sunday (offset 0).
	assert.Equal(t, 1, WeekOf(7, 9, 2024))
	assert.Equal(t, 2, WeekOf(8, 9, 2024))
}

func TestNormalizeSchedule(t *testing.T) {
	rows := []models.ScheduleRow{
		{
			SubjectID: "MATH", SubjectName: "Toán",
			TeacherName: "Pham Thi Dao", Room: "A101",
			Day: 10, Month: 3, Year: 2024, DayOfWeek: "2",
			StartTime: "07:30:00", EndTime: "09:00:00",
			Status: "ACTIVE",
		},
	}

	entries := NormalizeSchedule(rows, i18n.LocaleVI)

	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "MATH-10-3-2024", e.ID)
	assert.Equal(t, "Thứ 2", e.DayLabel)
	assert.Equal(t, "07:30 - 09:00", e.TimeRange)
	assert.Equal(t, "10/3/2024", e.DateLabel)
	assert.Equal(t, 3, e.Week)
	assert.Equal(t, time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC), e.FullDate)
}

func TestNormalizeScheduleWeekdayFallback(t *testing.T) {
	rows := []models.ScheduleRow{{SubjectID: "X", DayOfWeek: "9", Day: 1, Month: 3, Year: 2024}}

	entries := NormalizeSchedule(rows, i18n.LocaleEN)

	assert.Equal(t, "Thứ 9", entries[0].DayLabel)
}

func TestNormalizeScheduleShortTimes(t *testing.T) {
	rows := []models.ScheduleRow{{SubjectID: "X", Day: 1, Month: 3, Year: 2024, StartTime: "7:30", EndTime: ""}}

	entries := NormalizeSchedule(rows, i18n.LocaleVI)

	assert.Equal(t, "7:30 - ", entries[0].TimeRange)
}

func TestWeekInfos(t *testing.T) {
	rows := []models.ScheduleRow{
		{SubjectID: "A", Day: 10, Month: 3, Year: 2024},
		{SubjectID: "B", Day: 12, Month: 3, Year: 2024},
		{SubjectID: "C", Day: 1, Month: 3, Year: 2024},
	}
	entries := NormalizeSchedule(rows, i18n.LocaleVI)

	weeks := WeekInfos(entries, i18n.LocaleVI)

	require.Len(t, weeks, 2)
	assert.Equal(t, 1, weeks[0].Week)
	assert.Equal(t, 3, weeks[1].Week)
	assert.Equal(t, "Tuần 3 - Từ 10/03 đến 12/03", weeks[1].DisplayText)
}

func TestScheduleWeeklyDefaultsToEarliestWeek(t *testing.T) {
	rows := []models.ScheduleRow{
		{SubjectID: "A", Day: 10, Month: 3, Year: 2024, StartTime: "07:30:00", EndTime: "09:00:00"},
		{SubjectID: "B", Day: 1, Month: 3, Year: 2024, StartTime: "09:15:00", EndTime: "10:45:00"},
		{SubjectID: "A", Day: 2, Month: 3, Year: 2024, StartTime: "07:30:00", EndTime: "09:00:00"},
	}
	svc := NewScheduleService(&fakeScheduleFetcher{rows: rows}, nil, 0, nil)
	svc.now = func() time.Time { return time.Date(2024, time.March, 10, 8, 0, 0, 0, time.UTC) }

	result, err := svc.Weekly(context.Background(), "T01", 0, i18n.LocaleVI)

	require.NoError(t, err)
	assert.Equal(t, 1, result.SelectedWeek)
	require.Len(t, result.Entries, 2)
	assert.Equal(t, 2, result.SubjectCount)
	require.Len(t, result.Today, 1)
	assert.Equal(t, "A-10-3-2024", result.Today[0].ID)
}

func TestScheduleWeeklySelectedWeek(t *testing.T) {
	rows := []models.ScheduleRow{
		{SubjectID: "A", Day: 10, Month: 3, Year: 2024},
		{SubjectID: "B", Day: 1, Month: 3, Year: 2024},
	}
	svc := NewScheduleService(&fakeScheduleFetcher{rows: rows}, nil, 0, nil)

	result, err := svc.Weekly(context.Background(), "T01", 3, i18n.LocaleVI)

	require.NoError(t, err)
	assert.Equal(t, 3, result.SelectedWeek)
	require.Len(t, result.Entries, 1)
	assert.Equal(t, "A", result.Entries[0].SubjectID)
}
