package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
)

type fakeAttendanceFetcher struct {
	rows     []models.AttendanceRow
	classRow map[string][]models.AttendanceRow
	err      error
}

func (f *fakeAttendanceFetcher) ListAttendance(context.Context) ([]models.AttendanceRow, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.rows, len(f.rows), nil
}

func (f *fakeAttendanceFetcher) ListAttendanceByClass(_ context.Context, classID string) ([]models.AttendanceRow, int, error) {
	if f.err != nil {
		return nil, 0, f.err
	}
	rows := f.classRow[classID]
	return rows, len(rows), nil
}

func sampleAttendanceRows() []models.AttendanceRow {
	return []models.AttendanceRow{
		{
			Time: "07:30", Day: 10, Month: 3, Year: 2024, DayOfWeek: "2",
			StudentID: "ST01", StudentName: "Nguyen Van An",
			SubjectID: "MATH", SubjectName: "Toán",
			Status: "PRESENT", Remark: "On Time",
			ClassNames: "10A1", AttendedAt: "2024-03-10T07:30:00Z",
		},
		{
			Time: "07:45", Day: 10, Month: 3, Year: 2024, DayOfWeek: "2",
			StudentID: "ST02", StudentName: "Tran Thi Binh",
			SubjectID: "MATH", SubjectName: "Toán",
			Status: "ABSENT", Remark: "Absent",
			ClassNames: "10A1,10A2", AttendedAt: "2024-03-10T07:45:00Z",
		},
		{
			Time: "09:00", Day: 11, Month: 3, Year: 2024, DayOfWeek: "3",
			StudentID: "ST03", StudentName: "Le Van Cuong",
			SubjectID: "PHY", SubjectName: "Vật lý",
			Status: "LATE", Remark: "Late",
			ClassNames: "11B1",
		},
	}
}

func TestNormalizeAttendanceUniqueIDs(t *testing.T) {
	rows := []models.AttendanceRow{
		{Time: "07:30", Day: 1, Month: 3, Year: 2024, StudentID: "ST01", Status: "PRESENT"},
		{Time: "07:30", Day: 1, Month: 3, Year: 2024, StudentID: "ST01", Status: "PRESENT"},
	}

	records := NormalizeAttendance(rows)

	require.Len(t, records, 2)
	assert.Equal(t, "2024-3-1-07:30-ST01-0", records[0].ID)
	assert.Equal(t, "2024-3-1-07:30-ST01-1", records[1].ID)
	assert.NotEqual(t, records[0].ID, records[1].ID)
}

func TestNormalizeAttendanceIdempotent(t *testing.T) {
	rows := append(sampleAttendanceRows(), models.AttendanceRow{
		Time: "10:00", Day: 12, Month: 3, Year: 2024,
		StudentID: "ST04", Status: "something else",
	})
	first := NormalizeAttendance(rows)

	again := make([]models.AttendanceRow, 0, len(first))
	for _, r := range first {
		again = append(again, models.AttendanceRow{
			Time: r.Time, Day: r.Day, Month: r.Month, Year: r.Year, DayOfWeek: r.DayOfWeek,
			StudentID: r.StudentID, StudentName: r.StudentName,
			SubjectID: r.SubjectID, SubjectName: r.SubjectName,
			Status: string(r.Status), Remark: r.Remark,
			ClassIDs: r.ClassIDs, ClassNames: r.ClassNames, AttendedAt: r.AttendedAt,
		})
	}
	second := NormalizeAttendance(again)

	require.Len(t, second, len(first))
	for i := range first {
		got := second[i]
		got.ID = first[i].ID
		assert.Equal(t, first[i], got)
	}
}

func TestNormalizeAttendanceStatusFolding(t *testing.T) {
	rows := []models.AttendanceRow{
		{Status: "PRESENT"},
		{Status: "LATE"},
		{Status: "ABSENT"},
		{Status: "something else"},
		{Status: ""},
	}

	records := NormalizeAttendance(rows)

	assert.Equal(t, models.AttendanceStatusPresent, records[0].Status)
	assert.Equal(t, models.AttendanceStatusLate, records[1].Status)
	assert.Equal(t, models.AttendanceStatusAbsent, records[2].Status)
	assert.Equal(t, models.AttendanceStatusUnknown, records[3].Status)
	assert.Equal(t, models.AttendanceStatusUnknown, records[4].Status)
}

func TestFilterAttendanceIdentity(t *testing.T) {
	records := NormalizeAttendance(sampleAttendanceRows())

	all := FilterAttendance(records, models.AttendanceFilter{})
	sentinel := FilterAttendance(records, models.AttendanceFilter{Class: "all", Subject: "all"})

	assert.Equal(t, records, all)
	assert.Equal(t, records, sentinel)
}

func TestFilterAttendanceSearch(t *testing.T) {
	records := NormalizeAttendance(sampleAttendanceRows())

	hit := FilterAttendance(records, models.AttendanceFilter{Search: "an"})
	miss := FilterAttendance(records, models.AttendanceFilter{Search: "zz"})

	// "an" matches Nguyen Van An, Tran Thi Binh and Le Van Cuong by substring.
	require.Len(t, hit, 3)
	assert.Empty(t, miss)

	byID := FilterAttendance(records, models.AttendanceFilter{Search: "st02"})
	require.Len(t, byID, 1)
	assert.Equal(t, "ST02", byID[0].StudentID)
}

func TestFilterAttendanceConjunction(t *testing.T) {
	records := NormalizeAttendance(sampleAttendanceRows())

	filtered := FilterAttendance(records, models.AttendanceFilter{
		Search:  "an",
		Class:   "10A1",
		Subject: "Toán",
		Date:    "2024-03-10",
	})

	require.Len(t, filtered, 2)
	assert.Equal(t, "ST01", filtered[0].StudentID)
	assert.Equal(t, "ST02", filtered[1].StudentID)
}

func TestFilterAttendanceClassExactToken(t *testing.T) {
	records := NormalizeAttendance([]models.AttendanceRow{
		{StudentID: "ST01", ClassNames: "10A1,11B2"},
		{StudentID: "ST02", ClassNames: "10A1, 10A2"},
	})

	// A prefix of a class token is not a match.
	prefix := FilterAttendance(records, models.AttendanceFilter{Class: "10A"})
	assert.Empty(t, prefix)

	trimmed := FilterAttendance(records, models.AttendanceFilter{Class: "10A2"})
	require.Len(t, trimmed, 1)
	assert.Equal(t, "ST02", trimmed[0].StudentID)
}

func TestFilterAttendanceSubjectExactName(t *testing.T) {
	records := NormalizeAttendance([]models.AttendanceRow{
		{StudentID: "ST01", SubjectName: "Toán"},
		{StudentID: "ST02", SubjectName: "Toán nâng cao"},
	})

	filtered := FilterAttendance(records, models.AttendanceFilter{Subject: "Toán"})

	require.Len(t, filtered, 1)
	assert.Equal(t, "ST01", filtered[0].StudentID)
}

func TestFilterAttendanceDate(t *testing.T) {
	records := NormalizeAttendance(sampleAttendanceRows())

	filtered := FilterAttendance(records, models.AttendanceFilter{Date: "2024-03-11"})

	require.Len(t, filtered, 1)
	assert.Equal(t, "ST03", filtered[0].StudentID)
}

func TestFilterAttendancePreservesOrder(t *testing.T) {
	records := NormalizeAttendance(sampleAttendanceRows())

	filtered := FilterAttendance(records, models.AttendanceFilter{Class: "10A1"})

	require.Len(t, filtered, 2)
	assert.True(t, filtered[0].StudentID < filtered[1].StudentID)
}

func TestSummarizeAttendance(t *testing.T) {
	records := NormalizeAttendance(sampleAttendanceRows())

	stats := SummarizeAttendance(records)

	assert.Equal(t, 3, stats.Total)
	assert.Equal(t, 1, stats.Present)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 1, stats.Absent)
	// (1+1)/3*100 = 66.67 rounds to 67.
	assert.Equal(t, 67, stats.Rate)
}

func TestSummarizeAttendanceEmpty(t *testing.T) {
	stats := SummarizeAttendance(nil)

	assert.Equal(t, 0, stats.Total)
	assert.Equal(t, 0, stats.Rate)
}

func TestSummarizeToday(t *testing.T) {
	records := NormalizeAttendance(sampleAttendanceRows())
	ref := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)

	stats := SummarizeToday(records, ref)

	assert.Equal(t, 2, stats.TodayCount)
	assert.Equal(t, 1, stats.PresentToday)
	assert.Equal(t, 1, stats.AbsentToday)
	assert.Equal(t, "50.0%", stats.RatePct)
}

func TestSummarizeTodayEmpty(t *testing.T) {
	ref := time.Date(2030, time.January, 1, 0, 0, 0, 0, time.UTC)

	stats := SummarizeToday(NormalizeAttendance(sampleAttendanceRows()), ref)

	assert.Equal(t, 0, stats.TodayCount)
	assert.Equal(t, "0%", stats.RatePct)
}

func TestAttendanceListPagination(t *testing.T) {
	rows := make([]models.AttendanceRow, 0, 20)
	for i := 0; i < 20; i++ {
		rows = append(rows, models.AttendanceRow{
			Time: "07:30", Day: 1, Month: 3, Year: 2024,
			StudentID: "ST01", StudentName: "An", Status: "PRESENT", Remark: "On Time",
		})
	}
	svc := NewAttendanceService(&fakeAttendanceFetcher{rows: rows}, nil, 0, nil)

	result, pagination, err := svc.List(context.Background(), AttendanceListRequest{})

	require.NoError(t, err)
	assert.Len(t, result.Records, 15)
	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 15, pagination.PageSize)
	assert.Equal(t, 20, pagination.TotalCount)
	assert.Equal(t, 2, pagination.TotalPages)

	result, pagination, err = svc.List(context.Background(), AttendanceListRequest{Page: 2})
	require.NoError(t, err)
	assert.Len(t, result.Records, 5)
	assert.Equal(t, 2, pagination.Page)
}

func TestAttendanceListValidation(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceFetcher{}, nil, 0, nil)

	_, _, err := svc.List(context.Background(), AttendanceListRequest{PageSize: 500})

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
}

func TestAttendanceListStatsComputedOverFilteredSet(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceFetcher{rows: sampleAttendanceRows()}, nil, 0, nil)

	result, _, err := svc.List(context.Background(), AttendanceListRequest{
		Filter: models.AttendanceFilter{Date: "2024-03-10"},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, result.Stats.Total)
	assert.Equal(t, 50, result.Stats.Rate)
	// Dropdown options still come from the full batch.
	assert.ElementsMatch(t, []string{"10A1", "10A2", "11B1"}, result.Classes)
	assert.ElementsMatch(t, []string{"Toán", "Vật lý"}, result.Subjects)
}

func TestAttendanceNoRecordsTreatedAsEmpty(t *testing.T) {
	fetcher := &fakeAttendanceFetcher{err: appErrors.Upstream(nil, 404, "No records found", nil)}
	svc := NewAttendanceService(fetcher, nil, 0, nil)

	result, pagination, err := svc.List(context.Background(), AttendanceListRequest{})

	require.NoError(t, err)
	assert.Empty(t, result.Records)
	assert.Equal(t, 0, pagination.TotalCount)
	assert.Equal(t, 1, pagination.TotalPages)
}

func TestAttendanceUpstreamErrorPropagates(t *testing.T) {
	fetcher := &fakeAttendanceFetcher{err: appErrors.Upstream(nil, 503, "backend down", nil)}
	svc := NewAttendanceService(fetcher, nil, 0, nil)

	_, _, err := svc.List(context.Background(), AttendanceListRequest{})

	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, 503, appErr.Status)
}

func TestAttendanceRecent(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceFetcher{rows: sampleAttendanceRows()}, nil, 0, nil)

	recent, err := svc.Recent(context.Background(), 10)

	require.NoError(t, err)
	// ST03 has no attended_at and is excluded; newest first.
	require.Len(t, recent, 2)
	assert.Equal(t, "ST02", recent[0].StudentID)
	assert.Equal(t, "ST01", recent[1].StudentID)
}
