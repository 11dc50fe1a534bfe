package models

// AttendanceStatus is the backend's check-in status code.
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "PRESENT"
	AttendanceStatusLate    AttendanceStatus = "LATE"
	AttendanceStatusAbsent  AttendanceStatus = "ABSENT"
	AttendanceStatusUnknown AttendanceStatus = "UNKNOWN"
)

// NormalizeAttendanceStatus maps any unrecognised backend value to UNKNOWN
// rather than erroring.
func NormalizeAttendanceStatus(raw string) AttendanceStatus {
	switch AttendanceStatus(raw) {
	case AttendanceStatusPresent, AttendanceStatusLate, AttendanceStatusAbsent:
		return AttendanceStatus(raw)
	default:
		return AttendanceStatusUnknown
	}
}

// AttendanceRow is the raw attendance record shape returned by the backend.
type AttendanceRow struct {
	Time        string `json:"time"`
	Day         int    `json:"day"`
	Month       int    `json:"month"`
	Year        int    `json:"year"`
	DayOfWeek   string `json:"day_of_week"`
	StudentID   string `json:"student_id"`
	StudentName string `json:"student_name"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Status      string `json:"status"`
	Remark      string `json:"remark"`
	ClassIDs    string `json:"class_ids"`
	ClassNames  string `json:"class_names"`
	AttendedAt  string `json:"attended_at,omitempty"`
}

// AttendanceRecord is the normalized view model. The synthetic ID embeds the
// batch index so duplicate natural keys never collide.
type AttendanceRecord struct {
	ID          string           `json:"id"`
	Time        string           `json:"time"`
	Day         int              `json:"day"`
	Month       int              `json:"month"`
	Year        int              `json:"year"`
	DayOfWeek   string           `json:"day_of_week"`
	StudentID   string           `json:"student_id"`
	StudentName string           `json:"student_name"`
	SubjectID   string           `json:"subject_id"`
	SubjectName string           `json:"subject_name"`
	Status      AttendanceStatus `json:"status"`
	Remark      string           `json:"remark"`
	ClassIDs    string           `json:"class_ids"`
	ClassNames  string           `json:"class_names"`
	AttendedAt  string           `json:"attended_at,omitempty"`
}

// AttendanceFilter is the conjunctive filter criteria. The "all" sentinel and
// empty strings mean "no constraint".
type AttendanceFilter struct {
	Search  string
	Class   string
	Subject string
	Date    string
}

// FilterSentinel means "no constraint" for class/subject criteria.
const FilterSentinel = "all"

// AttendanceStats summarises a filtered collection by remark. Rate uses
// integer rounding; the today-card rate keeps one decimal (see TodayStats).
type AttendanceStats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Late    int `json:"late"`
	Absent  int `json:"absent"`
	Rate    int `json:"rate"`
}

// TodayStats feeds the dashboard cards for a reference date.
type TodayStats struct {
	TodayCount   int    `json:"today_count"`
	PresentToday int    `json:"present_today"`
	AbsentToday  int    `json:"absent_today"`
	RatePct      string `json:"rate_pct"`
}
