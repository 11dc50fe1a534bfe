package models

import "time"

// ScheduleRow is the raw schedule slot shape returned by the backend.
// DayOfWeek arrives as a string code "2".."7" (Monday..Saturday).
type ScheduleRow struct {
	SubjectID    string `json:"subject_id"`
	SubjectName  string `json:"subject_name"`
	TeacherName  string `json:"teacher_name"`
	TeacherEmail string `json:"teacher_email"`
	Room         string `json:"room"`
	DayOfWeek    string `json:"day_of_week"`
	Day          int    `json:"day"`
	Month        int    `json:"month"`
	Year         int    `json:"year"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	Status       string `json:"status"`
}

// ScheduleEntry is the normalized weekly-schedule view model.
//
// Week uses the month-local formula ceil((day + weekday of the 1st) / 7);
// entries from different months can therefore share a week number. That
// matches the labels users already see and is kept deliberately.
type ScheduleEntry struct {
	ID           string    `json:"id"`
	SubjectID    string    `json:"subject_id"`
	SubjectName  string    `json:"subject_name"`
	TeacherName  string    `json:"teacher_name"`
	TeacherEmail string    `json:"teacher_email"`
	Room         string    `json:"room"`
	DayLabel     string    `json:"day_label"`
	DayOfWeekRaw string    `json:"day_of_week"`
	TimeRange    string    `json:"time_range"`
	StartTime    string    `json:"start_time"`
	EndTime      string    `json:"end_time"`
	DateLabel    string    `json:"date_label"`
	FullDate     time.Time `json:"full_date"`
	Status       string    `json:"status"`
	Week         int       `json:"week"`
}

// WeekInfo describes one selectable week bucket.
type WeekInfo struct {
	Week        int       `json:"week"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	DisplayText string    `json:"display_text"`
}
