package models

// StudentStatus reflects the backend's integer activity flag.
type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "active"
	StudentStatusInactive StudentStatus = "inactive"
)

// MissingFieldPlaceholder renders absent denormalized fields.
const MissingFieldPlaceholder = "—"

// StudentRow is the raw student shape returned by the backend.
type StudentRow struct {
	StudentID    string `json:"student_id"`
	FullName     string `json:"full_name"`
	ClassNames   string `json:"class_names"`
	Email        string `json:"email"`
	PhoneNumber  string `json:"phone_number"`
	SubjectNames string `json:"subject_names"`
	Status       int    `json:"status"`
}

// StudentRecord is the normalized roster view model. AttendanceRate is not
// derived from attendance records; the backend never supplied it, so it
// stays 0.
type StudentRecord struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Grade          string        `json:"grade"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone"`
	Subjects       string        `json:"subjects"`
	AttendanceRate float64       `json:"attendance_rate"`
	Status         StudentStatus `json:"status"`
}

// StudentFilter is the conjunctive filter criteria for the roster view.
type StudentFilter struct {
	Search  string
	Class   string
	Subject string
}
