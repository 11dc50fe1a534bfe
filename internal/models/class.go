package models

// ClassRow is the raw class shape returned by the backend.
type ClassRow struct {
	ClassID      string `json:"class_id"`
	ClassName    string `json:"class_name"`
	StudentCount int    `json:"student_count"`
}
