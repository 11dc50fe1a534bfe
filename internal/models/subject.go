package models

// SubjectRow is the raw subject shape returned by the backend. Some
// endpoints name the field "name", others "subject_name".
type SubjectRow struct {
	SubjectID   string `json:"subject_id"`
	Name        string `json:"name"`
	SubjectName string `json:"subject_name"`
}

// SubjectOption is the normalized dropdown option. DisplayName falls back
// through name, subject_name and finally the id so the option never renders
// empty.
type SubjectOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
