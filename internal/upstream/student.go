package upstream

import (
	"context"
	"fmt"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
)

// ListStudents fetches the full roster.
// GET /api/student
func (c *Client) ListStudents(ctx context.Context) ([]models.StudentRow, int, error) {
	env, err := c.get(ctx, "student", "/api/student")
	if err != nil {
		return nil, 0, err
	}
	var rows []models.StudentRow
	if err := decodeList(env.Data, &rows); err != nil {
		return nil, 0, err
	}
	return rows, env.Count, nil
}

// ListStudentsByClass fetches the roster for one class.
// GET /api/student/:class_id
func (c *Client) ListStudentsByClass(ctx context.Context, classID string) ([]models.StudentRow, int, error) {
	if classID == "" {
		return nil, 0, appErrors.MissingParam("class id")
	}
	env, err := c.get(ctx, "student", fmt.Sprintf("/api/student/%s", classID))
	if err != nil {
		return nil, 0, err
	}
	var rows []models.StudentRow
	if err := decodeList(env.Data, &rows); err != nil {
		return nil, 0, err
	}
	return rows, env.Count, nil
}

// ListStudentsBySubject fetches students enrolled in one subject.
// GET /api/student/:subject_id/students
func (c *Client) ListStudentsBySubject(ctx context.Context, subjectID string) ([]models.StudentRow, int, error) {
	if subjectID == "" {
		return nil, 0, appErrors.MissingParam("subject id")
	}
	env, err := c.get(ctx, "student", fmt.Sprintf("/api/student/%s/students", subjectID))
	if err != nil {
		return nil, 0, err
	}
	var rows []models.StudentRow
	if err := decodeList(env.Data, &rows); err != nil {
		return nil, 0, err
	}
	return rows, env.Count, nil
}
