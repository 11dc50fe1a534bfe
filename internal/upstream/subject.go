package upstream

import (
	"context"
	"fmt"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
)

// ListSubjectsByTeacher fetches the subjects a teacher gives. This endpoint
// nests its list under "subjects" instead of "data".
// GET /api/subject/:teacher_id
func (c *Client) ListSubjectsByTeacher(ctx context.Context, teacherID string) ([]models.SubjectRow, int, error) {
	if teacherID == "" {
		return nil, 0, appErrors.MissingParam("teacher id")
	}
	env, err := c.get(ctx, "subject", fmt.Sprintf("/api/subject/%s", teacherID))
	if err != nil {
		return nil, 0, err
	}
	raw := env.Subjects
	if len(raw) == 0 {
		raw = env.Data
	}
	var rows []models.SubjectRow
	if err := decodeList(raw, &rows); err != nil {
		return nil, 0, err
	}
	count := env.Count
	if count == 0 {
		count = len(rows)
	}
	return rows, count, nil
}
