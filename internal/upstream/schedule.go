package upstream

import (
	"context"
	"fmt"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
)

// ListSchedulesByTeacher fetches a teacher's schedule slots.
// GET /api/schedule/:teacher_id
func (c *Client) ListSchedulesByTeacher(ctx context.Context, teacherID string) ([]models.ScheduleRow, error) {
	if teacherID == "" {
		return nil, appErrors.MissingParam("teacher id")
	}
	env, err := c.get(ctx, "schedule", fmt.Sprintf("/api/schedule/%s", teacherID))
	if err != nil {
		return nil, err
	}
	var rows []models.ScheduleRow
	if err := decodeList(env.Data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
