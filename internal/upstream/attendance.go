package upstream

import (
	"context"
	"fmt"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
	appErrors "github.com/qlhs-edu/dashboard-bff/pkg/errors"
)

// ListAttendance fetches every attendance record.
// GET /api/attendance
func (c *Client) ListAttendance(ctx context.Context) ([]models.AttendanceRow, int, error) {
	env, err := c.get(ctx, "attendance", "/api/attendance")
	if err != nil {
		return nil, 0, err
	}
	var rows []models.AttendanceRow
	if err := decodeList(env.Data, &rows); err != nil {
		return nil, 0, err
	}
	return rows, env.Count, nil
}

// ListAttendanceByClass fetches attendance records for one class.
// GET /api/attendance/:class_id
func (c *Client) ListAttendanceByClass(ctx context.Context, classID string) ([]models.AttendanceRow, int, error) {
	if classID == "" {
		return nil, 0, appErrors.MissingParam("class id")
	}
	env, err := c.get(ctx, "attendance", fmt.Sprintf("/api/attendance/%s", classID))
	if err != nil {
		return nil, 0, err
	}
	var rows []models.AttendanceRow
	if err := decodeList(env.Data, &rows); err != nil {
		return nil, 0, err
	}
	return rows, env.Count, nil
}
