package upstream

import (
	"context"

	"github.com/qlhs-edu/dashboard-bff/internal/models"
)

// ListClasses fetches all classes with their student counts.
// GET /api/class
func (c *Client) ListClasses(ctx context.Context) ([]models.ClassRow, error) {
	env, err := c.get(ctx, "class", "/api/class")
	if err != nil {
		return nil, err
	}
	var rows []models.ClassRow
	if err := decodeList(env.Data, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
