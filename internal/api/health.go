package api

import (
	"context"

	"github.com/tidwall/gjson"

	"github.com/diogo/cricketai/internal/models"
)

// Health asks the backend whether it is up and which AI providers it has.
func (c *Client) Health(ctx context.Context) (*models.Health, error) {
	body, _, err := c.get(ctx, models.PathHealth)
	if err != nil {
		return nil, err
	}

	health := &models.Health{
		Status:    body.Get("status").String(),
		Timestamp: body.Get("timestamp").String(),
		AIStatus:  map[string]bool{},
	}
	body.Get("ai_status").ForEach(func(key, value gjson.Result) bool {
		health.AIStatus[key.String()] = value.Bool()
		return true
	})
	return health, nil
}
