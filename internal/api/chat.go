package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	http "github.com/bogdanfinn/fhttp"

	"github.com/diogo/cricketai/internal/models"
)

// ChatReply is the /chat answer
type ChatReply struct {
	Response  models.Opt[string]
	Timestamp models.Opt[string]
	// Error carries the backend's {"error": ...} text, if any
	Error  models.Opt[string]
	Status int
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat sends one user message and returns the backend's reply.
func (c *Client) Chat(ctx context.Context, message string) (*ChatReply, error) {
	payload, err := json.Marshal(chatRequest{Message: message})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal chat request: %w", err)
	}

	body, status, err := c.do(ctx, http.MethodPost, models.PathChat, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}

	return &ChatReply{
		Response:  optTruthyString(body.Get(PathResponse)),
		Timestamp: optString(body.Get(PathTimestamp)),
		Error:     optTruthyString(body.Get(PathError)),
		Status:    status,
	}, nil
}
