package api

import (
	"context"
	"strconv"

	"github.com/agoramujeres/agora-client/internal/client/models"
)

// SendChatMessage posts a message to the companion. When the request
// carries no conversation id the server opens a new thread and returns its
// id in the response.
func (c *Client) SendChatMessage(ctx context.Context, req models.ChatRequest) (*models.ChatResponse, error) {
	var out models.ChatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&out).
		Post("/chat")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetChatHistory returns the latest conversation's messages in
// creation-timestamp order.
func (c *Client) GetChatHistory(ctx context.Context, deviceID string, limit int) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		Get("/chat/{deviceID}/history")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// ListConversations returns the device's conversations, most recently
// updated first.
func (c *Client) ListConversations(ctx context.Context, deviceID string, limit int) ([]models.Conversation, error) {
	var out []models.Conversation
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		Get("/chat/{deviceID}/conversations")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// GetConversationMessages returns one conversation's transcript in
// creation-timestamp order.
func (c *Client) GetConversationMessages(ctx context.Context, deviceID, conversationID string, limit int) ([]models.ChatMessage, error) {
	var out []models.ChatMessage
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		SetPathParam("conversationID", conversationID).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&out).
		Get("/chat/{deviceID}/conversation/{conversationID}")
	if err := c.check(resp, err); err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteConversation removes one conversation and its messages.
func (c *Client) DeleteConversation(ctx context.Context, deviceID, conversationID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		SetPathParam("conversationID", conversationID).
		Delete("/chat/{deviceID}/conversation/{conversationID}")
	return c.check(resp, err)
}

// ClearChatHistory deletes the device's current conversation server-side.
func (c *Client) ClearChatHistory(ctx context.Context, deviceID string) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("deviceID", deviceID).
		Delete("/chat/{deviceID}/history")
	return c.check(resp, err)
}
