package backend

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/ashhad25/moderateai-console/internal/model"
)

// Login exchanges admin credentials for a bearer token
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	req := model.AdminLogin{Email: email, Password: password}

	var resp model.LoginResponse
	if err := c.Post(ctx, "/api/admin/login", req, &resp); err != nil {
		return "", err
	}

	return resp.Token, nil
}

// AnalyticsOverview fetches the aggregate analytics
func (c *Client) AnalyticsOverview(ctx context.Context) (*model.AnalyticsOverview, error) {
	var overview model.AnalyticsOverview
	if err := c.Get(ctx, "/api/analytics/overview", nil, &overview); err != nil {
		return nil, err
	}

	return &overview, nil
}

// Submissions fetches submissions, optionally filtered by recommendation.
// An empty recommendation omits the query parameter entirely; any other
// value is upper-cased and sent as an exact match.
func (c *Client) Submissions(ctx context.Context, recommendation string) ([]model.Submission, error) {
	var query url.Values
	if recommendation != "" {
		query = url.Values{"recommendation": {strings.ToUpper(recommendation)}}
	}

	var submissions []model.Submission
	if err := c.Get(ctx, "/api/submissions", query, &submissions); err != nil {
		return nil, err
	}

	return submissions, nil
}

// Clients fetches the full client list
func (c *Client) Clients(ctx context.Context) ([]model.Client, error) {
	var clients []model.Client
	if err := c.Get(ctx, "/api/clients", nil, &clients); err != nil {
		return nil, err
	}

	return clients, nil
}

// CreateClient registers a new API client
func (c *Client) CreateClient(ctx context.Context, name, email string) (*model.Client, error) {
	req := model.ClientCreate{Name: name, Email: email}

	var client model.Client
	if err := c.Post(ctx, "/api/clients", req, &client); err != nil {
		return nil, err
	}

	return &client, nil
}

// ToggleClient flips a client's active flag. The response body is ignored;
// callers reload the list to pick up the authoritative state.
func (c *Client) ToggleClient(ctx context.Context, id int) error {
	return c.Patch(ctx, fmt.Sprintf("/api/clients/%d/toggle", id), nil, nil)
}

// AdminLogs fetches the backend moderation log
func (c *Client) AdminLogs(ctx context.Context) ([]model.ModerationLog, error) {
	var logs []model.ModerationLog
	if err := c.Get(ctx, "/api/admin/logs", nil, &logs); err != nil {
		return nil, err
	}

	return logs, nil
}

// Moderate runs a one-off moderation call on the API-key path
func (c *Client) Moderate(ctx context.Context, apiKey, text string) (*model.ModerationResult, error) {
	req := model.ModerationRequest{Text: text}

	var result model.ModerationResult
	if err := c.PostWithAPIKey(ctx, "/api/moderate", apiKey, req, &result); err != nil {
		return nil, err
	}

	return &result, nil
}
