package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/liftlog/internal/models"
	"github.com/claude/liftlog/internal/workout"
)

// HTTPClient implements DataSource by calling the LiftLog REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

// NewHTTPClient creates an HTTPClient targeting the given base URL,
// authenticating every request with the given bearer token.
func NewHTTPClient(baseURL, token string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Rebuild coded errors from the envelope so callers can branch
		// on workout.CodeOf the same way they do against a local store.
		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(body, &envelope) == nil && envelope.Error.Code != "" {
			return nil, workout.Errf(workout.Code(envelope.Error.Code), "%s", envelope.Error.Message)
		}
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}

	return body, nil
}

// ListExercises fetches the exercise summaries, then each exercise's
// records. The list endpoint returns names only, so filling the frontier
// costs one extra request per exercise.
func (c *HTTPClient) ListExercises(ctx context.Context) ([]models.Exercise, error) {
	body, err := c.get(ctx, "/api/v1/exercises", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Exercises []struct {
			Name        string `json:"name"`
			DisplayName string `json:"display_name"`
		} `json:"exercises"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode exercises: %w", err)
	}

	exercises := make([]models.Exercise, 0, len(resp.Exercises))
	for _, summary := range resp.Exercises {
		ex, err := c.GetRecords(ctx, summary.Name)
		if err != nil {
			return nil, err
		}
		ex.DisplayName = summary.DisplayName
		exercises = append(exercises, *ex)
	}
	return exercises, nil
}

func (c *HTTPClient) GetRecords(ctx context.Context, name string) (*models.Exercise, error) {
	body, err := c.get(ctx, "/api/v1/exercises/"+url.PathEscape(name)+"/records", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Exercise string          `json:"exercise"`
		Records  []models.Record `json:"records"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode records: %w", err)
	}
	return &models.Exercise{Name: resp.Exercise, Records: resp.Records}, nil
}

func (c *HTTPClient) ListTemplates(ctx context.Context) ([]string, error) {
	body, err := c.get(ctx, "/api/v1/templates", nil)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Templates []string `json:"templates"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("httpclient: decode templates: %w", err)
	}
	return resp.Templates, nil
}

func (c *HTTPClient) GetTemplate(ctx context.Context, name string) (*models.WorkoutTemplate, error) {
	body, err := c.get(ctx, "/api/v1/templates/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}

	var tpl models.WorkoutTemplate
	if err := json.Unmarshal(body, &tpl); err != nil {
		return nil, fmt.Errorf("httpclient: decode template: %w", err)
	}
	return &tpl, nil
}

func (c *HTTPClient) ListTemplateSessions(ctx context.Context, templateName string, limit, offset int) (*models.SessionPage, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))
	params.Set("offset", strconv.Itoa(offset))

	body, err := c.get(ctx, "/api/v1/templates/"+url.PathEscape(templateName)+"/sessions", params)
	if err != nil {
		return nil, err
	}

	var page models.SessionPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, fmt.Errorf("httpclient: decode session page: %w", err)
	}
	return &page, nil
}

func (c *HTTPClient) LatestForTemplate(ctx context.Context, templateName string) (*models.WorkoutSession, error) {
	body, err := c.get(ctx, "/api/v1/templates/"+url.PathEscape(templateName)+"/sessions/latest", nil)
	if err != nil {
		return nil, err
	}

	var sess models.WorkoutSession
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, fmt.Errorf("httpclient: decode session: %w", err)
	}
	return &sess, nil
}

func (c *HTTPClient) GetSession(ctx context.Context, id string) (*models.WorkoutSession, error) {
	body, err := c.get(ctx, "/api/v1/sessions/"+url.PathEscape(id), nil)
	if err != nil {
		return nil, err
	}

	var sess models.WorkoutSession
	if err := json.Unmarshal(body, &sess); err != nil {
		return nil, fmt.Errorf("httpclient: decode session: %w", err)
	}
	return &sess, nil
}
