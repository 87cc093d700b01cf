package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client sends Alpha Progression exports to a remote server instead of
// writing through a local store.
type Client struct {
	serverURL  string
	token      string
	httpClient *http.Client
}

// NewClient creates an HTTP client for the server's import endpoint.
func NewClient(serverURL, token string) *Client {
	return &Client{
		serverURL: serverURL,
		token:     token,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// SendCSV POSTs a raw export to the server's import endpoint and
// returns the server's import stats. Retries up to 3 times with
// exponential backoff on failure.
func (c *Client) SendCSV(ctx context.Context, csv []byte, dryRun bool) (*Stats, error) {
	url := c.serverURL + "/api/v1/import/alpha"
	if dryRun {
		url += "?dry_run=true"
	}

	var lastErr error
	for attempt := range 3 {
		if attempt > 0 {
			time.Sleep(time.Duration(1<<uint(attempt-1)) * time.Second)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(csv))
		if err != nil {
			return nil, fmt.Errorf("building import request: %w", err)
		}
		req.Header.Set("Content-Type", "text/csv")
		req.Header.Set("Authorization", "Bearer "+c.token)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode == http.StatusOK {
			var stats Stats
			if err := json.Unmarshal(body, &stats); err != nil {
				return nil, fmt.Errorf("decoding import stats: %w", err)
			}
			return &stats, nil
		}
		lastErr = fmt.Errorf("import failed (status %d): %s", resp.StatusCode, body)
	}

	return nil, fmt.Errorf("after 3 attempts: %w", lastErr)
}
