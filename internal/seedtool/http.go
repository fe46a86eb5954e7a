package seedtool

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/devalpoteam/instascore-engine/pkg/logger"
)

// HTTPClient wraps http.Client with a request timeout.
type HTTPClient struct {
	client  *http.Client
	timeout time.Duration
}

// newHTTPClient creates a new HTTP client with timeout.
func newHTTPClient(timeout time.Duration) *HTTPClient {
	return &HTTPClient{
		client: &http.Client{
			Timeout: timeout,
		},
		timeout: timeout,
	}
}

// Get performs a GET request.
func (c *HTTPClient) Get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// Post performs a POST request with a JSON body.
func (c *HTTPClient) Post(ctx context.Context, url string, body interface{}) (*http.Response, error) {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// readResponseBody reads and closes the response body.
func readResponseBody(resp *http.Response) ([]byte, error) {
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	return data, nil
}

// ackResponse mirrors the engine's score submission acknowledgement.
type ackResponse struct {
	Status    string `json:"status"`
	Duplicate bool   `json:"duplicate"`
}

// submitRows submits score rows concurrently using a worker pool.
func submitRows(ctx context.Context, config *Config, rows []scoreSubmission, stats *Stats) error {
	logger.Get().Info(ctx, "submitting score rows",
		logger.Int("rows", len(rows)),
		logger.Int("workers", config.Workers))

	client := newHTTPClient(config.Timeout)
	url := config.BaseURL + "/scores"

	var (
		successful int64
		duplicate  int64
		failed     int64
		submitted  int64
	)

	rowChan := make(chan scoreSubmission, config.Workers*2)
	var wg sync.WaitGroup

	for i := 0; i < config.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for row := range rowChan {
				select {
				case <-ctx.Done():
					return
				default:
					result := submitSingleRow(ctx, client, url, row)

					atomic.AddInt64(&submitted, 1)
					switch result {
					case "success":
						atomic.AddInt64(&successful, 1)
					case "duplicate":
						atomic.AddInt64(&duplicate, 1)
					case "failed":
						atomic.AddInt64(&failed, 1)
					}
				}
			}
		}()
	}

	go func() {
		defer close(rowChan)
		for _, row := range rows {
			select {
			case <-ctx.Done():
				return
			case rowChan <- row:
			}
		}
	}()

	wg.Wait()

	stats.RowsSubmitted = int(atomic.LoadInt64(&submitted))
	stats.RowsSuccessful = int(atomic.LoadInt64(&successful))
	stats.RowsDuplicate = int(atomic.LoadInt64(&duplicate))
	stats.RowsFailed = int(atomic.LoadInt64(&failed))

	logger.Get().Info(ctx, "score submission completed",
		logger.Int("successful", stats.RowsSuccessful),
		logger.Int("duplicate", stats.RowsDuplicate),
		logger.Int("failed", stats.RowsFailed))

	return nil
}

// submitSingleRow submits a single score row and classifies the outcome.
func submitSingleRow(ctx context.Context, client *HTTPClient, url string, row scoreSubmission) string {
	resp, err := client.Post(ctx, url, row)
	if err != nil {
		return "failed"
	}

	body, err := readResponseBody(resp)
	if err != nil {
		return "failed"
	}

	switch resp.StatusCode {
	case StatusAccepted:
		return "success"
	case StatusOK:
		var ack ackResponse
		if err := json.Unmarshal(body, &ack); err == nil && ack.Duplicate {
			return "duplicate"
		}
		return "duplicate"
	default:
		return "failed"
	}
}
