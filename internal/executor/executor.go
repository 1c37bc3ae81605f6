// Package executor builds request URLs from endpoint templates and performs
// the HTTP calls.
package executor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cberube/swaggerdeck/internal/types"
)

const requestTimeout = 30 * time.Second

// BuildURL substitutes {name} placeholders in the endpoint's path template
// from the stored path-parameter values, joins the result onto the base URL,
// and appends all non-empty query parameters in declaration order. Path
// parameters without a value keep their placeholder visible.
func BuildURL(baseURL string, endpoint *types.Endpoint, cfg *types.RequestConfig) string {
	path := endpoint.Path
	if cfg != nil {
		for _, p := range endpoint.PathParams() {
			value := cfg.PathParams[p.Name]
			if value == "" {
				continue
			}
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(value))
		}
	}

	full := strings.TrimRight(baseURL, "/") + path

	var query []string
	if cfg != nil {
		for _, p := range endpoint.QueryParams() {
			value := cfg.QueryParams[p.Name]
			if value == "" {
				continue
			}
			query = append(query, p.Name+"="+url.QueryEscape(value))
		}
	}
	if len(query) == 0 {
		return full
	}
	return full + "?" + strings.Join(query, "&")
}

// Execute performs one HTTP call and captures the outcome. Transport
// failures come back as an error response rather than an error value, with
// the wall-clock duration recorded either way.
func Execute(ctx context.Context, method, fullURL, body, token string) *types.ApiResponse {
	var bodyReader io.Reader
	if body != "" {
		bodyReader = strings.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return types.ErrorResponse(fmt.Sprintf("Failed to create request: %v", err))
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	client := &http.Client{Timeout: requestTimeout}

	start := time.Now()
	resp, err := client.Do(req)
	duration := time.Since(start).Milliseconds()

	if err != nil {
		r := types.ErrorResponse(fmt.Sprintf("Request failed: %v", err))
		r.Duration = duration
		return r
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		r := types.ErrorResponse(fmt.Sprintf("Failed to read response body: %v", err))
		r.Status = resp.StatusCode
		r.StatusText = http.StatusText(resp.StatusCode)
		r.Duration = duration
		return r
	}

	// Normalize header keys to lowercase for consistent lookup and display.
	headers := make(map[string]string, len(resp.Header))
	for key, values := range resp.Header {
		headers[strings.ToLower(key)] = strings.Join(values, ", ")
	}

	return &types.ApiResponse{
		Status:     resp.StatusCode,
		StatusText: http.StatusText(resp.StatusCode),
		Headers:    headers,
		Body:       string(bodyBytes),
		Duration:   duration,
	}
}

// FormatDuration formats a millisecond duration for display.
func FormatDuration(ms int64) string {
	if ms < 1000 {
		return fmt.Sprintf("%dms", ms)
	}
	return fmt.Sprintf("%.2fs", float64(ms)/1000.0)
}

// IsSuccessStatus returns true if status code is 2xx.
func IsSuccessStatus(status int) bool {
	return status >= 200 && status < 300
}
