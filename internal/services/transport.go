package services

import (
	"net/http"
	"time"

	"greanium/internal/logger"
)

// loggingTransport records method, URL, status and latency of every
// outbound request at debug level.
type loggingTransport struct {
	base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	elapsed := time.Since(start)

	if err != nil {
		logger.Debug("HTTP request failed", "method", req.Method, "url", req.URL.String(), "duration", elapsed, "error", err)
		return resp, err
	}
	logger.Debug("HTTP request", "method", req.Method, "url", req.URL.String(), "status", resp.StatusCode, "duration", elapsed)
	return resp, nil
}

// NewHTTPClient returns the client shared by every HTTP collaborator.
// A zero timeout means requests are never cut off by the client.
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingTransport{base: http.DefaultTransport},
	}
}
