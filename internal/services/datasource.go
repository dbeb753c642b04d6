// Package services holds the collaborators the interpreter talks to without
// knowing their implementation: data sources, chat providers, navigation
// and markdown rendering.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"greanium/internal/session"
)

// DataSource yields the collections a session snapshot is built from.
type DataSource interface {
	Links(ctx context.Context) ([]session.Link, error)
	Files(ctx context.Context) ([]session.File, error)
	Portfolio(ctx context.Context) (*session.Portfolio, error)
}

// HTTPDataSource reads the backend's /links/, /files/ and /portfolio/
// endpoints.
type HTTPDataSource struct {
	baseURL string
	client  *http.Client
}

// NewHTTPDataSource creates a data source for the backend at baseURL.
func NewHTTPDataSource(baseURL string, client *http.Client) *HTTPDataSource {
	if client == nil {
		client = NewHTTPClient(0)
	}
	return &HTTPDataSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// Links fetches GET /links/. The body is either an array of links or an
// object with an items array.
func (s *HTTPDataSource) Links(ctx context.Context) ([]session.Link, error) {
	body, err := s.get(ctx, "/links/")
	if err != nil {
		return nil, err
	}
	links, err := decodeLinks(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode links: %w", err)
	}
	return links, nil
}

// Files fetches GET /files/ and maps each name to its download URL.
func (s *HTTPDataSource) Files(ctx context.Context) ([]session.File, error) {
	body, err := s.get(ctx, "/files/")
	if err != nil {
		return nil, err
	}
	var payload struct {
		Files []string `json:"files"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode files: %w", err)
	}
	return s.fileRefs(payload.Files), nil
}

// Portfolio fetches GET /portfolio/. An {error} payload is returned as a
// *RemoteError.
func (s *HTTPDataSource) Portfolio(ctx context.Context) (*session.Portfolio, error) {
	body, err := s.get(ctx, "/portfolio/")
	if err != nil {
		return nil, err
	}
	return decodePortfolio("/portfolio/", body)
}

// DownloadURL returns the backend download location for a file name. The
// name is escaped as a single path segment.
func (s *HTTPDataSource) DownloadURL(name string) string {
	return s.baseURL + "/files/download/" + url.PathEscape(name)
}

func (s *HTTPDataSource) fileRefs(names []string) []session.File {
	files := make([]session.File, 0, len(names))
	for _, name := range names {
		files = append(files, session.File{Name: name, URL: s.DownloadURL(name)})
	}
	return files
}

func (s *HTTPDataSource) get(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for %s: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if detail := errorDetail(body); detail != "" {
			return nil, &RemoteError{Endpoint: endpoint, Detail: detail}
		}
		return nil, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Status: resp.Status}
	}
	return body, nil
}

func decodeLinks(body []byte) ([]session.Link, error) {
	var links []session.Link
	if err := json.Unmarshal(body, &links); err == nil {
		return links, nil
	}

	var wrapped struct {
		Items []session.Link `json:"items"`
	}
	if err := json.Unmarshal(body, &wrapped); err != nil {
		return nil, err
	}
	return wrapped.Items, nil
}

func decodePortfolio(endpoint string, body []byte) (*session.Portfolio, error) {
	if detail := errorDetail(body); detail != "" {
		return nil, &RemoteError{Endpoint: endpoint, Detail: detail}
	}
	var portfolio session.Portfolio
	if err := json.Unmarshal(body, &portfolio); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio: %w", err)
	}
	return &portfolio, nil
}

// errorDetail extracts the error field of an {error: "..."} payload.
func errorDetail(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Error
}

// IsNotFound reports whether err is a 404 from a backend endpoint.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}
