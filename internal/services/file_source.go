package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"greanium/internal/session"
)

// FileDataSource reads a data directory laid out like the backend's:
// links.json, portfolio.json and a files/ directory.
type FileDataSource struct {
	dir     string
	baseURL string
}

// NewFileDataSource creates a data source over dir. Download URLs for
// listed files are built against baseURL when it is set and point into the
// directory otherwise.
func NewFileDataSource(dir, baseURL string) *FileDataSource {
	return &FileDataSource{dir: dir, baseURL: strings.TrimRight(baseURL, "/")}
}

// Dir returns the data directory.
func (s *FileDataSource) Dir() string {
	return s.dir
}

// Links reads links.json. A missing file yields no links.
func (s *FileDataSource) Links(ctx context.Context) ([]session.Link, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, "links.json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []session.Link{}, nil
		}
		return nil, fmt.Errorf("failed to read links: %w", err)
	}
	links, err := decodeLinks(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode links.json: %w", err)
	}
	return links, nil
}

// Files lists the regular files under files/, sorted by name.
func (s *FileDataSource) Files(ctx context.Context) ([]session.File, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	dir := filepath.Join(s.dir, "files")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []session.File{}, nil
		}
		return nil, fmt.Errorf("failed to list files: %w", err)
	}

	var files []session.File
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		location := filepath.Join(dir, name)
		if s.baseURL != "" {
			location = s.baseURL + "/files/download/" + url.PathEscape(name)
		}
		files = append(files, session.File{Name: name, URL: location})
	}
	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return files, nil
}

// Portfolio reads portfolio.json. A missing file is reported the way the
// backend reports it.
func (s *FileDataSource) Portfolio(ctx context.Context) (*session.Portfolio, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, "portfolio.json"))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &RemoteError{Endpoint: "portfolio.json", Detail: "Portfolio data not found"}
		}
		return nil, fmt.Errorf("failed to read portfolio: %w", err)
	}
	var portfolio session.Portfolio
	if err := json.Unmarshal(data, &portfolio); err != nil {
		return nil, fmt.Errorf("failed to decode portfolio.json: %w", err)
	}
	return &portfolio, nil
}
