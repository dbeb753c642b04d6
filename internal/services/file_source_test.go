package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greanium/internal/session"
)

func writeDataFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
}

func TestFileDataSource_EmptyDirectory(t *testing.T) {
	source := NewFileDataSource(t.TempDir(), "")
	ctx := context.Background()

	links, err := source.Links(ctx)
	require.NoError(t, err)
	assert.Empty(t, links)

	files, err := source.Files(ctx)
	require.NoError(t, err)
	assert.Empty(t, files)

	_, err = source.Portfolio(ctx)
	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "Portfolio data not found", remote.Detail)
}

func TestFileDataSource_ReadsDirectory(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "links.json", `{"items":[{"name":"Personal Site","url":"https://cg.example"}]}`)
	writeDataFile(t, dir, "portfolio.json", `{"projects":[{"name":"Greanium"}],"bio":{"name":"Cormac"}}`)
	writeDataFile(t, dir, "files/resume.pdf", "%PDF")
	writeDataFile(t, dir, "files/cover.txt", "hello")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "files", "nested"), 0755))

	source := NewFileDataSource(dir, "https://greanium.example/")
	ctx := context.Background()

	links, err := source.Links(ctx)
	require.NoError(t, err)
	assert.Equal(t, []session.Link{{Name: "Personal Site", URL: "https://cg.example"}}, links)

	files, err := source.Files(ctx)
	require.NoError(t, err)
	assert.Equal(t, []session.File{
		{Name: "cover.txt", URL: "https://greanium.example/files/download/cover.txt"},
		{Name: "resume.pdf", URL: "https://greanium.example/files/download/resume.pdf"},
	}, files)

	portfolio, err := source.Portfolio(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Greanium", portfolio.Projects[0].Name)
	assert.Equal(t, "Cormac", portfolio.Bio.Name)
	assert.Equal(t, dir, source.Dir())
}

func TestFileDataSource_LocalFileURLs(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "files/resume.pdf", "%PDF")

	files, err := NewFileDataSource(dir, "").Files(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "files", "resume.pdf"), files[0].URL)
}

func TestFileDataSource_Malformed(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "links.json", `{"items":`)
	writeDataFile(t, dir, "portfolio.json", `not json`)
	source := NewFileDataSource(dir, "")

	_, err := source.Links(context.Background())
	assert.ErrorContains(t, err, "links.json")

	_, err = source.Portfolio(context.Background())
	assert.ErrorContains(t, err, "portfolio.json")
}

func TestFileDataSource_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewFileDataSource(t.TempDir(), "").Links(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFileDataSource_FilesEscapeDownloadNames(t *testing.T) {
	dir := t.TempDir()
	writeDataFile(t, dir, "files/my cv #2.pdf", "%PDF")

	files, err := NewFileDataSource(dir, "https://greanium.example").Files(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []session.File{
		{Name: "my cv #2.pdf", URL: "https://greanium.example/files/download/my%20cv%20%232.pdf"},
	}, files)
}
