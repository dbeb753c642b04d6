package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"greanium/internal/session"
)

// newBackend serves fixed bodies per path.
func newBackend(t *testing.T, routes map[string]func(w http.ResponseWriter, r *http.Request)) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	for path, handler := range routes {
		mux.HandleFunc(path, handler)
	}
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func respond(status int, body string) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestHTTPDataSource_Links(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "array", body: `[{"name":"GitHub","url":"https://github.com/cg"},{"name":"Blog","url":"https://blog.example"}]`},
		{name: "items wrapper", body: `{"items":[{"name":"GitHub","url":"https://github.com/cg"},{"name":"Blog","url":"https://blog.example"}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newBackend(t, map[string]func(http.ResponseWriter, *http.Request){
				"/links/": respond(http.StatusOK, tt.body),
			})
			source := NewHTTPDataSource(server.URL+"/", server.Client())

			links, err := source.Links(context.Background())
			require.NoError(t, err)
			assert.Equal(t, []session.Link{
				{Name: "GitHub", URL: "https://github.com/cg"},
				{Name: "Blog", URL: "https://blog.example"},
			}, links)
		})
	}
}

func TestHTTPDataSource_Files(t *testing.T) {
	server := newBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"/files/": respond(http.StatusOK, `{"files":["resume.pdf","notes.txt"]}`),
	})
	source := NewHTTPDataSource(server.URL, server.Client())

	files, err := source.Files(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []session.File{
		{Name: "resume.pdf", URL: server.URL + "/files/download/resume.pdf"},
		{Name: "notes.txt", URL: server.URL + "/files/download/notes.txt"},
	}, files)
}

func TestHTTPDataSource_Portfolio(t *testing.T) {
	server := newBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"/portfolio/": respond(http.StatusOK, `{
			"projects":[{"name":"Greanium","description":"Terminal dashboard","tech":["go"],"url":"https://greanium.example"}],
			"bio":{"name":"Cormac","tagline":"Engineer","skills":[{"name":"Go","category":"Languages"}]}
		}`),
	})
	source := NewHTTPDataSource(server.URL, server.Client())

	portfolio, err := source.Portfolio(context.Background())
	require.NoError(t, err)
	require.Len(t, portfolio.Projects, 1)
	assert.Equal(t, "Greanium", portfolio.Projects[0].Name)
	assert.Equal(t, []string{"go"}, portfolio.Projects[0].Tech)
	require.NotNil(t, portfolio.Bio)
	assert.Equal(t, "Cormac", portfolio.Bio.Name)
	assert.Equal(t, []session.Skill{{Name: "Go", Category: "Languages"}}, portfolio.Bio.Skills)
}

func TestHTTPDataSource_PortfolioErrorPayload(t *testing.T) {
	server := newBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"/portfolio/": respond(http.StatusOK, `{"error":"Portfolio data not found"}`),
	})
	source := NewHTTPDataSource(server.URL, server.Client())

	_, err := source.Portfolio(context.Background())
	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "Portfolio data not found", remote.Detail)
	assert.Equal(t, "/portfolio/", remote.Endpoint)
}

func TestHTTPDataSource_StatusErrors(t *testing.T) {
	server := newBackend(t, map[string]func(http.ResponseWriter, *http.Request){
		"/links/": respond(http.StatusInternalServerError, `{"error":"database offline"}`),
		"/files/": respond(http.StatusBadGateway, `upstream down`),
	})
	source := NewHTTPDataSource(server.URL, server.Client())

	_, err := source.Links(context.Background())
	var remote *RemoteError
	require.True(t, errors.As(err, &remote))
	assert.Equal(t, "database offline", err.Error())

	_, err = source.Files(context.Background())
	var status *StatusError
	require.True(t, errors.As(err, &status))
	assert.Equal(t, http.StatusBadGateway, status.StatusCode)

	_, err = source.Portfolio(context.Background())
	assert.True(t, IsNotFound(err))
}

func TestHTTPDataSource_TransportError(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	source := NewHTTPDataSource(url, nil)
	_, err := source.Links(context.Background())

	var transport *TransportError
	require.True(t, errors.As(err, &transport))
	assert.Equal(t, "/links/", transport.Endpoint)
	assert.NotNil(t, errors.Unwrap(err))
}

func TestHTTPDataSource_DownloadURLEscapesName(t *testing.T) {
	source := NewHTTPDataSource("https://greanium.example/", nil)

	assert.Equal(t, "https://greanium.example/files/download/resume.pdf", source.DownloadURL("resume.pdf"))
	assert.Equal(t, "https://greanium.example/files/download/my%20cv%20%232.pdf", source.DownloadURL("my cv #2.pdf"))
}
