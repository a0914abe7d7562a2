package rcsb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peptide3d/pdbkit-cli/internal/core/domain"
)

func testServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Fetch_Success(t *testing.T) {
	var gotPath string
	srv := testServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte("HEADER    TEST\nEND\n"))
	})

	client := NewClient(srv.URL + "/download/%s.pdb")
	data, err := client.Fetch(context.Background(), "1ehz")

	require.NoError(t, err)
	assert.Equal(t, "HEADER    TEST\nEND\n", string(data))
	// Identifiers are upper-cased before hitting the archive.
	assert.Equal(t, "/download/1EHZ.pdb", gotPath)
}

func TestClient_Fetch_NotFound(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	client := NewClient(srv.URL + "/download/%s.pdb")
	_, err := client.Fetch(context.Background(), "XXXX")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "XXXX")
}

func TestClient_Fetch_ServerError(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	client := NewClient(srv.URL + "/download/%s.pdb")
	_, err := client.Fetch(context.Background(), "1ABC")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), "500")
}

func TestClient_Fetch_EmptyID(t *testing.T) {
	client := NewClient("")

	_, err := client.Fetch(context.Background(), "   ")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestClient_Fetch_CancelledContext(t *testing.T) {
	srv := testServer(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("EN"))
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(srv.URL + "/download/%s.pdb")
	_, err := client.Fetch(ctx, "1ABC")

	require.Error(t, err)
}

func TestClient_Fetch_DefaultEndpoint(t *testing.T) {
	client := NewClient("")

	assert.Equal(t, domain.DefaultDownloadURL, client.urlFormat)
}
