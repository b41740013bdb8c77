package profileservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...any)  {}
func (nopLogger) Error(format string, v ...any) {}

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	server := httptest.NewServer(handler)
	client := NewClient(server.URL, 2*time.Second, nopLogger{})
	return client, server
}

func TestGetProfile(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/internal/profiles/200", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 200, "name": "Anna", "email": "anna@example.com", "is_professional": false, "timezone": "UTC"}`))
	})
	defer server.Close()

	profile, err := client.GetProfile(context.Background(), 200)
	require.NoError(t, err)

	assert.Equal(t, int64(200), profile.ID)
	assert.Equal(t, "Anna", profile.Name)
	assert.False(t, profile.IsProfessional)
}

func TestGetProfile_NotFound(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	defer server.Close()

	_, err := client.GetProfile(context.Background(), 404)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}

func TestGetProfile_UnexpectedStatus(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer server.Close()

	_, err := client.GetProfile(context.Background(), 200)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestGetProfessional(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 100, "name": "Boris", "is_professional": true}`))
	})
	defer server.Close()

	profile, err := client.GetProfessional(context.Background(), 100)
	require.NoError(t, err)
	assert.True(t, profile.IsProfessional)
}

func TestGetProfessional_NotProfessional(t *testing.T) {
	client, server := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": 200, "name": "Anna", "is_professional": false}`))
	})
	defer server.Close()

	_, err := client.GetProfessional(context.Background(), 200)
	assert.ErrorIs(t, err, ErrNotProfessional)
}
