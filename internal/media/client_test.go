package media

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jcanovas/vivenda/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(serverURL string) *Client {
	return NewClient(config.MediaConfig{
		UploadURL: serverURL,
		APIKey:    "test-key",
	})
}

func TestUploadImage(t *testing.T) {
	payload := []byte("fake-image-bytes")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "test-key", r.PostFormValue("key"))
		assert.Equal(t, "salon.jpg", r.PostFormValue("name"))
		assert.Equal(t, base64.StdEncoding.EncodeToString(payload), r.PostFormValue("image"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"url":"https://img.example/salon.jpg"},"success":true,"status":200}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	upload, err := client.UploadImage(context.Background(), "salon.jpg", payload)

	require.NoError(t, err)
	assert.Equal(t, "https://img.example/salon.jpg", upload.URL)
}

func TestUploadImage_HostError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusBadRequest)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.UploadImage(context.Background(), "salon.jpg", []byte("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 400")
}

func TestUploadImage_RejectedUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":false,"status":100}`))
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.UploadImage(context.Background(), "salon.jpg", []byte("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected")
}

func TestUploadImage_Unreachable(t *testing.T) {
	client := newTestClient("http://127.0.0.1:0")

	_, err := client.UploadImage(context.Background(), "salon.jpg", []byte("x"))

	require.Error(t, err)
}
