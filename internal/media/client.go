// Package media uploads listing images to the external media host. The host
// owns the bytes; listings only ever store the returned URL.
package media

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jcanovas/vivenda/internal/config"
)

const uploadTimeout = 30 * time.Second

// Upload is the result of a successful upload: the hosted URL to attach to
// the draft's media list.
type Upload struct {
	URL string `json:"url"`
}

// Client talks to the media host's upload API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a media host client from configuration.
func NewClient(cfg config.MediaConfig) *Client {
	return &Client{
		baseURL: cfg.UploadURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: uploadTimeout},
	}
}

// hostResponse mirrors the subset of the host's upload response we use.
type hostResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
	Status  int  `json:"status"`
}

// UploadImage sends the image bytes to the media host and returns the hosted
// URL. The host API takes the payload base64-encoded in a form field.
func (c *Client) UploadImage(ctx context.Context, name string, data []byte) (*Upload, error) {
	form := url.Values{}
	form.Set("key", c.apiKey)
	form.Set("name", name)
	form.Set("image", base64.StdEncoding.EncodeToString(data))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("media host unreachable: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("failed to read upload response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("media host returned status %d", resp.StatusCode)
	}

	var parsed hostResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode upload response: %w", err)
	}
	if !parsed.Success || parsed.Data.URL == "" {
		return nil, fmt.Errorf("media host rejected upload (status %d)", parsed.Status)
	}

	return &Upload{URL: parsed.Data.URL}, nil
}
