// Package removal talks to an external background-removal service. The
// service accepts a PNG body and answers with a PNG whose background
// pixels are transparent.
package removal

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultServiceURL = "http://localhost:7000"
	removePath        = "/api/remove"

	requestTimeout = 60 * time.Second
)

type Client struct {
	baseURL string
	client  *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultServiceURL
	}
	return &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: requestTimeout},
	}
}

// Remove sends the image to the service and decodes the cut-out it
// returns. The result keeps the source dimensions with an alpha channel.
func (c *Client) Remove(ctx context.Context, img image.Image) (image.Image, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+removePath, &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "image/png")
	req.Header.Set("Accept", "image/png")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("removal service error (status %d): %s", resp.StatusCode, string(body))
	}

	cutout, err := png.Decode(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode removal result: %w", err)
	}
	return cutout, nil
}
