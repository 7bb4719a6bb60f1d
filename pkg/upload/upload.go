// Package upload pushes image files to a public file host and returns the
// retrievable URL, used for shared wallpapers and notepad link insertion.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public file host uploads go to.
	DefaultBaseURL = "https://0x0.st"

	// MaxBytes caps upload size.
	MaxBytes = 5 << 20 // 5 MiB
)

var (
	// ErrTooLarge is returned when the file exceeds MaxBytes.
	ErrTooLarge = errors.New("upload: file exceeds size limit")
	// ErrNotImage is returned when the file does not sniff as an image.
	ErrNotImage = errors.New("upload: only image files are accepted")
)

// Client uploads files to the configured host.
type Client struct {
	HTTPClient *http.Client
	BaseURL    string
	MaxBytes   int64
}

// NewClient returns a client against the default host.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		BaseURL:    DefaultBaseURL,
		MaxBytes:   MaxBytes,
	}
}

// UploadImage validates and uploads the file at path, returning the public
// URL the host assigned. Files over the size cap or that are not images are
// rejected before any bytes leave the machine.
func (c *Client) UploadImage(ctx context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("upload: read %s: %w", path, err)
	}
	max := c.MaxBytes
	if max <= 0 {
		max = MaxBytes
	}
	if int64(len(data)) > max {
		return "", ErrTooLarge
	}
	if !strings.HasPrefix(http.DetectContentType(data), "image/") {
		return "", ErrNotImage
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return "", fmt.Errorf("upload: build request: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("upload: build request: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("upload: build request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, &body)
	if err != nil {
		return "", fmt.Errorf("upload: build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	client := c.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("upload: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err != nil {
		return "", fmt.Errorf("upload: read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("upload: unexpected status %s: %s", resp.Status, strings.TrimSpace(string(respBody)))
	}

	url := strings.TrimSpace(string(respBody))
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return "", fmt.Errorf("upload: host returned unexpected body %q", url)
	}
	return url, nil
}
