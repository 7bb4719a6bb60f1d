package upload

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

// 1x1 transparent PNG.
var tinyPNG, _ = base64.StdEncoding.DecodeString(
	"iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg==")

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestUploadImageReturnsURL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(MaxBytes); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			http.Error(w, "bad form", http.StatusBadRequest)
			return
		}
		defer file.Close()
		if header.Filename != "wall.png" {
			t.Errorf("filename = %q", header.Filename)
		}
		w.Write([]byte("https://files.example/abc.png\n"))
	}))
	defer srv.Close()

	c := &Client{HTTPClient: srv.Client(), BaseURL: srv.URL, MaxBytes: MaxBytes}
	url, err := c.UploadImage(context.Background(), writeTemp(t, "wall.png", tinyPNG))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if url != "https://files.example/abc.png" {
		t.Fatalf("url = %q", url)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	big := append(bytes.Repeat([]byte{0}, 64), tinyPNG...)
	c := &Client{BaseURL: "http://unused.example", MaxBytes: 16}
	_, err := c.UploadImage(context.Background(), writeTemp(t, "big.png", big))
	if !errors.Is(err, ErrTooLarge) {
		t.Fatalf("err = %v, want ErrTooLarge", err)
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	c := &Client{BaseURL: "http://unused.example"}
	_, err := c.UploadImage(context.Background(), writeTemp(t, "notes.txt", []byte("plain text")))
	if !errors.Is(err, ErrNotImage) {
		t.Fatalf("err = %v, want ErrNotImage", err)
	}
}

func TestUploadErrorsOnHostFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "storage full", http.StatusInsufficientStorage)
	}))
	defer srv.Close()

	c := &Client{HTTPClient: srv.Client(), BaseURL: srv.URL}
	if _, err := c.UploadImage(context.Background(), writeTemp(t, "wall.png", tinyPNG)); err == nil {
		t.Fatal("expected error on host failure")
	}
}

func TestUploadRejectsNonURLBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>surprise</html>"))
	}))
	defer srv.Close()

	c := &Client{HTTPClient: srv.Client(), BaseURL: srv.URL}
	if _, err := c.UploadImage(context.Background(), writeTemp(t, "wall.png", tinyPNG)); err == nil {
		t.Fatal("expected error for non-URL response body")
	}
}
