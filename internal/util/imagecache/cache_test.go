package imagecache

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
)

func TestGenerateFilename(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantExt string
	}{
		{name: "png", url: "https://example.com/a.png", wantExt: ".png"},
		{name: "query string", url: "https://example.com/a.webp?size=large", wantExt: ".webp"},
		{name: "no extension", url: "https://example.com/image", wantExt: ".jpg"},
		{name: "upper case", url: "https://example.com/A.JPEG", wantExt: ".jpeg"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := generateFilename(tt.url)
			if !strings.HasSuffix(got, tt.wantExt) {
				t.Errorf("generateFilename(%q) = %q, want suffix %q", tt.url, got, tt.wantExt)
			}
			if got != generateFilename(tt.url) {
				t.Error("generateFilename is not deterministic")
			}
		})
	}
}

func TestDownloadAndCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte("image-bytes"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	opts := CacheOptions{CacheDir: dir, Filename: "cover.png"}

	path, err := DownloadAndCache(context.Background(), srv.URL+"/cover.png", opts)
	if err != nil {
		t.Fatalf("DownloadAndCache() error: %v", err)
	}
	if path != filepath.Join(dir, "cover.png") {
		t.Errorf("path = %q, want %q", path, filepath.Join(dir, "cover.png"))
	}
	data, err := os.ReadFile(path)
	if err != nil || string(data) != "image-bytes" {
		t.Fatalf("cached content = %q, %v", data, err)
	}

	if _, err := DownloadAndCache(context.Background(), srv.URL+"/cover.png", opts); err != nil {
		t.Fatalf("second DownloadAndCache() error: %v", err)
	}
	if hits.Load() != 1 {
		t.Errorf("server hit %d times, want 1 (second call should reuse cache)", hits.Load())
	}

	opts.AllowOverwrite = true
	if _, err := DownloadAndCache(context.Background(), srv.URL+"/cover.png", opts); err != nil {
		t.Fatalf("overwrite DownloadAndCache() error: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("server hit %d times, want 2 after overwrite", hits.Load())
	}
}

func TestDownloadAndCacheRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	if _, err := DownloadAndCache(context.Background(), "ftp://example.com/a.png", CacheOptions{CacheDir: dir}); err == nil {
		t.Error("expected error for non-HTTP URL")
	}
	if _, err := DownloadAndCache(context.Background(), "https://example.com/a.png", CacheOptions{CacheDir: dir, Filename: "../escape.png"}); err == nil {
		t.Error("expected error for traversal filename")
	}
}
