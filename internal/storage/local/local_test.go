package local

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage failed: %v", err)
	}
	return s
}

func TestUploadDownloadRoundtrip(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	if err := s.Upload(ctx, "talk-abc.mp3", strings.NewReader("mp3 payload")); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	r, err := s.Download(ctx, "talk-abc.mp3")
	if err != nil {
		t.Fatalf("Download failed: %v", err)
	}
	defer r.Close()

	data, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "mp3 payload" {
		t.Errorf("content = %q", data)
	}
}

func TestExists(t *testing.T) {
	s := newTestStorage(t)
	ctx := context.Background()

	ok, err := s.Exists(ctx, "nothing.mp3")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if ok {
		t.Error("expected false for missing file")
	}

	if err := s.Upload(ctx, "here.mp3", strings.NewReader("x")); err != nil {
		t.Fatalf("Upload failed: %v", err)
	}
	ok, err = s.Exists(ctx, "here.mp3")
	if err != nil {
		t.Fatalf("Exists failed: %v", err)
	}
	if !ok {
		t.Error("expected true after upload")
	}
}

func TestDownloadMissing(t *testing.T) {
	s := newTestStorage(t)
	if _, err := s.Download(context.Background(), "missing.mp3"); err == nil {
		t.Fatal("expected error for missing file")
	}
}

// failingReader errors mid-stream, like a client aborting an upload.
type failingReader struct{ sent bool }

func (r *failingReader) Read(p []byte) (int, error) {
	if r.sent {
		return 0, errors.New("connection reset")
	}
	r.sent = true
	copy(p, "partial")
	return len("partial"), nil
}

func TestUploadAbortLeavesNoPartialFile(t *testing.T) {
	s := newTestStorage(t)

	err := s.Upload(context.Background(), "broken.mp3", &failingReader{})
	if err == nil {
		t.Fatal("expected upload error")
	}

	if _, statErr := os.Stat(filepath.Join(s.BasePath(), "broken.mp3")); !os.IsNotExist(statErr) {
		t.Error("expected partial file to be removed")
	}
}
