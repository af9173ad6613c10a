package download

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestHTTPTransferSuccess(t *testing.T) {
	content := []byte(strings.Repeat("x", 4096))
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Header().Set("Content-Length", strconv.Itoa(len(content)))
		w.Write(content)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "versions", "1.16.5", "1.16.5.jar")
	var last, total int64
	tr := &HTTPTransfer{}
	err := tr.Fetch(context.Background(), srv.URL+"/client.jar", dest, true, func(done, n int64) {
		last, total = done, n
	})
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}

	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("reading dest: %v", err)
	}
	if string(got) != string(content) {
		t.Errorf("content length = %d, want %d", len(got), len(content))
	}
	if last != int64(len(content)) {
		t.Errorf("last progress = %d, want %d", last, len(content))
	}
	if total != int64(len(content)) {
		t.Errorf("total = %d, want %d", total, len(content))
	}
	if gotUA != DefaultUserAgent {
		t.Errorf("user agent = %q", gotUA)
	}
}

func TestHTTPTransferOverwrites(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("new"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "file.jar")
	if err := os.WriteFile(dest, []byte("old content"), 0644); err != nil {
		t.Fatal(err)
	}

	tr := &HTTPTransfer{}
	if err := tr.Fetch(context.Background(), srv.URL, dest, true, nil); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	got, _ := os.ReadFile(dest)
	if string(got) != "new" {
		t.Errorf("content = %q, want new", got)
	}
}

func TestHTTPTransferNoOverwriteKeepsExisting(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.Write([]byte("new"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "file.jar")
	if err := os.WriteFile(dest, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}

	tr := &HTTPTransfer{}
	if err := tr.Fetch(context.Background(), srv.URL, dest, false, nil); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	got, _ := os.ReadFile(dest)
	if string(got) != "old" {
		t.Errorf("content = %q, want old", got)
	}
	if hits != 0 {
		t.Errorf("server hits = %d, want 0", hits)
	}
}

func TestHTTPTransferHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "gone.jar")
	tr := &HTTPTransfer{}
	err := tr.Fetch(context.Background(), srv.URL+"/gone.jar", dest, true, nil)
	if err == nil {
		t.Fatal("expected error for HTTP 404")
	}

	var te *TransferError
	if !errors.As(err, &te) {
		t.Fatalf("expected *TransferError, got %T", err)
	}
	if !strings.Contains(err.Error(), "404") {
		t.Errorf("unexpected error: %v", err)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("failed transfer left a file behind")
	}
}

func TestHTTPTransferEmptyURL(t *testing.T) {
	tr := &HTTPTransfer{}
	if err := tr.Fetch(context.Background(), "", filepath.Join(t.TempDir(), "x"), true, nil); err == nil {
		t.Fatal("expected error for empty URL")
	}
}

func TestHTTPTransferTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(2 * time.Second)
		w.Write([]byte("slow"))
	}))
	defer srv.Close()

	tr := &HTTPTransfer{Timeout: 100 * time.Millisecond}
	err := tr.Fetch(context.Background(), srv.URL, filepath.Join(t.TempDir(), "slow.jar"), true, nil)
	if err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestHTTPTransferCustomUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
	}))
	defer srv.Close()

	tr := &HTTPTransfer{UserAgent: "my-launcher/2"}
	if err := tr.Fetch(context.Background(), srv.URL, filepath.Join(t.TempDir(), "f"), true, nil); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if gotUA != "my-launcher/2" {
		t.Errorf("user agent = %q", gotUA)
	}
}
