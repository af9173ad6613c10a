package download

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/bianoble/craftboot/internal/files"
)

// fakeTransfer writes the URL as file content and reports two progress steps.
type fakeTransfer struct {
	fail  map[string]error
	calls []string
}

func (f *fakeTransfer) Fetch(ctx context.Context, url, dest string, overwrite bool, progress ProgressFunc) error {
	f.calls = append(f.calls, url)
	if err, ok := f.fail[url]; ok {
		return err
	}
	if progress != nil {
		progress(1, 2)
		progress(2, 2)
	}
	return os.WriteFile(dest, []byte(url), 0644)
}

func requests(t *testing.T, n int) []files.DownloadFile {
	t.Helper()
	dir := t.TempDir()
	var out []files.DownloadFile
	for i := 0; i < n; i++ {
		out = append(out, files.DownloadFile{
			Kind: files.KindLibrary,
			Name: fmt.Sprintf("lib%d", i),
			Path: filepath.Join(dir, "nested", fmt.Sprintf("d%d", i), fmt.Sprintf("lib%d.jar", i)),
			URL:  fmt.Sprintf("https://example.com/lib%d.jar", i),
		})
	}
	return out
}

func quietLogger() logrus.FieldLogger {
	l, _ := logtest.NewNullLogger()
	return l
}

func TestDownloadEmptyFiresNothing(t *testing.T) {
	var events []files.FileChanged
	tr := &fakeTransfer{}
	d := NewSequenceDownloader(tr)
	d.OnFileChanged = func(e files.FileChanged) { events = append(events, e) }

	if err := d.Download(context.Background(), nil); err != nil {
		t.Fatalf("Download: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events = %v, want none", events)
	}
	if len(tr.calls) != 0 {
		t.Errorf("transfer calls = %v, want none", tr.calls)
	}
}

func TestDownloadIndexSequence(t *testing.T) {
	list := requests(t, 3)
	var events []files.FileChanged
	d := NewSequenceDownloader(&fakeTransfer{})
	d.OnFileChanged = func(e files.FileChanged) { events = append(events, e) }

	if err := d.Download(context.Background(), list); err != nil {
		t.Fatalf("Download: %v", err)
	}

	if len(events) != 4 {
		t.Fatalf("events = %d, want 4", len(events))
	}
	for i, e := range events {
		if e.Index != i {
			t.Errorf("events[%d].Index = %d", i, e.Index)
		}
		if e.Total != 3 {
			t.Errorf("events[%d].Total = %d, want 3", i, e.Total)
		}
	}
	if events[3].Name != "lib2" {
		t.Errorf("terminal event name = %q, want last file", events[3].Name)
	}

	for _, f := range list {
		content, err := os.ReadFile(f.Path)
		if err != nil {
			t.Fatalf("reading %s: %v", f.Path, err)
		}
		if string(content) != f.URL {
			t.Errorf("content = %q, want %q", content, f.URL)
		}
	}
}

func TestDownloadTolerantAllFail(t *testing.T) {
	list := requests(t, 3)
	tr := &fakeTransfer{fail: map[string]error{}}
	for _, f := range list {
		tr.fail[f.URL] = errors.New("connection refused")
	}

	logger, hook := logtest.NewNullLogger()
	var indices []int
	d := NewSequenceDownloader(tr)
	d.Log = logger
	d.OnFileChanged = func(e files.FileChanged) { indices = append(indices, e.Index) }

	if err := d.Download(context.Background(), list); err != nil {
		t.Fatalf("Download: %v", err)
	}

	if !reflect.DeepEqual(indices, []int{0, 1, 2, 3}) {
		t.Errorf("indices = %v, want [0 1 2 3]", indices)
	}
	if len(tr.calls) != 3 {
		t.Errorf("transfer calls = %d, want 3", len(tr.calls))
	}
	if len(hook.AllEntries()) != 3 {
		t.Errorf("log entries = %d, want 3", len(hook.AllEntries()))
	}
	if hook.LastEntry().Level != logrus.WarnLevel {
		t.Errorf("log level = %s, want warning", hook.LastEntry().Level)
	}
}

func TestDownloadStrictAbortsOnFirstFailure(t *testing.T) {
	list := requests(t, 4)
	cause := errors.New("HTTP 404")
	tr := &fakeTransfer{fail: map[string]error{
		list[1].URL: cause,
		list[2].URL: errors.New("should not be reached"),
	}}

	var indices []int
	d := NewSequenceDownloader(tr)
	d.IgnoreInvalidFiles = false
	d.Log = quietLogger()
	d.OnFileChanged = func(e files.FileChanged) { indices = append(indices, e.Index) }

	err := d.Download(context.Background(), list)
	if err == nil {
		t.Fatal("expected fatal error")
	}

	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected *FatalError, got %T", err)
	}
	if fatal.File.Name != "lib1" {
		t.Errorf("failed file = %q, want lib1", fatal.File.Name)
	}
	if !errors.Is(err, cause) {
		t.Errorf("cause not preserved: %v", err)
	}
	if !reflect.DeepEqual(indices, []int{0, 1}) {
		t.Errorf("indices = %v, want [0 1]", indices)
	}
	if len(tr.calls) != 2 {
		t.Errorf("transfer calls = %d, want 2", len(tr.calls))
	}
}

func TestDownloadAfterDownloadCallbacks(t *testing.T) {
	list := requests(t, 2)
	var order []string
	list[0].AfterDownload = []func() error{
		func() error { order = append(order, "a1"); return nil },
		nil,
		func() error { order = append(order, "a2"); return nil },
	}
	list[1].AfterDownload = []func() error{
		func() error { order = append(order, "b1"); return nil },
	}

	d := NewSequenceDownloader(&fakeTransfer{})
	d.OnFileChanged = func(e files.FileChanged) { order = append(order, fmt.Sprintf("file%d", e.Index)) }

	if err := d.Download(context.Background(), list); err != nil {
		t.Fatalf("Download: %v", err)
	}

	want := []string{"file0", "a1", "a2", "file1", "b1", "file2"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestDownloadCallbackFailureStrict(t *testing.T) {
	list := requests(t, 2)
	list[0].AfterDownload = []func() error{func() error { return errors.New("extract failed") }}

	d := NewSequenceDownloader(&fakeTransfer{})
	d.IgnoreInvalidFiles = false

	err := d.Download(context.Background(), list)
	var fatal *FatalError
	if !errors.As(err, &fatal) {
		t.Fatalf("expected *FatalError, got %v", err)
	}
	if fatal.File.Name != "lib0" {
		t.Errorf("failed file = %q", fatal.File.Name)
	}
}

func TestDownloadProgressInterleaving(t *testing.T) {
	list := requests(t, 2)
	var log []string

	d := NewSequenceDownloader(&fakeTransfer{})
	d.OnFileChanged = func(e files.FileChanged) { log = append(log, fmt.Sprintf("file:%d", e.Index)) }
	d.OnProgress = func(done, total int64) { log = append(log, fmt.Sprintf("bytes:%d/%d", done, total)) }

	if err := d.Download(context.Background(), list); err != nil {
		t.Fatalf("Download: %v", err)
	}

	want := []string{
		"file:0", "bytes:1/2", "bytes:2/2",
		"file:1", "bytes:1/2", "bytes:2/2",
		"file:2",
	}
	if !reflect.DeepEqual(log, want) {
		t.Errorf("log = %v, want %v", log, want)
	}
}

func TestDownloadCreatesParentDirectory(t *testing.T) {
	list := requests(t, 1)
	// Directory creation must be idempotent.
	if err := os.MkdirAll(filepath.Dir(list[0].Path), 0755); err != nil {
		t.Fatal(err)
	}

	d := NewSequenceDownloader(&fakeTransfer{})
	if err := d.Download(context.Background(), list); err != nil {
		t.Fatalf("Download: %v", err)
	}
	if _, err := os.Stat(list[0].Path); err != nil {
		t.Errorf("file not written: %v", err)
	}
}
