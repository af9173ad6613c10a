package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// ProgressFunc receives byte progress for the file currently being fetched.
// total is -1 when the server does not announce a length.
type ProgressFunc func(done, total int64)

// Transfer fetches a URL to a local path.
type Transfer interface {
	Fetch(ctx context.Context, url, dest string, overwrite bool, progress ProgressFunc) error
}

// HTTPClient abstracts HTTP operations for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// DefaultUserAgent is sent with every request unless overridden.
const DefaultUserAgent = "craftboot"

// HTTPTransfer fetches files over HTTP(S).
type HTTPTransfer struct {
	Client    HTTPClient
	UserAgent string
	Timeout   time.Duration // per-file timeout (0 = no extra timeout beyond context)
}

// Fetch streams url into dest. The body is written to a temporary file next
// to dest and renamed over it once complete, so a failed transfer never
// leaves a truncated file behind. With overwrite=false an existing dest is
// left untouched.
func (t *HTTPTransfer) Fetch(ctx context.Context, url, dest string, overwrite bool, progress ProgressFunc) error {
	if url == "" {
		return &TransferError{URL: url, Operation: "fetch", Err: fmt.Errorf("url is required")}
	}
	if !overwrite {
		if _, err := os.Stat(dest); err == nil {
			return nil
		}
	}

	if t.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, t.Timeout)
		defer cancel()
	}

	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &TransferError{URL: url, Operation: "fetch", Err: fmt.Errorf("creating request: %w", err)}
	}
	ua := t.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)

	resp, err := client.Do(req)
	if err != nil {
		return &TransferError{URL: url, Operation: "fetch", Err: err, Hint: "check network connectivity and URL"}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &TransferError{
			URL:       url,
			Operation: "fetch",
			Err:       fmt.Errorf("HTTP %d", resp.StatusCode),
			Hint:      "check that the distribution point still serves this file",
		}
	}

	var body io.Reader = resp.Body
	if progress != nil {
		body = &progressReader{r: resp.Body, total: resp.ContentLength, fn: progress}
	}

	if err := writeAtomic(dest, body); err != nil {
		return &TransferError{URL: url, Operation: "write", Err: err}
	}
	return nil
}

func writeAtomic(dest string, r io.Reader) error {
	dir := filepath.Dir(dest)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	// Same directory keeps the rename on one filesystem.
	tmp, err := os.CreateTemp(dir, ".craftboot-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := io.Copy(tmp, r); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		return fmt.Errorf("setting permissions: %w", err)
	}

	if err := os.Rename(tmpPath, dest); err != nil {
		return fmt.Errorf("renaming temp file to %s: %w", dest, err)
	}

	success = true
	return nil
}

type progressReader struct {
	r     io.Reader
	done  int64
	total int64
	fn    ProgressFunc
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.done += int64(n)
		p.fn(p.done, p.total)
	}
	return n, err
}
