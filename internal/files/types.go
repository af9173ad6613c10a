package files

// Kind tags what a fetched file is used for.
type Kind string

const (
	KindClient  Kind = "client"
	KindLibrary Kind = "library"
)

// DownloadFile is a request to fetch one remote file to a local path.
// Requests are created per check pass and discarded after the fetch attempt.
type DownloadFile struct {
	Kind Kind
	Name string
	Path string // destination; its parent directory is created before write
	URL  string // must be non-empty to be actionable

	// AfterDownload runs in order once the file has been written.
	AfterDownload []func() error
}

// FileChanged reports that work on file Index of Total has started.
// Index equals Total on the terminal event of a run.
type FileChanged struct {
	Kind  Kind
	Name  string
	Total int
	Index int
}

// FileChangedFunc receives file-changed events. It is called synchronously.
type FileChangedFunc func(FileChanged)
