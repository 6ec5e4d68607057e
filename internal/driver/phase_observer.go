package driver

import "time"

// ProgressStatus reports whether a file started or finished.
type ProgressStatus int

const (
	// FileStarted is sent when a worker picks a file up.
	FileStarted ProgressStatus = iota
	FileFinished
)

// ProgressEvent describes one file of a directory check.
type ProgressEvent struct {
	Path    string
	Index   int // position in the sorted file list
	Total   int
	Status  ProgressStatus
	Cached  bool
	Errors  int
	Elapsed time.Duration
}

// ProgressObserver receives events from CheckFiles. It is called from
// worker goroutines and must be safe for concurrent use.
type ProgressObserver func(ProgressEvent)
