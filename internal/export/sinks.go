package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Status is the outcome of handing an artifact to a sink. Cancellation is
// an explicit state distinct from failure: a canceled or failed write
// leaves the artifact valid and re-savable without regeneration.
type Status string

const (
	StatusSaved    Status = "saved"
	StatusCanceled Status = "canceled"
	StatusFailed   Status = "failed"
)

// Sink persists an assembled artifact. Implementations receive the exact
// previewed value and must write it unchanged.
type Sink interface {
	Write(a *Artifact) (Status, error)
}

// FileSink writes the artifact to one path, atomically: the document lands
// in a temp file first and is renamed into place, so a failed write never
// leaves a truncated export behind.
type FileSink struct {
	Path string
}

func (s *FileSink) Write(a *Artifact) (Status, error) {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return StatusFailed, fmt.Errorf("creating output directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".scrapdiary-*.html")
	if err != nil {
		return StatusFailed, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.WriteString(a.HTML); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return StatusFailed, fmt.Errorf("writing artifact: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return StatusFailed, fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path); err != nil {
		os.Remove(tmpName)
		return StatusFailed, fmt.Errorf("moving artifact into place: %w", err)
	}
	return StatusSaved, nil
}

// WriterSink streams the artifact to any writer, e.g. stdout.
type WriterSink struct {
	W io.Writer
}

func (s *WriterSink) Write(a *Artifact) (Status, error) {
	if _, err := io.WriteString(s.W, a.HTML); err != nil {
		return StatusFailed, fmt.Errorf("writing artifact: %w", err)
	}
	return StatusSaved, nil
}

// ConfirmedSink gates another sink behind a confirmation callback,
// mapping a declined confirmation to StatusCanceled.
type ConfirmedSink struct {
	Confirm func(a *Artifact) (bool, error)
	Next    Sink
}

func (s *ConfirmedSink) Write(a *Artifact) (Status, error) {
	ok, err := s.Confirm(a)
	if err != nil {
		return StatusFailed, fmt.Errorf("confirming save: %w", err)
	}
	if !ok {
		return StatusCanceled, nil
	}
	return s.Next.Write(a)
}
