package out

import (
	"context"
	"time"
)

// SourceLine is one meaningful line of a crontab file with its 1-based number.
type SourceLine struct {
	Number int
	Text   string
}

// CrontabStore defines the contract for reading and writing crontab files.
type CrontabStore interface {
	// ReadLines returns the lines of the file that carry content. Blank lines
	// and lines starting with '#' are skipped.
	ReadLines(ctx context.Context, path string) ([]SourceLine, error)

	// Write replaces the file content. It fails with domain.ErrNotWritable
	// before writing anything when the file exists and cannot be written.
	Write(ctx context.Context, path, content string) error

	// ReadFile returns the raw content of a file, used for job output.
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// FileStat is the metadata a probe needs from a file.
type FileStat struct {
	ModTime time.Time
	Size    int64
}

// FileProber defines the contract for looking up log and error files.
type FileProber interface {
	// Probe returns the file metadata and true, or false when the file
	// does not exist. Other failures are returned as errors.
	Probe(path string) (FileStat, bool, error)
}
