// Package filesystem implements the crontab file adapters on top of afero.
package filesystem

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/afero"

	"github.com/bnema/cronfile/internal/boundaries/out"
	"github.com/bnema/cronfile/internal/domain"
)

const defaultFileMode fs.FileMode = 0o644

// maxLineSize bounds a single crontab line.
const maxLineSize = 1024 * 1024

// Store implements out.CrontabStore.
type Store struct {
	fs afero.Fs
}

// NewStore creates a store over the given filesystem.
func NewStore(fsys afero.Fs) *Store {
	return &Store{fs: fsys}
}

// ExpandTilde replaces a leading "~/" with the user's home directory.
func ExpandTilde(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, path[2:])
	}
	return path
}

// ReadLines returns the numbered lines of path that carry content.
func (s *Store) ReadLines(ctx context.Context, path string) ([]out.SourceLine, error) {
	log := zerolog.Ctx(ctx).With().
		Str("layer", "adapter").
		Str("adapter", "filesystem").
		Str("action", "ReadLines").
		Str("path", path).
		Logger()

	f, err := s.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []out.SourceLine
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	number := 0
	for scanner.Scan() {
		number++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		lines = append(lines, out.SourceLine{Number: number, Text: text})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	log.Debug().Int("total", number).Int("kept", len(lines)).Msg("crontab lines read")
	return lines, nil
}

// Write replaces the content of path through a temporary file. An existing
// file that cannot be opened for writing is reported before anything is
// written.
func (s *Store) Write(ctx context.Context, path, content string) error {
	mode := defaultFileMode
	info, err := s.fs.Stat(path)
	switch {
	case err == nil:
		mode = info.Mode().Perm()
		f, err := s.fs.OpenFile(path, os.O_WRONLY, 0)
		if err != nil {
			return fmt.Errorf("%w: %s: %v", domain.ErrNotWritable, path, err)
		}
		_ = f.Close()
	case !errors.Is(err, fs.ErrNotExist):
		return err
	}

	tmpPath := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmpPath, []byte(content), mode); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := s.fs.Rename(tmpPath, path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return fmt.Errorf("failed to finalize %s: %w", path, err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("layer", "adapter").
		Str("adapter", "filesystem").
		Str("path", path).
		Int("bytes", len(content)).
		Msg("crontab written")
	return nil
}

// ReadFile returns the raw content of path.
func (s *Store) ReadFile(_ context.Context, path string) ([]byte, error) {
	return afero.ReadFile(s.fs, path)
}
