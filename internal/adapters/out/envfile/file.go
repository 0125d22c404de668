// Package envfile implements dotenv import and export of crontab variables.
package envfile

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// File implements out.EnvFile with godotenv.
type File struct {
	fs afero.Fs
}

// NewFile creates a dotenv adapter over the given filesystem.
func NewFile(fsys afero.Fs) *File {
	return &File{fs: fsys}
}

// Read parses the dotenv file at path.
func (f *File) Read(ctx context.Context, path string) (map[string]string, error) {
	file, err := f.fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	vars, err := godotenv.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse env file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("layer", "adapter").
		Str("adapter", "envfile").
		Str("env_file", path).
		Int("count", len(vars)).
		Msg("env file read")
	return vars, nil
}

// Write stores vars at path, one quoted KEY="value" per line.
func (f *File) Write(ctx context.Context, path string, vars map[string]string) error {
	content, err := godotenv.Marshal(vars)
	if err != nil {
		return fmt.Errorf("failed to encode env file: %w", err)
	}
	if content != "" {
		content += "\n"
	}
	if err := afero.WriteFile(f.fs, path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("failed to write env file: %w", err)
	}

	zerolog.Ctx(ctx).Debug().
		Str("layer", "adapter").
		Str("adapter", "envfile").
		Str("env_file", path).
		Int("count", len(vars)).
		Msg("env file written")
	return nil
}
