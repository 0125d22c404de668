package filesystem

import (
	"errors"
	"io/fs"

	"github.com/spf13/afero"

	"github.com/bnema/cronfile/internal/boundaries/out"
)

// Prober implements out.FileProber with stat calls.
type Prober struct {
	fs afero.Fs
}

// NewProber creates a prober over the given filesystem.
func NewProber(fsys afero.Fs) *Prober {
	return &Prober{fs: fsys}
}

// Probe returns the size and modification time of path.
func (p *Prober) Probe(path string) (out.FileStat, bool, error) {
	info, err := p.fs.Stat(ExpandTilde(path))
	if errors.Is(err, fs.ErrNotExist) {
		return out.FileStat{}, false, nil
	}
	if err != nil {
		return out.FileStat{}, false, err
	}
	return out.FileStat{ModTime: info.ModTime(), Size: info.Size()}, true, nil
}
