package filesystem

import (
	"context"
	"io/fs"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cronfile/internal/boundaries/out"
	"github.com/bnema/cronfile/internal/domain"
)

func TestStore_ReadLinesSkipsBlankAndComments(t *testing.T) {
	fsys := afero.NewMemMapFs()
	content := "# header\n\nMAILTO=root\n   # indented comment\n* * * * * cmd\r\n\t@daily backup \n"
	require.NoError(t, afero.WriteFile(fsys, "/crontab", []byte(content), 0o644))

	lines, err := NewStore(fsys).ReadLines(context.Background(), "/crontab")
	require.NoError(t, err)
	assert.Equal(t, []out.SourceLine{
		{Number: 3, Text: "MAILTO=root"},
		{Number: 5, Text: "* * * * * cmd"},
		{Number: 6, Text: "@daily backup"},
	}, lines)
}

func TestStore_ReadLinesLongLine(t *testing.T) {
	fsys := afero.NewMemMapFs()
	long := "* * * * * echo " + strings.Repeat("x", 200*1024)
	require.NoError(t, afero.WriteFile(fsys, "/crontab", []byte("MAILTO=root\n"+long+"\n"), 0o644))

	lines, err := NewStore(fsys).ReadLines(context.Background(), "/crontab")
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, out.SourceLine{Number: 2, Text: long}, lines[1])

	tooLong := "* * * * * echo " + strings.Repeat("x", maxLineSize)
	require.NoError(t, afero.WriteFile(fsys, "/huge", []byte(tooLong+"\n"), 0o644))
	_, err = NewStore(fsys).ReadLines(context.Background(), "/huge")
	assert.Error(t, err)
}

func TestStore_ReadLinesMissingFile(t *testing.T) {
	_, err := NewStore(afero.NewMemMapFs()).ReadLines(context.Background(), "/nope")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestStore_WriteCreatesAndReplaces(t *testing.T) {
	fsys := afero.NewMemMapFs()
	store := NewStore(fsys)
	ctx := context.Background()

	require.NoError(t, store.Write(ctx, "/crontab", "* * * * * a\n"))
	require.NoError(t, store.Write(ctx, "/crontab", "* * * * * b\n"))

	data, err := store.ReadFile(ctx, "/crontab")
	require.NoError(t, err)
	assert.Equal(t, "* * * * * b\n", string(data))

	exists, err := afero.Exists(fsys, "/crontab.tmp")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestStore_WriteNotWritable(t *testing.T) {
	base := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(base, "/crontab", []byte("* * * * * a\n"), 0o644))

	store := NewStore(afero.NewReadOnlyFs(base))
	err := store.Write(context.Background(), "/crontab", "* * * * * b\n")
	assert.ErrorIs(t, err, domain.ErrNotWritable)

	data, err := afero.ReadFile(base, "/crontab")
	require.NoError(t, err)
	assert.Equal(t, "* * * * * a\n", string(data))
}

func TestProber_Probe(t *testing.T) {
	fsys := afero.NewMemMapFs()
	mtime := time.Date(2026, 3, 1, 4, 5, 0, 0, time.UTC)
	require.NoError(t, afero.WriteFile(fsys, "/var/log/job.log", []byte("hello"), 0o644))
	require.NoError(t, fsys.Chtimes("/var/log/job.log", mtime, mtime))

	prober := NewProber(fsys)

	stat, ok, err := prober.Probe("/var/log/job.log")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, int64(5), stat.Size)
	assert.True(t, mtime.Equal(stat.ModTime))

	_, ok, err = prober.Probe("/var/log/missing.log")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestExpandTilde(t *testing.T) {
	t.Setenv("HOME", "/home/tester")
	assert.Equal(t, "/etc/crontab", ExpandTilde("/etc/crontab"))
	assert.Equal(t, "/home/tester/crontab", ExpandTilde("~/crontab"))
}
