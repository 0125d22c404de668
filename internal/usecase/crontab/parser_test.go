package crontab

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/cronfile/internal/adapters/out/filesystem"
	"github.com/bnema/cronfile/internal/boundaries/out"
	"github.com/bnema/cronfile/internal/boundaries/out/mocks"
	"github.com/bnema/cronfile/internal/domain"
	"github.com/bnema/cronfile/internal/testutils"
)

func writeFileAt(t *testing.T, fsys afero.Fs, path, content string, mtime time.Time) {
	t.Helper()
	testutils.WriteFile(t, fsys, path, content)
	testutils.SetModTime(t, fsys, path, mtime)
}

func TestParser_ProbeStatus(t *testing.T) {
	early := time.Date(2026, 1, 10, 3, 0, 0, 0, time.UTC)
	late := early.Add(2 * time.Hour)

	tests := []struct {
		name       string
		files      map[string]time.Time
		contents   map[string]string
		line       string
		wantStatus domain.JobStatus
		wantRun    time.Time
	}{
		{
			name:       "missing log file",
			line:       "* * * * * cmd >> /nonexistent/file.log",
			wantStatus: domain.StatusUnknown,
		},
		{
			name:       "log only",
			files:      map[string]time.Time{"/log/a.log": early},
			contents:   map[string]string{"/log/a.log": "ok"},
			line:       "* * * * * cmd >> /log/a.log",
			wantStatus: domain.StatusSuccess,
			wantRun:    early,
		},
		{
			name:       "empty error file",
			files:      map[string]time.Time{"/log/a.log": early, "/log/a.err": late},
			contents:   map[string]string{"/log/a.log": "ok", "/log/a.err": ""},
			line:       "* * * * * cmd >> /log/a.log 2>> /log/a.err",
			wantStatus: domain.StatusSuccess,
			wantRun:    late,
		},
		{
			name:       "error file with content",
			files:      map[string]time.Time{"/log/a.log": late, "/log/a.err": early},
			contents:   map[string]string{"/log/a.log": "ok", "/log/a.err": "boom"},
			line:       "* * * * * cmd >> /log/a.log 2>> /log/a.err",
			wantStatus: domain.StatusError,
			wantRun:    late,
		},
		{
			name:       "error file only",
			files:      map[string]time.Time{"/log/a.err": early},
			contents:   map[string]string{"/log/a.err": "boom"},
			line:       "@hourly cmd 2>> /log/a.err",
			wantStatus: domain.StatusError,
			wantRun:    early,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := afero.NewMemMapFs()
			for path, mtime := range tt.files {
				writeFileAt(t, fsys, path, tt.contents[path], mtime)
			}

			job, err := NewParser(filesystem.NewProber(fsys)).ParseJob(testutils.TestContext(t), tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, job.Status())
			assert.True(t, tt.wantRun.Equal(job.LastRunTime()), "last run %s", job.LastRunTime())
		})
	}
}

func TestParser_ProbeSizes(t *testing.T) {
	fsys := afero.NewMemMapFs()
	mtime := time.Date(2026, 1, 10, 3, 0, 0, 0, time.UTC)
	writeFileAt(t, fsys, "/log/a.log", "twelve bytes", mtime)

	job, err := NewParser(filesystem.NewProber(fsys)).ParseJob(testutils.TestContext(t), "0 0 * * * cmd >> /log/a.log 2>> /log/missing.err")
	require.NoError(t, err)

	info := job.RunInfo()
	require.NotNil(t, info.LogSize)
	assert.Equal(t, int64(12), *info.LogSize)
	assert.Nil(t, info.ErrorSize)
}

func TestParser_NilProberSkipsProbe(t *testing.T) {
	job, err := NewParser(nil).ParseJob(testutils.TestContext(t), "* * * * * cmd >> /log/a.log")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusUnknown, job.Status())
}

func TestParser_ProbeErrorPropagates(t *testing.T) {
	prober := &mocks.MockFileProber{}
	prober.On("Probe", "/log/a.log").Return(out.FileStat{}, false, errors.New("permission denied"))

	_, err := NewParser(prober).ParseJob(testutils.TestContext(t), "* * * * * cmd >> /log/a.log")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "/log/a.log")
	prober.AssertExpectations(t)
}

func TestParser_ParseErrorSkipsProbe(t *testing.T) {
	prober := &mocks.MockFileProber{}

	_, err := NewParser(prober).ParseJob(testutils.TestContext(t), "0 25 * * * cmd >> /log/a.log")
	assert.ErrorIs(t, err, domain.ErrInvalidField)
	prober.AssertNotCalled(t, "Probe", mock.Anything)
}
