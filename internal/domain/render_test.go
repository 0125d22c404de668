package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobRender(t *testing.T) {
	tests := []struct {
		name  string
		build func(t *testing.T) *Job
		want  string
	}{
		{
			name: "scheduled command only",
			build: func(t *testing.T) *Job {
				job, err := NewScheduledJob(everyMinute())
				require.NoError(t, err)
				require.NoError(t, job.SetCommand("cmd"))
				return job
			},
			want: "* * * * * cmd",
		},
		{
			name: "log file adds merge marker",
			build: func(t *testing.T) *Job {
				job, err := NewScheduledJob(everyMinute())
				require.NoError(t, err)
				require.NoError(t, job.SetCommand("cmd"))
				job.SetLogFile("/var/log/cmd.log")
				return job
			},
			want: "* * * * * cmd >> /var/log/cmd.log 2>&1",
		},
		{
			name: "error file without log file",
			build: func(t *testing.T) *Job {
				job, err := NewScheduledJob(everyMinute())
				require.NoError(t, err)
				require.NoError(t, job.SetCommand("cmd"))
				job.SetErrorFile("/var/log/cmd.err")
				return job
			},
			want: "* * * * * cmd 2>> /var/log/cmd.err",
		},
		{
			name: "special with everything",
			build: func(t *testing.T) *Job {
				job, err := NewSpecialJob("@weekly")
				require.NoError(t, err)
				require.NoError(t, job.SetCommand("report"))
				job.SetLogFile("/tmp/r.log")
				job.SetErrorFile("/tmp/r.err")
				job.SetComment("weekly report")
				return job
			},
			want: "@weekly report >> /tmp/r.log 2>> /tmp/r.err # weekly report",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := tt.build(t).Render()
			require.NoError(t, err)
			assert.Equal(t, tt.want, line)
		})
	}
}

func TestJobRenderMissingCommand(t *testing.T) {
	job, err := NewScheduledJob(everyMinute())
	require.NoError(t, err)

	_, err = job.Render()
	assert.ErrorIs(t, err, ErrMissingCommand)
	assert.Equal(t, "# "+ErrMissingCommand.Error(), job.String())
}

func TestParseJobCommentIsLastElement(t *testing.T) {
	job, err := ParseJob("0 1 * * * cmd >> /tmp/a.log # some text")
	require.NoError(t, err)
	assert.Equal(t, "some text", job.Comment())

	line, err := job.Render()
	require.NoError(t, err)
	assert.Equal(t, "0 1 * * * cmd >> /tmp/a.log 2>&1 # some text", line)
}
