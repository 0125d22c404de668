package in

import (
	"context"

	"github.com/bnema/cronfile/internal/domain"
)

// CrontabService defines the contract for working with crontab files.
type CrontabService interface {
	// Load reads and parses a crontab file. In strict mode the first bad
	// line aborts the load; otherwise bad lines are reported in the result.
	Load(ctx context.Context, path string) (*domain.LoadResult, error)

	// Save renders the crontab and writes it to path.
	Save(ctx context.Context, path string, crontab *domain.Crontab) error

	// Lint checks every line of a file without modifying it.
	Lint(ctx context.Context, path string) (*domain.LintReport, error)

	// Format renders the file in canonical form. When write is true the
	// result replaces the file if it differs. It reports whether it differs.
	Format(ctx context.Context, path string, write bool) (string, bool, error)

	// FindJob returns the job whose hash starts with prefix.
	FindJob(ctx context.Context, path, prefix string) (*domain.Job, error)

	// AddJob parses line and adds it to the file. An existing job with the
	// same hash is replaced.
	AddJob(ctx context.Context, path, line string) (*domain.Job, error)

	// RemoveJob removes the job whose hash starts with prefix.
	RemoveJob(ctx context.Context, path, prefix string) (*domain.Job, error)

	// SetVariable adds or replaces a variable.
	SetVariable(ctx context.Context, path, name, value string) error

	// UnsetVariable removes a variable.
	UnsetVariable(ctx context.Context, path, name string) error

	// JobOutput reads the log and error files of a job.
	JobOutput(ctx context.Context, job *domain.Job) (*domain.JobOutput, error)

	// ExportEnv writes the file's variables to a dotenv file.
	ExportEnv(ctx context.Context, path, envPath string) (int, error)

	// ImportEnv sets the variables of a dotenv file into the crontab.
	ImportEnv(ctx context.Context, path, envPath string) (int, error)

	// Watch lints the file now and after every change until ctx is done.
	Watch(ctx context.Context, path string, onReport func(*domain.LintReport, error)) error
}
