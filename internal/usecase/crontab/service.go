package crontab

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/bnema/cronfile/internal/boundaries/in"
	"github.com/bnema/cronfile/internal/boundaries/out"
	"github.com/bnema/cronfile/internal/domain"
)

var _ in.CrontabService = (*Service)(nil)

// Options tunes how the service reads files.
type Options struct {
	// Strict aborts a load on the first bad line.
	Strict bool
	// Semantic enables the schedule checker during lint.
	Semantic bool
}

// Service implements the CrontabService interface.
type Service struct {
	store   out.CrontabStore
	parser  *Parser
	envFile out.EnvFile
	watcher out.FileWatcher
	checker out.ScheduleChecker
	opts    Options
}

// NewService creates a crontab service. envFile, watcher and checker may
// be nil when the matching features are not needed.
func NewService(
	store out.CrontabStore,
	parser *Parser,
	envFile out.EnvFile,
	watcher out.FileWatcher,
	checker out.ScheduleChecker,
	opts Options,
) *Service {
	if parser == nil {
		parser = NewParser(nil)
	}
	return &Service{
		store:   store,
		parser:  parser,
		envFile: envFile,
		watcher: watcher,
		checker: checker,
		opts:    opts,
	}
}

func logger(ctx context.Context, action string) zerolog.Logger {
	return zerolog.Ctx(ctx).With().
		Str("layer", "usecase").
		Str("usecase", "crontab").
		Str("action", action).
		Logger()
}

// Load reads and parses a crontab file.
func (s *Service) Load(ctx context.Context, path string) (*domain.LoadResult, error) {
	return s.load(ctx, path, s.opts.Strict)
}

func (s *Service) load(ctx context.Context, path string, strict bool) (*domain.LoadResult, error) {
	log := logger(ctx, "Load")

	lines, err := s.store.ReadLines(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read crontab %s: %w", path, err)
	}

	result := &domain.LoadResult{Crontab: domain.NewCrontab()}
	for _, line := range lines {
		job, variable, err := s.decode(ctx, line.Text)
		if err != nil {
			lineErr := &domain.LineError{Line: line.Number, Text: line.Text, Err: err}
			if strict {
				return nil, lineErr
			}
			log.Warn().Err(err).Int("line", line.Number).Msg("skipping invalid line")
			result.Problems = append(result.Problems, lineErr)
			continue
		}
		if variable != nil {
			result.Crontab.AddVariable(variable)
			continue
		}
		result.Crontab.AddJob(job)
	}

	log.Debug().
		Str("path", path).
		Int("jobs", len(result.Crontab.Jobs())).
		Int("variables", len(result.Crontab.Variables())).
		Int("problems", len(result.Problems)).
		Msg("crontab loaded")
	return result, nil
}

// loadForEdit loads strictly so that a rewrite never drops lines. A file
// that does not exist yet is an empty crontab.
func (s *Service) loadForEdit(ctx context.Context, path string) (*domain.Crontab, error) {
	result, err := s.load(ctx, path, true)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.NewCrontab(), nil
	}
	if err != nil {
		return nil, err
	}
	return result.Crontab, nil
}

func (s *Service) decode(ctx context.Context, text string) (*domain.Job, *domain.Variable, error) {
	if domain.LooksLikeVariable(text) {
		variable, err := domain.ParseVariable(text)
		return nil, variable, err
	}
	job, err := s.parser.ParseJob(ctx, text)
	return job, nil, err
}

// Save renders the crontab and writes it to path.
func (s *Service) Save(ctx context.Context, path string, crontab *domain.Crontab) error {
	content, err := crontab.Render()
	if err != nil {
		return fmt.Errorf("render crontab: %w", err)
	}
	if err := s.store.Write(ctx, path, content); err != nil {
		return fmt.Errorf("save crontab %s: %w", path, err)
	}

	log := logger(ctx, "Save")
	log.Debug().Str("path", path).Int("bytes", len(content)).Msg("crontab saved")
	return nil
}

// Lint checks every line of a file without modifying it.
func (s *Service) Lint(ctx context.Context, path string) (*domain.LintReport, error) {
	log := logger(ctx, "Lint")

	lines, err := s.store.ReadLines(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("read crontab %s: %w", path, err)
	}

	report := &domain.LintReport{Path: path}
	crontab := domain.NewCrontab()
	issue := func(line out.SourceLine, severity domain.LintSeverity, err error) {
		report.Issues = append(report.Issues, domain.LintIssue{
			Line:     line.Number,
			Text:     line.Text,
			Severity: severity,
			Err:      err,
		})
	}

	for _, line := range lines {
		job, variable, err := s.decode(ctx, line.Text)
		if err != nil {
			issue(line, domain.SeverityError, err)
			continue
		}
		if variable != nil {
			if !crontab.AddVariable(variable) {
				issue(line, domain.SeverityWarning, fmt.Errorf("variable %s is set more than once", variable.Name()))
			}
			continue
		}
		if !crontab.AddJob(job) {
			issue(line, domain.SeverityWarning, fmt.Errorf("duplicate of job %s", domain.ShortHash(job.Hash())))
		}
		if s.opts.Semantic && s.checker != nil {
			expression := strings.Join(job.Timing().Fields(), " ")
			if err := s.checker.Check(expression); err != nil {
				issue(line, domain.SeverityError, fmt.Errorf("schedule %q: %w", expression, err))
			}
		}
	}

	report.Jobs = len(crontab.Jobs())
	report.Variables = len(crontab.Variables())
	log.Debug().
		Str("path", path).
		Int("issues", len(report.Issues)).
		Bool("has_errors", report.HasErrors()).
		Msg("crontab linted")
	return report, nil
}

// Format renders the file in canonical form and optionally writes it back.
func (s *Service) Format(ctx context.Context, path string, write bool) (string, bool, error) {
	result, err := s.load(ctx, path, true)
	if err != nil {
		return "", false, err
	}
	rendered, err := result.Crontab.Render()
	if err != nil {
		return "", false, fmt.Errorf("render crontab: %w", err)
	}

	current, err := s.store.ReadFile(ctx, path)
	if err != nil {
		return "", false, fmt.Errorf("read crontab %s: %w", path, err)
	}
	changed := string(current) != rendered
	if write && changed {
		if err := s.store.Write(ctx, path, rendered); err != nil {
			return "", false, fmt.Errorf("save crontab %s: %w", path, err)
		}
		log := logger(ctx, "Format")
		log.Info().Str("path", path).Msg("crontab formatted")
	}
	return rendered, changed, nil
}

// FindJob returns the job whose hash starts with prefix.
func (s *Service) FindJob(ctx context.Context, path, prefix string) (*domain.Job, error) {
	result, err := s.Load(ctx, path)
	if err != nil {
		return nil, err
	}
	return result.Crontab.FindJob(prefix)
}

// AddJob parses line and adds it to the file.
func (s *Service) AddJob(ctx context.Context, path, line string) (*domain.Job, error) {
	if domain.LooksLikeVariable(line) {
		return nil, fmt.Errorf("%w: line is a variable assignment", domain.ErrMalformedLine)
	}
	job, err := s.parser.ParseJob(ctx, line)
	if err != nil {
		return nil, err
	}

	crontab, err := s.loadForEdit(ctx, path)
	if err != nil {
		return nil, err
	}
	added := crontab.AddJob(job)
	if err := s.Save(ctx, path, crontab); err != nil {
		return nil, err
	}

	log := logger(ctx, "AddJob")
	log.Info().
		Str("hash", domain.ShortHash(job.Hash())).
		Bool("replaced", !added).
		Msg("job saved")
	return job, nil
}

// RemoveJob removes the job whose hash starts with prefix.
func (s *Service) RemoveJob(ctx context.Context, path, prefix string) (*domain.Job, error) {
	crontab, err := s.loadForEdit(ctx, path)
	if err != nil {
		return nil, err
	}
	job, err := crontab.FindJob(prefix)
	if err != nil {
		return nil, err
	}
	if err := crontab.RemoveJob(job.Hash()); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, path, crontab); err != nil {
		return nil, err
	}

	log := logger(ctx, "RemoveJob")
	log.Info().Str("hash", domain.ShortHash(job.Hash())).Msg("job removed")
	return job, nil
}

// SetVariable adds or replaces a variable.
func (s *Service) SetVariable(ctx context.Context, path, name, value string) error {
	variable, err := domain.NewVariable(name, value)
	if err != nil {
		return err
	}
	crontab, err := s.loadForEdit(ctx, path)
	if err != nil {
		return err
	}
	crontab.AddVariable(variable)
	return s.Save(ctx, path, crontab)
}

// UnsetVariable removes a variable.
func (s *Service) UnsetVariable(ctx context.Context, path, name string) error {
	crontab, err := s.loadForEdit(ctx, path)
	if err != nil {
		return err
	}
	if err := crontab.RemoveVariable(name); err != nil {
		return err
	}
	return s.Save(ctx, path, crontab)
}

// JobOutput reads the log and error files of a job.
func (s *Service) JobOutput(ctx context.Context, job *domain.Job) (*domain.JobOutput, error) {
	output := &domain.JobOutput{Job: job}
	var err error
	if path := job.LogFile(); path != "" {
		output.Log, output.LogFound, err = s.readOutput(ctx, path)
		if err != nil {
			return nil, err
		}
	}
	if path := job.ErrorFile(); path != "" {
		output.Error, output.ErrorFound, err = s.readOutput(ctx, path)
		if err != nil {
			return nil, err
		}
	}
	return output, nil
}

func (s *Service) readOutput(ctx context.Context, path string) (string, bool, error) {
	data, err := s.store.ReadFile(ctx, path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read job output %s: %w", path, err)
	}
	return string(data), true, nil
}

var errEnvFileDisabled = errors.New("env file support is not configured")

// ExportEnv writes the file's variables to a dotenv file.
func (s *Service) ExportEnv(ctx context.Context, path, envPath string) (int, error) {
	if s.envFile == nil {
		return 0, errEnvFileDisabled
	}
	result, err := s.Load(ctx, path)
	if err != nil {
		return 0, err
	}

	vars := make(map[string]string)
	for _, variable := range result.Crontab.Variables() {
		vars[variable.Name()] = variable.Value()
	}
	if err := s.envFile.Write(ctx, envPath, vars); err != nil {
		return 0, fmt.Errorf("write env file %s: %w", envPath, err)
	}

	log := logger(ctx, "ExportEnv")
	log.Info().Str("env_file", envPath).Int("variables", len(vars)).Msg("variables exported")
	return len(vars), nil
}

// ImportEnv sets the variables of a dotenv file into the crontab.
func (s *Service) ImportEnv(ctx context.Context, path, envPath string) (int, error) {
	if s.envFile == nil {
		return 0, errEnvFileDisabled
	}
	vars, err := s.envFile.Read(ctx, envPath)
	if err != nil {
		return 0, fmt.Errorf("read env file %s: %w", envPath, err)
	}
	crontab, err := s.loadForEdit(ctx, path)
	if err != nil {
		return 0, err
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		variable, err := domain.NewVariable(name, vars[name])
		if err != nil {
			return 0, fmt.Errorf("import %s: %w", name, err)
		}
		crontab.AddVariable(variable)
	}
	if err := s.Save(ctx, path, crontab); err != nil {
		return 0, err
	}

	log := logger(ctx, "ImportEnv")
	log.Info().Str("env_file", envPath).Int("variables", len(names)).Msg("variables imported")
	return len(names), nil
}

// Watch lints the file now and after every change until ctx is done.
func (s *Service) Watch(ctx context.Context, path string, onReport func(*domain.LintReport, error)) error {
	if s.watcher == nil {
		return errors.New("file watching is not configured")
	}
	onReport(s.Lint(ctx, path))
	return s.watcher.Watch(ctx, path, func() {
		onReport(s.Lint(ctx, path))
	})
}
