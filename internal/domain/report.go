package domain

// LoadResult is the outcome of loading a crontab file. Problems holds the
// lines skipped by a lenient load.
type LoadResult struct {
	Crontab  *Crontab
	Problems []*LineError
}

// LintSeverity ranks a lint issue.
type LintSeverity string

const (
	SeverityError   LintSeverity = "error"
	SeverityWarning LintSeverity = "warning"
)

// LintIssue is one finding about a crontab line.
type LintIssue struct {
	Line     int
	Text     string
	Severity LintSeverity
	Err      error
}

// Message returns the issue text without the line context.
func (i LintIssue) Message() string {
	if i.Err == nil {
		return ""
	}
	return i.Err.Error()
}

// LintReport collects the issues found in one file.
type LintReport struct {
	Path      string
	Jobs      int
	Variables int
	Issues    []LintIssue
}

// HasErrors reports whether any issue has error severity.
func (r *LintReport) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}

// JobOutput holds the captured output of a job. A missing file leaves
// the matching Found flag false.
type JobOutput struct {
	Job        *Job
	Log        string
	LogFound   bool
	Error      string
	ErrorFound bool
}
