package domain

import "strings"

// Render returns the job as a single crontab line.
func (j *Job) Render() (string, error) {
	if j.command == "" {
		return "", ErrMissingCommand
	}

	var parts []string
	switch t := j.timing.(type) {
	case Schedule:
		parts = append(parts, t.Fields()...)
	case Special:
		parts = append(parts, string(t))
	}

	parts = append(parts, j.command)
	parts = appendIf(parts, j.renderLog())
	parts = appendIf(parts, j.renderError())
	parts = appendIf(parts, j.renderComment())

	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

// String renders the job for display. It never fails: a job that cannot be
// rendered comes out as a "# <error>" line.
func (j *Job) String() string {
	line, err := j.Render()
	if err != nil {
		return "# " + err.Error()
	}
	return line
}

func (j *Job) renderLog() string {
	if j.logFile == "" {
		return ""
	}
	return ">> " + j.logFile
}

func (j *Job) renderError() string {
	switch {
	case j.errorFile != "":
		return "2>> " + j.errorFile
	case j.logFile != "":
		return "2>&1"
	default:
		return ""
	}
}

func (j *Job) renderComment() string {
	if j.comment == "" {
		return ""
	}
	return "# " + j.comment
}

func appendIf(parts []string, s string) []string {
	if s == "" {
		return parts
	}
	return append(parts, s)
}
