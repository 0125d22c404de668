package domain

import (
	"fmt"
	"strings"
)

// Suffix delimiters peeled off the command, in this order.
const (
	commentDelimiter  = "#"
	errorDelimiter    = "2>>"
	logDelimiter      = ">>"
	scheduleFieldSize = 5
)

// ParseJob turns one crontab line into a Job. It does not touch the
// filesystem: the returned job has no run info.
//
// Suffixes are peeled from the joined command in a fixed order, each step
// working on what the previous one left: the comment after the first '#',
// then the error file after the first "2>>", then the first token after
// the first ">>". A delimiter at the very start of the command is not a
// suffix.
func ParseJob(line string) (*Job, error) {
	parts := strings.Fields(line)

	var (
		job     *Job
		command string
		err     error
	)
	switch {
	case len(parts) > 1 && IsSpecialToken(parts[0]):
		if job, err = NewSpecialJob(parts[0]); err != nil {
			return nil, err
		}
		command = strings.Join(parts[1:], " ")
	case len(parts) < scheduleFieldSize:
		return nil, fmt.Errorf("%w: wrong job number of arguments, expected at least %d fields, got %d",
			ErrMalformedLine, scheduleFieldSize, len(parts))
	default:
		job, err = NewScheduledJob(Schedule{
			Minute:     parts[0],
			Hour:       parts[1],
			DayOfMonth: parts[2],
			Month:      parts[3],
			DayOfWeek:  parts[4],
		})
		if err != nil {
			return nil, err
		}
		command = strings.Join(parts[scheduleFieldSize:], " ")
	}

	command, comment, hasComment := cutSuffix(command, commentDelimiter)
	if hasComment {
		job.SetComment(strings.TrimSpace(comment))
	}

	command, errorFile, hasError := cutSuffix(command, errorDelimiter)
	if hasError {
		job.SetErrorFile(strings.TrimSpace(errorFile))
	}

	command, logPart, hasLog := cutSuffix(command, logDelimiter)
	if hasLog {
		if fields := strings.Fields(logPart); len(fields) > 0 {
			job.SetLogFile(fields[0])
		}
	}

	if err := job.SetCommand(strings.TrimSpace(command)); err != nil {
		return nil, err
	}
	return job, nil
}

// cutSuffix splits s around the first delimiter found after index 0.
func cutSuffix(s, delimiter string) (before, after string, found bool) {
	i := strings.Index(s, delimiter)
	if i <= 0 {
		return s, "", false
	}
	return s[:i], s[i+len(delimiter):], true
}
