package domain

import (
	"time"
)

// blankField is the placeholder a special job accepts for schedule fields.
const blankField = " "

// Timing is the schedule part of a job: either a Schedule or a Special.
type Timing interface {
	// Fields returns the schedule tokens in line order.
	Fields() []string
	isTiming()
}

// Schedule holds the five classic cron fields.
type Schedule struct {
	Minute     string
	Hour       string
	DayOfMonth string
	Month      string
	DayOfWeek  string
}

// Fields implements Timing.
func (s Schedule) Fields() []string {
	return []string{s.Minute, s.Hour, s.DayOfMonth, s.Month, s.DayOfWeek}
}

func (Schedule) isTiming() {}

// Validate checks every field against its grammar.
func (s Schedule) Validate() error {
	for i, value := range s.Fields() {
		kind := ScheduleFields[i]
		if !ValidateField(kind, value) {
			return &FieldError{Field: kind, Value: value}
		}
	}
	return nil
}

// Special is a shortcut token such as "@daily".
type Special string

// Fields implements Timing.
func (s Special) Fields() []string { return []string{string(s)} }

func (Special) isTiming() {}

// JobStatus is derived from the probed log and error file sizes.
type JobStatus string

const (
	StatusUnknown JobStatus = "unknown"
	StatusSuccess JobStatus = "success"
	StatusError   JobStatus = "error"
)

// RunInfo is what a probe of the log and error files found.
// Nil sizes mean the file did not exist when probed.
type RunInfo struct {
	LastRun   time.Time
	LogSize   *int64
	ErrorSize *int64
}

// Status computes the run status from the probed sizes.
func (r RunInfo) Status() JobStatus {
	switch {
	case r.LogSize == nil && r.ErrorSize == nil:
		return StatusUnknown
	case r.ErrorSize == nil || *r.ErrorSize == 0:
		return StatusSuccess
	default:
		return StatusError
	}
}

// Job is one crontab entry. Its timing is either a Schedule or a Special;
// the remaining payload is shared by both.
type Job struct {
	timing    Timing
	command   string
	comment   string
	logFile   string
	errorFile string
	run       RunInfo
}

// NewScheduledJob returns a job using the five classic fields.
func NewScheduledJob(s Schedule) (*Job, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &Job{timing: s}, nil
}

// NewSpecialJob returns a job using a shortcut token.
func NewSpecialJob(token string) (*Job, error) {
	if !IsSpecialToken(token) {
		return nil, &FieldError{Field: FieldSpecial, Value: token}
	}
	return &Job{timing: Special(token)}, nil
}

// Timing returns the job schedule variant.
func (j *Job) Timing() Timing { return j.timing }

// IsSpecial is true when the job uses a shortcut token.
func (j *Job) IsSpecial() bool {
	_, ok := j.timing.(Special)
	return ok
}

// Schedule returns the five fields and true for scheduled jobs.
func (j *Job) Schedule() (Schedule, bool) {
	s, ok := j.timing.(Schedule)
	return s, ok
}

// Special returns the token for special jobs, or "".
func (j *Job) Special() string {
	if s, ok := j.timing.(Special); ok {
		return string(s)
	}
	return ""
}

func (j *Job) Command() string   { return j.command }
func (j *Job) Comment() string   { return j.comment }
func (j *Job) LogFile() string   { return j.logFile }
func (j *Job) ErrorFile() string { return j.errorFile }
func (j *Job) RunInfo() RunInfo  { return j.run }

// LastRunTime returns the last probed run time; zero when unknown.
func (j *Job) LastRunTime() time.Time { return j.run.LastRun }

// Status returns the run status derived from the probed file sizes.
func (j *Job) Status() JobStatus { return j.run.Status() }

// SetMinute sets the minute field.
func (j *Job) SetMinute(v string) error { return j.setField(FieldMinute, v) }

// SetHour sets the hour field.
func (j *Job) SetHour(v string) error { return j.setField(FieldHour, v) }

// SetDayOfMonth sets the day-of-month field.
func (j *Job) SetDayOfMonth(v string) error { return j.setField(FieldDayOfMonth, v) }

// SetMonth sets the month field.
func (j *Job) SetMonth(v string) error { return j.setField(FieldMonth, v) }

// SetDayOfWeek sets the day-of-week field.
func (j *Job) SetDayOfWeek(v string) error { return j.setField(FieldDayOfWeek, v) }

func (j *Job) setField(kind FieldKind, v string) error {
	if j.IsSpecial() {
		// special jobs carry no schedule values, only the blank placeholder
		if v == blankField {
			return nil
		}
		return &FieldError{Field: kind, Value: v, Reason: "job uses a special schedule"}
	}
	if !ValidateField(kind, v) {
		return &FieldError{Field: kind, Value: v}
	}

	s, _ := j.timing.(Schedule)
	switch kind {
	case FieldMinute:
		s.Minute = v
	case FieldHour:
		s.Hour = v
	case FieldDayOfMonth:
		s.DayOfMonth = v
	case FieldMonth:
		s.Month = v
	case FieldDayOfWeek:
		s.DayOfWeek = v
	}
	j.timing = s
	return nil
}

// SetSchedule replaces the timing with the five given fields.
func (j *Job) SetSchedule(s Schedule) error {
	if err := s.Validate(); err != nil {
		return err
	}
	j.timing = s
	return nil
}

// SetSpecial replaces the timing with a shortcut token.
func (j *Job) SetSpecial(token string) error {
	if !IsSpecialToken(token) {
		return &FieldError{Field: FieldSpecial, Value: token}
	}
	j.timing = Special(token)
	return nil
}

// SetCommand sets the command. Blank commands are rejected.
func (j *Job) SetCommand(command string) error {
	if !ValidateField(FieldCommand, command) {
		return &FieldError{Field: FieldCommand, Value: command}
	}
	j.command = command
	return nil
}

// SetComment sets the trailing comment; "" removes it.
func (j *Job) SetComment(comment string) { j.comment = comment }

// SetLogFile sets the stdout redirect target; "" removes it.
func (j *Job) SetLogFile(path string) { j.logFile = path }

// SetErrorFile sets the stderr redirect target; "" removes it.
func (j *Job) SetErrorFile(path string) { j.errorFile = path }

// SetLastRunTime overrides the last run time.
func (j *Job) SetLastRunTime(t time.Time) { j.run.LastRun = t }

// SetRunInfo replaces the probe results.
func (j *Job) SetRunInfo(info RunInfo) { j.run = info }

// Clone returns an independent copy of the job.
func (j *Job) Clone() *Job {
	c := *j
	if j.run.LogSize != nil {
		size := *j.run.LogSize
		c.run.LogSize = &size
	}
	if j.run.ErrorSize != nil {
		size := *j.run.ErrorSize
		c.run.ErrorSize = &size
	}
	return &c
}
