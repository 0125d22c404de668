package domain

import (
	"fmt"
	"strings"
)

// Crontab is the ordered content of one crontab file: variables and jobs.
// Both sequences keep insertion order.
type Crontab struct {
	variables []*Variable
	jobs      []*Job
}

// NewCrontab returns an empty crontab.
func NewCrontab() *Crontab {
	return &Crontab{}
}

// Jobs returns the jobs in file order.
func (c *Crontab) Jobs() []*Job {
	return append([]*Job(nil), c.jobs...)
}

// Variables returns the variables in file order.
func (c *Crontab) Variables() []*Variable {
	return append([]*Variable(nil), c.variables...)
}

// AddJob appends a job. A job with the same hash is replaced in place and
// AddJob reports false.
func (c *Crontab) AddJob(job *Job) bool {
	hash := job.Hash()
	for i, existing := range c.jobs {
		if existing.Hash() == hash {
			c.jobs[i] = job
			return false
		}
	}
	c.jobs = append(c.jobs, job)
	return true
}

// RemoveJob removes the job with the given full hash.
func (c *Crontab) RemoveJob(hash string) error {
	for i, job := range c.jobs {
		if job.Hash() == hash {
			c.jobs = append(c.jobs[:i], c.jobs[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrJobNotFound, hash)
}

// RemoveAllJobs drops every job and keeps the variables.
func (c *Crontab) RemoveAllJobs() {
	c.jobs = nil
}

// FindJobs returns the jobs whose hash starts with prefix.
func (c *Crontab) FindJobs(prefix string) []*Job {
	var found []*Job
	for _, job := range c.jobs {
		if strings.HasPrefix(job.Hash(), prefix) {
			found = append(found, job)
		}
	}
	return found
}

// FindJob resolves a hash prefix to exactly one job.
func (c *Crontab) FindJob(prefix string) (*Job, error) {
	if prefix == "" {
		return nil, fmt.Errorf("%w: empty hash", ErrJobNotFound)
	}
	found := c.FindJobs(prefix)
	switch len(found) {
	case 0:
		return nil, fmt.Errorf("%w: %s", ErrJobNotFound, prefix)
	case 1:
		return found[0], nil
	default:
		return nil, fmt.Errorf("%w: %s (%d matches)", ErrAmbiguousHash, prefix, len(found))
	}
}

// AddVariable appends a variable. A variable with the same name is
// replaced in place and AddVariable reports false.
func (c *Crontab) AddVariable(v *Variable) bool {
	for i, existing := range c.variables {
		if existing.Name() == v.Name() {
			c.variables[i] = v
			return false
		}
	}
	c.variables = append(c.variables, v)
	return true
}

// Variable returns the variable with the given name.
func (c *Crontab) Variable(name string) (*Variable, bool) {
	for _, v := range c.variables {
		if v.Name() == name {
			return v, true
		}
	}
	return nil, false
}

// RemoveVariable removes the variable with the given name.
func (c *Crontab) RemoveVariable(name string) error {
	for i, v := range c.variables {
		if v.Name() == name {
			c.variables = append(c.variables[:i], c.variables[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrVariableNotFound, name)
}

// Render returns the file content: variables first, then jobs, one per
// line, with a single trailing newline.
func (c *Crontab) Render() (string, error) {
	lines := make([]string, 0, len(c.variables)+len(c.jobs))
	for _, v := range c.variables {
		lines = append(lines, v.Render())
	}
	for _, job := range c.jobs {
		line, err := job.Render()
		if err != nil {
			return "", fmt.Errorf("render job %s: %w", ShortHash(job.Hash()), err)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n") + "\n", nil
}
