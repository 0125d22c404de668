// Package crontab implements the crontab file use cases.
package crontab

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/cronfile/internal/boundaries/out"
	"github.com/bnema/cronfile/internal/domain"
)

// Parser turns raw lines into jobs and enriches them with what the
// prober finds about their log and error files.
type Parser struct {
	prober out.FileProber
}

// NewParser creates a parser. A nil prober disables probing.
func NewParser(prober out.FileProber) *Parser {
	return &Parser{prober: prober}
}

// ParseJob parses line and probes the referenced files.
func (p *Parser) ParseJob(ctx context.Context, line string) (*domain.Job, error) {
	job, err := domain.ParseJob(line)
	if err != nil {
		return nil, err
	}
	if err := p.Probe(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Probe refreshes the run info of job. Files that do not exist leave their
// size unset; the last run is the latest modification time found.
func (p *Parser) Probe(ctx context.Context, job *domain.Job) error {
	if p.prober == nil {
		return nil
	}
	log := zerolog.Ctx(ctx)

	var info domain.RunInfo
	if path := job.LogFile(); path != "" {
		stat, ok, err := p.prober.Probe(path)
		if err != nil {
			return fmt.Errorf("probe log file %s: %w", path, err)
		}
		if ok {
			info.LogSize = &stat.Size
			info.LastRun = stat.ModTime
		}
	}
	if path := job.ErrorFile(); path != "" {
		stat, ok, err := p.prober.Probe(path)
		if err != nil {
			return fmt.Errorf("probe error file %s: %w", path, err)
		}
		if ok {
			info.ErrorSize = &stat.Size
			if stat.ModTime.After(info.LastRun) {
				info.LastRun = stat.ModTime
			}
		}
	}

	job.SetRunInfo(info)
	log.Debug().
		Str("action", "probe").
		Str("status", string(info.Status())).
		Msg("job files probed")
	return nil
}
