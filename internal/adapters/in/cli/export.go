package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/cronfile/internal/domain"
)

type exportDocument struct {
	Path      string           `json:"path" yaml:"path"`
	Variables []exportVariable `json:"variables" yaml:"variables"`
	Jobs      []exportJob      `json:"jobs" yaml:"jobs"`
}

type exportVariable struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

type exportJob struct {
	Hash      string     `json:"hash" yaml:"hash"`
	Line      string     `json:"line" yaml:"line"`
	Schedule  string     `json:"schedule,omitempty" yaml:"schedule,omitempty"`
	Special   string     `json:"special,omitempty" yaml:"special,omitempty"`
	Command   string     `json:"command" yaml:"command"`
	Comment   string     `json:"comment,omitempty" yaml:"comment,omitempty"`
	LogFile   string     `json:"log_file,omitempty" yaml:"log_file,omitempty"`
	ErrorFile string     `json:"error_file,omitempty" yaml:"error_file,omitempty"`
	Status    string     `json:"status" yaml:"status"`
	LastRun   *time.Time `json:"last_run,omitempty" yaml:"last_run,omitempty"`
	LogSize   *int64     `json:"log_size,omitempty" yaml:"log_size,omitempty"`
	ErrorSize *int64     `json:"error_size,omitempty" yaml:"error_size,omitempty"`
}

// newExportCmd creates the export command.
func newExportCmd(rt *runtime) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Print jobs and variables as YAML or JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "yaml" && format != "json" {
				return fmt.Errorf("unsupported format %q: use yaml or json", format)
			}

			a, ctx, err := rt.open(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.Service.Load(ctx, a.Config.Crontab.Path)
			if err != nil {
				return err
			}
			return writeExport(cmd.OutOrStdout(), format, newExportDocument(a.Config.Crontab.Path, result.Crontab))
		},
	}

	cmd.Flags().StringVarP(&format, "format", "o", "yaml", "output format (yaml or json)")
	return cmd
}

func newExportDocument(path string, crontab *domain.Crontab) exportDocument {
	doc := exportDocument{
		Path:      path,
		Variables: []exportVariable{},
		Jobs:      []exportJob{},
	}
	for _, variable := range crontab.Variables() {
		doc.Variables = append(doc.Variables, exportVariable{Name: variable.Name(), Value: variable.Value()})
	}
	for _, job := range crontab.Jobs() {
		doc.Jobs = append(doc.Jobs, newExportJob(job))
	}
	return doc
}

func newExportJob(job *domain.Job) exportJob {
	info := job.RunInfo()
	entry := exportJob{
		Hash:      job.Hash(),
		Line:      job.String(),
		Command:   job.Command(),
		Comment:   job.Comment(),
		LogFile:   job.LogFile(),
		ErrorFile: job.ErrorFile(),
		Status:    string(job.Status()),
		LogSize:   info.LogSize,
		ErrorSize: info.ErrorSize,
	}
	switch timing := job.Timing().(type) {
	case domain.Schedule:
		entry.Schedule = fmt.Sprintf("%s %s %s %s %s",
			timing.Minute, timing.Hour, timing.DayOfMonth, timing.Month, timing.DayOfWeek)
	case domain.Special:
		entry.Special = string(timing)
	}
	if !info.LastRun.IsZero() {
		lastRun := info.LastRun.UTC()
		entry.LastRun = &lastRun
	}
	return entry
}

func writeExport(w io.Writer, format string, doc exportDocument) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode yaml: %w", err)
	}
	return enc.Close()
}
