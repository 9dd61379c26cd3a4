package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/mytrout/buildingblocks/internal/cli/ui"
	"github.com/mytrout/buildingblocks/internal/document"
	"github.com/mytrout/buildingblocks/internal/watch"
)

// fileReport is the machine-readable result for one document.
type fileReport struct {
	File   string           `json:"file" yaml:"file"`
	Valid  bool             `json:"valid" yaml:"valid"`
	Error  string           `json:"error,omitempty" yaml:"error,omitempty"`
	Issues []document.Issue `json:"issues,omitempty" yaml:"issues,omitempty"`
	Count  *document.Count  `json:"count,omitempty" yaml:"count,omitempty"`

	err error
}

func newValidateCommand(s *session) *cobra.Command {
	var (
		strict   bool
		watching bool
	)

	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Check model documents",
		Long: `Load each model document and check it.

Loading runs every value through its constructor, so missing, blank or
out-of-range members are reported with the member's name. Documents that load
are then checked for problems spanning several values: duplicate ids,
duplicate field names, misplaced params fields and so on.

Without arguments the document named by model.path in buildingblocks.yml
(default model.yml) is checked.

Examples:
  bbmodel validate
  bbmodel validate ledger.yml catalog.json.gz
  bbmodel validate --strict -o json model.yml
  bbmodel validate --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			files := args
			if len(files) == 0 {
				files = []string{s.cfg.Model.Path}
			}

			failed := s.validateAll(cmd.OutOrStdout(), cmd.ErrOrStderr(), files, strict)
			if !watching {
				if failed > 0 {
					return fmt.Errorf("%d of %d documents failed validation", failed, len(files))
				}
				return nil
			}

			ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return s.watch(ctx, cmd.OutOrStdout(), cmd.ErrOrStderr(), files, strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Treat warnings as failures")
	cmd.Flags().BoolVarP(&watching, "watch", "w", false, "Re-validate whenever a document changes")

	return cmd
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

// validateAll checks every file and writes the results. It returns the
// number of documents that failed.
func (s *session) validateAll(out, errOut io.Writer, files []string, strict bool) int {
	reports := make([]fileReport, 0, len(files))
	failed := 0

	for _, path := range files {
		report := s.validateFile(path, strict)
		if !report.Valid {
			failed++
		}
		reports = append(reports, report)
	}

	switch s.cfg.Output.Format {
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(reports); err != nil {
			s.logger.Error("failed to write report", zap.Error(err))
		}
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(reports); err != nil {
			s.logger.Error("failed to write report", zap.Error(err))
		}
		_ = enc.Close()
	default:
		for _, r := range reports {
			s.writeReport(out, errOut, r)
		}
	}
	return failed
}

func (s *session) validateFile(path string, strict bool) fileReport {
	report := fileReport{File: path}

	doc, err := document.Load(path)
	if err != nil {
		s.logger.Debug("document failed to load", zap.String("file", path), zap.Error(err))
		report.Error = err.Error()
		report.err = err
		return report
	}

	count := doc.Count()
	report.Count = &count
	report.Issues = document.Validate(doc)
	report.Valid = !document.HasErrors(report.Issues)
	if strict && len(report.Issues) > 0 {
		report.Valid = false
	}

	s.logger.Debug("document validated",
		zap.String("file", path),
		zap.Int("entities", count.Entities),
		zap.Int("issues", len(report.Issues)),
		zap.Bool("valid", report.Valid),
	)
	return report
}

func (s *session) writeReport(out, errOut io.Writer, r fileReport) {
	noColor := s.colorOff()

	if r.err != nil {
		fmt.Fprint(errOut, ui.ModelError(r.File, r.err, noColor))
		return
	}

	ui.WriteIssues(out, r.File, r.Issues, noColor)
	if r.Valid {
		c := r.Count
		ui.WriteSuccess(out, fmt.Sprintf("%s is valid (%d concepts, %d lookups, %d entities, %d fields, %d relationships)",
			r.File, c.Concepts, c.Lookups, c.Entities, c.Fields, c.Relationships), noColor)
	}
}

// watch re-validates the changed files until ctx is done.
func (s *session) watch(ctx context.Context, out, errOut io.Writer, files []string, strict bool) error {
	fw, err := watch.NewFileWatcher(watch.Options{
		Files:    files,
		Debounce: s.cfg.Watch.Debounce,
		Logger:   s.logger,
	}, func(changed []string) {
		s.logger.Info("documents changed", zap.Strings("files", changed))
		s.validateAll(out, errOut, changed, strict)
	})
	if err != nil {
		return err
	}

	fmt.Fprint(out, ui.Info(fmt.Sprintf("Watching %s (Ctrl+C to stop)", fw), s.colorOff()))
	return fw.Run(ctx)
}
