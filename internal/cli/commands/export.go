package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mytrout/buildingblocks/internal/cli/ui"
	"github.com/mytrout/buildingblocks/internal/document"
)

func newExportCommand(s *session) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "export <input> <output>",
		Short: "Convert a model document between YAML, JSON and gzip",
		Long: `Load a model document and write it back out. The output format follows the
output file's extension (.yml, .yaml or .json); a trailing .gz compresses it.

Documents with validation errors are not exported unless --force is given.

Examples:
  bbmodel export model.yml model.json
  bbmodel export model.json dist/model.yml.gz`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, out := args[0], args[1]
			noColor := s.colorOff()

			doc, err := document.Load(in)
			if err != nil {
				fmt.Fprint(cmd.ErrOrStderr(), ui.ModelError(in, err, noColor))
				return err
			}

			issues := document.Validate(doc)
			if document.HasErrors(issues) && !force {
				ui.WriteIssues(cmd.ErrOrStderr(), in, issues, noColor)
				return fmt.Errorf("%s has validation errors; use --force to export anyway", in)
			}

			if err := document.WriteToFile(doc, out); err != nil {
				return err
			}

			s.logger.Info("document exported", zap.String("from", in), zap.String("to", out))
			ui.WriteSuccess(cmd.OutOrStdout(), fmt.Sprintf("Exported %s to %s", in, out), noColor)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Export even when the document has validation errors")
	return cmd
}
