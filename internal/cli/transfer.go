package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/asset-tracker/internal/domain"
	"github.com/asset-tracker/internal/ui"
)

func newImportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "import KIND FILE",
		Short: "Import assets or employees from a CSV file",
		Long: `Import rows from a CSV file as new records.

KIND is "assets" or "employees". The header must not contain an id column.
Rows that fail validation are reported and skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseEntityKind(args[0])
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return err
			}
			defer f.Close()

			result, err := a.transferService.Import(cmd.Context(), kind, f)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.FormatSuccess(fmt.Sprintf("Imported %d %s", result.Inserted, kind)))
			for _, row := range result.Failed {
				fmt.Fprintln(out, ui.FormatWarning(fmt.Sprintf("line %d: %s", row.Line, row.Reason)))
			}
			return nil
		},
	}
}

func newExportCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "export KIND [FILE]",
		Short: "Export assets or employees to CSV",
		Long: `Export every record of KIND ("assets" or "employees") as CSV.
Without FILE the CSV is written to stdout.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := domain.ParseEntityKind(args[0])
			if err != nil {
				return err
			}

			if len(args) == 1 {
				return a.transferService.Export(cmd.Context(), kind, cmd.OutOrStdout())
			}

			f, err := os.Create(args[1])
			if err != nil {
				return err
			}
			if err := a.transferService.Export(cmd.Context(), kind, f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintln(cmd.ErrOrStderr(), ui.FormatSuccess(fmt.Sprintf("Exported %s to %s", kind, args[1])))
			return nil
		},
	}
}
