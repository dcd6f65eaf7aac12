package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	"github.com/KirkDiggler/digimon-sheet/internal/sheetdoc"
	sheetsvc "github.com/KirkDiggler/digimon-sheet/internal/services/sheet"
)

func newConvertCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Rewrite a sheet in the current document format",
		Long: `Read a sheet in any supported format, including files saved by the
original desktop editor, and write it in the current format. IN and OUT
may be the same file.`,
		Args: cobra.ExactArgs(2),
		RunE: runConvert,
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	data, err := os.ReadFile(args[0])
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NotFoundf("sheet %s not found", args[0])
		}
		return errors.Wrapf(err, "failed to read %s", args[0])
	}
	format, err := sheetdoc.DetectFormat(data)
	if err != nil {
		return err
	}

	editor, err := newEditor()
	if err != nil {
		return err
	}

	opened, err := editor.OpenSheet(ctx, &sheetsvc.OpenSheetInput{Location: args[0]})
	if err != nil {
		return err
	}
	saved, err := editor.SaveSheetAs(ctx, &sheetsvc.SaveSheetAsInput{SheetID: opened.Sheet.ID, Location: args[1]})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Converted %s (%s) to %s\n", args[0], format, saved.Sheet.Location)
	return nil
}
