package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/digimon-sheet/internal/sheetdoc"
	sheetsvc "github.com/KirkDiggler/digimon-sheet/internal/services/sheet"
)

func newShowCmd(_ *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show PATH",
		Short: "Print a sheet with its derived stats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			editor, err := newEditor()
			if err != nil {
				return err
			}

			opened, err := editor.OpenSheet(cmd.Context(), &sheetsvc.OpenSheetInput{Location: args[0]})
			if err != nil {
				return err
			}

			if asJSON {
				data, err := sheetdoc.Encode(opened.Sheet.Record)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			return printSheet(cmd.OutOrStdout(), opened.SheetView)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the normalized sheet document instead")
	return cmd
}
