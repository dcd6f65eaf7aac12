package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
	sheetsvc "github.com/KirkDiggler/digimon-sheet/internal/services/sheet"
)

type newOptions struct {
	out     string
	name    string
	species string
	stage   string
	size    string
	edits   []string
}

func newNewCmd(_ *rootOptions) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:   "new --out PATH",
		Short: "Create a sheet and save it",
		Long: `Create a fresh sheet (Child, Medium, Vaccine, one default attack) and save it.

  digimon-sheet new --out guilmon.json --name Takato --species Guilmon
  digimon-sheet new --out agumon --stage Adult --set stats.acc.dp=3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNew(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "where to save the sheet (.json is added when there is no extension)")
	cmd.Flags().StringVar(&opts.name, "name", "", "character name")
	cmd.Flags().StringVar(&opts.species, "species", "", "digimon species name")
	cmd.Flags().StringVar(&opts.stage, "stage", "", "stage: Baby, Child, Adult, Perfect or Ultimate")
	cmd.Flags().StringVar(&opts.size, "size", "", "size: Small, Medium, Large, Huge, Gigantic or Colossal")
	cmd.Flags().StringArrayVar(&opts.edits, "set", nil, "extra FIELD=VALUE edits, repeatable")
	cmd.MarkFlagRequired("out") // nolint:errcheck

	return cmd
}

func runNew(cmd *cobra.Command, opts *newOptions) error {
	ctx := cmd.Context()

	editor, err := newEditor()
	if err != nil {
		return err
	}

	created, err := editor.NewSheet(ctx, &sheetsvc.NewSheetInput{})
	if err != nil {
		return err
	}
	sheetID := created.Sheet.ID

	edits := make([]string, 0, len(opts.edits)+4)
	for _, f := range []struct{ flag, field string }{
		{"name", digimon.FieldName},
		{"species", digimon.FieldDigimonSpeciesName},
		{"stage", digimon.FieldStage},
		{"size", digimon.FieldSize},
	} {
		if cmd.Flags().Changed(f.flag) {
			value, _ := cmd.Flags().GetString(f.flag)
			edits = append(edits, f.field+"="+value)
		}
	}
	edits = append(edits, opts.edits...)

	if err := applyEdits(cmd, editor, sheetID, edits); err != nil {
		return err
	}

	saved, err := editor.SaveSheetAs(ctx, &sheetsvc.SaveSheetAsInput{SheetID: sheetID, Location: opts.out})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", saved.Sheet.Location)
	return nil
}
