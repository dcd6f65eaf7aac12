package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	sheetsvc "github.com/KirkDiggler/digimon-sheet/internal/services/sheet"
)

func newSetCmd(_ *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set PATH FIELD=VALUE...",
		Short: "Edit fields of a sheet and save it",
		Long: `Apply one or more edits and save the sheet in place. The file is only
written when every edit is valid.

Fields: name, digimonSpeciesName, type, stage, size, attribute, woundBoxes,
tempBoxes, battery, qualitiesText, bonusDpEarned, qualitySpentDp,
stats.<acc|dam|dod|arm|hp>.<dp|bonus>, derivedStats.<bit|dos|ram|cpu>.bonus,
miscStats.<move|init|range|maxRange>.bonus,
attacks.<i>.<name|accuracy|type|damage>, attacks.<i>.tags.<0-2>,
effects.<i>.<name|potency|duration>

  digimon-sheet set guilmon.json stage=Adult stats.hp.dp=2 attacks.0.name="Pyro Sphere"`,
		Args: cobra.MinimumNArgs(2),
		RunE: runSet,
	}
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	editor, err := newEditor()
	if err != nil {
		return err
	}

	opened, err := editor.OpenSheet(ctx, &sheetsvc.OpenSheetInput{Location: args[0]})
	if err != nil {
		return err
	}
	sheetID := opened.Sheet.ID

	if err := applyEdits(cmd, editor, sheetID, args[1:]); err != nil {
		return err
	}

	saved, err := editor.SaveSheet(ctx, &sheetsvc.SaveSheetInput{SheetID: sheetID})
	if err != nil {
		return err
	}

	return printSheet(cmd.OutOrStdout(), saved.SheetView)
}

// applyEdits applies FIELD=VALUE edits in order, stopping at the first
// invalid one
func applyEdits(cmd *cobra.Command, editor sheetsvc.Service, sheetID string, edits []string) error {
	for _, edit := range edits {
		path, value, ok := strings.Cut(edit, "=")
		if !ok {
			return errors.InvalidArgumentf("edit %q must be FIELD=VALUE", edit)
		}
		_, err := editor.ApplyEdit(cmd.Context(), &sheetsvc.ApplyEditInput{
			SheetID: sheetID,
			Path:    strings.TrimSpace(path),
			Value:   value,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
