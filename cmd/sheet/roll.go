package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
	"github.com/KirkDiggler/digimon-sheet/internal/errors"
	sheetsvc "github.com/KirkDiggler/digimon-sheet/internal/services/sheet"
)

type rollOptions struct {
	stat     string
	attack   int
	modifier int
}

func newRollCmd(_ *rootOptions) *cobra.Command {
	opts := &rollOptions{}

	cmd := &cobra.Command{
		Use:   "roll PATH (--stat STAT | --attack N)",
		Short: "Roll a stat check or an attack",
		Long: `Roll a pool of d6 and count 5s and 6s as successes.

A stat check rolls the stat total plus --modifier dice. An attack rolls the
accuracy total plus the attack's accuracy and reports flat damage.

  digimon-sheet roll guilmon.json --stat dod --modifier -1
  digimon-sheet roll guilmon.json --attack 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoll(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.stat, "stat", "", "stat to check: acc, dam, dod, arm or hp")
	cmd.Flags().IntVar(&opts.attack, "attack", 0, "index of the attack to roll")
	cmd.Flags().IntVar(&opts.modifier, "modifier", 0, "dice added to or removed from a stat check")
	cmd.MarkFlagsMutuallyExclusive("stat", "attack")
	cmd.MarkFlagsOneRequired("stat", "attack")

	return cmd
}

func runRoll(cmd *cobra.Command, location string, opts *rollOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	editor, err := newEditor()
	if err != nil {
		return err
	}

	opened, err := editor.OpenSheet(ctx, &sheetsvc.OpenSheetInput{Location: location})
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("stat") {
		stat, ok := digimon.ParsePrimaryStat(opts.stat)
		if !ok {
			return errors.InvalidArgumentf("unknown stat %q, expected acc, dam, dod, arm or hp", opts.stat)
		}

		result, err := editor.RollCheck(ctx, &sheetsvc.RollCheckInput{
			SheetID:  opened.Sheet.ID,
			Stat:     stat,
			Modifier: opts.modifier,
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s check: %dd6 %v\n", primaryLabels[stat], result.Pool, result.Dice)
		fmt.Fprintf(out, "Successes: %d\n", result.Successes)
		return nil
	}

	result, err := editor.RollAttack(ctx, &sheetsvc.RollAttackInput{
		SheetID:     opened.Sheet.ID,
		AttackIndex: opts.attack,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s (%s): %dd6 %v\n", result.Attack.Name, result.Attack.Type, result.Pool, result.Dice)
	fmt.Fprintf(out, "Successes: %d\n", result.Successes)
	fmt.Fprintf(out, "Damage: %d\n", result.Damage)
	return nil
}
