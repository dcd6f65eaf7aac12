package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/KirkDiggler/digimon-sheet/internal/engine"
	"github.com/KirkDiggler/digimon-sheet/internal/entities/digimon"
	sheetsvc "github.com/KirkDiggler/digimon-sheet/internal/services/sheet"
)

var (
	primaryLabels = [digimon.PrimaryStatCount]string{"Accuracy", "Damage", "Dodge", "Armor", "Health"}
	derivedLabels = [digimon.DerivedStatCount]string{"BIT", "DOS", "RAM", "CPU"}
	miscLabels    = [digimon.MiscStatCount]string{"Movement", "Initiative", "Range", "Max Range"}
)

// printSheet writes a readable summary of a sheet and its derived stats
func printSheet(w io.Writer, view sheetsvc.SheetView) error {
	r := view.Sheet.Record
	d := view.Derived

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	p := func(format string, args ...any) {
		fmt.Fprintf(tw, format, args...)
	}

	p("%s\n\n", view.Sheet.Title)
	p("Name:\t%s\n", r.Name)
	p("Digimon:\t%s\n", r.DigimonSpeciesName)
	p("Type:\t%s\n", r.Type)
	p("Stage:\t%s\t(ordinal %d)\n", r.Stage, d.StageOrdinal)
	p("Size:\t%s\n", r.Size)
	p("Attribute:\t%s\n", r.Attribute)
	p("Wounds:\t%d / %d\ttemp %d\n", r.WoundBoxes, d.MaxHealth, r.TempBoxes)
	p("Battery:\t%d / %d\n", r.Battery, d.MaxBattery)

	p("\nStat\tTotal\tDP\tBonus\n")
	for _, stat := range digimon.AllPrimaryStats {
		p("%s\t%d\t%d\t%d\n", primaryLabels[stat], d.Stat(stat), r.Stats[stat].DP, r.Stats[stat].Bonus)
	}

	p("\nResource\tValue\tBonus\n")
	for _, res := range digimon.AllDerivedStats {
		p("%s\t%d\t%d\n", derivedLabels[res], d.Resource(res), r.DerivedBonuses[res])
	}
	for _, m := range digimon.AllMiscStats {
		p("%s\t%d\t%d\n", miscLabels[m], d.Movement(m), r.MiscBonuses[m])
	}

	p("\n%s\n", dpSummary(d))

	p("\nAttacks\n")
	for i, a := range r.Attacks {
		p("  %d\t%s\t%s\tacc %+d\tdmg %+d\t%s\n", i, a.Name, a.Type, a.Accuracy, a.Damage, joinTags(a.Tags))
	}
	if len(r.Effects) > 0 {
		p("\nEffects\n")
		for i, e := range r.Effects {
			p("  %d\t%s\tpotency %d\tduration %d\n", i, e.Name, e.Potency, e.Duration)
		}
	}
	if r.QualitiesText != "" {
		p("\nQualities\n%s\n", r.QualitiesText)
	}

	return tw.Flush()
}

func dpSummary(d *engine.DerivedStats) string {
	line := fmt.Sprintf("DP: %d stats + %d qualities = %d of %d",
		d.StatDPSpent, d.TotalDPSpent-d.StatDPSpent, d.TotalDPSpent, d.MaxDPAllocated)
	if d.Overspent {
		line += " (overspent)"
	}
	return line
}

func joinTags(tags [digimon.AttackTagCount]string) string {
	set := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag != "" {
			set = append(set, tag)
		}
	}
	return strings.Join(set, ", ")
}
