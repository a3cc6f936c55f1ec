package main

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/Yiqing888/deadlydelivery.app/internal/domain"
	"github.com/Yiqing888/deadlydelivery.app/internal/validation"
)

type calcFlags struct {
	current   int
	target    int
	alive     int
	class     string
	inventory float64
	timeLeft  string
	risk      string
}

func newCalcCmd(root *rootOptions) *cobra.Command {
	f := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compare leaving now against pushing to a deeper floor",
		Example: `  evcli calc --current 1 --target 2 --alive 4 --class "Odd Jobber" --inventory 600
  evcli calc --current 5 --target 7 --alive 2 --class porter --inventory 2400 --time low --risk safe --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			input := f.input()
			if err := validation.Default().ValidateInput(input); err != nil {
				return err
			}

			est, err := root.estimator()
			if err != nil {
				return err
			}
			result := est.Calculate(input)

			if root.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			printResult(cmd, input, result)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&f.current, "current", 1, "floor the squad is on")
	flags.IntVar(&f.target, "target", 2, "floor being considered")
	flags.IntVar(&f.alive, "alive", 4, "players still alive (1-4)")
	flags.StringVar(&f.class, "class", string(domain.ClassOddJobber), "player class")
	flags.Float64Var(&f.inventory, "inventory", 0, "value currently in the backpack")
	flags.StringVar(&f.timeLeft, "time", "", "time left before the vote: high, mid or low")
	flags.StringVar(&f.risk, "risk", string(domain.RiskNormal), "risk preference: safe, normal or risky")

	return cmd
}

// input normalizes casing so "porter" and "LOW" are accepted
func (f *calcFlags) input() domain.CalculatorInput {
	class := domain.PlayerClass(f.class)
	if match, ok := lo.Find(domain.PlayerClasses, func(c domain.PlayerClass) bool {
		return classKey(string(c)) == classKey(f.class)
	}); ok {
		class = match
	}

	return domain.CalculatorInput{
		CurrentFloor:   f.current,
		TargetFloor:    f.target,
		AlivePlayers:   f.alive,
		PlayerClass:    class,
		InventoryValue: f.inventory,
		TimeLeftTier:   domain.TimeLeftTier(strings.ToUpper(strings.TrimSpace(f.timeLeft))),
		RiskPreference: domain.RiskPreference(strings.ToUpper(strings.TrimSpace(f.risk))),
	}
}

// classKey folds "Odd Jobber", "odd-jobber" and "oddjobber" together
func classKey(s string) string {
	return strings.NewReplacer(" ", "", "-", "").Replace(strings.ToLower(s))
}

func printResult(cmd *cobra.Command, input domain.CalculatorInput, r domain.CalculationResult) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %s\n", r.Decision, r.DecisionTitle)
	fmt.Fprintf(out, "%s\n\n", r.Reasoning)
	fmt.Fprintf(out, "Floor %d -> %d, %d alive, %s\n", input.CurrentFloor, input.TargetFloor, input.AlivePlayers, input.PlayerClass)
	fmt.Fprintf(out, "Death chance:   %.1f%% (%s)\n", r.DeathProb*100, r.DangerLabel)
	printer.Fprintf(out, "Estimated gain: %d\n", r.EstimatedGain)
	printer.Fprintf(out, "EV stay:        %.2f\n", r.EVStay)
	printer.Fprintf(out, "EV go:          %.2f\n", r.EVGo)
	for _, note := range r.Notes {
		fmt.Fprintf(out, "  * %s\n", note)
	}
}
