// Command evcli runs the elevator EV estimator and run planner offline.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/Yiqing888/deadlydelivery.app/internal/calculator"
)

type rootOptions struct {
	riskConfig string
	jsonOutput bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "evcli",
		Short:        "Elevator vote advice for Deadly Delivery squads",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVar(&opts.riskConfig, "risk-config", "", "path to a risk config YAML (defaults to built-in tables)")
	root.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "print machine-readable JSON")

	root.AddCommand(newCalcCmd(opts), newPlanCmd(opts), newTableCmd(opts))
	return root
}

// estimator builds an estimator from --risk-config or the defaults
func (o *rootOptions) estimator() (*calculator.Estimator, error) {
	if o.riskConfig == "" {
		return calculator.NewEstimator(calculator.DefaultRiskConfig()), nil
	}
	cfg, err := calculator.LoadRiskConfig(o.riskConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to load risk config: %w", err)
	}
	return calculator.NewEstimator(cfg), nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var printer = message.NewPrinter(language.English)
