package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/config"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/logger"
)

var scenarioCmd = &cobra.Command{
	Use:   "scenario",
	Short: "Inspect and validate scenario files",
}

var scenarioValidateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Load and validate a scenario file without running it",
	Args:  cobra.ExactArgs(1),
	RunE:  validateScenario,
}

func init() {
	scenarioCmd.AddCommand(scenarioValidateCmd)
}

func validateScenario(_ *cobra.Command, args []string) error {
	sc, err := config.Load(args[0])
	if err != nil {
		return fmt.Errorf("invalid scenario: %w", err)
	}

	logger.Successf("scenario %q is valid: %d aircraft, %d engagements, dt=%.3f duration=%.1fs",
		sc.Name, len(sc.Aircraft), len(sc.Engage), sc.Run.Dt, sc.Run.DurationSecs)
	return nil
}
