package cmd

import (
	"fmt"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/battlefield"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/config"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/logger"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/report"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scenario to completion",
	Long:  `Run a combat scenario loaded from a file, or build one interactively when no scenario is given.`,
	RunE:  runScenario,
}

func init() {
	runCmd.Flags().StringP("scenario", "s", "", "scenario file (YAML)")
}

func runScenario(cmd *cobra.Command, _ []string) error {
	scenarioPath, _ := cmd.Flags().GetString("scenario")

	var sc *config.Scenario
	var err error
	if scenarioPath != "" {
		sc, err = config.Load(scenarioPath)
		if err != nil {
			return fmt.Errorf("load scenario: %w", err)
		}
	} else if isInteractive() {
		sc, err = buildScenarioInteractively()
		if err != nil {
			return fmt.Errorf("build scenario: %w", err)
		}
	} else {
		return fmt.Errorf("no --scenario given and stdout is not a terminal; cannot prompt interactively")
	}

	runID := uuid.New().String()
	logger.LogSection(fmt.Sprintf("Starting %s (run %s)", sc.Name, runID))

	bf := battlefield.New(sc.Reference.LonDeg, sc.Reference.LatDeg, sc.Reference.Alt)

	indexBySimID := make(map[int]int, len(sc.Aircraft))
	for _, a := range sc.Aircraft {
		a.Jitter.Apply(&a)
		idx, err := bf.SpawnAircraft(a.SimID, a.Name, a.Team,
			a.LonDeg, a.LatDeg, a.Alt,
			a.Roll, a.Pitch, a.Yaw,
			a.VelocityNorth, a.VelocityEast, a.VelocityDown)
		if err != nil {
			return fmt.Errorf("spawn aircraft %s: %w", a.Name, err)
		}
		indexBySimID[a.SimID] = idx
		logger.Infof("spawned %s (team %d) at lon=%.5f lat=%.5f alt=%.1f", a.Name, a.Team, a.LonDeg, a.LatDeg, a.Alt)
	}

	launched := make(map[int]bool)
	var observations []battlefield.Observation

	dt := sc.Run.Dt
	steps := int(sc.Run.DurationSecs/dt + 0.5)

	for step := 0; step < steps; step++ {
		elapsed := float64(step) * dt

		for i, eng := range sc.Engage {
			if launched[i] || eng.LaunchAtTime > elapsed {
				continue
			}
			if idx, err := bf.LaunchMissile(eng.AttackerIndex, eng.TargetIndex); err != nil {
				logger.Warnf("launch engagement %d failed: %v", i, err)
			} else {
				if sc.Missile.DestroyRadius > 0 {
					bf.Missiles[idx].DestroyRadius = sc.Missile.DestroyRadius
				}
				if sc.Missile.MaxRange > 0 {
					bf.Missiles[idx].MaxRange = sc.Missile.MaxRange
				}
				logger.Infof("engagement %d launched at t=%.2f", i, elapsed)
			}
			launched[i] = true
		}

		if err := bf.Tick(dt); err != nil {
			logger.Warnf("tick at t=%.2f: %v", elapsed, err)
		}

		observations = append(observations, bf.Snapshot())
	}

	summary, err := report.Generate(runID, observations)
	if err != nil {
		return fmt.Errorf("generate summary: %w", err)
	}
	summary.Print()

	return nil
}

func buildScenarioInteractively() (*config.Scenario, error) {
	sc := config.Default()

	if err := survey.AskOne(&survey.Input{Message: "Scenario name:", Default: "interactive"}, &sc.Name); err != nil {
		return nil, err
	}

	var refLon, refLat, refAlt string
	if err := survey.AskOne(&survey.Input{Message: "Reference longitude (deg):", Default: "126.0"}, &refLon); err != nil {
		return nil, err
	}
	if err := survey.AskOne(&survey.Input{Message: "Reference latitude (deg):", Default: "30.0"}, &refLat); err != nil {
		return nil, err
	}
	if err := survey.AskOne(&survey.Input{Message: "Reference altitude (m):", Default: "1000.0"}, &refAlt); err != nil {
		return nil, err
	}
	sc.Reference.LonDeg, _ = strconv.ParseFloat(refLon, 64)
	sc.Reference.LatDeg, _ = strconv.ParseFloat(refLat, 64)
	sc.Reference.Alt, _ = strconv.ParseFloat(refAlt, 64)

	var count string
	if err := survey.AskOne(&survey.Input{Message: "How many aircraft?", Default: "2"}, &count, survey.WithValidator(survey.Required)); err != nil {
		return nil, err
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 1 {
		return nil, fmt.Errorf("invalid aircraft count %q", count)
	}

	for i := 0; i < n; i++ {
		a := config.AircraftSpec{SimID: i + 1}
		if err := survey.AskOne(&survey.Input{Message: fmt.Sprintf("Aircraft %d name:", i+1), Default: fmt.Sprintf("Aircraft-%d", i+1)}, &a.Name); err != nil {
			return nil, err
		}

		var team string
		if err := survey.AskOne(&survey.Input{Message: fmt.Sprintf("Aircraft %d team:", i+1), Default: "1"}, &team); err != nil {
			return nil, err
		}
		a.Team, _ = strconv.Atoi(team)

		var velocity string
		if err := survey.AskOne(&survey.Input{Message: fmt.Sprintf("Aircraft %d north velocity (m/s):", i+1), Default: "100"}, &velocity); err != nil {
			return nil, err
		}
		a.VelocityNorth, _ = strconv.ParseFloat(velocity, 64)
		a.LonDeg = sc.Reference.LonDeg
		a.LatDeg = sc.Reference.LatDeg
		a.Alt = sc.Reference.Alt

		sc.Aircraft = append(sc.Aircraft, a)
	}

	if n >= 2 {
		var wantEngagement bool
		if err := survey.AskOne(&survey.Confirm{Message: "Launch a missile from aircraft 1 at aircraft 2?", Default: true}, &wantEngagement); err != nil {
			return nil, err
		}
		if wantEngagement {
			sc.Engage = append(sc.Engage, config.EngagementSpec{AttackerIndex: 0, TargetIndex: 1, LaunchAtTime: 0})
		}
	}

	return sc, nil
}
