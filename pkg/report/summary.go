// Package report assembles an after-action Summary from a sequence of
// battlefield.Observation snapshots, grounded on the teacher's
// cmd/drone-swarm/reporting.AARGenerator but scaled down to what a read-only
// consumer of Observation can compute without any simulation-internal state.
package report

import (
	"encoding/json"
	"fmt"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/battlefield"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/logger"
)

// TeamTally holds per-team aircraft counts across a run.
type TeamTally struct {
	Team            int `json:"team"`
	InitialStrength int `json:"initial_strength"`
	FinalStrength   int `json:"final_strength"`
	Losses          int `json:"losses"`
}

// Summary is the after-action report produced from a recorded sequence of
// Observations, one per tick.
type Summary struct {
	RunID string `json:"run_id"`

	Ticks        int     `json:"ticks"`
	DurationSecs float64 `json:"duration_secs"`

	Teams []TeamTally `json:"teams"`

	MissilesFired      int `json:"missiles_fired"`
	MissilesHit        int `json:"missiles_hit"`
	MissilesOutOfRange int `json:"missiles_out_of_range"`
	MissilesFlying     int `json:"missiles_flying"`

	TimeToFirstKill *float64 `json:"time_to_first_kill,omitempty"`
}

// Generate reduces a per-tick sequence of Observations into a Summary. The
// slice must be ordered by increasing Time; runID identifies the run for
// correlation with external logs, not any entity inside the battlefield.
func Generate(runID string, obs []battlefield.Observation) (Summary, error) {
	if len(obs) == 0 {
		return Summary{}, fmt.Errorf("report: no observations to summarize")
	}

	first, last := obs[0], obs[len(obs)-1]

	s := Summary{
		RunID:        runID,
		Ticks:        len(obs),
		DurationSecs: last.Time - first.Time,
	}

	initial := make(map[int]int)
	for _, a := range first.Aircraft {
		initial[a.Team]++
	}
	final := make(map[int]int)
	for _, a := range last.Aircraft {
		if a.Live {
			final[a.Team]++
		}
	}
	teams := make([]int, 0, len(initial))
	for team := range initial {
		teams = append(teams, team)
	}
	for team := range final {
		if _, ok := initial[team]; !ok {
			teams = append(teams, team)
		}
	}
	for _, team := range teams {
		s.Teams = append(s.Teams, TeamTally{
			Team:            team,
			InitialStrength: initial[team],
			FinalStrength:   final[team],
			Losses:          initial[team] - final[team],
		})
	}

	seenMissiles := make(map[int]bool)
	var firstKillTime *float64
	for _, snap := range obs {
		for _, m := range snap.Missiles {
			if !seenMissiles[m.SimID] {
				seenMissiles[m.SimID] = true
				s.MissilesFired++
			}
			if m.Status == battlefield.StatusHit && firstKillTime == nil {
				t := snap.Time
				firstKillTime = &t
			}
		}
	}
	s.TimeToFirstKill = firstKillTime

	for _, m := range last.Missiles {
		switch m.Status {
		case battlefield.StatusHit:
			s.MissilesHit++
		case battlefield.StatusOutOfRange:
			s.MissilesOutOfRange++
		case battlefield.StatusFlying:
			s.MissilesFlying++
		}
	}

	return s, nil
}

// JSON renders the summary as indented JSON, matching the teacher's AAR
// output format.
func (s Summary) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// Print renders the summary as a short console table via pkg/logger.
func (s Summary) Print() {
	logger.LogSection("After-Action Summary")
	logger.LogKeyValue("run_id", s.RunID)
	logger.LogKeyValue("ticks", s.Ticks)
	logger.LogKeyValue("duration_secs", fmt.Sprintf("%.2f", s.DurationSecs))
	logger.LogKeyValue("missiles_fired", s.MissilesFired)
	logger.LogKeyValue("missiles_hit", s.MissilesHit)
	logger.LogKeyValue("missiles_out_of_range", s.MissilesOutOfRange)
	logger.LogKeyValue("missiles_flying", s.MissilesFlying)
	if s.TimeToFirstKill != nil {
		logger.LogKeyValue("time_to_first_kill", fmt.Sprintf("%.2f", *s.TimeToFirstKill))
	}

	table := logger.NewTable("Team", "Initial", "Final", "Losses")
	for _, t := range s.Teams {
		table.AddRow(
			fmt.Sprintf("%d", t.Team),
			fmt.Sprintf("%d", t.InitialStrength),
			fmt.Sprintf("%d", t.FinalStrength),
			fmt.Sprintf("%d", t.Losses),
		)
	}
	table.Print()
}
