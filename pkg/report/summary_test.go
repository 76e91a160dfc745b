package report

import (
	"testing"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/battlefield"
)

func obsAt(t float64, aircraft []battlefield.AircraftObservation, missiles []battlefield.MissileObservation) battlefield.Observation {
	return battlefield.Observation{Time: t, Aircraft: aircraft, Missiles: missiles}
}

func TestGenerateRejectsEmptyInput(t *testing.T) {
	if _, err := Generate("run-1", nil); err == nil {
		t.Error("expected error for empty observation sequence")
	}
}

func TestGenerateTracksTeamStrength(t *testing.T) {
	start := []battlefield.AircraftObservation{
		{SimID: 1, Live: true, Team: 1},
		{SimID: 2, Live: true, Team: 2},
		{SimID: 3, Live: true, Team: 2},
	}
	end := []battlefield.AircraftObservation{
		{SimID: 1, Live: true, Team: 1},
		{SimID: 2, Live: false, Team: 2},
		{SimID: 3, Live: true, Team: 2},
	}

	obs := []battlefield.Observation{
		obsAt(0, start, nil),
		obsAt(1, end, nil),
	}

	s, err := Generate("run-1", obs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if s.Ticks != 2 {
		t.Errorf("ticks = %d, want 2", s.Ticks)
	}
	if s.DurationSecs != 1 {
		t.Errorf("duration = %v, want 1", s.DurationSecs)
	}

	var team2 *TeamTally
	for i := range s.Teams {
		if s.Teams[i].Team == 2 {
			team2 = &s.Teams[i]
		}
	}
	if team2 == nil {
		t.Fatal("expected a team-2 tally")
	}
	if team2.InitialStrength != 2 || team2.FinalStrength != 1 || team2.Losses != 1 {
		t.Errorf("team 2 tally = %+v, want initial 2, final 1, losses 1", team2)
	}
}

func TestGenerateCountsMissileOutcomes(t *testing.T) {
	aircraft := []battlefield.AircraftObservation{{SimID: 1, Live: true, Team: 1}}

	m1 := battlefield.MissileObservation{
		AircraftObservation: battlefield.AircraftObservation{SimID: 100},
		Status:               battlefield.StatusFlying,
	}
	m1Hit := m1
	m1Hit.Status = battlefield.StatusHit

	m2 := battlefield.MissileObservation{
		AircraftObservation: battlefield.AircraftObservation{SimID: 101},
		Status:               battlefield.StatusFlying,
	}
	m2Miss := m2
	m2Miss.Status = battlefield.StatusOutOfRange

	obs := []battlefield.Observation{
		obsAt(0, aircraft, []battlefield.MissileObservation{m1, m2}),
		obsAt(1, aircraft, []battlefield.MissileObservation{m1Hit, m2}),
		obsAt(2, aircraft, []battlefield.MissileObservation{m1Hit, m2Miss}),
	}

	s, err := Generate("run-2", obs)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if s.MissilesFired != 2 {
		t.Errorf("missiles fired = %d, want 2", s.MissilesFired)
	}
	if s.MissilesHit != 1 {
		t.Errorf("missiles hit = %d, want 1", s.MissilesHit)
	}
	if s.MissilesOutOfRange != 1 {
		t.Errorf("missiles out of range = %d, want 1", s.MissilesOutOfRange)
	}
	if s.TimeToFirstKill == nil || *s.TimeToFirstKill != 1 {
		t.Errorf("time to first kill = %v, want 1", s.TimeToFirstKill)
	}
}

func TestSummaryJSONRoundTrips(t *testing.T) {
	s := Summary{RunID: "run-3", Ticks: 10, DurationSecs: 1.0}
	data, err := s.JSON()
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty JSON output")
	}
}
