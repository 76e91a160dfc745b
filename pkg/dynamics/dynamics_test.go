package dynamics

import (
	"math"
	"testing"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/attitude"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/geo"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestStepKeepsAttitudeUnitNorm(t *testing.T) {
	state := BodyState{
		Position: geo.Vec3{X: 0, Y: 0, Z: -5000},
		Velocity: geo.Vec3{X: 200, Y: 0, Z: 0},
		Attitude: attitude.Identity,
	}
	cmd := ActuatorCommand{RollRate: 0.1, PitchRate: -0.05, YawRate: 0.02, Throttle: 5}

	for i := 0; i < 50; i++ {
		state = Step(state, 0.1, cmd, AircraftProfile)
		n := state.Attitude.Norm()
		if !almostEqual(n, 1, 1e-6) {
			t.Fatalf("step %d: attitude norm = %v, want 1", i, n)
		}
	}
}

func TestZeroCommandCoastDecelerates(t *testing.T) {
	state := BodyState{
		Position: geo.Vec3{X: 0, Y: 0, Z: -1000},
		Velocity: geo.Vec3{X: 300, Y: 0, Z: 0},
		Attitude: attitude.Identity,
	}
	cmd := ActuatorCommand{}

	for i := 0; i < 10; i++ {
		state = Step(state, 0.1, cmd, MissileProfile)
	}

	if state.Velocity.X >= 300 {
		t.Errorf("expected drag to bleed forward speed, got %v", state.Velocity.X)
	}
}

func TestSaturateClipsRates(t *testing.T) {
	cmd := ActuatorCommand{RollRate: 10, PitchRate: -10, YawRate: 5, Throttle: 3}
	sat := Saturate(cmd)

	if !almostEqual(sat.RollRate, MaxRollPitchRate, 1e-9) {
		t.Errorf("roll rate not clamped: got %v", sat.RollRate)
	}
	if !almostEqual(sat.PitchRate, -MaxRollPitchRate, 1e-9) {
		t.Errorf("pitch rate not clamped: got %v", sat.PitchRate)
	}
	if !almostEqual(sat.YawRate, MaxYawRate, 1e-9) {
		t.Errorf("yaw rate not clamped: got %v", sat.YawRate)
	}
	if sat.Throttle != cmd.Throttle {
		t.Errorf("throttle should pass through unclipped, got %v", sat.Throttle)
	}
}

func TestSaturateLeavesSmallRatesAlone(t *testing.T) {
	cmd := ActuatorCommand{RollRate: 0.1, PitchRate: 0.1, YawRate: 0.1, Throttle: 1}
	sat := Saturate(cmd)
	if sat != cmd {
		t.Errorf("small command should pass through unchanged: got %+v want %+v", sat, cmd)
	}
}

func TestThrustCutoffAboveAltitude(t *testing.T) {
	high := BodyState{
		Position: geo.Vec3{Z: -40000},
		Velocity: geo.Vec3{X: 250},
		Attitude: attitude.Identity,
	}
	low := BodyState{
		Position: geo.Vec3{Z: 1000},
		Velocity: geo.Vec3{X: 250},
		Attitude: attitude.Identity,
	}
	cmd := ActuatorCommand{Throttle: 50}

	dHigh := Derivative(high, cmd, AircraftProfile)
	dLow := Derivative(low, cmd, AircraftProfile)

	if dHigh.Velocity.X >= dLow.Velocity.X {
		t.Errorf("throttle should not contribute above cutoff altitude: dHigh.X=%v dLow.X=%v", dHigh.Velocity.X, dLow.Velocity.X)
	}
}

func TestTerminalClampPreventsSignFlip(t *testing.T) {
	got := terminalClamp(-1000, 350)
	if got != -350 {
		t.Errorf("terminalClamp should cap the deceleration at -v, got %v", got)
	}

	got2 := terminalClamp(-1000, 100)
	if got2 != -1000 {
		t.Errorf("terminalClamp should not engage below the speed threshold, got %v", got2)
	}
}
