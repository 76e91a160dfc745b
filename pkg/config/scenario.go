// Package config defines the scenario file format consumed by
// cmd/combatsim, grounded on the teacher's pkg/config (environments.yaml)
// and cmd/drone-swarm/config (SimulationConfig), both loaded with
// gopkg.in/yaml.v3.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/geo"
)

// ReferencePoint mirrors battlefield.ReferencePoint's fields so the
// scenario file has no import dependency on pkg/battlefield.
type ReferencePoint struct {
	LonDeg float64 `yaml:"lon_deg"`
	LatDeg float64 `yaml:"lat_deg"`
	Alt    float64 `yaml:"alt"`
}

// AircraftSpec describes one aircraft to spawn at scenario load time.
type AircraftSpec struct {
	SimID int    `yaml:"sim_id"`
	Name  string `yaml:"name"`
	Team  int    `yaml:"team"`

	LonDeg float64 `yaml:"lon_deg"`
	LatDeg float64 `yaml:"lat_deg"`
	Alt    float64 `yaml:"alt"`

	Roll  float64 `yaml:"roll"`
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`

	VelocityNorth float64 `yaml:"velocity_north"`
	VelocityEast  float64 `yaml:"velocity_east"`
	VelocityDown  float64 `yaml:"velocity_down"`

	Throttle float64 `yaml:"throttle"`

	// Jitter, in standard deviations applied via geo.Gauss, perturbs the
	// spawn pose/velocity when non-zero. Off by default, per the teacher
	// pack's "gaussrand" utility never being wired into its own dynamics.
	Jitter *JitterSpec `yaml:"jitter,omitempty"`
}

// JitterSpec configures optional Gaussian perturbation of a spawn.
type JitterSpec struct {
	PositionStdDev float64 `yaml:"position_std_dev"`
	VelocityStdDev float64 `yaml:"velocity_std_dev"`
}

// Apply perturbs the aircraft pose/velocity in place using geo.Gauss.
func (j *JitterSpec) Apply(a *AircraftSpec) {
	if j == nil {
		return
	}
	if j.PositionStdDev != 0 {
		a.LonDeg += geo.Gauss() * j.PositionStdDev / 111000.0
		a.LatDeg += geo.Gauss() * j.PositionStdDev / 111000.0
		a.Alt += geo.Gauss() * j.PositionStdDev
	}
	if j.VelocityStdDev != 0 {
		a.VelocityNorth += geo.Gauss() * j.VelocityStdDev
		a.VelocityEast += geo.Gauss() * j.VelocityStdDev
		a.VelocityDown += geo.Gauss() * j.VelocityStdDev
	}
}

// EngagementSpec describes a single missile launch to schedule during the
// run, by index into Scenario.Aircraft.
type EngagementSpec struct {
	AttackerIndex int     `yaml:"attacker_index"`
	TargetIndex   int     `yaml:"target_index"`
	LaunchAtTime  float64 `yaml:"launch_at_time"`
}

// MissileDefaults overrides pkg/battlefield's package defaults for every
// missile this scenario launches; a zero field keeps the package default.
type MissileDefaults struct {
	DestroyRadius float64 `yaml:"destroy_radius"`
	MaxRange      float64 `yaml:"max_range"`
}

// RunSettings controls the tick loop cmd/combatsim drives.
type RunSettings struct {
	Dt           float64 `yaml:"dt"`
	DurationSecs float64 `yaml:"duration_secs"`
}

// Scenario is the top-level scenario document.
type Scenario struct {
	Name      string           `yaml:"name"`
	Reference ReferencePoint   `yaml:"reference"`
	Aircraft  []AircraftSpec   `yaml:"aircraft"`
	Engage    []EngagementSpec `yaml:"engagements"`
	Missile   MissileDefaults  `yaml:"missile_defaults"`
	Run       RunSettings      `yaml:"run"`
}

// Load reads and parses a scenario file from path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario file: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Save writes the scenario document to path as YAML.
func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshal scenario: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scenario file: %w", err)
	}
	return nil
}

// Validate checks a scenario for structural errors that would otherwise
// surface mid-run as an opaque index-out-of-range panic.
func (s *Scenario) Validate() error {
	if len(s.Aircraft) == 0 {
		return fmt.Errorf("scenario %q: at least one aircraft is required", s.Name)
	}
	seen := make(map[int]bool, len(s.Aircraft))
	for _, a := range s.Aircraft {
		if seen[a.SimID] {
			return fmt.Errorf("scenario %q: duplicate sim_id %d", s.Name, a.SimID)
		}
		seen[a.SimID] = true
	}
	for i, e := range s.Engage {
		if e.AttackerIndex < 0 || e.AttackerIndex >= len(s.Aircraft) {
			return fmt.Errorf("scenario %q: engagement %d has out-of-range attacker_index %d", s.Name, i, e.AttackerIndex)
		}
		if e.TargetIndex < 0 || e.TargetIndex >= len(s.Aircraft) {
			return fmt.Errorf("scenario %q: engagement %d has out-of-range target_index %d", s.Name, i, e.TargetIndex)
		}
		if e.AttackerIndex == e.TargetIndex {
			return fmt.Errorf("scenario %q: engagement %d targets its own attacker", s.Name, i)
		}
	}
	if s.Run.Dt <= 0 {
		return fmt.Errorf("scenario %q: run.dt must be positive", s.Name)
	}
	if s.Run.DurationSecs <= 0 {
		return fmt.Errorf("scenario %q: run.duration_secs must be positive", s.Name)
	}
	return nil
}

// Default returns a scenario with sensible defaults for missile parameters
// and tick rate, used when building a scenario interactively.
func Default() *Scenario {
	return &Scenario{
		Name: "interactive",
		Missile: MissileDefaults{
			DestroyRadius: 250.0,
			MaxRange:      30000.0,
		},
		Run: RunSettings{
			Dt:           0.1,
			DurationSecs: 60.0,
		},
	}
}
