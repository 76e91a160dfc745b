package battlefield

import (
	"math"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/attitude"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/dynamics"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/geo"
)

// AircraftTypeString is the ACMI-style type tag assigned to every
// spawned aircraft, grounded on Aircraft_Object_C::Init's
// strcpy_s(base_type, ..., "Aircraft") lineage (the spec widens it to the
// ACMI "Air+FixedWing" tag used by the telemetry collaborators).
const AircraftTypeString = "Air+FixedWing"

// DefaultAircraftThrottle is a scenario-level convenience default (the
// spec's "40 for the aircraft baseline in scenarios"), not consumed by the
// core itself.
const DefaultAircraftThrottle = 40.0

// Aircraft is identity plus per-tick state for one piloted or scripted
// airframe, grounded on UnitDefine.h's Unit_Object/Aircraft_Object_C.
type Aircraft struct {
	SimID int
	Name  string
	Type  string
	Team  int
	Live  bool

	Lon, Lat, Alt    float64
	Roll, Pitch, Yaw float64

	VelocityNorth float64
	VelocityEast  float64
	VelocityDown  float64

	State   dynamics.BodyState
	Command dynamics.ActuatorCommand

	RadarMode      bool
	LockedTargetID *int
}

func newAircraftState(ref ReferencePoint, lon, lat, alt, roll, pitch, yaw, vn, ve, vd float64) dynamics.BodyState {
	ned := geo.EarthToNavigation(lon, lat, alt, ref.LonDeg, ref.LatDeg, ref.Alt)
	q := attitude.ToQuaternion(attitude.Euler{Roll: roll, Pitch: pitch, Yaw: yaw})
	return dynamics.BodyState{
		Position: ned,
		Velocity: geo.Vec3{X: vn, Y: ve, Z: vd},
		Attitude: q,
	}
}

// advance runs one aircraft through §4.4: RK4 with the aircraft profile,
// then projects the resulting BodyState back to a geodetic pose, grounded
// on Aircraft_Object_C::Run. A NaN anywhere in the resulting state aborts
// the advance and kills the aircraft, per the NanInput handling rule.
func (a *Aircraft) advance(ref ReferencePoint, dt float64) error {
	if !a.Live {
		return nil
	}

	next := dynamics.Step(a.State, dt, a.Command, dynamics.AircraftProfile)
	if stateHasNaN(next) {
		a.Live = false
		return ErrNanInput
	}
	a.State = next

	a.Lon, a.Lat, a.Alt = geo.NavigationToEarth(a.State.Position, ref.LonDeg, ref.LatDeg, ref.Alt)
	e := attitude.ToEuler(a.State.Attitude)
	a.Roll, a.Pitch, a.Yaw = e.Roll, e.Pitch, e.Yaw
	a.VelocityNorth, a.VelocityEast, a.VelocityDown = a.State.Velocity.X, a.State.Velocity.Y, a.State.Velocity.Z

	return nil
}

func stateHasNaN(s dynamics.BodyState) bool {
	vals := []float64{
		s.Position.X, s.Position.Y, s.Position.Z,
		s.Velocity.X, s.Velocity.Y, s.Velocity.Z,
		s.Attitude.Q0, s.Attitude.Q1, s.Attitude.Q2, s.Attitude.Q3,
	}
	for _, v := range vals {
		if math.IsNaN(v) {
			return true
		}
	}
	return false
}
