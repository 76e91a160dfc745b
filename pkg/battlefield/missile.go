package battlefield

import (
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/attitude"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/dynamics"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/geo"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/guidance"
)

// MissileStatus is the promoted typed enumeration replacing the source's
// global CS_OK/CS_LIVE/CS_NOT_LIVE/CS_MISS return codes.
type MissileStatus int

const (
	StatusArmed MissileStatus = iota
	StatusFlying
	StatusHit
	StatusOutOfRange
)

func (s MissileStatus) String() string {
	switch s {
	case StatusArmed:
		return "Armed"
	case StatusFlying:
		return "Flying"
	case StatusHit:
		return "Hit"
	case StatusOutOfRange:
		return "OutOfRange"
	default:
		return "Unknown"
	}
}

const (
	// MissileTypeString is grounded on Missile_Object_C::Init's
	// strcpy_s(base_type, ..., "Missile").
	MissileTypeString = "Air+Missile"

	// MissileName is the default missile designation, grounded on
	// Battlefield_C::MissileFire's literal "PL-10".
	MissileName = "PL-10"

	// DefaultDestroyRadius is the default detonation radius in metres.
	DefaultDestroyRadius = 250.0

	// DefaultMaxRange is the default travel budget in metres.
	DefaultMaxRange = 30000.0

	// MissileThrottle is the fixed cruise thrust command used throughout
	// guided flight, grounded on Missile_Object_C::Run's literal
	// accelerator argument of 90 passed to Flight_find_point.
	MissileThrottle = 90.0

	// MissileIDBase is the offset simulation ids for missiles are drawn
	// from so they never collide with an aircraft's sim_id.
	MissileIDBase = 20000000
)

// Missile is identity plus per-tick state for one in-flight munition,
// grounded on UnitDefine.h's Unit_Object/Missile_Object_C. TargetIndex is a
// non-owning reference into the owning Battlefield's aircraft list, not a
// pointer, per the design notes on the source's raw back-pointer.
type Missile struct {
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

	ParentID    int
	TargetIndex int

	DestroyRadius float64
	MaxRange      float64
	TravelSum     float64
	PrevPosition  geo.Vec3

	DistanceToTarget float64
	Status           MissileStatus
	Errors           guidance.ErrorState

	RadarMode      bool
	LockedTargetID *int
}

func newMissileFromAircraft(ref ReferencePoint, simID int, attacker Aircraft, targetIndex int) Missile {
	state := newAircraftState(ref, attacker.Lon, attacker.Lat, attacker.Alt, attacker.Roll, attacker.Pitch, attacker.Yaw,
		attacker.VelocityNorth, attacker.VelocityEast, attacker.VelocityDown)

	var lockedTarget *int
	if attacker.LockedTargetID != nil {
		id := *attacker.LockedTargetID
		lockedTarget = &id
	}

	return Missile{
		SimID:         simID,
		Name:          MissileName,
		Type:          MissileTypeString,
		Team:          attacker.Team,
		Live:          true,
		Lon:           attacker.Lon,
		Lat:           attacker.Lat,
		Alt:           attacker.Alt,
		Roll:          attacker.Roll,
		Pitch:         attacker.Pitch,
		Yaw:           attacker.Yaw,
		VelocityNorth: attacker.VelocityNorth,
		VelocityEast:  attacker.VelocityEast,
		VelocityDown:  attacker.VelocityDown,
		State:         state,
		ParentID:      attacker.SimID,
		TargetIndex:   targetIndex,
		DestroyRadius: DefaultDestroyRadius,
		MaxRange:      DefaultMaxRange,
		PrevPosition:  state.Position,
		Status:        StatusFlying,

		RadarMode:      attacker.RadarMode,
		LockedTargetID: lockedTarget,
	}
}

// advance runs one missile through §4.5: range/hit-check, travel-budget
// bookkeeping, lead-point computation, cascaded PID autopilot, and RK4
// advance with the missile profile, grounded on Missile_Object_C::Run and
// Missile_Object_C::HitCheck. Unlike the source (whose HitCheck computed
// distance_target as target_state minus itself, always zero), distance is
// measured between the target and the missile's own position, per the
// design notes' documented bug fix.
func (m *Missile) advance(ref ReferencePoint, dt float64, target *Aircraft) error {
	if m.Status != StatusFlying {
		return nil
	}

	d := target.State.Position.Sub(m.State.Position).Norm()
	m.DistanceToTarget = d

	if d <= m.DestroyRadius {
		target.Live = false
		m.Status = StatusHit
		m.Live = false
		return nil
	}

	dStep := m.State.Position.Sub(m.PrevPosition).Norm()
	m.TravelSum += dStep
	m.PrevPosition = m.State.Position
	if m.TravelSum >= m.MaxRange {
		m.Status = StatusOutOfRange
		m.Live = false
		return nil
	}

	leadPoint := guidance.LeadPoint(target.State.Position, target.State.Velocity, m.State.Velocity.Norm(), d, m.DestroyRadius)
	cmd := guidance.MissileAutopilot(m.State, MissileThrottle, leadPoint, &m.Errors)
	m.Command = cmd

	next := dynamics.Step(m.State, dt, cmd, dynamics.MissileProfile)
	if stateHasNaN(next) {
		m.Live = false
		return ErrNanInput
	}
	m.State = next

	m.Lon, m.Lat, m.Alt = geo.NavigationToEarth(m.State.Position, ref.LonDeg, ref.LatDeg, ref.Alt)
	e := attitude.ToEuler(m.State.Attitude)
	m.Roll, m.Pitch, m.Yaw = e.Roll, e.Pitch, e.Yaw
	m.VelocityNorth, m.VelocityEast, m.VelocityDown = m.State.Velocity.X, m.State.Velocity.Y, m.State.Velocity.Z

	return nil
}
