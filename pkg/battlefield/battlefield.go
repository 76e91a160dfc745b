package battlefield

// AircraftCapacity and MissileCapacity bound the two entity lists,
// grounded on UnitDefine.h's max_object (commented out there in favor of a
// runtime constant but fixed at 16 throughout the source's demo programs).
const (
	AircraftCapacity = 16
	MissileCapacity  = 16
)

// Battlefield owns the reference point, the aircraft and missile entity
// lists, and the simulation clock, grounded on UnitDefine.cpp's
// Battlefield_C. It carries no package-level state: every instance is
// self-contained, replacing the source's translation-unit-scoped
// battlefield header.
type Battlefield struct {
	Reference ReferencePoint
	Aircraft  []Aircraft
	Missiles  []Missile
	Clock     float64

	missileCounter int
}

// New constructs an empty battlefield anchored at the given reference
// point, per C1.
func New(refLonDeg, refLatDeg, refAlt float64) *Battlefield {
	return &Battlefield{
		Reference: ReferencePoint{LonDeg: refLonDeg, LatDeg: refLatDeg, Alt: refAlt},
	}
}

// SpawnAircraft appends a new aircraft to the battlefield, per C2.
func (b *Battlefield) SpawnAircraft(simID int, name string, team int, lon, lat, alt, roll, pitch, yaw, vn, ve, vd float64) (int, error) {
	if len(b.Aircraft) >= AircraftCapacity {
		return -1, ErrCapacity
	}
	for _, a := range b.Aircraft {
		if a.SimID == simID {
			return -1, ErrDuplicateID
		}
	}

	state := newAircraftState(b.Reference, lon, lat, alt, roll, pitch, yaw, vn, ve, vd)
	a := Aircraft{
		SimID: simID,
		Name:  name,
		Type:  AircraftTypeString,
		Team:  team,
		Live:  true,

		Lon: lon, Lat: lat, Alt: alt,
		Roll: roll, Pitch: pitch, Yaw: yaw,

		VelocityNorth: vn,
		VelocityEast:  ve,
		VelocityDown:  vd,

		State: state,
	}

	b.Aircraft = append(b.Aircraft, a)
	return len(b.Aircraft) - 1, nil
}

// LaunchMissile fires a missile from attackerIndex at targetIndex, per C6
// and §4.6's launch_missile.
func (b *Battlefield) LaunchMissile(attackerIndex, targetIndex int) (int, error) {
	if attackerIndex < 0 || attackerIndex >= len(b.Aircraft) {
		return -1, ErrBadIndex
	}
	if targetIndex < 0 || targetIndex >= len(b.Aircraft) {
		return -1, ErrBadIndex
	}
	if len(b.Missiles) >= MissileCapacity {
		return -1, ErrCapacity
	}

	b.missileCounter++
	simID := MissileIDBase + b.missileCounter

	m := newMissileFromAircraft(b.Reference, simID, b.Aircraft[attackerIndex], targetIndex)
	b.Missiles = append(b.Missiles, m)
	return len(b.Missiles) - 1, nil
}

// SetCommand replaces the actuator command of the aircraft at index, per
// C5. Saturation happens inside the next tick, not here.
func (b *Battlefield) SetCommand(index int, rollRate, pitchRate, yawRate, throttle float64) error {
	if index < 0 || index >= len(b.Aircraft) {
		return ErrBadIndex
	}
	b.Aircraft[index].Command.RollRate = rollRate
	b.Aircraft[index].Command.PitchRate = pitchRate
	b.Aircraft[index].Command.YawRate = yawRate
	b.Aircraft[index].Command.Throttle = throttle
	return nil
}

// SetRadarMode sets the radar/lock observable of the aircraft at index.
// This is inert display state: nothing in Tick computes or consumes it, an
// external driver sets it each tick and reads it back through Snapshot, the
// same C5-style contract SetCommand follows. lockedTarget is a sim id, not
// a slice index; pass nil to clear the lock. A missile launched from this
// aircraft inherits its RadarMode/LockedTargetID at launch (see
// newMissileFromAircraft) and is not touched by this setter afterward.
func (b *Battlefield) SetRadarMode(index int, mode bool, lockedTarget *int) error {
	if index < 0 || index >= len(b.Aircraft) {
		return ErrBadIndex
	}
	b.Aircraft[index].RadarMode = mode
	b.Aircraft[index].LockedTargetID = lockedTarget
	return nil
}

// Tick advances the simulation by dt seconds, per C3 and §4.6: all live
// aircraft advance first in insertion order, then all flying missiles in
// insertion order, then the clock advances. A NaN detected while advancing
// any single entity does not abort the tick for the others; it kills that
// entity and the error is returned to the caller after the tick otherwise
// completes.
func (b *Battlefield) Tick(dt float64) error {
	var firstErr error

	for i := range b.Aircraft {
		if err := b.Aircraft[i].advance(b.Reference, dt); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for i := range b.Missiles {
		m := &b.Missiles[i]
		if m.Status != StatusFlying {
			continue
		}
		var target *Aircraft
		if m.TargetIndex >= 0 && m.TargetIndex < len(b.Aircraft) {
			target = &b.Aircraft[m.TargetIndex]
		} else {
			continue
		}
		if err := m.advance(b.Reference, dt, target); err != nil && firstErr == nil {
			firstErr = err
		}
	}

	b.Clock += dt
	return firstErr
}
