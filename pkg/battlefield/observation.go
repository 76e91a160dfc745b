package battlefield

// AircraftObservation is the read-only per-aircraft projection exposed by
// Snapshot, grounded on UnitDefine.h's Object_T fields actually read by
// telemetry collaborators.
type AircraftObservation struct {
	SimID int
	Live  bool

	Lon, Lat, Alt    float64
	Roll, Pitch, Yaw float64

	Team int
	Name string

	RadarMode      bool
	LockedTargetID *int
}

// MissileObservation extends AircraftObservation with the fields unique to
// a munition: its launching aircraft, its target (by sim id, -1 if the
// target index no longer resolves), and flight status.
type MissileObservation struct {
	AircraftObservation

	ParentID int
	TargetID int
	Status   MissileStatus
}

// Observation is a value snapshot of a Battlefield at the end of its most
// recent tick, decoupled from internal storage so a caller can retain or
// compare it without aliasing mutable state, grounded on UnitDefine.h's
// State_T.
type Observation struct {
	Time     float64
	Aircraft []AircraftObservation
	Missiles []MissileObservation
}

// Snapshot produces an Observation of the battlefield's current state, per
// C4. It is the only surface external telemetry, recording, or tests
// should consume.
func (b *Battlefield) Snapshot() Observation {
	obs := Observation{
		Time:     b.Clock,
		Aircraft: make([]AircraftObservation, len(b.Aircraft)),
		Missiles: make([]MissileObservation, len(b.Missiles)),
	}

	for i, a := range b.Aircraft {
		obs.Aircraft[i] = AircraftObservation{
			SimID: a.SimID,
			Live:  a.Live,
			Lon:   a.Lon, Lat: a.Lat, Alt: a.Alt,
			Roll: a.Roll, Pitch: a.Pitch, Yaw: a.Yaw,
			Team:           a.Team,
			Name:           a.Name,
			RadarMode:      a.RadarMode,
			LockedTargetID: a.LockedTargetID,
		}
	}

	for i, m := range b.Missiles {
		targetID := -1
		if m.TargetIndex >= 0 && m.TargetIndex < len(b.Aircraft) {
			targetID = b.Aircraft[m.TargetIndex].SimID
		}
		obs.Missiles[i] = MissileObservation{
			AircraftObservation: AircraftObservation{
				SimID: m.SimID,
				Live:  m.Live,
				Lon:   m.Lon, Lat: m.Lat, Alt: m.Alt,
				Roll: m.Roll, Pitch: m.Pitch, Yaw: m.Yaw,
				Team:           m.Team,
				Name:           m.Name,
				RadarMode:      m.RadarMode,
				LockedTargetID: m.LockedTargetID,
			},
			ParentID: m.ParentID,
			TargetID: targetID,
			Status:   m.Status,
		}
	}

	return obs
}
