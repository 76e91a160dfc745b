package guidance

import (
	"math"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/attitude"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/dynamics"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/geo"
)

// AircraftDistanceGate is the 30m range below which Flight_find_point
// stops steering and simply holds straight and level.
const AircraftDistanceGate = 30.0

// MissileDistanceGate is the 50m equivalent gate in
// missile_Flight_find_point.
const MissileDistanceGate = 50.0

// RollUnwindThreshold is the +-170 degree roll angle at which both
// autopilots force a hard roll-rate command to unwind past inverted
// flight rather than let the PID output fight the wrap-around.
const RollUnwindThreshold = 170.0

// RollUnwindRate is the forced roll rate (rad/s) applied past
// RollUnwindThreshold.
const RollUnwindRate = 2.0

// ErrorState carries the per-axis error history a cascaded autopilot needs
// across ticks: the previous tick's azimuth/pitch error (for the
// derivative term) and the running azimuth/pitch error sums (for the
// integral term). RollErrLast is used only by AircraftAutopilot's
// roll-leveling term.
type ErrorState struct {
	AzimuthLast float64
	PitchLast   float64
	RollErrLast float64
	AzimuthSum  float64
	PitchSum    float64
}

// bearingElevation returns the azimuth and elevation (radians, body frame)
// of vec as seen from the body, grounded on the
// Azimuth/Pitch computation shared by Flight_find_point and
// missile_Flight_find_point.
func bearingElevation(rnb geo.Mat3, vec geo.Vec3) (azimuth, elevation float64) {
	b := rnb.MulVec(vec)
	azimuth = math.Atan2(b.Y, b.X)
	elevation = math.Atan2(-b.Z, math.Sqrt(b.X*b.X+b.Y*b.Y))
	return azimuth, elevation
}

// AircraftAutopilot computes the body-rate command that steers an aircraft
// toward targetPoint, grounded verbatim on aircraft.cpp's
// Flight_find_point, including its roll-leveling bias term, the |errA| >
// 10 degree gate that switches PID tuning, and the +-170 degree roll
// anti-windup unwind.
func AircraftAutopilot(state dynamics.BodyState, throttle float64, targetPoint geo.Vec3, err *ErrorState) dynamics.ActuatorCommand {
	rbn := state.Attitude.ToDCM()
	rnb := rbn.Transpose()

	distance := targetPoint.Sub(state.Position).Norm()
	roll := attitude.ToEuler(state.Attitude).Roll

	if distance <= AircraftDistanceGate {
		err.AzimuthLast = 0
		err.PitchLast = 0
		err.RollErrLast = 0
		return dynamics.ActuatorCommand{Throttle: throttle}
	}

	azimuth, pitchAngle := bearingElevation(rnb, targetPoint.Sub(state.Position))
	azimuthV, pitchV := bearingElevation(rnb, state.Velocity)

	errA := azimuth - azimuthV
	errP := pitchAngle - pitchV

	sign := 1.0
	if errA < 0 {
		sign = -1.0
	}
	errRoll := sign * 0.4 * geo.DegToRad(roll)

	var dRoll, dPitch, dYaw float64

	if math.Abs(errA) > math.Pi/18 {
		err.AzimuthSum += errA
		err.PitchSum += errP
		if math.Abs(roll) <= 90 {
			dRoll = RollPID.Output(errA+errRoll, err.AzimuthSum, errA-err.AzimuthLast+errRoll-err.RollErrLast)
		} else {
			dRoll = RollPID.Output(errRoll, 0, 0)
		}
		dPitch = PitchPID.Output(errP, err.PitchSum, errP-err.PitchLast)
		dYaw = YawPID.Output(errA, err.AzimuthSum, errA-err.AzimuthLast)
	} else {
		err.AzimuthSum += errA
		err.PitchSum += errP
		dRoll = RollPID.Output(errRoll, 0, errRoll-err.RollErrLast)
		dPitch = PitchPID.Output(errP, err.PitchSum, errP-err.PitchLast)
		dYaw = YawPID.Output(errA, err.AzimuthSum, errA-err.AzimuthLast)
	}

	if roll >= RollUnwindThreshold {
		dRoll = -RollUnwindRate
	}
	if roll <= -RollUnwindThreshold {
		dRoll = RollUnwindRate
	}

	err.AzimuthLast = errA
	err.PitchLast = errP
	err.RollErrLast = errRoll

	return dynamics.ActuatorCommand{RollRate: dRoll, PitchRate: dPitch, YawRate: dYaw, Throttle: throttle}
}

// MissileAutopilot computes the body-rate command that steers a missile
// toward targetPoint, grounded verbatim on missile.cpp's
// missile_Flight_find_point: unlike AircraftAutopilot it has no
// roll-leveling bias and no azimuth-gated PID-tuning switch, homing
// unconditionally once past MissileDistanceGate.
func MissileAutopilot(state dynamics.BodyState, throttle float64, targetPoint geo.Vec3, err *ErrorState) dynamics.ActuatorCommand {
	rbn := state.Attitude.ToDCM()
	rnb := rbn.Transpose()

	distance := targetPoint.Sub(state.Position).Norm()
	roll := attitude.ToEuler(state.Attitude).Roll

	if distance <= MissileDistanceGate {
		err.AzimuthLast = 0
		err.PitchLast = 0
		return dynamics.ActuatorCommand{Throttle: throttle}
	}

	azimuth, pitchAngle := bearingElevation(rnb, targetPoint.Sub(state.Position))
	azimuthV, pitchV := bearingElevation(rnb, state.Velocity)

	errA := azimuth - azimuthV
	errP := pitchAngle - pitchV

	err.AzimuthSum += errA
	err.PitchSum += errP

	dRoll := RollPID.Output(errA, err.AzimuthSum, errA-err.AzimuthLast)
	dPitch := PitchPID.Output(errP, err.PitchSum, errP-err.PitchLast)
	dYaw := YawPID.Output(errA, err.AzimuthSum, errA-err.AzimuthLast)

	if roll >= RollUnwindThreshold {
		dRoll = -RollUnwindRate
	}
	if roll <= -RollUnwindThreshold {
		dRoll = RollUnwindRate
	}

	err.AzimuthLast = errA
	err.PitchLast = errP

	return dynamics.ActuatorCommand{RollRate: dRoll, PitchRate: dPitch, YawRate: dYaw, Throttle: throttle}
}
