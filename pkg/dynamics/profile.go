package dynamics

import "math"

// Profile parameterizes the quartic body-axis drag (and, for aircraft, the
// velocity-squared lift term) that __f and __missile_f hard-code per
// vehicle type. The only numeric difference between the two in the
// original is the X-axis drag coefficient and the presence of lift.
type Profile struct {
	Lift         bool
	DragX        float64
	DragY        float64
	DragZ        float64
}

// AircraftProfile is grounded on aircraft.cpp's __f: k_ax=1e-9, lift
// enabled.
var AircraftProfile = Profile{
	Lift:  true,
	DragX: 1e-9,
	DragY: 1e-8,
	DragZ: 1e-6,
}

// MissileProfile is grounded on missile.cpp's __missile_f: k_ax=8e-10, no
// lift term.
var MissileProfile = Profile{
	Lift:  false,
	DragX: 8e-10,
	DragY: 1e-8,
	DragZ: 1e-6,
}

// quarticDrag returns the signed drag deceleration opposing v along one
// body axis: -sign(v) * k * |v|^4, grounded on the ax/ay/az terms common to
// both __f and __missile_f.
func quarticDrag(v, k float64) float64 {
	sign := 1.0
	if v < 0 {
		sign = -1.0
	}
	return -sign * k * math.Abs(math.Pow(v, 4))
}

// ThrustCutoffAltitude is the height above the reference point (metres)
// beyond which throttle stops contributing thrust, i.e. where the NED-down
// coordinate is below -ThrustCutoffAltitude, grounded on the thrust cutoff
// checks in both __f and __missile_f. Lift and drag still apply there.
const ThrustCutoffAltitude = 33000.0

// LiftTakeoffSpeed2 is the quadratic lift coefficient 5e-5 from __f's
// "aL = -sign(vx)*5e-5*vx^2" term (roughly 220 km/h rotation speed per the
// original's comment).
const LiftTakeoffSpeed2 = 5e-5

// LiftAltitudeScale is the divisor in the altitude attenuation
// exp(X0(2)/5000) applied to lift in __f. The check and exponent are kept
// literally: X0(2) is the NED-down coordinate, so this only engages (and
// amplifies lift) when the aircraft's position has a positive down
// component, i.e. below the reference origin. That is exactly what the
// original does; it is not corrected here.
const LiftAltitudeScale = 5000.0

// TerminalSpeedThreshold is the 340 m/s (~Mach 1 at sea level) speed above
// which the per-axis soft clamp in __f/__missile_f prevents the
// acceleration from reversing a velocity component's sign in one step.
const TerminalSpeedThreshold = 340.0

func terminalClamp(dv, v float64) float64 {
	if math.Abs(v) > TerminalSpeedThreshold && math.Abs(dv) > math.Abs(v) && dv*v < 0 {
		return -v
	}
	return dv
}
