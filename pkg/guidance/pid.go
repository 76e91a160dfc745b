// Package guidance implements the missile lead-point computation and the
// cascaded roll/pitch/yaw PID autopilots that drive an aircraft or missile
// toward a target point, grounded on FlyTac/aircraft.cpp and
// FlyTac/missile.cpp.
package guidance

// PID holds the fixed proportional/integral/derivative gains for one axis.
// Accumulation (the integral term) and the previous-error delta (the
// derivative term) are the caller's responsibility, matching the original
// functions' error/inte_error/dif_error_ parameters.
type PID struct {
	Kp, Ki, Kd float64
}

// RollPID is grounded on aircraft.cpp's PID_Roll.
var RollPID = PID{Kp: 1.0, Ki: 0.5, Kd: 10.0}

// PitchPID is grounded on aircraft.cpp's PID_Pitch.
var PitchPID = PID{Kp: 1.0, Ki: 0.0, Kd: 2.0}

// YawPID is grounded on aircraft.cpp's PID_Yaw.
var YawPID = PID{Kp: 1.0, Ki: 0.0, Kd: 20.0}

// Output evaluates the controller given the current error, the
// accumulated (integral) error, and the error delta since the last tick
// (derivative term: the raw per-tick delta, not divided by dt, as in the
// original).
func (p PID) Output(error, integralError, errorDelta float64) float64 {
	return p.Kp*error + p.Ki*integralError + p.Kd*errorDelta
}
