// Package dynamics implements the simplified 6-DOF rigid-body model shared
// by aircraft and missiles: state representation, the body-axis
// aerodynamic derivative, and a fixed-step RK4 integrator, grounded on
// FlyTac/aircraft.cpp and FlyTac/missile.cpp.
package dynamics

import (
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/attitude"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/geo"
)

// BodyState is the full rigid-body state: NED position, NED velocity, and
// the body-to-navigation attitude quaternion. The original packs these
// into rows of a 4x4 matrix (state.h's Matrix4d state); here they are a
// plain record, and the 4x4 shape is reconstructed locally wherever the
// original algorithm needs it.
type BodyState struct {
	Position geo.Vec3
	Velocity geo.Vec3
	Attitude attitude.Quaternion
}

// AddScaled returns s + d*scale, applied component-wise to position,
// velocity, and attitude exactly as the original adds Matrix4d state and
// derivative matrices row by row (runge4's xn = in_state + 0.5*dt*k1). The
// attitude component is a plain 4-vector sum, not a rotation composition.
func (s BodyState) AddScaled(d BodyState, scale float64) BodyState {
	return BodyState{
		Position: s.Position.Add(d.Position.Scale(scale)),
		Velocity: s.Velocity.Add(d.Velocity.Scale(scale)),
		Attitude: s.Attitude.Add(d.Attitude.Scale(scale)),
	}
}

// ActuatorCommand is the control input: body-axis angular rates (rad/s) and
// throttle, grounded on aircraft.h's handle vector
// [w_roll, w_pitch, w_yaw, accelerator].
type ActuatorCommand struct {
	RollRate, PitchRate, YawRate float64
	Throttle                     float64
}

// AngularVelocity returns the command's rotation rates as a body-axis
// vector, as consumed by attitude.Derivative.
func (c ActuatorCommand) AngularVelocity() geo.Vec3 {
	return geo.Vec3{X: c.RollRate, Y: c.PitchRate, Z: c.YawRate}
}
