package dynamics

import (
	"math"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/attitude"
	"github.com/daiweLi/Fast-Combat-Simulation/pkg/geo"
)

// Derivative computes the time derivative of state under the given
// actuator command and vehicle profile, grounded on aircraft.cpp's __f and
// missile.cpp's __missile_f. Position's derivative is velocity; velocity's
// derivative is drag plus (for aircraft) lift plus throttle, rotated from
// body axes into the navigation frame with gravity added; attitude's
// derivative is the quaternion rate for the commanded body angular
// velocity.
func Derivative(state BodyState, cmd ActuatorCommand, profile Profile) BodyState {
	rbn := state.Attitude.ToDCM()
	rnb := rbn.Transpose()
	vBody := rnb.MulVec(state.Velocity)

	var lift float64
	if profile.Lift {
		sign := 1.0
		if vBody.X < 0 {
			sign = -1.0
		}
		lift = -sign * LiftTakeoffSpeed2 * vBody.X * vBody.X
		if state.Position.Z > 0 {
			lift *= math.Exp(state.Position.Z / LiftAltitudeScale)
		}
	}

	ax := quarticDrag(vBody.X, profile.DragX)
	ay := quarticDrag(vBody.Y, profile.DragY)
	az := quarticDrag(vBody.Z, profile.DragZ)

	var accelBody geo.Vec3
	if state.Position.Z < -ThrustCutoffAltitude {
		accelBody = geo.Vec3{X: ax, Y: ay, Z: lift + az}
	} else {
		accelBody = geo.Vec3{X: cmd.Throttle + ax, Y: ay, Z: lift + az}
	}

	accelNav := rbn.MulVec(accelBody)
	accelNav.Z += geo.SimpleGravity

	dVel := geo.Vec3{
		X: terminalClamp(accelNav.X, state.Velocity.X),
		Y: terminalClamp(accelNav.Y, state.Velocity.Y),
		Z: terminalClamp(accelNav.Z, state.Velocity.Z),
	}

	dAttitude := attitude.Derivative(state.Attitude, cmd.AngularVelocity())

	return BodyState{
		Position: state.Velocity,
		Velocity: dVel,
		Attitude: dAttitude,
	}
}
