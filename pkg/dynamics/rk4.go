package dynamics

// Step advances state by dt using classical 4th-order Runge-Kutta,
// grounded on aircraft.cpp's runge4 (and missile.cpp's identical
// __missile_runge4). The command is saturated to the vehicle's rate limits
// once before integration, matching Flight/missile_Flight calling runge4
// with an already-clipped angular_velocity. The resulting attitude is
// renormalized after the step, matching runge4's quaterntion_normalized
// call on the output state.
func Step(state BodyState, dt float64, rawCmd ActuatorCommand, profile Profile) BodyState {
	cmd := Saturate(rawCmd)

	k1 := Derivative(state, cmd, profile)
	k2 := Derivative(state.AddScaled(k1, 0.5*dt), cmd, profile)
	k3 := Derivative(state.AddScaled(k2, 0.5*dt), cmd, profile)
	k4 := Derivative(state.AddScaled(k3, dt), cmd, profile)

	sum := BodyState{
		Position: k1.Position.Add(k2.Position.Scale(2)).Add(k3.Position.Scale(2)).Add(k4.Position),
		Velocity: k1.Velocity.Add(k2.Velocity.Scale(2)).Add(k3.Velocity.Scale(2)).Add(k4.Velocity),
		Attitude: k1.Attitude.Add(k2.Attitude.Scale(2)).Add(k3.Attitude.Scale(2)).Add(k4.Attitude),
	}

	next := state.AddScaled(sum, dt/6.0)
	next.Attitude = next.Attitude.Normalized()
	return next
}
