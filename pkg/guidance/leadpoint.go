package guidance

import "github.com/daiweLi/Fast-Combat-Simulation/pkg/geo"

// NearFieldGain is the unexplained constant in the near-field lead-point
// formula (UnitDefine.cpp's "K_target = 195 * ..."). Preserved verbatim;
// no rationale for the value survives in the source.
const NearFieldGain = 195.0

// FarFieldRangeScale is the 0.001 divisor in the far-field pursuit gain
// K = ||v_t|| / (0.001*d).
const FarFieldRangeScale = 0.001

// NearFieldRangeFactor is the destroy-radius multiple (1.5x) below which
// the near-field gain takes over from the far-field one.
const NearFieldRangeFactor = 1.5

// LeadPoint computes the aim point a missile should steer toward, grounded
// on Missile_Object_C::Run's K_target/TargetMissile computation. targetPos
// and targetVel are the target's NED position and velocity; missileSpeed
// is the missile's own speed (used only in the near-field branch); distance
// is the current missile-target range; destroyRadius is the missile's
// destroy radius. If the target is stationary (zero velocity), the target
// position itself is returned since the unit heading vector is undefined.
func LeadPoint(targetPos, targetVel geo.Vec3, missileSpeed, distance, destroyRadius float64) geo.Vec3 {
	targetSpeed := targetVel.Norm()
	if targetSpeed < 1e-9 {
		return targetPos
	}

	var k float64
	if distance <= NearFieldRangeFactor*destroyRadius {
		k = NearFieldGain * targetSpeed / missileSpeed
	} else {
		k = targetSpeed / (FarFieldRangeScale * distance)
	}

	heading := targetVel.Scale(1 / targetSpeed)
	return targetPos.Add(heading.Scale(k))
}
