// Package attitude implements Euler angle, direction-cosine matrix, and
// unit-quaternion representations of orientation, and conversions between
// them, grounded on Tools/coordinate.cpp and FlyTac/aircraft.cpp.
package attitude

import (
	"math"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/geo"
)

// Quaternion is a unit quaternion representing the rotation from the body
// frame to the navigation (NED) frame: q = [q0, q1, q2, q3] with q0 the
// scalar part.
type Quaternion struct {
	Q0, Q1, Q2, Q3 float64
}

// Identity is the no-rotation quaternion.
var Identity = Quaternion{Q0: 1}

// Norm returns the Euclidean norm of q.
func (q Quaternion) Norm() float64 {
	return math.Sqrt(q.Q0*q.Q0 + q.Q1*q.Q1 + q.Q2*q.Q2 + q.Q3*q.Q3)
}

// Normalized returns q scaled to unit norm, grounded on
// coordinate.cpp's quaterntion_normalized. If q's norm is not finite or is
// (numerically) zero, Identity is returned rather than dividing by zero or
// propagating NaN.
func (q Quaternion) Normalized() Quaternion {
	n := q.Norm()
	if n < 1e-12 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Identity
	}
	return Quaternion{Q0: q.Q0 / n, Q1: q.Q1 / n, Q2: q.Q2 / n, Q3: q.Q3 / n}
}

// ToDCM returns the body-to-navigation direction cosine matrix R_bn for q,
// grounded on coordinate.cpp's quaternion_to_rotation.
func (q Quaternion) ToDCM() geo.Mat3 {
	q0, q1, q2, q3 := q.Q0, q.Q1, q.Q2, q.Q3
	return geo.Mat3{
		{q0*q0 + q1*q1 - q2*q2 - q3*q3, 2 * (q1*q2 - q0*q3), 2 * (q1*q3 + q0*q2)},
		{2 * (q1*q2 + q0*q3), q0*q0 - q1*q1 + q2*q2 - q3*q3, 2 * (q2*q3 - q0*q1)},
		{2 * (q1*q3 - q0*q2), 2 * (q2*q3 + q0*q1), q0*q0 - q1*q1 - q2*q2 + q3*q3},
	}
}

// FromDCM recovers the unit quaternion for a rotation matrix R (interpreted
// as R_bn, body-to-navigation), grounded on coordinate.cpp's
// rotation_to_quaternion. It uses Shepperd's method: when the scalar
// component would be computed too close to zero (|q0| < 1e-4), it switches
// to whichever diagonal entry of R is largest to keep the division
// well-conditioned.
func FromDCM(r geo.Mat3) Quaternion {
	var q Quaternion
	q.Q0 = 0.5 * math.Sqrt(math.Max(0, 1+r[0][0]+r[1][1]+r[2][2]))

	if math.Abs(q.Q0) < 1e-4 {
		switch {
		case r[0][0] > r[1][1] && r[0][0] > r[2][2]:
			t := 2 * math.Sqrt(1+r[0][0]-r[1][1]-r[2][2])
			q.Q0 = (r[2][1] - r[1][2]) / t
			q.Q1 = t / 4
			q.Q2 = (r[0][1] + r[1][0]) / t
			q.Q3 = (r[0][2] + r[2][0]) / t
		case r[1][1] > r[0][0] && r[1][1] > r[2][2]:
			t := 2 * math.Sqrt(1-r[0][0]+r[1][1]-r[2][2])
			q.Q0 = (r[0][2] - r[2][0]) / t
			q.Q1 = (r[0][1] + r[1][0]) / t
			q.Q2 = t / 4
			q.Q3 = (r[2][1] + r[1][2]) / t
		default:
			t := 2 * math.Sqrt(1-r[0][0]-r[1][1]+r[2][2])
			q.Q0 = (r[1][0] - r[0][1]) / t
			q.Q1 = (r[0][2] + r[2][0]) / t
			q.Q2 = (r[1][2] + r[2][1]) / t
			q.Q3 = t / 4
		}
	} else {
		q.Q1 = (r[2][1] - r[1][2]) / (4 * q.Q0)
		q.Q2 = (r[0][2] - r[2][0]) / (4 * q.Q0)
		q.Q3 = (r[1][0] - r[0][1]) / (4 * q.Q0)
	}

	return q.Normalized()
}

// Derivative returns the quaternion rate dq/dt for a body angular velocity
// w (rad/s, body axes), grounded on aircraft.cpp's
// angularvelocity_to_d_quaternion: dq = 0.5 * W(w) * q.
func Derivative(q Quaternion, w geo.Vec3) Quaternion {
	wx, wy, wz := w.X, w.Y, w.Z
	return Quaternion{
		Q0: 0.5 * (-wx*q.Q1 - wy*q.Q2 - wz*q.Q3),
		Q1: 0.5 * (wx*q.Q0 + wz*q.Q2 - wy*q.Q3),
		Q2: 0.5 * (wy*q.Q0 - wz*q.Q1 + wx*q.Q3),
		Q3: 0.5 * (wz*q.Q0 + wy*q.Q1 - wx*q.Q2),
	}
}

func (q Quaternion) Add(o Quaternion) Quaternion {
	return Quaternion{q.Q0 + o.Q0, q.Q1 + o.Q1, q.Q2 + o.Q2, q.Q3 + o.Q3}
}

func (q Quaternion) Scale(s float64) Quaternion {
	return Quaternion{q.Q0 * s, q.Q1 * s, q.Q2 * s, q.Q3 * s}
}
