package attitude

import (
	"math"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/geo"
)

// Euler holds roll, pitch, yaw in degrees, Z(yaw)-Y(pitch)-X(roll) order.
type Euler struct {
	Roll, Pitch, Yaw float64
}

// NavigationToBodyDCM returns R_nb, the rotation from the navigation frame
// to the body frame, for the given Euler angles (degrees), grounded on
// coordinate.cpp's rotation_navigation_to_body. The Z1-Y2-X3 rotation
// R_n2b is built first and then transposed.
func NavigationToBodyDCM(e Euler) geo.Mat3 {
	r := geo.DegToRad(e.Roll)
	p := geo.DegToRad(e.Pitch)
	y := geo.DegToRad(e.Yaw)
	c1, s1 := math.Cos(y), math.Sin(y)
	c2, s2 := math.Cos(p), math.Sin(p)
	c3, s3 := math.Cos(r), math.Sin(r)

	rN2B := geo.Mat3{
		{c1 * c2, c1*s2*s3 - c3*s1, s1*s3 + c1*c3*s2},
		{c2 * s1, c1*c3 + s1*s2*s3, c3*s1*s2 - c1*s3},
		{-s2, c2 * s3, c2 * c3},
	}
	return rN2B.Transpose()
}

// BodyToNavigationDCM returns R_bn, grounded on coordinate.cpp's
// rotation_body_to_navigation: the transpose of NavigationToBodyDCM.
func BodyToNavigationDCM(e Euler) geo.Mat3 {
	return NavigationToBodyDCM(e).Transpose()
}

// DCMToEuler recovers Euler angles (degrees) from R_nb, grounded on
// coordinate.cpp's rotation_nb_to_euler.
func DCMToEuler(rNB geo.Mat3) Euler {
	rN2B := rNB.Transpose()
	roll := math.Atan2(rN2B[2][1], rN2B[2][2])
	pitch := math.Atan(-rN2B[2][0] / math.Sqrt(1-rN2B[2][0]*rN2B[2][0]))
	yaw := math.Atan2(rN2B[1][0], rN2B[0][0])
	return Euler{
		Roll:  geo.RadToDeg(roll),
		Pitch: geo.RadToDeg(pitch),
		Yaw:   geo.RadToDeg(yaw),
	}
}

// ToQuaternion converts Euler angles (degrees) to the body-to-navigation
// unit quaternion, grounded on coordinate.cpp's euler_to_quaternion_bn. The
// near-zero-angle case is special-cased to the exact identity quaternion,
// matching the original's guard against accumulated round-off at the
// origin.
func ToQuaternion(e Euler) Quaternion {
	if math.Abs(e.Roll) < 1e-4 && math.Abs(e.Pitch) < 1e-4 && math.Abs(e.Yaw) < 1e-4 {
		return Identity
	}
	return FromDCM(BodyToNavigationDCM(e))
}

// ToEuler converts a body-to-navigation quaternion to Euler angles
// (degrees), grounded on coordinate.cpp's quaternion_bn_to_euler.
func ToEuler(q Quaternion) Euler {
	rBN := q.ToDCM()
	return DCMToEuler(rBN.Transpose())
}
