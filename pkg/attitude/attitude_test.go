package attitude

import (
	"math"
	"testing"

	"github.com/daiweLi/Fast-Combat-Simulation/pkg/geo"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestIdentityRoundTrip(t *testing.T) {
	e := Euler{}
	q := ToQuaternion(e)
	if q != Identity {
		t.Errorf("ToQuaternion(zero) = %+v, want Identity", q)
	}
	back := ToEuler(q)
	if !almostEqual(back.Roll, 0, 1e-9) || !almostEqual(back.Pitch, 0, 1e-9) || !almostEqual(back.Yaw, 0, 1e-9) {
		t.Errorf("round trip from identity: got %+v", back)
	}
}

func TestEulerQuaternionRoundTrip(t *testing.T) {
	cases := []Euler{
		{Roll: 10, Pitch: 5, Yaw: -90},
		{Roll: -45, Pitch: 30, Yaw: 120},
		{Roll: 0, Pitch: 89, Yaw: 0},
		{Roll: 170, Pitch: -10, Yaw: 45},
	}
	for _, e := range cases {
		q := ToQuaternion(e)
		if !almostEqual(q.Norm(), 1, 1e-9) {
			t.Errorf("ToQuaternion(%+v) not unit norm: %v", e, q.Norm())
		}
		back := ToEuler(q)
		if !almostEqual(geo.DegToRad(back.Roll), geo.DegToRad(e.Roll), 1e-9) {
			t.Errorf("roll round trip: got %v want %v", back.Roll, e.Roll)
		}
		if !almostEqual(geo.DegToRad(back.Pitch), geo.DegToRad(e.Pitch), 1e-9) {
			t.Errorf("pitch round trip: got %v want %v", back.Pitch, e.Pitch)
		}
		if !almostEqual(geo.DegToRad(back.Yaw), geo.DegToRad(e.Yaw), 1e-9) {
			t.Errorf("yaw round trip: got %v want %v", back.Yaw, e.Yaw)
		}
	}
}

func TestDCMRoundTrip(t *testing.T) {
	e := Euler{Roll: 33, Pitch: -12, Yaw: 200}
	rBN := BodyToNavigationDCM(e)
	q := FromDCM(rBN)
	rBN2 := q.ToDCM()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if !almostEqual(rBN[i][j], rBN2[i][j], 1e-9) {
				t.Errorf("DCM round trip [%d][%d]: got %v want %v", i, j, rBN2[i][j], rBN[i][j])
			}
		}
	}
}

func TestQuaternionNormalizedHandlesDegenerate(t *testing.T) {
	q := Quaternion{}.Normalized()
	if q != Identity {
		t.Errorf("Normalized() of zero quaternion = %+v, want Identity", q)
	}

	nanQ := Quaternion{Q0: math.NaN()}.Normalized()
	if nanQ != Identity {
		t.Errorf("Normalized() of NaN quaternion = %+v, want Identity", nanQ)
	}
}

func TestDerivativeZeroRateIsZero(t *testing.T) {
	dq := Derivative(Identity, geo.Vec3{})
	if dq != (Quaternion{}) {
		t.Errorf("Derivative with zero angular velocity should be zero, got %+v", dq)
	}
}

func TestDerivativeMatchesSkewForm(t *testing.T) {
	q := Identity
	w := geo.Vec3{X: 0.1, Y: -0.2, Z: 0.05}
	dq := Derivative(q, w)

	want := Quaternion{
		Q0: 0.5 * (-w.X*q.Q1 - w.Y*q.Q2 - w.Z*q.Q3),
		Q1: 0.5 * (w.X*q.Q0 + w.Z*q.Q2 - w.Y*q.Q3),
		Q2: 0.5 * (w.Y*q.Q0 - w.Z*q.Q1 + w.X*q.Q3),
		Q3: 0.5 * (w.Z*q.Q0 + w.Y*q.Q1 - w.X*q.Q2),
	}
	if dq != want {
		t.Errorf("Derivative: got %+v want %+v", dq, want)
	}
}

func TestDCMOrthogonal(t *testing.T) {
	e := Euler{Roll: 15, Pitch: 40, Yaw: -100}
	r := BodyToNavigationDCM(e)
	prod := r.Mul(r.Transpose())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if !almostEqual(prod[i][j], want, 1e-9) {
				t.Errorf("R*R^T[%d][%d] = %v, want %v", i, j, prod[i][j], want)
			}
		}
	}
}
