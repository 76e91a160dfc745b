package geo

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}

func TestGeodeticECEFRoundTrip(t *testing.T) {
	cases := []struct {
		lon, lat, alt float64
	}{
		{0, 0, 0},
		{120.5, 35.2, 1000},
		{-45.1, -20.7, 8500},
		{179.9, 89.0, 12000},
	}
	for _, c := range cases {
		x, y, z := GeodeticToECEF(c.lon, c.lat, c.alt)
		res := ECEFToGeodetic(x, y, z)
		if !res.Converged {
			t.Fatalf("ECEFToGeodetic(%v) did not converge", c)
		}
		if !almostEqual(res.LonDeg, c.lon, 1e-6) {
			t.Errorf("lon round trip: got %v want %v", res.LonDeg, c.lon)
		}
		if !almostEqual(res.LatDeg, c.lat, 1e-6) {
			t.Errorf("lat round trip: got %v want %v", res.LatDeg, c.lat)
		}
		if !almostEqual(res.Alt, c.alt, 1e-3) {
			t.Errorf("alt round trip: got %v want %v", res.Alt, c.alt)
		}
	}
}

func TestNavigationRoundTrip(t *testing.T) {
	lon0, lat0, alt0 := 120.0, 35.0, 500.0
	ned := Vec3{X: 1500, Y: -800, Z: -200}

	lon, lat, alt := NavigationToEarth(ned, lon0, lat0, alt0)
	got := EarthToNavigation(lon, lat, alt, lon0, lat0, alt0)

	if !almostEqual(got.X, ned.X, 1e-1) || !almostEqual(got.Y, ned.Y, 1e-1) || !almostEqual(got.Z, ned.Z, 1e-1) {
		t.Errorf("NED round trip: got %+v want %+v", got, ned)
	}
}

func TestEarthToNavigationAtReference(t *testing.T) {
	lon0, lat0, alt0 := 45.0, 10.0, 100.0
	ned := EarthToNavigation(lon0, lat0, alt0, lon0, lat0, alt0)
	if !almostEqual(ned.X, 0, 1e-6) || !almostEqual(ned.Y, 0, 1e-6) || !almostEqual(ned.Z, 0, 1e-6) {
		t.Errorf("reference point should map to origin, got %+v", ned)
	}
}

func TestCurvatureRadiiPositive(t *testing.T) {
	for _, lat := range []float64{-90, -45, 0, 45, 90} {
		rm, rn := CurvatureRadii(lat)
		if rm <= 0 || rn <= 0 {
			t.Errorf("curvature radii must be positive at lat=%v, got rm=%v rn=%v", lat, rm, rn)
		}
	}
}

func TestVec3Algebra(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0.5, Z: 2}

	sum := a.Add(b)
	if sum != (Vec3{X: 0, Y: 2.5, Z: 5}) {
		t.Errorf("Add: got %+v", sum)
	}

	diff := a.Sub(b)
	if diff != (Vec3{X: 2, Y: 1.5, Z: 1}) {
		t.Errorf("Sub: got %+v", diff)
	}

	unit := a.Normalize()
	if !almostEqual(unit.Norm(), 1, 1e-9) {
		t.Errorf("Normalize: norm got %v want 1", unit.Norm())
	}

	zero := Vec3{}.Normalize()
	if zero != (Vec3{}) {
		t.Errorf("Normalize of zero vector should stay zero, got %+v", zero)
	}
}

func TestMat3TransposeIsInverseForRotation(t *testing.T) {
	r := REN(33.0, 12.0)
	identity := r.Mul(r.Transpose())
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			want := 0.0
			if i == j {
				want = 1.0
			}
			if !almostEqual(identity[i][j], want, 1e-9) {
				t.Errorf("R*R^T[%d][%d] = %v, want %v", i, j, identity[i][j], want)
			}
		}
	}
}
