package geo

import "math"

// CurvatureRadii returns the meridian radius R_M and prime-vertical radius
// R_N at the given geodetic latitude (degrees), grounded on
// coordinate.cpp's earth_curvature_radius. Fails (returns NaN, NaN) only
// when latDeg is itself NaN.
func CurvatureRadii(latDeg float64) (rm, rn float64) {
	if math.IsNaN(latDeg) {
		return math.NaN(), math.NaN()
	}
	l := DegToRad(latDeg)
	s2 := math.Sin(l) * math.Sin(l)
	rm = EquatorialRadius * (1 - 2*Flattening + 3*Flattening*s2)
	rn = EquatorialRadius * (1 + Flattening*s2)
	return rm, rn
}

// GeodeticToECEF converts (lon, lat, alt) in degrees/degrees/metres to
// earth-centered earth-fixed Cartesian coordinates, grounded on
// coordinate.cpp's llh_to_xyz.
func GeodeticToECEF(lonDeg, latDeg, alt float64) (x, y, z float64) {
	lon := DegToRad(lonDeg)
	lat := DegToRad(latDeg)
	_, rn := CurvatureRadii(latDeg)

	x = (alt + rn) * math.Cos(lat) * math.Cos(lon)
	y = (alt + rn) * math.Cos(lat) * math.Sin(lon)
	z = (rn*(1-Flattening)*(1-Flattening) + alt) * math.Sin(lat)
	return x, y, z
}

// MaxECEFIterations bounds the ECEFToGeodetic fixed-point iteration.
const MaxECEFIterations = 1000

// ECEFToGeodeticResult reports whether the iterative solve converged.
type ECEFToGeodeticResult struct {
	LonDeg, LatDeg, Alt float64
	Converged           bool
}

// ECEFToGeodetic inverts GeodeticToECEF by fixed-point iteration on
// latitude, grounded on coordinate.cpp's xyz_to_llh. Longitude is
// atan2(y,x). Iteration stops when consecutive latitude estimates differ by
// less than 1e-6 rad or after MaxECEFIterations, whichever comes first; if
// the loop is exhausted without convergence, Converged is false and the
// caller receives the best estimate reached (spec's IterDidNotConverge
// warning).
func ECEFToGeodetic(x, y, z float64) ECEFToGeodeticResult {
	lon := math.Atan2(y, x)
	e1 := firstEccentricity()

	latI := math.Atan(z / (math.Pow(1-Flattening, 2) * math.Sqrt(x*x+y*y)))
	var hPlusRN, rnI, latIP1 float64
	converged := false
	for i := 0; i < MaxECEFIterations; i++ {
		hPlusRN = x / (math.Cos(latI) * math.Cos(lon))
		_, rnI = CurvatureRadii(RadToDeg(latI))
		latIP1 = math.Atan(hPlusRN * z / ((hPlusRN - rnI*e1*e1) * math.Sqrt(x*x+y*y)))
		if math.Abs(latIP1-latI) < 1e-6 {
			latI = latIP1
			converged = true
			break
		}
		latI = latIP1
	}

	// Altitude is taken at the final latitude, in the form p*cos(lat) +
	// (z + R_N*e^2*sin(lat))*sin(lat) - R_N, which equals p/cos(lat) - R_N
	// but is far less sensitive to the residual latitude error.
	sinLat, cosLat := math.Sin(latI), math.Cos(latI)
	_, rn := CurvatureRadii(RadToDeg(latI))
	alt := math.Sqrt(x*x+y*y)*cosLat + (z+rn*e1*e1*sinLat)*sinLat - rn

	return ECEFToGeodeticResult{
		LonDeg:    RadToDeg(lon),
		LatDeg:    RadToDeg(latI),
		Alt:       alt,
		Converged: converged,
	}
}
