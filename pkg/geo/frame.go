package geo

import "math"

// REN returns the rotation from ECEF to the local navigation (north-east-
// down) frame anchored at geodetic (lon0, lat0), grounded on coordinate.cpp's
// rotation_earth_to_navigation. It first builds the up-east-north matrix
// R_en2 and then applies the fixed axis permutation that reorders
// up-east-north into north-east-down.
func REN(lon0Deg, lat0Deg float64) Mat3 {
	lon := DegToRad(lon0Deg)
	lat := DegToRad(lat0Deg)
	sLon, cLon := math.Sin(lon), math.Cos(lon)
	sLat, cLat := math.Sin(lat), math.Cos(lat)

	ren2 := Mat3{
		{cLat * cLon, cLat * sLon, sLat},
		{-sLon, cLon, 0},
		{-sLat * cLon, -sLat * sLon, cLat},
	}

	n2n := Mat3{
		{0, 0, 1},
		{0, 1, 0},
		{-1, 0, 0},
	}

	return n2n.Mul(ren2)
}

// RNE is the inverse of REN (navigation to ECEF); for an orthogonal rotation
// matrix this is simply its transpose.
func RNE(lon0Deg, lat0Deg float64) Mat3 {
	return REN(lon0Deg, lat0Deg).Transpose()
}

// EarthToNavigation converts the geodetic position (lonDeg, latDeg, alt) into
// NED coordinates relative to the reference point (lon0Deg, lat0Deg, alt0),
// grounded on coordinate.cpp's earth_to_navigation: both points are taken to
// ECEF, differenced, then rotated into the reference point's navigation
// frame.
func EarthToNavigation(lonDeg, latDeg, alt, lon0Deg, lat0Deg, alt0 float64) Vec3 {
	x, y, z := GeodeticToECEF(lonDeg, latDeg, alt)
	x0, y0, z0 := GeodeticToECEF(lon0Deg, lat0Deg, alt0)
	delta := Vec3{X: x - x0, Y: y - y0, Z: z - z0}
	return REN(lon0Deg, lat0Deg).MulVec(delta)
}

// NavigationToEarth inverts EarthToNavigation: given a NED offset from the
// reference point (lon0Deg, lat0Deg, alt0), it returns the absolute geodetic
// position, grounded on coordinate.cpp's navigation_to_earth.
func NavigationToEarth(ned Vec3, lon0Deg, lat0Deg, alt0 float64) (lonDeg, latDeg, alt float64) {
	x0, y0, z0 := GeodeticToECEF(lon0Deg, lat0Deg, alt0)
	delta := RNE(lon0Deg, lat0Deg).MulVec(ned)
	res := ECEFToGeodetic(x0+delta.X, y0+delta.Y, z0+delta.Z)
	return res.LonDeg, res.LatDeg, res.Alt
}
