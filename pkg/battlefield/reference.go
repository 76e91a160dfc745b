// Package battlefield owns the aircraft and missile entity lists, the
// per-tick advance loop, and the launch/observation surface, grounded on
// CombatSimulation/UnitDefine.cpp's Battlefield_C and Aircraft_Object_C/
// Missile_Object_C.
package battlefield

// ReferencePoint anchors the NED navigation frame every entity's BodyState
// is expressed in. It is immutable once a Battlefield is constructed,
// grounded on UnitDefine.h's BattlefieldHeader, but held as a Battlefield
// field instead of a translation-unit-scoped global per the design notes:
// a process may run more than one Battlefield at once.
type ReferencePoint struct {
	LonDeg float64
	LatDeg float64
	Alt    float64
}
