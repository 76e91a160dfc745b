package battlefield

import "errors"

// Sentinel errors surfaced at the battlefield's external boundary, grounded
// on UnitDefine.h's CS_OK/CS_LIVE/CS_NOT_LIVE/CS_MISS return-code family,
// promoted to a typed set per the design notes. NotLive is deliberately not
// here: advancing a dead entity is silently skipped, not an error.
var (
	ErrCapacity    = errors.New("battlefield: at capacity")
	ErrDuplicateID = errors.New("battlefield: sim id already in use")
	ErrNanInput    = errors.New("battlefield: nan detected in integrator state")
	ErrBadIndex    = errors.New("battlefield: index out of range")
)
