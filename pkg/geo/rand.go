package geo

import "math/rand"

// randFloat mirrors the original's (double)rand()/RAND_MAX: a uniform
// sample in [0,1) from the package-level math/rand source.
func randFloat() float64 { return rand.Float64() }
