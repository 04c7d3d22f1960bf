// SPDX-License-Identifier: MIT

package compat

import "math"

// Amplifier parameters.
const (
	AmplifierMidpoint  = 50.0
	AmplifierSteepness = 0.06
)

// halfSpan is the distance from the midpoint to either bound.
const halfSpan = 50.0

// Amplify maps a raw score through a logistic curve rescaled so that the
// bounds and the midpoint are fixed points:
//
//	f(x) = 100·(σ(k(x−50)) − σ(−50k)) / (σ(50k) − σ(−50k))
//
// which equals 50 + 50·tanh(k(x−50)/2)/tanh(25k). f is strictly increasing;
// inputs outside [0,100] are clamped first.
func Amplify(raw float64) float64 {
	x := clampRaw(raw)
	k := AmplifierSteepness
	return AmplifierMidpoint + halfSpan*math.Tanh(k*(x-AmplifierMidpoint)/2)/math.Tanh(k*halfSpan/2)
}
