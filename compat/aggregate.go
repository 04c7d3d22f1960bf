// SPDX-License-Identifier: MIT

package compat

import "github.com/taufulou/bazi-app-sub000/chart"

// scoreDimensions runs all scorers, amplifies each raw score and returns the
// dimension scores, the weighted aggregate and the collected evidence.
func scoreDimensions(a, b chart.Chart, s Scenario) ([]DimensionScore, float64, []Evidence) {
	dims := make([]DimensionScore, dimensionCount)
	var ev []Evidence
	agg := 0.0
	for _, d := range Dimensions() {
		sc := scorers[d](a, b, s)
		w := weights[s][d]
		amp := Amplify(sc.raw)
		dims[d] = DimensionScore{Dimension: d, Raw: sc.raw, Amplified: amp, Weight: w}
		agg += w * amp
		ev = append(ev, sc.evidence...)
	}
	return dims, agg, ev
}
