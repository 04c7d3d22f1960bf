// SPDX-License-Identifier: MIT

package compat

import "github.com/taufulou/bazi-app-sub000/chart"

// scoreSpecialStar sums the scenario deltas of every pairing between a star
// of a and a star of b.
func scoreSpecialStar(a, b chart.Chart, s Scenario) scored {
	var out scored
	sum := 0.0
	for _, x := range a.Stars() {
		for _, y := range b.Stars() {
			row, ok := starTable[pairOf(x, y)]
			if !ok || row[s] == 0 {
				continue
			}
			sum += row[s]
			out.add(Evidence{Dimension: SpecialStar, Code: CodeStarPairing, Stars: []chart.Star{x, y}, Value: row[s]})
		}
	}
	out.raw = clampRaw(neutralRaw + sum)
	return out
}
