// SPDX-License-Identifier: MIT

package compat

import (
	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// scoreFavorableElement measures how well each chart's element supply feeds
// the other's preference vector, in both directions.
func scoreFavorableElement(a, b chart.Chart, _ Scenario) scored {
	var out scored
	sum := favorableDirection(&out, AToB, a, b) + favorableDirection(&out, BToA, b, a)
	out.raw = clampRaw(neutralRaw + sum)
	return out
}

// favorableDirection scores what giver supplies to receiver.
func favorableDirection(out *scored, dir Direction, receiver, giver chart.Chart) float64 {
	prefs := receiver.Preferences()
	bal := giver.Balance()
	sum := 0.0
	for _, e := range symbols.Elements() {
		d := favorableMatrix[prefs.RoleOf(e)][supplyOf(bal.Of(e))]
		if d == 0 {
			continue
		}
		code := CodeSupplyMatch
		if d < 0 {
			code = CodeSupplyMismatch
		}
		out.add(Evidence{Dimension: FavorableElement, Code: code, Direction: dir, Element: e, Value: d})
		sum += d
	}
	return sum
}
