// SPDX-License-Identifier: MIT

package compat

import (
	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// scoreElementComplement rewards one chart's surplus meeting the other's
// deficit and penalizes shared deficits or shared surpluses.
func scoreElementComplement(a, b chart.Chart, _ Scenario) scored {
	var out scored
	sum := 0.0
	ba, bb := a.Balance(), b.Balance()
	for _, e := range symbols.Elements() {
		la, lb := supplyOf(ba.Of(e)), supplyOf(bb.Of(e))
		var code Code
		var d float64
		var dir Direction
		switch {
		case la == surplus && lb == deficit:
			code, d, dir = CodeElementSupply, complementMatch, AToB
		case la == deficit && lb == surplus:
			code, d, dir = CodeElementSupply, complementMatch, BToA
		case la == deficit && lb == deficit:
			code, d = CodeDoubleDeficit, complementDeficit
		case la == surplus && lb == surplus:
			code, d = CodeDoubleSurplus, complementSurplus
		default:
			continue
		}
		out.add(Evidence{Dimension: ElementComplement, Code: code, Direction: dir, Element: e, Value: d})
		sum += d
	}
	out.raw = clampRaw(neutralRaw + sum)
	return out
}
