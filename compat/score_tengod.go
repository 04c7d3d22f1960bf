// SPDX-License-Identifier: MIT

package compat

import (
	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// scoreTenGodCross scores each day stem as a ten-god of the other's day
// master. The two directions are independent; the raw score is their mean.
func scoreTenGodCross(a, b chart.Chart, s Scenario) scored {
	var out scored
	ab := symbols.TenGodOf(a.DayMaster(), b.DayMaster())
	ba := symbols.TenGodOf(b.DayMaster(), a.DayMaster())
	vab, vba := tenGodTable[s][ab], tenGodTable[s][ba]
	out.add(Evidence{Dimension: TenGodCross, Code: CodeTenGodRole, Direction: AToB, TenGod: ab, Value: vab})
	out.add(Evidence{Dimension: TenGodCross, Code: CodeTenGodRole, Direction: BToA, TenGod: ba, Value: vba})
	out.raw = (vab + vba) / 2
	return out
}
