// SPDX-License-Identifier: MIT

package compat

import (
	"github.com/taufulou/bazi-app-sub000/catalog"
	"github.com/taufulou/bazi-app-sub000/chart"
)

// scoreSpousePalace classifies the two day branches. A helpful day stem
// combination with a six-harmony is noted as double union; its bonus is a
// knockout, not part of this score. An adverse combination is not a union.
func scoreSpousePalace(a, b chart.Chart, _ Scenario) scored {
	var out scored
	rel := crossBranch(a.DayBranch(), b.DayBranch())
	out.raw = spouseScore(rel)

	e := Evidence{Dimension: SpousePalace, Code: CodeBranchRelation, Kind: rel.kind, Pillars: pillars(chart.RoleDay, chart.RoleDay), Value: out.raw}
	if rel.same {
		e.Code = CodeSameBranch
	}
	out.add(e)

	if f := newPairFacts(a, b); f.doubleUnion() {
		out.add(Evidence{Dimension: SpousePalace, Code: CodeDoubleUnion, Element: f.combined})
	}
	return out
}

func spouseScore(rel crossRel) float64 {
	if rel.same {
		if rel.kind == catalog.SelfPunishment {
			return spouseSamePunishing
		}
		return spouseSame
	}
	switch rel.kind {
	case catalog.SixHarmony:
		return spouseSixHarmony
	case catalog.HalfHarmony:
		if rel.base == catalog.BaseHalfHarmonyPivot {
			return spouseHalfPivot
		}
		return spouseHalfOuter
	case catalog.SixBreak:
		return spouseSixBreak
	case catalog.SixHarm:
		return spouseSixHarm
	case catalog.ThreePunishment:
		return spousePunishment
	case catalog.SixClash:
		return spouseSixClash
	default:
		return spouseNone
	}
}
