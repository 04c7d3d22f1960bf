// SPDX-License-Identifier: MIT

package compat

import (
	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// scoreDayStem scores the element and polarity relation between the two day
// masters, adjusted for weak day masters and a direct stem combination. An
// adverse combination earns no bonus here; its penalty is a knockout.
func scoreDayStem(a, b chart.Chart, _ Scenario) scored {
	var out scored
	ea, eb := a.DayMasterElement(), b.DayMasterElement()
	rel := symbols.Relate(eb, ea)
	pol := 0
	if a.DayMaster().Polarity() != b.DayMaster().Polarity() {
		pol = 1
	}
	score := dayStemTable[rel][pol]
	out.add(Evidence{Dimension: DayStem, Code: CodeStemRelation, Relation: rel, Value: score})

	score += weakDirection(&out, AToB, a, rel)
	score += weakDirection(&out, BToA, b, symbols.Relate(ea, eb))

	if f := newPairFacts(a, b); f.combinationHelps() {
		score += stemCombineBonus
		out.add(Evidence{Dimension: DayStem, Code: CodeStemCombination, Element: f.combined, Value: stemCombineBonus})
	}
	out.raw = clampRaw(score)
	return out
}

// weakDirection adjusts for a weak subject; rel is the partner's element
// relative to the subject's.
func weakDirection(out *scored, dir Direction, subject chart.Chart, rel symbols.Relation) float64 {
	if !subject.Strength().IsWeak() {
		return 0
	}
	switch rel {
	case symbols.RelationGenerates:
		out.add(Evidence{Dimension: DayStem, Code: CodeWeakSupported, Direction: dir, Value: weakAdjustment})
		return weakAdjustment
	case symbols.RelationControls:
		out.add(Evidence{Dimension: DayStem, Code: CodeWeakControlled, Direction: dir, Value: -weakAdjustment})
		return -weakAdjustment
	}
	return 0
}
