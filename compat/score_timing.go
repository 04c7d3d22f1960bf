// SPDX-License-Identifier: MIT

package compat

import (
	"github.com/taufulou/bazi-app-sub000/catalog"
	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// scoreTiming compares the active luck pillars with each other and with the
// partner's day branch. Without a luck pillar on both sides it is neutral.
func scoreTiming(a, b chart.Chart, _ Scenario) scored {
	var out scored
	la, okA := a.Luck()
	lb, okB := b.Luck()
	if !okA || !okB {
		out.raw = neutralRaw
		out.add(Evidence{Dimension: Timing, Code: CodeTimingUnavailable})
		return out
	}

	sum := 0.0
	rel := crossBranch(la.Branch, lb.Branch)
	var d float64
	if rel.same {
		d = luckSameBranch
	} else {
		d = luckBranchDelta[rel.kind]
	}
	if d != 0 {
		sum += d
		out.add(Evidence{Dimension: Timing, Code: CodeLuckRelation, Kind: rel.kind, Pillars: "a.luck/b.luck", Value: d})
	}

	if _, ok := catalog.StemCombine(la.Stem, lb.Stem); ok {
		sum += luckStemCombine
		out.add(Evidence{Dimension: Timing, Code: CodeLuckRelation, Kind: catalog.StemCombination, Pillars: "a.luck/b.luck", Value: luckStemCombine})
	} else if catalog.StemsClash(la.Stem, lb.Stem) {
		sum += luckStemClash
		out.add(Evidence{Dimension: Timing, Code: CodeLuckRelation, Kind: catalog.StemClash, Pillars: "a.luck/b.luck", Value: luckStemClash})
	}

	sum += luckAgainstDay(&out, la, b.DayBranch(), AToB, "a.luck/b.day")
	sum += luckAgainstDay(&out, lb, a.DayBranch(), BToA, "a.day/b.luck")

	out.raw = clampRaw(neutralRaw + sum)
	return out
}

func luckAgainstDay(out *scored, l chart.Luck, day symbols.Branch, dir Direction, label string) float64 {
	e, ok := catalog.ClassifyPair(l.Branch, day)
	if !ok {
		return 0
	}
	d := luckDayDelta[e.Kind]
	if d == 0 {
		return 0
	}
	out.add(Evidence{Dimension: Timing, Code: CodeLuckRelation, Direction: dir, Kind: e.Kind, Pillars: label, Value: d})
	return d
}
