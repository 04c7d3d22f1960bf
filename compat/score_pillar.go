// SPDX-License-Identifier: MIT

package compat

import (
	"github.com/taufulou/bazi-app-sub000/catalog"
	"github.com/taufulou/bazi-app-sub000/chart"
)

// scoreFullPillar sweeps the 16 branch pairs and 16 stem pairs crossing
// every pillar of a with every pillar of b.
//
//	pos = Σ positive bases / 100, neg = Σ |negative bases| / 100
//	raw = 50 + 50·(pos − neg)/(pos + neg + 2)
//
// The +2 keeps a single relation from swinging the score to an extreme.
func scoreFullPillar(a, b chart.Chart, _ Scenario) scored {
	var out scored
	pa, pb := a.Pillars(), b.Pillars()
	var pos, neg float64
	tally := func(base int) {
		if base > 0 {
			pos += float64(base) / 100
		} else {
			neg += float64(-base) / 100
		}
	}

	for _, x := range pa {
		for _, y := range pb {
			if rel := crossBranch(x.Branch, y.Branch); rel.kind != catalog.KindNone {
				tally(rel.base)
				out.add(Evidence{Dimension: FullPillar, Code: CodePillarRelation, Kind: rel.kind, Pillars: pillars(x.Role, y.Role), Value: float64(rel.base)})
			}
			if el, ok := catalog.StemCombine(x.Stem, y.Stem); ok {
				tally(catalog.BaseStemCombination)
				out.add(Evidence{Dimension: FullPillar, Code: CodePillarRelation, Kind: catalog.StemCombination, Element: el, Pillars: pillars(x.Role, y.Role), Value: catalog.BaseStemCombination})
			} else if catalog.StemsClash(x.Stem, y.Stem) {
				tally(catalog.BaseStemClash)
				out.add(Evidence{Dimension: FullPillar, Code: CodePillarRelation, Kind: catalog.StemClash, Pillars: pillars(x.Role, y.Role), Value: catalog.BaseStemClash})
			}
		}
	}
	out.raw = clampRaw(neutralRaw + 50*(pos-neg)/(pos+neg+2))
	return out
}
