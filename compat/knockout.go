// SPDX-License-Identifier: MIT

package compat

import (
	"github.com/taufulou/bazi-app-sub000/catalog"
	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/relation"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// Polarity lean threshold: a chart leans yang (or yin) with at least this
// many of its eight symbols of that polarity.
const leanThreshold = 6

// pairFacts holds the day-pillar facts shared by several knockout checks.
type pairFacts struct {
	a, b       chart.Chart
	combined   symbols.Element // resultant of a day-stem combination, or none
	stemClash  bool
	dayBranch  catalog.Kind // pairwise kind of the two day branches
	dayA, dayB symbols.Branch
}

func newPairFacts(a, b chart.Chart) pairFacts {
	f := pairFacts{
		a: a, b: b,
		stemClash: catalog.StemsClash(a.DayMaster(), b.DayMaster()),
		dayA:      a.DayBranch(),
		dayB:      b.DayBranch(),
	}
	if el, ok := catalog.StemCombine(a.DayMaster(), b.DayMaster()); ok {
		f.combined = el
	}
	if e, ok := catalog.ClassifyPair(f.dayA, f.dayB); ok {
		f.dayBranch = e.Kind
	}
	return f
}

// combinationAdverse reports whether the combined element is taboo or enemy
// for either chart.
func (f pairFacts) combinationAdverse() bool {
	return f.a.Preferences().RoleOf(f.combined).Unfavorable() ||
		f.b.Preferences().RoleOf(f.combined).Unfavorable()
}

// combinationHelps reports a day-stem combination whose element is not adverse.
func (f pairFacts) combinationHelps() bool {
	return f.combined != symbols.ElementNone && !f.combinationAdverse()
}

// doubleUnion reports a helpful day-stem combination over six-harmony day branches.
func (f pairFacts) doubleUnion() bool {
	return f.combinationHelps() && f.dayBranch == catalog.SixHarmony
}

// evaluateKnockouts returns the fired knockouts for s in table order and
// whether the heaven-overcome-earth-clash cap applies.
func evaluateKnockouts(a, b chart.Chart, s Scenario) ([]Knockout, bool) {
	f := newPairFacts(a, b)
	var out []Knockout
	capped := false
	for _, r := range knockoutTable {
		g := grade(r.id, f)
		if g == 0 {
			continue
		}
		d := r.grades[s][g-1]
		if d == 0 {
			continue
		}
		out = append(out, Knockout{ID: r.id, Grade: g, Delta: d})
		if r.id == KnockoutHeavenOvercomeEarthClash {
			capped = true
		}
	}
	return out, capped
}

// grade returns 0 when rule id does not apply, else its grade (1 or 2).
func grade(id KnockoutID, f pairFacts) int {
	switch id {
	case KnockoutDoubleUnion:
		return boolGrade(f.doubleUnion())
	case KnockoutAdverseCombination:
		return boolGrade(f.combined != symbols.ElementNone && f.combinationAdverse())
	case KnockoutSevereClash:
		if f.dayBranch != catalog.SixClash {
			return 0
		}
		if cardinalClash(f.dayA, f.dayB) {
			return 2
		}
		return 1
	case KnockoutIdenticalChart:
		return boolGrade(f.a.Equal(f.b))
	case KnockoutLonelyStar:
		return boolGrade(lonely(f.a) && lonely(f.b))
	case KnockoutMixedOfficer:
		return boolGrade(mixedOfficer(f.a, f.b)) + boolGrade(mixedOfficer(f.b, f.a))
	case KnockoutUnstableSpousePalace:
		return boolGrade(unstableSpousePalace(f.a)) + boolGrade(unstableSpousePalace(f.b))
	case KnockoutYinYangMismatch:
		if f.a.DayMaster().Polarity() != f.b.DayMaster().Polarity() {
			return 0
		}
		if lean(f.a) != symbols.PolarityNone && lean(f.a) == lean(f.b) {
			return 2
		}
		return 1
	case KnockoutFavorableConflict:
		return boolGrade(favorableConflict(f.a, f.b)) + boolGrade(favorableConflict(f.b, f.a))
	case KnockoutFavorableReinforcement:
		return boolGrade(f.a.DayMasterElement() == f.b.Preferences().Favorable) +
			boolGrade(f.b.DayMasterElement() == f.a.Preferences().Favorable)
	case KnockoutHeavenOvercomeEarthClash:
		return boolGrade(f.stemClash && f.dayBranch == catalog.SixClash)
	default:
		return 0
	}
}

func boolGrade(ok bool) int {
	if ok {
		return 1
	}
	return 0
}

// cardinalClash reports 子午 or 卯酉.
func cardinalClash(x, y symbols.Branch) bool {
	for _, b := range [2]symbols.Branch{symbols.BranchZi, symbols.BranchMao} {
		if (x == b && y == b.Opposite()) || (y == b && x == b.Opposite()) {
			return true
		}
	}
	return false
}

func lonely(c chart.Chart) bool {
	return c.HasStar(chart.LonelyStar) || c.HasStar(chart.WidowStar)
}

// mixedOfficer reports whether holder already carries both officer labels and
// the partner's day stem adds another officer.
func mixedOfficer(holder, partner chart.Chart) bool {
	return holder.HasTenGod(symbols.DirectOfficer) &&
		holder.HasTenGod(symbols.SevenKillings) &&
		symbols.TenGodOf(holder.DayMaster(), partner.DayMaster()).IsOfficer()
}

// unstableSpousePalace reports an intra-chart six-clash or self-punishment
// touching the day pillar.
func unstableSpousePalace(c chart.Chart) bool {
	for _, f := range relation.Detect(c) {
		if (f.Kind == catalog.SixClash || f.Kind == catalog.SelfPunishment) && f.Involves(chart.RoleDay) {
			return true
		}
	}
	return false
}

// lean returns the polarity held by at least leanThreshold of the eight
// symbols, or none.
func lean(c chart.Chart) symbols.Polarity {
	switch n := c.YangCount(); {
	case n >= leanThreshold:
		return symbols.Yang
	case 8-n >= leanThreshold:
		return symbols.Yin
	default:
		return symbols.PolarityNone
	}
}

// favorableConflict reports whether giver's favorable element is taboo or
// enemy for other.
func favorableConflict(giver, other chart.Chart) bool {
	return other.Preferences().RoleOf(giver.Preferences().Favorable).Unfavorable()
}
