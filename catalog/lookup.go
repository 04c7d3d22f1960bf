// SPDX-License-Identifier: MIT

package catalog

import (
	"slices"

	"github.com/taufulou/bazi-app-sub000/symbols"
)

// pairIndex[a][b] is 1+position in pairTable, or 0 when unrelated.
var pairIndex = func() (idx [13][13]uint8) {
	for i, e := range pairTable {
		idx[e.A][e.B] = uint8(i + 1)
		idx[e.B][e.A] = uint8(i + 1)
	}
	return idx
}()

// ClassifyPair returns the pairwise catalog entry for two distinct branches.
// At most one of SixHarmony, SixClash, SixHarm and SixBreak ever applies.
// Invalid or equal branches report false.
func ClassifyPair(a, b symbols.Branch) (PairEntry, bool) {
	if !a.Valid() || !b.Valid() || a == b {
		return PairEntry{}, false
	}
	i := pairIndex[a][b]
	if i == 0 {
		return PairEntry{}, false
	}
	return pairTable[i-1], true
}

// PairEntries returns a copy of the pairwise catalog.
func PairEntries() []PairEntry { return slices.Clone(pairTable[:]) }

// ThreeHarmonies returns the four three-harmony trios.
func ThreeHarmonies() []Trio { return slices.Clone(threeHarmonyTable[:]) }

// ThreeMeetings returns the four three-meeting trios.
func ThreeMeetings() []Trio { return slices.Clone(threeMeetingTable[:]) }

// Punishments returns the punishment groups.
func Punishments() []PunishGroup {
	out := make([]PunishGroup, len(punishTable))
	for i, g := range punishTable {
		out[i] = PunishGroup{Name: g.Name, Branches: slices.Clone(g.Branches)}
	}
	return out
}

// SelfPunishing reports whether a repeated b punishes itself.
func SelfPunishing(b symbols.Branch) bool {
	return slices.Contains(selfPunishTable[:], b)
}

// HalfMatch is a partial three-harmony: two distinct members of Trio.
type HalfMatch struct {
	Trio Trio
	Base int // BaseHalfHarmonyPivot when the pivot is present, else BaseHalfHarmonyOuter
}

// HalfHarmonyOf reports whether a and b are two distinct members of the same
// three-harmony trio.
func HalfHarmonyOf(a, b symbols.Branch) (HalfMatch, bool) {
	if a == b {
		return HalfMatch{}, false
	}
	for _, t := range threeHarmonyTable {
		if t.Contains(a) && t.Contains(b) {
			return HalfMatch{Trio: t, Base: halfBase(t, a, b)}, true
		}
	}
	return HalfMatch{}, false
}

func halfBase(t Trio, a, b symbols.Branch) int {
	if a == t.Pivot || b == t.Pivot {
		return BaseHalfHarmonyPivot
	}
	return BaseHalfHarmonyOuter
}

// PunishmentPair classifies a two-branch punishment for cross-chart use:
// 子卯; any two distinct members of a three-member group; or the same
// self-punishing branch on both sides.
func PunishmentPair(a, b symbols.Branch) (Kind, bool) {
	if !a.Valid() || !b.Valid() {
		return KindNone, false
	}
	if a == b {
		if SelfPunishing(a) {
			return SelfPunishment, true
		}
		return KindNone, false
	}
	for _, g := range punishTable {
		if g.Contains(a) && g.Contains(b) {
			return ThreePunishment, true
		}
	}
	return KindNone, false
}

// MatchTrio reports whether the three branches are exactly the members of t,
// in any order.
func MatchTrio(t Trio, a, b, c symbols.Branch) bool {
	if a == b || b == c || a == c {
		return false
	}
	return t.Contains(a) && t.Contains(b) && t.Contains(c)
}

// StemCombine returns the resultant element when a and b combine.
func StemCombine(a, b symbols.Stem) (symbols.Element, bool) {
	for _, p := range stemCombinationTable {
		if (p.A == a && p.B == b) || (p.A == b && p.B == a) {
			return p.Element, true
		}
	}
	return symbols.ElementNone, false
}

// StemsClash reports whether a and b share polarity and one controls the
// other (甲庚, 乙辛, 丙壬, 丁癸, 甲戊, …).
func StemsClash(a, b symbols.Stem) bool {
	if !a.Valid() || !b.Valid() || a.Polarity() != b.Polarity() {
		return false
	}
	r := symbols.Relate(a.Element(), b.Element())
	return r == symbols.RelationControls || r == symbols.RelationControlledBy
}
