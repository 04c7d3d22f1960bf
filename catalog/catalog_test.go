package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taufulou/bazi-app-sub000/catalog"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// TestPairwiseExclusive walks all 66 unordered pairs and checks each lands in
// at most one pairwise kind, with six of each harmony/clash/harm kind.
func TestPairwiseExclusive(t *testing.T) {
	counts := map[catalog.Kind]int{}
	bs := symbols.Branches()
	pairs := 0
	for i := 0; i < len(bs); i++ {
		for j := i + 1; j < len(bs); j++ {
			pairs++
			e, ok := catalog.ClassifyPair(bs[i], bs[j])
			back, okBack := catalog.ClassifyPair(bs[j], bs[i])
			require.Equal(t, ok, okBack)
			if !ok {
				continue
			}
			assert.Equal(t, e, back, "pair %s%s is symmetric", bs[i], bs[j])
			assert.True(t, e.Kind.IsPairwise())
			counts[e.Kind]++
		}
	}
	assert.Equal(t, 66, pairs)
	assert.Equal(t, 6, counts[catalog.SixHarmony])
	assert.Equal(t, 6, counts[catalog.SixClash])
	assert.Equal(t, 6, counts[catalog.SixHarm])
	assert.Equal(t, 4, counts[catalog.SixBreak])

	// Distinct rows of the table never repeat a pair.
	seen := map[[2]symbols.Branch]bool{}
	for _, e := range catalog.PairEntries() {
		k := [2]symbols.Branch{min(e.A, e.B), max(e.A, e.B)}
		assert.False(t, seen[k], "duplicate pair %s%s", e.A, e.B)
		seen[k] = true
	}
}

// TestClashesAreOpposites ensures every clash is between cyclic opposites.
func TestClashesAreOpposites(t *testing.T) {
	for _, b := range symbols.Branches() {
		e, ok := catalog.ClassifyPair(b, b.Opposite())
		require.True(t, ok)
		assert.Equal(t, catalog.SixClash, e.Kind)
	}
}

// TestZiChouZiWu pins the two canonical pairs.
func TestZiChouZiWu(t *testing.T) {
	e, ok := catalog.ClassifyPair(symbols.BranchZi, symbols.BranchChou)
	require.True(t, ok)
	assert.Equal(t, catalog.SixHarmony, e.Kind)
	assert.Equal(t, symbols.Earth, e.Element)
	assert.Equal(t, 80, e.Kind.Base())

	e, ok = catalog.ClassifyPair(symbols.BranchZi, symbols.BranchWu)
	require.True(t, ok)
	assert.Equal(t, catalog.SixClash, e.Kind)
	assert.Equal(t, -90, e.Kind.Base())

	_, ok = catalog.ClassifyPair(symbols.BranchZi, symbols.BranchZi)
	assert.False(t, ok)
	_, ok = catalog.ClassifyPair(symbols.BranchNone, symbols.BranchZi)
	assert.False(t, ok)
}

// TestStrengthOrdering checks the declared ordering of base strengths.
func TestStrengthOrdering(t *testing.T) {
	assert.Greater(t, catalog.ThreeMeeting.Base(), catalog.ThreeHarmony.Base())
	assert.Greater(t, catalog.ThreeHarmony.Base(), catalog.SixHarmony.Base())
	assert.Greater(t, catalog.SixHarmony.Base(), catalog.BaseHalfHarmonyPivot)
	assert.Greater(t, catalog.BaseHalfHarmonyPivot, catalog.BaseHalfHarmonyOuter)

	assert.Less(t, catalog.SixClash.Base(), catalog.ThreePunishment.Base())
	assert.Less(t, catalog.ThreePunishment.Base(), catalog.SixHarm.Base())
	assert.Equal(t, catalog.ThreePunishment.Base(), catalog.SelfPunishment.Base())
	assert.Less(t, catalog.SelfPunishment.Base(), catalog.SixBreak.Base())
	assert.Less(t, catalog.SixHarm.Base(), catalog.SixBreak.Base())
}

// TestKindsExhaustive ensures every kind has a name, a base and a priority.
func TestKindsExhaustive(t *testing.T) {
	kinds := catalog.Kinds()
	require.Len(t, kinds, 11)
	for i, k := range kinds {
		assert.True(t, k.Valid())
		assert.NotZero(t, k.Base(), "kind %s", k)
		assert.NotContains(t, k.String(), "Kind(")
		if i > 0 {
			assert.Less(t, kinds[i-1].Priority(), k.Priority())
		}
	}
	assert.False(t, catalog.KindNone.Valid())
	assert.Equal(t, 0, catalog.KindNone.Base())
	assert.True(t, catalog.ThreePunishment.Punitive())
	assert.True(t, catalog.SelfPunishment.Punitive())
	assert.False(t, catalog.SixClash.Punitive())
}

// TestHalfHarmony distinguishes pivot pairs from the outer pair.
func TestHalfHarmony(t *testing.T) {
	m, ok := catalog.HalfHarmonyOf(symbols.BranchShen, symbols.BranchZi)
	require.True(t, ok)
	assert.Equal(t, symbols.Water, m.Trio.Element)
	assert.Equal(t, 70, m.Base)

	m, ok = catalog.HalfHarmonyOf(symbols.BranchChen, symbols.BranchZi)
	require.True(t, ok)
	assert.Equal(t, 70, m.Base)

	m, ok = catalog.HalfHarmonyOf(symbols.BranchShen, symbols.BranchChen)
	require.True(t, ok)
	assert.Equal(t, 60, m.Base)

	_, ok = catalog.HalfHarmonyOf(symbols.BranchShen, symbols.BranchWu)
	assert.False(t, ok)
	_, ok = catalog.HalfHarmonyOf(symbols.BranchZi, symbols.BranchZi)
	assert.False(t, ok)
}

// TestTrios checks membership and MatchTrio.
func TestTrios(t *testing.T) {
	for _, tr := range catalog.ThreeHarmonies() {
		assert.True(t, tr.Contains(tr.Pivot))
		assert.True(t, catalog.MatchTrio(tr, tr.Branches[2], tr.Branches[0], tr.Branches[1]))
		assert.False(t, catalog.MatchTrio(tr, tr.Branches[0], tr.Branches[0], tr.Branches[1]))
		// Pivot element equals the trio element.
		assert.Equal(t, tr.Element, tr.Pivot.Element())
	}
	for _, tr := range catalog.ThreeMeetings() {
		for _, b := range tr.Branches {
			// Meetings are seasonal; 辰未戌丑 are earth but sit in their season.
			if b.Element() != symbols.Earth {
				assert.Equal(t, tr.Element, b.Element())
			}
		}
	}
}

// TestPunishmentPair covers group members, the uncivil pair and self-punishment.
func TestPunishmentPair(t *testing.T) {
	k, ok := catalog.PunishmentPair(symbols.BranchYin, symbols.BranchShen)
	require.True(t, ok)
	assert.Equal(t, catalog.ThreePunishment, k)

	k, ok = catalog.PunishmentPair(symbols.BranchMao, symbols.BranchZi)
	require.True(t, ok)
	assert.Equal(t, catalog.ThreePunishment, k)

	k, ok = catalog.PunishmentPair(symbols.BranchWu, symbols.BranchWu)
	require.True(t, ok)
	assert.Equal(t, catalog.SelfPunishment, k)

	_, ok = catalog.PunishmentPair(symbols.BranchZi, symbols.BranchZi)
	assert.False(t, ok)
	_, ok = catalog.PunishmentPair(symbols.BranchZi, symbols.BranchChou)
	assert.False(t, ok)

	assert.Len(t, catalog.Punishments(), 3)
	assert.True(t, catalog.SelfPunishing(symbols.BranchHai))
	assert.False(t, catalog.SelfPunishing(symbols.BranchZi))
}

// TestStems covers the five combinations and the clash rule.
func TestStems(t *testing.T) {
	el, ok := catalog.StemCombine(symbols.StemJi, symbols.StemJia)
	require.True(t, ok)
	assert.Equal(t, symbols.Earth, el)

	el, ok = catalog.StemCombine(symbols.StemWu, symbols.StemGui)
	require.True(t, ok)
	assert.Equal(t, symbols.Fire, el)

	_, ok = catalog.StemCombine(symbols.StemJia, symbols.StemGeng)
	assert.False(t, ok)

	assert.True(t, catalog.StemsClash(symbols.StemJia, symbols.StemGeng))
	assert.True(t, catalog.StemsClash(symbols.StemDing, symbols.StemGui))
	assert.True(t, catalog.StemsClash(symbols.StemJia, symbols.StemWu))
	assert.False(t, catalog.StemsClash(symbols.StemJia, symbols.StemJi), "combination is not a clash")
	assert.False(t, catalog.StemsClash(symbols.StemJia, symbols.StemBing), "generation is not a clash")

	clashes := 0
	ss := symbols.Stems()
	for i := range ss {
		for j := i + 1; j < len(ss); j++ {
			if catalog.StemsClash(ss[i], ss[j]) {
				clashes++
				_, comb := catalog.StemCombine(ss[i], ss[j])
				assert.False(t, comb)
			}
		}
	}
	assert.Equal(t, 10, clashes)
}
