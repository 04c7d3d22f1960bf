package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/chart/charttest"
	"github.com/taufulou/bazi-app-sub000/compat"
)

func raw(t *testing.T, d compat.Dimension, a, b chart.Chart, s compat.Scenario) float64 {
	t.Helper()
	v, err := compat.RawScore(d, a, b, s)
	require.NoError(t, err)
	return v
}

// TestFavorableElement_EvenBalance: with every element adequate each
// direction contributes 10+6+0-5-8.
func TestFavorableElement_EvenBalance(t *testing.T) {
	a := charttest.Build(t, "甲子 丙寅 戊辰 庚申")
	b := charttest.Build(t, "乙丑 丁卯 己巳 辛未")
	assert.Equal(t, 56.0, raw(t, compat.FavorableElement, a, b, compat.Romance))
}

func TestFavorableElement_SurplusOfFavorite(t *testing.T) {
	// a's day master is earth: fire favorable, water taboo.
	a := charttest.Build(t, "甲子 丙寅 戊辰 庚申")
	hot := charttest.Build(t, "乙丑 丁卯 己巳 辛未",
		charttest.WithBalance(chart.ElementBalance{Wood: 20, Fire: 40, Earth: 20, Metal: 15, Water: 5}))
	wet := charttest.Build(t, "乙丑 丁卯 己巳 辛未",
		charttest.WithBalance(chart.ElementBalance{Wood: 20, Fire: 5, Earth: 20, Metal: 15, Water: 40}))
	assert.Greater(t, raw(t, compat.FavorableElement, a, hot, compat.Romance),
		raw(t, compat.FavorableElement, a, wet, compat.Romance))
}

func TestDayStem(t *testing.T) {
	cases := []struct {
		name string
		a, b string
		mods []charttest.Mod
		want float64
	}{
		{"same element same polarity", "甲子 丙寅 甲寅 丙寅", "甲子 丙寅 甲寅 丙寅", nil, 55},
		{"same element opposite polarity", "甲子 丙寅 甲寅 丙寅", "甲子 丙寅 乙卯 丙寅", nil, 62},
		{"partner produces", "甲子 丙寅 甲寅 丙寅", "甲子 丙寅 壬寅 丙寅", nil, 70},
		{"partner produces weak subject", "甲子 丙寅 甲寅 丙寅", "甲子 丙寅 壬寅 丙寅",
			[]charttest.Mod{charttest.WithStrength(chart.Weak)}, 75},
		{"partner controls weak subject", "甲子 丙寅 甲寅 丙寅", "甲子 丙寅 庚寅 丙寅",
			[]charttest.Mod{charttest.WithStrength(chart.VeryWeak)}, 30},
		{"combination", "甲子 丙寅 甲寅 丙寅", "甲子 丙寅 己卯 丙寅",
			[]charttest.Mod{earthFriendly}, 78},
		{"adverse combination earns no bonus", "甲子 丙寅 甲寅 丙寅", "甲子 丙寅 己卯 丙寅", nil, 58},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a := charttest.Build(t, tc.a, tc.mods...)
			b := charttest.Build(t, tc.b)
			assert.Equal(t, tc.want, raw(t, compat.DayStem, a, b, compat.Business))
		})
	}
}

func TestDayStem_AdverseCombinationEvidence(t *testing.T) {
	a := charttest.Build(t, "甲子 丙寅 甲子 丙寅")
	b := charttest.Build(t, "己丑 丁卯 己丑 丁卯")
	res := compare(t, a, b, compat.Romance)
	assert.NotContains(t, codes(res), compat.CodeStemCombination)

	a = charttest.Build(t, "甲子 丙寅 甲子 丙寅", earthFriendly)
	res = compare(t, a, b, compat.Romance)
	assert.Contains(t, codes(res), compat.CodeStemCombination)
}

func TestSpousePalace(t *testing.T) {
	cases := []struct {
		da, db string
		want   float64
	}{
		{"甲子", "己丑", 90},
		{"甲子", "甲辰", 75},
		{"甲申", "甲辰", 68},
		{"甲子", "甲子", 60},
		{"甲子", "甲寅", 55},
		{"甲子", "甲酉", 40},
		{"甲午", "甲午", 40},
		{"甲子", "甲未", 35},
		{"甲丑", "甲戌", 30},
		{"甲子", "甲卯", 30},
		{"甲子", "甲午", 15},
	}
	for _, tc := range cases {
		a := charttest.Build(t, "丙寅 丙寅 "+tc.da+" 丙寅")
		b := charttest.Build(t, "丙寅 丙寅 "+tc.db+" 丙寅")
		assert.Equal(t, tc.want, raw(t, compat.SpousePalace, a, b, compat.Romance), "%s/%s", tc.da, tc.db)
	}
}

func TestTenGodCross_Asymmetric(t *testing.T) {
	// 辛 is 甲's direct officer; 甲 is 辛's direct wealth.
	a := charttest.Build(t, "丙寅 丙寅 甲子 丙寅")
	b := charttest.Build(t, "丙寅 丙寅 辛丑 丙寅")
	assert.Equal(t, 85.0, raw(t, compat.TenGodCross, a, b, compat.Romance))
	assert.Equal(t, 72.5, raw(t, compat.TenGodCross, a, b, compat.Business))
}

func TestElementComplement(t *testing.T) {
	a := charttest.Build(t, "甲子 丙寅 戊辰 庚申",
		charttest.WithBalance(chart.ElementBalance{Wood: 40, Fire: 5, Earth: 20, Metal: 20, Water: 15}))
	b := charttest.Build(t, "甲子 丙寅 戊辰 庚申",
		charttest.WithBalance(chart.ElementBalance{Wood: 5, Fire: 40, Earth: 20, Metal: 20, Water: 15}))
	assert.Equal(t, 74.0, raw(t, compat.ElementComplement, a, b, compat.Family))

	lopsided := chart.ElementBalance{Wood: 5, Fire: 5, Earth: 30, Metal: 30, Water: 30}
	c := charttest.Build(t, "甲子 丙寅 戊辰 庚申", charttest.WithBalance(lopsided))
	assert.Equal(t, 2.0, raw(t, compat.ElementComplement, c, c, compat.Family))
}

func TestFullPillar(t *testing.T) {
	zi := charttest.Build(t, "甲子 甲子 甲子 甲子")
	chou := charttest.Build(t, "己丑 己丑 己丑 己丑")
	wu := charttest.Build(t, "庚午 庚午 庚午 庚午")

	// 16 six-harmonies (80) and 16 stem combinations (70).
	assert.InDelta(t, 50+50*24.0/26.0, raw(t, compat.FullPillar, zi, chou, compat.Romance), 1e-9)
	// 16 six-clashes (-90) and 16 stem clashes (-70).
	assert.InDelta(t, 50-50*25.6/27.6, raw(t, compat.FullPillar, zi, wu, compat.Romance), 1e-9)

	// 16 repeated 午 across charts, each a self-punishment at -80.
	jiaWu := charttest.Build(t, "甲午 甲午 甲午 甲午")
	assert.InDelta(t, 50-50*12.8/14.8, raw(t, compat.FullPillar, jiaWu, jiaWu, compat.Romance), 1e-9)
}

func TestSpecialStar_ScenarioWeighted(t *testing.T) {
	a := charttest.Build(t, "甲子 丙寅 戊辰 庚申", charttest.WithStars(chart.RoleYear, chart.PeachBlossom))
	b := charttest.Build(t, "甲子 丙寅 戊辰 庚申", charttest.WithStars(chart.RoleHour, chart.RedMatchmaker))
	assert.Equal(t, 60.0, raw(t, compat.SpecialStar, a, b, compat.Romance))
	assert.Equal(t, 50.0, raw(t, compat.SpecialStar, a, b, compat.Business))

	plain := charttest.Build(t, "甲子 丙寅 戊辰 庚申")
	assert.Equal(t, 50.0, raw(t, compat.SpecialStar, plain, plain, compat.Romance))
}

func TestTiming(t *testing.T) {
	a := charttest.Build(t, "甲寅 丙寅 戊寅 庚寅", charttest.WithLuck("乙丑"))
	b := charttest.Build(t, "甲申 丙申 戊申 庚申", charttest.WithLuck("庚子"))
	// 丑子 six-harmony +25, 乙庚 combination +10.
	assert.Equal(t, 85.0, raw(t, compat.Timing, a, b, compat.Romance))

	noLuck := charttest.Build(t, "甲申 丙申 戊申 庚申")
	res, err := compat.Compare(a, noLuck, compat.Romance)
	require.NoError(t, err)
	assert.Equal(t, 50.0, res.Dimension(compat.Timing).Raw)
	assert.Contains(t, codes(res), compat.CodeTimingUnavailable)
}

func TestRawScore_Errors(t *testing.T) {
	c := charttest.Build(t, "甲子 丙寅 戊辰 庚申")
	_, err := compat.RawScore(compat.Timing, c, chart.Chart{}, compat.Romance)
	assert.ErrorIs(t, err, chart.ErrIncompleteChart)
	_, err = compat.RawScore(compat.Timing, c, c, compat.ScenarioNone)
	assert.ErrorIs(t, err, compat.ErrInvalidScenario)
	_, err = compat.RawScore(compat.Dimension(42), c, c, compat.Romance)
	assert.Error(t, err)
}

func codes(r compat.Result) []compat.Code {
	out := make([]compat.Code, len(r.Evidence))
	for i, e := range r.Evidence {
		out[i] = e.Code
	}
	return out
}
