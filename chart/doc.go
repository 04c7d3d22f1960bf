// SPDX-License-Identifier: MIT

// Package chart models one person's four-pillar chart as consumed by the
// relationship and compatibility engines.
//
// A Chart is built once from an Input and never mutated afterwards:
//
//	c, err := chart.Build(chart.Input{
//	    Name: "a",
//	    Pillars: chart.PillarsInput{
//	        Year:  &chart.PillarInput{Stem: symbols.StemJia, Branch: symbols.BranchZi, TenGod: symbols.SevenKillings},
//	        Month: &chart.PillarInput{Stem: symbols.StemBing, Branch: symbols.BranchYin, TenGod: symbols.IndirectResource},
//	        Day:   &chart.PillarInput{Stem: symbols.StemWu, Branch: symbols.BranchChen},
//	        Hour:  &chart.PillarInput{Stem: symbols.StemGeng, Branch: symbols.BranchShen, TenGod: symbols.EatingGod},
//	    },
//	    DayMasterElement: symbols.Earth,
//	    Strength:         chart.Balanced,
//	    Preferences:      chart.PreferenceVector{...},
//	    Balance:          chart.ElementBalance{...},
//	})
//
// The ten-god label of each non-day pillar is required and must agree with
// symbols.TenGodOf(day stem, pillar stem).
//
// Everything beyond the eight symbols (ten-god labels, special stars,
// strength, the five-element preference vector, the element balance and the
// active luck pillar) is derived upstream and only validated here.
//
// Error handling:
//
//   - ErrIncompleteChart: a pillar role or a required derived fact is missing,
//     or a derived fact contradicts the pillars.
//   - ErrInvalidSymbol: a symbol is outside its enumeration (alias of
//     symbols.ErrInvalidSymbol).
//
// Both are returned wrapped in a *FieldError naming the chart and the field.
package chart
