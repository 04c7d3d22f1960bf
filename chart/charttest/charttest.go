// SPDX-License-Identifier: MIT

// Package charttest builds fixture charts from compact pillar literals for
// tests across the module.
//
//	c := charttest.Build(t, "甲子 丙寅 戊辰 庚申")
//	c := charttest.Build(t, "甲子 丙寅 戊辰 庚申", charttest.WithLuck("乙丑"))
//
// Derived facts default to a weak-leaning but valid profile: the day-master
// element is taken from the day stem, strength is Balanced, the preference
// vector is resource/companion/output/wealth/officer relative to the day
// master, and the element balance is an even 20 % each.
package charttest

import (
	"fmt"
	"strings"
	"testing"

	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// Mod adjusts an Input before Build.
type Mod func(*chart.Input)

// Input parses "甲子 丙寅 戊辰 庚申" (year month day hour) into an Input with
// default facts. It panics on a malformed literal.
func Input(spec string, mods ...Mod) chart.Input {
	fields := strings.Fields(spec)
	if len(fields) != 4 {
		panic(fmt.Sprintf("charttest: want 4 pillars, got %q", spec))
	}
	ps := make([]*chart.PillarInput, 4)
	for i, f := range fields {
		s, b := mustPair(f)
		ps[i] = &chart.PillarInput{Stem: s, Branch: b}
	}
	dm := ps[chart.RoleDay].Stem.Element()
	in := chart.Input{
		Pillars: chart.PillarsInput{
			Year: ps[0], Month: ps[1], Day: ps[2], Hour: ps[3],
		},
		DayMasterElement: dm,
		Strength:         chart.Balanced,
		Preferences:      DefaultPreferences(dm),
		Balance:          chart.ElementBalance{Wood: 20, Fire: 20, Earth: 20, Metal: 20, Water: 20},
	}
	for i, p := range ps {
		if i != int(chart.RoleDay) {
			p.TenGod = symbols.TenGodOf(ps[chart.RoleDay].Stem, p.Stem)
		}
	}
	for _, m := range mods {
		m(&in)
	}
	return in
}

// Build is Input followed by chart.Build, failing tb on error.
func Build(tb testing.TB, spec string, mods ...Mod) chart.Chart {
	tb.Helper()
	c, err := chart.Build(Input(spec, mods...))
	if err != nil {
		tb.Fatalf("charttest: build %q: %v", spec, err)
	}
	return c
}

// DefaultPreferences returns resource, companion, output, wealth and officer
// elements of dm as favorable, useful, idle, taboo and enemy.
func DefaultPreferences(dm symbols.Element) chart.PreferenceVector {
	var resource, officer symbols.Element
	for _, e := range symbols.Elements() {
		if e.Generates() == dm {
			resource = e
		}
		if e.Controls() == dm {
			officer = e
		}
	}
	return chart.PreferenceVector{
		Favorable: resource,
		Useful:    dm,
		Idle:      dm.Generates(),
		Taboo:     dm.Controls(),
		Enemy:     officer,
	}
}

// WithName sets the chart name.
func WithName(name string) Mod {
	return func(in *chart.Input) { in.Name = name }
}

// WithLuck sets the active luck pillar from a two-glyph literal.
func WithLuck(pair string) Mod {
	return func(in *chart.Input) {
		s, b := mustPair(pair)
		in.Luck = &chart.Luck{Stem: s, Branch: b}
	}
}

// WithStrength overrides the day-master strength.
func WithStrength(s chart.Strength) Mod {
	return func(in *chart.Input) { in.Strength = s }
}

// WithPreferences overrides the preference vector.
func WithPreferences(v chart.PreferenceVector) Mod {
	return func(in *chart.Input) { in.Preferences = v }
}

// WithBalance overrides the element balance.
func WithBalance(b chart.ElementBalance) Mod {
	return func(in *chart.Input) { in.Balance = b }
}

// WithStars attaches stars to the pillar at role r.
func WithStars(r chart.Role, stars ...chart.Star) Mod {
	return func(in *chart.Input) {
		p := pillar(in, r)
		p.Stars = append(p.Stars, stars...)
	}
}

// WithTenGod overrides the label of the pillar at role r.
func WithTenGod(r chart.Role, g symbols.TenGod) Mod {
	return func(in *chart.Input) { pillar(in, r).TenGod = g }
}

func pillar(in *chart.Input, r chart.Role) *chart.PillarInput {
	switch r {
	case chart.RoleYear:
		return in.Pillars.Year
	case chart.RoleMonth:
		return in.Pillars.Month
	case chart.RoleDay:
		return in.Pillars.Day
	default:
		return in.Pillars.Hour
	}
}

func mustPair(pair string) (symbols.Stem, symbols.Branch) {
	r := []rune(pair)
	if len(r) != 2 {
		panic(fmt.Sprintf("charttest: bad pillar literal %q", pair))
	}
	s, err := symbols.ParseStem(string(r[0]))
	if err != nil {
		panic(err)
	}
	b, err := symbols.ParseBranch(string(r[1]))
	if err != nil {
		panic(err)
	}
	return s, b
}
