// SPDX-License-Identifier: MIT

package relation

import (
	"github.com/taufulou/bazi-app-sub000/catalog"
	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// pillarPairs and pillarTriples enumerate positions in pillar order.
var (
	pillarPairs = [6][2]chart.Role{
		{chart.RoleYear, chart.RoleMonth},
		{chart.RoleYear, chart.RoleDay},
		{chart.RoleYear, chart.RoleHour},
		{chart.RoleMonth, chart.RoleDay},
		{chart.RoleMonth, chart.RoleHour},
		{chart.RoleDay, chart.RoleHour},
	}
	pillarTriples = [4][3]chart.Role{
		{chart.RoleYear, chart.RoleMonth, chart.RoleDay},
		{chart.RoleYear, chart.RoleMonth, chart.RoleHour},
		{chart.RoleYear, chart.RoleDay, chart.RoleHour},
		{chart.RoleMonth, chart.RoleDay, chart.RoleHour},
	}
)

// Detect returns every intra-chart finding in detection order: pairwise
// kinds, three-meetings, three-harmonies, half-harmonies, punishments.
// Resolution and sorting are left to Resolve.
func Detect(c chart.Chart) []Finding {
	bs := c.Branches()

	var out []Finding
	out = detectPairwise(out, bs)
	out = detectTrios(out, bs, catalog.ThreeMeeting, catalog.ThreeMeetings())
	out = detectTrios(out, bs, catalog.ThreeHarmony, catalog.ThreeHarmonies())
	out = detectHalfHarmonies(out, bs)
	out = detectPunishments(out, bs)
	return out
}

func detectPairwise(out []Finding, bs [4]symbols.Branch) []Finding {
	for _, p := range pillarPairs {
		e, ok := catalog.ClassifyPair(bs[p[0]], bs[p[1]])
		if !ok {
			continue
		}
		out = append(out, newFinding(e.Kind, e.Kind.Base(), e.Element, bs, p[0], p[1]))
	}
	return out
}

// detectTrios reports each trio at most once, using the first matching
// pillar triple.
func detectTrios(out []Finding, bs [4]symbols.Branch, kind catalog.Kind, trios []catalog.Trio) []Finding {
	for _, t := range trios {
		for _, tr := range pillarTriples {
			if catalog.MatchTrio(t, bs[tr[0]], bs[tr[1]], bs[tr[2]]) {
				out = append(out, newFinding(kind, kind.Base(), t.Element, bs, tr[0], tr[1], tr[2]))
				break
			}
		}
	}
	return out
}

// detectHalfHarmonies reports a trio whose members are exactly two-thirds
// present. The first pillar bearing each member participates.
func detectHalfHarmonies(out []Finding, bs [4]symbols.Branch) []Finding {
	for _, t := range catalog.ThreeHarmonies() {
		var roles []chart.Role
		seen := make(map[symbols.Branch]bool, 3)
		for _, r := range chart.Roles() {
			b := bs[r]
			if t.Contains(b) && !seen[b] {
				seen[b] = true
				roles = append(roles, r)
			}
		}
		if len(roles) != 2 {
			continue
		}
		m, ok := catalog.HalfHarmonyOf(bs[roles[0]], bs[roles[1]])
		if !ok {
			continue
		}
		out = append(out, newFinding(catalog.HalfHarmony, m.Base, t.Element, bs, roles...))
	}
	return out
}

// detectPunishments runs independently of every harmony and clash check.
func detectPunishments(out []Finding, bs [4]symbols.Branch) []Finding {
	for _, g := range catalog.Punishments() {
		switch len(g.Branches) {
		case 3:
			t := catalog.Trio{Branches: [3]symbols.Branch{g.Branches[0], g.Branches[1], g.Branches[2]}}
			for _, tr := range pillarTriples {
				if catalog.MatchTrio(t, bs[tr[0]], bs[tr[1]], bs[tr[2]]) {
					f := newFinding(catalog.ThreePunishment, catalog.BaseThreePunishment, symbols.ElementNone, bs, tr[0], tr[1], tr[2])
					f.Group = g.Name
					out = append(out, f)
					break
				}
			}
		case 2:
			for _, p := range pillarPairs {
				a, b := bs[p[0]], bs[p[1]]
				if a != b && g.Contains(a) && g.Contains(b) {
					f := newFinding(catalog.ThreePunishment, catalog.BaseThreePunishment, symbols.ElementNone, bs, p[0], p[1])
					f.Group = g.Name
					out = append(out, f)
					break
				}
			}
		}
	}

	for _, b := range symbols.Branches() {
		if !catalog.SelfPunishing(b) {
			continue
		}
		var roles []chart.Role
		for _, r := range chart.Roles() {
			if bs[r] == b {
				roles = append(roles, r)
			}
		}
		if len(roles) >= 2 {
			f := newFinding(catalog.SelfPunishment, catalog.BaseSelfPunishment, symbols.ElementNone, bs, roles...)
			f.Group = "self"
			out = append(out, f)
		}
	}
	return out
}

func newFinding(kind catalog.Kind, base int, el symbols.Element, bs [4]symbols.Branch, roles ...chart.Role) Finding {
	f := Finding{
		Kind:       kind,
		Roles:      roles,
		Branches:   make([]symbols.Branch, len(roles)),
		Base:       base,
		Element:    el,
		Beneficial: base > 0,
	}
	for i, r := range roles {
		f.Branches[i] = bs[r]
	}
	return f
}
