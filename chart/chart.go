// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"slices"
	"strings"

	"github.com/taufulou/bazi-app-sub000/symbols"
)

// Chart is an immutable four-pillar chart plus its pre-derived facts.
// The zero Chart is not valid; obtain one from Build.
type Chart struct {
	name        string
	pillars     [4]Pillar
	dmElement   symbols.Element
	strength    Strength
	preferences PreferenceVector
	balance     ElementBalance
	luck        Luck
	hasLuck     bool
	built       bool
}

// Valid reports whether c came out of Build.
func (c Chart) Valid() bool { return c.built }

// Name returns the optional label given at build time.
func (c Chart) Name() string { return c.name }

// Pillar returns a copy of the pillar at role r.
func (c Chart) Pillar(r Role) Pillar {
	if !r.Valid() {
		return Pillar{}
	}
	return c.pillars[r].clone()
}

// Pillars returns copies of all four pillars in positional order.
func (c Chart) Pillars() [4]Pillar {
	var out [4]Pillar
	for i, p := range c.pillars {
		out[i] = p.clone()
	}
	return out
}

// Stems returns the four stems in positional order.
func (c Chart) Stems() [4]symbols.Stem {
	var out [4]symbols.Stem
	for i, p := range c.pillars {
		out[i] = p.Stem
	}
	return out
}

// Branches returns the four branches in positional order.
func (c Chart) Branches() [4]symbols.Branch {
	var out [4]symbols.Branch
	for i, p := range c.pillars {
		out[i] = p.Branch
	}
	return out
}

// DayMaster returns the day pillar's stem.
func (c Chart) DayMaster() symbols.Stem { return c.pillars[RoleDay].Stem }

// DayBranch returns the day pillar's branch (the spouse palace).
func (c Chart) DayBranch() symbols.Branch { return c.pillars[RoleDay].Branch }

// DayMasterElement returns the upstream day-master element.
func (c Chart) DayMasterElement() symbols.Element { return c.dmElement }

// Strength returns the day-master strength classification.
func (c Chart) Strength() Strength { return c.strength }

// Preferences returns the five-element preference vector.
func (c Chart) Preferences() PreferenceVector { return c.preferences }

// Balance returns the element percentages.
func (c Chart) Balance() ElementBalance { return c.balance }

// Luck returns the active decade-period pillar, if any.
func (c Chart) Luck() (Luck, bool) { return c.luck, c.hasLuck }

// HasStar reports whether any pillar carries s.
func (c Chart) HasStar(s Star) bool {
	for _, p := range c.pillars {
		if p.HasStar(s) {
			return true
		}
	}
	return false
}

// Stars returns the distinct stars of the chart in enumeration order.
func (c Chart) Stars() []Star {
	var out []Star
	for s := PeachBlossom; s <= GoatBlade; s++ {
		if c.HasStar(s) {
			out = append(out, s)
		}
	}
	return out
}

// HasTenGod reports whether any pillar is labeled g.
func (c Chart) HasTenGod(g symbols.TenGod) bool {
	for _, p := range c.pillars {
		if p.TenGod == g {
			return true
		}
	}
	return false
}

// YangCount counts yang symbols among the eight stems and branches.
func (c Chart) YangCount() int {
	n := 0
	for _, p := range c.pillars {
		if p.Stem.Polarity() == symbols.Yang {
			n++
		}
		if p.Branch.Polarity() == symbols.Yang {
			n++
		}
	}
	return n
}

// Key returns a canonical encoding of every field that influences scoring.
// The name is excluded; two charts with equal keys are interchangeable.
func (c Chart) Key() string {
	var sb strings.Builder
	for _, p := range c.pillars {
		stars := slices.Clone(p.Stars)
		slices.Sort(stars)
		fmt.Fprintf(&sb, "%s%s/%d/%v;", p.Stem, p.Branch, p.TenGod, stars)
	}
	v := c.preferences
	fmt.Fprintf(&sb, "dm=%d;st=%d;pref=%d%d%d%d%d;",
		c.dmElement, c.strength, v.Favorable, v.Useful, v.Idle, v.Taboo, v.Enemy)
	b := c.balance
	fmt.Fprintf(&sb, "bal=%g,%g,%g,%g,%g;", b.Wood, b.Fire, b.Earth, b.Metal, b.Water)
	if c.hasLuck {
		fmt.Fprintf(&sb, "luck=%s%s", c.luck.Stem, c.luck.Branch)
	}
	return sb.String()
}

// Equal reports whether both charts carry identical pillars and facts.
func (c Chart) Equal(o Chart) bool {
	return c.built && o.built && c.Key() == o.Key()
}
