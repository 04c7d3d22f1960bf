// SPDX-License-Identifier: MIT

package chart

import (
	"math"
	"slices"

	"github.com/taufulou/bazi-app-sub000/symbols"
)

// Element balance totals outside this band are rejected. Upstream rounds
// each percentage independently, so an exact 100 is not required.
const (
	BalanceTotalMin = 98.0
	BalanceTotalMax = 102.0
)

// PillarInput is the upstream description of one pillar.
type PillarInput struct {
	Stem   symbols.Stem   `json:"stem" yaml:"stem" toml:"stem"`
	Branch symbols.Branch `json:"branch" yaml:"branch" toml:"branch"`
	TenGod symbols.TenGod `json:"ten_god,omitempty" yaml:"ten_god,omitempty" toml:"ten_god,omitempty"`
	Stars  []Star         `json:"stars,omitempty" yaml:"stars,omitempty" toml:"stars,omitempty"`
}

// PillarsInput holds one pillar per role. A nil pillar is a missing role.
type PillarsInput struct {
	Year  *PillarInput `json:"year" yaml:"year" toml:"year"`
	Month *PillarInput `json:"month" yaml:"month" toml:"month"`
	Day   *PillarInput `json:"day" yaml:"day" toml:"day"`
	Hour  *PillarInput `json:"hour" yaml:"hour" toml:"hour"`
}

func (p PillarsInput) byRole() [4]*PillarInput {
	return [4]*PillarInput{p.Year, p.Month, p.Day, p.Hour}
}

// Input is everything Build needs to assemble a Chart.
type Input struct {
	Name             string           `json:"name,omitempty" yaml:"name,omitempty" toml:"name,omitempty"`
	Pillars          PillarsInput     `json:"pillars" yaml:"pillars" toml:"pillars"`
	DayMasterElement symbols.Element  `json:"day_master_element" yaml:"day_master_element" toml:"day_master_element"`
	Strength         Strength         `json:"strength" yaml:"strength" toml:"strength"`
	Preferences      PreferenceVector `json:"preferences" yaml:"preferences" toml:"preferences"`
	Balance          ElementBalance   `json:"balance" yaml:"balance" toml:"balance"`
	Luck             *Luck            `json:"luck,omitempty" yaml:"luck,omitempty" toml:"luck,omitempty"`
}

// Build validates in and returns an immutable Chart.
//
// Validation order:
//  1. every role present, stem and branch valid, labels valid;
//  2. ten-god label on every non-day pillar, equal to the label its stem
//     takes against the day master; none on the day pillar;
//  3. day-master element present and equal to the day stem's element;
//  4. strength present;
//  5. preference vector assigns five distinct valid elements;
//  6. element balance within [0,100] each and total within
//     [BalanceTotalMin, BalanceTotalMax];
//  7. luck pillar, when given, has a valid stem and branch.
//
// The first violation is returned as a *FieldError.
func Build(in Input) (Chart, error) {
	c := Chart{name: in.Name}

	for i, p := range in.Pillars.byRole() {
		role := Role(i)
		field := "pillars." + role.String()
		if p == nil {
			return Chart{}, fieldErr(in.Name, field, ErrIncompleteChart, "missing %s pillar", role)
		}
		if err := checkStem(in.Name, field+".stem", p.Stem); err != nil {
			return Chart{}, err
		}
		if err := checkBranch(in.Name, field+".branch", p.Branch); err != nil {
			return Chart{}, err
		}
		if !p.TenGod.Valid() {
			return Chart{}, fieldErr(in.Name, field+".ten_god", ErrInvalidSymbol, "ten god %d", uint8(p.TenGod))
		}
		for _, s := range p.Stars {
			if !s.Valid() {
				return Chart{}, fieldErr(in.Name, field+".stars", ErrInvalidSymbol, "star %d", uint8(s))
			}
		}
		c.pillars[i] = Pillar{
			Role:   role,
			Stem:   p.Stem,
			Branch: p.Branch,
			TenGod: p.TenGod,
			Stars:  slices.Clone(p.Stars),
		}
	}

	dm := c.pillars[RoleDay].Stem
	for _, p := range c.pillars {
		if err := checkTenGod(in.Name, p, dm); err != nil {
			return Chart{}, err
		}
	}

	switch {
	case in.DayMasterElement == symbols.ElementNone:
		return Chart{}, fieldErr(in.Name, "day_master_element", ErrIncompleteChart, "missing day-master element")
	case !in.DayMasterElement.Valid():
		return Chart{}, fieldErr(in.Name, "day_master_element", ErrInvalidSymbol, "element %d", uint8(in.DayMasterElement))
	case in.DayMasterElement != dm.Element():
		return Chart{}, fieldErr(in.Name, "day_master_element", ErrIncompleteChart,
			"day-master element %s contradicts day stem %s (%s)", in.DayMasterElement, dm, dm.Element())
	}
	c.dmElement = in.DayMasterElement

	if !in.Strength.Valid() {
		return Chart{}, fieldErr(in.Name, "strength", ErrIncompleteChart, "missing day-master strength")
	}
	c.strength = in.Strength

	if err := checkPreferences(in.Name, in.Preferences); err != nil {
		return Chart{}, err
	}
	c.preferences = in.Preferences

	if err := checkBalance(in.Name, in.Balance); err != nil {
		return Chart{}, err
	}
	c.balance = in.Balance

	if in.Luck != nil {
		if err := checkStem(in.Name, "luck.stem", in.Luck.Stem); err != nil {
			return Chart{}, err
		}
		if err := checkBranch(in.Name, "luck.branch", in.Luck.Branch); err != nil {
			return Chart{}, err
		}
		c.luck = *in.Luck
		c.hasLuck = true
	}

	c.built = true
	return c, nil
}

// checkTenGod requires the label of every non-day pillar and rejects one that
// contradicts the pillar stem against the day master. The day pillar has none.
func checkTenGod(name string, p Pillar, dm symbols.Stem) error {
	field := "pillars." + p.Role.String() + ".ten_god"
	if p.Role == RoleDay {
		if p.TenGod != symbols.TenGodNone {
			return fieldErr(name, field, ErrIncompleteChart, "day pillar carries ten god %s", p.TenGod)
		}
		return nil
	}
	if p.TenGod == symbols.TenGodNone {
		return fieldErr(name, field, ErrIncompleteChart, "missing %s ten god", p.Role)
	}
	if want := symbols.TenGodOf(dm, p.Stem); p.TenGod != want {
		return fieldErr(name, field, ErrIncompleteChart,
			"ten god %s contradicts stem %s against day master %s (%s)", p.TenGod, p.Stem, dm, want)
	}
	return nil
}

// MustBuild is Build that panics on error. Intended for tests and fixed
// fixtures only.
func MustBuild(in Input) Chart {
	c, err := Build(in)
	if err != nil {
		panic(err)
	}
	return c
}

func checkStem(name, field string, s symbols.Stem) error {
	if s == symbols.StemNone {
		return fieldErr(name, field, ErrIncompleteChart, "missing stem")
	}
	if !s.Valid() {
		return fieldErr(name, field, ErrInvalidSymbol, "stem %d", uint8(s))
	}
	return nil
}

func checkBranch(name, field string, b symbols.Branch) error {
	if b == symbols.BranchNone {
		return fieldErr(name, field, ErrIncompleteChart, "missing branch")
	}
	if !b.Valid() {
		return fieldErr(name, field, ErrInvalidSymbol, "branch %d", uint8(b))
	}
	return nil
}

func checkPreferences(name string, v PreferenceVector) error {
	seen := make(map[symbols.Element]bool, 5)
	for i, e := range v.elements() {
		field := "preferences." + Preference(i+1).String()
		if e == symbols.ElementNone {
			return fieldErr(name, field, ErrIncompleteChart, "missing element")
		}
		if !e.Valid() {
			return fieldErr(name, field, ErrInvalidSymbol, "element %d", uint8(e))
		}
		if seen[e] {
			return fieldErr(name, field, ErrIncompleteChart, "element %s assigned twice", e)
		}
		seen[e] = true
	}
	return nil
}

func checkBalance(name string, b ElementBalance) error {
	for _, e := range symbols.Elements() {
		v := b.Of(e)
		if math.IsNaN(v) || v < 0 || v > 100 {
			return fieldErr(name, "balance."+e.String(), ErrIncompleteChart, "percentage %g out of [0,100]", v)
		}
	}
	if t := b.Total(); t < BalanceTotalMin || t > BalanceTotalMax {
		return fieldErr(name, "balance", ErrIncompleteChart, "total %g outside [%g,%g]", t, BalanceTotalMin, BalanceTotalMax)
	}
	return nil
}
