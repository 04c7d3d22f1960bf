// SPDX-License-Identifier: MIT

package chart

import (
	"fmt"
	"slices"
	"strings"

	"github.com/taufulou/bazi-app-sub000/symbols"
)

// Role is a pillar's position in the chart.
type Role uint8

const (
	RoleYear Role = iota
	RoleMonth
	RoleDay
	RoleHour
)

var roleNames = [...]string{"year", "month", "day", "hour"}

// Roles returns the four roles in positional order.
func Roles() []Role { return []Role{RoleYear, RoleMonth, RoleDay, RoleHour} }

// Valid reports whether r is one of the four roles.
func (r Role) Valid() bool { return r <= RoleHour }

func (r Role) String() string {
	if !r.Valid() {
		return fmt.Sprintf("Role(%d)", uint8(r))
	}
	return roleNames[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("%w: role %d", ErrIncompleteChart, uint8(r))
	}
	return []byte(roleNames[r]), nil
}

// Star is an upstream special-star label attached to a pillar.
type Star uint8

const (
	StarNone Star = iota
	PeachBlossom
	RedMatchmaker
	HeavenlyJoy
	Nobleman
	TravelingHorse
	LonelyStar
	WidowStar
	Canopy
	Academic
	General
	GoatBlade
)

var starNames = [...]string{
	"none", "peach-blossom", "red-matchmaker", "heavenly-joy", "nobleman",
	"traveling-horse", "lonely-star", "widow-star", "canopy", "academic",
	"general", "goat-blade",
}

// Valid reports whether s is a known star other than StarNone.
func (s Star) Valid() bool { return s >= PeachBlossom && s <= GoatBlade }

func (s Star) String() string {
	if int(s) >= len(starNames) {
		return fmt.Sprintf("Star(%d)", uint8(s))
	}
	return starNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Star) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: star %d", ErrInvalidSymbol, uint8(s))
	}
	return []byte(starNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Star) UnmarshalText(text []byte) error {
	t := strings.ToLower(strings.TrimSpace(string(text)))
	for i := PeachBlossom; i <= GoatBlade; i++ {
		if starNames[i] == t {
			*s = i
			return nil
		}
	}
	return fmt.Errorf("%w: star %q", ErrInvalidSymbol, string(text))
}

// Strength classifies the day master's strength.
type Strength uint8

const (
	StrengthNone Strength = iota
	VeryWeak
	Weak
	Balanced
	Strong
	VeryStrong
)

var strengthNames = [...]string{"none", "very-weak", "weak", "balanced", "strong", "very-strong"}

// Valid reports whether s is a known classification.
func (s Strength) Valid() bool { return s >= VeryWeak && s <= VeryStrong }

// IsWeak reports whether s is Weak or VeryWeak.
func (s Strength) IsWeak() bool { return s == Weak || s == VeryWeak }

func (s Strength) String() string {
	if int(s) >= len(strengthNames) {
		return fmt.Sprintf("Strength(%d)", uint8(s))
	}
	return strengthNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Strength) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: strength %d", ErrIncompleteChart, uint8(s))
	}
	return []byte(strengthNames[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Strength) UnmarshalText(text []byte) error {
	t := strings.ToLower(strings.TrimSpace(string(text)))
	for i := VeryWeak; i <= VeryStrong; i++ {
		if strengthNames[i] == t {
			*s = i
			return nil
		}
	}
	return fmt.Errorf("%w: strength %q", ErrInvalidSymbol, string(text))
}

// Preference is an element's role in a chart's five-element preference vector.
type Preference uint8

const (
	PreferenceNone Preference = iota
	Favorable
	Useful
	Idle
	Taboo
	Enemy
)

var preferenceNames = [...]string{"none", "favorable", "useful", "idle", "taboo", "enemy"}

// Valid reports whether p is one of the five roles.
func (p Preference) Valid() bool { return p >= Favorable && p <= Enemy }

// Unfavorable reports whether p is Taboo or Enemy.
func (p Preference) Unfavorable() bool { return p == Taboo || p == Enemy }

func (p Preference) String() string {
	if int(p) >= len(preferenceNames) {
		return fmt.Sprintf("Preference(%d)", uint8(p))
	}
	return preferenceNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Preference) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// PreferenceVector assigns each of the five elements exactly one role.
type PreferenceVector struct {
	Favorable symbols.Element `json:"favorable" yaml:"favorable" toml:"favorable"`
	Useful    symbols.Element `json:"useful" yaml:"useful" toml:"useful"`
	Idle      symbols.Element `json:"idle" yaml:"idle" toml:"idle"`
	Taboo     symbols.Element `json:"taboo" yaml:"taboo" toml:"taboo"`
	Enemy     symbols.Element `json:"enemy" yaml:"enemy" toml:"enemy"`
}

// RoleOf returns the preference role of e, or PreferenceNone when e is not
// assigned.
func (v PreferenceVector) RoleOf(e symbols.Element) Preference {
	switch e {
	case symbols.ElementNone:
		return PreferenceNone
	case v.Favorable:
		return Favorable
	case v.Useful:
		return Useful
	case v.Idle:
		return Idle
	case v.Taboo:
		return Taboo
	case v.Enemy:
		return Enemy
	default:
		return PreferenceNone
	}
}

func (v PreferenceVector) elements() []symbols.Element {
	return []symbols.Element{v.Favorable, v.Useful, v.Idle, v.Taboo, v.Enemy}
}

// ElementBalance is the upstream percentage of each element in the chart.
type ElementBalance struct {
	Wood  float64 `json:"wood" yaml:"wood" toml:"wood"`
	Fire  float64 `json:"fire" yaml:"fire" toml:"fire"`
	Earth float64 `json:"earth" yaml:"earth" toml:"earth"`
	Metal float64 `json:"metal" yaml:"metal" toml:"metal"`
	Water float64 `json:"water" yaml:"water" toml:"water"`
}

// Of returns the percentage for e; 0 for an invalid element.
func (b ElementBalance) Of(e symbols.Element) float64 {
	switch e {
	case symbols.Wood:
		return b.Wood
	case symbols.Fire:
		return b.Fire
	case symbols.Earth:
		return b.Earth
	case symbols.Metal:
		return b.Metal
	case symbols.Water:
		return b.Water
	default:
		return 0
	}
}

// Total sums the five percentages.
func (b ElementBalance) Total() float64 {
	return b.Wood + b.Fire + b.Earth + b.Metal + b.Water
}

// Pillar is one stem-branch pair with its upstream labels.
type Pillar struct {
	Role   Role           `json:"role" yaml:"role"`
	Stem   symbols.Stem   `json:"stem" yaml:"stem"`
	Branch symbols.Branch `json:"branch" yaml:"branch"`
	TenGod symbols.TenGod `json:"ten_god" yaml:"ten_god"`
	Stars  []Star         `json:"stars,omitempty" yaml:"stars,omitempty"`
}

// HasStar reports whether s is attached to the pillar.
func (p Pillar) HasStar(s Star) bool { return slices.Contains(p.Stars, s) }

func (p Pillar) clone() Pillar {
	p.Stars = slices.Clone(p.Stars)
	return p
}

// Luck is the currently active decade-period pillar.
type Luck struct {
	Stem   symbols.Stem   `json:"stem" yaml:"stem" toml:"stem"`
	Branch symbols.Branch `json:"branch" yaml:"branch" toml:"branch"`
}
