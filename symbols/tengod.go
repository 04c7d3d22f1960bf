// SPDX-License-Identifier: MIT

package symbols

import (
	"fmt"
	"strings"
)

// TenGod is the role a stem plays relative to a day master.
type TenGod uint8

const (
	// TenGodNone marks the day pillar itself (no role against itself).
	TenGodNone TenGod = iota
	Companion
	RobWealth
	EatingGod
	HurtingOfficer
	IndirectWealth
	DirectWealth
	SevenKillings
	DirectOfficer
	IndirectResource
	DirectResource
)

var tenGodNames = [...]string{
	"none", "companion", "rob-wealth", "eating-god", "hurting-officer",
	"indirect-wealth", "direct-wealth", "seven-killings", "direct-officer",
	"indirect-resource", "direct-resource",
}

var tenGodGlyphs = [...]string{
	"", "比肩", "劫财", "食神", "伤官", "偏财", "正财", "七杀", "正官", "偏印", "正印",
}

// TenGods returns the ten roles, excluding TenGodNone.
func TenGods() []TenGod {
	out := make([]TenGod, 0, 10)
	for g := Companion; g <= DirectResource; g++ {
		out = append(out, g)
	}
	return out
}

// Valid reports whether g is a known label; TenGodNone is valid.
func (g TenGod) Valid() bool { return g <= DirectResource }

// IsOfficer reports whether g is DirectOfficer or SevenKillings.
func (g TenGod) IsOfficer() bool { return g == DirectOfficer || g == SevenKillings }

// String returns the kebab-case name.
func (g TenGod) String() string {
	if !g.Valid() {
		return fmt.Sprintf("TenGod(%d)", uint8(g))
	}
	return tenGodNames[g]
}

// MarshalText implements encoding.TextMarshaler.
func (g TenGod) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("%w: ten god %d", ErrInvalidSymbol, uint8(g))
	}
	return []byte(tenGodNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *TenGod) UnmarshalText(text []byte) error {
	v, err := ParseTenGod(string(text))
	if err != nil {
		return err
	}
	*g = v
	return nil
}

// ParseTenGod accepts the kebab name or the two-glyph label. Empty text is
// TenGodNone.
func ParseTenGod(text string) (TenGod, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	if t == "" {
		return TenGodNone, nil
	}
	for g := TenGodNone; g <= DirectResource; g++ {
		if t == tenGodNames[g] || (g != TenGodNone && t == tenGodGlyphs[g]) {
			return g, nil
		}
	}
	return TenGodNone, fmt.Errorf("%w: ten god %q", ErrInvalidSymbol, text)
}

// TenGodOf returns the role of other relative to dayMaster. The element
// relation picks the family; matching polarity picks the "indirect" member.
// Invalid stems yield TenGodNone.
func TenGodOf(dayMaster, other Stem) TenGod {
	if !dayMaster.Valid() || !other.Valid() {
		return TenGodNone
	}
	same := dayMaster.Polarity() == other.Polarity()
	pick := func(samePolarity, opposite TenGod) TenGod {
		if same {
			return samePolarity
		}
		return opposite
	}

	switch Relate(dayMaster.Element(), other.Element()) {
	case RelationSame:
		return pick(Companion, RobWealth)
	case RelationGenerates:
		return pick(EatingGod, HurtingOfficer)
	case RelationControls:
		return pick(IndirectWealth, DirectWealth)
	case RelationControlledBy:
		return pick(SevenKillings, DirectOfficer)
	case RelationGeneratedBy:
		return pick(IndirectResource, DirectResource)
	default:
		return TenGodNone
	}
}
