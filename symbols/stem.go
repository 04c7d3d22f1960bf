// SPDX-License-Identifier: MIT

package symbols

import (
	"fmt"
	"strings"
)

// Stem is one of the ten heavenly stems.
type Stem uint8

const (
	// StemNone is the invalid zero value.
	StemNone Stem = iota
	StemJia       // 甲 yang wood
	StemYi        // 乙 yin wood
	StemBing      // 丙 yang fire
	StemDing      // 丁 yin fire
	StemWu        // 戊 yang earth
	StemJi        // 己 yin earth
	StemGeng      // 庚 yang metal
	StemXin       // 辛 yin metal
	StemRen       // 壬 yang water
	StemGui       // 癸 yin water
)

var stemGlyphs = [...]string{"", "甲", "乙", "丙", "丁", "戊", "己", "庚", "辛", "壬", "癸"}

var stemPinyin = [...]string{"", "jia", "yi", "bing", "ding", "wu", "ji", "geng", "xin", "ren", "gui"}

// Stems returns the ten stems in cyclic order.
func Stems() []Stem {
	out := make([]Stem, 0, 10)
	for s := StemJia; s <= StemGui; s++ {
		out = append(out, s)
	}
	return out
}

// Valid reports whether s is one of the ten stems.
func (s Stem) Valid() bool { return s >= StemJia && s <= StemGui }

// Index returns the cyclic position 0–9, or -1 for an invalid stem.
func (s Stem) Index() int {
	if !s.Valid() {
		return -1
	}
	return int(s) - 1
}

// Element returns the stem's element. Stems come in yang/yin pairs per
// element in generation order.
func (s Stem) Element() Element {
	if !s.Valid() {
		return ElementNone
	}
	return Element((s-1)/2 + 1)
}

// Polarity returns Yang for odd-numbered stems (甲丙戊庚壬), Yin otherwise.
func (s Stem) Polarity() Polarity {
	if !s.Valid() {
		return PolarityNone
	}
	if (s-1)%2 == 0 {
		return Yang
	}
	return Yin
}

// String returns the glyph.
func (s Stem) String() string {
	if !s.Valid() {
		return fmt.Sprintf("Stem(%d)", uint8(s))
	}
	return stemGlyphs[s]
}

// Pinyin returns the romanized name.
func (s Stem) Pinyin() string {
	if !s.Valid() {
		return ""
	}
	return stemPinyin[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Stem) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: stem %d", ErrInvalidSymbol, uint8(s))
	}
	return []byte(stemGlyphs[s]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Stem) UnmarshalText(text []byte) error {
	v, err := ParseStem(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseStem parses a glyph ("甲") or pinyin name ("jia").
func ParseStem(text string) (Stem, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	for s := StemJia; s <= StemGui; s++ {
		if t == stemGlyphs[s] || t == stemPinyin[s] {
			return s, nil
		}
	}
	return StemNone, fmt.Errorf("%w: stem %q", ErrInvalidSymbol, text)
}
