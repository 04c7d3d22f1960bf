// SPDX-License-Identifier: MIT

package symbols

import (
	"fmt"
	"strings"
)

// Branch is one of the twelve earthly branches.
type Branch uint8

const (
	// BranchNone is the invalid zero value.
	BranchNone Branch = iota
	BranchZi      // 子
	BranchChou    // 丑
	BranchYin     // 寅
	BranchMao     // 卯
	BranchChen    // 辰
	BranchSi      // 巳
	BranchWu      // 午
	BranchWei     // 未
	BranchShen    // 申
	BranchYou     // 酉
	BranchXu      // 戌
	BranchHai     // 亥
)

var branchGlyphs = [...]string{"", "子", "丑", "寅", "卯", "辰", "巳", "午", "未", "申", "酉", "戌", "亥"}

var branchPinyin = [...]string{"", "zi", "chou", "yin", "mao", "chen", "si", "wu", "wei", "shen", "you", "xu", "hai"}

var branchElements = [...]Element{
	ElementNone,
	Water, Earth, Wood, Wood, Earth, Fire,
	Fire, Earth, Metal, Metal, Earth, Water,
}

// Branches returns the twelve branches in cyclic order starting at 子.
func Branches() []Branch {
	out := make([]Branch, 0, 12)
	for b := BranchZi; b <= BranchHai; b++ {
		out = append(out, b)
	}
	return out
}

// BranchAt returns the branch at cyclic index i; any integer is reduced mod 12.
func BranchAt(i int) Branch {
	return Branch(((i%12)+12)%12 + 1)
}

// Valid reports whether b is one of the twelve branches.
func (b Branch) Valid() bool { return b >= BranchZi && b <= BranchHai }

// Index returns the fixed cyclic index 0–11, or -1 for an invalid branch.
func (b Branch) Index() int {
	if !b.Valid() {
		return -1
	}
	return int(b) - 1
}

// Element returns the branch's element.
func (b Branch) Element() Element {
	if !b.Valid() {
		return ElementNone
	}
	return branchElements[b]
}

// Polarity follows index parity: even indices are yang.
func (b Branch) Polarity() Polarity {
	if !b.Valid() {
		return PolarityNone
	}
	if b.Index()%2 == 0 {
		return Yang
	}
	return Yin
}

// Opposite returns the branch six positions away on the cycle.
func (b Branch) Opposite() Branch {
	if !b.Valid() {
		return BranchNone
	}
	return BranchAt(b.Index() + 6)
}

// String returns the glyph.
func (b Branch) String() string {
	if !b.Valid() {
		return fmt.Sprintf("Branch(%d)", uint8(b))
	}
	return branchGlyphs[b]
}

// Pinyin returns the romanized name.
func (b Branch) Pinyin() string {
	if !b.Valid() {
		return ""
	}
	return branchPinyin[b]
}

// MarshalText implements encoding.TextMarshaler.
func (b Branch) MarshalText() ([]byte, error) {
	if !b.Valid() {
		return nil, fmt.Errorf("%w: branch %d", ErrInvalidSymbol, uint8(b))
	}
	return []byte(branchGlyphs[b]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Branch) UnmarshalText(text []byte) error {
	v, err := ParseBranch(string(text))
	if err != nil {
		return err
	}
	*b = v
	return nil
}

// ParseBranch parses a glyph ("子") or pinyin name ("zi").
func ParseBranch(text string) (Branch, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	for b := BranchZi; b <= BranchHai; b++ {
		if t == branchGlyphs[b] || t == branchPinyin[b] {
			return b, nil
		}
	}
	return BranchNone, fmt.Errorf("%w: branch %q", ErrInvalidSymbol, text)
}
