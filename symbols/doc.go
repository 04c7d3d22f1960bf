// SPDX-License-Identifier: MIT

// Package symbols holds the immutable symbol tables of the four-pillar
// calendar: the five elements, the two polarities, the ten heavenly stems,
// the twelve earthly branches and the ten-god role labels.
//
// Overview:
//
//   - Every symbol type is a small unsigned enum whose zero value is invalid.
//     A zero Stem, Branch or Element always means "missing", never a default.
//   - Element and polarity of each stem and branch are fixed by table; the
//     tables are package-level values populated once and never mutated.
//   - Branch carries a cyclic index 0–11 (子 = 0 … 亥 = 11).
//   - TenGodOf derives the role label of any stem relative to a day master.
//
// Text form:
//
//   - Stems and branches marshal as their CJK glyph (甲, 子, …) and parse from
//     either the glyph or the pinyin name ("jia", "zi", case-insensitive).
//   - Elements, polarities and ten gods marshal as lower-case kebab names
//     ("wood", "yang", "direct-officer").
//
// Error handling (sentinel errors):
//
//   - ErrInvalidSymbol:
//     Returned (wrapped with the offending text) when parsing text that is
//     not a member of the enumeration.
//
// Thread safety:
//
//   - All functions are pure and all tables read-only; safe for concurrent use.
package symbols
