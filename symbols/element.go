// SPDX-License-Identifier: MIT

package symbols

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSymbol indicates a stem, branch, element, polarity or ten-god
// value outside its enumeration.
// Usage: if errors.Is(err, ErrInvalidSymbol) { /* reject input */ }.
var ErrInvalidSymbol = errors.New("symbols: invalid symbol")

// Element is one of the five phases.
type Element uint8

const (
	// ElementNone is the invalid zero value.
	ElementNone Element = iota
	Wood
	Fire
	Earth
	Metal
	Water
)

var elementNames = [...]string{"", "wood", "fire", "earth", "metal", "water"}

var elementGlyphs = [...]string{"", "木", "火", "土", "金", "水"}

// Elements returns the five elements in generation-cycle order.
func Elements() []Element {
	return []Element{Wood, Fire, Earth, Metal, Water}
}

// Valid reports whether e is one of the five elements.
func (e Element) Valid() bool { return e >= Wood && e <= Water }

// String returns the lower-case English name.
func (e Element) String() string {
	if !e.Valid() {
		return fmt.Sprintf("Element(%d)", uint8(e))
	}
	return elementNames[e]
}

// Glyph returns the CJK glyph of the element.
func (e Element) Glyph() string {
	if !e.Valid() {
		return ""
	}
	return elementGlyphs[e]
}

// Generates returns the element e produces (Wood→Fire→Earth→Metal→Water→Wood).
func (e Element) Generates() Element {
	if !e.Valid() {
		return ElementNone
	}
	return e%5 + 1
}

// Controls returns the element e overcomes (Wood→Earth→Water→Fire→Metal→Wood).
func (e Element) Controls() Element {
	if !e.Valid() {
		return ElementNone
	}
	return (e+1)%5 + 1
}

// MarshalText implements encoding.TextMarshaler.
func (e Element) MarshalText() ([]byte, error) {
	if !e.Valid() {
		return nil, fmt.Errorf("%w: element %d", ErrInvalidSymbol, uint8(e))
	}
	return []byte(elementNames[e]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (e *Element) UnmarshalText(text []byte) error {
	v, err := ParseElement(string(text))
	if err != nil {
		return err
	}
	*e = v
	return nil
}

// ParseElement parses an English name or glyph.
func ParseElement(s string) (Element, error) {
	t := strings.ToLower(strings.TrimSpace(s))
	for i := Wood; i <= Water; i++ {
		if t == elementNames[i] || t == elementGlyphs[i] {
			return i, nil
		}
	}
	return ElementNone, fmt.Errorf("%w: element %q", ErrInvalidSymbol, s)
}

// Relation classifies how one element stands to another.
type Relation uint8

const (
	RelationNone Relation = iota
	// RelationSame: both elements are equal.
	RelationSame
	// RelationGenerates: the first element produces the second.
	RelationGenerates
	// RelationGeneratedBy: the second element produces the first.
	RelationGeneratedBy
	// RelationControls: the first element overcomes the second.
	RelationControls
	// RelationControlledBy: the second element overcomes the first.
	RelationControlledBy
)

var relationNames = [...]string{"none", "same", "generates", "generated-by", "controls", "controlled-by"}

// String returns the kebab-case name of r.
func (r Relation) String() string {
	if int(r) >= len(relationNames) {
		return fmt.Sprintf("Relation(%d)", uint8(r))
	}
	return relationNames[r]
}

// MarshalText implements encoding.TextMarshaler.
func (r Relation) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// Relate returns the relation of a towards b. Every valid pair falls into
// exactly one of the five relations.
func Relate(a, b Element) Relation {
	switch {
	case !a.Valid() || !b.Valid():
		return RelationNone
	case a == b:
		return RelationSame
	case a.Generates() == b:
		return RelationGenerates
	case b.Generates() == a:
		return RelationGeneratedBy
	case a.Controls() == b:
		return RelationControls
	default:
		return RelationControlledBy
	}
}

// Polarity is yang or yin.
type Polarity uint8

const (
	PolarityNone Polarity = iota
	Yang
	Yin
)

// Valid reports whether p is Yang or Yin.
func (p Polarity) Valid() bool { return p == Yang || p == Yin }

// String returns "yang" or "yin".
func (p Polarity) String() string {
	switch p {
	case Yang:
		return "yang"
	case Yin:
		return "yin"
	default:
		return fmt.Sprintf("Polarity(%d)", uint8(p))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Polarity) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("%w: polarity %d", ErrInvalidSymbol, uint8(p))
	}
	return []byte(p.String()), nil
}
