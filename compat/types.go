// SPDX-License-Identifier: MIT

package compat

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/taufulou/bazi-app-sub000/catalog"
	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// ErrInvalidScenario indicates a scenario outside the closed set.
var ErrInvalidScenario = errors.New("compat: invalid scenario")

// Scenario selects the weight vector, the ten-god and star tables and the
// knockout deltas.
type Scenario uint8

const (
	ScenarioNone Scenario = iota
	Romance
	Business
	Friendship
	Family
)

const (
	maxScenario   = Family
	scenarioCount = int(maxScenario) + 1
)

var scenarioNames = [scenarioCount]string{"none", "romance", "business", "friendship", "family"}

// Scenarios returns every valid scenario.
func Scenarios() []Scenario { return []Scenario{Romance, Business, Friendship, Family} }

// Valid reports whether s is one of the four scenarios.
func (s Scenario) Valid() bool { return s >= Romance && s <= maxScenario }

func (s Scenario) String() string {
	if int(s) >= scenarioCount {
		return fmt.Sprintf("Scenario(%d)", uint8(s))
	}
	return scenarioNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s Scenario) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidScenario, s)
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Scenario) UnmarshalText(text []byte) error {
	v, err := ParseScenario(string(text))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseScenario accepts a scenario name, case-insensitively. Unknown names
// fail with ErrInvalidScenario; there is no default.
func ParseScenario(text string) (Scenario, error) {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, s := range Scenarios() {
		if scenarioNames[s] == t {
			return s, nil
		}
	}
	return ScenarioNone, fmt.Errorf("%w: %q", ErrInvalidScenario, text)
}

// Dimension identifies one of the eight scorers. Declaration order is the
// order of Result.Dimensions.
type Dimension uint8

const (
	FavorableElement Dimension = iota
	DayStem
	SpousePalace
	TenGodCross
	ElementComplement
	FullPillar
	SpecialStar
	Timing
)

const dimensionCount = int(Timing) + 1

var dimensionNames = [dimensionCount]string{
	"favorable-element", "day-stem", "spouse-palace", "ten-god-cross",
	"element-complement", "full-pillar", "special-star", "timing",
}

// Dimensions returns the eight dimensions in order.
func Dimensions() []Dimension {
	out := make([]Dimension, dimensionCount)
	for i := range out {
		out[i] = Dimension(i)
	}
	return out
}

func (d Dimension) String() string {
	if int(d) >= dimensionCount {
		return fmt.Sprintf("Dimension(%d)", uint8(d))
	}
	return dimensionNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Dimension) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Direction names the subject chart first: AToB evaluates a against b.
type Direction uint8

const (
	DirectionNone Direction = iota
	AToB
	BToA
)

var directionNames = [...]string{"none", "a-to-b", "b-to-a"}

func (d Direction) String() string {
	if int(d) >= len(directionNames) {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Code is the closed set of evidence codes.
type Code uint8

const (
	CodeNone Code = iota
	CodeSupplyMatch
	CodeSupplyMismatch
	CodeStemRelation
	CodeStemCombination
	CodeWeakSupported
	CodeWeakControlled
	CodeBranchRelation
	CodeSameBranch
	CodeDoubleUnion
	CodeTenGodRole
	CodeElementSupply
	CodeDoubleDeficit
	CodeDoubleSurplus
	CodePillarRelation
	CodeStarPairing
	CodeLuckRelation
	CodeTimingUnavailable
	CodeKnockout
)

var codeNames = [...]string{
	"none", "supply-match", "supply-mismatch", "stem-relation",
	"stem-combination", "weak-supported", "weak-controlled", "branch-relation",
	"same-branch", "double-union", "ten-god-role", "element-supply",
	"double-deficit", "double-surplus", "pillar-relation", "star-pairing",
	"luck-relation", "timing-unavailable", "knockout",
}

func (c Code) String() string {
	if int(c) >= len(codeNames) {
		return fmt.Sprintf("Code(%d)", uint8(c))
	}
	return codeNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Code) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// KnockoutID identifies a knockout rule. Declaration order is evaluation order.
type KnockoutID uint8

const (
	KnockoutNone KnockoutID = iota
	KnockoutDoubleUnion
	KnockoutAdverseCombination
	KnockoutSevereClash
	KnockoutIdenticalChart
	KnockoutLonelyStar
	KnockoutMixedOfficer
	KnockoutUnstableSpousePalace
	KnockoutYinYangMismatch
	KnockoutFavorableConflict
	KnockoutFavorableReinforcement
	KnockoutHeavenOvercomeEarthClash
)

var knockoutNames = [...]string{
	"none", "double-union", "adverse-combination", "severe-clash",
	"identical-chart", "lonely-star", "mixed-officer", "unstable-spouse-palace",
	"yin-yang-mismatch", "favorable-conflict", "favorable-reinforcement",
	"heaven-overcome-earth-clash",
}

func (k KnockoutID) String() string {
	if int(k) >= len(knockoutNames) {
		return fmt.Sprintf("KnockoutID(%d)", uint8(k))
	}
	return knockoutNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k KnockoutID) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Band is the qualitative bucket of a final score, ordered worst to best.
type Band uint8

const (
	BandNone Band = iota
	Difficult
	Challenging
	Fair
	Good
	Excellent
)

var bandNames = [...]string{"none", "difficult", "challenging", "fair", "good", "excellent"}

func (b Band) String() string {
	if int(b) >= len(bandNames) {
		return fmt.Sprintf("Band(%d)", uint8(b))
	}
	return bandNames[b]
}

// MarshalText implements encoding.TextMarshaler.
func (b Band) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// Label is a distinguished description assigned independently of the band.
type Label uint8

const (
	LabelNone Label = iota
	LabelHeavenEarthClash
	LabelMirrorImage
	LabelHeavenEarthUnion
)

var labelNames = [...]string{"none", "heaven-earth-clash", "mirror-image", "heaven-earth-union"}

func (l Label) String() string {
	if int(l) >= len(labelNames) {
		return fmt.Sprintf("Label(%d)", uint8(l))
	}
	return labelNames[l]
}

// MarshalText implements encoding.TextMarshaler.
func (l Label) MarshalText() ([]byte, error) { return []byte(l.String()), nil }

// DimensionScore is one scorer's output after amplification.
type DimensionScore struct {
	Dimension Dimension `json:"dimension" yaml:"dimension"`
	Raw       float64   `json:"raw" yaml:"raw"`
	Amplified float64   `json:"amplified" yaml:"amplified"`
	Weight    float64   `json:"weight" yaml:"weight"`
}

// Evidence records one contributing fact. Only the fields relevant to Code
// are set.
type Evidence struct {
	Dimension Dimension        `json:"dimension" yaml:"dimension"`
	Code      Code             `json:"code" yaml:"code"`
	Direction Direction        `json:"direction,omitempty" yaml:"direction,omitempty"`
	Kind      catalog.Kind     `json:"kind,omitempty" yaml:"kind,omitempty"`
	Relation  symbols.Relation `json:"relation,omitempty" yaml:"relation,omitempty"`
	Element   symbols.Element  `json:"element,omitempty" yaml:"element,omitempty"`
	TenGod    symbols.TenGod   `json:"ten_god,omitempty" yaml:"ten_god,omitempty"`
	Stars     []chart.Star     `json:"stars,omitempty" yaml:"stars,omitempty"`
	Pillars   string           `json:"pillars,omitempty" yaml:"pillars,omitempty"`
	Knockout  KnockoutID       `json:"knockout,omitempty" yaml:"knockout,omitempty"`
	Value     float64          `json:"value" yaml:"value"`
}

// Knockout is one fired special-condition rule.
type Knockout struct {
	ID    KnockoutID `json:"id" yaml:"id"`
	Grade int        `json:"grade" yaml:"grade"`
	Delta float64    `json:"delta" yaml:"delta"`
}

// Result is the full compatibility verdict for two charts.
type Result struct {
	Scenario   Scenario         `json:"scenario" yaml:"scenario"`
	Dimensions []DimensionScore `json:"dimensions" yaml:"dimensions"`
	Aggregate  float64          `json:"aggregate" yaml:"aggregate"`
	Knockouts  []Knockout       `json:"knockouts" yaml:"knockouts"`
	Final      float64          `json:"final" yaml:"final"`
	Band       Band             `json:"band" yaml:"band"`
	Label      Label            `json:"label" yaml:"label"`
	Evidence   []Evidence       `json:"evidence" yaml:"evidence"`
}

// Dimension returns the score for d.
func (r Result) Dimension(d Dimension) DimensionScore {
	for _, ds := range r.Dimensions {
		if ds.Dimension == d {
			return ds
		}
	}
	return DimensionScore{Dimension: d}
}

// Fired reports whether knockout id is present.
func (r Result) Fired(id KnockoutID) bool {
	return slices.ContainsFunc(r.Knockouts, func(k Knockout) bool { return k.ID == id })
}

// Clone returns a deep copy of r.
func (r Result) Clone() Result {
	r.Dimensions = slices.Clone(r.Dimensions)
	r.Knockouts = slices.Clone(r.Knockouts)
	r.Evidence = slices.Clone(r.Evidence)
	for i := range r.Evidence {
		r.Evidence[i].Stars = slices.Clone(r.Evidence[i].Stars)
	}
	return r
}
