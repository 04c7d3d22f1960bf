// SPDX-License-Identifier: MIT

package catalog

import "fmt"

// Kind is a relationship type. Declaration order is tie-break priority.
type Kind uint8

const (
	KindNone Kind = iota
	ThreeMeeting
	ThreeHarmony
	SixHarmony
	HalfHarmony
	SixClash
	ThreePunishment
	SelfPunishment
	SixHarm
	SixBreak
	StemCombination
	StemClash
)

// Base strengths. HalfHarmony depends on which two trio members are present.
const (
	BaseThreeMeeting     = 100
	BaseThreeHarmony     = 90
	BaseSixHarmony       = 80
	BaseHalfHarmonyPivot = 70
	BaseHalfHarmonyOuter = 60
	BaseSixClash         = -90
	BaseThreePunishment  = -80
	BaseSelfPunishment   = BaseThreePunishment
	BaseSixHarm          = -70
	BaseSixBreak         = -60
	BaseStemCombination  = 70
	BaseStemClash        = -70
)

const (
	maxKind   = StemClash
	kindCount = int(maxKind) + 1
)

var kindNames = [kindCount]string{
	"none", "three-meeting", "three-harmony", "six-harmony", "half-harmony",
	"six-clash", "three-punishment", "self-punishment", "six-harm", "six-break",
	"stem-combination", "stem-clash",
}

// Kinds returns every kind except KindNone in priority order.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := ThreeMeeting; k <= maxKind; k++ {
		out = append(out, k)
	}
	return out
}

// Valid reports whether k is a real relationship kind.
func (k Kind) Valid() bool { return k >= ThreeMeeting && k <= maxKind }

// Priority is the tie-break rank; lower sorts first.
func (k Kind) Priority() int { return int(k) }

// Base returns the nominal signed strength of k. For HalfHarmony this is the
// pivot variant; the outer pair is BaseHalfHarmonyOuter.
func (k Kind) Base() int {
	switch k {
	case ThreeMeeting:
		return BaseThreeMeeting
	case ThreeHarmony:
		return BaseThreeHarmony
	case SixHarmony:
		return BaseSixHarmony
	case HalfHarmony:
		return BaseHalfHarmonyPivot
	case SixClash:
		return BaseSixClash
	case ThreePunishment:
		return BaseThreePunishment
	case SelfPunishment:
		return BaseSelfPunishment
	case SixHarm:
		return BaseSixHarm
	case SixBreak:
		return BaseSixBreak
	case StemCombination:
		return BaseStemCombination
	case StemClash:
		return BaseStemClash
	default:
		return 0
	}
}

// Beneficial reports whether k strengthens the participants.
func (k Kind) Beneficial() bool { return k.Base() > 0 }

// Punitive reports whether k is a punishment; punishments are never mitigated.
func (k Kind) Punitive() bool { return k == ThreePunishment || k == SelfPunishment }

// IsPairwise reports whether k is one of the four exclusive branch-pair kinds.
func (k Kind) IsPairwise() bool {
	return k == SixHarmony || k == SixClash || k == SixHarm || k == SixBreak
}

func (k Kind) String() string {
	if int(k) >= kindCount {
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
	return kindNames[k]
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }
