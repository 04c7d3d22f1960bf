// SPDX-License-Identifier: MIT

package relation

import (
	"slices"

	"github.com/taufulou/bazi-app-sub000/catalog"
	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// Finding is one detected relationship. Branches and Roles are parallel.
type Finding struct {
	Kind       catalog.Kind     `json:"kind" yaml:"kind"`
	Branches   []symbols.Branch `json:"branches" yaml:"branches"`
	Roles      []chart.Role     `json:"roles" yaml:"roles"`
	Base       int              `json:"base" yaml:"base"`
	Element    symbols.Element  `json:"element,omitempty" yaml:"element,omitempty"`
	Group      string           `json:"group,omitempty" yaml:"group,omitempty"`
	Beneficial bool             `json:"beneficial" yaml:"beneficial"`
}

// Involves reports whether the finding touches the pillar at role r.
func (f Finding) Involves(r chart.Role) bool { return slices.Contains(f.Roles, r) }

// sharesPillar reports whether f and g touch a common pillar.
func (f Finding) sharesPillar(g Finding) bool {
	for _, r := range f.Roles {
		if g.Involves(r) {
			return true
		}
	}
	return false
}

func (f Finding) clone() Finding {
	f.Branches = slices.Clone(f.Branches)
	f.Roles = slices.Clone(f.Roles)
	return f
}

// Effective is a Finding after conflict resolution.
//
// Ratio is the share of Base that survives (1 when unmitigated).
// Persistent marks punishments, which no harmony can mitigate.
// Strength is Base·Ratio.
type Effective struct {
	Finding     `yaml:",inline"`
	Ratio       float64        `json:"ratio" yaml:"ratio"`
	Persistent  bool           `json:"persistent" yaml:"persistent"`
	Strength    float64        `json:"strength" yaml:"strength"`
	MitigatedBy []catalog.Kind `json:"mitigated_by,omitempty" yaml:"mitigated_by,omitempty"`
}

// Mitigation ratios applied to a six-clash.
const (
	RatioSixHarmony   = 0.5
	RatioHalfHarmony  = 0.5
	RatioThreeHarmony = 0.3
	RatioThreeMeeting = 0.3
)

// clashMitigation is the data table behind Resolve.
var clashMitigation = map[catalog.Kind]float64{
	catalog.SixHarmony:   RatioSixHarmony,
	catalog.HalfHarmony:  RatioHalfHarmony,
	catalog.ThreeHarmony: RatioThreeHarmony,
	catalog.ThreeMeeting: RatioThreeMeeting,
}
