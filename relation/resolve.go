// SPDX-License-Identifier: MIT

package relation

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"github.com/taufulou/bazi-app-sub000/catalog"
	"github.com/taufulou/bazi-app-sub000/chart"
)

// Resolve applies the mitigation rules to a complete set of findings for one
// chart and returns them sorted. The input is not modified.
func Resolve(findings []Finding) []Effective {
	out := make([]Effective, 0, len(findings))
	for _, f := range findings {
		e := Effective{Finding: f.clone(), Ratio: 1}

		switch {
		case f.Kind.Punitive():
			e.Persistent = true
		case f.Kind == catalog.SixClash:
			for _, g := range findings {
				ratio, ok := clashMitigation[g.Kind]
				if !ok || !f.sharesPillar(g) {
					continue
				}
				if !slices.Contains(e.MitigatedBy, g.Kind) {
					e.MitigatedBy = append(e.MitigatedBy, g.Kind)
				}
				e.Ratio = math.Min(e.Ratio, ratio)
			}
		}

		e.Strength = float64(f.Base) * e.Ratio
		out = append(out, e)
	}

	slices.SortStableFunc(out, compareEffective)
	return out
}

func compareEffective(a, b Effective) int {
	if c := cmp.Compare(math.Abs(b.Strength), math.Abs(a.Strength)); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Kind.Priority(), b.Kind.Priority()); c != 0 {
		return c
	}
	return slices.Compare(a.Roles, b.Roles)
}

// Analyze validates c and returns its resolved relationships.
func Analyze(c chart.Chart) ([]Effective, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: chart %q was not built", chart.ErrIncompleteChart, c.Name())
	}
	return Resolve(Detect(c)), nil
}
