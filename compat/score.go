// SPDX-License-Identifier: MIT

package compat

import (
	"fmt"

	"github.com/taufulou/bazi-app-sub000/catalog"
	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// scored is a raw dimension score in [0,100] with its evidence.
type scored struct {
	raw      float64
	evidence []Evidence
}

func (s *scored) add(e Evidence) { s.evidence = append(s.evidence, e) }

// scorers is the fixed set of dimension scorers, indexed by Dimension.
var scorers = [dimensionCount]func(a, b chart.Chart, s Scenario) scored{
	FavorableElement:  scoreFavorableElement,
	DayStem:           scoreDayStem,
	SpousePalace:      scoreSpousePalace,
	TenGodCross:       scoreTenGodCross,
	ElementComplement: scoreElementComplement,
	FullPillar:        scoreFullPillar,
	SpecialStar:       scoreSpecialStar,
	Timing:            scoreTiming,
}

// RawScore runs the scorer for d alone and returns its raw value.
func RawScore(d Dimension, a, b chart.Chart, s Scenario) (float64, error) {
	if err := validate(a, b, s); err != nil {
		return 0, err
	}
	if int(d) >= dimensionCount {
		return 0, fmt.Errorf("compat: unknown dimension %d", uint8(d))
	}
	return scorers[d](a, b, s).raw, nil
}

func clamp(x, lo, hi float64) float64 { return max(lo, min(hi, x)) }

func clampRaw(x float64) float64 { return clamp(x, 0, 100) }

func pillars(x, y chart.Role) string { return "a." + x.String() + "/b." + y.String() }

// crossRel classifies two branches from different charts.
type crossRel struct {
	kind catalog.Kind
	base int
	same bool
}

// crossBranch applies the catalog to a cross-chart branch pair. Pairwise
// kinds take precedence over punishment pairs, which precede half-harmony.
// A repeated branch is "same", and self-punishing when catalogued so.
func crossBranch(x, y symbols.Branch) crossRel {
	if x == y {
		r := crossRel{same: true}
		if catalog.SelfPunishing(x) {
			r.kind, r.base = catalog.SelfPunishment, catalog.BaseSelfPunishment
		}
		return r
	}
	if e, ok := catalog.ClassifyPair(x, y); ok {
		return crossRel{kind: e.Kind, base: e.Kind.Base()}
	}
	if k, ok := catalog.PunishmentPair(x, y); ok {
		return crossRel{kind: k, base: k.Base()}
	}
	if m, ok := catalog.HalfHarmonyOf(x, y); ok {
		return crossRel{kind: catalog.HalfHarmony, base: m.Base}
	}
	return crossRel{}
}
