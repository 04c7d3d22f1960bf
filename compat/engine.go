// SPDX-License-Identifier: MIT

package compat

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/taufulou/bazi-app-sub000/chart"
)

// Options configures an Engine.
//
// Logger – receives per-comparison debug records. Default zap.NewNop().
type Options struct {
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the zero-configuration options.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLogger sets the engine logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("compat: WithLogger(nil)")
	}
	return func(o *Options) { o.Logger = l }
}

// Engine runs the five-stage compatibility pipeline. An Engine holds no
// mutable state; one value may serve concurrent callers.
type Engine struct {
	log *zap.Logger
}

// NewEngine returns an Engine configured by opts.
func NewEngine(opts ...Option) *Engine {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Engine{log: o.Logger}
}

var defaultEngine = NewEngine()

// Compare scores a against b under scenario s with the default engine.
func Compare(a, b chart.Chart, s Scenario) (Result, error) {
	return defaultEngine.Compare(a, b, s)
}

// Compare scores a against b under scenario s.
//
// Stages: eight raw scorers, amplification, scenario-weighted aggregation,
// knockouts, then banding and labeling. The final score lies in
// [FinalMin, FinalMax]. Unbuilt charts fail with chart.ErrIncompleteChart
// and unknown scenarios with ErrInvalidScenario.
func (e *Engine) Compare(a, b chart.Chart, s Scenario) (Result, error) {
	if err := validate(a, b, s); err != nil {
		return Result{}, err
	}

	dims, agg, ev := scoreDimensions(a, b, s)
	ks, capped := evaluateKnockouts(a, b, s)

	final := agg
	for _, k := range ks {
		final += k.Delta
		ev = append(ev, Evidence{Dimension: k.dimension(), Code: CodeKnockout, Knockout: k.ID, Value: k.Delta})
		e.log.Debug("knockout fired",
			zap.Stringer("knockout", k.ID),
			zap.Int("grade", k.Grade),
			zap.Float64("delta", k.Delta))
	}
	final = clamp(final, FinalMin, FinalMax)
	if capped {
		final = clamp(final, FinalMin, HeavenClashCap)
	}

	r := Result{
		Scenario:   s,
		Dimensions: dims,
		Aggregate:  agg,
		Knockouts:  ks,
		Final:      final,
		Band:       BandOf(final),
		Label:      labelOf(ks),
		Evidence:   ev,
	}
	e.log.Debug("compatibility scored",
		zap.String("a", a.Name()),
		zap.String("b", b.Name()),
		zap.Stringer("scenario", s),
		zap.Float64("aggregate", agg),
		zap.Float64("final", final),
		zap.Stringer("band", r.Band),
		zap.Stringer("label", r.Label))
	return r, nil
}

// dimension attributes a knockout's evidence to the dimension it concerns.
func (k Knockout) dimension() Dimension {
	switch k.ID {
	case KnockoutDoubleUnion, KnockoutSevereClash, KnockoutUnstableSpousePalace, KnockoutHeavenOvercomeEarthClash:
		return SpousePalace
	case KnockoutAdverseCombination, KnockoutYinYangMismatch:
		return DayStem
	case KnockoutLonelyStar:
		return SpecialStar
	case KnockoutMixedOfficer:
		return TenGodCross
	case KnockoutFavorableConflict, KnockoutFavorableReinforcement:
		return FavorableElement
	default:
		return FullPillar
	}
}

func validate(a, b chart.Chart, s Scenario) error {
	for _, c := range []struct {
		side string
		c    chart.Chart
	}{{"a", a}, {"b", b}} {
		if !c.c.Valid() {
			return &chart.FieldError{
				Chart: c.side,
				Field: "chart",
				Err:   fmt.Errorf("%w: not built", chart.ErrIncompleteChart),
			}
		}
	}
	if !s.Valid() {
		return errScenario(s)
	}
	return nil
}

func errScenario(s Scenario) error {
	return fmt.Errorf("%w: %s", ErrInvalidScenario, s)
}
