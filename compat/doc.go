// SPDX-License-Identifier: MIT

// Package compat scores the compatibility of two charts under a scenario.
//
// Pipeline (per Compare call):
//
//  1. Raw scoring. Eight fixed scorers, each returning a value in [0,100]
//     plus evidence:
//     favorable-element, day-stem, spouse-palace, ten-god-cross,
//     element-complement, full-pillar, special-star, timing.
//  2. Amplification. Amplify rescales a logistic curve (k = 0.06, midpoint
//     50) so that 0, 50 and 100 are fixed points.
//  3. Aggregation. A scenario-specific weight vector (Weights) sums to 1.
//  4. Knockouts. Ordered rules over raw chart facts add signed deltas; the
//     result is clamped to [FinalMin, FinalMax]. Heaven-overcome-earth-clash
//     is evaluated last and caps the final score at HeavenClashCap.
//  5. Labeling. BandOf buckets the final score; a distinguished Label is
//     chosen from the fired knockouts.
//
// Scenarios:
//
//	romance, business, friendship, family. ParseScenario rejects anything
//	else with ErrInvalidScenario.
//
// Errors:
//
//   - chart.ErrIncompleteChart (inside *chart.FieldError naming "a" or "b")
//     when a chart was not produced by chart.Build.
//   - ErrInvalidScenario for an unknown or zero scenario.
//
// Determinism:
//
//	Compare is a pure function of (a, b, scenario). Tables are package-level
//	and never mutated; an Engine only carries a logger. Evidence order is
//	dimension order, then knockout order.
//
// Example:
//
//	eng := compat.NewEngine(compat.WithLogger(logger))
//	res, err := eng.Compare(a, b, compat.Romance)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(res.Final, res.Band, res.Label)
package compat
