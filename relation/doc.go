// SPDX-License-Identifier: MIT

// Package relation finds and resolves the branch relationships inside one
// chart.
//
// Overview:
//
//   - Detect enumerates the 6 pillar pairs and 4 pillar triples of a chart
//     against the catalog and returns raw Findings.
//   - Resolve applies the mitigation rules and returns Effective
//     relationships sorted by descending absolute strength.
//   - Analyze validates the chart and runs both.
//
// Resolution rules:
//
//   - A six-clash sharing a pillar with a six-harmony keeps 50 % of its base.
//   - A six-clash sharing a pillar with a half-harmony keeps 50 %.
//   - A six-clash sharing a pillar with a complete three-harmony or
//     three-meeting keeps 30 %.
//   - When several apply, the smallest ratio wins; MitigatedBy lists them all.
//   - Punishments (three-punishment and self-punishment) always keep 100 %
//     and are flagged Persistent.
//   - Everything else keeps its base strength. Harmonies are never reduced.
//
// Ordering:
//
//	|Strength| descending, then catalog.Kind priority, then pillar order.
//
// Complexity:
//
//   - Time:  O(1), at most 6 pairs and 4 triples per chart.
//   - Space: O(1), at most a few dozen findings.
//
// Thread safety:
//
//   - Pure functions over an immutable chart; safe for concurrent use.
package relation
