// Package bazi is a deterministic engine for four-pillar (BaZi) charts:
// it finds and resolves the relationships between a chart's earthly
// branches, and it scores how well two charts fit under a scenario.
//
// What is in the box?
//
//	• Symbols: the ten stems, twelve branches, five elements and ten gods
//	• Charts: validated, immutable four-pillar charts with derived facts
//	• Catalog: the branch-relationship tables (harmonies, clashes, punishments)
//	• Relations: detection plus clash mitigation for a single chart
//	• Compatibility: eight scorers, an amplifier, knockouts and bands
//	• Cache: a memoizing, metrics-instrumented front for compatibility
//
// Why this shape?
//
//   - Pure functions over immutable values; every table is package data
//   - No randomness and no clock: the same charts always give the same result
//   - Errors are sentinels wrapped with context, checked with errors.Is
//
// Packages:
//
//	symbols/       stems, branches, elements, polarity, ten gods
//	chart/         Input, Build, Chart and the derived facts upstream supplies
//	catalog/       relationship kinds and their base strengths
//	relation/      Detect, Resolve, Analyze
//	compat/        Compare, Amplify, Weights, BandOf
//	cache/         LRU + singleflight cache with Prometheus counters
//	chartfile/     YAML, TOML and JSON chart documents
//	config/        BAZI_* environment configuration
//	cmd/baziscore  the command-line front end
//
// Quick example:
//
//	a, _ := chartfile.Load("alice.yaml")
//	b, _ := chartfile.Load("bob.toml")
//	res, err := compat.Compare(a, b, compat.Romance)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Final, res.Band, res.Label)
//
// See examples/matchmaking for a runnable walk-through.
package bazi
