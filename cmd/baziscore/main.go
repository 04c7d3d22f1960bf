// SPDX-License-Identifier: MIT

// Command baziscore reports the relationships inside a chart and scores the
// compatibility of chart pairs.
//
//	baziscore relations alice.yaml
//	baziscore compare alice.yaml bob.toml --scenario business
//	baziscore matrix alice.yaml bob.toml carol.json --format yaml
//
// Chart files may be YAML, TOML or JSON. Defaults come from BAZI_* environment
// variables; see package config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
