// SPDX-License-Identifier: MIT

package main

import (
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/chartfile"
	"github.com/taufulou/bazi-app-sub000/compat"
	"github.com/taufulou/bazi-app-sub000/relation"
)

type relationsReport struct {
	Chart     string               `json:"chart" yaml:"chart"`
	Pillars   string               `json:"pillars" yaml:"pillars"`
	Relations []relation.Effective `json:"relations" yaml:"relations"`
}

func (a *app) relationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "relations <chart>...",
		Short: "List the resolved branch relationships of each chart",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reports := make([]relationsReport, 0, len(args))
			for _, path := range args {
				c, err := chartfile.Load(path)
				if err != nil {
					return err
				}
				effs, err := relation.Analyze(c)
				if err != nil {
					return err
				}
				a.logger.Debug("relations analyzed",
					zap.String("chart", c.Name()),
					zap.Int("count", len(effs)))
				reports = append(reports, relationsReport{Chart: c.Name(), Pillars: pillarsOf(c), Relations: effs})
			}
			if len(reports) == 1 {
				return encode(cmd.OutOrStdout(), a.cfg.Output, reports[0])
			}
			return encode(cmd.OutOrStdout(), a.cfg.Output, reports)
		},
	}
}

type compareReport struct {
	A      string        `json:"a" yaml:"a"`
	B      string        `json:"b" yaml:"b"`
	Result compat.Result `json:"result" yaml:"result"`
}

func (a *app) compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Score the compatibility of two charts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := a.scenarioOrDefault()
			if err != nil {
				return err
			}
			charts, err := loadAll(args)
			if err != nil {
				return err
			}
			res, err := a.comparer.Compare(charts[0], charts[1], s)
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), a.cfg.Output, compareReport{
				A: charts[0].Name(), B: charts[1].Name(), Result: res,
			})
		},
	}
	cmd.Flags().StringVarP(&a.scenario, "scenario", "s", "", "romance, business, friendship or family (default $BAZI_DEFAULT_SCENARIO)")
	return cmd
}

// matrixRow is the summary of one ordered pair under one scenario.
type matrixRow struct {
	A         string          `json:"a" yaml:"a"`
	B         string          `json:"b" yaml:"b"`
	Scenario  compat.Scenario `json:"scenario" yaml:"scenario"`
	Final     float64         `json:"final" yaml:"final"`
	Band      compat.Band     `json:"band" yaml:"band"`
	Label     compat.Label    `json:"label" yaml:"label"`
	Knockouts []string        `json:"knockouts,omitempty" yaml:"knockouts,omitempty"`
}

func (a *app) matrixCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "matrix <chart> <chart>...",
		Short: "Score every pair of charts",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := compat.Scenarios()
			if !all {
				s, err := a.scenarioOrDefault()
				if err != nil {
					return err
				}
				scenarios = []compat.Scenario{s}
			}
			charts, err := loadAll(args)
			if err != nil {
				return err
			}

			var rows []matrixRow
			for i := range charts {
				for j := i + 1; j < len(charts); j++ {
					for _, s := range scenarios {
						res, err := a.comparer.Compare(charts[i], charts[j], s)
						if err != nil {
							return err
						}
						rows = append(rows, summarize(charts[i], charts[j], res))
					}
				}
			}

			st := a.stats()
			a.logger.Debug("matrix scored",
				zap.Int("rows", len(rows)),
				zap.Int64("cache_hits", st.Hits),
				zap.Int64("cache_misses", st.Misses))
			return encode(cmd.OutOrStdout(), a.cfg.Output, rows)
		},
	}
	cmd.Flags().StringVarP(&a.scenario, "scenario", "s", "", "scenario to score (default $BAZI_DEFAULT_SCENARIO)")
	cmd.Flags().BoolVar(&all, "all-scenarios", false, "score every scenario")
	return cmd
}

func summarize(x, y chart.Chart, res compat.Result) matrixRow {
	row := matrixRow{
		A: x.Name(), B: y.Name(), Scenario: res.Scenario,
		Final: res.Final, Band: res.Band, Label: res.Label,
	}
	for _, k := range res.Knockouts {
		row.Knockouts = append(row.Knockouts, k.ID.String())
	}
	return row
}

func loadAll(paths []string) ([]chart.Chart, error) {
	out := make([]chart.Chart, 0, len(paths))
	for _, p := range paths {
		c, err := chartfile.Load(p)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

func pillarsOf(c chart.Chart) string {
	ps := c.Pillars()
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = p.Stem.String() + p.Branch.String()
	}
	return strings.Join(parts, " ")
}
