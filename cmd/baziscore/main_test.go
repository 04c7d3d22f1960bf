package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/taufulou/bazi-app-sub000/compat"
)

func testdata(name string) string {
	return filepath.Join("..", "..", "chartfile", "testdata", name)
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRelations_JSON(t *testing.T) {
	out, err := run(t, "relations", testdata("alice.yaml"))
	require.NoError(t, err)

	var got struct {
		Chart     string `json:"chart"`
		Pillars   string `json:"pillars"`
		Relations []struct {
			Kind        string   `json:"kind"`
			Roles       []string `json:"roles"`
			Strength    float64  `json:"strength"`
			MitigatedBy []string `json:"mitigated_by"`
		} `json:"relations"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "alice", got.Chart)
	assert.Equal(t, "甲子 丙寅 戊辰 庚申", got.Pillars)
	require.Len(t, got.Relations, 2)
	assert.Equal(t, "three-harmony", got.Relations[0].Kind)
	assert.Equal(t, 90.0, got.Relations[0].Strength)
	assert.Equal(t, "six-clash", got.Relations[1].Kind)
	assert.Equal(t, -27.0, got.Relations[1].Strength)
	assert.Equal(t, []string{"three-harmony"}, got.Relations[1].MitigatedBy)
}

func TestRelations_ManyCharts(t *testing.T) {
	out, err := run(t, "relations", testdata("alice.yaml"), testdata("carol.json"))
	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "carol", got[1]["chart"])
}

func TestCompare_Business(t *testing.T) {
	out, err := run(t, "compare", testdata("alice.yaml"), testdata("bob.toml"), "--scenario", "business")
	require.NoError(t, err)

	var got struct {
		A, B   string
		Result struct {
			Scenario   string           `json:"scenario"`
			Dimensions []map[string]any `json:"dimensions"`
			Final      float64          `json:"final"`
			Band       string           `json:"band"`
		}
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "alice", got.A)
	assert.Equal(t, "bob", got.B)
	assert.Equal(t, "business", got.Result.Scenario)
	assert.Len(t, got.Result.Dimensions, 8)
	assert.GreaterOrEqual(t, got.Result.Final, compat.FinalMin)
	assert.LessOrEqual(t, got.Result.Final, compat.FinalMax)
	assert.Equal(t, compat.BandOf(got.Result.Final).String(), got.Result.Band)
}

func TestCompare_DefaultScenarioFromEnv(t *testing.T) {
	t.Setenv("BAZI_DEFAULT_SCENARIO", "family")
	t.Setenv("BAZI_OUTPUT", "yaml")
	out, err := run(t, "compare", testdata("alice.yaml"), testdata("carol.json"))
	require.NoError(t, err)

	var got struct {
		Result struct {
			Scenario string `yaml:"scenario"`
		} `yaml:"result"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, "family", got.Result.Scenario)
}

func TestMatrix_AllScenarios(t *testing.T) {
	out, err := run(t, "matrix", "--all-scenarios", "--format", "yaml",
		testdata("alice.yaml"), testdata("bob.toml"), testdata("carol.json"))
	require.NoError(t, err)

	var rows []struct {
		A        string  `yaml:"a"`
		B        string  `yaml:"b"`
		Scenario string  `yaml:"scenario"`
		Final    float64 `yaml:"final"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3*4)
	assert.Equal(t, "alice", rows[0].A)
	assert.Equal(t, "bob", rows[0].B)
	assert.Equal(t, "romance", rows[0].Scenario)
	assert.Equal(t, "family", rows[11].Scenario)
}

func TestMatrix_CacheDisabled(t *testing.T) {
	t.Setenv("BAZI_CACHE_SIZE", "0")
	_, err := run(t, "matrix", testdata("alice.yaml"), testdata("bob.toml"))
	require.NoError(t, err)
}

func TestCommand_Errors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"bad scenario", []string{"compare", testdata("alice.yaml"), testdata("bob.toml"), "-s", "dating"}, "invalid scenario"},
		{"bad format", []string{"relations", "-f", "xml", testdata("alice.yaml")}, "invalid value"},
		{"bad chart", []string{"relations", testdata("bad_branch.yaml")}, "龍"},
		{"missing file", []string{"relations", testdata("nope.yaml")}, "nope.yaml"},
		{"arity", []string{"compare", testdata("alice.yaml")}, "accepts 2 arg(s)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := run(t, tc.args...)
			assert.ErrorContains(t, err, tc.want)
		})
	}
}
