// SPDX-License-Identifier: MIT

package compat

import (
	"github.com/taufulou/bazi-app-sub000/catalog"
	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

// Element supply thresholds, in percent of the balance.
const (
	SurplusThreshold = 30.0
	DeficitThreshold = 10.0
)

// Final score bounds and the cap applied by heaven-overcome-earth-clash.
const (
	FinalMin          = 5.0
	FinalMax          = 99.0
	HeavenClashCap    = 35.0
	identicalPenalty  = -25.0
	doubleUnionBonus  = 12.0
	neutralRaw        = 50.0
	stemCombineBonus  = 20.0
	weakAdjustment    = 5.0
	complementMatch   = 12.0
	complementDeficit = -12.0
	complementSurplus = -8.0
)

type supply uint8

const (
	deficit supply = iota
	adequate
	surplus
)

func supplyOf(pct float64) supply {
	switch {
	case pct >= SurplusThreshold:
		return surplus
	case pct < DeficitThreshold:
		return deficit
	default:
		return adequate
	}
}

// favorableMatrix[role][supply] is the delta when the receiver's role for an
// element meets the giver's supply of it.
var favorableMatrix = [chart.Enemy + 1][3]float64{
	chart.Favorable: {-5, 10, 18},
	chart.Useful:    {-2, 6, 10},
	chart.Idle:      {0, 0, 0},
	chart.Taboo:     {3, -5, -10},
	chart.Enemy:     {4, -8, -15},
}

// dayStemTable[relation] is {same polarity, opposite polarity}.
var dayStemTable = [symbols.RelationControlledBy + 1][2]float64{
	symbols.RelationSame:         {55, 62},
	symbols.RelationGenerates:    {70, 78},
	symbols.RelationGeneratedBy:  {70, 78},
	symbols.RelationControls:     {35, 58},
	symbols.RelationControlledBy: {35, 58},
}

// Spouse-palace scores by cross-chart classification of the day branches.
const (
	spouseSixHarmony    = 90.0
	spouseHalfPivot     = 75.0
	spouseHalfOuter     = 68.0
	spouseSame          = 60.0
	spouseSamePunishing = 40.0
	spouseNone          = 55.0
	spouseSixBreak      = 40.0
	spouseSixHarm       = 35.0
	spousePunishment    = 30.0
	spouseSixClash      = 15.0
)

// tenGodTable[scenario][god] scores the role a partner's day stem plays for
// the subject's day master.
var tenGodTable = [scenarioCount][symbols.DirectResource + 1]float64{
	Romance: {
		symbols.Companion: 60, symbols.RobWealth: 45,
		symbols.EatingGod: 75, symbols.HurtingOfficer: 45,
		symbols.IndirectWealth: 70, symbols.DirectWealth: 85,
		symbols.SevenKillings: 45, symbols.DirectOfficer: 85,
		symbols.IndirectResource: 55, symbols.DirectResource: 75,
	},
	Business: {
		symbols.Companion: 65, symbols.RobWealth: 40,
		symbols.EatingGod: 65, symbols.HurtingOfficer: 55,
		symbols.IndirectWealth: 80, symbols.DirectWealth: 75,
		symbols.SevenKillings: 50, symbols.DirectOfficer: 70,
		symbols.IndirectResource: 55, symbols.DirectResource: 65,
	},
	Friendship: {
		symbols.Companion: 80, symbols.RobWealth: 60,
		symbols.EatingGod: 80, symbols.HurtingOfficer: 60,
		symbols.IndirectWealth: 60, symbols.DirectWealth: 60,
		symbols.SevenKillings: 40, symbols.DirectOfficer: 55,
		symbols.IndirectResource: 60, symbols.DirectResource: 70,
	},
	Family: {
		symbols.Companion: 70, symbols.RobWealth: 55,
		symbols.EatingGod: 75, symbols.HurtingOfficer: 45,
		symbols.IndirectWealth: 60, symbols.DirectWealth: 70,
		symbols.SevenKillings: 45, symbols.DirectOfficer: 70,
		symbols.IndirectResource: 65, symbols.DirectResource: 85,
	},
}

// starPair is an unordered star pairing with the smaller star first.
type starPair [2]chart.Star

func pairOf(x, y chart.Star) starPair {
	if y < x {
		x, y = y, x
	}
	return starPair{x, y}
}

// starTable holds per-scenario deltas for cross-chart star pairings.
var starTable = map[starPair][scenarioCount]float64{
	{chart.PeachBlossom, chart.PeachBlossom}:     {Romance: 8, Business: 0, Friendship: 2, Family: 0},
	{chart.PeachBlossom, chart.RedMatchmaker}:    {Romance: 10, Business: 0, Friendship: 2, Family: 2},
	{chart.RedMatchmaker, chart.RedMatchmaker}:   {Romance: 6, Business: 0, Friendship: 2, Family: 2},
	{chart.RedMatchmaker, chart.HeavenlyJoy}:     {Romance: 10, Business: 2, Friendship: 3, Family: 4},
	{chart.HeavenlyJoy, chart.HeavenlyJoy}:       {Romance: 6, Business: 3, Friendship: 4, Family: 4},
	{chart.Nobleman, chart.Nobleman}:             {Romance: 6, Business: 10, Friendship: 8, Family: 8},
	{chart.Nobleman, chart.Academic}:             {Romance: 4, Business: 8, Friendship: 6, Family: 6},
	{chart.Nobleman, chart.General}:              {Romance: 2, Business: 6, Friendship: 4, Family: 3},
	{chart.Academic, chart.Academic}:             {Romance: 3, Business: 6, Friendship: 6, Family: 4},
	{chart.TravelingHorse, chart.TravelingHorse}: {Romance: -4, Business: 4, Friendship: 2, Family: -4},
	{chart.General, chart.General}:               {Romance: -3, Business: 6, Friendship: 2, Family: 0},
	{chart.Canopy, chart.Canopy}:                 {Romance: -4, Business: 0, Friendship: 2, Family: -2},
	{chart.PeachBlossom, chart.GoatBlade}:        {Romance: -6, Business: -2, Friendship: -2, Family: -2},
	{chart.GoatBlade, chart.GoatBlade}:           {Romance: -8, Business: -6, Friendship: -4, Family: -6},
	{chart.LonelyStar, chart.LonelyStar}:         {Romance: -6, Business: -2, Friendship: -2, Family: -3},
	{chart.LonelyStar, chart.WidowStar}:          {Romance: -8, Business: -2, Friendship: -3, Family: -4},
	{chart.WidowStar, chart.WidowStar}:           {Romance: -6, Business: -2, Friendship: -2, Family: -3},
}

// Timing deltas for the luck-pillar comparison.
var (
	luckBranchDelta = map[catalog.Kind]float64{
		catalog.SixHarmony:      25,
		catalog.HalfHarmony:     15,
		catalog.SixClash:        -25,
		catalog.SixHarm:         -15,
		catalog.ThreePunishment: -15,
		catalog.SixBreak:        -10,
	}
	luckDayDelta = map[catalog.Kind]float64{
		catalog.SixHarmony: 10,
		catalog.SixClash:   -10,
	}
)

const (
	luckSameBranch  = 10.0
	luckStemCombine = 10.0
	luckStemClash   = -10.0
)

// weights[scenario][dimension]; each row sums to 1.
var weights = [scenarioCount][dimensionCount]float64{
	Romance:    {0.12, 0.12, 0.22, 0.12, 0.08, 0.10, 0.14, 0.10},
	Business:   {0.15, 0.20, 0.05, 0.15, 0.20, 0.10, 0.05, 0.10},
	Friendship: {0.15, 0.18, 0.08, 0.17, 0.15, 0.12, 0.05, 0.10},
	Family:     {0.18, 0.15, 0.07, 0.15, 0.15, 0.15, 0.05, 0.10},
}

// Weights returns the weight vector for s, indexed by Dimension.
func Weights(s Scenario) ([]float64, error) {
	if !s.Valid() {
		return nil, errScenario(s)
	}
	w := weights[s]
	return w[:], nil
}

// knockoutRule is one data row; grades holds the grade-1 and grade-2 delta
// for each scenario.
type knockoutRule struct {
	id     KnockoutID
	grades [scenarioCount][2]float64
}

func uniform(g1, g2 float64) (out [scenarioCount][2]float64) {
	for _, s := range Scenarios() {
		out[s] = [2]float64{g1, g2}
	}
	return out
}

func perScenario(romance, business, friendship, family float64) [scenarioCount][2]float64 {
	return [scenarioCount][2]float64{
		Romance:    {romance},
		Business:   {business},
		Friendship: {friendship},
		Family:     {family},
	}
}

// knockoutTable is evaluated in order; heaven-overcome-earth-clash stays last.
var knockoutTable = [...]knockoutRule{
	{KnockoutDoubleUnion, perScenario(doubleUnionBonus, 6, 6, 6)},
	{KnockoutAdverseCombination, perScenario(-8, -5, -5, -5)},
	{KnockoutSevereClash, uniform(-5, -10)},
	{KnockoutIdenticalChart, uniform(identicalPenalty, 0)},
	{KnockoutLonelyStar, perScenario(-6, -2, -2, -2)},
	{KnockoutMixedOfficer, uniform(-5, -10)},
	{KnockoutUnstableSpousePalace, uniform(-4, -9)},
	{KnockoutYinYangMismatch, [scenarioCount][2]float64{
		Romance:    {-3, -6},
		Business:   {0, -3},
		Friendship: {0, -3},
		Family:     {0, -3},
	}},
	{KnockoutFavorableConflict, uniform(-4, -8)},
	{KnockoutFavorableReinforcement, uniform(3, 6)},
	{KnockoutHeavenOvercomeEarthClash, uniform(-15, 0)},
}
