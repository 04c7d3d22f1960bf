package compat_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taufulou/bazi-app-sub000/compat"
)

func TestAmplify_FixedPoints(t *testing.T) {
	assert.InDelta(t, 0, compat.Amplify(0), 1e-9)
	assert.InDelta(t, 50, compat.Amplify(50), 1e-9)
	assert.InDelta(t, 100, compat.Amplify(100), 1e-9)
}

func TestAmplify_StrictlyIncreasing(t *testing.T) {
	prev := compat.Amplify(0)
	for x := 0.5; x <= 100; x += 0.5 {
		got := compat.Amplify(x)
		require.Greater(t, got, prev, "f(%v)", x)
		require.GreaterOrEqual(t, got, 0.0)
		require.LessOrEqual(t, got, 100.0)
		prev = got
	}
}

func TestAmplify_SymmetricAndClamped(t *testing.T) {
	for _, x := range []float64{3, 17, 42, 49.5} {
		assert.InDelta(t, 100, compat.Amplify(x)+compat.Amplify(100-x), 1e-9)
	}
	assert.Equal(t, compat.Amplify(0), compat.Amplify(-20))
	assert.Equal(t, compat.Amplify(100), compat.Amplify(250))
}

func TestWeights(t *testing.T) {
	for _, s := range compat.Scenarios() {
		w, err := compat.Weights(s)
		require.NoError(t, err)
		require.Len(t, w, len(compat.Dimensions()))
		sum := 0.0
		for _, v := range w {
			assert.Positive(t, v)
			sum += v
		}
		assert.InDelta(t, 1, sum, 1e-9, "%s", s)
	}

	romance, _ := compat.Weights(compat.Romance)
	business, _ := compat.Weights(compat.Business)
	assert.Greater(t, romance[compat.SpousePalace], business[compat.SpousePalace])
	assert.Greater(t, romance[compat.SpecialStar], business[compat.SpecialStar])
	assert.Greater(t, business[compat.DayStem], romance[compat.DayStem])
	assert.Greater(t, business[compat.ElementComplement], romance[compat.ElementComplement])

	_, err := compat.Weights(compat.ScenarioNone)
	assert.ErrorIs(t, err, compat.ErrInvalidScenario)
}

func TestBandOf(t *testing.T) {
	cases := []struct {
		final float64
		want  compat.Band
	}{
		{99, compat.Excellent},
		{85, compat.Excellent},
		{84.9, compat.Good},
		{70, compat.Good},
		{55, compat.Fair},
		{40, compat.Challenging},
		{39.99, compat.Difficult},
		{5, compat.Difficult},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, compat.BandOf(tc.final), "%v", tc.final)
	}
}

func TestParseScenario(t *testing.T) {
	s, err := compat.ParseScenario(" Romance ")
	require.NoError(t, err)
	assert.Equal(t, compat.Romance, s)

	for _, bad := range []string{"", "none", "dating"} {
		_, err := compat.ParseScenario(bad)
		assert.ErrorIs(t, err, compat.ErrInvalidScenario, bad)
	}

	var u compat.Scenario
	require.NoError(t, u.UnmarshalText([]byte("family")))
	assert.Equal(t, compat.Family, u)
	_, err = compat.ScenarioNone.MarshalText()
	assert.ErrorIs(t, err, compat.ErrInvalidScenario)
}
