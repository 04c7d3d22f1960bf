package chartfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taufulou/bazi-app-sub000/chart"
	"github.com/taufulou/bazi-app-sub000/chartfile"
	"github.com/taufulou/bazi-app-sub000/symbols"
)

func TestLoad_YAML(t *testing.T) {
	c, err := chartfile.Load("testdata/alice.yaml")
	require.NoError(t, err)

	assert.Equal(t, "alice", c.Name())
	assert.Equal(t, symbols.StemWu, c.DayMaster())
	assert.Equal(t, chart.Weak, c.Strength())
	assert.Equal(t, symbols.SevenKillings, c.Pillar(chart.RoleYear).TenGod)
	assert.Equal(t, []chart.Star{chart.PeachBlossom, chart.Nobleman}, c.Stars())
	luck, ok := c.Luck()
	require.True(t, ok)
	assert.Equal(t, chart.Luck{Stem: symbols.StemYi, Branch: symbols.BranchChou}, luck)
}

func TestLoad_TOMLWithPinyin(t *testing.T) {
	c, err := chartfile.Load("testdata/bob.toml")
	require.NoError(t, err)

	assert.Equal(t, "bob", c.Name(), "name defaults to the file name")
	assert.Equal(t, [4]symbols.Stem{symbols.StemYi, symbols.StemDing, symbols.StemJi, symbols.StemXin}, c.Stems())
	assert.True(t, c.HasStar(chart.RedMatchmaker))
	assert.Equal(t, 35.0, c.Balance().Earth)
	_, ok := c.Luck()
	assert.False(t, ok)
}

func TestLoad_JSON(t *testing.T) {
	c, err := chartfile.Load("testdata/carol.json")
	require.NoError(t, err)
	assert.Equal(t, symbols.Fire, c.DayMasterElement())
	assert.Equal(t, symbols.Water, c.Preferences().Favorable)
	assert.Equal(t, symbols.BranchWu, c.DayBranch())
}

func TestLoad_Errors(t *testing.T) {
	_, err := chartfile.Load("testdata/alice.ini")
	assert.ErrorIs(t, err, chartfile.ErrUnsupportedFormat)

	_, err = chartfile.Load("testdata/nope.yaml")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = chartfile.Load("testdata/bad_branch.yaml")
	assert.ErrorContains(t, err, "龍")

	_, err = chartfile.Load("testdata/missing_hour.yaml")
	require.ErrorIs(t, err, chart.ErrIncompleteChart)
	var fe *chart.FieldError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "dave", fe.Chart)
	assert.Equal(t, "pillars.hour", fe.Field)

	_, err = chartfile.Load("testdata/wrong_ten_god.yaml")
	require.ErrorIs(t, err, chart.ErrIncompleteChart)
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "pillars.month.ten_god", fe.Field)
}

func TestDecode_UnknownField(t *testing.T) {
	doc := "pillars: {}\nday_master: earth\n"
	_, err := chartfile.Decode(strings.NewReader(doc), chartfile.YAML)
	assert.Error(t, err)

	_, err = chartfile.Decode(strings.NewReader(`{"colour": "red"}`), chartfile.JSON)
	assert.Error(t, err)

	_, err = chartfile.Decode(strings.NewReader(""), chartfile.FormatNone)
	assert.ErrorIs(t, err, chartfile.ErrUnsupportedFormat)
}

// TestFormats_Agree writes the same chart in all three encodings.
func TestFormats_Agree(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"x.yml": "pillars:\n  year: {stem: jia, branch: zi, ten_god: seven-killings}\n  month: {stem: bing, branch: yin, ten_god: indirect-resource}\n" +
			"  day: {stem: wu, branch: chen}\n  hour: {stem: geng, branch: shen, ten_god: eating-god}\n" +
			"day_master_element: earth\nstrength: balanced\n" +
			"preferences: {favorable: fire, useful: earth, idle: metal, taboo: water, enemy: wood}\n" +
			"balance: {wood: 20, fire: 20, earth: 20, metal: 20, water: 20}\n",
		"x.toml": "day_master_element = 'earth'\nstrength = 'balanced'\n" +
			"[pillars]\nyear = {stem = 'jia', branch = 'zi', ten_god = 'seven-killings'}\nmonth = {stem = 'bing', branch = 'yin', ten_god = 'indirect-resource'}\n" +
			"day = {stem = 'wu', branch = 'chen'}\nhour = {stem = 'geng', branch = 'shen', ten_god = 'eating-god'}\n" +
			"[preferences]\nfavorable = 'fire'\nuseful = 'earth'\nidle = 'metal'\ntaboo = 'water'\nenemy = 'wood'\n" +
			"[balance]\nwood = 20\nfire = 20\nearth = 20\nmetal = 20\nwater = 20\n",
		"x.json": `{"pillars": {"year": {"stem": "jia", "branch": "zi", "ten_god": "seven-killings"}, "month": {"stem": "bing", "branch": "yin", "ten_god": "indirect-resource"},` +
			` "day": {"stem": "wu", "branch": "chen"}, "hour": {"stem": "geng", "branch": "shen", "ten_god": "eating-god"}},` +
			` "day_master_element": "earth", "strength": "balanced",` +
			` "preferences": {"favorable": "fire", "useful": "earth", "idle": "metal", "taboo": "water", "enemy": "wood"},` +
			` "balance": {"wood": 20, "fire": 20, "earth": 20, "metal": 20, "water": 20}}`,
	}
	var keys []string
	for name, body := range files {
		p := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
		c, err := chartfile.Load(p)
		require.NoError(t, err, name)
		keys = append(keys, c.Key())
	}
	assert.Equal(t, keys[0], keys[1])
	assert.Equal(t, keys[1], keys[2])
}
