package prefabs

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedPrefabsLoad(t *testing.T) {
	player, err := LoadPlayerSpec()
	require.NoError(t, err)
	assert.Equal(t, 64.0, player.Width)
	assert.Equal(t, 30.0, player.Charge.Max)
	assert.Equal(t, 0.1, player.Charge.MinMagnitude)
	assert.Equal(t, 5.0, player.Charge.Step)
	assert.Equal(t, 10, player.Dash.MaxCharges)
	assert.Equal(t, 100.0, player.Dash.Distance)
	assert.Equal(t, 500.0, player.MaxSpeed)
	assert.Equal(t, 0.6, player.Restitution)

	field, err := LoadFieldSpec()
	require.NoError(t, err)
	assert.Equal(t, FieldPolicyRandom, field.Policy)
	assert.Equal(t, 50.0, field.MaxElectric)

	spawner, err := LoadSpawnerSpec()
	require.NoError(t, err)
	assert.Equal(t, 15.0, spawner.Laser.Thickness)
	assert.Equal(t, 1, spawner.Scroll.MaxOnScreen)

	run, err := LoadRunSpec()
	require.NoError(t, err)
	assert.Equal(t, 1280.0, run.Width)
	assert.Equal(t, 720.0, run.Height)

	scrolls, err := LoadScrollsSpec()
	require.NoError(t, err)
	assert.Len(t, scrolls.Scrolls, 5)
}

func TestLoadScriptResolvesNames(t *testing.T) {
	for _, name := range []string{"rotating", "rotating.tengo", "scripts/rotating.tengo", "prefabs/scripts/rotating.tengo"} {
		data, err := LoadScript(name)
		require.NoError(t, err, name)
		assert.Contains(t, string(data), "bz :=", name)
	}

	_, err := LoadScript("missing")
	assert.Error(t, err)
}

func TestCleanPrefabPath(t *testing.T) {
	assert.Equal(t, "player.yaml", cleanPrefabPath("prefabs/player.yaml"))
	assert.Equal(t, "player.yaml", cleanPrefabPath("player.yaml"))
	assert.Equal(t, "", cleanPrefabPath(""))
}

func TestYAMLColor(t *testing.T) {
	var c struct {
		A YAMLColor  `yaml:"a"`
		B *YAMLColor `yaml:"b"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("a: \"#ff800080\"\n"), &c))
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0x80}, c.A.Color)
	assert.Equal(t, color.White, c.B.Or(color.White))

	assert.Error(t, yaml.Unmarshal([]byte("a: \"#fff\"\n"), &c))
	assert.Error(t, yaml.Unmarshal([]byte("a: [1, 2]\n"), &c))
}

func TestRunSpecRejectsEmptyArena(t *testing.T) {
	assert.NoError(t, RunSpec{Width: 1280, Height: 720}.validate())
	assert.Error(t, RunSpec{Width: 0, Height: 720}.validate())
	assert.Error(t, RunSpec{Width: 1280, Height: -1}.validate())
}
