package assets

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/fieldrunner/assets/synth"
	"golang.org/x/image/colornames"
)

type Sound string

const (
	SoundCharge Sound = "charge"
	SoundDash   Sound = "dash"
	SoundBounce Sound = "bounce"
	SoundLaser  Sound = "laser"
	SoundPickup Sound = "pickup"
	SoundHit    Sound = "hit"
	SoundWin    Sound = "win"
	SoundClick  Sound = "click"
)

var sfxTones = map[Sound][]synth.Tone{
	SoundCharge: {{Wave: synth.Triangle, Freq: 520, EndFreq: 780, Duration: 0.08, Volume: 0.5, Release: 0.04}},
	SoundDash:   {{Wave: synth.Noise, Duration: 0.12, Volume: 0.4, Release: 0.1}, {Wave: synth.Sine, Freq: 900, EndFreq: 300, Duration: 0.1, Volume: 0.4, Release: 0.05}},
	SoundBounce: {{Wave: synth.Sine, Freq: 180, EndFreq: 90, Duration: 0.08, Volume: 0.6, Release: 0.05}},
	SoundLaser:  {{Wave: synth.Square, Freq: 1400, EndFreq: 400, Duration: 0.25, Volume: 0.25, Attack: 0.01, Release: 0.1}},
	SoundPickup: {{Wave: synth.Triangle, Freq: 660, Duration: 0.08, Volume: 0.5}, {Wave: synth.Triangle, Freq: 990, Duration: 0.16, Volume: 0.5, Release: 0.1}},
	SoundHit:    {{Wave: synth.Noise, Duration: 0.4, Volume: 0.6, Release: 0.35}, {Wave: synth.Square, Freq: 110, EndFreq: 40, Duration: 0.3, Volume: 0.3, Release: 0.2}},
	SoundWin:    {{Wave: synth.Triangle, Freq: 523, Duration: 0.15, Volume: 0.5}, {Wave: synth.Triangle, Freq: 659, Duration: 0.15, Volume: 0.5}, {Wave: synth.Triangle, Freq: 784, Duration: 0.4, Volume: 0.5, Release: 0.3}},
	SoundClick:  {{Wave: synth.Square, Freq: 1200, Duration: 0.02, Volume: 0.2, Release: 0.01}},
}

// musicTones is a slow drone loop under gameplay.
var musicTones = []synth.Tone{
	{Wave: synth.Sine, Freq: 110, Duration: 2, Volume: 0.25, Attack: 0.5, Release: 0.5},
	{Wave: synth.Sine, Freq: 130.81, Duration: 2, Volume: 0.25, Attack: 0.5, Release: 0.5},
	{Wave: synth.Sine, Freq: 98, Duration: 2, Volume: 0.25, Attack: 0.5, Release: 0.5},
	{Wave: synth.Sine, Freq: 123.47, Duration: 2, Volume: 0.25, Attack: 0.5, Release: 0.5},
}

// Library holds the generated sprites and sound data. It is created once and
// handed to whatever draws or plays sound.
type Library struct {
	ctx   *audio.Context
	sfx   map[Sound][]byte
	music []byte

	ParticlePositive *ebiten.Image
	ParticleNegative *ebiten.Image
	ParticleNeutral  *ebiten.Image
	Scroll           *ebiten.Image
}

func NewLibrary() *Library {
	l := &Library{
		ctx:   audio.NewContext(synth.SampleRate),
		sfx:   make(map[Sound][]byte, len(sfxTones)),
		music: synth.PCM(musicTones...),
	}
	for s, tones := range sfxTones {
		l.sfx[s] = synth.PCM(tones...)
	}

	l.ParticlePositive = particleImage(colornames.Tomato)
	l.ParticleNegative = particleImage(colornames.Deepskyblue)
	l.ParticleNeutral = particleImage(colornames.Lightgray)
	l.Scroll = scrollImage()
	return l
}

// Player creates a fresh audio player for a sound effect.
func (l *Library) Player(s Sound) (*audio.Player, error) {
	pcm, ok := l.sfx[s]
	if !ok {
		return nil, fmt.Errorf("assets: unknown sound %q", s)
	}
	return l.ctx.NewPlayerFromBytes(pcm), nil
}

// MusicPlayer creates a looping player for the background drone.
func (l *Library) MusicPlayer() (*audio.Player, error) {
	loop := audio.NewInfiniteLoop(bytes.NewReader(l.music), int64(len(l.music)))
	p, err := l.ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("assets: music player: %w", err)
	}
	return p, nil
}

const particleSize = 64

func particleImage(c color.RGBA) *ebiten.Image {
	img := ebiten.NewImage(particleSize, particleSize)
	r := float32(particleSize / 2)
	glow := c
	glow.A = 60
	vector.FillCircle(img, r, r, r, glow, true)
	vector.FillCircle(img, r, r, r*0.7, c, true)
	vector.StrokeCircle(img, r, r, r*0.7, 2, colornames.White, true)
	return img
}

func scrollImage() *ebiten.Image {
	const w, h = 48, 48
	img := ebiten.NewImage(w, h)
	vector.FillRect(img, 8, 6, 32, 36, colornames.Wheat, false)
	vector.FillRect(img, 4, 4, 40, 6, colornames.Burlywood, false)
	vector.FillRect(img, 4, 38, 40, 6, colornames.Burlywood, false)
	for y := float32(16); y < 36; y += 6 {
		vector.StrokeLine(img, 13, y, 35, y, 1, colornames.Saddlebrown, false)
	}
	return img
}
