// Package synth renders the game's sound effects and music from short tone
// descriptions, so no audio files ship with the binary.
package synth

import (
	"bytes"
	"encoding/binary"
	"math"
	"math/rand/v2"
)

const (
	SampleRate = 44100
	channels   = 2
	bitDepth   = 16
)

type Waveform int

const (
	Sine Waveform = iota
	Square
	Triangle
	Noise
)

// Tone is a single sweep from Freq to EndFreq. Attack and Release shape the
// start and end of the envelope, both in seconds.
type Tone struct {
	Wave     Waveform
	Freq     float64
	EndFreq  float64
	Duration float64
	Volume   float64
	Attack   float64
	Release  float64
}

// PCM renders tones back to back as 16-bit little-endian stereo at
// SampleRate, the format ebiten's audio players take directly.
func PCM(tones ...Tone) []byte {
	var buf bytes.Buffer
	rng := rand.New(rand.NewPCG(0x5eed, 0xf1e1d))
	for _, t := range tones {
		render(&buf, t, rng)
	}
	return buf.Bytes()
}

func render(buf *bytes.Buffer, t Tone, rng *rand.Rand) {
	n := int(t.Duration * SampleRate)
	if n <= 0 {
		return
	}
	end := t.EndFreq
	if end == 0 {
		end = t.Freq
	}

	phase := 0.0
	frame := make([]byte, channels*bitDepth/8)
	for i := 0; i < n; i++ {
		progress := float64(i) / float64(n)
		freq := t.Freq + (end-t.Freq)*progress
		phase += freq / SampleRate
		phase -= math.Floor(phase)

		var v float64
		switch t.Wave {
		case Square:
			v = 1
			if phase >= 0.5 {
				v = -1
			}
		case Triangle:
			v = 4*math.Abs(phase-0.5) - 1
		case Noise:
			v = rng.Float64()*2 - 1
		default:
			v = math.Sin(2 * math.Pi * phase)
		}

		v *= t.Volume * envelope(float64(i)/SampleRate, t)
		v = max(-1, min(1, v))
		s := int16(v * math.MaxInt16)
		binary.LittleEndian.PutUint16(frame[0:], uint16(s))
		binary.LittleEndian.PutUint16(frame[2:], uint16(s))
		buf.Write(frame)
	}
}

func envelope(at float64, t Tone) float64 {
	g := 1.0
	if t.Attack > 0 && at < t.Attack {
		g = at / t.Attack
	}
	if left := t.Duration - at; t.Release > 0 && left < t.Release {
		g = min(g, left/t.Release)
	}
	return max(0, g)
}
