package synth

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPCMLength(t *testing.T) {
	pcm := PCM(Tone{Freq: 440, Duration: 0.5, Volume: 1}, Tone{Freq: 220, Duration: 0.25, Volume: 1})
	assert.Len(t, pcm, int(0.5*SampleRate)*4+int(0.25*SampleRate)*4)
	assert.Empty(t, PCM(Tone{Freq: 440, Duration: 0}))
}

func TestPCMRespectsVolume(t *testing.T) {
	for _, wave := range []Waveform{Sine, Square, Triangle, Noise} {
		pcm := PCM(Tone{Wave: wave, Freq: 300, EndFreq: 900, Duration: 0.1, Volume: 0.5})
		peak := 0
		for i := 0; i+1 < len(pcm); i += 2 {
			s := int(int16(binary.LittleEndian.Uint16(pcm[i:])))
			if s < 0 {
				s = -s
			}
			peak = max(peak, s)
		}
		assert.LessOrEqual(t, peak, math.MaxInt16/2+1, "wave %d", wave)
		assert.Positive(t, peak, "wave %d", wave)
	}
}

func TestEnvelopeFades(t *testing.T) {
	tone := Tone{Duration: 1, Attack: 0.1, Release: 0.2}
	assert.Equal(t, 0.0, envelope(0, tone))
	assert.InDelta(t, 0.5, envelope(0.05, tone), 1e-9)
	assert.Equal(t, 1.0, envelope(0.5, tone))
	assert.InDelta(t, 0.5, envelope(0.9, tone), 1e-9)
}

func TestPCMIsInterleavedStereo(t *testing.T) {
	pcm := PCM(Tone{Wave: Triangle, Freq: 440, Duration: 0.01, Volume: 1})
	require.Zero(t, len(pcm)%4, "whole 16-bit stereo frames")
	for i := 0; i+3 < len(pcm); i += 4 {
		require.Equal(t, pcm[i:i+2], pcm[i+2:i+4], "frame %d", i/4)
	}
}
