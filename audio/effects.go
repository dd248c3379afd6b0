package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType selects the source of a tone
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// Tone returns exactly d worth of samples of wave at freq
// Frequencies the generators reject (zero, or above Nyquist) yield silence of the same length
func Tone(wave WaveType, freq float64, d time.Duration, rate beep.SampleRate) beep.Streamer {
	n := rate.N(d)

	var (
		src beep.Streamer
		err error
	)
	switch wave {
	case WaveSine:
		src, err = generators.SineTone(rate, freq)
	case WaveSquare:
		src, err = generators.SquareTone(rate, freq)
	case WaveSaw:
		src, err = generators.SawtoothTone(rate, freq)
	case WaveNoise:
		src = whiteNoise()
	}
	if err != nil || src == nil {
		return beep.Silence(n)
	}
	return beep.Take(n, src)
}

func whiteNoise() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for i := range samples {
			v := rand.Float64()*2 - 1
			samples[i] = [2]float64{v, v}
		}
		return len(samples), true
	})
}

// Shape applies a linear attack and release to the first d of s, then ends the stream
func Shape(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total, up, down := rate.N(d), rate.N(attack), rate.N(release)
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= total {
			return 0, false
		}
		if left := total - pos; len(samples) > left {
			samples = samples[:left]
		}
		n, ok := s.Stream(samples)
		for i := range samples[:n] {
			g := gain(pos, total, up, down)
			samples[i][0] *= g
			samples[i][1] *= g
			pos++
		}
		return n, ok || n > 0
	})
}

func gain(pos, total, attack, release int) float64 {
	g := 1.0
	if pos < attack {
		g = float64(pos) / float64(attack)
	}
	if left := total - pos; left < release {
		g = math.Min(g, float64(left)/float64(release))
	}
	return g
}

// withVolume scales linear vol onto beep's log2 volume; zero or less is silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(wave WaveType, freq float64, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return Shape(Tone(wave, freq, d, rate), d, attack, release, rate)
}

// CreateCollectSound is a rising B5 to E6 square chime
func CreateCollectSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		note(WaveSquare, 987.77, collectNote1Duration, collectAttack, collectRelease, rate),
		note(WaveSquare, 1318.51, collectNote2Duration, collectAttack, collectRelease, rate),
	)
	return withVolume(seq, cfg.EffectVolumes[SoundCollect]*cfg.MasterVolume)
}

// CreateFireSound is a short noise burst
func CreateFireSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	return withVolume(
		note(WaveNoise, 0, fireDuration, fireAttack, fireRelease, rate),
		cfg.EffectVolumes[SoundFire]*cfg.MasterVolume,
	)
}

// CreateGameOverSound falls G4, E4, C4 on a saw wave, holding the last note twice as long
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	seq := beep.Seq(
		note(WaveSaw, 392.00, gameOverNoteDuration, gameOverAttack, gameOverRelease, rate),
		note(WaveSaw, 329.63, gameOverNoteDuration, gameOverAttack, gameOverRelease, rate),
		note(WaveSaw, 261.63, 2*gameOverNoteDuration, gameOverAttack, 2*gameOverRelease, rate),
	)
	return withVolume(seq, cfg.EffectVolumes[SoundGameOver]*cfg.MasterVolume)
}

// GetSoundEffect builds a fresh streamer for st, nil for unknown types
func GetSoundEffect(st SoundType, cfg *AudioConfig) beep.Streamer {
	switch st {
	case SoundCollect:
		return CreateCollectSound(cfg)
	case SoundFire:
		return CreateFireSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	}
	return nil
}
