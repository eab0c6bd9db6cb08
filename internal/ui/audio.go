package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundMove SoundType = iota
	SoundCapture
	SoundCheck
	SoundCancel
	SoundGameEnd
)

const (
	sampleRate = 44100
)

// AudioManager plays procedurally generated sound effects.
// A nil *AudioManager is valid and silent.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	volume  float64
}

// NewAudioManager creates the process-wide audio context and the sounds.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		volume:  0.5,
	}
	am.sounds[SoundMove] = generateClick(440, 0.08, 0.3)
	am.sounds[SoundCapture] = generateClick(330, 0.12, 0.5)
	am.sounds[SoundCheck] = generateTone(880, 0.15, 0.4)
	am.sounds[SoundCancel] = generateTone(220, 0.06, 0.2)
	am.sounds[SoundGameEnd] = generateChord(0.4, 0.5)
	return am
}

// writeSample writes one 16-bit stereo frame.
func writeSample(data []byte, i int, sample float64) {
	val := int16(sample * 32767)
	data[i*4] = byte(val)
	data[i*4+1] = byte(val >> 8)
	data[i*4+2] = byte(val)
	data[i*4+3] = byte(val >> 8)
}

// generateClick creates a short percussive click.
func generateClick(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-t * 30)
		noise := (math.Sin(float64(i)*0.3) + math.Sin(float64(i)*0.7)) * 0.3
		writeSample(data, i, (math.Sin(2*math.Pi*freq*t)+noise)*envelope*amplitude)
	}
	return data
}

// generateTone creates a tone with a short attack and linear decay.
func generateTone(freq, duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		progress := t / duration
		envelope := 1.0 - (progress-0.1)/0.9
		if progress < 0.1 {
			envelope = progress / 0.1
		}
		writeSample(data, i, math.Sin(2*math.Pi*freq*t)*envelope*amplitude)
	}
	return data
}

// generateChord creates a C major chord that fades in and out.
func generateChord(duration, amplitude float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)
	freqs := []float64{261.63, 329.63, 392.00}

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		progress := t / duration
		envelope := 1.0
		switch {
		case progress < 0.1:
			envelope = progress / 0.1
		case progress > 0.7:
			envelope = (1.0 - progress) / 0.3
		}

		sample := 0.0
		for _, f := range freqs {
			sample += math.Sin(2 * math.Pi * f * t)
		}
		writeSample(data, i, sample/float64(len(freqs))*envelope*amplitude)
	}
	return data
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if am == nil {
		return
	}
	data, ok := am.sounds[sound]
	if !ok {
		return
	}
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}
