package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	cfg "github.com/automoto/laserbeam-mp/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// AudioLoader renders the procedural sound set and caches decoded PCM.
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte // Decoded bytes per sound
	humCache []byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// ToneWAV renders a mono sine tone as a 16-bit WAV file. With decay the
// amplitude falls off linearly to silence.
func ToneWAV(freq float64, durationMs, sampleRate int, decay bool) []byte {
	samples := sampleRate * durationMs / 1000
	pcm := make([]byte, samples*2)
	for i := 0; i < samples; i++ {
		amp := 0.5
		if decay {
			amp *= 1 - float64(i)/float64(samples)
		}
		v := math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate)) * amp
		binary.LittleEndian.PutUint16(pcm[i*2:], uint16(int16(v*math.MaxInt16)))
	}

	var buf bytes.Buffer
	buf.WriteString("RIFF")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(36+len(pcm)))
	buf.WriteString("WAVE")
	buf.WriteString("fmt ")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(16))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // PCM
	_ = binary.Write(&buf, binary.LittleEndian, uint16(1)) // mono
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(sampleRate*2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(2))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(16))
	buf.WriteString("data")
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(pcm)))
	buf.Write(pcm)
	return buf.Bytes()
}

func (l *AudioLoader) decode(data []byte) ([]byte, error) {
	stream, err := wav.DecodeWithSampleRate(l.context.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode wav: %w", err)
	}
	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio: %w", err)
	}
	return decoded, nil
}

// PreloadSFX renders and decodes a sound effect without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}

	freq, ok := cfg.Audio.ToneFrequencies[id]
	if !ok {
		return fmt.Errorf("no tone for sound %d", id)
	}
	decoded, err := l.decode(ToneWAV(freq, cfg.Audio.ToneDurationsMs[id], l.context.SampleRate(), true))
	if err != nil {
		return fmt.Errorf("sound %d: %w", id, err)
	}

	l.sfxCache[id] = decoded
	return nil
}

// LoadSFX returns a new player for a sound effect.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(l.sfxCache[id]))
}

// LoadHum returns a looping player for the beam hum.
func (l *AudioLoader) LoadHum() (*audio.Player, error) {
	if l.humCache == nil {
		// One second holds a whole number of periods for integer frequencies.
		decoded, err := l.decode(ToneWAV(cfg.Audio.HumFrequency, 1000, l.context.SampleRate(), false))
		if err != nil {
			return nil, fmt.Errorf("hum: %w", err)
		}
		l.humCache = decoded
	}

	loop := audio.NewInfiniteLoop(bytes.NewReader(l.humCache), int64(len(l.humCache)))
	return l.context.NewPlayer(loop)
}
