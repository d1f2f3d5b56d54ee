package assets

import (
	"bytes"
	"embed"
	"fmt"
	"io"
	"path"
	"path/filepath"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// SampleRate is the rate every embedded cue is decoded to.
const SampleRate = 44100

//go:embed *.wav
var sounds embed.FS

var audioContext = sync.OnceValue(func() *audio.Context {
	return audio.NewContext(SampleRate)
})

// VolleyCue names the cue played when a volley of the given projectile class
// is fired.
func VolleyCue(class string) string {
	return "volley_" + class + ".wav"
}

// ReadSound returns the raw bytes of an embedded sound. Directory prefixes
// are ignored.
func ReadSound(name string) ([]byte, error) {
	return sounds.ReadFile(path.Base(filepath.ToSlash(name)))
}

// LoadPCM decodes an embedded WAV into 16-bit little-endian stereo PCM at
// SampleRate.
func LoadPCM(name string) ([]byte, error) {
	raw, err := ReadSound(name)
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", name, err)
	}
	stream, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", name, err)
	}
	return pcm, nil
}

// NewCuePlayer returns a player for an embedded cue on the shared audio
// context.
func NewCuePlayer(name string) (*audio.Player, error) {
	pcm, err := LoadPCM(name)
	if err != nil {
		return nil, err
	}
	return audioContext().NewPlayerFromBytes(pcm), nil
}
