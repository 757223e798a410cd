// Package audio loops a bundled background sound while a session
// runs. A missing or undecodable asset silently skips playback.
package audio

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
	"github.com/gopxl/beep/v2/wav"
	"github.com/venalora/stillpoint/internal/config"
	"github.com/venalora/stillpoint/internal/models"
	"github.com/venalora/stillpoint/internal/util"
)

// playFunc starts looping playback of the asset at path and returns
// a stop function. Tests substitute a fake; production uses playWAV.
type playFunc func(path string) (stop func(), err error)

// Player tracks the one background sound that may be looping.
type Player struct {
	dir     string
	current models.Sound
	stop    func()
	play    playFunc
}

// NewPlayer creates a player resolving assets under dir.
func NewPlayer(dir string) *Player {
	return &Player{dir: dir, play: playWAV}
}

// Playing returns the sound currently looping, or SoundNone.
func (p *Player) Playing() models.Sound {
	return p.current
}

// Play switches to the given background sound, stopping whatever was
// looping before. SoundNone means silence. Unknown sounds, missing
// assets and decode or device errors all degrade to no playback.
func (p *Player) Play(sound models.Sound) {
	if sound == p.current {
		return
	}
	p.Stop()
	if sound == models.SoundNone {
		return
	}
	asset, ok := config.SoundAssets[sound]
	if !ok {
		return
	}
	path := filepath.Join(p.dir, asset)
	if _, err := os.Stat(path); err != nil {
		util.LogError("sound asset missing", err)
		return
	}
	stop, err := p.play(path)
	if err != nil {
		util.LogError("sound playback", err)
		return
	}
	p.stop = stop
	p.current = sound
}

// Stop halts playback. Safe when nothing is playing.
func (p *Player) Stop() {
	if p.stop != nil {
		p.stop()
		p.stop = nil
	}
	p.current = models.SoundNone
}

func playWAV(path string) (func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	streamer, format, err := wav.Decode(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		streamer.Close()
		return nil, err
	}
	loop, err := beep.Loop2(streamer)
	if err != nil {
		streamer.Close()
		return nil, err
	}
	speaker.Play(loop)
	return func() {
		speaker.Clear()
		streamer.Close()
	}, nil
}
