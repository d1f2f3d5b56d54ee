package system

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/bulletboss/assets"
	"github.com/milk9111/bulletboss/ecs"
	"github.com/milk9111/bulletboss/ecs/component"
)

// AudioSystem plays a cue for every volley fired this frame. Cues that fail to
// load are logged once and then stay silent.
type AudioSystem struct {
	volume  float64
	players map[component.ProjectileClass]*audio.Player
	failed  map[component.ProjectileClass]bool
}

func NewAudioSystem(volume float64) *AudioSystem {
	return &AudioSystem{
		volume:  volume,
		players: make(map[component.ProjectileClass]*audio.Player),
		failed:  make(map[component.ProjectileClass]bool),
	}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil || a.volume <= 0 {
		return
	}

	for _, volley := range ecs.Collect[component.VolleyFired](w.Events(), component.VolleyFiredEvent) {
		player := a.player(volley.Class)
		if player == nil {
			continue
		}
		player.SetVolume(a.volume)
		if err := player.Rewind(); err != nil {
			log.Printf("audio: rewind %s cue: %v", volley.Class, err)
			continue
		}
		player.Play()
	}
}

func (a *AudioSystem) player(class component.ProjectileClass) *audio.Player {
	if p, ok := a.players[class]; ok {
		return p
	}
	if a.failed[class] {
		return nil
	}
	p, err := assets.NewCuePlayer(assets.VolleyCue(string(class)))
	if err != nil {
		log.Printf("audio: load %s cue: %v", class, err)
		a.failed[class] = true
		return nil
	}
	a.players[class] = p
	return p
}
