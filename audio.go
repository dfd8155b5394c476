package main

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/milk9111/fieldrunner/assets"
	"github.com/milk9111/fieldrunner/ecs"
)

const (
	musicScale = 0.7
	sfxScale   = 0.5
)

var eventSounds = map[ecs.EventKind]assets.Sound{
	ecs.EventChargeChanged:  assets.SoundCharge,
	ecs.EventDashed:         assets.SoundDash,
	ecs.EventWallBounce:     assets.SoundBounce,
	ecs.EventLaserSpawned:   assets.SoundLaser,
	ecs.EventScrollPickedUp: assets.SoundPickup,
	ecs.EventRunLost:        assets.SoundHit,
	ecs.EventRunWon:         assets.SoundWin,
}

// soundboard plays sound effects for gameplay events and owns the music loop.
// Music runs at 70% and effects at 50% of the master volume.
type soundboard struct {
	lib     *assets.Library
	players map[assets.Sound]*audio.Player
	music   *audio.Player
	master  float64
}

func newSoundboard(lib *assets.Library, master float64) *soundboard {
	return &soundboard{lib: lib, players: make(map[assets.Sound]*audio.Player), master: master}
}

func (s *soundboard) handle(events []ecs.Event) {
	for _, evt := range events {
		if snd, ok := eventSounds[evt.Kind]; ok {
			s.play(snd)
		}
	}
}

func (s *soundboard) play(snd assets.Sound) {
	p, ok := s.players[snd]
	if !ok {
		var err error
		p, err = s.lib.Player(snd)
		if err != nil {
			log.Printf("audio: %v", err)
			return
		}
		s.players[snd] = p
	}
	if p.IsPlaying() {
		return
	}
	p.SetVolume(s.master * sfxScale)
	if err := p.Rewind(); err != nil {
		log.Printf("audio: rewind %s: %v", snd, err)
		return
	}
	p.Play()
}

func (s *soundboard) startMusic() {
	if s.music == nil {
		p, err := s.lib.MusicPlayer()
		if err != nil {
			log.Printf("audio: %v", err)
			return
		}
		s.music = p
	}
	s.music.SetVolume(s.master * musicScale)
	s.music.Play()
}

func (s *soundboard) pauseMusic() {
	if s.music != nil {
		s.music.Pause()
	}
}

func (s *soundboard) stopMusic() {
	if s.music == nil {
		return
	}
	s.music.Pause()
	_ = s.music.Rewind()
}

func (s *soundboard) setMaster(v float64) {
	s.master = v
	if s.music != nil {
		s.music.SetVolume(v * musicScale)
	}
}
