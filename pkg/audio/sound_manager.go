// pkg/audio/sound_manager.go
package audio

import (
	"context"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/opd-ai/go-asteroids/pkg/event"
	"github.com/opd-ai/go-asteroids/pkg/logging"
	"github.com/opd-ai/go-asteroids/pkg/rng"
)

const sampleRate = beep.SampleRate(44100)

// SoundManager plays short cues in response to game events. Every method
// is safe to call before Initialize or after a failed one; the game simply
// stays silent.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	src         rng.Source
	logger      *logging.Logger
	subs        []*event.Subscription
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(logger *logging.Logger, src rng.Source) *SoundManager {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if src == nil {
		src = rng.New(0)
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		src:    src,
		logger: logger,
	}
}

// Initialize opens the speaker and starts the mixer
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return logging.WrapError(err, "init speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Attach subscribes the manager to the bus. Calling it again moves the
// subscriptions to the new bus.
func (sm *SoundManager) Attach(bus *event.Bus) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.detach()
	for _, typ := range []event.Type{
		event.ProjectileFired,
		event.HazardDestroyed,
		event.CraftDestroyed,
		event.GameEnded,
	} {
		sm.subs = append(sm.subs, bus.Subscribe(typ, sm.onEvent))
	}
}

func (sm *SoundManager) detach() {
	for _, s := range sm.subs {
		s.Cancel()
	}
	sm.subs = nil
}

func (sm *SoundManager) onEvent(e event.Event) {
	if s := sm.cueFor(e); s != nil {
		sm.play(s)
	}
}

// cueFor maps an event to the sound it should trigger, or nil.
func (sm *SoundManager) cueFor(e event.Event) beep.Streamer {
	switch ev := e.(type) {
	case *event.ProjectileEvent:
		return FireSound(sampleRate)
	case *event.HazardEvent:
		if ev.GetType() != event.HazardDestroyed {
			return nil
		}
		return ExplosionSound(sampleRate, sm.src, ev.Tier)
	case *event.CraftEvent:
		return CraftLostSound(sampleRate)
	case *event.GameEvent:
		if ev.GetType() != event.GameEnded {
			return nil
		}
		return JingleSound(sampleRate, ev.Won)
	}
	return nil
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// Cleanup drops the subscriptions and silences anything still playing
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	sm.detach()
	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
	sm.logger.Debug(context.Background(), "audio stopped")
}
