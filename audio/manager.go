package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/lixenwraith/space-invaders/config"
)

// Manager plays effects and one background track through the speaker
// Every method is a no-op until Init succeeds, so the game runs without an audio device
type Manager struct {
	mu          sync.Mutex
	cfg         config.AudioConfig
	log         *zap.Logger
	mixer       *beep.Mixer
	track       *beep.Ctrl
	trackName   string
	missing     map[string]bool
	initialized bool
}

// NewManager creates a manager; call Init to open the device
func NewManager(cfg config.AudioConfig, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		cfg:     cfg,
		log:     log,
		mixer:   &beep.Mixer{},
		missing: make(map[string]bool),
	}
}

// Init opens the speaker; a disabled config leaves the manager silent
func (m *Manager) Init() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.initialized || !m.cfg.Enabled {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}
	speaker.Play(newVolume(m.mixer, m.cfg.Volume))
	m.initialized = true
	return nil
}

// Play mixes a one-shot effect over whatever is playing
func (m *Manager) Play(sound string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	s, ok := Sound(sound, sampleRate)
	if !ok {
		m.warnMissing("sound", sound)
	}
	speaker.Lock()
	m.mixer.Add(s)
	speaker.Unlock()
}

// SwitchTrack stops the current track and loops the named one
// Switching to the track already playing keeps it going
func (m *Manager) SwitchTrack(track string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized || (track == m.trackName && m.track != nil) {
		return
	}

	speaker.Lock()
	defer speaker.Unlock()

	if m.track != nil {
		m.track.Paused = true
		m.track.Streamer = nil
		m.track = nil
	}
	m.trackName = track
	if track == "" {
		return
	}

	s, ok := Track(track, sampleRate)
	if !ok {
		m.warnMissing("track", track)
	}
	m.track = &beep.Ctrl{Streamer: s}
	m.mixer.Add(m.track)
}

// Current returns the name of the playing track
func (m *Manager) Current() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.trackName
}

// Close silences everything; the speaker itself stays open
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.initialized {
		return
	}
	speaker.Lock()
	if m.track != nil {
		m.track.Paused = true
		m.track = nil
	}
	m.mixer.Clear()
	speaker.Unlock()

	m.trackName = ""
	m.initialized = false
}

func (m *Manager) warnMissing(kind, name string) {
	if m.missing[kind+":"+name] {
		return
	}
	m.missing[kind+":"+name] = true
	m.log.Warn("no synthesis for name, using fallback", zap.String("kind", kind), zap.String("name", name))
}
