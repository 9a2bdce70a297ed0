package store

import (
	"sync"

	"github.com/JaimeStill/admin-shell/internal/config"
)

// Settings holds display settings for the current process.
type Settings struct {
	mu    sync.RWMutex
	state SetType
}

func newSettings(platform config.PlatformConfig) *Settings {
	return &Settings{
		state: SetType{
			Title:         platform.Title,
			FixedHeader:   true,
			HiddenSideBar: false,
		},
	}
}

// Settings returns a snapshot of the display settings.
func (s *Settings) Settings() SetType {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// SetFixedHeader pins or releases the header.
func (s *Settings) SetFixedHeader(fixed bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.FixedHeader = fixed
}

// SetHiddenSideBar hides or shows the sidebar.
func (s *Settings) SetHiddenSideBar(hidden bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.HiddenSideBar = hidden
}
