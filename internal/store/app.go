package store

import (
	"context"
	"sync"

	"github.com/JaimeStill/admin-shell/internal/config"
	"github.com/JaimeStill/admin-shell/pkg/utils"
)

type layoutState struct {
	Layout        string `json:"layout"`
	SidebarStatus bool   `json:"sidebarStatus"`
}

// App holds the application shell state, persisted under LayoutKey.
type App struct {
	mu    sync.RWMutex
	state AppType
	local *utils.Storage
}

func newApp(ctx context.Context, local *utils.Storage, platform config.PlatformConfig) (*App, error) {
	saved := layoutState{
		Layout:        platform.Layout,
		SidebarStatus: platform.SidebarStatus,
	}
	if _, err := local.GetItem(ctx, LayoutKey, &saved); err != nil {
		return nil, err
	}

	return &App{
		local: local,
		state: AppType{
			Sidebar: Sidebar{
				Opened:          saved.SidebarStatus,
				IsClickCollapse: !saved.SidebarStatus,
			},
			Layout: saved.Layout,
			Device: DeviceDesktop,
		},
	}, nil
}

// App returns a snapshot of the application state.
func (a *App) App() AppType {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.state
}

// ToggleSideBar opens a closed sidebar or closes an open one.
func (a *App) ToggleSideBar(ctx context.Context) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Sidebar.Opened = !a.state.Sidebar.Opened
	a.state.Sidebar.WithoutAnimation = false
	a.state.Sidebar.IsClickCollapse = !a.state.Sidebar.Opened
	return a.persist(ctx)
}

// CloseSideBar closes the sidebar, optionally skipping the animation. It is
// used when the viewport shrinks rather than on user request.
func (a *App) CloseSideBar(ctx context.Context, withoutAnimation bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Sidebar.Opened = false
	a.state.Sidebar.WithoutAnimation = withoutAnimation
	return a.persist(ctx)
}

// SetLayout switches the navigation layout.
func (a *App) SetLayout(ctx context.Context, layout string) error {
	switch layout {
	case config.LayoutVertical, config.LayoutHorizontal, config.LayoutMix:
	default:
		return ErrInvalidLayout
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.state.Layout = layout
	return a.persist(ctx)
}

// ToggleDevice records the client device class.
func (a *App) ToggleDevice(device string) error {
	if device != DeviceDesktop && device != DeviceMobile {
		return ErrInvalidDevice
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.Device = device
	return nil
}

// SetViewportSize records the client viewport.
func (a *App) SetViewportSize(size ViewportSize) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state.ViewportSize = size
}

func (a *App) persist(ctx context.Context) error {
	return a.local.SetItem(ctx, LayoutKey, layoutState{
		Layout:        a.state.Layout,
		SidebarStatus: a.state.Sidebar.Opened,
	})
}
