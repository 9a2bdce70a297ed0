package config_test

import (
	"os"
	"testing"
	"time"

	"github.com/JaimeStill/admin-shell/internal/config"
)

func chdirRoot(t *testing.T) {
	t.Helper()
	oldDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("Failed to get working directory: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldDir) })

	if err := os.Chdir("../../"); err != nil {
		t.Fatalf("Failed to change to repo root: %v", err)
	}
}

func TestLoad_BaseConfig(t *testing.T) {
	chdirRoot(t)
	t.Setenv(config.EnvServiceEnv, "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("Server.Port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Remote.MaxResponseSizeBytes() != 4_000_000 {
		t.Errorf("Remote.MaxResponseSizeBytes() = %d", cfg.Remote.MaxResponseSizeBytes())
	}
	if cfg.Storage.MaxEntrySizeBytes() != 1_000_000 {
		t.Errorf("Storage.MaxEntrySizeBytes() = %d", cfg.Storage.MaxEntrySizeBytes())
	}
	if !cfg.Platform.KeepAlive || !cfg.Platform.SidebarStatus {
		t.Error("platform flags from config.toml not loaded")
	}
}

func TestLoad_WithOverlay(t *testing.T) {
	chdirRoot(t)

	testOverlay := `shutdown_timeout = "60s"

[server]
port = 9090

[platform]
caching_async_routes = true
`

	if err := os.WriteFile("config.test.toml", []byte(testOverlay), 0644); err != nil {
		t.Fatalf("Failed to write test overlay: %v", err)
	}
	defer os.Remove("config.test.toml")

	t.Setenv(config.EnvServiceEnv, "test")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() with overlay failed: %v", err)
	}

	if cfg.ShutdownTimeout != "60s" {
		t.Errorf("ShutdownTimeout = %q, want %q", cfg.ShutdownTimeout, "60s")
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want %d", cfg.Server.Port, 9090)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want base value", cfg.Server.Host)
	}
	if !cfg.Platform.CachingAsyncRoutes {
		t.Error("Platform.CachingAsyncRoutes not merged from overlay")
	}
}

func TestLoad_EnvVarOverrides(t *testing.T) {
	chdirRoot(t)
	t.Setenv(config.EnvServiceEnv, "")
	t.Setenv(config.EnvServiceShutdownTimeout, "45s")
	t.Setenv(config.EnvServerPort, "3000")
	t.Setenv("REMOTE_BASE_URL", "https://routes.example.com")
	t.Setenv(config.EnvPlatformStorageNameSpace, "shell-")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.ShutdownTimeoutDuration() != 45*time.Second {
		t.Errorf("ShutdownTimeoutDuration() = %v", cfg.ShutdownTimeoutDuration())
	}
	if cfg.Server.Port != 3000 {
		t.Errorf("Server.Port = %d", cfg.Server.Port)
	}
	if cfg.Remote.BaseURL != "https://routes.example.com" {
		t.Errorf("Remote.BaseURL = %q", cfg.Remote.BaseURL)
	}
	if cfg.ResponsiveStorageNameSpace() != "shell-" {
		t.Errorf("ResponsiveStorageNameSpace() = %q", cfg.ResponsiveStorageNameSpace())
	}
}

func TestLoad_InvalidDuration(t *testing.T) {
	chdirRoot(t)
	t.Setenv(config.EnvServiceEnv, "")
	t.Setenv(config.EnvServiceShutdownTimeout, "soon")

	if _, err := config.Load(); err == nil {
		t.Error("Load() succeeded with invalid shutdown_timeout")
	}
}

func TestFinalize_Defaults(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Name = "shell"
	cfg.Database.User = "shell"

	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.ShutdownTimeout != "30s" {
		t.Errorf("ShutdownTimeout = %q", cfg.ShutdownTimeout)
	}
	if cfg.ResponsiveStorageNameSpace() != "responsive-" {
		t.Errorf("ResponsiveStorageNameSpace() = %q", cfg.ResponsiveStorageNameSpace())
	}
	if cfg.Platform.Layout != config.LayoutVertical {
		t.Errorf("Platform.Layout = %q", cfg.Platform.Layout)
	}
}

func TestGetConfig(t *testing.T) {
	cfg := &config.Config{Version: "1.2.3"}
	cfg.Platform.Title = "Shell"

	got := cfg.GetConfig()
	if got.Title != "Shell" || got.Version != "1.2.3" {
		t.Errorf("GetConfig() = %+v", got)
	}

	got.Title = "Mutated"
	if cfg.Platform.Title != "Shell" {
		t.Error("GetConfig() returned shared state")
	}
}

func TestPlatformConfig_InvalidLayout(t *testing.T) {
	cfg := &config.PlatformConfig{Layout: "grid"}
	if err := cfg.Finalize(); err == nil {
		t.Error("Finalize() succeeded with invalid layout")
	}
}

func TestPlatformConfig_Merge(t *testing.T) {
	base := &config.PlatformConfig{
		Title:     "Shell",
		Layout:    config.LayoutVertical,
		KeepAlive: true,
	}
	overlay := &config.PlatformConfig{
		Layout:         config.LayoutMix,
		MultiTagsCache: true,
	}

	base.Merge(overlay)

	if base.Title != "Shell" {
		t.Errorf("Title = %q (should not change)", base.Title)
	}
	if base.Layout != config.LayoutMix {
		t.Errorf("Layout = %q (should merge)", base.Layout)
	}
	if base.KeepAlive {
		t.Error("KeepAlive should take the overlay value")
	}
	if !base.MultiTagsCache {
		t.Error("MultiTagsCache should take the overlay value")
	}
}

func TestServerConfig_Addr(t *testing.T) {
	cfg := &config.ServerConfig{Host: "localhost", Port: 3000}
	if cfg.Addr() != "localhost:3000" {
		t.Errorf("Addr() = %q", cfg.Addr())
	}
}

func TestServerConfig_Validate_InvalidPort(t *testing.T) {
	for _, port := range []int{-1, 65536} {
		cfg := &config.ServerConfig{Port: port}
		if err := cfg.Finalize(); err == nil {
			t.Errorf("Finalize() succeeded with port %d", port)
		}
	}
}
