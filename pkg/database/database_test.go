package database_test

import (
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/JaimeStill/admin-shell/pkg/database"
)

func validConfig() *database.Config {
	return &database.Config{Name: "admin_shell", User: "admin_shell", Password: "secret"}
}

func TestConfig_Finalize_Defaults(t *testing.T) {
	cfg := validConfig()
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	if cfg.Host != "localhost" || cfg.Port != 5432 {
		t.Errorf("address = %s:%d", cfg.Host, cfg.Port)
	}
	if cfg.SSLMode != "disable" {
		t.Errorf("SSLMode = %q", cfg.SSLMode)
	}
	if cfg.ConnMaxLifetimeDuration() != 15*time.Minute || cfg.ConnTimeoutDuration() != 5*time.Second {
		t.Errorf("durations = %v, %v", cfg.ConnMaxLifetimeDuration(), cfg.ConnTimeoutDuration())
	}
}

func TestConfig_Finalize_EnvOverrides(t *testing.T) {
	t.Setenv("TEST_DB_HOST", "db.internal")
	t.Setenv("TEST_DB_PORT", "6543")
	t.Setenv("TEST_DB_SSL", "require")

	cfg := validConfig()
	env := &database.Env{Host: "TEST_DB_HOST", Port: "TEST_DB_PORT", SSLMode: "TEST_DB_SSL"}
	if err := cfg.Finalize(env); err != nil {
		t.Fatalf("Finalize() failed: %v", err)
	}

	want := "host=db.internal port=6543 dbname=admin_shell user=admin_shell password=secret sslmode=require"
	if cfg.Dsn() != want {
		t.Errorf("Dsn() = %q, want %q", cfg.Dsn(), want)
	}
}

func TestConfig_Finalize_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  database.Config
	}{
		{"missing name", database.Config{User: "u"}},
		{"missing user", database.Config{Name: "n"}},
		{"bad lifetime", database.Config{Name: "n", User: "u", ConnMaxLifetime: "forever"}},
		{"bad ssl mode", database.Config{Name: "n", User: "u", SSLMode: "sometimes"}},
		{"idle over open", database.Config{Name: "n", User: "u", MaxOpenConns: 2, MaxIdleConns: 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Finalize(nil); err == nil {
				t.Error("Finalize() succeeded, want error")
			}
		})
	}
}

func TestConfig_Merge(t *testing.T) {
	base := validConfig()
	base.Finalize(nil)

	base.Merge(&database.Config{Host: "replica", SSLMode: "verify-full"})

	if base.Host != "replica" || base.SSLMode != "verify-full" {
		t.Errorf("merged = %s, %s", base.Host, base.SSLMode)
	}
	if base.Name != "admin_shell" || base.Port != 5432 {
		t.Errorf("unmerged fields changed: %s, %d", base.Name, base.Port)
	}
}

func TestNew_DoesNotConnect(t *testing.T) {
	cfg := validConfig()
	cfg.Finalize(nil)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	sys, err := database.New(cfg, logger)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	defer sys.Connection().Close()

	if sys.Connection() == nil {
		t.Error("Connection() returned nil")
	}
}

func TestErrNotReady(t *testing.T) {
	if database.ErrNotReady.Error() != "database not ready" {
		t.Errorf("ErrNotReady = %q", database.ErrNotReady)
	}
	if !errors.Is(errors.Join(database.ErrNotReady, errors.New("refused")), database.ErrNotReady) {
		t.Error("joined error does not match ErrNotReady")
	}
}

func TestParseDirection(t *testing.T) {
	for _, s := range []string{"up", "down"} {
		if d, err := database.ParseDirection(s); err != nil || string(d) != s {
			t.Errorf("ParseDirection(%q) = %q, %v", s, d, err)
		}
	}
	if _, err := database.ParseDirection("sideways"); err == nil {
		t.Error("ParseDirection(sideways) succeeded")
	}
}
