// # internal/config/config.go
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Discovery Discovery `toml:"discovery"`
	Watch     Watch     `toml:"watch"`
	Output    Output    `toml:"output"`
	Metrics   Metrics   `toml:"metrics"`
}

type Discovery struct {
	// Roots are scanned in order; later roots win filename collisions.
	Roots       []string `toml:"roots"`
	IncludeDirs []string `toml:"include_dirs"`
	ExcludeDirs []string `toml:"exclude_dirs"`

	// GuestSubtrees under GuestRoot are never descended into; everything
	// else under GuestRoot is kept only if listed in GuestAllow.
	GuestRoot     string   `toml:"guest_root"`
	GuestSubtrees []string `toml:"guest_subtrees"`
	GuestAllow    []string `toml:"guest_allow"`

	// AppDir's syscall stub is assembled separately and never analyzed.
	AppDir       string   `toml:"app_dir"`
	AppStub      string   `toml:"app_stub"`
	SystemPrefix []string `toml:"system_prefixes"`
}

type Watch struct {
	Debounce time.Duration `toml:"debounce"`
	// RescansPerSecond caps full re-analysis frequency in watch mode.
	RescansPerSecond float64 `toml:"rescans_per_second"`
	RescanBurst      int     `toml:"rescan_burst"`
}

type Output struct {
	DOT string `toml:"dot"`
	TSV string `toml:"tsv"`
}

type Metrics struct {
	Addr string `toml:"addr"`
}

// Default returns the conventional layout of the analyzed tree.
func Default() *Config {
	return &Config{
		Discovery: Discovery{
			Roots: []string{
				".", "boot", "exception", "io", "mem", "timer", "task",
				"process", "spinlock", "vmm", "lib", "fs", "syscall", "guest",
			},
			IncludeDirs:   []string{"include", "guest"},
			ExcludeDirs:   []string{"clib", "build", ".git"},
			GuestRoot:     "guest",
			GuestSubtrees: []string{"linux", "nimbos", "testos"},
			GuestAllow:    []string{"test_guest.S", "guest_manifests.c", "guest_manifest.h"},
			AppDir:        "app",
			AppStub:       "syscall.S",
			SystemPrefix:  []string{"sys/", "linux/", "asm/"},
		},
		Watch: Watch{
			Debounce:         500 * time.Millisecond,
			RescansPerSecond: 1,
			RescanBurst:      2,
		},
	}
}

// Load reads a TOML file over the defaults. Fields left unset in the
// file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return nil, err
	}

	if cfg.Watch.Debounce == 0 {
		cfg.Watch.Debounce = 500 * time.Millisecond
	}
	if cfg.Watch.RescansPerSecond <= 0 {
		cfg.Watch.RescansPerSecond = 1
	}
	if cfg.Watch.RescanBurst <= 0 {
		cfg.Watch.RescanBurst = 2
	}
	if len(cfg.Discovery.Roots) == 0 {
		cfg.Discovery.Roots = Default().Discovery.Roots
	}

	return cfg, nil
}
