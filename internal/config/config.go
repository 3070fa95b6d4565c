package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// PositionPolicy controls how files without a known position are passed
// to the client.
type PositionPolicy string

const (
	// PositionPreserve emits no position token, letting the client restore
	// its saved cursor.
	PositionPreserve PositionPolicy = "preserve"
	// PositionAlways defaults line and column to 1 and always emits +L:C.
	PositionAlways PositionPolicy = "always"
)

type ClientOptions struct {
	Command         string         `toml:"command"`
	WindowedCommand string         `toml:"windowed-command"`
	NoWaitFlag      string         `toml:"no-wait-flag"`
	Shell           string         `toml:"shell"`
	Position        PositionPolicy `toml:"position"`
}

type LogOptions struct {
	Debug    bool   `toml:"debug"`
	File     string `toml:"file"`
	EchoArgs bool   `toml:"echo-args"`
}

type Config struct {
	Client ClientOptions `toml:"client"`
	Log    LogOptions    `toml:"log"`
}

func Default() Config {
	return Config{
		Client: ClientOptions{
			Command:         "emacsclient",
			WindowedCommand: "emacsclientw",
			NoWaitFlag:      "-n",
			Shell:           "sh",
			Position:        PositionPreserve,
		},
	}
}

// Load reads config.toml from ConfigDir and merges it over Default.
// A missing file, or no resolvable config directory, is not an error.
func Load() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}

	var userCfg Config
	if _, err := toml.Decode(string(data), &userCfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}

	if userCfg.Client.Command != "" {
		cfg.Client.Command = userCfg.Client.Command
	}
	if userCfg.Client.WindowedCommand != "" {
		cfg.Client.WindowedCommand = userCfg.Client.WindowedCommand
	}
	if userCfg.Client.NoWaitFlag != "" {
		cfg.Client.NoWaitFlag = userCfg.Client.NoWaitFlag
	}
	if userCfg.Client.Shell != "" {
		cfg.Client.Shell = userCfg.Client.Shell
	}
	if userCfg.Client.Position != "" {
		cfg.Client.Position = userCfg.Client.Position
	}
	if userCfg.Log.Debug {
		cfg.Log.Debug = true
	}
	if userCfg.Log.File != "" {
		cfg.Log.File = userCfg.Log.File
	}
	if userCfg.Log.EchoArgs {
		cfg.Log.EchoArgs = true
	}

	switch cfg.Client.Position {
	case PositionPreserve, PositionAlways:
	default:
		return cfg, fmt.Errorf("%s: client.position must be %q or %q, got %q",
			path, PositionPreserve, PositionAlways, cfg.Client.Position)
	}
	return cfg, nil
}

func ConfigDir() (string, error) {
	if v := os.Getenv("EMACSIDE_CONFIG_HOME"); v != "" {
		return filepath.Join(v), nil
	}
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "emacside"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "emacside"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}
