package config

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"Sketchpad/internal/state"

	"github.com/BurntSushi/toml"
)

const (
	appDir     = "sketchpad"
	configFile = "config.toml"

	MinThickness = 1
	MaxThickness = 5
)

type Config struct {
	PenColor     string
	PenThickness int
	WindowWidth  float32
	WindowHeight float32
	LastSaveDir  string
}

func Defaults() Config {
	return Config{
		PenColor:     state.Black.Hex(),
		PenThickness: 2,
		WindowWidth:  800,
		WindowHeight: 600,
	}
}

// Validate checks the pen settings and window size.
func (c Config) Validate() error {
	if _, err := state.ParseHex(c.PenColor); err != nil {
		return fmt.Errorf("PenColor: %w", err)
	}
	if c.PenThickness < MinThickness || c.PenThickness > MaxThickness {
		return fmt.Errorf("PenThickness %d out of range %d-%d", c.PenThickness, MinThickness, MaxThickness)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size %gx%g must be positive", c.WindowWidth, c.WindowHeight)
	}
	return nil
}

// Pen returns the drawing state the config describes. Validate first.
func (c Config) Pen() state.DrawingState {
	col, err := state.ParseHex(c.PenColor)
	if err != nil {
		col = state.Black
	}
	return state.DrawingState{Color: col, Thickness: c.PenThickness}
}

// Path is the default config file location.
func Path() string {
	return filepath.Join(xdgOrFallback("XDG_CONFIG_HOME", filepath.Join(os.Getenv("HOME"), ".config")), appDir, configFile)
}

// Init writes the defaults to path if no file exists there yet.
func Init(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("check config %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	log.Println("[CONFIG] Initializing config at", path)
	return Write(path, Defaults())
}

// Read decodes path without validating it. Keys missing from the file keep
// their default values.
func Read(path string) (Config, error) {
	conf := Defaults()
	if _, err := toml.DecodeFile(path, &conf); err != nil {
		return Defaults(), fmt.Errorf("read config %s: %w", path, err)
	}
	return conf, nil
}

// Load reads and validates path, falling back to defaults on any problem.
func Load(path string) Config {
	conf, err := Read(path)
	if err == nil {
		err = conf.Validate()
	}
	if err != nil {
		log.Printf("[CONFIG] %v, using defaults", err)
		return Defaults()
	}
	return conf
}

func Write(path string, conf Config) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(conf); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

func xdgOrFallback(xdg string, fallback string) string {
	dir := os.Getenv(xdg)
	if dir != "" {
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir
		}
	}
	log.Printf("[CONFIG] Couldn't resolve $%s falling back to '%s'", xdg, fallback)
	return fallback
}
