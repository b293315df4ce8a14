package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"Sketchpad/internal/state"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"thickness five", func(c *Config) { c.PenThickness = 5 }, ""},
		{"thickness zero", func(c *Config) { c.PenThickness = 0 }, "PenThickness"},
		{"thickness six", func(c *Config) { c.PenThickness = 6 }, "PenThickness"},
		{"bad color", func(c *Config) { c.PenColor = "red" }, "PenColor"},
		{"no width", func(c *Config) { c.WindowWidth = 0 }, "window size"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.mutate(&c)
			err := c.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestInitWriteLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", configFile)
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if got := Load(path); got != Defaults() {
		t.Errorf("Load after Init = %+v", got)
	}

	conf := Defaults()
	conf.PenColor = "#ff0000"
	conf.PenThickness = 4
	conf.LastSaveDir = "/tmp/drawings"
	if err := Write(path, conf); err != nil {
		t.Fatalf("Write: %v", err)
	}
	// Init must not clobber an existing file.
	if err := Init(path); err != nil {
		t.Fatalf("Init: %v", err)
	}
	got := Load(path)
	if got != conf {
		t.Errorf("Load = %+v, want %+v", got, conf)
	}
	if pen := got.Pen(); pen != (state.DrawingState{Color: state.RGB{R: 255}, Thickness: 4}) {
		t.Errorf("Pen = %+v", pen)
	}
}

func TestLoadFallsBack(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"invalid.toml": "PenThickness = 9\n",
		"garbage.toml": "this is = = not toml",
		"missing.toml": "",
	}
	for name, body := range tests {
		path := filepath.Join(dir, name)
		if body != "" {
			if err := os.WriteFile(path, []byte(body), 0644); err != nil {
				t.Fatal(err)
			}
		}
		if got := Load(path); got != Defaults() {
			t.Errorf("%s: Load = %+v, want defaults", name, got)
		}
	}
}

func TestPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFile)
	if err := os.WriteFile(path, []byte("PenThickness = 3\n"), 0644); err != nil {
		t.Fatal(err)
	}
	got := Load(path)
	want := Defaults()
	want.PenThickness = 3
	if got != want {
		t.Errorf("Load = %+v, want %+v", got, want)
	}
}

func TestPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	if got, want := Path(), filepath.Join(dir, appDir, configFile); got != want {
		t.Errorf("Path = %s, want %s", got, want)
	}

	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", home)
	if got, want := Path(), filepath.Join(home, ".config", appDir, configFile); got != want {
		t.Errorf("Path = %s, want %s", got, want)
	}
}
