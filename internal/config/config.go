// Package config loads orbital's passive configuration: theme colors,
// cursor/icon image paths, and the optional legacy-keybinding script
// path. The wire protocol and window-manager policy are in scope per
// spec; the config file format itself is an external collaborator (§1)
// — only the loader is part of this repository.
package config

import (
	"image"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/viper"
	_ "golang.org/x/image/bmp"
	_ "image/png"

	"github.com/redox-os/orbital/internal/rimage"
)

// Config is the loaded, decoded configuration orbitald wires into the
// compositor and window manager at startup.
type Config struct {
	BackgroundColor rimage.Color
	TitleColor      rimage.Color
	BorderColor     rimage.Color

	CursorPath string
	IconPath   string
	ScriptPath string

	SocketPath string
	LogPath    string
	LogLevel   string

	FPSOverlay bool
}

// Load reads path (YAML/TOML/JSON per viper's auto-detection) merged
// with ORBITAL_-prefixed environment overrides.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetEnvPrefix("ORBITAL")
	v.AutomaticEnv()

	v.SetDefault("background_color", "#000000")
	v.SetDefault("title_color", "#404040")
	v.SetDefault("border_color", "#303030")
	v.SetDefault("socket_path", "/run/orbital.sock")
	v.SetDefault("log_path", "/var/log/orbital/orbital.log")
	v.SetDefault("log_level", "info")
	v.SetDefault("fps_overlay", false)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrap(err, "config: read config file")
	}

	bg, err := parseHexColor(v.GetString("background_color"))
	if err != nil {
		return nil, errors.Wrap(err, "config: background_color")
	}
	title, err := parseHexColor(v.GetString("title_color"))
	if err != nil {
		return nil, errors.Wrap(err, "config: title_color")
	}
	border, err := parseHexColor(v.GetString("border_color"))
	if err != nil {
		return nil, errors.Wrap(err, "config: border_color")
	}

	return &Config{
		BackgroundColor: bg,
		TitleColor:      title,
		BorderColor:     border,
		CursorPath:      v.GetString("cursor_path"),
		IconPath:        v.GetString("icon_path"),
		ScriptPath:      v.GetString("script_path"),
		SocketPath:      v.GetString("socket_path"),
		LogPath:         v.GetString("log_path"),
		LogLevel:        v.GetString("log_level"),
		FPSOverlay:      v.GetBool("fps_overlay"),
	}, nil
}

func parseHexColor(s string) (rimage.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return 0, errors.Errorf("expected #RRGGBB, got %q", s)
	}
	r, err := strconv.ParseUint(s[1:3], 16, 8)
	if err != nil {
		return 0, errors.Wrap(err, "config: parse red channel")
	}
	g, err := strconv.ParseUint(s[3:5], 16, 8)
	if err != nil {
		return 0, errors.Wrap(err, "config: parse green channel")
	}
	b, err := strconv.ParseUint(s[5:7], 16, 8)
	if err != nil {
		return 0, errors.Wrap(err, "config: parse blue channel")
	}
	return rimage.RGBA(uint8(r), uint8(g), uint8(b), 255), nil
}

// DecodeCursor loads and decodes the cursor image referenced by
// CursorPath via the standard image package (PNG) or golang.org/x/image
// (BMP), the boundary collaborator named in §1/§6.
func DecodeCursor(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "config: open cursor image")
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrap(err, "config: decode cursor image")
	}
	return img, nil
}
