package config

import (
	"flag"
	"fmt"
	"strings"
)

// Flags are command line overrides. Zero values leave the config untouched.
type Flags struct {
	ConfigPath string
	ImageDir   string
	Package    string
	Width      int
	Height     int
	FPS        int
	Background string
	LogLevel   string
	Debug      bool
	Verbose    bool
	NoParallax bool
	NoFloating bool
	Images     []string
}

// ParseFlags parses args (without the program name) into Flags.
func ParseFlags(name string, args []string) (Flags, error) {
	var f Flags
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&f.ConfigPath, "config", "", "Path to a JSON config file")
	fs.StringVar(&f.ImageDir, "dir", "", "Directory to load carousel images from")
	fs.StringVar(&f.Package, "pkg", "", "Wallpaper Engine scene.pkg to take images from")
	fs.IntVar(&f.Width, "width", 0, "Window width")
	fs.IntVar(&f.Height, "height", 0, "Window height")
	fs.IntVar(&f.FPS, "fps", -1, "Target FPS (0 = unlimited)")
	fs.StringVar(&f.Background, "bg", "", "Background color (any CSS color)")
	fs.StringVar(&f.LogLevel, "log", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&f.Debug, "debug", false, "Enable verbose debug logging")
	fs.BoolVar(&f.Verbose, "verbose", false, "Show raylib info logs")
	fs.BoolVar(&f.NoParallax, "no-parallax", false, "Start with parallax disabled")
	fs.BoolVar(&f.NoFloating, "no-floating", false, "Start with floating disabled")

	if err := fs.Parse(args); err != nil {
		return f, fmt.Errorf("config: %w", err)
	}
	f.Images = fs.Args()
	return f, nil
}

// Resolve applies flags over the loaded config.
func (c *Config) Resolve(f Flags) {
	if f.ImageDir != "" {
		c.ImageDir = f.ImageDir
		c.Images = nil
	}
	if f.Package != "" {
		c.Package = f.Package
	}
	if len(f.Images) > 0 {
		c.Images = make([]ImageEntry, len(f.Images))
		for i, p := range f.Images {
			c.Images[i] = ImageEntry{Path: p}
		}
	}
	if f.Width > 0 {
		c.Window.Width = f.Width
	}
	if f.Height > 0 {
		c.Window.Height = f.Height
	}
	if f.FPS >= 0 {
		c.Window.FPS = f.FPS
	}
	if f.Background != "" {
		c.Window.Background = f.Background
	}
	if f.LogLevel != "" {
		c.LogLevel = strings.ToLower(f.LogLevel)
	}
	if f.Debug {
		c.LogLevel = "debug"
	}
	if f.NoParallax {
		c.Carousel.EnableParallax = false
	}
	if f.NoFloating {
		c.Carousel.EnableFloating = false
	}
	c.Normalize()
}
