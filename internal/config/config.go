// Package config provides YAML-based configuration loading and playback
// speed presets for the pathfinder.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
	"github.com/vovakirdan/tui-pathfinder/internal/pathfind"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the complete pathfinder configuration.
type Config struct {
	Grid      GridConfig      `yaml:"grid"`
	Search    SearchConfig    `yaml:"search"`
	Animation AnimationConfig `yaml:"animation"`
	Splash    SplashConfig    `yaml:"splash"`
	UI        UIConfig        `yaml:"ui"`
	Storage   StorageConfig   `yaml:"storage"`
	Server    ServerConfig    `yaml:"server"`
}

// Point is a row/col pair as written in YAML.
type Point struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Coord converts the point to a grid coordinate.
func (p Point) Coord() grid.Coord {
	return grid.At(p.Row, p.Col)
}

// GridConfig defines the initial grid shown by the visualizer.
type GridConfig struct {
	Rows   int   `yaml:"rows"`
	Cols   int   `yaml:"cols"`
	Start  Point `yaml:"start"`
	Finish Point `yaml:"finish"`
}

// SearchConfig selects the engine policies.
type SearchConfig struct {
	Connectivity  string `yaml:"connectivity"`   // "4" or "8"
	BlockedFinish string `yaml:"blocked_finish"` // "walls" or "ignore"
}

// AnimationConfig controls replay pacing.
type AnimationConfig struct {
	Speed         SpeedPreset   `yaml:"speed"`
	VisitInterval time.Duration `yaml:"visit_interval"`
	PathInterval  time.Duration `yaml:"path_interval"`
}

// SplashConfig defines the welcome message.
type SplashConfig struct {
	Enabled  bool          `yaml:"enabled"`
	Duration time.Duration `yaml:"duration"`
	Title    string        `yaml:"title"`
	Subtitle string        `yaml:"subtitle"`
}

// UIConfig holds terminal UI settings.
type UIConfig struct {
	FPS      int  `yaml:"fps"`
	ShowHelp bool `yaml:"show_help"`
}

// StorageConfig locates persistent data.
type StorageConfig struct {
	DBPath     string `yaml:"db_path"`
	LayoutsDir string `yaml:"layouts_dir"`
}

// ServerConfig holds SSH server settings.
type ServerConfig struct {
	Address     string        `yaml:"address"`
	HostKeyPath string        `yaml:"host_key_path"`
	IdleTimeout time.Duration `yaml:"idle_timeout"`
}

// Validate checks the configuration for values the UI cannot work with.
func (c Config) Validate() error {
	g := c.Grid
	if g.Rows <= 0 || g.Cols <= 0 {
		return fmt.Errorf("%w: grid size %dx%d must be positive", ErrInvalid, g.Rows, g.Cols)
	}
	if g.Rows > MaxGridSide || g.Cols > MaxGridSide {
		return fmt.Errorf("%w: grid size %dx%d exceeds %d", ErrInvalid, g.Rows, g.Cols, MaxGridSide)
	}
	if _, err := c.BuildGrid(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := c.SearchOptions(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if _, err := ParseSpeedPreset(string(c.Animation.Speed)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if c.Animation.VisitInterval < 0 || c.Animation.PathInterval < 0 {
		return fmt.Errorf("%w: animation intervals must not be negative", ErrInvalid)
	}
	if c.Splash.Duration < 0 {
		return fmt.Errorf("%w: splash duration must not be negative", ErrInvalid)
	}
	if c.UI.FPS <= 0 {
		return fmt.Errorf("%w: ui fps %d must be positive", ErrInvalid, c.UI.FPS)
	}
	return nil
}

// MaxGridSide bounds rows and cols so a grid always fits a sane terminal.
const MaxGridSide = 200

// BuildGrid builds an empty grid from the grid section.
func (c Config) BuildGrid() (*grid.Grid, error) {
	return grid.Build(c.Grid.Rows, c.Grid.Cols, c.Grid.Start.Coord(), c.Grid.Finish.Coord())
}

// SearchOptions parses the search section into engine options.
func (c Config) SearchOptions() (pathfind.Options, error) {
	conn, err := pathfind.ParseConnectivity(c.Search.Connectivity)
	if err != nil {
		return pathfind.Options{}, err
	}
	finish, err := pathfind.ParseFinishPolicy(c.Search.BlockedFinish)
	if err != nil {
		return pathfind.Options{}, err
	}
	return pathfind.Options{Conn: conn, Finish: finish}, nil
}

// Intervals returns the effective replay intervals after the speed preset.
func (c Config) Intervals() (visit, path time.Duration) {
	return ScaleInterval(c.Animation.VisitInterval, c.Animation.Speed),
		ScaleInterval(c.Animation.PathInterval, c.Animation.Speed)
}
