package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/pathfinder.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows:   18,
			Cols:   36,
			Start:  Point{Row: 4, Col: 8},
			Finish: Point{Row: 14, Col: 21},
		},
		Search: SearchConfig{
			Connectivity:  "4",
			BlockedFinish: "walls",
		},
		Animation: AnimationConfig{
			Speed:         SpeedNormal,
			VisitInterval: 10 * time.Millisecond,
			PathInterval:  50 * time.Millisecond,
		},
		Splash: SplashConfig{
			Enabled:  true,
			Duration: 2 * time.Second,
			Title:    "Welcome to Pathfinder",
			Subtitle: "Paint walls, place the start and finish, then watch Dijkstra find the way.",
		},
		UI: UIConfig{
			FPS:      60,
			ShowHelp: true,
		},
		Storage: StorageConfig{
			DBPath:     "~/.pathfinder/pathfinder.db",
			LayoutsDir: "~/.pathfinder/layouts",
		},
		Server: ServerConfig{
			Address:     ":23235",
			IdleTimeout: 30 * time.Minute,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
