package core

// Color is a semantic foreground color for a screen cell.
// The platform layer maps each value to a terminal style.
type Color uint8

const (
	ColorDefault Color = iota
	ColorDim           // grid floor, hints
	ColorText          // status and help text
	ColorAccent        // titles
	ColorWall
	ColorStart
	ColorFinish
	ColorVisited
	ColorFrontier // most recently visited cell
	ColorPath
	ColorCursor
	ColorError
)

// String returns the palette name used in config overrides.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "default"
	case ColorDim:
		return "dim"
	case ColorText:
		return "text"
	case ColorAccent:
		return "accent"
	case ColorWall:
		return "wall"
	case ColorStart:
		return "start"
	case ColorFinish:
		return "finish"
	case ColorVisited:
		return "visited"
	case ColorFrontier:
		return "frontier"
	case ColorPath:
		return "path"
	case ColorCursor:
		return "cursor"
	case ColorError:
		return "error"
	default:
		return "unknown"
	}
}
