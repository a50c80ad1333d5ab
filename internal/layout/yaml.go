package layout

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pathfinder/internal/grid"
)

// yamlLayout is the on-disk structure of a layout file.
type yamlLayout struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name,omitempty"`
	Map      []string          `yaml:"map,omitempty"`
	Size     *yamlSize         `yaml:"size,omitempty"`
	Start    *yamlPoint        `yaml:"start,omitempty"`
	Finish   *yamlPoint        `yaml:"finish,omitempty"`
	Walls    []yamlPoint       `yaml:"walls,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

type yamlSize struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

type yamlPoint struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

func (p yamlPoint) coord() grid.Coord {
	return grid.At(p.Row, p.Col)
}

// Parse decodes a YAML layout and checks it builds a valid grid.
func Parse(data []byte) (Layout, error) {
	var yl yamlLayout
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Layout{}, fmt.Errorf("%w: yaml unmarshal: %v", ErrInvalid, err)
	}
	if !ValidID(yl.ID) {
		return Layout{}, fmt.Errorf("%w: bad id %q", ErrInvalid, yl.ID)
	}

	l := Layout{
		ID:       yl.ID,
		Name:     yl.Name,
		Metadata: yl.Metadata,
	}

	var err error
	if len(yl.Map) > 0 {
		err = parseMap(&l, yl.Map)
	} else {
		err = parseExplicit(&l, yl)
	}
	if err != nil {
		return Layout{}, err
	}

	if _, err := l.ToGrid(); err != nil {
		return Layout{}, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return l, nil
}

// parseMap reads the ASCII map form.
func parseMap(l *Layout, rows []string) error {
	l.Rows = len(rows)
	l.Cols = len([]rune(rows[0]))

	starts, finishes := 0, 0
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != l.Cols {
			return fmt.Errorf("%w: map row %d has %d cells, expected %d", ErrInvalid, r, len(runes), l.Cols)
		}
		for c, ch := range runes {
			here := grid.At(r, c)
			switch ch {
			case '.':
			case '#':
				l.Walls = append(l.Walls, here)
			case 'S', 's':
				l.Start = here
				starts++
			case 'F', 'f':
				l.Finish = here
				finishes++
			case '*', '%':
				l.Start, l.Finish = here, here
				starts++
				finishes++
			default:
				return fmt.Errorf("%w: unknown map glyph %q at %s", ErrInvalid, ch, here)
			}
			if ch == 's' || ch == 'f' || ch == '%' {
				l.Walls = append(l.Walls, here)
			}
		}
	}

	if starts != 1 || finishes != 1 {
		return fmt.Errorf("%w: map needs exactly one start and one finish, found %d and %d", ErrInvalid, starts, finishes)
	}
	return nil
}

// parseExplicit reads the size/start/finish/walls form.
func parseExplicit(l *Layout, yl yamlLayout) error {
	if yl.Size == nil || yl.Start == nil || yl.Finish == nil {
		return fmt.Errorf("%w: need either map or size, start and finish", ErrInvalid)
	}
	l.Rows = yl.Size.Rows
	l.Cols = yl.Size.Cols
	l.Start = yl.Start.coord()
	l.Finish = yl.Finish.coord()
	for _, w := range yl.Walls {
		l.Walls = append(l.Walls, w.coord())
	}
	return nil
}

// Encode writes a grid as a layout file in map form.
func Encode(id, name string, g *grid.Grid) ([]byte, error) {
	return encodeGrid(id, name, nil, g)
}

// EncodeLayout writes a parsed layout in map form, keeping its metadata.
func EncodeLayout(l Layout) ([]byte, error) {
	g, err := l.ToGrid()
	if err != nil {
		return nil, err
	}
	return encodeGrid(l.ID, l.Name, l.Metadata, g)
}

func encodeGrid(id, name string, metadata map[string]string, g *grid.Grid) ([]byte, error) {
	if g == nil {
		return nil, fmt.Errorf("%w: nil grid", ErrInvalid)
	}
	yl := yamlLayout{
		ID:       id,
		Name:     name,
		Map:      strings.Split(g.String(), "\n"),
		Metadata: metadata,
	}
	data, err := yaml.Marshal(yl)
	if err != nil {
		return nil, fmt.Errorf("layout: encode %q: %w", id, err)
	}
	return data, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
