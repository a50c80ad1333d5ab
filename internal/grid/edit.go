package grid

// ToggleWall returns a copy of the grid with the blocked flag of (row, col)
// flipped. Toggling the start or finish cell only changes its blocked flag.
func (g *Grid) ToggleWall(row, col int) (*Grid, error) {
	c := Coord{Row: row, Col: col}
	if !g.InBounds(c) {
		return nil, g.outOfBounds("cell", c)
	}

	next := g.Clone()
	idx := next.Index(c)
	next.cells[idx].IsBlocked = !next.cells[idx].IsBlocked
	return next, nil
}

// SetWall returns a copy of the grid with (row, col) set to the given blocked state.
// Used by drag painting, where every entered cell takes the state of the first one.
func (g *Grid) SetWall(row, col int, blocked bool) (*Grid, error) {
	c := Coord{Row: row, Col: col}
	if !g.InBounds(c) {
		return nil, g.outOfBounds("cell", c)
	}
	if g.cells[g.Index(c)].IsBlocked == blocked {
		return g, nil
	}
	return g.ToggleWall(row, col)
}

// RelocateStart moves the start role to (row, col).
// Returns the receiver unchanged if the start is already there.
func (g *Grid) RelocateStart(row, col int) (*Grid, error) {
	c := Coord{Row: row, Col: col}
	if !g.InBounds(c) {
		return nil, g.outOfBounds("start", c)
	}
	if c == g.start {
		return g, nil
	}

	next := g.Clone()
	next.cells[next.Index(next.start)].IsStart = false
	next.cells[next.Index(c)].IsStart = true
	next.start = c
	return next, nil
}

// RelocateFinish moves the finish role to (row, col).
// Returns the receiver unchanged if the finish is already there.
func (g *Grid) RelocateFinish(row, col int) (*Grid, error) {
	c := Coord{Row: row, Col: col}
	if !g.InBounds(c) {
		return nil, g.outOfBounds("finish", c)
	}
	if c == g.finish {
		return g, nil
	}

	next := g.Clone()
	next.cells[next.Index(next.finish)].IsFinish = false
	next.cells[next.Index(c)].IsFinish = true
	next.finish = c
	return next, nil
}

// WithWalls returns a copy of the grid with every listed cell blocked.
// Either all coordinates are applied or, if any is out of bounds, none is.
func (g *Grid) WithWalls(walls []Coord) (*Grid, error) {
	for _, c := range walls {
		if !g.InBounds(c) {
			return nil, g.outOfBounds("wall", c)
		}
	}

	next := g.Clone()
	for _, c := range walls {
		next.cells[next.Index(c)].IsBlocked = true
	}
	return next, nil
}

// ClearWalls returns a copy of the grid with no blocked cells.
func (g *Grid) ClearWalls() *Grid {
	next := g.Clone()
	for i := range next.cells {
		next.cells[i].IsBlocked = false
	}
	return next
}

// ResetTraversal clears the traversal state of every cell in place.
// Only the path engine calls this, and only on its private clone.
func (g *Grid) ResetTraversal() {
	for i := range g.cells {
		g.cells[i].ResetTraversal()
	}
}

// Update applies fn to the cell at idx in place.
// Like ResetTraversal it is meant for a clone owned by the caller.
func (g *Grid) Update(idx int, fn func(c *Cell)) {
	fn(&g.cells[idx])
}
