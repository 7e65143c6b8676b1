package game

const (
	moveRange = 1
	stepSize  = 1
)

type direction int

const (
	dirNone direction = iota
	dirUp
	dirDown
	dirLeft
	dirRight
)

// LegalMoves returns the destinations open to the piece at (row, col). The
// set is empty when the game is over, the cell is empty, or the piece's
// owner moved last.
func (g *Game) LegalMoves(row, col int) (CoordSet, error) {
	start := Coordinate{Row: row, Col: col}
	pc, err := g.pieces.Get(start)
	if err != nil {
		return nil, err
	}
	if g.gameOver || pc == nil || pc.Owner == g.lastMoved {
		return CoordSet{}, nil
	}

	candidates, err := g.pieces.Reachable(start, moveRange, stepSize)
	if err != nil {
		return nil, err
	}

	var leaps []Coordinate
	if pc.CanLeapHorizontally() {
		leaps = append(leaps, g.leaps(start, candidates, false)...)
	}
	if pc.CanLeapVertically() {
		leaps = append(leaps, g.leaps(start, candidates, true)...)
	}
	for _, l := range leaps {
		candidates.Add(l)
	}

	for c := range candidates {
		if g.isIllegalTarget(pc, c) {
			delete(candidates, c)
		}
	}
	return candidates, nil
}

func (g *Game) isIllegalTarget(pc *Piece, at Coordinate) bool {
	if target := g.pieces.cells[at.Row][at.Col]; target != nil {
		if target.Owner == pc.Owner {
			return true
		}
		if !pc.CanDefeat(target) {
			return true
		}
	}
	return g.board.cells[at.Row][at.Col].IsWater() && !pc.CanSwim()
}

// leaps adds one landing square for every empty water neighbour lying in
// the requested axis.
func (g *Game) leaps(start Coordinate, step CoordSet, vertical bool) []Coordinate {
	var out []Coordinate
	for c := range step {
		if !g.board.cells[c.Row][c.Col].IsWater() || g.pieces.cells[c.Row][c.Col] != nil {
			continue
		}
		dir := leapDirection(start, c, vertical)
		if dir == dirNone {
			continue
		}
		if landing, ok := g.leapLanding(start, dir); ok {
			out = append(out, landing)
		}
	}
	return out
}

func leapDirection(start, end Coordinate, vertical bool) direction {
	if vertical {
		switch end.Row {
		case start.Row + moveRange:
			return dirDown
		case start.Row - moveRange:
			return dirUp
		}
		return dirNone
	}
	switch end.Col {
	case start.Col - moveRange:
		return dirLeft
	case start.Col + moveRange:
		return dirRight
	}
	return dirNone
}

// leapLanding walks from start across consecutive water cells and steps one
// further, onto the first dry cell past the channel.
func (g *Game) leapLanding(start Coordinate, dir direction) (Coordinate, bool) {
	row, col := start.Row, start.Col
	water := func(r, c int) bool { return g.board.cells[r][c].IsWater() }

	switch dir {
	case dirUp:
		for row > 0 && water(row-1, col) {
			row--
		}
		row--
	case dirDown:
		for row < Height-1 && water(row+1, col) {
			row++
		}
		row++
	case dirLeft:
		for col > 0 && water(row, col-1) {
			col--
		}
		col--
	case dirRight:
		for col < Width-1 && water(row, col+1) {
			col++
		}
		col++
	}

	landing := Coordinate{Row: row, Col: col}
	return landing, g.board.InBounds(landing)
}
