package game

import "fmt"

// Grid is a fixed height x width container. The zero value of T marks an
// empty cell.
type Grid[T any] struct {
	height int
	width  int
	cells  [][]T
}

func NewGrid[T any](height, width int) *Grid[T] {
	c := make([][]T, height)
	for i := range c {
		c[i] = make([]T, width)
	}
	return &Grid[T]{height: height, width: width, cells: c}
}

func (g *Grid[T]) Height() int { return g.height }
func (g *Grid[T]) Width() int  { return g.width }

func (g *Grid[T]) InBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

func (g *Grid[T]) checkBounds(c Coordinate) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s outside %dx%d", ErrOutOfBounds, c, g.height, g.width)
	}
	return nil
}

func (g *Grid[T]) Get(c Coordinate) (T, error) {
	if err := g.checkBounds(c); err != nil {
		var zero T
		return zero, err
	}
	return g.cells[c.Row][c.Col], nil
}

// Set overwrites the cell unconditionally.
func (g *Grid[T]) Set(c Coordinate, v T) error {
	if err := g.checkBounds(c); err != nil {
		return err
	}
	g.cells[c.Row][c.Col] = v
	return nil
}

// BulkSet assigns a freshly built value to every cell of rows x cols.
func (g *Grid[T]) BulkSet(rows, cols []int, factory func() T) error {
	for _, r := range rows {
		for _, c := range cols {
			if err := g.Set(Coordinate{Row: r, Col: c}, factory()); err != nil {
				return err
			}
		}
	}
	return nil
}

// Reachable runs a breadth-first search from origin over the four
// axis-aligned neighbours at distance stepSize. Each round spends stepSize
// from budget. The origin itself is never part of the result.
func (g *Grid[T]) Reachable(origin Coordinate, budget, stepSize int) (CoordSet, error) {
	if err := g.checkBounds(origin); err != nil {
		return nil, err
	}
	out := CoordSet{}
	if stepSize <= 0 {
		return out, nil
	}

	visited := CoordSet{origin: {}}
	frontier := []Coordinate{origin}
	for budget > 0 && len(frontier) > 0 {
		var next []Coordinate
		for _, node := range frontier {
			for _, d := range axisOffsets {
				n := Coordinate{Row: node.Row + d.dr*stepSize, Col: node.Col + d.dc*stepSize}
				if !g.InBounds(n) || visited.Has(n) {
					continue
				}
				visited.Add(n)
				out.Add(n)
				next = append(next, n)
			}
		}
		frontier = next
		budget -= stepSize
	}
	return out, nil
}

var axisOffsets = []struct{ dr, dc int }{
	{-1, 0}, // up
	{1, 0},  // down
	{0, -1}, // left
	{0, 1},  // right
}

func sequence(start, end int) []int {
	out := make([]int, 0, end-start)
	for i := start; i < end; i++ {
		out = append(out, i)
	}
	return out
}
