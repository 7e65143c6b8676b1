package game

import (
	"fmt"
	"sort"
)

// Coordinate addresses a single cell as (row, col).
type Coordinate struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// CoordSet is an unordered set of coordinates.
type CoordSet map[Coordinate]struct{}

func (s CoordSet) Add(c Coordinate) {
	s[c] = struct{}{}
}

func (s CoordSet) Has(c Coordinate) bool {
	_, ok := s[c]
	return ok
}

// Sorted returns the members in row-major order.
func (s CoordSet) Sorted() []Coordinate {
	out := make([]Coordinate, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}
