package game

const (
	Height     = 9
	Width      = 7
	NumPlayers = 2
	NoOwner    = -1

	denCol     = 3
	trapMargin = 1
)

var (
	waterRows = []int{3, 4, 5}
	waterCols = []int{1, 2, 4, 5}
)

type TerrainKind int

const (
	Plain TerrainKind = iota
	Water
	Trap
	Den
)

func (k TerrainKind) String() string {
	switch k {
	case Plain:
		return "plain"
	case Water:
		return "water"
	case Trap:
		return "trap"
	case Den:
		return "den"
	default:
		return "unknown"
	}
}

// Square is one terrain cell. Owner is the player number for traps and dens
// and NoOwner for plain and water.
type Square struct {
	Kind  TerrainKind `json:"kind"`
	Owner int         `json:"owner"`
}

func plainSquare() Square { return Square{Kind: Plain, Owner: NoOwner} }
func waterSquare() Square { return Square{Kind: Water, Owner: NoOwner} }

func (s Square) IsWater() bool { return s.Kind == Water }
func (s Square) IsTrap() bool  { return s.Kind == Trap }
func (s Square) IsDen() bool   { return s.Kind == Den }

func (s Square) IsOwnedBy(player int) bool {
	return s.Owner != NoOwner && s.Owner == player
}

// TerrainBoard is the immutable square layout of a game.
type TerrainBoard struct {
	*Grid[Square]
}

func NewTerrainBoard() *TerrainBoard {
	b := &TerrainBoard{Grid: NewGrid[Square](Height, Width)}
	// Layout constants are in range, so none of the setters below can fail.
	_ = b.BulkSet(sequence(0, Height), sequence(0, Width), plainSquare)
	_ = b.BulkSet(waterRows, waterCols, waterSquare)
	for p := 0; p < NumPlayers; p++ {
		b.addTrapsAndDen(p)
	}
	return b
}

// DenRow is the home row of the given player's den.
func DenRow(player int) int {
	if player == 0 {
		return 0
	}
	return Height - 1
}

func (b *TerrainBoard) addTrapsAndDen(player int) {
	denRow := DenRow(player)
	trapRow := denRow + trapMargin
	if player != 0 {
		trapRow = denRow - trapMargin
	}
	left, right := denCol-trapMargin, denCol+trapMargin

	_ = b.BulkSet([]int{trapRow}, sequence(left, right+1), func() Square {
		return Square{Kind: Trap, Owner: player}
	})
	_ = b.Set(Coordinate{Row: denRow, Col: denCol}, Square{Kind: Den, Owner: player})
	_ = b.Set(Coordinate{Row: trapRow, Col: left}, plainSquare())
	_ = b.Set(Coordinate{Row: trapRow, Col: right}, plainSquare())
}

// DenOf returns the den coordinate of a player.
func DenOf(player int) Coordinate {
	return Coordinate{Row: DenRow(player), Col: denCol}
}
