package game

// Game orchestrates a piece grid over a terrain board for two players.
// A Game is not safe for concurrent use.
type Game struct {
	players   [NumPlayers]*Player
	board     *TerrainBoard
	pieces    *Grid[*Piece]
	lastMoved int
	gameOver  bool
	winner    *Player
}

// PlacedPiece pairs a piece with the cell it occupies.
type PlacedPiece struct {
	At    Coordinate
	Piece *Piece
}

type startingPiece struct {
	row, col, rank, player int
}

var startingLayout = []startingPiece{
	{0, 0, 7, 0},
	{0, 6, 6, 0},
	{1, 5, 2, 0},
	{1, 1, 3, 0},
	{2, 0, 1, 0},
	{2, 4, 4, 0},
	{2, 2, 5, 0},
	{2, 6, 8, 0},

	{8, 6, 7, 1},
	{8, 0, 6, 1},
	{7, 5, 3, 1},
	{7, 1, 2, 1},
	{6, 6, 8, 1},
	{6, 2, 5, 1},
	{6, 4, 4, 1},
	{6, 0, 1, 1},
}
