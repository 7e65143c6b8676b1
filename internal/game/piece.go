package game

import "fmt"

const (
	MinRank      = 1
	MaxRank      = 8
	RatRank      = 1
	TigerRank    = 6
	LionRank     = 7
	ElephantRank = 8
)

type PieceKind int

const (
	Standard PieceKind = iota
	Rat
	Tiger
	Lion
)

func (k PieceKind) String() string {
	switch k {
	case Rat:
		return "rat"
	case Tiger:
		return "tiger"
	case Lion:
		return "lion"
	default:
		return "standard"
	}
}

type capabilities struct {
	swim  bool
	leapH bool
	leapV bool
}

var kindCapabilities = map[PieceKind]capabilities{
	Standard: {},
	Rat:      {swim: true},
	Tiger:    {leapH: true},
	Lion:     {leapH: true, leapV: true},
}

// KindForRank maps a rank onto its piece variant.
func KindForRank(rank int) (PieceKind, error) {
	if rank < MinRank || rank > MaxRank {
		return Standard, fmt.Errorf("%w: %d", ErrInvalidRank, rank)
	}
	switch rank {
	case RatRank:
		return Rat, nil
	case TigerRank:
		return Tiger, nil
	case LionRank:
		return Lion, nil
	default:
		return Standard, nil
	}
}

// Piece holds the owner as a player number; the Game owns the players.
type Piece struct {
	Kind     PieceKind
	Owner    int
	Square   Square
	Rank     int
	Strength int
	Active   bool
}

func newPiece(owner int, sq Square, rank int) (*Piece, error) {
	kind, err := KindForRank(rank)
	if err != nil {
		return nil, err
	}
	p := &Piece{
		Kind:     kind,
		Owner:    owner,
		Square:   sq,
		Rank:     rank,
		Strength: rank,
		Active:   true,
	}
	p.checkTrap(sq)
	return p, nil
}

func (p *Piece) CanSwim() bool             { return kindCapabilities[p.Kind].swim }
func (p *Piece) CanLeapHorizontally() bool { return kindCapabilities[p.Kind].leapH }
func (p *Piece) CanLeapVertically() bool   { return kindCapabilities[p.Kind].leapV }

func (p *Piece) IsOwnedBy(player int) bool { return p.Owner == player }

func (p *Piece) IsTrapped() bool { return p.Strength == 0 }

// CanDefeat reports whether p may capture target. Rats beat elephants
// regardless of strength.
func (p *Piece) CanDefeat(target *Piece) bool {
	if target.Strength <= p.Strength {
		return true
	}
	return p.Kind == Rat && target.Rank == ElephantRank
}

func (p *Piece) Trap()   { p.Strength = 0 }
func (p *Piece) Untrap() { p.Strength = p.Rank }

// Move records the new square and applies its trap transition. It reports
// whether the piece entered a den that its owner does not own.
func (p *Piece) Move(to Square) (capturedDen bool) {
	from := p.Square
	p.Square = to

	p.checkTrap(to)
	if from.IsTrap() && !to.IsTrap() {
		p.Untrap()
	}
	return to.IsDen() && !to.IsOwnedBy(p.Owner)
}

// BeCaptured deactivates the piece. The caller decrements the owner's count
// and overwrites the grid cell.
func (p *Piece) BeCaptured() {
	p.Active = false
}

func (p *Piece) checkTrap(sq Square) {
	if sq.IsTrap() && !sq.IsOwnedBy(p.Owner) {
		p.Trap()
	}
}
