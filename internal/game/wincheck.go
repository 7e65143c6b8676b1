package game

// checkVictory runs after every placement and move. Elimination is tested
// before den capture. A game marked over with neither condition holding
// goes back to in-progress.
func (g *Game) checkVictory() {
	var alive, dens []*Player
	for _, p := range g.players {
		if p.HasPieces() {
			alive = append(alive, p)
		}
		if p.DenCaptured {
			dens = append(dens, p)
		}
	}

	switch {
	case len(alive) == 1:
		g.setWinner(alive[0])
	case len(dens) == 1:
		g.setWinner(dens[0])
	case g.gameOver:
		g.restart()
	}
}

func (g *Game) setWinner(p *Player) {
	g.gameOver = true
	g.winner = p
}

func (g *Game) restart() {
	g.gameOver = false
	g.winner = nil
}
