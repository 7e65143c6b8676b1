package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"jungle/internal/game"
	"jungle/internal/logger"
)

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"))
	defer log.Sync()

	g := game.NewGame("North", "South")
	if err := g.AddStartingPieces(); err != nil {
		log.Fatalw("failed to deal starting pieces", "error", err)
	}

	reader := bufio.NewReader(os.Stdin)
	for !g.IsGameOver() {
		player, _ := g.GetPlayer(g.Turn())
		fmt.Printf("\nTurn: %s (player %d, %d pieces)\n", player.Name, player.Number, player.PieceCount)
		printBoard(g)

		fmt.Println("Enter a move: fromRow fromCol toRow toCol (e.g. 2 0 3 0), or: moves row col")
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println("\nInput closed.")
			return
		}
		parts := strings.Fields(line)
		nums, ok := atoiAll(parts)

		switch {
		case len(parts) == 3 && parts[0] == "moves":
			nums, ok = atoiAll(parts[1:])
			if !ok {
				fmt.Println("Bad format. Try again.")
				continue
			}
			moves, err := g.LegalMoves(nums[0], nums[1])
			if err != nil {
				fmt.Println("Invalid square:", err)
				continue
			}
			fmt.Println("Legal moves:", moves.Sorted())
		case len(parts) == 4 && ok:
			if err := g.Move(nums[0], nums[1], nums[2], nums[3]); err != nil {
				fmt.Println("Invalid move:", err)
				log.Debugw("move rejected", "player", player.Number, "input", parts, "error", err)
			}
		default:
			fmt.Println("Bad format. Try again.")
		}
	}

	fmt.Printf("\nGame over! Winner: %s\n", g.Winner().Name)
	printBoard(g)
	js, _ := json.MarshalIndent(g.Snapshot(), "", "  ")
	fmt.Println(string(js))
}

func atoiAll(parts []string) ([]int, bool) {
	out := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, false
		}
		out[i] = n
	}
	return out, true
}

// printBoard draws pieces as rank plus owner letter (a for player 0, b for
// player 1); empty water is "~~", traps "##" and dens "[]".
func printBoard(g *game.Game) {
	fmt.Print("   ")
	for c := 0; c < game.Width; c++ {
		fmt.Printf("%d  ", c)
	}
	fmt.Println()
	for r := 0; r < game.Height; r++ {
		fmt.Printf("%d  ", r)
		for c := 0; c < game.Width; c++ {
			fmt.Print(cellGlyph(g, r, c), " ")
		}
		fmt.Println()
	}
}

func cellGlyph(g *game.Game, r, c int) string {
	if p, _ := g.GetPiece(r, c); p != nil {
		return fmt.Sprintf("%d%c", p.Rank, 'a'+rune(p.Owner))
	}
	sq, _ := g.GetSquare(r, c)
	switch sq.Kind {
	case game.Water:
		return "~~"
	case game.Trap:
		return "##"
	case game.Den:
		return "[]"
	default:
		return ". "
	}
}
