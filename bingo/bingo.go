// Package bingo plays squid bingo: numbers are drawn in order and a board
// wins once every number in one of its rows or columns has been drawn.
// Diagonals do not count.
package bingo

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2021/parse"
)

// Size is the side length of a board.
const Size = 5

var (
	// ErrNoDraws is returned when the input has no draw line.
	ErrNoDraws = errors.New("bingo: no draws")
	// ErrBoardSize is returned when a board does not hold Size×Size numbers.
	ErrBoardSize = errors.New("bingo: board must hold 25 numbers")
)

// Board is a 5×5 bingo card in row-major order.
type Board [Size * Size]int

// Game is the draw order together with every board in play.
type Game struct {
	Draws  []int
	Boards []Board
}

// Win describes a completed board.
type Win struct {
	Board int // index into Game.Boards
	Draw  int // the number that completed it
	Score int // Draw × sum of unmarked numbers
}

// ParseGame reads a comma separated draw line followed by blank-line
// separated boards.
func ParseGame(s string) (Game, error) {
	blocks := parse.Blocks(s)
	if len(blocks) == 0 {
		return Game{}, ErrNoDraws
	}
	draws, err := parse.Numbers[int](blocks[0], ",")
	if err != nil {
		return Game{}, fmt.Errorf("bingo: draws: %w", err)
	}
	if len(draws) == 0 {
		return Game{}, ErrNoDraws
	}

	g := Game{Draws: draws, Boards: make([]Board, 0, len(blocks)-1)}
	for i, block := range blocks[1:] {
		nums, err := parse.Numbers[int](block, "")
		if err != nil {
			return Game{}, fmt.Errorf("bingo: board %d: %w", i, err)
		}
		if len(nums) != Size*Size {
			return Game{}, fmt.Errorf("%w: board %d has %d", ErrBoardSize, i, len(nums))
		}
		var b Board
		copy(b[:], nums)
		g.Boards = append(g.Boards, b)
	}

	return g, nil
}

// card tracks the marks on one board.
type card struct {
	board  *Board
	marked [Size * Size]bool
	won    bool
}

func (c *card) mark(n int) bool {
	hit := false
	for i, v := range c.board {
		if v == n {
			c.marked[i] = true
			hit = true
		}
	}

	return hit
}

func (c *card) complete() bool {
	for i := 0; i < Size; i++ {
		row, col := true, true
		for j := 0; j < Size; j++ {
			row = row && c.marked[i*Size+j]
			col = col && c.marked[j*Size+i]
		}
		if row || col {
			return true
		}
	}

	return false
}

func (c *card) unmarked() int {
	sum := 0
	for i, v := range c.board {
		if !c.marked[i] {
			sum += v
		}
	}

	return sum
}

// wins plays the whole game and returns every board's win in the order the
// boards complete. Boards completing on the same draw keep board order.
func (g Game) wins() []Win {
	cards := make([]card, len(g.Boards))
	for i := range g.Boards {
		cards[i].board = &g.Boards[i]
	}

	var out []Win
	for _, n := range g.Draws {
		for i := range cards {
			c := &cards[i]
			if c.won || !c.mark(n) || !c.complete() {
				continue
			}
			c.won = true
			out = append(out, Win{Board: i, Draw: n, Score: n * c.unmarked()})
		}
		if len(out) == len(cards) {
			break
		}
	}

	return out
}

// Play returns the first board to win. ok is false when no board ever wins.
func (g Game) Play() (w Win, ok bool) {
	all := g.wins()
	if len(all) == 0 {
		return Win{}, false
	}

	return all[0], true
}

// LastWin returns the board that wins last.
func (g Game) LastWin() (w Win, ok bool) {
	all := g.wins()
	if len(all) == 0 {
		return Win{}, false
	}

	return all[len(all)-1], true
}
