package hanoi

import "fmt"

// Peg identifies one of the three pegs by index.
type Peg int

// NumPegs is the number of pegs in the puzzle.
const NumPegs = 3

// Standard peg roles used by [Solve].
const (
	Source      Peg = 0
	Auxiliary   Peg = 1
	Destination Peg = 2
)

// Valid reports whether p names an existing peg.
func (p Peg) Valid() bool {
	return p >= 0 && p < NumPegs
}

// Move relocates the top disk of From onto To.
type Move struct {
	From Peg `json:"from" yaml:"from"`
	To   Peg `json:"to" yaml:"to"`
}

// String renders the move as "from→to", e.g. "0→2".
func (m Move) String() string {
	return fmt.Sprintf("%d→%d", m.From, m.To)
}

// GenerateMoves returns the minimal move sequence that transfers n disks from
// source to destination using auxiliary as the spare peg. The three pegs must
// be distinct. n <= 0 yields no moves.
func GenerateMoves(n int, source, destination, auxiliary Peg) []Move {
	if n <= 0 {
		return nil
	}
	moves := make([]Move, 0, MoveCount(n))
	return appendMoves(moves, n, source, destination, auxiliary)
}

func appendMoves(moves []Move, n int, source, destination, auxiliary Peg) []Move {
	if n == 0 {
		return moves
	}
	moves = appendMoves(moves, n-1, source, auxiliary, destination)
	moves = append(moves, Move{From: source, To: destination})
	return appendMoves(moves, n-1, auxiliary, destination, source)
}

// Solve returns the moves that transfer n disks from peg 0 to peg 2.
func Solve(n int) []Move {
	return GenerateMoves(n, Source, Destination, Auxiliary)
}

// MoveCount returns 2^n - 1, the length of the minimal solution for n disks.
func MoveCount(n int) int {
	if n <= 0 {
		return 0
	}
	return 1<<n - 1
}

// Replay applies moves to t in order, stopping at the first illegal move.
// The returned error wraps the index of the failing move.
func Replay(t *Tower, moves []Move) error {
	for i, m := range moves {
		d, err := t.Pop(m.From)
		if err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
		if err := t.Push(m.To, d); err != nil {
			return fmt.Errorf("move %d (%s): %w", i+1, m, err)
		}
	}
	return nil
}
