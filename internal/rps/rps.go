// Package rps scores a rock-paper-scissors strategy guide.
package rps

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMove is returned for a token that is not one of A-C or X-Z.
var ErrUnknownMove = errors.New("unknown move")

// Move is a hand shape. Its value is the shape score.
type Move int

const (
	Rock     Move = 1
	Paper    Move = 2
	Scissors Move = 3
)

func (m Move) String() string {
	switch m {
	case Rock:
		return "rock"
	case Paper:
		return "paper"
	case Scissors:
		return "scissors"
	}
	return fmt.Sprintf("Move(%d)", int(m))
}

// beats returns the shape m defeats.
func (m Move) beats() Move {
	switch m {
	case Rock:
		return Scissors
	case Paper:
		return Rock
	}
	return Paper
}

// ParseMove decodes an opponent (A, B, C) or player (X, Y, Z) token.
func ParseMove(s string) (Move, error) {
	switch s {
	case "A", "X":
		return Rock, nil
	case "B", "Y":
		return Paper, nil
	case "C", "Z":
		return Scissors, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMove, s)
}

// Outcome is the result of a round for the player. Its value is the outcome
// score.
type Outcome int

const (
	Loss Outcome = 0
	Draw Outcome = 3
	Win  Outcome = 6
)

func (o Outcome) String() string {
	switch o {
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	case Win:
		return "win"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Play returns the outcome for the player choosing mine against opponent.
func Play(opponent, mine Move) Outcome {
	switch {
	case mine == opponent:
		return Draw
	case mine.beats() == opponent:
		return Win
	}
	return Loss
}

// Round is one line of the strategy guide.
type Round struct {
	Opponent Move
	Mine     Move
}

// Outcome of the round for the player.
func (r Round) Outcome() Outcome { return Play(r.Opponent, r.Mine) }

// Score is the shape score plus the outcome score.
func (r Round) Score() int { return int(r.Mine) + int(r.Outcome()) }

// RoundError reports a strategy guide line that cannot be scored.
type RoundError struct {
	Line    int // 1-based; 0 when parsed on its own
	Content string
	Err     error
}

func (e *RoundError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("round at line %d %q: %v", e.Line, e.Content, e.Err)
	}
	return fmt.Sprintf("round %q: %v", e.Content, e.Err)
}

func (e *RoundError) Unwrap() error { return e.Err }

var errMissingSeparator = errors.New("expected \"<opponent> <mine>\"")

// ParseRound decodes "<opponent> <mine>". Surrounding whitespace and a
// trailing carriage return are ignored.
func ParseRound(line string) (Round, error) {
	trimmed := strings.TrimSpace(line)
	left, right, ok := strings.Cut(trimmed, " ")
	if !ok {
		return Round{}, &RoundError{Content: line, Err: errMissingSeparator}
	}

	opp, err := ParseMove(left)
	if err != nil {
		return Round{}, &RoundError{Content: line, Err: err}
	}
	mine, err := ParseMove(right)
	if err != nil {
		return Round{}, &RoundError{Content: line, Err: err}
	}
	return Round{Opponent: opp, Mine: mine}, nil
}

// Observer is called once per scored round. lineNo is 1-based.
type Observer func(lineNo int, r Round)

// TotalScore sums the round scores. The first bad line aborts.
func TotalScore(lines []string) (int, error) {
	return Score(lines, nil)
}

// Score is TotalScore with a per-round observer. observe may be nil.
func Score(lines []string, observe Observer) (int, error) {
	total := 0
	for i, line := range lines {
		r, err := ParseRound(line)
		if err != nil {
			var rErr *RoundError
			if errors.As(err, &rErr) {
				rErr.Line = i + 1
			}
			return 0, err
		}
		if observe != nil {
			observe(i+1, r)
		}
		total += r.Score()
	}
	return total, nil
}
