package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/board"
	"github.com/kestrelchess/kestrel/pkg/board/fen"
	"github.com/kestrelchess/kestrel/pkg/eval"
)

// Book represents an opening book: a lookup from position to a set of candidate moves.
// Once an empty list is returned for a position, the book should not be consulted again
// for that game.
type Book interface {
	Find(ctx context.Context, position string) ([]board.Move, error)
}

// Line represents an opening line: e2e4 d7d5 g1f3 ...
type Line []string

func (l Line) String() string {
	return strings.Join(l, " ")
}

// NoBook is an empty opening book that never suggests a move.
var NoBook Book = &book{moves: map[string][]board.Move{}}

// NewBook builds an opening book from a set of opening lines, replayed from the initial
// position. Each line must consist of legal moves throughout.
func NewBook(lines []Line) (Book, error) {
	m := map[string]map[board.Move]bool{}
	for _, line := range lines {
		key := fen.Initial
		for _, str := range line {
			next, err := board.ParseMove(str)
			if err != nil {
				return nil, fmt.Errorf("invalid line '%v': %v", line, err)
			}

			pos, turn, _, _, err := fen.Decode(key)
			if err != nil {
				return nil, fmt.Errorf("invalid line '%v': %v", line, err)
			}

			found := false
			for _, candidate := range pos.PseudoLegalMoves(turn) {
				if !candidate.Equals(next) {
					continue
				}

				np, ok := pos.Move(candidate)
				if !ok {
					return nil, fmt.Errorf("invalid line '%v': move %v not legal", line, next)
				}

				found = true
				if m[bookKey(key)] == nil {
					m[bookKey(key)] = map[board.Move]bool{}
				}
				m[bookKey(key)][candidate] = true

				key = fen.Encode(np, turn.Opponent(), 0, 1)
				break
			}
			if !found {
				return nil, fmt.Errorf("invalid line '%v': move %v not found", line, next)
			}
		}
	}

	dedup := map[string][]board.Move{}
	for k, v := range m {
		var list []board.Move
		for move := range v {
			list = append(list, move)
		}
		sort.Slice(list, func(i, j int) bool {
			return eval.NominalValueGain(list[i]) > eval.NominalValueGain(list[j])
		})
		dedup[k] = list
	}
	return &book{moves: dedup}, nil
}

type book struct {
	moves map[string][]board.Move // cropped FEN -> candidate moves
}

func (b *book) Find(ctx context.Context, position string) ([]board.Move, error) {
	return b.moves[bookKey(position)], nil
}

// bookKey crops a FEN string down to the piece placement, side to move, castling rights
// and en passant target, ignoring the move clocks so that transpositions still match.
func bookKey(position string) string {
	parts := strings.Split(position, " ")
	if len(parts) < 4 {
		return position
	}
	return strings.Join(parts[:4], " ")
}
