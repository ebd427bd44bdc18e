// Package san formats and parses moves in Standard Algebraic Notation. Format writes
// files and squares in this module's uppercase style, e.g. "NBD7", "DxE8=Q+", "O-O-O#";
// Parse accepts that form as well as the conventional lowercase one, e.g. "Nbd7",
// "dxe8=Q+". Unlike board's pure coordinate notation, SAN is relative to a position:
// the piece kind, capture marker, disambiguation and check/checkmate suffix all depend
// on the board the move is played from.
//
// See: https://ia802908.us.archive.org/26/items/pgn-standard-1994-03-12/PGN_standard_1994-03-12.txt Section 8.2.3.
package san

import (
	"fmt"
	"strings"

	"github.com/kestrelchess/kestrel/pkg/board"
)

// Format renders m, played from b's current position, in Standard Algebraic Notation.
// m must be one of b.Position().LegalMoves(b.Turn()); Format does not itself validate
// legality.
func Format(b *board.Board, m board.Move) string {
	if m.Type == board.KingSideCastle {
		return appendSuffix(b, m, "O-O")
	}
	if m.Type == board.QueenSideCastle {
		return appendSuffix(b, m, "O-O-O")
	}

	var sb strings.Builder
	if letter, ok := pieceLetter(m.Piece); ok {
		sb.WriteByte(letter)
		sb.WriteString(disambiguate(b, m))
	}

	if m.IsCapture() {
		if m.Piece == board.Pawn {
			sb.WriteString(m.From.File().String())
		}
		sb.WriteByte('x')
	}
	sb.WriteString(m.To.String())

	if m.Promotion.IsValid() {
		sb.WriteByte('=')
		letter, _ := pieceLetter(m.Promotion)
		sb.WriteByte(letter)
	}

	return appendSuffix(b, m, sb.String())
}

// disambiguate returns the minimal originating-square prefix needed to distinguish m
// from other legal moves of the same piece kind to the same destination: nothing for
// pawns (always unambiguous by themselves) and kings (only one per side), the
// originating file if that alone disambiguates, else the originating rank, else both.
func disambiguate(b *board.Board, m board.Move) string {
	if m.Piece == board.Pawn || m.Piece == board.King {
		return ""
	}

	var sameFile, sameRank, other bool
	for _, candidate := range b.Position().LegalMoves(b.Turn()) {
		if candidate.Piece != m.Piece || candidate.To != m.To || candidate.From == m.From {
			continue
		}
		other = true
		if candidate.From.File() == m.From.File() {
			sameFile = true
		}
		if candidate.From.Rank() == m.From.Rank() {
			sameRank = true
		}
	}
	if !other {
		return ""
	}

	switch {
	case !sameFile:
		return m.From.File().String()
	case !sameRank:
		return m.From.Rank().String()
	default:
		return m.From.String()
	}
}

// appendSuffix plays m on a forked board and appends '#' if it delivers checkmate, '+'
// if it delivers check, or nothing otherwise.
func appendSuffix(b *board.Board, m board.Move, prefix string) string {
	next := b.Fork()
	if !next.PushMove(m) {
		return prefix // unreachable for a legal move
	}

	turn := next.Turn()
	if !next.Position().IsChecked(turn) {
		return prefix
	}
	if len(next.Position().LegalMoves(turn)) == 0 {
		return prefix + "#"
	}
	return prefix + "+"
}

func pieceLetter(p board.Piece) (byte, bool) {
	switch p {
	case board.Knight:
		return 'N', true
	case board.Bishop:
		return 'B', true
	case board.Rook:
		return 'R', true
	case board.Queen:
		return 'Q', true
	case board.King:
		return 'K', true
	default:
		return 0, false
	}
}

// Parse resolves a SAN token, such as "Nbd7", "NBD7" or "dxe8=Q+", to the legal move from
// b's current position that it denotes.
func Parse(b *board.Board, token string) (board.Move, error) {
	san := strings.TrimRight(token, "+#")

	turn := b.Turn()
	legal := b.Position().LegalMoves(turn)

	if san == "O-O" {
		return findCastle(legal, board.KingSideCastle, san)
	}
	if san == "O-O-O" {
		return findCastle(legal, board.QueenSideCastle, san)
	}

	for _, m := range legal {
		f := Format(b, m)
		if f == token {
			return m, nil
		}
		// Conventional SAN: lowercase files and squares, uppercase piece letters.
		head, promo, hasPromo := strings.Cut(f, "=")
		start := 0
		if m.Piece != board.Pawn {
			start = 1
		}
		conventional := head[:start] + strings.ToLower(head[start:])
		if hasPromo {
			conventional += "=" + promo
		}
		if conventional == token {
			return m, nil
		}
	}
	return board.Move{}, fmt.Errorf("no legal move matches SAN %q", token)
}

func findCastle(legal []board.Move, t board.MoveType, san string) (board.Move, error) {
	for _, m := range legal {
		if m.Type == t {
			return m, nil
		}
	}
	return board.Move{}, fmt.Errorf("no legal move matches SAN %q", san)
}
