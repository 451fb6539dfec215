package common

import "fmt"

// Position is a mutable draughts board. Moves are applied in place and
// must be taken back in reverse order.
type Position struct {
	squares   [SquareCount + 1]Piece
	whiteMove bool
	history   []Move
}

func NewEmptyPosition(whiteMove bool) *Position {
	return &Position{whiteMove: whiteMove}
}

func NewInitialPosition() *Position {
	var p = NewEmptyPosition(true)
	for sq := 1; sq <= 20; sq++ {
		p.squares[sq] = BlackMan
	}
	for sq := 31; sq <= SquareCount; sq++ {
		p.squares[sq] = WhiteMan
	}
	return p
}

func (p *Position) PieceAt(sq int) Piece {
	if !IsValidSquare(sq) {
		panic(fmt.Errorf("square %v out of range", sq))
	}
	return p.squares[sq]
}

func (p *Position) SetPiece(sq int, piece Piece) {
	if !IsValidSquare(sq) {
		panic(fmt.Errorf("square %v out of range", sq))
	}
	p.squares[sq] = piece
}

func (p *Position) WhiteToMove() bool {
	return p.whiteMove
}

func (p *Position) SetWhiteToMove(whiteMove bool) {
	p.whiteMove = whiteMove
}

// Squares returns a copy of the board, index 0 unused.
func (p *Position) Squares() [SquareCount + 1]Piece {
	return p.squares
}

// Equal compares board and side to move, not the move history.
func (p *Position) Equal(other *Position) bool {
	return p.squares == other.squares && p.whiteMove == other.whiteMove
}

// Clone copies board and side to move; the clone has no history.
func (p *Position) Clone() *Position {
	return &Position{squares: p.squares, whiteMove: p.whiteMove}
}

func (p *Position) Ply() int {
	return len(p.history)
}

func (p *Position) MakeMove(m Move) {
	var piece = p.squares[m.From]
	if piece != m.Piece || piece.IsWhite() != p.whiteMove {
		panic(fmt.Errorf("move %v does not fit position %v", m.LongString(), p))
	}
	p.squares[m.From] = Empty
	for _, sq := range m.Captured {
		p.squares[sq] = Empty
	}
	if m.Promotion {
		piece = piece.Promoted()
	}
	p.squares[m.To] = piece
	p.whiteMove = !p.whiteMove
	p.history = append(p.history, m)
}

// UnmakeMove takes back m, which must be the last applied move.
func (p *Position) UnmakeMove(m Move) {
	if len(p.history) == 0 {
		panic(fmt.Errorf("unmake %v without a matching make", m.LongString()))
	}
	var last = p.history[len(p.history)-1]
	if !last.SameAs(m) {
		panic(fmt.Errorf("unmake %v but last move was %v", m.LongString(), last.LongString()))
	}
	p.history = p.history[:len(p.history)-1]
	p.squares[m.To] = Empty
	p.squares[m.From] = m.Piece
	for i, sq := range m.Captured {
		p.squares[sq] = m.CapturedPieces[i]
	}
	p.whiteMove = !p.whiteMove
}

// Count returns the number of pieces of the given kind.
func (p *Position) Count(piece Piece) int {
	var n = 0
	for sq := 1; sq <= SquareCount; sq++ {
		if p.squares[sq] == piece {
			n++
		}
	}
	return n
}

// MirrorPosition rotates the board by 180 degrees and swaps colours.
func MirrorPosition(p *Position) *Position {
	var result = NewEmptyPosition(!p.whiteMove)
	for sq := 1; sq <= SquareCount; sq++ {
		result.squares[MirrorSquare(sq)] = p.squares[sq].Mirror()
	}
	return result
}

func (p *Position) String() string {
	return p.FEN()
}
