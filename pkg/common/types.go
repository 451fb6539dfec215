package common

import (
	"strconv"
	"strings"
	"time"
)

type Piece int

const (
	Empty Piece = iota
	WhiteMan
	WhiteKing
	BlackMan
	BlackKing
)

func (p Piece) IsWhite() bool {
	return p == WhiteMan || p == WhiteKing
}

func (p Piece) IsBlack() bool {
	return p == BlackMan || p == BlackKing
}

func (p Piece) IsKing() bool {
	return p == WhiteKing || p == BlackKing
}

func (p Piece) IsMan() bool {
	return p == WhiteMan || p == BlackMan
}

// SameColor reports whether both pieces are non-empty and belong to one side.
func (p Piece) SameColor(other Piece) bool {
	return p.IsWhite() && other.IsWhite() || p.IsBlack() && other.IsBlack()
}

func (p Piece) Opponent(other Piece) bool {
	return p.IsWhite() && other.IsBlack() || p.IsBlack() && other.IsWhite()
}

func (p Piece) Promoted() Piece {
	switch p {
	case WhiteMan:
		return WhiteKing
	case BlackMan:
		return BlackKing
	}
	return p
}

// Mirror swaps the colour of a piece.
func (p Piece) Mirror() Piece {
	switch p {
	case WhiteMan:
		return BlackMan
	case WhiteKing:
		return BlackKing
	case BlackMan:
		return WhiteMan
	case BlackKing:
		return WhiteKing
	}
	return Empty
}

// Board is read access to a draughts position.
type Board interface {
	PieceAt(sq int) Piece
	WhiteToMove() bool
}

// Move is a complete move: a step, a king slide or a whole capture sequence.
type Move struct {
	From           int
	To             int
	Piece          Piece
	Captured       []int
	CapturedPieces []Piece
	Promotion      bool
}

var MoveEmpty = Move{}

func (m Move) IsEmpty() bool {
	return m.From == SquareNone
}

func (m Move) IsCapture() bool {
	return len(m.Captured) != 0
}

// SameAs compares origin, destination and the set of captured squares.
func (m Move) SameAs(other Move) bool {
	if m.From != other.From || m.To != other.To ||
		len(m.Captured) != len(other.Captured) {
		return false
	}
	for _, sq := range m.Captured {
		if !containsSquare(other.Captured, sq) {
			return false
		}
	}
	return true
}

func (m Move) String() string {
	if m.IsEmpty() {
		return "0000"
	}
	var sep = "-"
	if m.IsCapture() {
		sep = "x"
	}
	return strconv.Itoa(m.From) + sep + strconv.Itoa(m.To)
}

// LongString lists captured squares too, e.g. "28x19x23x17".
func (m Move) LongString() string {
	if !m.IsCapture() {
		return m.String()
	}
	var sb strings.Builder
	sb.WriteString(strconv.Itoa(m.From))
	sb.WriteString("x")
	sb.WriteString(strconv.Itoa(m.To))
	for _, sq := range m.Captured {
		sb.WriteString("x")
		sb.WriteString(strconv.Itoa(sq))
	}
	return sb.String()
}

type SearchInfo struct {
	Depth   int           `json:"depth"`
	Score   int           `json:"score"`
	Move    Move          `json:"-"`
	Nodes   int64         `json:"nodes"`
	Time    time.Duration `json:"time"`
	Stopped bool          `json:"stopped"`
	Random  bool          `json:"random"`
}

func containsSquare(squares []int, sq int) bool {
	for _, s := range squares {
		if s == sq {
			return true
		}
	}
	return false
}
