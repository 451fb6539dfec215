package common

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const InitialPositionFen = "W:W31-50:B1-20"

var ErrIllegalMove = errors.New("illegal move")

// NewPositionFromFEN parses PDN FEN, e.g. "W:W31-50,K3:B1-20".
func NewPositionFromFEN(fen string) (*Position, error) {
	var fields = strings.Split(strings.TrimSuffix(strings.TrimSpace(fen), "."), ":")
	if len(fields) == 0 || fields[0] == "" {
		return nil, errors.New("empty fen")
	}
	var p = NewEmptyPosition(true)
	switch strings.ToUpper(fields[0]) {
	case "W":
		p.whiteMove = true
	case "B":
		p.whiteMove = false
	default:
		return nil, fmt.Errorf("bad side to move %q in fen %q", fields[0], fen)
	}
	for _, field := range fields[1:] {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		var man, king Piece
		switch field[0] {
		case 'W', 'w':
			man, king = WhiteMan, WhiteKing
		case 'B', 'b':
			man, king = BlackMan, BlackKing
		default:
			return nil, fmt.Errorf("bad colour %q in fen %q", field[:1], fen)
		}
		for _, item := range strings.Split(field[1:], ",") {
			item = strings.TrimSpace(item)
			if item == "" {
				continue
			}
			var piece = man
			if item[0] == 'K' || item[0] == 'k' {
				piece = king
				item = item[1:]
			}
			var first, last, err = parseSquareRange(item)
			if err != nil {
				return nil, fmt.Errorf("fen %q: %w", fen, err)
			}
			for sq := first; sq <= last; sq++ {
				if p.squares[sq] != Empty {
					return nil, fmt.Errorf("square %v occupied twice in fen %q", sq, fen)
				}
				p.squares[sq] = piece
			}
		}
	}
	return p, nil
}

func parseSquareRange(s string) (first, last int, err error) {
	var from, to, isRange = strings.Cut(s, "-")
	first, err = ParseSquare(from)
	if err != nil {
		return
	}
	last = first
	if isRange {
		last, err = ParseSquare(to)
		if err != nil {
			return
		}
		if last < first {
			err = fmt.Errorf("bad square range %q", s)
		}
	}
	return
}

func (p *Position) FEN() string {
	var sb strings.Builder
	if p.whiteMove {
		sb.WriteString("W")
	} else {
		sb.WriteString("B")
	}
	for _, side := range []struct {
		prefix    string
		man, king Piece
	}{{"W", WhiteMan, WhiteKing}, {"B", BlackMan, BlackKing}} {
		sb.WriteString(":")
		sb.WriteString(side.prefix)
		var items []string
		for sq := 1; sq <= SquareCount; sq++ {
			switch p.squares[sq] {
			case side.man:
				items = append(items, strconv.Itoa(sq))
			case side.king:
				items = append(items, "K"+strconv.Itoa(sq))
			}
		}
		sb.WriteString(strings.Join(items, ","))
	}
	return sb.String()
}

const hubPieces = "ewWbB"

// NewPositionFromHub parses the hub protocol board: side to move followed by
// one character per square (e empty, w/b man, W/B king).
func NewPositionFromHub(s string) (*Position, error) {
	if len(s) != SquareCount+1 {
		return nil, fmt.Errorf("hub position %q: want %v characters", s, SquareCount+1)
	}
	var p = NewEmptyPosition(true)
	switch s[0] {
	case 'W', 'w':
		p.whiteMove = true
	case 'B', 'b':
		p.whiteMove = false
	default:
		return nil, fmt.Errorf("hub position %q: bad side to move", s)
	}
	for sq := 1; sq <= SquareCount; sq++ {
		var i = strings.IndexByte(hubPieces, s[sq])
		if i < 0 {
			return nil, fmt.Errorf("hub position %q: bad piece %q", s, s[sq])
		}
		p.squares[sq] = hubPiece(i)
	}
	return p, nil
}

func hubPiece(i int) Piece {
	switch i {
	case 1:
		return WhiteMan
	case 2:
		return WhiteKing
	case 3:
		return BlackMan
	case 4:
		return BlackKing
	}
	return Empty
}

func (p *Position) HubString() string {
	var sb strings.Builder
	if p.whiteMove {
		sb.WriteByte('W')
	} else {
		sb.WriteByte('B')
	}
	for sq := 1; sq <= SquareCount; sq++ {
		switch p.squares[sq] {
		case WhiteMan:
			sb.WriteByte('w')
		case WhiteKing:
			sb.WriteByte('W')
		case BlackMan:
			sb.WriteByte('b')
		case BlackKing:
			sb.WriteByte('B')
		default:
			sb.WriteByte('e')
		}
	}
	return sb.String()
}

// ParseMove finds the legal move written as "32-28", "19x30" or, to tell
// apart captures with the same ends, "19x30x24x..." listing captured squares.
func (p *Position) ParseMove(s string) (Move, error) {
	var moves = p.LegalMoves()
	var matches = lo.Filter(moves, func(m Move, _ int) bool {
		return m.String() == s
	})
	if len(matches) == 1 {
		return matches[0], nil
	}
	if long, ok := lo.Find(moves, func(m Move) bool {
		return m.IsCapture() && sameLongNotation(m, s)
	}); ok {
		return long, nil
	}
	if len(matches) > 1 {
		return MoveEmpty, fmt.Errorf("ambiguous move %q in %v", s, p)
	}
	return MoveEmpty, fmt.Errorf("%w %q in %v", ErrIllegalMove, s, p)
}

func sameLongNotation(m Move, s string) bool {
	var fields = strings.Split(s, "x")
	if len(fields) < 2 {
		return false
	}
	var squares = make([]int, len(fields))
	for i, f := range fields {
		var sq, err = ParseSquare(f)
		if err != nil {
			return false
		}
		squares[i] = sq
	}
	return m.SameAs(Move{From: squares[0], To: squares[1], Captured: squares[2:]})
}
