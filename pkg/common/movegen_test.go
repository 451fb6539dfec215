package common

import (
	"testing"
)

func TestPerft(t *testing.T) {
	var tests = []struct {
		depth int
		nodes int
	}{
		{1, 9},
		{2, 81},
		{3, 658},
		{4, 4265},
		{5, 27117},
	}
	for _, test := range tests {
		var p = NewInitialPosition()
		var nodes = perft(p, test.depth)
		if nodes != test.nodes {
			t.Error(test.depth, test.nodes, nodes)
		}
		if !p.Equal(NewInitialPosition()) || p.Ply() != 0 {
			t.Error("position not restored", p)
		}
	}
}

func perft(p *Position, depth int) int {
	var moves = p.LegalMoves()
	if depth == 1 {
		return len(moves)
	}
	var result = 0
	for _, move := range moves {
		p.MakeMove(move)
		result += perft(p, depth-1)
		p.UnmakeMove(move)
	}
	return result
}

func TestNeighbors(t *testing.T) {
	var tests = []struct {
		sq   int
		dirs [DirCount]int
	}{
		{1, [DirCount]int{SquareNone, SquareNone, 6, 7}},
		{5, [DirCount]int{SquareNone, SquareNone, 10, SquareNone}},
		{6, [DirCount]int{SquareNone, 1, SquareNone, 11}},
		{28, [DirCount]int{22, 23, 32, 33}},
		{46, [DirCount]int{SquareNone, 41, SquareNone, SquareNone}},
		{45, [DirCount]int{40, SquareNone, 50, SquareNone}},
	}
	for _, test := range tests {
		for dir := 0; dir < DirCount; dir++ {
			if got := Neighbor(test.sq, dir); got != test.dirs[dir] {
				t.Error(test.sq, dir, got, test.dirs[dir])
			}
		}
	}
}

func TestMaximumCapture(t *testing.T) {
	var p, err = NewPositionFromFEN("W:W28:B13,22,23")
	if err != nil {
		t.Fatal(err)
	}
	var moves = p.LegalMoves()
	if len(moves) != 1 {
		t.Fatal(moves)
	}
	var m = moves[0]
	if m.String() != "28x8" || len(m.Captured) != 2 {
		t.Error(m.LongString())
	}
	p.MakeMove(m)
	if p.PieceAt(8) != WhiteMan || p.PieceAt(23) != Empty || p.PieceAt(13) != Empty || p.PieceAt(22) != BlackMan {
		t.Error(p)
	}
	p.UnmakeMove(m)
	if p.FEN() != "W:W28:B13,22,23" {
		t.Error(p)
	}
}

func TestKingCapture(t *testing.T) {
	var p, err = NewPositionFromFEN("W:WK46:B28")
	if err != nil {
		t.Fatal(err)
	}
	var moves = p.LegalMoves()
	if len(moves) != 5 {
		t.Fatal(len(moves), moves)
	}
	for _, m := range moves {
		if len(m.Captured) != 1 || m.Captured[0] != 28 || m.Promotion {
			t.Error(m.LongString())
		}
	}
}

func TestPromotion(t *testing.T) {
	var tests = []struct {
		fen  string
		move string
		king Piece
	}{
		{"W:W6:B50", "6-1", WhiteKing},
		{"B:W1:B45", "45-50", BlackKing},
	}
	for _, test := range tests {
		var p, err = NewPositionFromFEN(test.fen)
		if err != nil {
			t.Fatal(err)
		}
		m, err := p.ParseMove(test.move)
		if err != nil {
			t.Fatal(err)
		}
		if !m.Promotion {
			t.Error(test.move, "not a promotion")
		}
		p.MakeMove(m)
		if p.PieceAt(m.To) != test.king {
			t.Error(p)
		}
		p.UnmakeMove(m)
		if p.FEN() != test.fen {
			t.Error(p.FEN(), test.fen)
		}
	}
}

func TestUnmakeWithoutMakePanics(t *testing.T) {
	var p = NewInitialPosition()
	var moves = p.LegalMoves()
	defer func() {
		if recover() == nil {
			t.Error("expected panic")
		}
	}()
	p.MakeMove(moves[0])
	p.UnmakeMove(moves[1])
}

func TestBlockedSide(t *testing.T) {
	var p, err = NewPositionFromFEN("B:W23:B46,47,48,49,50")
	if err != nil {
		t.Fatal(err)
	}
	if p.HasLegalMove() {
		t.Error(p.LegalMoves())
	}
}
