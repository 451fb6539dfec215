package eval

import (
	. "github.com/nimobeeren/InternationalDraughts/pkg/common"
)

// Features holds the unweighted light-minus-dark feature values.
type Features struct {
	Material  int `json:"material"`
	Formation int `json:"formation"`
	Baseline  int `json:"baseline"`
	Tempo     int `json:"tempo"`
	Center    int `json:"center"`
	Chain     int `json:"chain"`
}

func (f Features) Score(w Weights) int {
	return w.Material*f.Material +
		w.Formation*f.Formation +
		w.Baseline*f.Baseline +
		w.Tempo*f.Tempo +
		w.Center*f.Center +
		w.Chain*f.Chain
}

type EvaluationService struct {
	Weights
	Params
}

func NewEvaluationService(weights Weights) *EvaluationService {
	return &EvaluationService{
		Weights: weights,
		Params:  DefaultParams,
	}
}

// Evaluate scores the board from light's point of view; the side to move is ignored.
func (e *EvaluationService) Evaluate(b Board) int {
	return e.Features(b).Score(e.Weights)
}

func (e *EvaluationService) Features(b Board) Features {
	var squares [SquareCount + 1]Piece
	var total = 0
	for sq := 1; sq <= SquareCount; sq++ {
		squares[sq] = b.PieceAt(sq)
		if squares[sq] != Empty {
			total++
		}
	}
	return Features{
		Material:  e.material(&squares, total),
		Formation: e.formation(&squares),
		Baseline:  e.baseline(&squares, total),
		Tempo:     tempo(&squares),
		Center:    center(&squares),
		Chain:     e.chains(&squares),
	}
}

func (e *EvaluationService) material(squares *[SquareCount + 1]Piece, total int) int {
	var kingWeight = e.KingWeight
	if total <= e.EndgamePieces {
		kingWeight = e.EndgameKingWeight
	}
	var result = 0
	for sq := 1; sq <= SquareCount; sq++ {
		switch squares[sq] {
		case WhiteMan:
			result++
		case BlackMan:
			result--
		case WhiteKing:
			result += kingWeight
		case BlackKing:
			result -= kingWeight
		}
	}
	return result
}

// backwardDirs point toward the owner's home row.
var backwardDirs = [2][2]int{
	{DirDownLeft, DirDownRight}, // light
	{DirUpLeft, DirUpRight},     // dark
}

func (e *EvaluationService) formation(squares *[SquareCount + 1]Piece) int {
	var result = 0
	for sq := 1; sq <= SquareCount; sq++ {
		var piece = squares[sq]
		if piece == Empty {
			continue
		}
		var side = 0
		if piece.IsBlack() {
			side = 1
		}
		var score = 0
		for _, dir := range backwardDirs[side] {
			var behind1 = Neighbor(sq, dir)
			if behind1 == SquareNone || !piece.SameColor(squares[behind1]) {
				continue
			}
			var behind2 = Neighbor(behind1, dir)
			if behind2 != SquareNone && piece.SameColor(squares[behind2]) {
				score += e.ChainOfThree
			} else {
				score += e.ChainOfTwo
			}
		}
		if side == 0 {
			result += score
		} else {
			result -= score
		}
	}
	return result
}

func (e *EvaluationService) chains(squares *[SquareCount + 1]Piece) int {
	var result = 0
	for sq := 1; sq <= SquareCount; sq++ {
		switch squares[sq] {
		case WhiteMan:
			result += chainLength(squares, sq, backwardDirs[0], e.ChainLimit)
		case BlackMan:
			result -= chainLength(squares, sq, backwardDirs[1], e.ChainLimit)
		}
	}
	return result
}

// chainLength counts the man on sq and the longest run of men of the same
// colour stepping back from it, at most limit.
func chainLength(squares *[SquareCount + 1]Piece, sq int, dirs [2]int, limit int) int {
	if limit <= 1 {
		return 1
	}
	var longest = 0
	for _, dir := range dirs {
		var behind = Neighbor(sq, dir)
		if behind != SquareNone && squares[behind] == squares[sq] {
			longest = max(longest, chainLength(squares, behind, dirs, limit-1))
		}
	}
	return 1 + longest
}

func (e *EvaluationService) baseline(squares *[SquareCount + 1]Piece, total int) int {
	if total < e.BaselineMinPieces {
		return 0
	}
	var result = 0
	for c := 1; c <= ColumnCount; c++ {
		if squares[c].IsBlack() {
			result--
		}
		if squares[SquareCount-ColumnCount+c].IsWhite() {
			result++
		}
	}
	return result
}

// tempo sums the rows each man has advanced from its home row.
func tempo(squares *[SquareCount + 1]Piece) int {
	var result = 0
	for sq := 1; sq <= SquareCount; sq++ {
		switch squares[sq] {
		case WhiteMan:
			result += RowCount - Row(sq)
		case BlackMan:
			result -= Row(sq) - 1
		}
	}
	return result
}

func center(squares *[SquareCount + 1]Piece) int {
	var result = 0
	for sq := 1; sq <= SquareCount; sq++ {
		var column = Column(sq)
		if column == 1 || column == ColumnCount {
			continue
		}
		if squares[sq].IsWhite() {
			result++
		} else if squares[sq].IsBlack() {
			result--
		}
	}
	return result
}
