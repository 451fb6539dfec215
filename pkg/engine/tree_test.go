package engine

import (
	"fmt"

	"github.com/nimobeeren/InternationalDraughts/pkg/common"
)

// treePosition is an endless pseudo-random game tree. A node is identified
// by the path of child indexes from the root; light moves at even plies.
type treePosition struct {
	seed uint64
	path []int
}

func splitmix(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	return x ^ (x >> 31)
}

func (t *treePosition) key() uint64 {
	var h = splitmix(t.seed)
	for _, i := range t.path {
		h = splitmix(h ^ uint64(i+1))
	}
	return h
}

func (t *treePosition) PieceAt(sq int) common.Piece {
	return common.Empty
}

func (t *treePosition) WhiteToMove() bool {
	return len(t.path)%2 == 0
}

func (t *treePosition) LegalMoves() []common.Move {
	var k = t.key()
	if len(t.path) != 0 && k%13 == 0 {
		return nil
	}
	var n = 1 + int(k%4)
	var result = make([]common.Move, n)
	for i := range result {
		result[i] = common.Move{From: i + 1, To: i + 1}
	}
	return result
}

func (t *treePosition) MakeMove(m common.Move) {
	t.path = append(t.path, m.From-1)
}

func (t *treePosition) UnmakeMove(m common.Move) {
	if len(t.path) == 0 || t.path[len(t.path)-1] != m.From-1 {
		panic(fmt.Errorf("unmake %v does not match path %v", m, t.path))
	}
	t.path = t.path[:len(t.path)-1]
}

func (t *treePosition) value() int {
	return int(splitmix(t.key()^0xabcdef)%401) - 200
}

type treeEvaluator struct{}

func (treeEvaluator) Evaluate(b common.Board) int {
	return b.(*treePosition).value()
}
