package common

// LegalMoves generates all legal moves for the side to move.
// Captures are mandatory and only the longest capture sequences are legal.
func (p *Position) LegalMoves() []Move {
	var captures = p.generateCaptures()
	if len(captures) != 0 {
		return captures
	}
	return p.generateQuiets()
}

func (p *Position) HasLegalMove() bool {
	return len(p.LegalMoves()) != 0
}

func (p *Position) isOwn(piece Piece) bool {
	if p.whiteMove {
		return piece.IsWhite()
	}
	return piece.IsBlack()
}

func forwardDirs(whiteMove bool) [2]int {
	if whiteMove {
		return [2]int{DirUpLeft, DirUpRight}
	}
	return [2]int{DirDownLeft, DirDownRight}
}

func promotionRow(whiteMove bool) int {
	if whiteMove {
		return 1
	}
	return RowCount
}

func (p *Position) generateQuiets() []Move {
	var result []Move
	var promoRow = promotionRow(p.whiteMove)
	for from := 1; from <= SquareCount; from++ {
		var piece = p.squares[from]
		if !p.isOwn(piece) {
			continue
		}
		if piece.IsKing() {
			for dir := 0; dir < DirCount; dir++ {
				for _, to := range Ray(from, dir) {
					if p.squares[to] != Empty {
						break
					}
					result = append(result, Move{From: from, To: to, Piece: piece})
				}
			}
			continue
		}
		for _, dir := range forwardDirs(p.whiteMove) {
			var to = Neighbor(from, dir)
			if to != SquareNone && p.squares[to] == Empty {
				result = append(result, Move{
					From:      from,
					To:        to,
					Piece:     piece,
					Promotion: Row(to) == promoRow,
				})
			}
		}
	}
	return result
}

type captureGen struct {
	p        *Position
	from     int
	piece    Piece
	captured []int
	best     int
	result   []Move
}

func (p *Position) generateCaptures() []Move {
	var gen = captureGen{p: p}
	for from := 1; from <= SquareCount; from++ {
		var piece = p.squares[from]
		if !p.isOwn(piece) {
			continue
		}
		gen.from = from
		gen.piece = piece
		gen.captured = gen.captured[:0]
		if piece.IsKing() {
			gen.kingCaptures(from)
		} else {
			gen.manCaptures(from)
		}
	}
	return gen.result
}

// free treats the origin square as empty because the capturing piece has left it.
func (g *captureGen) free(sq int) bool {
	return sq == g.from || g.p.squares[sq] == Empty
}

func (g *captureGen) capturable(sq int) bool {
	return g.piece.Opponent(g.p.squares[sq]) && !containsSquare(g.captured, sq)
}

func (g *captureGen) manCaptures(sq int) {
	var extended = false
	for dir := 0; dir < DirCount; dir++ {
		var over = Neighbor(sq, dir)
		if over == SquareNone || !g.capturable(over) {
			continue
		}
		var to = Neighbor(over, dir)
		if to == SquareNone || !g.free(to) {
			continue
		}
		extended = true
		g.captured = append(g.captured, over)
		g.manCaptures(to)
		g.captured = g.captured[:len(g.captured)-1]
	}
	if !extended {
		g.add(sq)
	}
}

func (g *captureGen) kingCaptures(sq int) {
	var extended = false
	for dir := 0; dir < DirCount; dir++ {
		var ray = Ray(sq, dir)
		var i = 0
		for i < len(ray) && g.free(ray[i]) {
			i++
		}
		if i >= len(ray) || !g.capturable(ray[i]) {
			continue
		}
		var over = ray[i]
		g.captured = append(g.captured, over)
		for j := i + 1; j < len(ray) && g.free(ray[j]); j++ {
			extended = true
			g.kingCaptures(ray[j])
		}
		g.captured = g.captured[:len(g.captured)-1]
	}
	if !extended {
		g.add(sq)
	}
}

func (g *captureGen) add(to int) {
	var n = len(g.captured)
	if n == 0 || n < g.best {
		return
	}
	if n > g.best {
		g.best = n
		g.result = g.result[:0]
	}
	var m = Move{
		From:           g.from,
		To:             to,
		Piece:          g.piece,
		Captured:       append([]int(nil), g.captured...),
		CapturedPieces: make([]Piece, n),
		Promotion:      g.piece.IsMan() && Row(to) == promotionRow(g.piece.IsWhite()),
	}
	for i, sq := range m.Captured {
		m.CapturedPieces[i] = g.p.squares[sq]
	}
	for _, other := range g.result {
		if other.SameAs(m) {
			return
		}
	}
	g.result = append(g.result, m)
}
