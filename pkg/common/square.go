package common

import (
	"fmt"
	"strconv"
)

const (
	SquareNone  = 0
	SquareCount = 50
	RowCount    = 10
	ColumnCount = 5
)

// Diagonal directions. Up is toward row 1 (dark's home row),
// down is toward row 10 (light's home row).
const (
	DirUpLeft = iota
	DirUpRight
	DirDownLeft
	DirDownRight
	DirCount
)

var (
	dirDx = [DirCount]int{-1, 1, -1, 1}
	dirDy = [DirCount]int{-1, -1, 1, 1}
)

var (
	neighbors [SquareCount + 1][DirCount]int
	rays      [SquareCount + 1][DirCount][]int
)

func init() {
	for sq := 1; sq <= SquareCount; sq++ {
		var x, y = squareXY(sq)
		for dir := 0; dir < DirCount; dir++ {
			neighbors[sq][dir] = xySquare(x+dirDx[dir], y+dirDy[dir])
			var ray []int
			for cx, cy := x+dirDx[dir], y+dirDy[dir]; ; cx, cy = cx+dirDx[dir], cy+dirDy[dir] {
				var next = xySquare(cx, cy)
				if next == SquareNone {
					break
				}
				ray = append(ray, next)
			}
			rays[sq][dir] = ray
		}
	}
}

func IsValidSquare(sq int) bool {
	return sq >= 1 && sq <= SquareCount
}

func Row(sq int) int {
	return 1 + (sq-1)/ColumnCount
}

func Column(sq int) int {
	return 1 + (sq-1)%ColumnCount
}

// Neighbor returns the adjacent square in direction dir, or SquareNone at the edge.
func Neighbor(sq, dir int) int {
	return neighbors[sq][dir]
}

// Ray returns the squares from sq (exclusive) to the board edge in direction dir.
func Ray(sq, dir int) []int {
	return rays[sq][dir]
}

// MirrorSquare rotates the board by 180 degrees.
func MirrorSquare(sq int) int {
	return SquareCount + 1 - sq
}

func ParseSquare(s string) (int, error) {
	var sq, err = strconv.Atoi(s)
	if err != nil {
		return SquareNone, fmt.Errorf("bad square %q: %w", s, err)
	}
	if !IsValidSquare(sq) {
		return SquareNone, fmt.Errorf("square %v out of range", sq)
	}
	return sq, nil
}

// squareXY maps a square to 0-based board coordinates (x file, y rank from the top).
func squareXY(sq int) (x, y int) {
	y = Row(sq) - 1
	x = 2 * (Column(sq) - 1)
	if y%2 == 0 {
		x++
	}
	return
}

func xySquare(x, y int) int {
	if x < 0 || x >= 2*ColumnCount || y < 0 || y >= RowCount || (x+y)%2 == 0 {
		return SquareNone
	}
	return y*ColumnCount + x/2 + 1
}
