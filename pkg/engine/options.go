package engine

import "fmt"

const (
	DefaultDepth = 8
	MaxDepth     = 64
)

func ValidateDepth(depth int) error {
	if depth < 0 || depth > MaxDepth {
		return fmt.Errorf("depth %v out of range [0, %v]", depth, MaxDepth)
	}
	return nil
}
