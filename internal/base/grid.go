package base

import (
	"fmt"
	"iter"
)

// Grid is a fixed-size, dense voxel grid of blocks.
// Cells are stored in one flat slice ordered y, then z, then x.
type Grid struct {
	width, height, length int

	blocks []Block
}

// NewGrid creates a grid with the given dimensions, filled with air.
func NewGrid(width, height, length uint16) *Grid {
	g := &Grid{
		width:  int(width),
		height: int(height),
		length: int(length),
	}
	g.blocks = make([]Block, g.Volume())
	for i := range g.blocks {
		g.blocks[i] = Air
	}
	return g
}

func (g *Grid) index(x, y, z int) int {
	return (y*g.length+z)*g.width + x
}

// Dimensions returns the width (x), height (y) and length (z) of the grid.
func (g *Grid) Dimensions() (int, int, int) {
	return g.width, g.height, g.length
}

// Volume returns the number of cells in the grid.
func (g *Grid) Volume() int {
	return g.width * g.height * g.length
}

// Contains reports whether pos lies inside the grid.
func (g *Grid) Contains(pos Pos) bool {
	x, y, z := pos[0], pos[1], pos[2]
	return x >= 0 && x < g.width && y >= 0 && y < g.height && z >= 0 && z < g.length
}

// Index returns the traversal index of pos. pos must be inside the grid.
func (g *Grid) Index(pos Pos) int {
	return g.index(pos[0], pos[1], pos[2])
}

// At returns the block at the given position.
func (g *Grid) At(x, y, z int) (Block, bool) {
	if !g.Contains(Pos{x, y, z}) {
		return Block{}, false
	}
	return g.blocks[g.index(x, y, z)], true
}

// Set sets the block at the given position. The zero Block is stored as air.
// The grid is left untouched if the position is out of bounds.
func (g *Grid) Set(x, y, z int, block Block) error {
	pos := Pos{x, y, z}
	if !g.Contains(pos) {
		return fmt.Errorf("set block at %v in %dx%dx%d grid: %w", pos, g.width, g.height, g.length, ErrOutOfBounds)
	}
	if block.IsZero() {
		block = Air
	}
	g.blocks[g.index(x, y, z)] = block
	return nil
}

// All iterates over every cell with y outermost, then z, then x.
// Schematic block data is laid out in exactly this order.
func (g *Grid) All() iter.Seq2[Pos, Block] {
	return func(yield func(Pos, Block) bool) {
		i := 0
		for y := range g.height {
			for z := range g.length {
				for x := range g.width {
					if !yield(Pos{x, y, z}, g.blocks[i]) {
						return
					}
					i++
				}
			}
		}
	}
}
