// Package mcschem builds voxel structures in memory and exports them as
// Sponge Schematic v2 (.schem) files.
package mcschem

import (
	"errors"
	"fmt"
	"iter"

	"github.com/oriumgames/mcschem/internal/base"
	"github.com/oriumgames/mcschem/internal/sponge"
)

// Block is an immutable block identifier with properties, e.g. minecraft:oak_log[axis=y].
type Block = base.Block

// Tree is the Sponge v2 NBT structure handed to the encoder.
type Tree = sponge.V2

// Pos is a position inside a schematic, as x, y, z.
type Pos = base.Pos

var (
	// ErrMalformedBracket is returned by ParseBlock for an unterminated property list.
	ErrMalformedBracket = base.ErrMalformedBracket
	// ErrMissingEquals is returned by ParseBlock for a property clause without '='.
	ErrMissingEquals = base.ErrMissingEquals
	// ErrOutOfBounds is returned when a block or block entity is placed outside the schematic.
	ErrOutOfBounds = base.ErrOutOfBounds
	// ErrEmptySchematic is returned when exporting a schematic with no cells.
	ErrEmptySchematic = errors.New("schematic has zero volume")
)

// Air is minecraft:air, the block every new schematic is filled with.
var Air = base.Air

// ParseBlock parses a block in the form id or id[key=value,...].
func ParseBlock(s string) (Block, error) {
	return base.ParseBlock(s)
}

// MustParseBlock is like ParseBlock but panics if s is malformed.
func MustParseBlock(s string) Block {
	return base.MustParseBlock(s)
}

// NewBlock creates a block from an identifier and its properties.
func NewBlock(id string, properties map[string]string) Block {
	return base.NewBlock(id, properties)
}

// Schematic is a fixed-size voxel structure together with its block entities.
// It is not safe for concurrent use.
type Schematic struct {
	dataVersion   int32
	grid          *base.Grid
	blockEntities map[Pos]BlockEntity
}

// New creates a schematic of the given size filled with air. dataVersion
// identifies the Minecraft data version the blocks belong to.
func New(dataVersion int32, width, height, length uint16) *Schematic {
	return &Schematic{
		dataVersion:   dataVersion,
		grid:          base.NewGrid(width, height, length),
		blockEntities: make(map[Pos]BlockEntity),
	}
}

// DataVersion returns the Minecraft data version of the schematic.
func (s *Schematic) DataVersion() int32 {
	return s.dataVersion
}

// Dimensions returns the width (x), height (y) and length (z) of the schematic.
func (s *Schematic) Dimensions() (width, height, length int) {
	return s.grid.Dimensions()
}

// Block returns the block at the given position.
// It returns false if the position is outside the schematic.
func (s *Schematic) Block(x, y, z int) (Block, bool) {
	return s.grid.At(x, y, z)
}

// SetBlock sets a block at the given position.
func (s *Schematic) SetBlock(x, y, z int, block Block) error {
	return s.grid.Set(x, y, z, block)
}

// Blocks iterates over all positions in export order: y, then z, then x.
func (s *Schematic) Blocks() iter.Seq2[Pos, Block] {
	return s.grid.All()
}

// BlockEntity returns the block entity at the given position, or nil.
func (s *Schematic) BlockEntity(x, y, z int) BlockEntity {
	return s.blockEntities[Pos{x, y, z}]
}

// SetBlockEntity sets a block entity at the given position.
// Pass nil to remove the block entity.
func (s *Schematic) SetBlockEntity(x, y, z int, be BlockEntity) error {
	pos := Pos{x, y, z}
	if !s.grid.Contains(pos) {
		w, h, l := s.grid.Dimensions()
		return fmt.Errorf("set block entity at %v in %dx%dx%d schematic: %w", pos, w, h, l, ErrOutOfBounds)
	}
	if be == nil {
		delete(s.blockEntities, pos)
		return nil
	}
	if v, ok := be.(interface{ Validate() error }); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("block entity %s at %v: %w", be.ID(), pos, err)
		}
	}
	s.blockEntities[pos] = be
	return nil
}

// BlockEntityCount returns the number of block entities in the schematic.
func (s *Schematic) BlockEntityCount() int {
	return len(s.blockEntities)
}

// Tree assembles the Sponge v2 tree that Export encodes.
// The palette is rebuilt from scratch on every call.
func (s *Schematic) Tree() *Tree {
	entities := make([]sponge.BlockEntity, 0, len(s.blockEntities))
	for pos, be := range s.blockEntities {
		entities = append(entities, sponge.BlockEntity{
			Pos:  pos,
			ID:   be.ID(),
			Data: be.EncodeNBT(),
		})
	}
	return sponge.BuildV2(sponge.Input{
		DataVersion:   s.dataVersion,
		Grid:          s.grid,
		BlockEntities: entities,
	})
}
