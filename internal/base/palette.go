package base

// Palette manages a mapping between blocks and dense palette indices.
// Indices are assigned in the order blocks are first added.
type Palette struct {
	blocks []Block
	index  map[string]int
}

// NewPalette creates a new empty palette.
func NewPalette() *Palette {
	return &Palette{
		blocks: make([]Block, 0),
		index:  make(map[string]int),
	}
}

// Add adds a block to the palette and returns its index.
// If the block already exists, returns the existing index.
func (p *Palette) Add(block Block) int {
	key := block.String()
	if idx, ok := p.index[key]; ok {
		return idx
	}
	idx := len(p.blocks)
	p.blocks = append(p.blocks, block)
	p.index[key] = idx
	return idx
}

// Size returns the number of entries in the palette.
func (p *Palette) Size() int {
	return len(p.blocks)
}

// Map returns the palette keyed by canonical block string.
func (p *Palette) Map() map[string]int32 {
	m := make(map[string]int32, len(p.blocks))
	for i, block := range p.blocks {
		m[block.String()] = int32(i)
	}
	return m
}

// EncodeGrid walks the grid once in traversal order, building the palette and
// the varint encoded palette index of every cell.
func EncodeGrid(g *Grid) (*Palette, []byte) {
	palette := NewPalette()
	data := make([]byte, 0, g.Volume())
	for _, block := range g.All() {
		data = AppendVarInt(data, palette.Add(block))
	}
	return palette, data
}
