package sponge

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/klauspost/compress/gzip"
	"github.com/oriumgames/mcschem/internal/base"
	"github.com/oriumgames/nbt"
)

// RootName is the name of the root compound of a Sponge schematic.
const RootName = "Schematic"

const tagCompound = 0x0A

// V2 is the NBT structure for Sponge Schematic Version 2
type V2 struct {
	Version       int32            `nbt:"Version"`
	DataVersion   int32            `nbt:"DataVersion"`
	Metadata      map[string]any   `nbt:"Metadata"`
	Width         int16            `nbt:"Width"`
	Height        int16            `nbt:"Height"`
	Length        int16            `nbt:"Length"`
	PaletteMax    int32            `nbt:"PaletteMax"`
	Palette       map[string]int32 `nbt:"Palette"`
	BlockData     []byte           `nbt:"BlockData,array"`
	BlockEntities []map[string]any `nbt:"BlockEntities"`
}

// BlockEntity is a block entity ready to be placed in the tree.
type BlockEntity struct {
	Pos  base.Pos
	ID   string
	Data map[string]any // excluding Pos and Id
}

// Input is everything BuildV2 needs to assemble a schematic.
type Input struct {
	DataVersion   int32
	Grid          *base.Grid
	BlockEntities []BlockEntity
}

// BuildV2 assembles the Sponge v2 tree of a grid. Block entities are emitted
// in grid traversal order of their positions.
func BuildV2(in Input) *V2 {
	width, height, length := in.Grid.Dimensions()
	palette, blockData := base.EncodeGrid(in.Grid)

	data := &V2{
		Version:       2,
		DataVersion:   in.DataVersion,
		Metadata:      map[string]any{},
		Width:         int16(width),
		Height:        int16(height),
		Length:        int16(length),
		PaletteMax:    int32(palette.Size() - 1),
		Palette:       palette.Map(),
		BlockData:     blockData,
		BlockEntities: make([]map[string]any, 0, len(in.BlockEntities)),
	}

	entities := slices.Clone(in.BlockEntities)
	slices.SortFunc(entities, func(a, b BlockEntity) int {
		return in.Grid.Index(a.Pos) - in.Grid.Index(b.Pos)
	})
	for _, be := range entities {
		beData := make(map[string]any, len(be.Data)+2)
		maps.Copy(beData, be.Data)
		beData["Pos"] = [3]int32{int32(be.Pos.X()), int32(be.Pos.Y()), int32(be.Pos.Z())}
		beData["Id"] = be.ID
		data.BlockEntities = append(data.BlockEntities, beData)
	}
	return data
}

// WriteV2 writes the tree as a gzip compressed, big endian NBT compound named Schematic.
func WriteV2(w io.Writer, data *V2) error {
	var body bytes.Buffer
	if err := nbt.NewEncoderWithEncoding(&body, nbt.BigEndian).Encode(*data); err != nil {
		return fmt.Errorf("encode nbt: %w", err)
	}

	// The encoder always writes an unnamed root: tag id followed by a zero length name.
	raw := body.Bytes()
	if len(raw) < 3 || raw[0] != tagCompound || raw[1] != 0 || raw[2] != 0 {
		return fmt.Errorf("encode nbt: unexpected root header % x", raw[:min(len(raw), 3)])
	}

	// Compress and write
	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	header := make([]byte, 0, 3+len(RootName))
	header = append(header, tagCompound)
	header = binary.BigEndian.AppendUint16(header, uint16(len(RootName)))
	header = append(header, RootName...)
	if _, err := gz.Write(header); err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	if _, err := gz.Write(raw[3:]); err != nil {
		return fmt.Errorf("compress: %w", err)
	}
	if err := gz.Close(); err != nil {
		return fmt.Errorf("close gzip: %w", err)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// ReadHeader decompresses a Sponge v2 file and decodes its tree.
// It returns the root name alongside the decoded compound.
func ReadHeader(r io.Reader) (string, map[string]any, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return "", nil, fmt.Errorf("gzip decompress: %w", err)
	}
	defer gz.Close()

	raw, err := io.ReadAll(gz)
	if err != nil {
		return "", nil, fmt.Errorf("read gzip data: %w", err)
	}
	if len(raw) < 3 || raw[0] != tagCompound {
		return "", nil, fmt.Errorf("root is not a compound")
	}
	n := int(binary.BigEndian.Uint16(raw[1:3]))
	if len(raw) < 3+n {
		return "", nil, fmt.Errorf("truncated root name")
	}
	name := string(raw[3 : 3+n])

	var root map[string]any
	if err := nbt.NewDecoderWithEncoding(bytes.NewReader(raw), nbt.BigEndian).Decode(&root); err != nil {
		return "", nil, fmt.Errorf("decode nbt: %w", err)
	}
	return name, root, nil
}
