package mcschem

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/oriumgames/mcschem/internal/sponge"
)

func sample(t *testing.T) *Schematic {
	t.Helper()
	s := New(DataVersion1_18_2, 3, 3, 3)
	for _, c := range []struct {
		x, y, z int
		block   string
	}{
		{1, 0, 0, "minecraft:dirt"},
		{0, 1, 0, "minecraft:stone"},
		{0, 0, 1, "minecraft:grass_block"},
	} {
		if err := s.SetBlock(c.x, c.y, c.z, MustParseBlock(c.block)); err != nil {
			t.Fatalf("set block: %v", err)
		}
	}
	return s
}

func TestParseBlockExample(t *testing.T) {
	b, err := ParseBlock("minecraft:oak_log[axis=y]")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if b.String() != "minecraft:oak_log[axis=y]" {
		t.Fatalf("canonical form = %q", b.String())
	}
	if _, err := ParseBlock("minecraft:oak_log[axis=y"); !errors.Is(err, ErrMalformedBracket) {
		t.Fatalf("expected ErrMalformedBracket, got %v", err)
	}
}

func TestTree(t *testing.T) {
	tree := sample(t).Tree()
	if tree.PaletteMax != 3 || len(tree.Palette) != 4 || len(tree.BlockData) != 27 {
		t.Fatalf("PaletteMax = %d, palette = %v, %d bytes of block data",
			tree.PaletteMax, tree.Palette, len(tree.BlockData))
	}
	if tree.DataVersion != 2975 {
		t.Fatalf("DataVersion = %d", tree.DataVersion)
	}
}

func TestTreeDeterministic(t *testing.T) {
	s := sample(t)
	a, b := s.Tree(), s.Tree()
	if diff := cmp.Diff(a.Palette, b.Palette); diff != "" {
		t.Fatalf("palette differs:\n%s", diff)
	}
	if !bytes.Equal(a.BlockData, b.BlockData) {
		t.Fatalf("block data differs")
	}
}

func TestSetBlockOutOfBounds(t *testing.T) {
	s := sample(t)
	before := s.Tree().BlockData

	err := s.SetBlock(3, 0, 0, MustParseBlock("minecraft:stone"))
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if !bytes.Equal(before, s.Tree().BlockData) {
		t.Fatalf("schematic modified by failed write")
	}
}

func TestSetBlockEntity(t *testing.T) {
	s := sample(t)
	items, err := BarrelSignalStrength(3)
	if err != nil {
		t.Fatalf("items: %v", err)
	}
	if err := s.SetBlockEntity(1, 1, 1, Barrel{Items: items}); err != nil {
		t.Fatalf("set block entity: %v", err)
	}
	if err := s.SetBlockEntity(0, 0, 0, Unknown{Kind: "minecraft:chest", Data: map[string]any{"Lock": "key"}}); err != nil {
		t.Fatalf("set block entity: %v", err)
	}
	if err := s.SetBlockEntity(0, 0, 5, Barrel{}); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := s.SetBlockEntity(2, 2, 2, Barrel{Items: []ItemSlot{{ID: "minecraft:stone", Count: 65}}}); !errors.Is(err, ErrInvalidItem) {
		t.Fatalf("expected ErrInvalidItem, got %v", err)
	}
	if s.BlockEntityCount() != 2 {
		t.Fatalf("count = %d", s.BlockEntityCount())
	}

	tree := s.Tree()
	if len(tree.BlockEntities) != 2 {
		t.Fatalf("tree has %d block entities", len(tree.BlockEntities))
	}
	chest, barrel := tree.BlockEntities[0], tree.BlockEntities[1]
	if chest["Id"] != "minecraft:chest" || chest["Lock"] != "key" || chest["Pos"] != [3]int32{0, 0, 0} {
		t.Fatalf("chest = %v", chest)
	}
	if barrel["Id"] != "minecraft:barrel" || barrel["Pos"] != [3]int32{1, 1, 1} {
		t.Fatalf("barrel = %v", barrel)
	}
	if got := barrel["Items"].([]map[string]any); len(got) != len(items) {
		t.Fatalf("barrel holds %d items, want %d", len(got), len(items))
	}

	if err := s.SetBlockEntity(1, 1, 1, nil); err != nil {
		t.Fatalf("remove: %v", err)
	}
	if s.BlockEntity(1, 1, 1) != nil || s.BlockEntityCount() != 1 {
		t.Fatalf("block entity not removed")
	}
}

func TestExport(t *testing.T) {
	var buf bytes.Buffer
	if err := sample(t).Export(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	name, root, err := sponge.ReadHeader(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if name != "Schematic" {
		t.Fatalf("root name = %q", name)
	}
	if v, _ := root["PaletteMax"].(int32); v != 3 {
		t.Fatalf("PaletteMax = %v", root["PaletteMax"])
	}
}

func TestExportDecodesToSameTree(t *testing.T) {
	s := sample(t)
	if err := s.SetBlockEntity(2, 2, 2, Unknown{Kind: "minecraft:chest", Data: map[string]any{"Lock": "a", "CustomName": "b"}}); err != nil {
		t.Fatalf("set block entity: %v", err)
	}
	var first map[string]any
	for i := range 5 {
		var buf bytes.Buffer
		if err := s.Export(&buf); err != nil {
			t.Fatalf("export: %v", err)
		}
		_, root, err := sponge.ReadHeader(&buf)
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		if i == 0 {
			first = root
			continue
		}
		if diff := cmp.Diff(first, root); diff != "" {
			t.Fatalf("export %d decodes differently (-first +got):\n%s", i, diff)
		}
	}
}

func TestExportEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := New(DataVersion1_18_2, 0, 4, 4).Export(&buf); !errors.Is(err, ErrEmptySchematic) {
		t.Fatalf("expected ErrEmptySchematic, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("wrote %d bytes", buf.Len())
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.schem")
	if err := WriteFile(path, sample(t)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if len(data) < 2 || data[0] != 0x1F || data[1] != 0x8B {
		t.Fatalf("output is not gzip compressed")
	}
}

func TestWriteFileEmptyLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.schem")
	if err := WriteFile(path, New(DataVersion1_18_2, 4, 0, 4)); !errors.Is(err, ErrEmptySchematic) {
		t.Fatalf("expected ErrEmptySchematic, got %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no file at %s, stat: %v", path, err)
	}
}
