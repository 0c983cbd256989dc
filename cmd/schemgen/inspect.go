package main

import (
	"fmt"
	"os"
	"reflect"
	"slices"

	"github.com/oriumgames/mcschem/internal/base"
	"github.com/oriumgames/mcschem/internal/sponge"
	"github.com/spf13/cobra"
)

func inspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <file.schem>",
		Short: "Print the header and palette of a schematic and check its block data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			name, root, err := sponge.ReadHeader(f)
			if err != nil {
				return err
			}
			if name != sponge.RootName {
				return fmt.Errorf("root compound is named %q, want %q", name, sponge.RootName)
			}

			width, _ := root["Width"].(int16)
			height, _ := root["Height"].(int16)
			length, _ := root["Length"].(int16)
			dataVersion, _ := root["DataVersion"].(int32)
			paletteMax, _ := root["PaletteMax"].(int32)
			notice(info, "%dx%dx%d, data version %d (%s)",
				uint16(width), uint16(height), uint16(length), dataVersion, versionLabel(dataVersion))

			palette, _ := root["Palette"].(map[string]any)
			entries := make([]string, len(palette))
			for block, idx := range palette {
				i, ok := idx.(int32)
				if !ok || i < 0 || int(i) >= len(entries) {
					return fmt.Errorf("palette entry %s has index %v", block, idx)
				}
				entries[i] = block
			}
			if int(paletteMax) != len(entries)-1 {
				return fmt.Errorf("PaletteMax %d does not match %d palette entries", paletteMax, len(entries))
			}
			for i, block := range entries {
				fmt.Printf("%4d  %s\n", i, block)
			}

			blockData, err := byteArray(root["BlockData"])
			if err != nil {
				return err
			}
			count := int(uint16(width)) * int(uint16(height)) * int(uint16(length))
			indices, err := base.DecodeVarIntArray(blockData, count)
			if err != nil {
				return fmt.Errorf("block data: %w", err)
			}
			if i := slices.IndexFunc(indices, func(v int) bool { return v >= len(entries) }); i >= 0 {
				return fmt.Errorf("block %d refers to palette index %d", i, indices[i])
			}

			entities, _ := root["BlockEntities"].([]any)
			notice(success, "%d blocks, %d palette entries, %d block entities", count, len(entries), len(entities))
			return nil
		},
	}
}

// byteArray accepts the forms a decoded NBT byte array can take: a slice or
// a fixed size array of bytes.
func byteArray(v any) ([]byte, error) {
	rv := reflect.ValueOf(v)
	if (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) || rv.Type().Elem().Kind() != reflect.Uint8 {
		return nil, fmt.Errorf("BlockData is %T, want byte array", v)
	}
	out := make([]byte, rv.Len())
	reflect.Copy(reflect.ValueOf(out), rv)
	return out, nil
}
