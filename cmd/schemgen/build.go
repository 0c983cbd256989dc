package main

import (
	"os"

	"github.com/oriumgames/mcschem"
	"github.com/oriumgames/mcschem/internal/recipe"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

func buildCmd() *cobra.Command {
	var output string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "build <recipe.yaml>",
		Short: "Build a schematic from a recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := recipe.Load(args[0])
			if err != nil {
				return err
			}

			var onStep func()
			if !quiet && r.Steps() > 0 {
				bar := progressbar.NewOptions(r.Steps(),
					progressbar.OptionSetWriter(os.Stderr),
					progressbar.OptionSetDescription("applying recipe"),
					progressbar.OptionClearOnFinish(),
				)
				onStep = func() { _ = bar.Add(1) }
			}

			s, err := r.Build(onStep)
			if err != nil {
				return err
			}
			return export(s, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "out.schem", "output file")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")
	return cmd
}

func demoCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Write a 3x3x3 sample schematic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := mcschem.New(mcschem.DataVersion1_18_2, 3, 3, 3)
			for _, p := range []struct {
				x, y, z int
				block   string
			}{
				{1, 0, 0, "minecraft:dirt"},
				{0, 1, 0, "minecraft:stone"},
				{0, 0, 1, "minecraft:grass_block"},
			} {
				if err := s.SetBlock(p.x, p.y, p.z, mcschem.MustParseBlock(p.block)); err != nil {
					return err
				}
			}
			return export(s, output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "schematic.schem", "output file")
	return cmd
}

func export(s *mcschem.Schematic, path string) error {
	w, h, l := s.Dimensions()
	notice(info, "exporting %dx%dx%d schematic for %s (data version %d)",
		w, h, l, versionLabel(s.DataVersion()), s.DataVersion())
	if err := mcschem.WriteFile(path, s); err != nil {
		return err
	}
	notice(success, "wrote %s", path)
	return nil
}

func versionLabel(dataVersion int32) string {
	if name := mcschem.VersionName(dataVersion); name != "" {
		return "Minecraft " + name
	}
	return "unknown release"
}
