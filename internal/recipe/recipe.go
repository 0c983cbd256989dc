// Package recipe describes schematic builds in YAML.
package recipe

import (
	"errors"
	"fmt"
	"os"

	"github.com/oriumgames/mcschem"
	"gopkg.in/yaml.v3"
)

// Recipe is a declarative schematic build. Steps run in order: fills, then
// single blocks, then barrels.
type Recipe struct {
	// DataVersion takes precedence over Version when both are set.
	DataVersion int32          `yaml:"data_version"`
	Version     string         `yaml:"version"`
	Size        [3]uint16      `yaml:"size"`
	Fill        []Fill         `yaml:"fill"`
	Blocks      []Placement    `yaml:"blocks"`
	Barrels     []BarrelRecipe `yaml:"barrels"`
}

// Fill sets every block in the box between two corners, inclusive.
type Fill struct {
	From  [3]int `yaml:"from"`
	To    [3]int `yaml:"to"`
	Block string `yaml:"block"`
}

// Placement sets a single block.
type Placement struct {
	Pos   [3]int `yaml:"pos"`
	Block string `yaml:"block"`
}

// BarrelRecipe places a barrel. Either Signal or Items fills it.
type BarrelRecipe struct {
	Pos    [3]int `yaml:"pos"`
	Facing string `yaml:"facing"`
	Signal *int   `yaml:"signal"`
	Items  []Item `yaml:"items"`
}

// Item is a stack inside a barrel.
type Item struct {
	ID    string `yaml:"id"`
	Count int    `yaml:"count"`
	Slot  int    `yaml:"slot"`
}

// Load reads and validates a recipe file.
func Load(path string) (*Recipe, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	r, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return r, nil
}

// Parse decodes and validates a recipe.
func Parse(data []byte) (*Recipe, error) {
	var r Recipe
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return &r, nil
}

func (r *Recipe) validate() error {
	if r.Size[0] == 0 || r.Size[1] == 0 || r.Size[2] == 0 {
		return fmt.Errorf("size %v: every dimension must be positive", r.Size)
	}
	if _, err := r.dataVersion(); err != nil {
		return err
	}
	for i, f := range r.Fill {
		if _, err := mcschem.ParseBlock(f.Block); err != nil {
			return fmt.Errorf("fill %d: %w", i, err)
		}
	}
	for i, p := range r.Blocks {
		if _, err := mcschem.ParseBlock(p.Block); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
	}
	for i, b := range r.Barrels {
		if b.Signal != nil && len(b.Items) > 0 {
			return fmt.Errorf("barrel %d: signal and items are mutually exclusive", i)
		}
	}
	return nil
}

func (r *Recipe) dataVersion() (int32, error) {
	if r.DataVersion != 0 {
		return r.DataVersion, nil
	}
	if r.Version == "" {
		return mcschem.DataVersion1_18_2, nil
	}
	v, ok := mcschem.DataVersionOf(r.Version)
	if !ok {
		return 0, fmt.Errorf("unknown version %q", r.Version)
	}
	return v, nil
}

// Steps returns the number of times Apply calls its step callback.
func (r *Recipe) Steps() int {
	return len(r.Fill) + len(r.Blocks) + len(r.Barrels)
}

// New creates an empty schematic sized and versioned after the recipe.
func (r *Recipe) New() (*mcschem.Schematic, error) {
	dv, err := r.dataVersion()
	if err != nil {
		return nil, err
	}
	return mcschem.New(dv, r.Size[0], r.Size[1], r.Size[2]), nil
}

// Build creates a schematic and applies the recipe to it.
func (r *Recipe) Build(onStep func()) (*mcschem.Schematic, error) {
	s, err := r.New()
	if err != nil {
		return nil, err
	}
	if err := r.Apply(s, onStep); err != nil {
		return nil, err
	}
	return s, nil
}

// Apply runs every step of the recipe against s. onStep, if not nil, is
// called after each step.
func (r *Recipe) Apply(s *mcschem.Schematic, onStep func()) error {
	step := func() {
		if onStep != nil {
			onStep()
		}
	}

	for i, f := range r.Fill {
		if err := fill(s, f); err != nil {
			return fmt.Errorf("fill %d: %w", i, err)
		}
		step()
	}
	for i, p := range r.Blocks {
		b, err := mcschem.ParseBlock(p.Block)
		if err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		if err := s.SetBlock(p.Pos[0], p.Pos[1], p.Pos[2], b); err != nil {
			return fmt.Errorf("block %d: %w", i, err)
		}
		step()
	}
	for i, b := range r.Barrels {
		if err := barrel(s, b); err != nil {
			return fmt.Errorf("barrel %d: %w", i, err)
		}
		step()
	}
	return nil
}

func fill(s *mcschem.Schematic, f Fill) error {
	b, err := mcschem.ParseBlock(f.Block)
	if err != nil {
		return err
	}
	w, h, l := s.Dimensions()
	for _, c := range [][3]int{f.From, f.To} {
		if c[0] < 0 || c[0] >= w || c[1] < 0 || c[1] >= h || c[2] < 0 || c[2] >= l {
			return fmt.Errorf("corner %v: %w", c, mcschem.ErrOutOfBounds)
		}
	}

	var lo, hi [3]int
	for i := range 3 {
		lo[i], hi[i] = min(f.From[i], f.To[i]), max(f.From[i], f.To[i])
	}
	for y := lo[1]; y <= hi[1]; y++ {
		for z := lo[2]; z <= hi[2]; z++ {
			for x := lo[0]; x <= hi[0]; x++ {
				if err := s.SetBlock(x, y, z, b); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

var errNoContents = errors.New("barrel needs signal or items")

func barrel(s *mcschem.Schematic, r BarrelRecipe) error {
	var items []mcschem.ItemSlot
	switch {
	case r.Signal != nil:
		var err error
		if items, err = mcschem.BarrelSignalStrength(*r.Signal); err != nil {
			return err
		}
	case len(r.Items) > 0:
		for _, it := range r.Items {
			items = append(items, mcschem.ItemSlot{ID: it.ID, Count: it.Count, Slot: it.Slot})
		}
	default:
		return errNoContents
	}

	facing := r.Facing
	if facing == "" {
		facing = "up"
	}
	block := mcschem.NewBlock("minecraft:barrel", map[string]string{"facing": facing, "open": "false"})

	x, y, z := r.Pos[0], r.Pos[1], r.Pos[2]
	if err := s.SetBlockEntity(x, y, z, mcschem.Barrel{Items: items}); err != nil {
		return err
	}
	return s.SetBlock(x, y, z, block)
}
