package mcschem

import (
	"fmt"
	"io"
	"os"

	"github.com/oriumgames/mcschem/internal/sponge"
)

// Export writes the schematic to w as a gzip compressed Sponge Schematic v2.
func (s *Schematic) Export(w io.Writer) error {
	if s.grid.Volume() == 0 {
		return ErrEmptySchematic
	}
	return sponge.WriteV2(w, s.Tree())
}

// Write writes the schematic to w.
func Write(w io.Writer, s *Schematic) error {
	return s.Export(w)
}

// WriteFile writes the schematic to a file. Nothing is created for an empty
// schematic, and a partially written file is removed on failure.
func WriteFile(path string, s *Schematic) error {
	if s.grid.Volume() == 0 {
		return ErrEmptySchematic
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.Export(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("export %s: %w", path, err)
	}
	return f.Close()
}
