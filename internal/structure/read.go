package structure

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Read parses a structure file, dispatching on the file extension
// (or basename for VASP files, which conventionally have none).
func Read(path string) (*Structure, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("structure: %w", err)
	}
	defer f.Close()

	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))
	switch {
	case ext == ".cif":
		return ReadCIF(f)
	case ext == ".xyz" || ext == ".extxyz":
		return ReadXYZ(f)
	case ext == ".vasp" || ext == ".poscar",
		strings.HasPrefix(base, "POSCAR"), strings.HasPrefix(base, "CONTCAR"):
		return ReadPOSCAR(f)
	default:
		return nil, fmt.Errorf("structure: unsupported format %q", base)
	}
}
