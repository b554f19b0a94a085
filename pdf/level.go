package pdf

import (
	"fmt"
	"strconv"
)

// Level selects how aggressively the merged document is rewritten.
type Level int

const (
	// LevelNone returns the merge result verbatim.
	LevelNone Level = iota

	// LevelMedium applies a moderate rewrite: ebook-grade output on the
	// external compressor, object-stream consolidation in-process.
	LevelMedium

	// LevelHigh applies the most aggressive available rewrite: fixed-DPI
	// image downsampling, RGB conversion and forced font subsetting on the
	// external compressor; duplicate stream elimination and metadata
	// stripping in-process.
	LevelHigh
)

// ParseLevel parses the form-string representation of a compression level.
func ParseLevel(s string) (Level, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("compression level must be numeric, got %q", s)
	}
	if n < int(LevelNone) || n > int(LevelHigh) {
		return 0, fmt.Errorf("compression level must be 0, 1 or 2, got %d", n)
	}
	return Level(n), nil
}

func (l Level) String() string {
	switch l {
	case LevelNone:
		return "none"
	case LevelMedium:
		return "medium"
	case LevelHigh:
		return "high"
	default:
		return fmt.Sprintf("level(%d)", int(l))
	}
}
