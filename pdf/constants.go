package pdf

import "time"

const (
	// DefaultGhostscriptBinary is the gs executable looked up in PATH.
	DefaultGhostscriptBinary = "gs"

	// ProbeTimeout bounds the cheap version probe of the external compressor.
	ProbeTimeout = 5 * time.Second

	// DefaultCompressTimeout bounds a single external compressor invocation.
	// A run exceeding it fails the request; it is never retried.
	DefaultCompressTimeout = 120 * time.Second

	// DownsampleDPI is the fixed resolution images are reduced to on the
	// high preset, applied to color, gray and mono channels alike.
	DownsampleDPI = 150
)

// Preset carries the tuning knobs for one compression level, covering both
// the external compressor invocation and the in-process rewrite fallback.
type Preset struct {
	GSQuality     string // Ghostscript -dPDFSETTINGS value
	Downsample    bool   // force image downsampling to DownsampleDPI
	ConvertToRGB  bool   // convert CMYK color spaces to RGB
	SubsetFonts   bool   // force font subsetting and embedding
	DedupeStreams bool   // in-process: eliminate duplicate content streams
	StripMetadata bool   // in-process: clear keywords and custom properties
}

var presets = map[Level]Preset{
	LevelMedium: {
		GSQuality: "/ebook",
	},
	LevelHigh: {
		GSQuality:     "/ebook",
		Downsample:    true,
		ConvertToRGB:  true,
		SubsetFonts:   true,
		DedupeStreams: true,
		StripMetadata: true,
	},
}
