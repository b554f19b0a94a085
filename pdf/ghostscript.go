package pdf

import (
	"fmt"
	"time"
)

// ExternalTool abstracts the external compressor so the fallback and
// failure paths can be exercised without the real binary.
type ExternalTool interface {
	// Probe reports whether the tool is installed and invocable.
	Probe() bool

	// Run compresses inFile into outFile using the preset's parameters.
	Run(inFile, outFile string, preset Preset) error
}

// Ghostscript drives the gs binary.
type Ghostscript struct {
	Binary  string
	Timeout time.Duration
}

// NewGhostscript returns a Ghostscript tool, falling back to package
// defaults for zero values.
func NewGhostscript(binary string, timeout time.Duration) *Ghostscript {
	if binary == "" {
		binary = DefaultGhostscriptBinary
	}
	if timeout <= 0 {
		timeout = DefaultCompressTimeout
	}
	return &Ghostscript{Binary: binary, Timeout: timeout}
}

// Probe runs a version call with a short timeout.
func (g *Ghostscript) Probe() bool {
	_, err := execCommandWithTimeout(ProbeTimeout, g.Binary, "--version")
	return err == nil
}

// Run invokes gs with the preset's quality and downsampling parameters.
// A timeout counts as a failed run.
func (g *Ghostscript) Run(inFile, outFile string, preset Preset) error {
	output, err := execCommandWithTimeout(g.Timeout, g.Binary, ghostscriptArgs(inFile, outFile, preset)...)
	if err != nil {
		if len(output) > 0 {
			return fmt.Errorf("%s: %v: %s", g.Binary, err, output)
		}
		return fmt.Errorf("%s: %v", g.Binary, err)
	}
	return nil
}

func ghostscriptArgs(inFile, outFile string, preset Preset) []string {
	args := []string{
		"-sDEVICE=pdfwrite",
		"-dCompatibilityLevel=1.4",
		"-dPDFSETTINGS=" + preset.GSQuality,
		"-dNOPAUSE",
		"-dQUIET",
		"-dBATCH",
	}
	if preset.Downsample {
		args = append(args,
			"-dDownsampleColorImages=true",
			fmt.Sprintf("-dColorImageResolution=%d", DownsampleDPI),
			"-dDownsampleGrayImages=true",
			fmt.Sprintf("-dGrayImageResolution=%d", DownsampleDPI),
			"-dDownsampleMonoImages=true",
			fmt.Sprintf("-dMonoImageResolution=%d", DownsampleDPI),
		)
	}
	if preset.ConvertToRGB {
		args = append(args,
			"-sColorConversionStrategy=RGB",
			"-dProcessColorModel=/DeviceRGB",
		)
	}
	if preset.SubsetFonts {
		args = append(args,
			"-dSubsetFonts=true",
			"-dEmbedAllFonts=true",
		)
	}
	return append(args, "-sOutputFile="+outFile, inFile)
}
