package pdf

import (
	"strings"
	"testing"
)

func hasArg(args []string, want string) bool {
	for _, a := range args {
		if a == want {
			return true
		}
	}
	return false
}

func TestGhostscriptArgsMedium(t *testing.T) {
	args := ghostscriptArgs("in.pdf", "out.pdf", presets[LevelMedium])

	if !hasArg(args, "-dPDFSETTINGS=/ebook") {
		t.Error("Medium preset must request ebook quality")
	}
	for _, a := range args {
		if strings.Contains(a, "Downsample") || strings.Contains(a, "ColorConversion") {
			t.Errorf("Medium preset must not force %s", a)
		}
	}
	if args[len(args)-1] != "in.pdf" || args[len(args)-2] != "-sOutputFile=out.pdf" {
		t.Errorf("Unexpected trailing args: %v", args[len(args)-2:])
	}
}

func TestGhostscriptArgsHigh(t *testing.T) {
	args := ghostscriptArgs("in.pdf", "out.pdf", presets[LevelHigh])

	for _, want := range []string{
		"-dDownsampleColorImages=true",
		"-dColorImageResolution=150",
		"-dGrayImageResolution=150",
		"-dMonoImageResolution=150",
		"-sColorConversionStrategy=RGB",
		"-dSubsetFonts=true",
		"-dEmbedAllFonts=true",
	} {
		if !hasArg(args, want) {
			t.Errorf("High preset missing %s", want)
		}
	}
}

func TestNewGhostscriptDefaults(t *testing.T) {
	g := NewGhostscript("", 0)
	if g.Binary != DefaultGhostscriptBinary {
		t.Errorf("Expected default binary %q, got %q", DefaultGhostscriptBinary, g.Binary)
	}
	if g.Timeout != DefaultCompressTimeout {
		t.Errorf("Expected default timeout %v, got %v", DefaultCompressTimeout, g.Timeout)
	}
}

func TestGhostscriptProbeMissingBinary(t *testing.T) {
	g := NewGhostscript("definitely-not-a-real-binary-name", 0)
	if g.Probe() {
		t.Error("Probe must report false for a missing binary")
	}
}
