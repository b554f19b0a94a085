package pdf

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Method identifies which rewrite strategy actually produced the output.
// Reported to the caller for observability; it does not affect validity.
type Method string

const (
	MethodNone     Method = "none"
	MethodRewrite  Method = "document-model-rewrite"
	MethodExternal Method = "external-compressor"
)

// Result is the pipeline's output artifact.
type Result struct {
	Data   []byte
	Method Method
	Level  Level
	Pages  int
}

// Pipeline merges uploaded documents and rewrites the merged bytes
// according to the requested level.
//
// Strategy per level: LevelNone returns the merge result verbatim and
// never touches the external tool. For LevelMedium and LevelHigh the
// external tool is probed first; if present it is used, and a failed run
// is terminal. If absent, the in-process document-model rewrite runs
// instead and the request still succeeds.
type Pipeline struct {
	Tool ExternalTool
}

func NewPipeline(tool ExternalTool) *Pipeline {
	return &Pipeline{Tool: tool}
}

// Run executes the merge stage followed by the compression stage inside
// workDir. workDir must be private to the calling request; the pipeline
// never removes it.
func (p *Pipeline) Run(workDir string, inputs [][]byte, level Level) (*Result, error) {
	merged, pages, err := Merge(workDir, inputs)
	if err != nil {
		return nil, err
	}

	data, method, err := p.compress(workDir, merged, level)
	if err != nil {
		return nil, err
	}

	return &Result{Data: data, Method: method, Level: level, Pages: pages}, nil
}

// compress rewrites the merged bytes. It only ever reads merged, never
// the original inputs.
func (p *Pipeline) compress(workDir string, merged []byte, level Level) ([]byte, Method, error) {
	if level == LevelNone {
		return merged, MethodNone, nil
	}

	preset, ok := presets[level]
	if !ok {
		return nil, "", fmt.Errorf("no preset for compression level %d", int(level))
	}

	inFile := filepath.Join(workDir, "compress_in.pdf")
	outFile := filepath.Join(workDir, "compress_out.pdf")
	if err := os.WriteFile(inFile, merged, 0644); err != nil {
		return nil, "", fmt.Errorf("failed to stage merged document: %w", err)
	}

	if p.Tool != nil && p.Tool.Probe() {
		if err := p.Tool.Run(inFile, outFile, preset); err != nil {
			return nil, "", fmt.Errorf("%w: %v", ErrCompressionFailed, err)
		}
		data, err := os.ReadFile(outFile)
		if err != nil {
			return nil, "", fmt.Errorf("%w: compressor produced no output file", ErrCompressionFailed)
		}
		if len(data) == 0 {
			return nil, "", fmt.Errorf("%w: compressor produced an empty output file", ErrCompressionFailed)
		}
		return data, MethodExternal, nil
	}

	if err := rewrite(inFile, outFile, preset); err != nil {
		return nil, "", err
	}
	data, err := os.ReadFile(outFile)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read rewritten output: %w", err)
	}
	return data, MethodRewrite, nil
}

// rewrite is the in-process path: pdfcpu optimization with object and
// xref streams enabled, plus stream deduplication and metadata stripping
// on the high preset.
func rewrite(inFile, outFile string, preset Preset) error {
	conf := newConfiguration()
	conf.WriteObjectStream = true
	conf.WriteXRefStream = true
	conf.OptimizeDuplicateContentStreams = preset.DedupeStreams

	if err := pdfapi.OptimizeFile(inFile, outFile, conf); err != nil {
		return fmt.Errorf("optimize failed: %w", err)
	}

	if preset.StripMetadata {
		stripMetadata(outFile, conf)
	}
	return nil
}

// stripMetadata clears keywords and custom document properties in place.
// Best effort: a document without metadata to strip is not a failure.
func stripMetadata(file string, conf *model.Configuration) {
	if err := pdfapi.RemoveKeywordsFile(file, file, nil, conf); err != nil {
		log.Printf("keyword strip skipped for %s: %v", file, err)
	}
	if err := pdfapi.RemovePropertiesFile(file, file, nil, conf); err != nil {
		log.Printf("property strip skipped for %s: %v", file, err)
	}
}
