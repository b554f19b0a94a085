package pdf

import (
	"fmt"
	"os"
	"path/filepath"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

func newConfiguration() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	return conf
}

// Merge parses every input as a PDF and concatenates their pages into a
// single document: all pages of the first input in their original order,
// then all pages of the second, and so on. Any unparseable input aborts
// the merge. Returns the merged bytes and the total page count.
//
// workDir must be a directory private to the calling request; staged
// files are left for the caller's directory cleanup.
func Merge(workDir string, inputs [][]byte) ([]byte, int, error) {
	if len(inputs) == 0 {
		return nil, 0, fmt.Errorf("merge requires at least one input document")
	}

	inFiles := make([]string, len(inputs))
	for i, data := range inputs {
		name := filepath.Join(workDir, fmt.Sprintf("input_%03d.pdf", i))
		if err := os.WriteFile(name, data, 0644); err != nil {
			return nil, 0, fmt.Errorf("failed to stage input %d: %w", i, err)
		}
		inFiles[i] = name
	}

	conf := newConfiguration()
	if err := pdfapi.ValidateFiles(inFiles, conf); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	outFile := filepath.Join(workDir, "merged.pdf")
	if err := pdfapi.MergeCreateFile(inFiles, outFile, false, conf); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	pages, err := pdfapi.PageCountFile(outFile)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count merged pages: %w", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read merged output: %w", err)
	}
	return data, pages, nil
}

// PageCount parses data as a PDF and returns its page count, staging the
// bytes in workDir.
func PageCount(workDir string, data []byte) (int, error) {
	f, err := os.CreateTemp(workDir, "count_*.pdf")
	if err != nil {
		return 0, fmt.Errorf("failed to stage document: %w", err)
	}
	name := f.Name()
	if _, err := f.Write(data); err != nil {
		f.Close()
		return 0, fmt.Errorf("failed to stage document: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("failed to stage document: %w", err)
	}

	pages, err := pdfapi.PageCountFile(name)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return pages, nil
}
