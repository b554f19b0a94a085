package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"testing"
)

// buildPDF returns a minimal but structurally valid PDF with n pages.
// Object offsets in the xref table are computed while writing so the
// parser accepts the file without repair.
func buildPDF(t *testing.T, n int) []byte {
	t.Helper()
	if n < 1 {
		t.Fatalf("buildPDF requires at least one page, got %d", n)
	}

	var buf bytes.Buffer
	var offsets []int

	buf.WriteString("%PDF-1.4\n")
	// pdfcpu locates the xref section by reading the trailing 512 bytes
	// of the file, so a tiny document must be padded past that. A comment
	// line keeps the padding out of the object graph.
	buf.WriteString("%" + strings.Repeat("p", 600) + "\n")

	addObj := func(body string) {
		offsets = append(offsets, buf.Len())
		buf.WriteString(body)
	}

	var kids bytes.Buffer
	for i := 0; i < n; i++ {
		if i > 0 {
			kids.WriteByte(' ')
		}
		fmt.Fprintf(&kids, "%d 0 R", i+3)
	}

	addObj("1 0 obj\n<< /Type /Catalog /Pages 2 0 R >>\nendobj\n")
	addObj(fmt.Sprintf("2 0 obj\n<< /Type /Pages /Kids [%s] /Count %d >>\nendobj\n", kids.String(), n))
	for i := 0; i < n; i++ {
		addObj(fmt.Sprintf("%d 0 obj\n<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>\nendobj\n", i+3))
	}

	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(offsets)+1)
	buf.WriteString("0000000000 65535 f \n")
	for _, off := range offsets {
		fmt.Fprintf(&buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(offsets)+1, xrefPos)

	return buf.Bytes()
}
