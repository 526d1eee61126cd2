package worker

import (
	"bytes"
	"strings"
	"testing"
)

func TestContentLines(t *testing.T) {
	content := "<h1>CONTRATO</h1>\n\n<p>Entre <strong>Ana</strong> y Beto.</p>\n"
	lines := contentLines(content)
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2: %v", len(lines), lines)
	}
	if lines[0] != "CONTRATO" {
		t.Errorf("line 0 = %q", lines[0])
	}
	if lines[1] != "Entre Ana y Beto." {
		t.Errorf("line 1 = %q", lines[1])
	}
}

func TestRenderPDFStructure(t *testing.T) {
	pdf := renderPDF([]string{"Contrato de Prueba", "Cláusula primera"})

	if !bytes.HasPrefix(pdf, []byte("%PDF-1.4")) {
		t.Error("missing PDF header")
	}
	if !bytes.Contains(pdf, []byte("%%EOF")) {
		t.Error("missing EOF marker")
	}
	if !bytes.Contains(pdf, []byte("/Type /Catalog")) {
		t.Error("missing catalog object")
	}
	if !bytes.Contains(pdf, []byte("(Contrato de Prueba) Tj")) {
		t.Error("missing text content")
	}
	if !bytes.Contains(pdf, []byte("/Count 1")) {
		t.Error("two short lines should fit one page")
	}
}

func TestRenderPDFPaginates(t *testing.T) {
	lines := make([]string, 120)
	for i := range lines {
		lines[i] = "línea"
	}
	pdf := renderPDF(lines)
	if !bytes.Contains(pdf, []byte("/Count 3")) {
		t.Error("120 lines at 54 per page should span 3 pages")
	}
}

func TestRenderPDFEmptyInput(t *testing.T) {
	pdf := renderPDF(nil)
	if !bytes.Contains(pdf, []byte("/Count 1")) {
		t.Error("empty input should still produce one page")
	}
}

func TestRenderPDFDeterministic(t *testing.T) {
	a := renderPDF([]string{"misma entrada"})
	b := renderPDF([]string{"misma entrada"})
	if !bytes.Equal(a, b) {
		t.Error("identical input rendered different bytes")
	}
}

func TestEscapePDFText(t *testing.T) {
	got := escapePDFText(`a(b)c\d`)
	want := `a\(b\)c\\d`
	if got != want {
		t.Errorf("escapePDFText = %q, want %q", got, want)
	}
	if strings.Contains(escapePDFText("plain"), `\`) {
		t.Error("plain text should not be escaped")
	}
}
