package lsp

import (
	"strings"
	"testing"
)

func TestDiagnosticsCleanDocument(t *testing.T) {
	diagnostics := Diagnostics([]byte("print(1);\n"))
	if len(diagnostics) != 0 {
		t.Errorf("expected no diagnostics, got %v", diagnostics)
	}
}

func TestDiagnosticsSyntaxError(t *testing.T) {
	diagnostics := Diagnostics([]byte("int ;\n"))
	if len(diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(diagnostics))
	}

	d := diagnostics[0]
	if !strings.Contains(d.Message, "expected variable name") {
		t.Errorf("message = %q", d.Message)
	}
	// the semicolon is at 1:5, zero-based 0:4
	if d.Range.Start.Line != 0 || d.Range.Start.Character != 4 {
		t.Errorf("range start = %d:%d, want 0:4", d.Range.Start.Line, d.Range.Start.Character)
	}
	if d.Range.End.Character != 5 {
		t.Errorf("range end character = %d, want 5", d.Range.End.Character)
	}
}

func TestDiagnosticsLexicalError(t *testing.T) {
	diagnostics := Diagnostics([]byte("print(1.);\n"))
	if len(diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %d", len(diagnostics))
	}
	if !strings.Contains(diagnostics[0].Message, "malformed numeric literal") {
		t.Errorf("message = %q", diagnostics[0].Message)
	}
}
