package digest

import (
	"strings"
	"testing"
)

func TestCleanup_RestoresRupeeGlyph(t *testing.T) {
	input := "Loan cap raised to â‚¹5 lakh for small borrowers"

	result := Cleanup(input)

	if !strings.Contains(result, "₹5 lakh") {
		t.Errorf("Expected rupee glyph restored, got: %q", result)
	}
	if strings.Contains(result, "â‚¹") {
		t.Errorf("Expected mangled glyph removed, got: %q", result)
	}
}

func TestCleanup_StripsEmphasisMarkers(t *testing.T) {
	input := "🔷 HEADLINE: **RBI policy** update\n## Key points\nRepo rate **unchanged**"

	result := Cleanup(input)

	if strings.Contains(result, "**") || strings.Contains(result, "##") {
		t.Errorf("Expected emphasis markers stripped, got: %q", result)
	}
	if !strings.Contains(result, "RBI policy") {
		t.Errorf("Expected inner text preserved, got: %q", result)
	}
}

func TestCleanup_CollapsesBlankLines(t *testing.T) {
	input := "Section one\n\n\n\n\nSection two"

	result := Cleanup(input)

	if result != "Section one\n\nSection two" {
		t.Errorf("Expected blank lines collapsed, got: %q", result)
	}
}

func TestCleanup_Idempotent(t *testing.T) {
	input := "Fine of â‚¹500 **imposed**\n\n\n\n## on defaulters   "

	once := Cleanup(input)
	twice := Cleanup(once)

	if once != twice {
		t.Errorf("Cleanup not idempotent:\nonce:  %q\ntwice: %q", once, twice)
	}
}
