package digest

import (
	"regexp"
	"strings"
)

// The rupee sign as it comes back when UTF-8 bytes are decoded as
// Windows-1252 somewhere in the generative backend's output path.
const mangledRupee = "â‚¹"

var excessBlankLines = regexp.MustCompile(`\n{3,}`)

// Cleanup applies the deterministic text rewrite over the fully
// assembled document: the mis-decoded currency glyph is restored, stray
// emphasis markers are stripped, and runs of blank lines are collapsed.
// It runs after all generative output is concatenated so cross-fragment
// artifacts are corrected too. Applying it twice equals applying it once.
func Cleanup(text string) string {
	text = strings.ReplaceAll(text, mangledRupee, "₹")
	text = strings.ReplaceAll(text, "**", "")
	text = strings.ReplaceAll(text, "##", "")
	text = excessBlankLines.ReplaceAllString(text, "\n\n")
	return strings.TrimSpace(text)
}
