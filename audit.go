package discordify

import (
	"strings"

	"github.com/riverfjs/discordify-go/internal/parser"
	"github.com/riverfjs/discordify-go/internal/rewrite"
)

// Report summarizes how the images of a document fare in the rewrite.
type Report struct {
	// Images is the number of image nodes in the original document.
	Images int
	// Rewritten is the number of placeholders the rewrite added. Images the
	// parser cannot see, such as ones inside code fences, are counted too.
	Rewritten int
	// Embedded lists destinations of images Discord will still embed.
	Embedded []string
}

// Audit parses document and its rewritten form with goldmark and reports
// which images survive the rewrite as embeddable images.
func Audit(document string, opts ...Option) Report {
	options := applyOptions(opts...)
	before := parser.Images(document)
	segments := rewrite.Rewrite(document, options.Config.BlankGlyph)
	joined := strings.Join(segments, "\n\n")
	after := parser.Images(joined)

	report := Report{
		Images:   len(before),
		Embedded: make([]string, 0, len(after)),
	}
	for _, img := range after {
		report.Embedded = append(report.Embedded, img.Destination)
	}
	marker := "[" + options.Config.BlankGlyph + "]("
	if n := strings.Count(joined, marker) - strings.Count(document, marker); n > 0 {
		report.Rewritten = n
	}
	return report
}
