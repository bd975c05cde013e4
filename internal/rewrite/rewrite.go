// Package rewrite turns paragraph-leading markdown images into placeholders
// that Discord does not auto-embed.
package rewrite

import (
	"regexp"
	"strings"
)

// imageRe 匹配 "前导文本 + 空行 + ![alt](url)"，. 可跨行，前导与 alt/url 均为非贪婪
var imageRe = regexp.MustCompile(`(?s)(.*?)\n\n!\[(.+?)\]\((.+?)\)`)

// Placeholder builds the rewritten form of an image: the alt text becomes
// glyph and the leading "!" is dropped.
func Placeholder(url, glyph string) string {
	return "[" + glyph + "](" + url + ")"
}

// Rewrite splits document into ordered segments, rewriting every
// blank-line-delimited image into a placeholder appended to the text before
// it. Text following an image, trimmed, is scanned again; what remains after
// the last image becomes the final segment when non-empty.
//
// A document without a match is returned unchanged as the only segment.
func Rewrite(document, glyph string) []string {
	loc := imageRe.FindStringSubmatchIndex(document)
	if loc == nil {
		return []string{document}
	}

	segments := make([]string, 0, 2)
	rest := document
	for loc != nil {
		leading := rest[loc[2]:loc[3]]
		url := rest[loc[6]:loc[7]]
		segments = append(segments, leading+Placeholder(url, glyph))

		next := strings.TrimSpace(rest[loc[1]:])
		if len(next) >= len(rest) {
			// 匹配不可能为空，游标必须前进
			return segments
		}
		rest = next
		loc = imageRe.FindStringSubmatchIndex(rest)
	}

	if rest != "" {
		segments = append(segments, rest)
	}
	return segments
}
