// Package article fetches wiki articles and separates their front matter
// from the markdown body that gets posted.
package article

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/adrg/frontmatter"
)

// Article is a fetched wiki page.
type Article struct {
	Name  string
	Title string
	Tags  []string
	Body  string
}

type frontMatterEnvelope struct {
	Title string   `yaml:"title" toml:"title" json:"title"`
	Tags  []string `yaml:"tags"  toml:"tags"  json:"tags"`
}

// Filename normalizes a logical article name into the file path under the
// content base: surrounding whitespace and leading slashes are dropped and
// ".md" is appended when missing.
func Filename(name string) string {
	name = strings.TrimLeft(strings.TrimSpace(name), "/")
	if name == "" {
		return ""
	}
	if !strings.HasSuffix(name, ".md") {
		name += ".md"
	}
	return name
}

// Parse builds an Article from raw markdown. With stripFrontMatter the
// leading front matter block is decoded into Title and Tags and removed from
// Body; otherwise Body is the raw text.
func Parse(name string, raw []byte, stripFrontMatter bool) (*Article, error) {
	a := &Article{Name: name, Body: string(raw)}
	if !stripFrontMatter {
		return a, nil
	}

	var meta frontMatterEnvelope
	body, err := frontmatter.Parse(bytes.NewReader(raw), &meta)
	if err != nil {
		return nil, fmt.Errorf("parse frontmatter of %s: %w", name, err)
	}

	a.Title = meta.Title
	a.Tags = meta.Tags
	a.Body = string(body)
	return a, nil
}
