// Package chunker splits a segment into chunks no longer than the configured
// maximum, breaking on line and token boundaries whenever possible.
package chunker

import (
	"strings"

	"github.com/riverfjs/discordify-go/internal/buffer"
	"github.com/riverfjs/discordify-go/internal/tokenizer"
	"github.com/riverfjs/discordify-go/internal/types"
	"github.com/riverfjs/discordify-go/internal/util"
)

// Chunker packs lines and tokens into length-bounded chunks.
// A Chunker is stateless between calls and safe for concurrent use.
type Chunker struct {
	cfg types.SplitConfig
}

// New creates a Chunker for cfg. A nil cfg uses the defaults.
func New(cfg *types.SplitConfig) *Chunker {
	if cfg == nil {
		cfg = types.DefaultSplitConfig()
	}
	return &Chunker{cfg: cfg.Normalized()}
}

// Split is shorthand for New(cfg).Split(segment).
func Split(segment string, cfg *types.SplitConfig) []string {
	return New(cfg).Split(segment)
}

// Split returns the chunks of segment in order. No chunk exceeds the maximum
// length and none is empty or whitespace only.
func (c *Chunker) Split(segment string) []string {
	p := &packer{
		cfg: c.cfg,
		cur: buffer.New(c.cfg.Unit),
	}
	for _, line := range strings.Split(segment, "\n") {
		if util.Len(line, c.cfg.Unit) <= c.cfg.SafeLength() {
			p.addLine(line)
		} else {
			p.addLongLine(line)
		}
	}
	return p.finish()
}

// packer holds the closed chunks and the open one for a single Split call.
type packer struct {
	cfg    types.SplitConfig
	chunks []string
	cur    *buffer.TextBuffer
}

func (p *packer) open(text string) {
	p.chunks = append(p.chunks, p.cur.Flush())
	p.cur.Write(text)
}

// addLine appends an atomic line joined by a line break.
func (p *packer) addLine(line string) {
	joined := "\n" + line
	if p.cur.Fits(joined, p.cfg.MaxLength) {
		p.cur.Write(joined)
		return
	}
	p.open(line)
}

// addLongLine tokenizes a line that cannot be appended whole.
func (p *packer) addLongLine(line string) {
	if !p.cur.Empty() {
		if p.cur.Fits("\n", p.cfg.MaxLength) {
			p.cur.Write("\n")
		} else {
			p.open("")
		}
	}
	for _, tok := range tokenizer.Tokenize(line) {
		if util.Len(tok.Text, p.cfg.Unit) > p.cfg.MaxLength {
			p.addOversized(tok.Text)
			continue
		}
		p.addToken(tok)
	}
}

func (p *packer) addToken(tok tokenizer.Token) {
	text := tok.Text
	if p.needsSpace(tok) {
		text = " " + text
	}
	if p.cur.Fits(text, p.cfg.MaxLength) {
		p.cur.Write(text)
		return
	}
	p.open(tok.Text)
}

// needsSpace decides whether a separating space goes before tok.
func (p *packer) needsSpace(tok tokenizer.Token) bool {
	if tok.Kind == tokenizer.Space || p.cur.Empty() || p.cur.EndsWithSpace() {
		return false
	}
	return !util.StartsWithAny(tok.Text, p.cfg.ClosingPunctuation)
}

// addOversized hard-slices a token longer than the maximum. This is the only
// place a word or reference is broken.
func (p *packer) addOversized(text string) {
	for _, piece := range util.HardSlice(text, p.cfg.MaxLength, p.cfg.Unit) {
		if p.cur.Fits(piece, p.cfg.MaxLength) {
			p.cur.Write(piece)
			continue
		}
		p.open(piece)
	}
}

func (p *packer) finish() []string {
	all := append(p.chunks, p.cur.Flush())
	all[0] = strings.TrimPrefix(all[0], "\n")

	out := make([]string, 0, len(all))
	for _, chunk := range all {
		if util.IsBlank(chunk) {
			continue
		}
		out = append(out, chunk)
	}
	return out
}
