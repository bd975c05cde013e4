package rewrite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const glyph = "⠀"

// TestRewrite_ImageWithFooter 空行后的图片被改写，尾随文本成为独立 segment
func TestRewrite_ImageWithFooter(t *testing.T) {
	got := Rewrite("intro text\n\n![caption](http://x/img.png)\nfooter", glyph)

	require.Len(t, got, 2)
	assert.Equal(t, "intro text[⠀](http://x/img.png)", got[0])
	assert.Equal(t, "footer", got[1])
	assert.NotContains(t, got[0], "!")
	assert.NotContains(t, got[0], "caption")
}

func TestRewrite_NoMatchPassthrough(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"empty", ""},
		{"whitespace only", " \n\n\t "},
		{"plain text", "just some words\nacross lines"},
		{"image without blank line", "intro\n![a](b.png)\nafter"},
		{"inline image", "look ![a](b.png) here"},
		{"placeholder already", "intro\n\n[⠀](b.png)"},
		{"empty alt", "intro\n\n![](b.png)"},
		{"unterminated", "intro\n\n![alt](b.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []string{tt.doc}, Rewrite(tt.doc, glyph))
		})
	}
}

func TestRewrite_NoTrailingText(t *testing.T) {
	got := Rewrite("intro\n\n![a](x.png)\n  \n", glyph)
	assert.Equal(t, []string{"intro[⠀](x.png)"}, got)
}

func TestRewrite_LeadingImage(t *testing.T) {
	got := Rewrite("\n\n![a](x.png) tail", glyph)
	assert.Equal(t, []string{"[⠀](x.png)", "tail"}, got)
}

// TestRewrite_MultipleImages 同一文档中的所有图片都会被改写
func TestRewrite_MultipleImages(t *testing.T) {
	doc := "first\n\n![one](1.png)\nbetween\n\n![two](2.png)\n\nlast"
	got := Rewrite(doc, glyph)

	assert.Equal(t, []string{
		"first[⠀](1.png)",
		"between[⠀](2.png)",
		"last",
	}, got)
}

func TestRewrite_ConsecutiveImages(t *testing.T) {
	doc := "a\n\n![x](1.png)\n\n![y](2.png)"
	got := Rewrite(doc, glyph)

	// 第二张图片在裁剪后的剩余文本开头，没有前置空行，保持原样
	assert.Equal(t, []string{"a[⠀](1.png)", "![y](2.png)"}, got)
}

func TestRewrite_MultilineLeadingText(t *testing.T) {
	doc := "# Title\nline one\nline two\n\n![alt text](https://example.com/a.png)"
	got := Rewrite(doc, glyph)
	assert.Equal(t, []string{"# Title\nline one\nline two[⠀](https://example.com/a.png)"}, got)
}

func TestRewrite_CustomGlyph(t *testing.T) {
	got := Rewrite("a\n\n![x](y)", "_")
	assert.Equal(t, []string{"a[_](y)"}, got)
}

// TestRewrite_Terminates 对大量重复图片的输入也必须前进并结束
func TestRewrite_Terminates(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 500; i++ {
		sb.WriteString("text\n\n![i](u)\n\n")
	}
	got := Rewrite(sb.String(), glyph)

	require.Len(t, got, 500)
	for _, seg := range got {
		assert.Equal(t, "text[⠀](u)", seg)
	}
}

func TestRewrite_SegmentsPreserveContent(t *testing.T) {
	doc := "alpha\n\n![a](1.png)\nbeta gamma\n\n![b](2.png)\ndelta"
	joined := strings.Join(Rewrite(doc, glyph), "")
	for _, word := range []string{"alpha", "beta", "gamma", "delta", "1.png", "2.png"} {
		assert.Contains(t, joined, word)
	}
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "[⠀](http://x/y.png)", Placeholder("http://x/y.png", glyph))
}
