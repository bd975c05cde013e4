package parser

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 扩展配置，与 GitHub 渲染 wiki 文章的方式一致
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.GFM,            // GitHub Flavored Markdown (tables, strikethrough, tasklists)
		extension.DefinitionList, // 定义列表
		extension.Footnote,       // 脚注
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(), // 自动生成标题 ID
	),
}

// Image 文档中的一个图片节点
type Image struct {
	Alt         string
	Destination string
}

// ParseAST 仅解析为 AST，不遍历
func ParseAST(markdown string) (ast.Node, []byte) {
	md := goldmark.New(StandardOptions...)
	source := []byte(markdown)
	return md.Parser().Parse(text.NewReader(source)), source
}

// Images 按文档顺序返回所有图片节点
func Images(markdown string) []Image {
	node, source := ParseAST(markdown)

	images := make([]Image, 0)
	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		img, ok := n.(*ast.Image)
		if !ok {
			return ast.WalkContinue, nil
		}
		images = append(images, Image{
			Alt:         altText(img, source),
			Destination: string(img.Destination),
		})
		return ast.WalkSkipChildren, nil
	})
	return images
}

// altText 拼接图片子节点中的文本
func altText(img *ast.Image, source []byte) string {
	var buf bytes.Buffer
	for c := img.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Segment.Value(source))
		}
	}
	return buf.String()
}
