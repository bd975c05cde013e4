package discordify

import (
	"github.com/riverfjs/discordify-go/internal/chunker"
	"github.com/riverfjs/discordify-go/internal/rewrite"
)

// Rewrite 把空行后独立成段的图片改写为占位链接，返回有序 segment
//
// 没有匹配时返回只含原文的单元素列表。
func Rewrite(document string, opts ...Option) []string {
	options := applyOptions(opts...)
	return rewrite.Rewrite(document, options.Config.BlankGlyph)
}

// Split 将单个 segment 拆分为长度受限的 chunk
func Split(segment string, opts ...Option) []string {
	options := applyOptions(opts...)
	return chunker.Split(segment, &options.Config)
}
