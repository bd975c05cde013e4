package discordify

import (
	"github.com/riverfjs/discordify-go/internal/chunker"
	"github.com/riverfjs/discordify-go/internal/rewrite"
)

// Messages 完整管道：markdown → 带来源信息的有序消息
//
// 步骤：
//  1. Rewrite 一次得到 segments
//  2. 按顺序对每个 segment 调用 Chunker
//  3. 把结果依次追加到新的输出列表（不在遍历中修改列表）
func Messages(document string, opts ...Option) []*Message {
	options := applyOptions(opts...)
	cfg := options.Config

	segments := rewrite.Rewrite(document, cfg.BlankGlyph)
	c := chunker.New(&cfg)

	result := make([]*Message, 0, len(segments))
	for i, segment := range segments {
		for j, chunk := range c.Split(segment) {
			result = append(result, &Message{
				Text: chunk,
				Trace: MessageTrace{
					Segment:     i,
					Part:        j,
					Placeholder: hasPlaceholder(chunk, cfg.BlankGlyph),
				},
			})
		}
	}

	Logger.Debug("document split", "segments", len(segments), "messages", len(result))
	return result
}
