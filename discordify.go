// Package discordify 将 GitHub Markdown 文章转换为可按顺序发送的 Discord 消息
//
// 核心是一个纯函数管道：
//   - Rewrite(): 把 "空行 + ![alt](url)" 形式的图片改写为不会自动嵌入的占位链接，
//     并按图片位置把文档切成有序的 segment
//   - Split(): 把单个 segment 拆分为不超过 MaxMessageLength 的 chunk，
//     优先在行与词边界处断开，只有超长的不可分词才会被硬切
//   - ConvertAndSplit(): 组合以上两步，返回最终的有序 chunk 列表
//
// 示例：
//
//	chunks := discordify.ConvertAndSplit(markdown)
//	for _, chunk := range chunks {
//	    // 按顺序逐条发送
//	}
//
// 所有函数只读取输入并分配局部状态，可被多个 goroutine 并发调用。
package discordify

// ConvertAndSplit 将 Markdown 转换为按顺序发送的消息文本
//
// 参数：
//   - document: 原始 Markdown 文本
//   - opts: 可选配置（最大长度、占位字符、计数单位等）
//
// 返回：
//   - []string: 有序 chunk，每个都不超过最大长度且不为空白
func ConvertAndSplit(document string, opts ...Option) []string {
	messages := Messages(document, opts...)
	out := make([]string, len(messages))
	for i, m := range messages {
		out[i] = m.Text
	}
	return out
}
