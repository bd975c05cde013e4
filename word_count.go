package discordify

import (
	"github.com/riverfjs/discordify-go/internal/util"
)

// CountText 计算文本在 Discord 中的长度（Unicode 码点数）
//
// Discord 按字符计数，与 Python 的 len() 一致，因此 emoji 计为 1。
func CountText(text string) int {
	return util.Len(text, UnitRunes)
}

// UTF16Len returns the length of text measured in UTF-16 code units.
//
// Characters outside the BMP (codepoint > 0xFFFF) take 2 UTF-16 code units
// (a surrogate pair); all others take 1.
func UTF16Len(text string) int {
	return util.Len(text, UnitUTF16)
}
