package discordify

import (
	"sync"

	"github.com/riverfjs/discordify-go/internal/types"
)

// 导出类型别名
type SplitConfig = types.SplitConfig
type Unit = types.Unit

const (
	UnitRunes = types.UnitRunes
	UnitUTF16 = types.UnitUTF16

	// MaxMessageLength Discord 单条消息的最大字符数
	MaxMessageLength = types.DefaultMaxLength
	// BlankGlyph 替换图片 alt 文本的空白字符
	BlankGlyph = types.DefaultBlankGlyph
)

var (
	defaultConfig     *SplitConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default split configuration (singleton).
// Callers must not mutate it; use WithConfig with a copy instead.
func DefaultConfig() *SplitConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultSplitConfig()
	})
	return defaultConfig
}
