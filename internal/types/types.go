package types

// Unit 长度计量单位
type Unit string

const (
	// UnitRunes 按 Unicode 码点计数（Discord 的计数方式）
	UnitRunes Unit = "runes"
	// UnitUTF16 按 UTF-16 code units 计数（Telegram 的计数方式）
	UnitUTF16 Unit = "utf16"
)

const (
	// DefaultMaxLength Discord 单条消息的最大长度
	DefaultMaxLength = 2000
	// DefaultBlankGlyph 替换图片 alt 文本的空白字符（U+2800 盲文空白）
	DefaultBlankGlyph = "⠀"
	// DefaultClosingPunctuation 前面不插入空格的标点
	DefaultClosingPunctuation = ",.!?:;"
)

// SplitConfig 重写与拆分配置
//
// Normalized 只为 MaxLength、BlankGlyph、Unit 填充默认值；
// ClosingPunctuation 为空表示关闭"标点前不加空格"规则，不会被替换为默认值。
// 需要默认标点时从 DefaultSplitConfig 出发修改。
type SplitConfig struct {
	MaxLength          int
	BlankGlyph         string
	ClosingPunctuation string
	Unit               Unit
}

// DefaultSplitConfig 返回默认拆分配置
func DefaultSplitConfig() *SplitConfig {
	return &SplitConfig{
		MaxLength:          DefaultMaxLength,
		BlankGlyph:         DefaultBlankGlyph,
		ClosingPunctuation: DefaultClosingPunctuation,
		Unit:               UnitRunes,
	}
}

// SafeLength 可作为整行追加的最大长度，为连接用的换行符预留一个单位
func (c *SplitConfig) SafeLength() int {
	return c.MaxLength - 1
}

// Normalized 返回填充了默认值的副本
func (c *SplitConfig) Normalized() SplitConfig {
	out := *c
	if out.MaxLength <= 1 {
		out.MaxLength = DefaultMaxLength
	}
	if out.BlankGlyph == "" {
		out.BlankGlyph = DefaultBlankGlyph
	}
	if out.Unit != UnitUTF16 {
		out.Unit = UnitRunes
	}
	return out
}
