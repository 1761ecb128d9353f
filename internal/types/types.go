package types

import "strings"

// DefaultColumn 默认列宽
const DefaultColumn = "290px"

// WritingModeSignature 用于识别竖排容器的 style 片段
const WritingModeSignature = "writing-mode:"

// vendorPrefixes column-width 的浏览器前缀，顺序固定
var vendorPrefixes = []string{"", "-moz-", "-webkit-", "-o-", "-ms-"}

// Config 竖排渲染配置
type Config struct {
	// Column is the CSS column width applied to every vendor-prefixed
	// column-width property.
	Column string
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	return &Config{
		Column: DefaultColumn,
	}
}

// ColumnOrDefault returns the configured column width, falling back to
// DefaultColumn when unset.
func (c *Config) ColumnOrDefault() string {
	if c == nil || strings.TrimSpace(c.Column) == "" {
		return DefaultColumn
	}
	return c.Column
}

// Style 构造竖排容器的 style 字符串，existing 追加在末尾
func (c *Config) Style(existing string) string {
	column := c.ColumnOrDefault()
	var sb strings.Builder
	sb.WriteString("writing-mode:vertical-rl;text-indent:1em;")
	for _, prefix := range vendorPrefixes {
		sb.WriteString(prefix)
		sb.WriteString("column-width:")
		sb.WriteString(column)
		sb.WriteString(";")
	}
	sb.WriteString(existing)
	return sb.String()
}
