package parser

import (
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// StandardOptions goldmark 基础配置，竖排扩展在此之上追加
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

// New 创建带有额外扩展的 goldmark 实例
func New(extenders ...goldmark.Extender) goldmark.Markdown {
	opts := make([]goldmark.Option, 0, len(StandardOptions)+1)
	opts = append(opts, StandardOptions...)
	if len(extenders) > 0 {
		opts = append(opts, goldmark.WithExtensions(extenders...))
	}
	return goldmark.New(opts...)
}

// ParseAST 仅解析为 AST，不渲染
func ParseAST(md goldmark.Markdown, source []byte) gast.Node {
	reader := text.NewReader(source)
	return md.Parser().Parse(reader)
}
