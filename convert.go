package top2bottom

import (
	"bytes"
	"fmt"

	gast "github.com/yuin/goldmark/ast"

	"github.com/riverfjs/top2bottom-go/internal/marker"
	"github.com/riverfjs/top2bottom-go/internal/parser"
)

// Convert 将 Markdown 渲染为 HTML
//
// 使用 GFM、定义列表、脚注等标准扩展，再加上按 opts 配置的竖排扩展。
func Convert(markdown string, opts ...Option) (string, error) {
	md := parser.New(New(opts...))
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return buf.String(), nil
}

// ParseAST 仅解析为 AST，不渲染
func ParseAST(markdown string, opts ...Option) gast.Node {
	return parser.ParseAST(parser.New(New(opts...)), []byte(markdown))
}

// HasMarker reports whether any line of block starts with the "@" marker.
func HasMarker(block string) bool {
	return marker.Contains(block)
}

// SplitBlock splits block at its first marker line. before holds the
// ordinary text preceding it; ok is false when block has no marker.
func SplitBlock(block string) (before, rest string, ok bool) {
	return marker.Split(block)
}

// CleanLine strips the marker from one line; a bare "@" becomes empty.
func CleanLine(line string) string {
	return marker.CleanLine(line)
}

// Clean strips markers from every line of block, keeping line count and order.
func Clean(block string) string {
	return marker.Clean(block)
}
