// Package top2bottom 为 goldmark 提供竖排文字（writing-mode: vertical-rl）块扩展
//
// 以 "@" 开头的行（前面最多 3 个空格，"@" 后可有一个空格）被包裹进一个
// 竖排 <div> 容器，容器内的内容仍按普通 Markdown 解析。语法参照引用块：
//
//	@吾輩は猫である。
//	@名前はまだ無い。
//	@
//	@どこで生れたかとんと見当がつかぬ。
//
// 渲染结果：
//
//	<div style="writing-mode:vertical-rl;text-indent:1em;column-width:290px;...">
//	<p>吾輩は猫である。
//	名前はまだ無い。</p>
//	<p>どこで生れたかとんと見当がつかぬ。</p>
//	</div>
//
// 相邻的竖排块（中间只有空行）合并进同一个容器；中间出现其他块时另起新容器。
//
// 主要 API：
//   - New() / Top2Bottom: goldmark.Extender
//   - Convert(): Markdown → HTML
//   - MakeExtension() / Lookup(): 按名称和字符串配置构造扩展
//
// 示例：
//
//	md := goldmark.New(goldmark.WithExtensions(top2bottom.New(top2bottom.WithColumn("400px"))))
//	var buf bytes.Buffer
//	_ = md.Convert(source, &buf)
package top2bottom

import (
	"github.com/charmbracelet/log"
	"github.com/yuin/goldmark"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/top2bottom-go/internal/ast"
	iparser "github.com/riverfjs/top2bottom-go/internal/parser"
	irenderer "github.com/riverfjs/top2bottom-go/internal/renderer"
)

// 导出类型别名
type Vertical = ast.Vertical

// KindVertical is the NodeKind of vertical containers.
var KindVertical = ast.KindVertical

// IsVertical reports whether n is a styled vertical container.
func IsVertical(n gast.Node) bool {
	return ast.IsVertical(n)
}

type vertical struct {
	config *Config
}

// Top2Bottom is the extension with the default column width.
var Top2Bottom = New()

// New returns a goldmark extension that renders "@" lines vertically.
func New(opts ...Option) goldmark.Extender {
	return &vertical{
		config: applyOptions(opts...),
	}
}

// currentLogger 每次记录日志时读取，SetLogger 对已构建的解析器同样生效
func currentLogger() *log.Logger {
	return Logger
}

// Extend implements goldmark.Extender.
func (e *vertical) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(iparser.NewVerticalParser(e.config, currentLogger), iparser.Priority),
	))
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(irenderer.NewHTMLRenderer(), irenderer.Priority),
	))
}
