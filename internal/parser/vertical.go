package parser

import (
	"github.com/charmbracelet/log"
	gast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"

	"github.com/riverfjs/top2bottom-go/internal/ast"
	"github.com/riverfjs/top2bottom-go/internal/marker"
	"github.com/riverfjs/top2bottom-go/internal/types"
)

// Priority 排在 ATX 标题（600）之前、缩进代码块（500）之后
const Priority = 550

// LoggerFunc returns the logger to use at the time a message is written.
type LoggerFunc func() *log.Logger

type verticalParser struct {
	config *types.Config
	logger LoggerFunc
}

// NewVerticalParser returns a BlockParser that wraps "@" lines in a
// Vertical container. A nil config uses the defaults; a nil logger
// discards debug output.
func NewVerticalParser(config *types.Config, logger LoggerFunc) parser.BlockParser {
	if config == nil {
		config = types.DefaultConfig()
	}
	return &verticalParser{
		config: config,
		logger: logger,
	}
}

func (b *verticalParser) Trigger() []byte {
	return []byte{marker.Sigil}
}

// advance 消费当前行的标记前缀，非标记行返回 false
func (b *verticalParser) advance(reader text.Reader) bool {
	line, _ := reader.PeekLine()
	n := marker.Prefix(line)
	if n < 0 {
		return false
	}
	reader.Advance(n)
	return true
}

func (b *verticalParser) Open(parent gast.Node, reader text.Reader, pc parser.Context) (gast.Node, parser.State) {
	if !b.advance(reader) {
		return nil, parser.NoChildren
	}

	// The open container is derived from the tree: only the parent's
	// newest child can be continued.
	if last := parent.LastChild(); ast.IsVertical(last) {
		b.debug("continuing vertical container", reader)
		return last, parser.HasChildren
	}

	node := ast.NewVertical()
	ast.SetStyle(node, b.config.Style(ast.Style(node)))
	b.debug("opening vertical container", reader)
	return node, parser.HasChildren
}

func (b *verticalParser) Continue(node gast.Node, reader text.Reader, pc parser.Context) parser.State {
	if b.advance(reader) {
		return parser.Continue | parser.HasChildren
	}
	// 块内没有标记的行原样交给子块解析，只有空行结束容器
	line, _ := reader.PeekLine()
	if util.IsBlank(line) {
		return parser.Close
	}
	return parser.Continue | parser.HasChildren
}

func (b *verticalParser) Close(node gast.Node, reader text.Reader, pc parser.Context) {
}

func (b *verticalParser) CanInterruptParagraph() bool {
	return true
}

func (b *verticalParser) CanAcceptIndentedLine() bool {
	return false
}

func (b *verticalParser) debug(msg string, reader text.Reader) {
	if b.logger == nil {
		return
	}
	logger := b.logger()
	if logger == nil {
		return
	}
	line, _ := reader.Position()
	logger.Debug(msg, "line", line+1, "column", b.config.ColumnOrDefault())
}
