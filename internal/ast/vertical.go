// Package ast defines the goldmark node for a vertical-text region.
package ast

import (
	"strings"

	gast "github.com/yuin/goldmark/ast"

	"github.com/riverfjs/top2bottom-go/internal/types"
)

// KindVertical is a NodeKind of the Vertical node.
var KindVertical = gast.NewNodeKind("Vertical")

// styleAttr 容器 style 属性名
var styleAttr = []byte("style")

// Vertical is a block container whose children are laid out top to bottom,
// columns running right to left.
type Vertical struct {
	gast.BaseBlock
}

// NewVertical returns a new, unstyled Vertical node.
func NewVertical() *Vertical {
	return &Vertical{}
}

// Kind implements Node.Kind.
func (n *Vertical) Kind() gast.NodeKind {
	return KindVertical
}

// Dump implements Node.Dump.
func (n *Vertical) Dump(source []byte, level int) {
	gast.DumpHelper(n, source, level, map[string]string{
		"Style": Style(n),
	}, nil)
}

// Style 返回节点的 style 属性，不存在时返回空字符串
func Style(n gast.Node) string {
	v, ok := n.Attribute(styleAttr)
	if !ok {
		return ""
	}
	switch s := v.(type) {
	case []byte:
		return string(s)
	case string:
		return s
	}
	return ""
}

// SetStyle sets the style attribute of n.
func SetStyle(n gast.Node, style string) {
	n.SetAttribute(styleAttr, []byte(style))
}

// IsVertical reports whether n is a vertical container that later marker
// blocks may continue: a *Vertical carrying the writing-mode signature.
func IsVertical(n gast.Node) bool {
	if n == nil {
		return false
	}
	v, ok := n.(*Vertical)
	if !ok {
		return false
	}
	return strings.Contains(Style(v), types.WritingModeSignature)
}
