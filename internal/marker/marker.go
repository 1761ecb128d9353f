// Package marker recognizes the "@" vertical-text marker on Markdown lines.
//
// A marker line is up to three spaces of indentation, the sigil '@', an
// optional single space and the payload:
//
//	@縦書きの文章
//	  @ indented payload
//
// Four or more spaces of indentation never form a marker; such lines belong
// to indented code blocks.
package marker

import (
	"regexp"
	"strings"
)

// Sigil is the character that starts a vertical-text line.
const Sigil = '@'

// maxIndent is the deepest indentation a marker tolerates.
const maxIndent = 3

// blockRe 在整个块中查找任意一行标记（不锚定到块首）
var blockRe = regexp.MustCompile(`(?m)^[ ]{0,3}@[ ]?(.*)$`)

// Prefix returns the number of bytes taken by the marker prefix of line
// (indentation, sigil and the optional space), or -1 if line is not a
// marker line.
func Prefix(line []byte) int {
	i := 0
	for i < len(line) && line[i] == ' ' {
		i++
		if i > maxIndent {
			return -1
		}
	}
	if i >= len(line) || line[i] != Sigil {
		return -1
	}
	i++
	if i < len(line) && line[i] == ' ' {
		i++
	}
	return i
}

// Contains reports whether any line of block is a marker line.
func Contains(block string) bool {
	return blockRe.MatchString(block)
}

// Split 在第一行标记处切分 block
//
// before 为标记之前的普通内容（不含末尾换行），rest 从标记行开始。
// 没有标记时 ok 为 false，before 为整个 block。
func Split(block string) (before, rest string, ok bool) {
	loc := blockRe.FindStringIndex(block)
	if loc == nil {
		return block, "", false
	}
	start := loc[0]
	before = block[:start]
	if start > 0 {
		before = strings.TrimSuffix(before, "\n")
	}
	return before, block[start:], true
}

// CleanLine removes the marker from a single line.
//
// A bare sigil becomes an empty line so that it separates paragraphs.
// Lines without a marker are returned unchanged.
func CleanLine(line string) string {
	if strings.TrimSpace(line) == string(Sigil) {
		return ""
	}
	if n := Prefix([]byte(line)); n >= 0 {
		return line[n:]
	}
	return line
}

// Clean 逐行去除标记，并用单个换行重新拼接，行数和顺序不变
func Clean(block string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = CleanLine(line)
	}
	return strings.Join(lines, "\n")
}
