// Package source defines grammar description source used by lexer.
package source

import (
	"bytes"
	"sort"
	"unicode/utf8"
)

// Source contains named grammar description and line start offsets.
// Source is immutable and safe for concurrent use.
type Source struct {
	name       string
	content    []byte
	lineStarts []int
}

// New creates new source. content is not copied and must not be modified afterwards.
func New(name string, content []byte) *Source {
	lineStarts := make([]int, 1, bytes.Count(content, []byte("\n"))+1)
	for i, c := range content {
		if c == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Source{name, content, lineStarts}
}

// Name returns source name, may be empty.
func (s *Source) Name() string {
	return s.name
}

// Content returns source content.
func (s *Source) Content() []byte {
	return s.content
}

// Len returns content length in bytes.
func (s *Source) Len() int {
	return len(s.content)
}

// LineCol converts byte offset to 1-based line and column numbers, column counts runes.
// Offsets outside of content are clamped.
func (s *Source) LineCol(pos int) (line, col int) {
	if pos < 0 {
		pos = 0
	} else if pos > len(s.content) {
		pos = len(s.content)
	}

	index := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > pos
	}) - 1
	return index + 1, utf8.RuneCount(s.content[s.lineStarts[index]:pos]) + 1
}

// Pos holds source position, it is used to construct tokens and errors.
type Pos struct {
	src       *Source
	pos       int
	line, col int
}

// NewPos creates position for given byte offset.
func NewPos(s *Source, pos int) Pos {
	line, col := s.LineCol(pos)
	return Pos{s, pos, line, col}
}

// Source returns source or nil.
func (p Pos) Source() *Source {
	return p.src
}

// SourceName returns source name or empty string.
func (p Pos) SourceName() string {
	if p.src == nil {
		return ""
	}
	return p.src.name
}

// Pos returns byte offset.
func (p Pos) Pos() int {
	return p.pos
}

// Line returns 1-based line number.
func (p Pos) Line() int {
	return p.line
}

// Col returns 1-based column number.
func (p Pos) Col() int {
	return p.col
}

// NormalizeNls replaces "\r\n" and lone "\r" line endings with "\n" in place.
func NormalizeNls(content *[]byte) {
	c := *content
	if bytes.IndexByte(c, '\r') < 0 {
		return
	}

	j := 0
	for i := 0; i < len(c); i++ {
		b := c[i]
		if b == '\r' {
			b = '\n'
			if i+1 < len(c) && c[i+1] == '\n' {
				i++
			}
		}
		c[j] = b
		j++
	}
	*content = c[:j]
}
