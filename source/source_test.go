package source

import (
	"testing"

	. "github.com/ava12/gramutil/internal/test"
)

type result struct {
	pos, line, col int
}

func TestSourceLineCol(t *testing.T) {
	samples := map[string][]result{
		"": {
			{0, 1, 1},
			{100, 1, 1},
			{-1, 1, 1},
		},
		"\n": {
			{0, 1, 1},
			{1, 2, 1},
			{100, 2, 1},
		},
		"0\n2\n4\n6789abcde\ng\ni\n": {
			{4, 3, 1},
			{5, 3, 2},
			{6, 4, 1},
			{7, 4, 2},
			{14, 4, 9},
			{19, 6, 2},
			{20, 7, 1},
			{9, 4, 4},
			{5, 3, 2},
		},
		"S -> ε\n  -> a": {
			{5, 1, 6},
			{7, 1, 7},
			{8, 2, 1},
			{13, 2, 6},
		},
	}

	for text, results := range samples {
		source := New("", []byte(text))
		for _, res := range results {
			l, c := source.LineCol(res.pos)
			if l != res.line || c != res.col {
				t.Errorf("sample %q: expected %v, got line: %d, col: %d", text, res, l, c)
			}
		}
	}
}

func TestPos(t *testing.T) {
	s := New("grammar.txt", []byte("S -> a\nA -> b\n"))
	p := NewPos(s, 8)
	ExpectString(t, "grammar.txt", p.SourceName())
	ExpectInt(t, 8, p.Pos())
	ExpectInt(t, 2, p.Line())
	ExpectInt(t, 2, p.Col())
	Assert(t, p.Source() == s, "expecting same source")

	ExpectString(t, "", Pos{}.SourceName())
}

func TestNormalizeNls(t *testing.T) {
	samples := map[string]string{
		"":                "",
		"a\nb":            "a\nb",
		"a\r\nb\r\n":      "a\nb\n",
		"a\rb\r\r\nc\n\r": "a\nb\n\nc\n\n",
	}

	for src, expected := range samples {
		content := []byte(src)
		NormalizeNls(&content)
		ExpectString(t, expected, string(content))
	}
}
