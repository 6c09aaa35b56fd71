package textgrid

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode"

	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

type tokenKind int

const (
	tokString tokenKind = iota
	tokNumber
	tokFlag
)

func (k tokenKind) String() string {
	switch k {
	case tokString:
		return "string"
	case tokNumber:
		return "number"
	default:
		return "flag"
	}
}

type token struct {
	kind tokenKind
	text string
	line int
}

// lex extracts the values of a TextGrid file. Keys, "=" signs and bracketed
// item indices of the long format are skipped, which leaves the same value
// sequence as the short format.
func lex(src string) ([]token, error) {
	var toks []token
	rs := []rune(src)
	line := 1
	for i := 0; i < len(rs); {
		c := rs[i]
		switch {
		case c == '\n':
			line++
			i++
		case unicode.IsSpace(c):
			i++
		case c == '"':
			start := line
			var b strings.Builder
			i++
			for {
				if i >= len(rs) {
					return nil, fmt.Errorf("line %d: unterminated string", start)
				}
				if rs[i] == '"' {
					if i+1 < len(rs) && rs[i+1] == '"' {
						b.WriteRune('"')
						i += 2
						continue
					}
					i++
					break
				}
				if rs[i] == '\n' {
					line++
				}
				b.WriteRune(rs[i])
				i++
			}
			toks = append(toks, token{kind: tokString, text: b.String(), line: start})
		case c == '[':
			for i < len(rs) && rs[i] != ']' {
				i++
			}
			i++
		case c == '<':
			j := i
			for j < len(rs) && rs[j] != '>' {
				j++
			}
			if j == len(rs) {
				return nil, fmt.Errorf("line %d: unterminated flag", line)
			}
			toks = append(toks, token{kind: tokFlag, text: string(rs[i : j+1]), line: line})
			i = j + 1
		case c == '!':
			for i < len(rs) && rs[i] != '\n' {
				i++
			}
		case c == '-' || c == '+' || c == '.' || unicode.IsDigit(c):
			j := i
			for j < len(rs) && !unicode.IsSpace(rs[j]) {
				j++
			}
			toks = append(toks, token{kind: tokNumber, text: string(rs[i:j]), line: line})
			i = j
		default:
			// key text such as "xmin", "intervals:" or "tiers?"
			for i < len(rs) && !unicode.IsSpace(rs[i]) && !strings.ContainsRune(`"<[=`, rs[i]) {
				i++
			}
			if i < len(rs) && rs[i] == '=' {
				i++
			}
		}
	}
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
	err  error
}

func (p *parser) next(kind tokenKind, what string) token {
	if p.err != nil {
		return token{}
	}
	if p.pos >= len(p.toks) {
		p.err = fmt.Errorf("unexpected end of file, want %s", what)
		return token{}
	}
	t := p.toks[p.pos]
	if t.kind != kind {
		p.err = fmt.Errorf("line %d: want %s (%s), got %s %q", t.line, what, kind, t.kind, t.text)
		return token{}
	}
	p.pos++
	return t
}

func (p *parser) str(what string) string {
	return p.next(tokString, what).text
}

func (p *parser) num(what string) float64 {
	t := p.next(tokNumber, what)
	if p.err != nil {
		return 0
	}
	f, err := strconv.ParseFloat(t.text, 64)
	if err != nil {
		p.err = fmt.Errorf("line %d: %s: %w", t.line, what, err)
		return 0
	}
	return f
}

func (p *parser) count(what string) int {
	f := p.num(what)
	if p.err != nil {
		return 0
	}
	// Every counted item takes at least one more token.
	if f < 0 || f != math.Trunc(f) || f > float64(len(p.toks)-p.pos) {
		p.err = fmt.Errorf("%s: %v is not a count for this file", what, f)
		return 0
	}
	return int(f)
}

// flag consumes an optional <exists>/<absent> flag.
func (p *parser) flag() (string, bool) {
	if p.err != nil || p.pos >= len(p.toks) || p.toks[p.pos].kind != tokFlag {
		return "", false
	}
	t := p.toks[p.pos]
	p.pos++
	return t.text, true
}

// Parse reads a TextGrid in long or short text format. A UTF-8 or UTF-16
// byte order mark selects the encoding; UTF-8 is assumed otherwise.
func Parse(r io.Reader) (*TextGrid, error) {
	data, err := io.ReadAll(transform.NewReader(r, xunicode.BOMOverride(xunicode.UTF8.NewDecoder())))
	if err != nil {
		return nil, fmt.Errorf("textgrid: read: %w", err)
	}
	toks, err := lex(string(data))
	if err != nil {
		return nil, fmt.Errorf("textgrid: %w", err)
	}

	p := &parser{toks: toks}
	if ft := p.str("file type"); p.err == nil && !strings.HasPrefix(ft, "ooTextFile") {
		return nil, fmt.Errorf("textgrid: file type %q is not ooTextFile", ft)
	}
	if oc := p.str("object class"); p.err == nil && oc != "TextGrid" {
		return nil, fmt.Errorf("textgrid: object class %q is not TextGrid", oc)
	}

	tg := &TextGrid{}
	tg.XMin = p.num("xmin")
	tg.XMax = p.num("xmax")
	if f, ok := p.flag(); ok && f == "<absent>" {
		return tg, p.err
	}

	n := p.count("tier count")
	for i := 0; i < n && p.err == nil; i++ {
		t := &Tier{}
		t.Class = p.str("tier class")
		t.Name = p.str("tier name")
		t.XMin = p.num("tier xmin")
		t.XMax = p.num("tier xmax")
		size := p.count("tier size")
		switch t.Class {
		case IntervalTier:
			t.Intervals = []Interval{}
			for j := 0; j < size && p.err == nil; j++ {
				var iv Interval
				iv.XMin = p.num("interval xmin")
				iv.XMax = p.num("interval xmax")
				iv.Text = p.str("interval text")
				t.Intervals = append(t.Intervals, iv)
			}
		case TextTier:
			t.Points = []Point{}
			for j := 0; j < size && p.err == nil; j++ {
				var pt Point
				pt.Time = p.num("point time")
				pt.Mark = p.str("point mark")
				t.Points = append(t.Points, pt)
			}
		default:
			if p.err == nil {
				p.err = fmt.Errorf("tier %q: unknown class %q", t.Name, t.Class)
			}
		}
		tg.Tiers = append(tg.Tiers, t)
	}
	if p.err != nil {
		return nil, fmt.Errorf("textgrid: %w", p.err)
	}
	return tg, nil
}

// ReadFile parses the TextGrid at path.
func ReadFile(path string) (*TextGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	tg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tg, nil
}
