package phonetic

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/layaalk/PVI-AU/internal/apperr"
)

// maxRewriteDepth bounds how often a replacement may itself be rewritten.
const maxRewriteDepth = 16

// Tokenizer splits transcriptions into symbols by maximal munch and applies
// rule sets to every matched symbol.
type Tokenizer struct {
	table   Table
	rules   []RuleSet
	symbols map[string]struct{}
	maxLen  int // longest symbol, in runes
}

// Option configures the standard IPA tokenizer.
type Option func(*options)

type options struct {
	stripStress bool
}

// WithoutStress deletes stress marks instead of translating them.
func WithoutStress() Option {
	return func(o *options) {
		o.stripStress = true
	}
}

// NewIPATokenizer returns the standard IPA tokenizer: IPAToARPAbet as the
// direct table, then the Normalizations and MFAOverlay rule sets.
func NewIPATokenizer(opts ...Option) *Tokenizer {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	rules := []RuleSet{Normalizations, MFAOverlay}
	if o.stripStress {
		rules = append([]RuleSet{StressMarks}, rules...)
	}
	return NewTokenizer(IPAToARPAbet, rules...)
}

var defaultTokenizer = NewIPATokenizer()

// Default returns the shared standard IPA tokenizer.
func Default() *Tokenizer {
	return defaultTokenizer
}

// NewTokenizer builds a tokenizer over the keys of table and the keys and
// replacements of rules. Rule sets are applied in the given order.
func NewTokenizer(table Table, rules ...RuleSet) *Tokenizer {
	t := &Tokenizer{
		table:   make(Table, len(table)),
		symbols: make(map[string]struct{}),
	}
	for k, v := range table {
		t.table[nfc(k)] = v
		t.add(k)
	}
	for _, rs := range rules {
		normalized := RuleSet{Name: rs.Name, Rules: make(map[string][]string, len(rs.Rules))}
		for k, repl := range rs.Rules {
			out := make([]string, len(repl))
			for i, r := range repl {
				out[i] = nfc(r)
				t.add(r)
			}
			normalized.Rules[nfc(k)] = out
			t.add(k)
		}
		t.rules = append(t.rules, normalized)
	}
	return t
}

func (t *Tokenizer) add(sym string) {
	sym = nfc(sym)
	if sym == "" {
		return
	}
	t.symbols[sym] = struct{}{}
	if n := utf8.RuneCountInString(sym); n > t.maxLen {
		t.maxLen = n
	}
}

// Known reports whether sym is a symbol the tokenizer can match.
func (t *Tokenizer) Known(sym string) bool {
	_, ok := t.symbols[nfc(sym)]
	return ok
}

// Tokenize segments input into symbols, left to right. Whitespace between
// symbols is skipped. Symbols named by a rule are replaced by the rule's
// output, so the result never contains a rewritten spelling.
func (t *Tokenizer) Tokenize(input string) ([]Symbol, error) {
	runes := []rune(nfc(input))
	var out []Symbol
	for i := 0; i < len(runes); {
		if unicode.IsSpace(runes[i]) {
			i++
			continue
		}
		n := t.match(runes[i:])
		if n == 0 {
			return nil, apperr.ErrUnrecognizedSymbol(string(runes[i]), input)
		}
		var err error
		out, err = t.rewrite(out, string(runes[i:i+n]), 0, 0)
		if err != nil {
			return nil, err
		}
		i += n
	}
	return out, nil
}

// match returns the length in runes of the longest symbol prefixing rs.
func (t *Tokenizer) match(rs []rune) int {
	n := t.maxLen
	if len(rs) < n {
		n = len(rs)
	}
	for ; n > 0; n-- {
		if _, ok := t.symbols[string(rs[:n])]; ok {
			return n
		}
	}
	return 0
}

// rewrite offers sym to the rule sets from stage on. A replacement is
// offered again starting at the rule set that produced it.
func (t *Tokenizer) rewrite(out []Symbol, sym string, stage, depth int) ([]Symbol, error) {
	if depth > maxRewriteDepth {
		return nil, apperr.ErrRuleCycle(sym)
	}
	for s := stage; s < len(t.rules); s++ {
		repl, ok := t.rules[s].Rules[sym]
		if !ok {
			continue
		}
		var err error
		for _, r := range repl {
			if out, err = t.rewrite(out, r, s, depth+1); err != nil {
				return nil, err
			}
		}
		return out, nil
	}
	return append(out, Symbol(sym)), nil
}

// Transcribe tokenizes input and joins the symbols with single spaces.
func (t *Tokenizer) Transcribe(input string) (string, error) {
	syms, err := t.Tokenize(input)
	if err != nil {
		return "", err
	}
	return strings.Join(Strings(syms), " "), nil
}
