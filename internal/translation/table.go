package translation

import (
	"regexp"
)

// Pair is one source phrase and the text that replaces it
type Pair struct {
	Source string `yaml:"source"`
	Target string `yaml:"target"`
}

// Table applies phrase pairs in order
type Table struct {
	pairs    []Pair
	matchers []*regexp.Regexp
}

// NewTable creates a table from pairs in order. A source phrase listed more
// than once keeps the position of its first occurrence and the target of its
// last. Pairs with an empty source are dropped since they would match
// everywhere.
func NewTable(pairs ...Pair) *Table {
	t := &Table{}
	index := make(map[string]int)
	for _, p := range pairs {
		if p.Source == "" {
			continue
		}
		if i, ok := index[p.Source]; ok {
			t.pairs[i].Target = p.Target
			continue
		}
		index[p.Source] = len(t.pairs)
		t.pairs = append(t.pairs, p)
		t.matchers = append(t.matchers, regexp.MustCompile("(?i)"+regexp.QuoteMeta(p.Source)))
	}
	return t
}

// NewDefaultTable creates a table from the built-in phrase list
func NewDefaultTable() *Table {
	return NewTable(DefaultPairs()...)
}

// Apply replaces every case-insensitive occurrence of each source phrase with
// its target, pair by pair. Later pairs see the output of earlier ones, so
// applying a table twice can differ from applying it once.
func (t *Table) Apply(text string) string {
	for i, m := range t.matchers {
		text = m.ReplaceAllLiteralString(text, t.pairs[i].Target)
	}
	return text
}

// Len returns the number of pairs in the table
func (t *Table) Len() int {
	return len(t.pairs)
}

// Pairs returns a copy of the table's pairs in application order
func (t *Table) Pairs() []Pair {
	result := make([]Pair, len(t.pairs))
	copy(result, t.pairs)
	return result
}
