package text

import (
	"strconv"
	"strings"

	"github.com/mirelson/tokema/grammar"
	"github.com/mirelson/tokema/table"
)

// ExactTextResolver resolves case-sensitive TextQuery terminals: an input
// word matches only the literal, case-sensitive query it was registered
// for.
type ExactTextResolver struct {
	index map[string]*table.ActionCell
}

// NewExactTextResolver returns a resolver ready to register with
// table.Build.
func NewExactTextResolver() *ExactTextResolver {
	return &ExactTextResolver{index: make(map[string]*table.ActionCell)}
}

func (r *ExactTextResolver) Register(q grammar.TerminalQuery, cell *table.ActionCell) {
	tq, ok := q.(TextQuery)
	if !ok || !tq.CaseSensitive {
		return
	}
	r.index[tq.Word] = cell
}

func (r *ExactTextResolver) Resolve(token interface{}) (*table.ActionCell, interface{}) {
	s, ok := token.(string)
	if !ok {
		return nil, nil
	}
	return r.index[s], nil
}

// CaseInsensitiveTextResolver resolves TextQuery terminals registered
// with CaseSensitive == false, matching regardless of input case.
type CaseInsensitiveTextResolver struct {
	index map[string]*table.ActionCell
}

// NewCaseInsensitiveTextResolver returns a resolver ready to register
// with table.Build.
func NewCaseInsensitiveTextResolver() *CaseInsensitiveTextResolver {
	return &CaseInsensitiveTextResolver{index: make(map[string]*table.ActionCell)}
}

func (r *CaseInsensitiveTextResolver) Register(q grammar.TerminalQuery, cell *table.ActionCell) {
	tq, ok := q.(TextQuery)
	if !ok || tq.CaseSensitive {
		return
	}
	r.index[strings.ToLower(tq.Word)] = cell
}

func (r *CaseInsensitiveTextResolver) Resolve(token interface{}) (*table.ActionCell, interface{}) {
	s, ok := token.(string)
	if !ok {
		return nil, nil
	}
	return r.index[strings.ToLower(s)], nil
}

// IntResolver resolves IntQuery terminals: any input word parseable with
// strconv.Atoi matches, and the parsed value is attached as metadata.
type IntResolver struct {
	cell *table.ActionCell
}

func NewIntResolver() *IntResolver { return &IntResolver{} }

func (r *IntResolver) Register(q grammar.TerminalQuery, cell *table.ActionCell) {
	if _, ok := q.(IntQuery); ok {
		r.cell = cell
	}
}

func (r *IntResolver) Resolve(token interface{}) (*table.ActionCell, interface{}) {
	s, ok := token.(string)
	if !ok {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, nil
	}
	return r.cell, v
}

// FloatResolver resolves FloatQuery terminals: any input word parseable
// with strconv.ParseFloat matches, and the parsed value is attached as
// metadata.
type FloatResolver struct {
	cell *table.ActionCell
}

func NewFloatResolver() *FloatResolver { return &FloatResolver{} }

func (r *FloatResolver) Register(q grammar.TerminalQuery, cell *table.ActionCell) {
	if _, ok := q.(FloatQuery); ok {
		r.cell = cell
	}
}

func (r *FloatResolver) Resolve(token interface{}) (*table.ActionCell, interface{}) {
	s, ok := token.(string)
	if !ok {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, nil
	}
	return r.cell, v
}

// defaultAlphabet is the substitution/insertion alphabet used when a
// LevenshteinTextResolver is constructed via NewLevenshteinTextResolver
// without overriding Alphabet: Latin and Cyrillic letters, digits and a
// handful of common punctuation marks.
const defaultAlphabet = " abcdefghijklmnopqrstuvwxyz" +
	"абвгдеёжзгдийклмнопрстуфхцчшщъыьэюя" +
	",./1234567890-=\\"

// defaultMinWordLength is the shortest word length a
// LevenshteinTextResolver will index fuzzily (spec's Open Question 3):
// below this, single-character edits change a word's meaning too easily
// to be worth tolerating.
const defaultMinWordLength = 4

// LevenshteinTextResolver resolves TextQuery terminals within edit
// distance 1 (deletion, substitution or insertion of a single rune from
// Alphabet) of the literal word, so that minor input typos still match.
// Only words of at least MinWordLength runes are indexed; shorter words
// fall back to exact matching via ExactTextResolver /
// CaseInsensitiveTextResolver.
type LevenshteinTextResolver struct {
	// Alphabet is the set of runes considered for substitution and
	// insertion when building a word's distance-1 neighborhood.
	Alphabet string
	// MinWordLength is the minimum rune length of a word this resolver
	// will index.
	MinWordLength int

	index map[string]*table.ActionCell
}

// NewLevenshteinTextResolver returns a resolver using the package's
// default alphabet and minimum word length, both of which may be
// overridden on the returned value before it is registered with
// table.Build.
func NewLevenshteinTextResolver() *LevenshteinTextResolver {
	return &LevenshteinTextResolver{
		Alphabet:      defaultAlphabet,
		MinWordLength: defaultMinWordLength,
		index:         make(map[string]*table.ActionCell),
	}
}

func (r *LevenshteinTextResolver) Register(q grammar.TerminalQuery, cell *table.ActionCell) {
	tq, ok := q.(TextQuery)
	if !ok {
		return
	}
	word := strings.ToLower(tq.Word)
	if len([]rune(word)) < r.MinWordLength {
		return
	}
	for _, variant := range distance1Variations(word, r.Alphabet) {
		r.index[variant] = cell
	}
}

func (r *LevenshteinTextResolver) Resolve(token interface{}) (*table.ActionCell, interface{}) {
	s, ok := token.(string)
	if !ok {
		return nil, nil
	}
	return r.index[strings.ToLower(s)], nil
}

// distance1Variations yields original plus every string reachable from it
// by a single deletion, substitution or insertion of a rune from
// alphabet, matching the Python reference implementation rune-for-rune
// (operating on runes rather than bytes so non-ASCII alphabets behave).
func distance1Variations(original, alphabet string) []string {
	runes := []rune(original)
	letters := []rune(alphabet)

	variants := make([]string, 0, len(runes)*(2*len(letters)+1)+len(letters)+1)
	variants = append(variants, original)

	for i := range runes {
		// deletion
		variants = append(variants, string(runes[:i])+string(runes[i+1:]))

		for _, ch := range letters {
			// substitution
			variants = append(variants, string(runes[:i])+string(ch)+string(runes[i+1:]))
			// insertion before i
			variants = append(variants, string(runes[:i])+string(ch)+string(runes[i:]))
		}
	}

	for _, ch := range letters {
		// insertion at the end
		variants = append(variants, original+string(ch))
	}

	return variants
}
