package text

import (
	"fmt"
	"strings"

	"github.com/mirelson/tokema/eof"
	"github.com/mirelson/tokema/grammar"
)

// ReaderOptions controls the BNF-ish grammar text format ParseRulesFromString
// accepts. The zero value is not usable; NewReaderOptions returns the
// conventional defaults, which match every worked example in spec §8.
type ReaderOptions struct {
	RuleSep        string // separates a production name from its body, default "="
	ProductionsSep string // separates alternative bodies on one line, default "|"
	LineComment    string // a line starting with this (after trimming) is skipped, default "#"
	ReferenceStart string // prefix marking a reference query, default "<"
	ReferenceEnd   string // suffix marking a reference query, default ">"
}

// NewReaderOptions returns the default separators.
func NewReaderOptions() ReaderOptions {
	return ReaderOptions{
		RuleSep:        "=",
		ProductionsSep: "|",
		LineComment:    "#",
		ReferenceStart: "<",
		ReferenceEnd:   ">",
	}
}

// ParseRulesFromString reads a small BNF-like grammar description, one
// production per line: "Name = body1 | body2 | ...", where each body is a
// whitespace-separated list of tokens. A token wrapped in <angle
// brackets> becomes a grammar.ReferenceQuery; the literal "{EOF}", "{int}"
// and "{float}" become eof.Query, IntQuery and FloatQuery respectively;
// anything else becomes a case-sensitive TextQuery. Blank lines and lines
// starting with the comment marker are skipped.
//
// ParseRulesFromString validates its input and returns a *ReaderError
// (rather than panicking, unlike grammar.NewRule) because grammar text is
// ordinarily user-supplied, not a trusted Go literal.
func ParseRulesFromString(raw string, opts ReaderOptions) ([]*grammar.Rule, error) {
	var rules []*grammar.Rule
	for lineNo, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, opts.LineComment) {
			continue
		}
		parsed, err := parseRuleLine(line, opts)
		if err != nil {
			return nil, &ReaderError{Line: lineNo + 1, Text: line, Err: err}
		}
		rules = append(rules, parsed...)
	}
	return rules, nil
}

// ReaderError reports a malformed grammar-text line, carrying the 1-based
// line number and original text for diagnostics.
type ReaderError struct {
	Line int
	Text string
	Err  error
}

func (e *ReaderError) Error() string {
	return fmt.Sprintf("text: line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *ReaderError) Unwrap() error { return e.Err }

func parseRuleLine(line string, opts ReaderOptions) ([]*grammar.Rule, error) {
	sepIdx := strings.Index(line, opts.RuleSep)
	if sepIdx < 0 {
		return nil, fmt.Errorf("missing separator %q", opts.RuleSep)
	}
	production := strings.TrimSpace(line[:sepIdx])
	if production == "" {
		return nil, fmt.Errorf("missing production name")
	}

	body := line[sepIdx+len(opts.RuleSep):]
	if strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("missing rule body")
	}

	var rules []*grammar.Rule
	for _, alt := range strings.Split(body, opts.ProductionsSep) {
		fields := strings.Fields(alt)
		if len(fields) == 0 {
			return nil, fmt.Errorf("empty alternative in production %q", production)
		}
		queries := make([]grammar.Query, 0, len(fields))
		for _, f := range fields {
			queries = append(queries, queryFor(f, opts))
		}
		rules = append(rules, grammar.NewRule(production, queries...))
	}
	return rules, nil
}

func queryFor(token string, opts ReaderOptions) grammar.Query {
	switch {
	case strings.HasPrefix(token, opts.ReferenceStart) && strings.HasSuffix(token, opts.ReferenceEnd):
		name := strings.TrimSuffix(strings.TrimPrefix(token, opts.ReferenceStart), opts.ReferenceEnd)
		return grammar.ReferenceQuery{Reference: name}
	case token == eof.Query{}.String():
		return eof.Query{}
	case token == IntQuery{}.String():
		return IntQuery{}
	case token == FloatQuery{}.String():
		return FloatQuery{}
	default:
		return TextQuery{Word: token, CaseSensitive: true}
	}
}
