package text

import (
	"strings"

	"github.com/mirelson/tokema/eof"
)

// Tokenize splits src on whitespace into a slice of word tokens suitable
// for a parsing.TokenIterator. If addEOF is true, eof.Token is appended as
// the final element.
func Tokenize(src string, addEOF bool) []interface{} {
	fields := strings.Fields(src)
	tokens := make([]interface{}, 0, len(fields)+1)
	for _, f := range fields {
		tokens = append(tokens, f)
	}
	if addEOF {
		tokens = append(tokens, eof.Token)
	}
	return tokens
}
