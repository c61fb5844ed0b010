package lexer

import (
	"strings"
)

var parenSpacer = strings.NewReplacer(
	"(", " ( ",
	")", " ) ",
)

// Tokenize splits the input into tokens. Parentheses are always tokens of
// their own, everything else is separated by whitespace. Tokenize never
// fails: malformed input produces tokens the parser will reject.
func Tokenize(in string) []string {
	tokens := strings.Fields(parenSpacer.Replace(in))
	if tokens == nil {
		return []string{}
	}
	return tokens
}

// TokenizeBytes is like Tokenize but takes an array of bytes.
func TokenizeBytes(in []byte) []string {
	return Tokenize(string(in))
}
