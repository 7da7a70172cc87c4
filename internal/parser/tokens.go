// Package parser provides SGF lexing and parsing functionality.
package parser

// TokenType represents the type of a lexical token.
type TokenType int

const (
	// Tokens returned to the parser
	EOFToken TokenType = iota
	TreeStart
	TreeEnd
	NodeStart
	PropIdent
	PropValue

	// Internal tokens used for identification
	Whitespace
	ValueStart
	ValueEnd
	Alpha
	NoToken
	ErrorToken
)

// tokenTypeNames maps token types to their string representations.
var tokenTypeNames = [...]string{
	EOFToken:   "EOF",
	TreeStart:  "'('",
	TreeEnd:    "')'",
	NodeStart:  "';'",
	PropIdent:  "property identifier",
	PropValue:  "property value",
	Whitespace: "WHITESPACE",
	ValueStart: "'['",
	ValueEnd:   "']'",
	Alpha:      "ALPHA",
	NoToken:    "NO_TOKEN",
	ErrorToken: "ERROR_TOKEN",
}

// String returns the string representation of a token type.
func (t TokenType) String() string {
	if int(t) < len(tokenTypeNames) {
		return tokenTypeNames[t]
	}
	return "UNKNOWN"
}

// Token represents a lexical token with its value.
type Token struct {
	Type TokenType

	// Text holds the identifier or the unescaped value
	Text string

	// Line and column of the first character, for error reporting
	Line   int
	Column int
}

// describe returns the token as it should appear in an error message.
func (t *Token) describe() string {
	switch t.Type {
	case PropIdent:
		return "identifier " + t.Text
	case PropValue:
		return "value [" + t.Text + "]"
	case ErrorToken:
		if len(t.Text) == 1 {
			return "character " + quoteText(t.Text)
		}
		return t.Text
	}
	return t.Type.String()
}

func quoteText(s string) string {
	return "'" + s + "'"
}
