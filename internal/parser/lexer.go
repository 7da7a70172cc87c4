package parser

import (
	"bufio"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Lexer tokenizes SGF input.
type Lexer struct {
	reader *bufio.Reader
	line   int
	column int
	peeked bool
	peekCh byte
	eof    bool
	log    *zap.SugaredLogger
}

// Character classification table
var chTab [256]TokenType

func init() {
	initLexTables()
}

// initLexTables initializes the character classification table.
func initLexTables() {
	for i := range chTab {
		chTab[i] = ErrorToken
	}

	for _, c := range []byte{' ', '\t', '\r', '\n', '\f', '\v'} {
		chTab[c] = Whitespace
	}

	chTab['('] = TreeStart
	chTab[')'] = TreeEnd
	chTab[';'] = NodeStart
	chTab['['] = ValueStart
	chTab[']'] = ValueEnd

	for c := byte('A'); c <= 'Z'; c++ {
		chTab[c] = Alpha
		chTab[c+32] = Alpha
	}
}

// NewLexer creates a new lexer for the given reader.
// A nil logger discards warnings.
func NewLexer(r io.Reader, log *zap.SugaredLogger) *Lexer {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Lexer{
		reader: bufio.NewReader(r),
		line:   1,
		log:    log,
	}
}

// readByte returns the next input byte, tracking line and column.
func (l *Lexer) readByte() (byte, bool) {
	if l.peeked {
		l.peeked = false
		return l.consume(l.peekCh), true
	}
	if l.eof {
		return 0, false
	}
	ch, err := l.reader.ReadByte()
	if err != nil {
		l.eof = true
		return 0, false
	}
	return l.consume(ch), true
}

func (l *Lexer) consume(ch byte) byte {
	if ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
	return ch
}

// peekByte returns the next input byte without consuming it.
func (l *Lexer) peekByte() (byte, bool) {
	if l.peeked {
		return l.peekCh, true
	}
	if l.eof {
		return 0, false
	}
	ch, err := l.reader.ReadByte()
	if err != nil {
		l.eof = true
		return 0, false
	}
	l.peeked = true
	l.peekCh = ch
	return ch, true
}

// NextToken returns the next token from the input.
func (l *Lexer) NextToken() *Token {
	for {
		ch, ok := l.readByte()
		if !ok {
			return &Token{Type: EOFToken, Line: l.line, Column: l.column}
		}
		line, column := l.line, l.column

		switch chTab[ch] {
		case Whitespace:
			continue
		case TreeStart, TreeEnd, NodeStart:
			return &Token{Type: chTab[ch], Line: line, Column: column}
		case ValueStart:
			return l.gatherValue(line, column)
		case Alpha:
			return l.gatherIdent(ch, line, column)
		case ValueEnd:
			l.log.Warnw("unmatched ']'", "line", line, "column", column)
			continue
		default:
			return &Token{Type: ErrorToken, Text: string(ch), Line: line, Column: column}
		}
	}
}

// gatherIdent collects a property identifier. Lower case letters from older
// long-form identifiers such as "AddBlack" are dropped, leaving "AB".
func (l *Lexer) gatherIdent(first byte, line, column int) *Token {
	var sb strings.Builder
	if first >= 'A' && first <= 'Z' {
		sb.WriteByte(first)
	}
	for {
		ch, ok := l.peekByte()
		if !ok || chTab[ch] != Alpha {
			break
		}
		l.readByte()
		if ch >= 'A' && ch <= 'Z' {
			sb.WriteByte(ch)
		}
	}
	if sb.Len() == 0 {
		return &Token{Type: ErrorToken, Text: string(first), Line: line, Column: column}
	}
	return &Token{Type: PropIdent, Text: sb.String(), Line: line, Column: column}
}

// gatherValue collects the text up to the closing ']'. A backslash escapes
// the next character and a backslash before a line break removes both.
func (l *Lexer) gatherValue(line, column int) *Token {
	var sb strings.Builder
	for {
		ch, ok := l.readByte()
		if !ok {
			return &Token{Type: ErrorToken, Text: "end of input inside value", Line: line, Column: column}
		}
		switch ch {
		case ']':
			return &Token{Type: PropValue, Text: sb.String(), Line: line, Column: column}
		case '\\':
			next, ok := l.readByte()
			if !ok {
				return &Token{Type: ErrorToken, Text: "end of input inside value", Line: line, Column: column}
			}
			switch next {
			case '\n':
				if after, ok := l.peekByte(); ok && after == '\r' {
					l.readByte()
				}
			case '\r':
				if after, ok := l.peekByte(); ok && after == '\n' {
					l.readByte()
				}
			default:
				sb.WriteByte(next)
			}
		default:
			sb.WriteByte(ch)
		}
	}
}

// LineNumber returns the current line number.
func (l *Lexer) LineNumber() int {
	return l.line
}
