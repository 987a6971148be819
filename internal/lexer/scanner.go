package lexer

import (
	"fmt"
	"strings"
)

// Scanner performs lexical analysis over source text.
//
// The scanner is the first phase of compilation. It breaks source into
// tokens, tracks line/column positions, skips whitespace and comments,
// and represents malformed input as error tokens instead of failing:
// NextToken never returns a Go error, and once the source is exhausted
// it returns TokenEOF forever.
//
// The zero Scanner is not usable; construct one with New (string-backed)
// or NewFileSource (file-backed, see source.go).
type Scanner struct {
	// src is the source text scanned so far. For the string-backed
	// scanner this is the complete source; the file-backed source grows
	// it on demand through fill. The buffer only ever grows, which keeps
	// PeekToken's snapshot/restore valid.
	src string

	// fill appends more source text when the scanner reaches the end of
	// src. It returns false once the underlying input is exhausted.
	// nil for string-backed scanning.
	fill func() (string, bool)

	// filled is set once fill has reported exhaustion.
	filled bool

	// start is the byte offset of the token currently being scanned.
	start int

	// cur is the byte offset being examined.
	cur int

	// line is the current 1-based line number.
	line int

	// lineStart is the byte offset where the current line began.
	// Columns are computed as offset-lineStart+1.
	lineStart int
}

// New creates a string-backed Scanner for the given source text.
func New(source string) *Scanner {
	return &Scanner{
		src:  source,
		line: 1,
	}
}

// Line returns the current 1-based line number.
func (s *Scanner) Line() int { return s.line }

// Column returns the current 1-based column number.
func (s *Scanner) Column() int { return s.cur - s.lineStart + 1 }

// NextToken returns the next token from the source.
//
// Scanning rules, applied in priority order and re-applied in a loop
// until a token is produced:
//  1. Runs of space/tab/CR are skipped.
//  2. // and /* */ comments are skipped; multi-line block comments keep
//     the line counter correct, and an unterminated block comment
//     silently reaches end of input.
//  3. A literal '\n' yields a TokenNewline and advances the line counter.
//  4. Digits start a number scan.
//  5. A double quote starts a string scan, a single quote a character scan.
//  6. Letters and '_' start an identifier/keyword scan.
//  7. Everything else is a maximal-munch operator scan, defaulting to an
//     error token for unrecognized characters.
func (s *Scanner) NextToken() Token {
	for {
		s.skipWhitespace()
		s.start = s.cur

		if s.atEnd() {
			return s.makeToken(TokenEOF, "")
		}

		ch := s.peek()

		// Comments restart the scan loop once skipped.
		if ch == '/' {
			if s.peekNext() == '/' {
				s.skipLineComment()
				continue
			}
			if s.peekNext() == '*' {
				s.skipBlockComment()
				continue
			}
		}

		if ch == '\n' {
			s.advance()
			tok := s.makeToken(TokenNewline, "\\n")
			s.line++
			s.lineStart = s.cur
			return tok
		}

		if isDigit(ch) {
			return s.scanNumber()
		}
		if ch == '"' {
			return s.scanString()
		}
		if ch == '\'' {
			return s.scanChar()
		}
		if isAlpha(ch) {
			return s.scanIdentifier()
		}
		return s.scanOperator()
	}
}

// PeekToken returns the next token without consuming it. It snapshots
// all positional state, calls NextToken, and restores the snapshot.
// The source buffer only grows, so restoring offsets is always safe.
func (s *Scanner) PeekToken() Token {
	start, cur := s.start, s.cur
	line, lineStart := s.line, s.lineStart

	tok := s.NextToken()

	s.start, s.cur = start, cur
	s.line, s.lineStart = line, lineStart
	return tok
}

// atEnd reports whether all source has been consumed, pulling more text
// from fill first when one is attached.
func (s *Scanner) atEnd() bool {
	for s.cur >= len(s.src) {
		if s.fill == nil || s.filled {
			return true
		}
		chunk, ok := s.fill()
		if !ok {
			s.filled = true
		}
		s.src += chunk
	}
	return false
}

// peek returns the current byte without advancing, or 0 at end of input.
func (s *Scanner) peek() byte {
	if s.atEnd() {
		return 0
	}
	return s.src[s.cur]
}

// peekNext returns the byte after the current one, or 0 if none remains.
func (s *Scanner) peekNext() byte {
	if s.atEnd() || s.cur+1 >= len(s.src) {
		return 0
	}
	return s.src[s.cur+1]
}

// advance consumes and returns the current byte.
func (s *Scanner) advance() byte {
	if s.atEnd() {
		return 0
	}
	ch := s.src[s.cur]
	s.cur++
	return ch
}

// match consumes the current byte and reports true if it equals expected.
func (s *Scanner) match(expected byte) bool {
	if s.atEnd() || s.src[s.cur] != expected {
		return false
	}
	s.cur++
	return true
}

// skipWhitespace skips runs of space, tab, and carriage return.
// Newlines are not skipped here: they become tokens so that line
// bookkeeping happens exactly once, in NextToken.
func (s *Scanner) skipWhitespace() {
	for !s.atEnd() {
		switch s.peek() {
		case ' ', '\t', '\r':
			s.advance()
		default:
			return
		}
	}
}

// skipLineComment consumes "//" up to (not including) the newline, so
// the newline still produces its token.
func (s *Scanner) skipLineComment() {
	s.advance() // /
	s.advance() // /
	for !s.atEnd() && s.peek() != '\n' {
		s.advance()
	}
}

// skipBlockComment consumes "/* ... */". Nesting is not supported: the
// first "*/" closes the comment. Newline crossings keep the line counter
// correct, and an unterminated comment silently reaches end of input.
func (s *Scanner) skipBlockComment() {
	s.advance() // /
	s.advance() // *
	for !s.atEnd() {
		ch := s.advance()
		if ch == '*' && s.peek() == '/' {
			s.advance()
			return
		}
		if ch == '\n' {
			s.line++
			s.lineStart = s.cur
		}
	}
}

// scanNumber scans an integer or floating-point literal.
//
// RULES:
//   - digits, then at most one '.' with optional digits after it; a
//     second '.' ends the number rather than being consumed
//   - optional exponent [eE][+-]?digits; without a digit the 'e' is left
//     for the next token
//   - optional trailing suffix f/F/l/L, consumed but not part of the lexeme
//
// The token is a float literal if a '.', an exponent, or an f/F suffix
// was seen, otherwise an int literal.
func (s *Scanner) scanNumber() Token {
	isFloat := false

	for !s.atEnd() && isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() == '.' {
		isFloat = true
		s.advance()
		for !s.atEnd() && isDigit(s.peek()) {
			s.advance()
		}
	}

	if s.peek() == 'e' || s.peek() == 'E' {
		saved := s.cur
		s.advance()
		if s.peek() == '+' || s.peek() == '-' {
			s.advance()
		}
		if isDigit(s.peek()) {
			isFloat = true
			for !s.atEnd() && isDigit(s.peek()) {
				s.advance()
			}
		} else {
			// Not an exponent after all.
			s.cur = saved
		}
	}

	text := s.src[s.start:s.cur]

	switch s.peek() {
	case 'f', 'F':
		isFloat = true
		s.advance()
	case 'l', 'L':
		s.advance()
	}

	if isFloat {
		return s.makeToken(TokenFloatLit, text)
	}
	return s.makeToken(TokenIntLit, text)
}

// scanString scans a double-quoted string literal, decoding escapes into
// the lexeme. An unterminated string (newline or end of input before the
// closing quote) produces an error token.
func (s *Scanner) scanString() Token {
	s.advance() // opening quote

	var out strings.Builder
	for !s.atEnd() {
		ch := s.peek()
		if ch == '"' {
			s.advance()
			return s.makeToken(TokenStringLit, out.String())
		}
		if ch == '\n' {
			return s.errorToken("unterminated string literal")
		}
		if ch == '\\' {
			s.advance()
			if s.atEnd() {
				break
			}
			out.WriteString(decodeEscape(s.advance()))
			continue
		}
		out.WriteByte(s.advance())
	}
	return s.errorToken("unterminated string literal")
}

// scanChar scans a single-quoted character literal: exactly one
// character, escaped or not, before the closing quote.
func (s *Scanner) scanChar() Token {
	s.advance() // opening quote

	if s.atEnd() || s.peek() == '\n' {
		return s.errorToken("unterminated character literal")
	}

	var value string
	if s.peek() == '\\' {
		s.advance()
		if s.atEnd() {
			return s.errorToken("unterminated character literal")
		}
		value = decodeEscape(s.advance())
	} else {
		value = string(s.advance())
	}

	if !s.match('\'') {
		return s.errorToken("unterminated character literal")
	}
	return s.makeToken(TokenCharLit, value)
}

// scanIdentifier scans [A-Za-z_][A-Za-z0-9_]* and classifies it against
// the keyword table.
func (s *Scanner) scanIdentifier() Token {
	for !s.atEnd() && isAlnum(s.peek()) {
		s.advance()
	}
	text := s.src[s.start:s.cur]
	return s.makeToken(LookupKeyword(text), text)
}

// scanOperator scans a 1-2 character operator or delimiter with maximal
// munch ("<=" before "<", "<<" before "<"). Unrecognized characters
// produce an error token.
func (s *Scanner) scanOperator() Token {
	ch := s.advance()

	switch ch {
	case '+':
		if s.match('+') {
			return s.makeToken(TokenPlusPlus, "++")
		}
		if s.match('=') {
			return s.makeToken(TokenPlusEq, "+=")
		}
		return s.makeToken(TokenPlus, "+")
	case '-':
		if s.match('-') {
			return s.makeToken(TokenMinusMinus, "--")
		}
		if s.match('=') {
			return s.makeToken(TokenMinusEq, "-=")
		}
		if s.match('>') {
			return s.makeToken(TokenArrow, "->")
		}
		return s.makeToken(TokenMinus, "-")
	case '*':
		if s.match('=') {
			return s.makeToken(TokenStarEq, "*=")
		}
		return s.makeToken(TokenStar, "*")
	case '/':
		// Comments were handled before dispatch.
		if s.match('=') {
			return s.makeToken(TokenSlashEq, "/=")
		}
		return s.makeToken(TokenSlash, "/")
	case '%':
		return s.makeToken(TokenPercent, "%")
	case '=':
		if s.match('=') {
			return s.makeToken(TokenEqual, "==")
		}
		return s.makeToken(TokenAssign, "=")
	case '!':
		if s.match('=') {
			return s.makeToken(TokenNotEqual, "!=")
		}
		return s.makeToken(TokenNot, "!")
	case '<':
		if s.match('<') {
			return s.makeToken(TokenShl, "<<")
		}
		if s.match('=') {
			return s.makeToken(TokenLessEqual, "<=")
		}
		return s.makeToken(TokenLess, "<")
	case '>':
		if s.match('>') {
			return s.makeToken(TokenShr, ">>")
		}
		if s.match('=') {
			return s.makeToken(TokenGreaterEqual, ">=")
		}
		return s.makeToken(TokenGreater, ">")
	case '&':
		if s.match('&') {
			return s.makeToken(TokenAnd, "&&")
		}
		return s.makeToken(TokenBitAnd, "&")
	case '|':
		if s.match('|') {
			return s.makeToken(TokenOr, "||")
		}
		return s.makeToken(TokenBitOr, "|")
	case '^':
		return s.makeToken(TokenBitXor, "^")
	case '~':
		return s.makeToken(TokenBitNot, "~")
	case ':':
		if s.match(':') {
			return s.makeToken(TokenColonColon, "::")
		}
		return s.makeToken(TokenColon, ":")
	case ';':
		return s.makeToken(TokenSemicolon, ";")
	case ',':
		return s.makeToken(TokenComma, ",")
	case '(':
		return s.makeToken(TokenLeftParen, "(")
	case ')':
		return s.makeToken(TokenRightParen, ")")
	case '{':
		return s.makeToken(TokenLeftBrace, "{")
	case '}':
		return s.makeToken(TokenRightBrace, "}")
	case '[':
		return s.makeToken(TokenLeftBracket, "[")
	case ']':
		return s.makeToken(TokenRightBracket, "]")
	case '.':
		return s.makeToken(TokenDot, ".")
	case '?':
		return s.makeToken(TokenQuestion, "?")
	case '#':
		return s.makeToken(TokenHash, "#")
	default:
		return s.errorToken(fmt.Sprintf("unexpected character: %q", ch))
	}
}

// decodeEscape resolves one character of the escape table. Unknown
// escapes pass through literally as backslash plus the character.
func decodeEscape(ch byte) string {
	switch ch {
	case 'n':
		return "\n"
	case 't':
		return "\t"
	case 'r':
		return "\r"
	case '\\':
		return "\\"
	case '"':
		return "\""
	case '\'':
		return "'"
	case '0':
		return "\x00"
	default:
		return "\\" + string(ch)
	}
}

// makeToken creates a token positioned at the start of the current scan.
func (s *Scanner) makeToken(tt TokenType, lexeme string) Token {
	return Token{
		Type:   tt,
		Lexeme: lexeme,
		Line:   s.line,
		Column: s.start - s.lineStart + 1,
	}
}

// errorToken creates an error token carrying message as its lexeme.
func (s *Scanner) errorToken(message string) Token {
	return s.makeToken(TokenError, message)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isAlpha(ch byte) bool {
	return ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch == '_'
}

func isAlnum(ch byte) bool {
	return isAlpha(ch) || isDigit(ch)
}
