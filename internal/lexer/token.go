// Package lexer provides lexical analysis (tokenization) for the compiler.
// It transforms raw source text into a stream of tokens consumed by the parser.
package lexer

import "strconv"

// TokenType identifies the lexical class of a token.
//
// The enumeration is grouped so that range checks stay cheap:
// 1. Sentinel tokens (EOF, Error, Newline, Comment)
// 2. Literals
// 3. Identifier and keywords
// 4. Operators
// 5. Delimiters
type TokenType int

const (
	// Sentinel tokens

	// TokenEOF marks the end of the input. The scanner returns it forever
	// once the source is exhausted, so the parser needs no special case
	// for running off the end.
	TokenEOF TokenType = iota

	// TokenError represents a lexical error (unterminated literal,
	// unrecognized character). The human-readable message is carried in
	// Lexeme; the scanner itself never fails, the parser decides what to
	// do with the token.
	TokenError

	// TokenNewline is produced for every literal '\n'. The parser's
	// token-advance primitive discards it; it exists so the scanner can
	// keep line/column bookkeeping in one place.
	TokenNewline

	// TokenComment represents a // or /* */ comment. The parser skips it.
	TokenComment

	// Literals

	TokenIntLit    // 42
	TokenFloatLit  // 3.14, 1e9, 2.5f
	TokenStringLit // "hello"
	TokenCharLit   // 'a', '\n'

	// TokenIdentifier is any name that is not a keyword.
	TokenIdentifier

	// Keywords - type names

	TokenInt
	TokenFloat
	TokenChar
	TokenDouble
	TokenBool
	TokenVoid

	// Keywords - control flow

	TokenIf
	TokenElse
	TokenWhile
	TokenFor
	TokenReturn

	// Keywords - I/O

	TokenCout
	TokenCin
	TokenEndl

	// Keywords - literals and the rest of the surface C++ vocabulary.
	// class/public/private/protected/namespace/std/using/include are
	// recognized so the scanner classifies them correctly even though the
	// statement grammar rejects them.

	TokenTrue
	TokenFalse
	TokenConst
	TokenClass
	TokenPublic
	TokenPrivate
	TokenProtected
	TokenNamespace
	TokenStd
	TokenUsing
	TokenInclude

	// Operators - arithmetic

	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenPercent // %

	// Operators - comparison

	TokenEqual        // ==
	TokenNotEqual     // !=
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Operators - logical

	TokenAnd // &&
	TokenOr  // ||
	TokenNot // !

	// Operators - bitwise

	TokenBitAnd // &
	TokenBitOr  // |
	TokenBitXor // ^
	TokenBitNot // ~
	TokenShl    // <<
	TokenShr    // >>

	// Operators - assignment family

	TokenAssign  // =
	TokenPlusEq  // +=
	TokenMinusEq // -=
	TokenStarEq  // *=
	TokenSlashEq // /=

	// Operators - increment/decrement

	TokenPlusPlus   // ++
	TokenMinusMinus // --

	// Operators - other

	TokenArrow      // ->
	TokenColonColon // ::

	// Delimiters

	TokenSemicolon    // ;
	TokenComma        // ,
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenColon        // :
	TokenDot          // .
	TokenQuestion     // ?
	TokenHash         // #
)

// Token is a single lexical token.
//
// Token is a value type: tokens are small, immutable once produced, and
// cheap to copy. Line and Column are 1-based and point at the first
// character of the lexeme.
type Token struct {
	// Type is the token's lexical class.
	Type TokenType

	// Lexeme is the text of the token. For string and char literals this
	// is the decoded content (escapes resolved, quotes stripped); for
	// error tokens it is the error message.
	Lexeme string

	// Line is the 1-based source line of the token's first character.
	Line int

	// Column is the 1-based source column of the token's first character,
	// resetting to 1 after every newline.
	Column int
}

// String returns "TYPE(lexeme) at line:column" for debugging and errors.
func (t Token) String() string {
	return t.Type.String() + "(" + t.Lexeme + ") at " +
		strconv.Itoa(t.Line) + ":" + strconv.Itoa(t.Column)
}

// tokenNames maps every token type to its display name. Indexed by the
// enumeration value, so it must stay in declaration order.
var tokenNames = [...]string{
	TokenEOF:     "EOF",
	TokenError:   "ERROR",
	TokenNewline: "NEWLINE",
	TokenComment: "COMMENT",

	TokenIntLit:     "INTLIT",
	TokenFloatLit:   "FLOATLIT",
	TokenStringLit:  "STRINGLIT",
	TokenCharLit:    "CHARLIT",
	TokenIdentifier: "IDENTIFIER",

	TokenInt:    "INT",
	TokenFloat:  "FLOAT",
	TokenChar:   "CHAR",
	TokenDouble: "DOUBLE",
	TokenBool:   "BOOL",
	TokenVoid:   "VOID",

	TokenIf:     "IF",
	TokenElse:   "ELSE",
	TokenWhile:  "WHILE",
	TokenFor:    "FOR",
	TokenReturn: "RETURN",

	TokenCout: "COUT",
	TokenCin:  "CIN",
	TokenEndl: "ENDL",

	TokenTrue:      "TRUE",
	TokenFalse:     "FALSE",
	TokenConst:     "CONST",
	TokenClass:     "CLASS",
	TokenPublic:    "PUBLIC",
	TokenPrivate:   "PRIVATE",
	TokenProtected: "PROTECTED",
	TokenNamespace: "NAMESPACE",
	TokenStd:       "STD",
	TokenUsing:     "USING",
	TokenInclude:   "INCLUDE",

	TokenPlus:    "PLUS",
	TokenMinus:   "MINUS",
	TokenStar:    "STAR",
	TokenSlash:   "SLASH",
	TokenPercent: "PERCENT",

	TokenEqual:        "EQUAL",
	TokenNotEqual:     "NOTEQUAL",
	TokenLess:         "LESS",
	TokenGreater:      "GREATER",
	TokenLessEqual:    "LESSEQUAL",
	TokenGreaterEqual: "GREATEREQUAL",

	TokenAnd: "AND",
	TokenOr:  "OR",
	TokenNot: "NOT",

	TokenBitAnd: "BITAND",
	TokenBitOr:  "BITOR",
	TokenBitXor: "BITXOR",
	TokenBitNot: "BITNOT",
	TokenShl:    "SHL",
	TokenShr:    "SHR",

	TokenAssign:  "ASSIGN",
	TokenPlusEq:  "PLUSEQ",
	TokenMinusEq: "MINUSEQ",
	TokenStarEq:  "STAREQ",
	TokenSlashEq: "SLASHEQ",

	TokenPlusPlus:   "PLUSPLUS",
	TokenMinusMinus: "MINUSMINUS",

	TokenArrow:      "ARROW",
	TokenColonColon: "COLONCOLON",

	TokenSemicolon:    "SEMICOLON",
	TokenComma:        "COMMA",
	TokenLeftParen:    "LPAREN",
	TokenRightParen:   "RPAREN",
	TokenLeftBrace:    "LBRACE",
	TokenRightBrace:   "RBRACE",
	TokenLeftBracket:  "LBRACKET",
	TokenRightBracket: "RBRACKET",
	TokenColon:        "COLON",
	TokenDot:          "DOT",
	TokenQuestion:     "QUESTION",
	TokenHash:         "HASH",
}

// String returns the display name of the token type.
func (tt TokenType) String() string {
	if tt >= 0 && int(tt) < len(tokenNames) && tokenNames[tt] != "" {
		return tokenNames[tt]
	}
	return "UNKNOWN"
}

// keywords maps keyword spellings to their token types. The map is a
// package-level literal and is never written after initialization.
var keywords = map[string]TokenType{
	"int":       TokenInt,
	"float":     TokenFloat,
	"char":      TokenChar,
	"double":    TokenDouble,
	"bool":      TokenBool,
	"void":      TokenVoid,
	"if":        TokenIf,
	"else":      TokenElse,
	"while":     TokenWhile,
	"for":       TokenFor,
	"return":    TokenReturn,
	"cout":      TokenCout,
	"cin":       TokenCin,
	"endl":      TokenEndl,
	"true":      TokenTrue,
	"false":     TokenFalse,
	"const":     TokenConst,
	"class":     TokenClass,
	"public":    TokenPublic,
	"private":   TokenPrivate,
	"protected": TokenProtected,
	"namespace": TokenNamespace,
	"std":       TokenStd,
	"using":     TokenUsing,
	"include":   TokenInclude,
}

// LookupKeyword classifies an identifier spelling: the keyword token type
// if it is a keyword, TokenIdentifier otherwise.
func LookupKeyword(name string) TokenType {
	if tt, ok := keywords[name]; ok {
		return tt
	}
	return TokenIdentifier
}

// IsKeyword reports whether the token type is a keyword.
func (tt TokenType) IsKeyword() bool {
	return tt >= TokenInt && tt <= TokenInclude
}

// IsLiteral reports whether the token type is a literal.
func (tt TokenType) IsLiteral() bool {
	return tt >= TokenIntLit && tt <= TokenCharLit
}

// IsTypeKeyword reports whether the token type starts a variable
// declaration (int, float, char, double, bool).
func (tt TokenType) IsTypeKeyword() bool {
	switch tt {
	case TokenInt, TokenFloat, TokenChar, TokenDouble, TokenBool:
		return true
	}
	return false
}

// IsAssignOp reports whether the token type belongs to the
// right-associative assignment family.
func (tt TokenType) IsAssignOp() bool {
	switch tt {
	case TokenAssign, TokenPlusEq, TokenMinusEq, TokenStarEq, TokenSlashEq:
		return true
	}
	return false
}
