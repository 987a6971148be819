package parser

import (
	"testing"

	"github.com/Priya00300/CppCompiler/internal/lexer"
)

func TestPrecedenceOrdering(t *testing.T) {
	// Each pair must bind strictly tighter left to right.
	ladder := []lexer.TokenType{
		lexer.TokenAssign,
		lexer.TokenOr,
		lexer.TokenAnd,
		lexer.TokenBitOr,
		lexer.TokenBitXor,
		lexer.TokenBitAnd,
		lexer.TokenEqual,
		lexer.TokenLess,
		lexer.TokenPlus,
		lexer.TokenShl,
		lexer.TokenStar,
		lexer.TokenPlusPlus,
	}

	for i := 1; i < len(ladder); i++ {
		lo, hi := ladder[i-1], ladder[i]
		if getPrecedence(lo) >= getPrecedence(hi) {
			t.Errorf("%s (%d) should bind looser than %s (%d)",
				lo, getPrecedence(lo), hi, getPrecedence(hi))
		}
	}
}

func TestSamePrecedenceWithinFamily(t *testing.T) {
	pairs := [][2]lexer.TokenType{
		{lexer.TokenPlus, lexer.TokenMinus},
		{lexer.TokenStar, lexer.TokenSlash},
		{lexer.TokenStar, lexer.TokenPercent},
		{lexer.TokenEqual, lexer.TokenNotEqual},
		{lexer.TokenLess, lexer.TokenGreaterEqual},
		{lexer.TokenShl, lexer.TokenShr},
		{lexer.TokenAssign, lexer.TokenPlusEq},
	}

	for _, pair := range pairs {
		if getPrecedence(pair[0]) != getPrecedence(pair[1]) {
			t.Errorf("%s and %s should share a precedence level", pair[0], pair[1])
		}
	}
}

func TestNonOperatorsHaveNoPrecedence(t *testing.T) {
	for _, tt := range []lexer.TokenType{
		lexer.TokenIntLit, lexer.TokenIdentifier, lexer.TokenSemicolon,
		lexer.TokenRightParen, lexer.TokenEOF, lexer.TokenError,
	} {
		if getPrecedence(tt) != PrecNone {
			t.Errorf("%s has precedence %d, want none", tt, getPrecedence(tt))
		}
	}
}

func TestRightAssociativity(t *testing.T) {
	for _, tt := range []lexer.TokenType{
		lexer.TokenAssign, lexer.TokenPlusEq, lexer.TokenMinusEq,
		lexer.TokenStarEq, lexer.TokenSlashEq,
	} {
		if !isRightAssociative(tt) {
			t.Errorf("%s should be right-associative", tt)
		}
	}
	for _, tt := range []lexer.TokenType{
		lexer.TokenPlus, lexer.TokenStar, lexer.TokenEqual, lexer.TokenAnd,
	} {
		if isRightAssociative(tt) {
			t.Errorf("%s should be left-associative", tt)
		}
	}
}
