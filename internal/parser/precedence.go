package parser

import (
	"github.com/Priya00300/CppCompiler/internal/lexer"
)

// Precedence is an operator binding level; higher binds tighter. The
// levels are spaced out so new operators can slot in between existing
// ones without renumbering.
//
// PRECEDENCE TABLE (highest to lowest):
//
//	50  ++ --
//	40  * / %
//	35  << >>
//	30  + -
//	25  < > <= >=
//	20  == !=
//	15  &
//	14  ^
//	13  |
//	 5  &&
//	 3  ||
//	 2  = += -= *= /=
//	 0  everything else (stops the climbing loop)
type Precedence int

const (
	PrecNone       Precedence = 0
	PrecAssignment Precedence = 2
	PrecOr         Precedence = 3
	PrecAnd        Precedence = 5
	PrecBitOr      Precedence = 13
	PrecBitXor     Precedence = 14
	PrecBitAnd     Precedence = 15
	PrecEquality   Precedence = 20
	PrecComparison Precedence = 25
	PrecTerm       Precedence = 30
	PrecShift      Precedence = 35
	PrecFactor     Precedence = 40
	PrecIncDec     Precedence = 50
)

// getPrecedence returns the binding level for a token type, PrecNone for
// non-operators. The precedence-climbing loop keeps consuming operators
// while their level is at least the current minimum.
func getPrecedence(tt lexer.TokenType) Precedence {
	switch tt {
	case lexer.TokenAssign,
		lexer.TokenPlusEq,
		lexer.TokenMinusEq,
		lexer.TokenStarEq,
		lexer.TokenSlashEq:
		return PrecAssignment

	case lexer.TokenOr:
		return PrecOr

	case lexer.TokenAnd:
		return PrecAnd

	case lexer.TokenBitOr:
		return PrecBitOr

	case lexer.TokenBitXor:
		return PrecBitXor

	case lexer.TokenBitAnd:
		return PrecBitAnd

	case lexer.TokenEqual, lexer.TokenNotEqual:
		return PrecEquality

	case lexer.TokenLess,
		lexer.TokenLessEqual,
		lexer.TokenGreater,
		lexer.TokenGreaterEqual:
		return PrecComparison

	case lexer.TokenPlus, lexer.TokenMinus:
		return PrecTerm

	case lexer.TokenShl, lexer.TokenShr:
		return PrecShift

	case lexer.TokenStar, lexer.TokenSlash, lexer.TokenPercent:
		return PrecFactor

	case lexer.TokenPlusPlus, lexer.TokenMinusMinus:
		return PrecIncDec

	default:
		return PrecNone
	}
}

// isRightAssociative reports whether the operator chains to the right.
// Only the assignment family does: a = b = c parses as a = (b = c),
// while 10 - 2 - 3 stays (10 - 2) - 3.
func isRightAssociative(tt lexer.TokenType) bool {
	return tt.IsAssignOp()
}
