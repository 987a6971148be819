package lexer

import "testing"

func TestTokenTypeString(t *testing.T) {
	tests := []struct {
		tt   TokenType
		want string
	}{
		{TokenEOF, "EOF"},
		{TokenIntLit, "INTLIT"},
		{TokenIdentifier, "IDENTIFIER"},
		{TokenIf, "IF"},
		{TokenShl, "SHL"},
		{TokenSemicolon, "SEMICOLON"},
		{TokenType(-1), "UNKNOWN"},
		{TokenType(9999), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.tt.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	tok := Token{Type: TokenIntLit, Lexeme: "42", Line: 3, Column: 17}
	if got, want := tok.String(), "INTLIT(42) at 3:17"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		want TokenType
	}{
		{"int", TokenInt},
		{"float", TokenFloat},
		{"while", TokenWhile},
		{"cout", TokenCout},
		{"endl", TokenEndl},
		{"true", TokenTrue},
		{"namespace", TokenNamespace},
		{"main", TokenIdentifier},
		{"Int", TokenIdentifier}, // keywords are case-sensitive
		{"", TokenIdentifier},
	}

	for _, tt := range tests {
		if got := LookupKeyword(tt.text); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestPredicates(t *testing.T) {
	if !TokenInt.IsKeyword() || !TokenInclude.IsKeyword() {
		t.Error("keyword range endpoints not recognized")
	}
	if TokenIdentifier.IsKeyword() || TokenPlus.IsKeyword() {
		t.Error("non-keywords classified as keywords")
	}

	if !TokenIntLit.IsLiteral() || !TokenCharLit.IsLiteral() {
		t.Error("literal range endpoints not recognized")
	}
	if TokenIdentifier.IsLiteral() {
		t.Error("identifier classified as literal")
	}

	for _, tt := range []TokenType{TokenInt, TokenFloat, TokenChar, TokenDouble, TokenBool} {
		if !tt.IsTypeKeyword() {
			t.Errorf("%s not recognized as type keyword", tt)
		}
	}
	if TokenVoid.IsTypeKeyword() || TokenIf.IsTypeKeyword() {
		t.Error("non-declaring keyword classified as type keyword")
	}

	for _, tt := range []TokenType{TokenAssign, TokenPlusEq, TokenMinusEq, TokenStarEq, TokenSlashEq} {
		if !tt.IsAssignOp() {
			t.Errorf("%s not recognized as assignment operator", tt)
		}
	}
	if TokenEqual.IsAssignOp() {
		t.Error("== classified as assignment operator")
	}
}
