package lexer

import (
	"os"
	"path/filepath"
	"testing"
)

// scanAll collects tokens up to and including EOF, skipping newline
// tokens to keep the expectations readable.
func scanAll(source string) []Token {
	s := New(source)
	var tokens []Token
	for {
		tok := s.NextToken()
		if tok.Type == TokenNewline {
			continue
		}
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}

func assertTypes(t *testing.T, tokens []Token, want []TokenType) {
	t.Helper()
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok.Type != want[i] {
			t.Errorf("token %d: got %s (%q), want %s", i, tok.Type, tok.Lexeme, want[i])
		}
	}
}

func TestScanDeclaration(t *testing.T) {
	tokens := scanAll("int x = 42;")
	assertTypes(t, tokens, []TokenType{
		TokenInt, TokenIdentifier, TokenAssign, TokenIntLit, TokenSemicolon, TokenEOF,
	})
	if tokens[1].Lexeme != "x" || tokens[3].Lexeme != "42" {
		t.Errorf("bad lexemes: %v", tokens)
	}
}

func TestScanOperatorsMaximalMunch(t *testing.T) {
	tests := []struct {
		source string
		want   []TokenType
	}{
		{"<< <= <", []TokenType{TokenShl, TokenLessEqual, TokenLess, TokenEOF}},
		{">> >= >", []TokenType{TokenShr, TokenGreaterEqual, TokenGreater, TokenEOF}},
		{"== =", []TokenType{TokenEqual, TokenAssign, TokenEOF}},
		{"!= !", []TokenType{TokenNotEqual, TokenNot, TokenEOF}},
		{"++ += +", []TokenType{TokenPlusPlus, TokenPlusEq, TokenPlus, TokenEOF}},
		{"-- -= -> -", []TokenType{TokenMinusMinus, TokenMinusEq, TokenArrow, TokenMinus, TokenEOF}},
		{"&& &", []TokenType{TokenAnd, TokenBitAnd, TokenEOF}},
		{"|| |", []TokenType{TokenOr, TokenBitOr, TokenEOF}},
		{":: :", []TokenType{TokenColonColon, TokenColon, TokenEOF}},
		{"*= /= ^ ~ %", []TokenType{TokenStarEq, TokenSlashEq, TokenBitXor, TokenBitNot, TokenPercent, TokenEOF}},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			assertTypes(t, scanAll(tt.source), tt.want)
		})
	}
}

func TestScanKeywordsAndIdentifiers(t *testing.T) {
	tokens := scanAll("if else while forx for returning return")
	assertTypes(t, tokens, []TokenType{
		TokenIf, TokenElse, TokenWhile, TokenIdentifier, TokenFor,
		TokenIdentifier, TokenReturn, TokenEOF,
	})
}

func TestScanNumbers(t *testing.T) {
	tests := []struct {
		source string
		typ    TokenType
		lexeme string
	}{
		{"42", TokenIntLit, "42"},
		{"0", TokenIntLit, "0"},
		{"3.14", TokenFloatLit, "3.14"},
		{"1e10", TokenFloatLit, "1e10"},
		{"2.5e-3", TokenFloatLit, "2.5e-3"},
		{"10f", TokenFloatLit, "10"},
		{"10L", TokenIntLit, "10"},
		{"5.", TokenFloatLit, "5."},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tok := New(tt.source).NextToken()
			if tok.Type != tt.typ || tok.Lexeme != tt.lexeme {
				t.Errorf("got %s %q, want %s %q", tok.Type, tok.Lexeme, tt.typ, tt.lexeme)
			}
		})
	}
}

func TestNumberEdgeCases(t *testing.T) {
	// A second dot ends the number.
	tokens := scanAll("1.2.3")
	assertTypes(t, tokens, []TokenType{TokenFloatLit, TokenDot, TokenIntLit, TokenEOF})

	// 'e' without a following digit is not an exponent.
	tokens = scanAll("1e+")
	assertTypes(t, tokens, []TokenType{TokenIntLit, TokenIdentifier, TokenPlus, TokenEOF})

	// A trailing dot still makes a float.
	tokens = scanAll("1.x")
	assertTypes(t, tokens, []TokenType{TokenFloatLit, TokenIdentifier, TokenEOF})
}

func TestScanStringEscapes(t *testing.T) {
	tok := New(`"a\tb\n"`).NextToken()
	if tok.Type != TokenStringLit {
		t.Fatalf("got %s, want string literal", tok.Type)
	}
	if tok.Lexeme != "a\tb\n" {
		t.Errorf("lexeme = %q, want %q", tok.Lexeme, "a\tb\n")
	}

	// Unknown escapes pass through literally.
	tok = New(`"\q"`).NextToken()
	if tok.Lexeme != `\q` {
		t.Errorf("lexeme = %q, want %q", tok.Lexeme, `\q`)
	}
}

func TestScanCharLiteral(t *testing.T) {
	tests := []struct {
		source string
		lexeme string
	}{
		{`'a'`, "a"},
		{`'\n'`, "\n"},
		{`'\''`, "'"},
		{`'\0'`, "\x00"},
	}

	for _, tt := range tests {
		tok := New(tt.source).NextToken()
		if tok.Type != TokenCharLit || tok.Lexeme != tt.lexeme {
			t.Errorf("%s: got %s %q, want char %q", tt.source, tok.Type, tok.Lexeme, tt.lexeme)
		}
	}
}

func TestUnterminatedLiterals(t *testing.T) {
	tests := []string{
		`"abc`,
		"\"abc\ndef\"",
		`'a`,
		`'ab'`,
		`'`,
	}

	for _, source := range tests {
		tok := New(source).NextToken()
		if tok.Type != TokenError {
			t.Errorf("%q: got %s, want error token", source, tok.Type)
		}
	}
}

func TestUnexpectedCharacter(t *testing.T) {
	tok := New("@").NextToken()
	if tok.Type != TokenError {
		t.Fatalf("got %s, want error token", tok.Type)
	}
	if tok.Lexeme == "" {
		t.Error("error token carries no message")
	}

	// Scanning continues after the error token.
	s := New("@ 5")
	s.NextToken()
	if tok := s.NextToken(); tok.Type != TokenIntLit {
		t.Errorf("after error: got %s, want int literal", tok.Type)
	}
}

func TestComments(t *testing.T) {
	tokens := scanAll("1 // rest of line\n2 /* block\ncomment */ 3")
	assertTypes(t, tokens, []TokenType{TokenIntLit, TokenIntLit, TokenIntLit, TokenEOF})

	// Unterminated block comment silently reaches end of input.
	tokens = scanAll("1 /* never closed")
	assertTypes(t, tokens, []TokenType{TokenIntLit, TokenEOF})
}

func TestNewlineTokensAndLineTracking(t *testing.T) {
	s := New("a\nb")

	tok := s.NextToken()
	if tok.Type != TokenIdentifier || tok.Line != 1 || tok.Column != 1 {
		t.Errorf("a: got %s %d:%d", tok.Type, tok.Line, tok.Column)
	}

	tok = s.NextToken()
	if tok.Type != TokenNewline {
		t.Fatalf("got %s, want newline token", tok.Type)
	}

	tok = s.NextToken()
	if tok.Type != TokenIdentifier || tok.Line != 2 || tok.Column != 1 {
		t.Errorf("b: got %s at %d:%d, want 2:1", tok.Type, tok.Line, tok.Column)
	}
}

func TestColumnTracking(t *testing.T) {
	s := New("int abc = 5;")

	wantColumns := []int{1, 5, 9, 11, 12}
	for i, want := range wantColumns {
		tok := s.NextToken()
		if tok.Column != want {
			t.Errorf("token %d (%q): column = %d, want %d", i, tok.Lexeme, tok.Column, want)
		}
	}
}

func TestBlockCommentLineTracking(t *testing.T) {
	s := New("/* one\ntwo */ x")
	tok := s.NextToken()
	if tok.Line != 2 {
		t.Errorf("token after multi-line comment: line = %d, want 2", tok.Line)
	}
}

func TestPeekTokenDoesNotConsume(t *testing.T) {
	s := New("1 + 2")

	peeked := s.PeekToken()
	if peeked.Type != TokenIntLit || peeked.Lexeme != "1" {
		t.Fatalf("peek: got %s %q", peeked.Type, peeked.Lexeme)
	}

	// Peeking is repeatable and NextToken returns the same token.
	if again := s.PeekToken(); again != peeked {
		t.Errorf("second peek differs: %v vs %v", again, peeked)
	}
	if next := s.NextToken(); next != peeked {
		t.Errorf("next differs from peek: %v vs %v", next, peeked)
	}

	if tok := s.NextToken(); tok.Type != TokenPlus {
		t.Errorf("after consuming peeked token: got %s, want +", tok.Type)
	}
}

func TestEOFIsSticky(t *testing.T) {
	s := New("x")
	s.NextToken()
	for i := 0; i < 3; i++ {
		if tok := s.NextToken(); tok.Type != TokenEOF {
			t.Fatalf("call %d after end: got %s, want EOF", i, tok.Type)
		}
	}
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.cpp")
	content := "int x = 1;\nx + 2;\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	fs, err := NewFileSource(path)
	if err != nil {
		t.Fatalf("NewFileSource: %v", err)
	}
	defer fs.Close()

	var types []TokenType
	for {
		tok := fs.NextToken()
		if tok.Type == TokenNewline {
			continue
		}
		types = append(types, tok.Type)
		if tok.Type == TokenEOF {
			break
		}
	}

	want := []TokenType{
		TokenInt, TokenIdentifier, TokenAssign, TokenIntLit, TokenSemicolon,
		TokenIdentifier, TokenPlus, TokenIntLit, TokenSemicolon, TokenEOF,
	}
	if len(types) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(types), len(want), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, types[i], want[i])
		}
	}
}

func TestFileSourcePeekAcrossChunks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.cpp")
	if err := os.WriteFile(path, []byte("a\nb\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	fs, err := NewFileSource(path)
	if err != nil {
		t.Fatalf("NewFileSource: %v", err)
	}
	defer fs.Close()

	fs.NextToken() // a
	fs.NextToken() // newline

	// Forces a fill from the second line while peeking.
	peeked := fs.PeekToken()
	if peeked.Type != TokenIdentifier || peeked.Lexeme != "b" {
		t.Fatalf("peek: got %s %q", peeked.Type, peeked.Lexeme)
	}
	if next := fs.NextToken(); next != peeked {
		t.Errorf("next differs from peek: %v vs %v", next, peeked)
	}
}

func TestMissingFile(t *testing.T) {
	if _, err := NewFileSource(filepath.Join(t.TempDir(), "missing.cpp")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
