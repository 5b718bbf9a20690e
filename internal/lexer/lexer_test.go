package lexer

import "testing"

func TestNextTokenBasic(t *testing.T) {
	input := `var x = 5;
x = x + 10.5;
`

	tests := []struct {
		expectedType    TokenType
		expectedLexeme  string
	}{
		{VAR, "var"},
		{IDENTIFIER, "x"},
		{EQUAL, "="},
		{NUMBER, "5"},
		{SEMICOLON, ";"},
		{IDENTIFIER, "x"},
		{EQUAL, "="},
		{IDENTIFIER, "x"},
		{PLUS, "+"},
		{NUMBER, "10.5"},
		{SEMICOLON, ";"},
		{EOF, ""},
	}

	l := New(input)

	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%v, got=%v (lexeme=%q)",
				i, tt.expectedType, tok.Type, tok.Lexeme)
		}
		if tok.Lexeme != tt.expectedLexeme {
			t.Fatalf("tests[%d] - lexeme wrong. expected=%q, got=%q", i, tt.expectedLexeme, tok.Lexeme)
		}
	}
}

func TestTwoCharOperators(t *testing.T) {
	tests := []struct {
		input    string
		expected TokenType
	}{
		{"!", BANG},
		{"!=", BANG_EQUAL},
		{"=", EQUAL},
		{"==", EQUAL_EQUAL},
		{"<", LESS},
		{"<=", LESS_EQUAL},
		{">", GREATER},
		{">=", GREATER_EQUAL},
	}

	for _, tt := range tests {
		l := New(tt.input)
		tok := l.NextToken()
		if tok.Type != tt.expected {
			t.Errorf("input %q: expected %v, got %v", tt.input, tt.expected, tok.Type)
		}
		if tok.Lexeme != tt.input {
			t.Errorf("input %q: lexeme mismatch, got %q", tt.input, tok.Lexeme)
		}
	}
}

func TestNumberDotDisambiguation(t *testing.T) {
	l := New("123.sqrt()")
	num := l.NextToken()
	if num.Type != NUMBER || num.Lexeme != "123" {
		t.Fatalf("expected NUMBER 123, got %v %q", num.Type, num.Lexeme)
	}
	dot := l.NextToken()
	if dot.Type != DOT {
		t.Fatalf("expected DOT after trailing-dot number, got %v", dot.Type)
	}
}

func TestUnterminatedString(t *testing.T) {
	l := New(`"unterminated`)
	l.NextToken()
	errs := l.Errors()
	if len(errs) != 1 || errs[0].Kind != UnterminatedString {
		t.Fatalf("expected one UnterminatedString error, got %v", errs)
	}
}

func TestUnexpectedCharacterContinuesScanning(t *testing.T) {
	l := New("@ var")
	tokens, errs := l.Tokens()
	if len(errs) != 1 || errs[0].Kind != UnexpectedCharacter {
		t.Fatalf("expected one UnexpectedCharacter error, got %v", errs)
	}
	if tokens[0].Type != VAR {
		t.Fatalf("expected scanning to continue past the bad character, got %v", tokens[0].Type)
	}
	if tokens[len(tokens)-1].Type != EOF {
		t.Fatalf("expected stream to end in EOF, got %v", tokens[len(tokens)-1].Type)
	}
}

func TestBlockCommentDoesNotNest(t *testing.T) {
	l := New("/* outer /* inner */ var */")
	tok := l.NextToken()
	if tok.Type != VAR {
		t.Fatalf("expected VAR once the first */ terminates the comment, got %v (%q)", tok.Type, tok.Lexeme)
	}
}
