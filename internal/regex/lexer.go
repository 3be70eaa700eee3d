package regex

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// TokenKind classifies a regex token.
type TokenKind int

const (
	Operand TokenKind = iota
	Operator
	LParen
	RParen
)

func (k TokenKind) String() string {
	switch k {
	case Operand:
		return "operand"
	case Operator:
		return "operator"
	case LParen:
		return "("
	case RParen:
		return ")"
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

type Token struct {
	Kind   TokenKind
	Value  rune
	Offset int
}

// user input never contains the explicit concatenation operator.
var regexLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Symbol", Pattern: `[A-Za-z0-9]`},
	{Name: "Operator", Pattern: `[|*+?]`},
	{Name: "Paren", Pattern: `[()]`},
	{Name: "whitespace", Pattern: `\s+`},
})

var (
	symbolType   = regexLexer.Symbols()["Symbol"]
	operatorType = regexLexer.Symbols()["Operator"]
)

// Tokenize splits a user regex into tokens. Whitespace is dropped.
func Tokenize(regex string) ([]Token, error) {
	lex, err := regexLexer.LexString("", regex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSymbol, err)
	}
	raw, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSymbol, err)
	}

	out := make([]Token, 0, len(raw))
	for _, t := range raw {
		if t.EOF() {
			break
		}
		tok := Token{Value: []rune(t.Value)[0], Offset: t.Pos.Offset}
		switch {
		case t.Type == symbolType:
			tok.Kind = Operand
		case t.Type == operatorType:
			tok.Kind = Operator
		case t.Value == "(":
			tok.Kind = LParen
		default:
			tok.Kind = RParen
		}
		out = append(out, tok)
	}
	return out, nil
}

// Join concatenates the token values back into a regex string.
func Join(tokens []Token) string {
	var sb strings.Builder
	for _, t := range tokens {
		sb.WriteRune(t.Value)
	}
	return sb.String()
}
