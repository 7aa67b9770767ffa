package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// OpenDepth counts brackets opened but not yet closed in source. Brackets
// inside strings and comments are ignored. Lexing stops at the first
// unrecognised character.
func OpenDepth(source string) int {
	lex, err := BdlLexer.LexString("", source)
	if err != nil {
		return 0
	}
	tokens, _ := lexer.ConsumeAll(lex)

	punct := BdlLexer.Symbols()["Punctuation"]
	depth := 0
	for _, tok := range tokens {
		if tok.Type != punct {
			continue
		}
		switch tok.Value {
		case "{", "(", "[":
			depth++
		case "}", ")", "]":
			depth--
		}
	}
	return depth
}
