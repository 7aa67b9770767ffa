package grammar

import (
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(BdlLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.Unquote("String"),
	participle.UseLookahead(3),
)

// Parse parses BDL source text. Failures implement participle.Error.
func Parse(filename, source string) (*Program, error) {
	return parser.ParseString(filename, source)
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Parse(path, string(source))
}

// EBNF returns the grammar in EBNF notation
func EBNF() string {
	return parser.String()
}
