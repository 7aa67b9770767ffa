package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var BdlLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{"Comment", `(#|//)[^\n]*`, nil},

		// Whitespace
		{"Whitespace", `[ \t\r\n]+`, nil},

		// Numbers (order matters: floats before ints, "1abc" is never a number)
		{"Float", `[0-9]+\.[0-9]+`, nil},
		{"BadNumber", `[0-9]+[a-zA-Z_][a-zA-Z0-9_]*`, nil},
		{"Integer", `[0-9]+`, nil},

		// String literals
		{"String", `"(\\.|[^"\\])*"`, nil},

		// Keywords before identifiers so they can never be captured as names
		{"Keyword", `\b(def|if|else|rep|return|print|true|false|int|float|string|none|list|tuple|fn)\b`, nil},
		{"Ident", `[a-zA-Z_][a-zA-Z0-9_]*`, nil},

		// Operators
		{"Operator", `(\|\||&&|==|!=|<=|>=|->|[-+*/%<>=!])`, nil},

		// Punctuation
		{"Punctuation", `[{}[\](),:]`, nil},
	},
})
