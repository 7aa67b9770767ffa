package errors

import (
	"fmt"
	"strings"

	"bdl/internal/ast"
)

// SemanticErrorBuilder provides a fluent interface for creating semantic errors with suggestions
type SemanticErrorBuilder struct {
	err CompilerError
}

// NewSemanticError creates a new semantic error builder
func NewSemanticError(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewSemanticWarning creates a new semantic warning builder
func NewSemanticWarning(code, message string, pos ast.Position) *SemanticErrorBuilder {
	return &SemanticErrorBuilder{
		err: CompilerError{
			Level:    Warning,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *SemanticErrorBuilder) WithLength(length int) *SemanticErrorBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *SemanticErrorBuilder) WithSuggestion(message string) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *SemanticErrorBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *SemanticErrorBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *SemanticErrorBuilder) WithNote(note string) *SemanticErrorBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *SemanticErrorBuilder) WithHelp(help string) *SemanticErrorBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *SemanticErrorBuilder) Build() CompilerError {
	return b.err
}

// UndeclaredVariable reports a reassignment of a name with no visible declaration
func UndeclaredVariable(name string, pos ast.Position, visible []string) CompilerError {
	builder := NewSemanticError(ErrorUndeclaredVariable, fmt.Sprintf("cannot assign to undeclared variable '%s'", name), pos).
		WithLength(len(name))

	similar := findSimilarNames(name, visible)
	switch len(similar) {
	case 0:
		builder = builder.WithReplacement("declare it with a type first", name+": int = ...", pos, len(name))
	case 1:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	default:
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}

	return builder.Build()
}

// DuplicateDeclaration reports a second declaration of name in one block
func DuplicateDeclaration(name string, pos ast.Position, previous ast.Position) CompilerError {
	return NewSemanticError(ErrorDuplicateDeclaration, fmt.Sprintf("variable '%s' is already declared in this block", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("previous declaration at line %d, column %d", previous.Line, previous.Column)).
		WithSuggestion(fmt.Sprintf("use '%s = ...' to reassign it", name)).
		Build()
}

// IncompatibleAssignment reports a reassignment whose value type does not fit
func IncompatibleAssignment(name, declared, actual string, pos ast.Position) CompilerError {
	builder := NewSemanticError(ErrorIncompatibleAssignment,
		fmt.Sprintf("cannot assign a value of type %s to '%s' of type %s", actual, name, declared), pos).
		WithLength(len(name))

	if declared == "int" && actual == "float" {
		builder = builder.WithNote("float values are not narrowed to int implicitly")
	}

	return builder.Build()
}

// ReservedIdentifier reports a source name that starts with the synthetic prefix
func ReservedIdentifier(name, prefix string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorReservedIdentifier, fmt.Sprintf("identifier '%s' uses the reserved prefix '%s'", name, prefix), pos).
		WithLength(len(name)).
		WithHelp("names starting with '" + prefix + "' are reserved for compiler-generated variables").
		Build()
}

// EntryConflict reports top-level statements when the program defines its own entry function
func EntryConflict(entry string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorEntryConflict,
		fmt.Sprintf("top-level statement outside of '%s'", entry), pos).
		WithHelp(fmt.Sprintf("move the statement into '%s' or remove the definition of '%s'", entry, entry)).
		Build()
}

// NestedFunction reports a function defined anywhere but the top level
func NestedFunction(name string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorNestedFunction, fmt.Sprintf("function '%s' must be defined at the top level", name), pos).
		WithLength(len("def")).
		Build()
}

// DeducedForwardCall reports a call that precedes the definition of a function
// whose return type is only known from its body
func DeducedForwardCall(name string, pos ast.Position, defined ast.Position) CompilerError {
	return NewSemanticError(ErrorDeducedForwardCall,
		fmt.Sprintf("function '%s' is called before its definition and has no declared return type", name), pos).
		WithLength(len(name)).
		WithNote(fmt.Sprintf("'%s' is defined at line %d, column %d", name, defined.Line, defined.Column)).
		WithHelp(fmt.Sprintf("declare the return type with 'def %s(...) -> T' or move the definition above the call", name)).
		Build()
}

func Unsupported(kind string, pos ast.Position) CompilerError {
	return NewSemanticWarning(WarningUnsupported, fmt.Sprintf("%s is not supported by the C++ backend", kind), pos).
		WithNote("the generated code contains a placeholder and will not compile as-is").
		Build()
}

// SyntaxError wraps a parser failure
func SyntaxError(message string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorSyntax, message, pos).Build()
}

// Internal reports a broken lowering invariant
func Internal(message string, pos ast.Position) CompilerError {
	return NewSemanticError(ErrorInternal, message, pos).
		WithNote("this is a bug in the compiler").
		Build()
}

// findSimilarNames finds names similar to the target using Levenshtein distance
func findSimilarNames(target string, candidates []string) []string {
	var similar []string
	for _, candidate := range candidates {
		if candidate == target {
			continue
		}
		if levenshteinDistance(target, candidate) <= 2 {
			similar = append(similar, candidate)
		}
	}
	return similar
}

func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
