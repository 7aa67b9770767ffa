package errors

// Error codes for the BDL compiler.
//
// Error code ranges:
// E0001-E0099: Scope and declaration errors found during lowering
// E0100-E0199: Parser errors
// E0900-E0999: Internal compiler errors
// W0800-W0899: Warning codes

const (
	// E0001: Reassignment of a name that was never declared
	ErrorUndeclaredVariable = "E0001"

	// E0002: Second declaration of a name in the same block
	ErrorDuplicateDeclaration = "E0002"

	// E0003: Reassignment with a value whose type does not fit the declaration
	ErrorIncompatibleAssignment = "E0003"

	// E0004: Source identifier using the synthetic-name prefix
	ErrorReservedIdentifier = "E0004"

	// E0005: Top-level statements next to a user-defined entry function
	ErrorEntryConflict = "E0005"

	// E0006: Function definition inside another block
	ErrorNestedFunction = "E0006"

	// E0007: Call to a function with a deduced return type before its definition
	ErrorDeducedForwardCall = "E0007"

	// E0100: Source text does not match the grammar
	ErrorSyntax = "E0100"

	// E0900: The lowering engine broke one of its own invariants
	ErrorInternal = "E0900"

	// W0801: Construct accepted but lowered to a placeholder
	WarningUnsupported = "W0801"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUndeclaredVariable:
		return "Variable is reassigned but was never declared in an enclosing block"
	case ErrorDuplicateDeclaration:
		return "Variable is declared twice in the same block"
	case ErrorIncompatibleAssignment:
		return "Reassigned value does not match the declared type"
	case ErrorReservedIdentifier:
		return "Identifier uses the prefix reserved for compiler-generated names"
	case ErrorEntryConflict:
		return "Top-level statements cannot be combined with a user-defined entry function"
	case ErrorNestedFunction:
		return "Functions can only be defined at the top level"
	case ErrorDeducedForwardCall:
		return "Function with a deduced return type is called before it is defined"
	case ErrorSyntax:
		return "Source text could not be parsed"
	case ErrorInternal:
		return "Internal compiler error"
	case WarningUnsupported:
		return "Construct has no C++ lowering and was replaced by a placeholder"
	default:
		return "Unknown error code"
	}
}

// IsWarning returns true if the error code represents a warning rather than an error
func IsWarning(code string) bool {
	return code != "" && code[0] == 'W'
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code == "":
		return "Unknown"
	case code[0] == 'W':
		return "Warning"
	case code >= "E0001" && code < "E0100":
		return "Scope"
	case code >= "E0100" && code < "E0200":
		return "Parser"
	case code >= "E0900" && code < "E1000":
		return "Internal"
	default:
		return "Unknown"
	}
}
