package codegen

import (
	"bdl/internal/ast"
	"bdl/internal/cpp"
)

// MapType maps a source type to its C++ spelling. Tuples and function types
// have no concrete mapping yet and become auto.
func MapType(t ast.Type) cpp.Type {
	switch u := t.(type) {
	case ast.IntType:
		return cpp.Int
	case ast.FloatType:
		return cpp.Double
	case ast.StringType:
		return cpp.String
	case *ast.ListType:
		return cpp.Vector(MapType(u.Elem))
	case *ast.TupleType, *ast.FunctionType:
		return cpp.Auto
	case ast.NoneType:
		return cpp.Void
	}
	return cpp.Void
}

// unsupportedType returns the first part of t that MapType only approximates
func unsupportedType(t ast.Type) (string, bool) {
	switch u := t.(type) {
	case *ast.ListType:
		return unsupportedType(u.Elem)
	case *ast.TupleType:
		return "tuple type", true
	case *ast.FunctionType:
		return "function type", true
	}
	return "", false
}

// assignable reports whether a value of static type actual may be stored in
// a variable declared as declared. Unknown types pass.
func assignable(declared, actual ast.Type) bool {
	if declared == nil || actual == nil {
		return true
	}
	if _, unknown := actual.(ast.NoneType); unknown {
		return true
	}
	if declared.Equal(actual) {
		return true
	}

	switch d := declared.(type) {
	case ast.FloatType:
		_, ok := actual.(ast.IntType)
		return ok
	case *ast.ListType:
		a, ok := actual.(*ast.ListType)
		return ok && assignable(d.Elem, a.Elem)
	case *ast.TupleType, *ast.FunctionType:
		return true
	}
	return false
}
