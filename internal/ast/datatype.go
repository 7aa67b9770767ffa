package ast

import "strings"

// Type is the closed set of source types a declaration can carry
type Type interface {
	isType()
	Equal(other Type) bool
	String() string
}

type IntType struct{}

type FloatType struct{}

type StringType struct{}

// NoneType is the unit type, also the fallback "type of nothing"
type NoneType struct{}

// ListType is list<Elem>
type ListType struct {
	Elem Type
}

// TupleType is tuple<Elem>
type TupleType struct {
	Elem Type
}

// FunctionType is fn(Params...) -> Return. Return is nil when omitted.
type FunctionType struct {
	Params []Type
	Return Type
}

func (IntType) isType()       {}
func (FloatType) isType()     {}
func (StringType) isType()    {}
func (NoneType) isType()      {}
func (*ListType) isType()     {}
func (*TupleType) isType()    {}
func (*FunctionType) isType() {}

func (IntType) Equal(other Type) bool {
	_, ok := other.(IntType)
	return ok
}

func (FloatType) Equal(other Type) bool {
	_, ok := other.(FloatType)
	return ok
}

func (StringType) Equal(other Type) bool {
	_, ok := other.(StringType)
	return ok
}

func (NoneType) Equal(other Type) bool {
	_, ok := other.(NoneType)
	return ok
}

func (l *ListType) Equal(other Type) bool {
	o, ok := other.(*ListType)
	return ok && TypesEqual(l.Elem, o.Elem)
}

func (t *TupleType) Equal(other Type) bool {
	o, ok := other.(*TupleType)
	return ok && TypesEqual(t.Elem, o.Elem)
}

func (f *FunctionType) Equal(other Type) bool {
	o, ok := other.(*FunctionType)
	if !ok || len(f.Params) != len(o.Params) {
		return false
	}
	for i := range f.Params {
		if !TypesEqual(f.Params[i], o.Params[i]) {
			return false
		}
	}
	return TypesEqual(f.Return, o.Return)
}

// TypesEqual compares two possibly nil types
func TypesEqual(a, b Type) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equal(b)
}

func (IntType) String() string    { return "int" }
func (FloatType) String() string  { return "float" }
func (StringType) String() string { return "string" }
func (NoneType) String() string   { return "none" }

func (l *ListType) String() string  { return "list<" + l.Elem.String() + ">" }
func (t *TupleType) String() string { return "tuple<" + t.Elem.String() + ">" }

func (f *FunctionType) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	s := "fn(" + strings.Join(params, ", ") + ")"
	if f.Return != nil {
		s += " -> " + f.Return.String()
	}
	return s
}

// IsNumeric reports whether t is int or float
func IsNumeric(t Type) bool {
	switch t.(type) {
	case IntType, FloatType:
		return true
	}
	return false
}
