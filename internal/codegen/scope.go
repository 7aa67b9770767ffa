package codegen

import (
	"sort"

	"bdl/internal/ast"
	"bdl/internal/cpp"
)

type SymbolKind int

const (
	SymbolFunction SymbolKind = iota
	SymbolParameter
	SymbolVariable
)

type Symbol struct {
	Name     string
	Kind     SymbolKind
	Type     ast.Type
	Position ast.Position
	Var      *cpp.Variable
}

// SymbolTable maps names to declarations for one block; lookups fall back to
// the enclosing block
type SymbolTable struct {
	symbols map[string]*Symbol
	parent  *SymbolTable
}

func NewSymbolTable(parent *SymbolTable) *SymbolTable {
	return &SymbolTable{
		symbols: make(map[string]*Symbol),
		parent:  parent,
	}
}

func (st *SymbolTable) Define(name string, kind SymbolKind, typ ast.Type, pos ast.Position, v *cpp.Variable) *Symbol {
	symbol := &Symbol{
		Name:     name,
		Kind:     kind,
		Type:     typ,
		Position: pos,
		Var:      v,
	}
	st.symbols[name] = symbol
	return symbol
}

func (st *SymbolTable) Lookup(name string) *Symbol {
	if symbol, exists := st.symbols[name]; exists {
		return symbol
	}
	if st.parent != nil {
		return st.parent.Lookup(name)
	}
	return nil
}

func (st *SymbolTable) LookupLocal(name string) *Symbol {
	if symbol, exists := st.symbols[name]; exists {
		return symbol
	}
	return nil
}

// TypeOf resolves a name for ast.StaticType
func (st *SymbolTable) TypeOf(name string) (ast.Type, bool) {
	symbol := st.Lookup(name)
	if symbol == nil {
		return nil, false
	}
	return symbol.Type, true
}

// VisibleVariables lists every variable and parameter name reachable from st, sorted
func (st *SymbolTable) VisibleVariables() []string {
	seen := map[string]bool{}
	for s := st; s != nil; s = s.parent {
		for name, symbol := range s.symbols {
			if symbol.Kind != SymbolFunction {
				seen[name] = true
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
