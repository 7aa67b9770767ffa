package cpp

// Program accumulates a C++ translation unit: includes, forward declarations,
// then functions in registration order
type Program struct {
	includes   []string
	prototypes []*Function
	functions  []*Function
}

// NewProgram creates an empty program
func NewProgram() *Program {
	return &Program{
		includes:  []string{},
		functions: []*Function{},
	}
}

// AddInclude registers a header. Duplicates are kept.
func (p *Program) AddInclude(name string) {
	p.includes = append(p.includes, name)
}

// NewFunction creates a function and registers it immediately
func (p *Program) NewFunction(name string, returnType Type) *Function {
	fn := NewFunction(name, returnType)
	p.AddFunction(fn)
	return fn
}

// AddFunction registers a function built separately with NewFunction
func (p *Program) AddFunction(fn *Function) {
	p.functions = append(p.functions, fn)
}

func (p *Program) Functions() []*Function {
	return p.functions
}

// AddPrototype forward-declares fn ahead of every function body. Repeated
// requests for the same function emit one declaration.
func (p *Program) AddPrototype(fn *Function) {
	for _, existing := range p.prototypes {
		if existing == fn {
			return
		}
	}
	p.prototypes = append(p.prototypes, fn)
}

func (p *Program) Prototypes() []*Function {
	return p.prototypes
}

func (p *Program) String() string {
	return Print(p)
}

// Param is a function parameter
type Param struct {
	Name string
	Type Type
}

// Function is a named C++ function with a single body block
type Function struct {
	Name       string
	ReturnType Type
	Params     []Param
	body       *Block
}

// NewFunction creates a function that is not yet part of any program
func NewFunction(name string, returnType Type) *Function {
	return &Function{
		Name:       name,
		ReturnType: returnType,
		Params:     []Param{},
		body:       newBlock(),
	}
}

// AddParam appends a parameter and returns a handle usable in the body
func (f *Function) AddParam(name string, typ Type) *Variable {
	f.Params = append(f.Params, Param{Name: name, Type: typ})
	return &Variable{Name: name, Type: typ}
}

func (f *Function) Body() *Block {
	return f.body
}
